package service

import (
	"context"
	"strings"

	"plume/internal/models"
	"plume/internal/repository"
)

// PostService owns post authoring: creation, edits, and the author-only
// rules around them. Reads that end up in timelines go through FeedService.
type PostService struct {
	postRepo  repository.PostRepository
	groupRepo repository.GroupRepository
}

// NewPostService creates a new PostService.
func NewPostService(postRepo repository.PostRepository, groupRepo repository.GroupRepository) *PostService {
	return &PostService{postRepo: postRepo, groupRepo: groupRepo}
}

// CreatePostInput carries everything needed to author a new post. Group is
// an optional group slug; empty means the post belongs to no group.
type CreatePostInput struct {
	UserID   uint
	Text     string
	Group    string
	ImageURL string
}

// UpdatePostInput carries an edit to an existing post by its author.
type UpdatePostInput struct {
	PostID   uint
	UserID   uint
	Text     string
	Group    string
	ImageURL string
}

func (s *PostService) resolveGroup(ctx context.Context, slug string) (*uint, error) {
	if slug == "" {
		return nil, nil
	}
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, models.NewValidationError("unknown group: " + slug)
		}
		return nil, err
	}
	return &group.ID, nil
}

// CreatePost validates and stores a new post. The text must be non-empty and
// a referenced group must exist; nothing is written otherwise.
func (s *PostService) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, models.NewValidationError("post text must not be empty")
	}

	groupID, err := s.resolveGroup(ctx, input.Group)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:     input.Text,
		UserID:   input.UserID,
		GroupID:  groupID,
		ImageURL: input.ImageURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost applies an edit in place. Only the original author may edit;
// anyone else gets an authorization error with the post left untouched.
func (s *PostService) UpdatePost(ctx context.Context, input UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if post.UserID != input.UserID {
		return nil, models.NewUnauthorizedError("only the author can edit this post")
	}
	if strings.TrimSpace(input.Text) == "" {
		return nil, models.NewValidationError("post text must not be empty")
	}

	groupID, err := s.resolveGroup(ctx, input.Group)
	if err != nil {
		return nil, err
	}

	post.Text = input.Text
	post.GroupID = groupID
	post.ImageURL = input.ImageURL
	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a single post by id.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// DeletePost removes a post. This is an administrative operation; callers
// enforce the admin check before reaching here.
func (s *PostService) DeletePost(ctx context.Context, id uint) error {
	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.postRepo.Delete(ctx, id)
}
