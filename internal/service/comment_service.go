package service

import (
	"context"
	"fmt"
	"unicode/utf8"

	"plume/internal/models"
	"plume/internal/repository"
)

// CommentService owns commenting on posts.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo, postRepo: postRepo}
}

// CreateCommentInput carries a new comment on a post.
type CreateCommentInput struct {
	UserID uint
	PostID uint
	Text   string
}

// CreateComment validates and stores a comment. The length floor counts
// runes, not bytes, and is checked before any write; a comment on a missing
// post is NotFound.
func (s *CommentService) CreateComment(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	if utf8.RuneCountInString(input.Text) < models.MinCommentLength {
		return nil, models.NewValidationError(
			fmt.Sprintf("comment must be at least %d characters", models.MinCommentLength))
	}

	if _, err := s.postRepo.GetByID(ctx, input.PostID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Text:   input.Text,
		UserID: input.UserID,
		PostID: input.PostID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// ListComments returns a post's comments, newest first. The post must exist.
func (s *CommentService) ListComments(ctx context.Context, postID uint) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByPost(ctx, postID)
}
