// Package service holds the application's business logic between the fiber
// handlers and the repositories.
package service

import (
	"context"

	"plume/internal/cache"
	"plume/internal/middleware"
	"plume/internal/models"
	"plume/internal/pagination"
	"plume/internal/repository"
)

// FeedService composes raw post/follow records into ordered, paginated
// timeline views. Every call computes its result from current store state;
// there is no in-process accumulation between calls.
type FeedService struct {
	postRepo   repository.PostRepository
	userRepo   repository.UserRepository
	groupRepo  repository.GroupRepository
	followRepo repository.FollowRepository
}

// NewFeedService creates a new FeedService.
func NewFeedService(
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
	groupRepo repository.GroupRepository,
	followRepo repository.FollowRepository,
) *FeedService {
	return &FeedService{
		postRepo:   postRepo,
		userRepo:   userRepo,
		groupRepo:  groupRepo,
		followRepo: followRepo,
	}
}

// TimelinePage is one rendered window of a timeline: the posts plus the
// pagination metadata the presentation layer needs.
type TimelinePage struct {
	Posts []*models.Post  `json:"posts"`
	Page  pagination.Page `json:"page"`
}

// GroupTimelinePage is a group timeline window together with the group itself.
type GroupTimelinePage struct {
	Group *models.Group `json:"group"`
	TimelinePage
}

// AuthorTimelinePage is an author timeline window plus the profile extras:
// the author's total post count and whether the viewer already follows them.
type AuthorTimelinePage struct {
	Author *models.User `json:"author"`
	TimelinePage
	TotalPosts int64 `json:"total_posts"`
	Following  bool  `json:"following"`
}

// GlobalTimeline returns the requested page of all posts, most recent first.
// Pages are served from the result cache when a snapshot exists; a snapshot
// can be up to GlobalTimelineTTL stale relative to concurrent writes, which
// is the documented trade-off, not a bug.
func (s *FeedService) GlobalTimeline(ctx context.Context, requested int) (*TimelinePage, error) {
	if requested < 1 {
		requested = 1
	}

	var tp TimelinePage
	key := cache.GlobalTimelineKey(requested)
	if found, err := cache.GetJSON(ctx, key, &tp); err == nil && found {
		middleware.FeedCacheHits.WithLabelValues("hit").Inc()
		return &tp, nil
	}
	middleware.FeedCacheHits.WithLabelValues("miss").Inc()

	total, err := s.postRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	page := pagination.New(requested, total)

	posts, err := s.postRepo.List(ctx, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	tp = TimelinePage{Posts: posts, Page: page}
	_ = cache.SetJSON(ctx, key, &tp, cache.GlobalTimelineTTL)
	return &tp, nil
}

// InvalidateGlobalTimeline evicts every cached global-timeline snapshot so
// the next read recomputes from the store.
func (s *FeedService) InvalidateGlobalTimeline(ctx context.Context) error {
	return cache.InvalidateGlobalTimeline(ctx)
}

// GroupTimeline returns the requested page of a group's posts. An unknown
// slug is NotFound; a known group with no posts is an empty page.
func (s *FeedService) GroupTimeline(ctx context.Context, slug string, requested int) (*GroupTimelinePage, error) {
	group, err := s.groupRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	page := pagination.New(requested, total)

	posts, err := s.postRepo.ListByGroup(ctx, group.ID, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	return &GroupTimelinePage{
		Group:        group,
		TimelinePage: TimelinePage{Posts: posts, Page: page},
	}, nil
}

// AuthorTimeline returns the requested page of an author's posts plus the
// profile extras. Following is true only when the viewer themself follows the
// author; an anonymous viewer (viewerID 0) never reads as following.
func (s *FeedService) AuthorTimeline(ctx context.Context, username string, viewerID uint, requested int) (*AuthorTimelinePage, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	page := pagination.New(requested, total)

	posts, err := s.postRepo.ListByAuthor(ctx, author.ID, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID != 0 && viewerID != author.ID {
		following, err = s.followRepo.IsFollowing(ctx, viewerID, author.ID)
		if err != nil {
			return nil, err
		}
	}

	return &AuthorTimelinePage{
		Author:       author,
		TimelinePage: TimelinePage{Posts: posts, Page: page},
		TotalPosts:   total,
		Following:    following,
	}, nil
}

// FollowTimeline returns the requested page of posts by every author the
// viewer follows, merged into one recency order. A viewer with no follows
// gets an empty page, not an error.
func (s *FeedService) FollowTimeline(ctx context.Context, viewerID uint, requested int) (*TimelinePage, error) {
	total, err := s.postRepo.CountByFollowed(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	page := pagination.New(requested, total)

	posts, err := s.postRepo.ListByFollowed(ctx, viewerID, page.Size, page.Offset())
	if err != nil {
		return nil, err
	}

	return &TimelinePage{Posts: posts, Page: page}, nil
}
