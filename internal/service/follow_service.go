package service

import (
	"context"

	"plume/internal/models"
	"plume/internal/repository"
)

// FollowService manages the directed follow edges that feed the follow
// timeline.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService creates a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{followRepo: followRepo, userRepo: userRepo}
}

// Follow records that follower follows the named user. Following an unknown
// username is NotFound; following yourself is silently ignored; following
// someone twice leaves a single edge.
func (s *FollowService) Follow(ctx context.Context, followerID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == followerID {
		return nil
	}
	return s.followRepo.Create(ctx, followerID, author.ID)
}

// Unfollow removes the follow edge if present. Unfollowing someone never
// followed succeeds without effect.
func (s *FollowService) Unfollow(ctx context.Context, followerID uint, username string) error {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author.ID == followerID {
		return nil
	}
	return s.followRepo.Delete(ctx, followerID, author.ID)
}

// IsFollowing reports whether follower currently follows the named user.
func (s *FollowService) IsFollowing(ctx context.Context, followerID uint, username string) (bool, error) {
	author, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return s.followRepo.IsFollowing(ctx, followerID, author.ID)
}

// Following lists the users the follower currently follows.
func (s *FollowService) Following(ctx context.Context, followerID uint) ([]models.User, error) {
	return s.followRepo.ListFollowed(ctx, followerID)
}
