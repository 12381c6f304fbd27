package service

import (
	"context"
	"testing"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowService_Follow_Self(t *testing.T) {
	t.Parallel()

	created := false
	follows := noopFollowRepo()
	follows.createFn = func(_ context.Context, _, _ uint) error {
		created = true
		return nil
	}
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 1, Username: username}, nil
	}
	svc := NewFollowService(follows, users)

	// Following yourself is silently ignored, not an error.
	err := svc.Follow(context.Background(), 1, "me")
	require.NoError(t, err)
	assert.False(t, created, "no edge should be written for a self-follow")
}

func TestFollowService_Follow_UnknownUser(t *testing.T) {
	t.Parallel()

	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return nil, models.NewNotFoundError("user", username)
	}
	svc := NewFollowService(noopFollowRepo(), users)

	err := svc.Follow(context.Background(), 1, "ghost")
	assertNotFoundError(t, err)
}

func TestFollowService_Follow_CreatesEdge(t *testing.T) {
	t.Parallel()

	var gotFollower, gotFollowed uint
	follows := noopFollowRepo()
	follows.createFn = func(_ context.Context, followerID, followedID uint) error {
		gotFollower, gotFollowed = followerID, followedID
		return nil
	}
	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return &models.User{ID: 7, Username: username}, nil
	}
	svc := NewFollowService(follows, users)

	err := svc.Follow(context.Background(), 3, "leo")
	require.NoError(t, err)
	assert.Equal(t, uint(3), gotFollower)
	assert.Equal(t, uint(7), gotFollowed)
}

func TestFollowService_Unfollow_NeverFollowed(t *testing.T) {
	t.Parallel()

	svc := NewFollowService(noopFollowRepo(), noopUserRepo())

	// Removing an absent edge succeeds without effect.
	err := svc.Unfollow(context.Background(), 3, "leo")
	assert.NoError(t, err)
}

func TestFollowService_Unfollow_UnknownUser(t *testing.T) {
	t.Parallel()

	users := noopUserRepo()
	users.getByUsernameFn = func(_ context.Context, username string) (*models.User, error) {
		return nil, models.NewNotFoundError("user", username)
	}
	svc := NewFollowService(noopFollowRepo(), users)

	err := svc.Unfollow(context.Background(), 1, "ghost")
	assertNotFoundError(t, err)
}

func TestFollowService_IsFollowing(t *testing.T) {
	t.Parallel()

	follows := noopFollowRepo()
	follows.isFollowingFn = func(_ context.Context, followerID, followedID uint) (bool, error) {
		return followerID == 3 && followedID == 1, nil
	}
	svc := NewFollowService(follows, noopUserRepo())

	following, err := svc.IsFollowing(context.Background(), 3, "leo")
	require.NoError(t, err)
	assert.True(t, following)

	following, err = svc.IsFollowing(context.Background(), 4, "leo")
	require.NoError(t, err)
	assert.False(t, following)
}
