package service

import (
	"context"
	"testing"

	"ripple/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// followRepoStub is a stub for repository.FollowRepository.
type followRepoStub struct {
	followFn    func(context.Context, uint, uint) error
	unfollowFn  func(context.Context, uint, uint) (bool, error)
	followingFn func(context.Context, uint) ([]uint, error)
	followersFn func(context.Context, uint) ([]uint, error)
	countsFn    func(context.Context, uint) (models.FollowCounts, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) error {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.unfollowFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingFn(ctx, userID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint) ([]uint, error) {
	return s.followersFn(ctx, userID)
}
func (s *followRepoStub) Counts(ctx context.Context, userID uint) (models.FollowCounts, error) {
	return s.countsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:    func(_ context.Context, _, _ uint) error { return nil },
		unfollowFn:  func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		followingFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		followersFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		countsFn:    func(_ context.Context, _ uint) (models.FollowCounts, error) { return models.FollowCounts{}, nil },
	}
}

func TestFollowService_Follow(t *testing.T) {
	t.Parallel()

	t.Run("self follow rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo())
		err := svc.Follow(context.Background(), 1, 1)
		assertValidationError(t, err)
	})

	t.Run("missing target rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo())
		err := svc.Follow(context.Background(), 1, 0)
		assertValidationError(t, err)
	})

	t.Run("valid edge passes through", func(t *testing.T) {
		t.Parallel()
		var gotFollower, gotFollowing uint
		repo := noopFollowRepo()
		repo.followFn = func(_ context.Context, followerID, followingID uint) error {
			gotFollower, gotFollowing = followerID, followingID
			return nil
		}
		svc := NewFollowService(repo)
		require.NoError(t, svc.Follow(context.Background(), 1, 2))
		assert.Equal(t, uint(1), gotFollower)
		assert.Equal(t, uint(2), gotFollowing)
	})
}

func TestFollowService_Unfollow(t *testing.T) {
	t.Parallel()

	t.Run("self unfollow rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo())
		err := svc.Unfollow(context.Background(), 1, 1)
		assertValidationError(t, err)
	})

	t.Run("removing an absent edge is an error", func(t *testing.T) {
		t.Parallel()
		repo := noopFollowRepo()
		repo.unfollowFn = func(_ context.Context, _, _ uint) (bool, error) { return false, nil }
		svc := NewFollowService(repo)
		err := svc.Unfollow(context.Background(), 1, 2)
		assertValidationError(t, err)
	})

	t.Run("existing edge removed", func(t *testing.T) {
		t.Parallel()
		svc := NewFollowService(noopFollowRepo())
		require.NoError(t, svc.Unfollow(context.Background(), 1, 2))
	})
}
