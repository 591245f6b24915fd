package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// likeRepoStub is a stub for repository.LikeRepository.
type likeRepoStub struct {
	likeFn       func(context.Context, uint, uint) error
	unlikeFn     func(context.Context, uint, uint) (bool, error)
	likersFn     func(context.Context, uint) ([]uint, error)
	likedPostsFn func(context.Context, uint) ([]uint, error)
	hasLikedFn   func(context.Context, uint, uint) (bool, error)
}

func (s *likeRepoStub) Like(ctx context.Context, userID, postID uint) error {
	return s.likeFn(ctx, userID, postID)
}
func (s *likeRepoStub) Unlike(ctx context.Context, userID, postID uint) (bool, error) {
	return s.unlikeFn(ctx, userID, postID)
}
func (s *likeRepoStub) Likers(ctx context.Context, postID uint) ([]uint, error) {
	return s.likersFn(ctx, postID)
}
func (s *likeRepoStub) LikedPosts(ctx context.Context, userID uint) ([]uint, error) {
	return s.likedPostsFn(ctx, userID)
}
func (s *likeRepoStub) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.hasLikedFn(ctx, userID, postID)
}

func noopLikeRepo() *likeRepoStub {
	return &likeRepoStub{
		likeFn:       func(_ context.Context, _, _ uint) error { return nil },
		unlikeFn:     func(_ context.Context, _, _ uint) (bool, error) { return true, nil },
		likersFn:     func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		likedPostsFn: func(_ context.Context, _ uint) ([]uint, error) { return nil, nil },
		hasLikedFn:   func(_ context.Context, _, _ uint) (bool, error) { return false, nil },
	}
}

func TestLikeService_Like(t *testing.T) {
	t.Parallel()

	t.Run("missing post id rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewLikeService(noopLikeRepo())
		err := svc.Like(context.Background(), 1, 0)
		assertValidationError(t, err)
	})

	t.Run("valid like passes through", func(t *testing.T) {
		t.Parallel()
		var gotUser, gotPost uint
		repo := noopLikeRepo()
		repo.likeFn = func(_ context.Context, userID, postID uint) error {
			gotUser, gotPost = userID, postID
			return nil
		}
		svc := NewLikeService(repo)
		require.NoError(t, svc.Like(context.Background(), 1, 5))
		assert.Equal(t, uint(1), gotUser)
		assert.Equal(t, uint(5), gotPost)
	})
}

func TestLikeService_Unlike(t *testing.T) {
	t.Parallel()

	t.Run("unliking a post never liked is an error", func(t *testing.T) {
		t.Parallel()
		repo := noopLikeRepo()
		repo.unlikeFn = func(_ context.Context, _, _ uint) (bool, error) { return false, nil }
		svc := NewLikeService(repo)
		err := svc.Unlike(context.Background(), 1, 5)
		assertValidationError(t, err)
	})

	t.Run("existing like removed", func(t *testing.T) {
		t.Parallel()
		svc := NewLikeService(noopLikeRepo())
		require.NoError(t, svc.Unlike(context.Background(), 1, 5))
	})
}
