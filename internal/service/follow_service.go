package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// FollowService owns the follow graph. Edges are idempotent: following twice
// is success, and the second call changes nothing.
type FollowService struct {
	followRepo repository.FollowRepository
}

func NewFollowService(followRepo repository.FollowRepository) *FollowService {
	return &FollowService{followRepo: followRepo}
}

func (s *FollowService) Follow(ctx context.Context, followerID, followingID uint) error {
	if followingID == 0 {
		return models.NewValidationError("following_id is required")
	}
	if followerID == followingID {
		return models.NewValidationError("Cannot follow yourself")
	}
	return s.followRepo.Follow(ctx, followerID, followingID)
}

// Unfollow removes the edge. Unfollowing someone never followed is a
// validation error, not a silent no-op.
func (s *FollowService) Unfollow(ctx context.Context, followerID, followingID uint) error {
	if followingID == 0 {
		return models.NewValidationError("following_id is required")
	}
	if followerID == followingID {
		return models.NewValidationError("Cannot unfollow yourself")
	}
	removed, err := s.followRepo.Unfollow(ctx, followerID, followingID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewValidationError("Not following this user")
	}
	return nil
}

func (s *FollowService) Following(ctx context.Context, userID uint) ([]uint, error) {
	return s.followRepo.Following(ctx, userID)
}

func (s *FollowService) Followers(ctx context.Context, userID uint) ([]uint, error) {
	return s.followRepo.Followers(ctx, userID)
}

func (s *FollowService) Counts(ctx context.Context, userID uint) (models.FollowCounts, error) {
	return s.followRepo.Counts(ctx, userID)
}
