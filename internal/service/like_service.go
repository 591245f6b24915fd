package service

import (
	"context"

	"ripple/internal/models"
	"ripple/internal/repository"
)

// LikeService owns post likes. Liking is idempotent; the target post is not
// checked for existence, so a like on a vanished post simply dangles until
// cleanup.
type LikeService struct {
	likeRepo repository.LikeRepository
}

func NewLikeService(likeRepo repository.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

func (s *LikeService) Like(ctx context.Context, userID, postID uint) error {
	if postID == 0 {
		return models.NewValidationError("post_id is required")
	}
	return s.likeRepo.Like(ctx, userID, postID)
}

// Unlike removes the like. Unliking a post never liked is a validation error.
func (s *LikeService) Unlike(ctx context.Context, userID, postID uint) error {
	if postID == 0 {
		return models.NewValidationError("post_id is required")
	}
	removed, err := s.likeRepo.Unlike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if !removed {
		return models.NewValidationError("Post not liked")
	}
	return nil
}

func (s *LikeService) Likers(ctx context.Context, postID uint) ([]uint, error) {
	return s.likeRepo.Likers(ctx, postID)
}

func (s *LikeService) LikedPosts(ctx context.Context, userID uint) ([]uint, error) {
	return s.likeRepo.LikedPosts(ctx, userID)
}

func (s *LikeService) HasLiked(ctx context.Context, userID, postID uint) (bool, error) {
	return s.likeRepo.HasLiked(ctx, userID, postID)
}
