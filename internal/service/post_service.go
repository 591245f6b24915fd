// Package service implements the domain rules on top of the repositories:
// input validation, ownership gating, and the feed visibility model.
package service

import (
	"context"
	"errors"
	"time"

	"ripple/internal/models"
	"ripple/internal/repository"

	"gorm.io/gorm"
)

const maxContentLen = 10000

// PostService owns post lifecycle and the visibility rules around it.
type PostService struct {
	postRepo repository.PostRepository
	now      func() time.Time
}

type CreatePostInput struct {
	UserID          uint
	Content         string
	MediaURL        string
	CommentsEnabled bool
	ScheduledAt     *time.Time
}

type UpdatePostInput struct {
	UserID uint
	PostID uint
	Patch  models.PostPatch
}

type DeletePostInput struct {
	UserID uint
	PostID uint
}

func NewPostService(postRepo repository.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		now:      time.Now,
	}
}

func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if len(in.Content) > maxContentLen {
		return nil, models.NewValidationError("Content too long (max 10000 characters)")
	}
	if in.ScheduledAt != nil && !in.ScheduledAt.After(s.now()) {
		return nil, models.NewValidationError("scheduled_at must be in the future")
	}

	post := &models.Post{
		Content:         in.Content,
		MediaURL:        in.MediaURL,
		CommentsEnabled: in.CommentsEnabled,
		ScheduledAt:     in.ScheduledAt,
		UserID:          in.UserID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	// Reload with author fields for the response.
	return s.GetPost(ctx, post.ID)
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post")
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// ListUserPosts returns the user's posts newest first. Scheduled posts are
// included; the schedule gate applies only to follower feeds.
func (s *PostService) ListUserPosts(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.ListByUser(ctx, userID, limit, offset)
}

// Feed returns posts from accounts the viewer follows. An empty follow set
// yields an empty feed, not an error.
func (s *PostService) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
	return s.postRepo.Feed(ctx, viewerID, limit, offset)
}

func (s *PostService) SearchPosts(ctx context.Context, term string, limit, offset int) ([]*models.Post, error) {
	if term == "" {
		return nil, models.NewValidationError("Search query is required")
	}
	return s.postRepo.Search(ctx, term, limit, offset)
}

// UpdatePost applies a partial update. An empty patch is rejected before any
// store call; a missing, deleted, or foreign-owned post comes back as the
// conflated not-found.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if in.Patch.IsZero() {
		return nil, models.NewValidationError("No updatable fields provided")
	}
	if in.Patch.Content != nil {
		if *in.Patch.Content == "" {
			return nil, models.NewValidationError("Content cannot be empty")
		}
		if len(*in.Patch.Content) > maxContentLen {
			return nil, models.NewValidationError("Content too long (max 10000 characters)")
		}
	}

	post, err := s.postRepo.Update(ctx, in.PostID, in.UserID, in.Patch)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewNotFoundError("Post")
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	deleted, err := s.postRepo.SoftDelete(ctx, in.PostID, in.UserID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Post")
	}
	return nil
}
