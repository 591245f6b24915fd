// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// ErrEmptyPatch reports an update with no recognized fields. It is distinct
// from gorm.ErrRecordNotFound so callers can tell a no-op from a missing or
// foreign row.
var ErrEmptyPatch = errors.New("no updatable fields in patch")

// PostRepository defines the interface for post data operations.
//
// All read paths exclude soft-deleted rows. Feed additionally excludes any
// post with a non-nil scheduled_at; GetByID and ListByUser do not, so direct
// links and the owner's own listing always resolve.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error)
	Feed(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error)
	Search(ctx context.Context, term string, limit, offset int) ([]*models.Post, error)
	Update(ctx context.Context, id, ownerID uint, patch models.PostPatch) (*models.Post, error)
	SoftDelete(ctx context.Context, id, ownerID uint) (bool, error)
}

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// Feed returns posts by accounts the viewer follows, newest first. Scheduled
// posts never enter the feed, even after their scheduled time has passed.
func (r *postRepository) Feed(ctx context.Context, viewerID uint, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	following := r.db.Model(&models.Follow{}).
		Select("following_id").
		Where("follower_id = ?", viewerID)

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id IN (?)", following).
		Where("scheduled_at IS NULL").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// Search does a case-insensitive substring match over content. LOWER/LIKE
// rather than ILIKE so the query also runs under the sqlite test driver.
func (r *postRepository) Search(ctx context.Context, term string, limit, offset int) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("LOWER(content) LIKE LOWER(?)", "%"+term+"%").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	return posts, err
}

// Update applies the patch in a single conditional UPDATE gated on ownership.
// GORM's default scope adds the soft-delete filter, so a concurrent delete
// resolves to zero rows affected, reported as gorm.ErrRecordNotFound.
// Callers must reject empty patches before reaching the store.
func (r *postRepository) Update(ctx context.Context, id, ownerID uint, patch models.PostPatch) (*models.Post, error) {
	cols := patch.Columns()
	if len(cols) == 0 {
		return nil, ErrEmptyPatch
	}

	res := r.db.WithContext(ctx).
		Model(&models.Post{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(cols)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// SoftDelete marks the post deleted if the requester owns it. Returns whether
// a row was actually flipped.
func (r *postRepository) SoftDelete(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Post{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
