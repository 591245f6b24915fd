// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations.
// Pagination is pushed down to the store; listings never transfer the full
// comment set. All read paths exclude soft-deleted rows.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error)
	Update(ctx context.Context, id, authorID uint, content string) (*models.Comment, error)
	SoftDelete(ctx context.Context, id, authorID uint) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) ListByPost(ctx context.Context, postID uint, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

// Update rewrites the content in a single conditional UPDATE gated on
// authorship; zero rows affected is reported as gorm.ErrRecordNotFound,
// conflating absent, deleted, and foreign-owned comments.
func (r *commentRepository) Update(ctx context.Context, id, authorID uint, content string) (*models.Comment, error) {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND user_id = ?", id, authorID).
		Update("content", content)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// SoftDelete marks the comment deleted if the requester wrote it. Returns
// whether a row was actually flipped.
func (r *commentRepository) SoftDelete(ctx context.Context, id, authorID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, authorID).
		Delete(&models.Comment{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
