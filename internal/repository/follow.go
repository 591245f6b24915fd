// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"ripple/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FollowRepository defines the interface for follow-edge data operations.
//
// Follow is an idempotent upsert: inserting an existing edge succeeds without
// touching the row. Two concurrent calls for the same pair race on the unique
// index and both report success.
type FollowRepository interface {
	Follow(ctx context.Context, followerID, followingID uint) error
	Unfollow(ctx context.Context, followerID, followingID uint) (bool, error)
	Following(ctx context.Context, userID uint) ([]uint, error)
	Followers(ctx context.Context, userID uint) ([]uint, error)
	Counts(ctx context.Context, userID uint) (models.FollowCounts, error)
}

// followRepository implements FollowRepository
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new follow repository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

func (r *followRepository) Follow(ctx context.Context, followerID, followingID uint) error {
	edge := models.Follow{FollowerID: followerID, FollowingID: followingID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "follower_id"}, {Name: "following_id"}},
			DoNothing: true,
		}).
		Create(&edge).Error
}

// Unfollow removes the edge and reports whether one existed.
func (r *followRepository) Unfollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *followRepository) Following(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Pluck("following_id", &ids).Error
	return ids, err
}

func (r *followRepository) Followers(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Pluck("follower_id", &ids).Error
	return ids, err
}

// Counts runs the two counts as independent queries; read-committed
// consistency between them is acceptable.
func (r *followRepository) Counts(ctx context.Context, userID uint) (models.FollowCounts, error) {
	var counts models.FollowCounts
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("following_id = ?", userID).
		Count(&counts.Followers).Error; err != nil {
		return counts, err
	}
	if err := r.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Count(&counts.Following).Error; err != nil {
		return counts, err
	}
	return counts, nil
}
