// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post in the Ripple application.
//
// A post with a non-nil ScheduledAt is hidden from follower feeds for its
// entire lifetime; direct lookup and the owner's own listing still return it.
type Post struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Content         string         `gorm:"type:text;not null" json:"content"`
	MediaURL        string         `json:"media_url,omitempty"`
	CommentsEnabled bool           `gorm:"not null;default:true" json:"comments_enabled"`
	ScheduledAt     *time.Time     `gorm:"index" json:"scheduled_at,omitempty"`
	UserID          uint           `gorm:"not null;index" json:"user_id"`
	User            User           `gorm:"foreignKey:UserID" json:"user"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// PostPatch is a partial update to a post. Nil fields are left unchanged.
type PostPatch struct {
	Content         *string `json:"content"`
	MediaURL        *string `json:"media_url"`
	CommentsEnabled *bool   `json:"comments_enabled"`
}

// IsZero reports whether the patch carries no fields.
func (p PostPatch) IsZero() bool {
	return p.Content == nil && p.MediaURL == nil && p.CommentsEnabled == nil
}

// Columns maps present patch fields onto their columns. The mapping is fixed;
// patches never assemble column names dynamically.
func (p PostPatch) Columns() map[string]any {
	cols := make(map[string]any, 3)
	if p.Content != nil {
		cols["content"] = *p.Content
	}
	if p.MediaURL != nil {
		cols["media_url"] = *p.MediaURL
	}
	if p.CommentsEnabled != nil {
		cols["comments_enabled"] = *p.CommentsEnabled
	}
	return cols
}
