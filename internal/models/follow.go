package models

import "time"

// Follow represents a directed follow edge between two users.
// The (FollowerID, FollowingID) pair must be unique; edges are removed
// outright on unfollow.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follows_edge" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follows_edge" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	// Relationships
	Follower  User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Following User `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
}

// FollowCounts holds the follower/following totals for a user. The two
// counts are computed independently and are not required to be mutually
// consistent under concurrent writes.
type FollowCounts struct {
	Followers int64 `json:"followers"`
	Following int64 `json:"following"`
}
