package models

import (
	"time"
)

// Follow is a directed edge from a follower to a followed user. A user's
// "following" and "followers" sets are both views over this one relation,
// so the two sides can never disagree. The composite unique index makes
// duplicate edge creation a constraint violation rather than a data bug.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FolloweeID uint      `gorm:"not null;uniqueIndex:idx_follow_edge" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}

// RelationshipEntry is a user summary annotated with the viewer's own
// relationship to that user, not the listed user's.
type RelationshipEntry struct {
	Summary
	IsFollowing bool `json:"is_following"`
	IsAFollower bool `json:"is_a_follower"`
}

// DirectoryEntry is a user summary annotated with whether the viewer
// follows the listed user.
type DirectoryEntry struct {
	Summary
	IsFollowing bool `json:"is_following"`
}
