package model

import (
	"time"

	"github.com/Guyuepp/go-social-graph/domain"
)

// Follow is one edge follower_id -> followee_id.
// idx_follow_pair enforces at most one edge per ordered pair.
type Follow struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	FollowerID int64     `gorm:"column:follower_id;not null;uniqueIndex:idx_follow_pair,priority:1"`
	FolloweeID int64     `gorm:"column:followee_id;not null;uniqueIndex:idx_follow_pair,priority:2;index:idx_follow_followee"`
	CreatedAt  time.Time `gorm:"type:datetime(6)"`
}

func (Follow) TableName() string {
	return "follows"
}

func NewFollowFromDomain(f *domain.Follow) *Follow {
	return &Follow{
		FollowerID: f.FollowerID,
		FolloweeID: f.FolloweeID,
		CreatedAt:  f.CreatedAt,
	}
}
