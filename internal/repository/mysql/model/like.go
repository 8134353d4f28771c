package model

import (
	"time"

	"github.com/Guyuepp/go-social-graph/domain"
)

type Like struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:idx_like_pair,priority:1"`
	PostID    int64     `gorm:"column:post_id;not null;uniqueIndex:idx_like_pair,priority:2;index:idx_like_post"`
	CreatedAt time.Time `gorm:"type:datetime(6)"`
}

func (Like) TableName() string {
	return "likes"
}

func NewLikeFromDomain(l *domain.Like) *Like {
	return &Like{
		UserID:    l.UserID,
		PostID:    l.PostID,
		CreatedAt: l.CreatedAt,
	}
}
