package model

import (
	"time"

	"github.com/Guyuepp/go-social-graph/domain"
)

type Post struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Content   string    `gorm:"type:longtext;not null"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_post_author_created,priority:1"`
	CreatedAt time.Time `gorm:"type:datetime(6);index:idx_post_author_created,priority:2"`
	UpdatedAt time.Time `gorm:"type:datetime(6)"`
}

func (Post) TableName() string {
	return "posts"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		User:      domain.User{ID: m.UserID},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
