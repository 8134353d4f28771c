package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/repository/mysql/model"
)

type likeRepository struct {
	DB *gorm.DB
}

var _ domain.LikeRepository = (*likeRepository)(nil)

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db}
}

// StoreWithNotification writes the like and its notification atomically.
// A duplicate like rolls the whole transaction back.
func (m *likeRepository) StoreWithNotification(ctx context.Context, l *domain.Like, n *domain.Notification) error {
	if err := n.Target.Validate(); err != nil {
		return err
	}
	now := time.Now()
	if l.CreatedAt.IsZero() {
		l.CreatedAt = now
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = now
	}

	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.NewLikeFromDomain(l)).Error; err != nil {
			return translate(err)
		}

		notification := model.NewNotificationFromDomain(n)
		if err := tx.Create(notification).Error; err != nil {
			return err
		}
		n.ID = notification.ID
		return nil
	})
}

func (m *likeRepository) Delete(ctx context.Context, userID, postID int64) error {
	result := m.DB.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *likeRepository) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	var n int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&n).Error
	return n > 0, err
}

func (m *likeRepository) Count(ctx context.Context, postID int64) (int64, error) {
	var n int64
	err := m.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("post_id = ?", postID).
		Count(&n).Error
	return n, err
}
