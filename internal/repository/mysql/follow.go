package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/repository/mysql/model"
)

type followRepository struct {
	DB *gorm.DB
}

// followRepository only talks to the database; caching lives in the coordinating repository
var _ domain.FollowDBRepository = (*followRepository)(nil)

func NewFollowDBRepository(db *gorm.DB) *followRepository {
	return &followRepository{db}
}

// Store checks the followee and inserts the edge in one transaction.
// The unique index on (follower_id, followee_id) settles concurrent inserts.
func (m *followRepository) Store(ctx context.Context, f *domain.Follow) error {
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.User{}).Where("id = ?", f.FolloweeID).Count(&n).Error; err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Create(model.NewFollowFromDomain(f)).Error; err != nil {
			return translate(err)
		}
		return nil
	})
}

func (m *followRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	result := m.DB.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&model.Follow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (m *followRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var n int64
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&n).Error
	return n > 0, err
}

func (m *followRepository) FetchFollowingIDs(ctx context.Context, uid int64) ([]int64, error) {
	ids := []int64{}
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("follower_id = ?", uid).
		Order("followee_id").
		Pluck("followee_id", &ids).Error
	return ids, err
}

func (m *followRepository) FetchFollowerIDs(ctx context.Context, uid int64) ([]int64, error) {
	ids := []int64{}
	err := m.DB.WithContext(ctx).
		Model(&model.Follow{}).
		Where("followee_id = ?", uid).
		Order("follower_id").
		Pluck("follower_id", &ids).Error
	return ids, err
}
