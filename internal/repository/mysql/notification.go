package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-social-graph/domain"
	"github.com/Guyuepp/go-social-graph/internal/repository"
	"github.com/Guyuepp/go-social-graph/internal/repository/mysql/model"
)

type notificationRepository struct {
	DB *gorm.DB
}

var _ domain.NotificationRepository = (*notificationRepository)(nil)

func NewNotificationRepository(db *gorm.DB) *notificationRepository {
	return &notificationRepository{db}
}

func (m *notificationRepository) FetchUnread(ctx context.Context, recipientID int64, cursor string, num int64) ([]domain.Notification, error) {
	decoded, err := repository.DecodeCursor(cursor)
	if err != nil {
		return nil, domain.ErrBadParamInput
	}
	repository.PageVerify(&num)

	query := m.DB.WithContext(ctx).
		Where("recipient_id = ? AND is_read = ?", recipientID, false)
	if !decoded.IsZero() {
		query = query.Where("(created_at < ? OR (created_at = ? AND id < ?))",
			decoded.CreatedAt, decoded.CreatedAt, decoded.ID)
	}

	var rows []model.Notification
	err = query.Order("created_at DESC, id DESC").Limit(int(num)).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Notification, len(rows))
	for i := range rows {
		res[i] = rows[i].ToDomain()
	}
	return res, nil
}

// MarkRead locks the row owned by recipientID and flips it to read.
// Another recipient's notification is reported as not found.
func (m *notificationRepository) MarkRead(ctx context.Context, recipientID, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row model.Notification
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND recipient_id = ?", id, recipientID).
			First(&row).Error
		if err != nil {
			return translate(err)
		}
		if row.IsRead {
			return nil
		}
		return tx.Model(&model.Notification{}).
			Where("id = ?", row.ID).
			Update("is_read", true).Error
	})
}

func (m *notificationRepository) CountUnread(ctx context.Context, recipientID int64) (int64, error) {
	var n int64
	err := m.DB.WithContext(ctx).
		Model(&model.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&n).Error
	return n, err
}
