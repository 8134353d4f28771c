package model

import (
	"time"

	"github.com/Guyuepp/go-social-graph/domain"
)

type Notification struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	RecipientID int64     `gorm:"column:recipient_id;not null;index:idx_notification_inbox,priority:1"`
	ActorID     int64     `gorm:"column:actor_id;not null"`
	Verb        string    `gorm:"type:varchar(255);not null"`
	TargetType  string    `gorm:"column:target_type;type:varchar(32);not null"`
	TargetID    int64     `gorm:"column:target_id;not null"`
	IsRead      bool      `gorm:"column:is_read;not null;default:false;index:idx_notification_inbox,priority:2"`
	CreatedAt   time.Time `gorm:"type:datetime(6);index:idx_notification_inbox,priority:3"`
}

func (Notification) TableName() string {
	return "notifications"
}

func NewNotificationFromDomain(n *domain.Notification) *Notification {
	return &Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		ActorID:     n.ActorID,
		Verb:        n.Verb,
		TargetType:  string(n.Target.Kind),
		TargetID:    n.Target.ID,
		IsRead:      n.Read,
		CreatedAt:   n.CreatedAt,
	}
}

func (m *Notification) ToDomain() domain.Notification {
	return domain.Notification{
		ID:          m.ID,
		RecipientID: m.RecipientID,
		ActorID:     m.ActorID,
		Verb:        m.Verb,
		Target: domain.Target{
			Kind: domain.TargetKind(m.TargetType),
			ID:   m.TargetID,
		},
		Read:      m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}
