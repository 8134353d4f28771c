package mysql

import (
	"gorm.io/gorm"

	"github.com/Guyuepp/go-social-graph/internal/repository/mysql/model"
)

// AutoMigrate creates the tables owned by this service and the unique
// indexes the relation invariants rely on.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Follow{},
		&model.Like{},
		&model.Notification{},
	)
}
