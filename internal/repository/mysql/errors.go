package mysql

import (
	"errors"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/Guyuepp/go-social-graph/domain"
)

const (
	errDupEntry        = 1062
	errNoReferencedRow = 1452
)

// isDuplicateKey reports a unique index violation, translated by gorm or raw from the driver.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errDupEntry
}

// isMissingReference reports a foreign key violation on insert.
func isMissingReference(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *mysqldriver.MySQLError
	return errors.As(err, &myErr) && myErr.Number == errNoReferencedRow
}

// translate maps storage errors onto domain errors; anything else is returned unchanged.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case isDuplicateKey(err):
		return domain.ErrAlreadyExists
	case isMissingReference(err):
		return domain.ErrNotFound
	default:
		return err
	}
}
