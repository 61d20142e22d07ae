package postgres

import (
	"bookkeeper/internal/errors"

	"gorm.io/gorm"
)

// isUniqueConstraintViolation relies on gorm's TranslateError, which maps both
// PostgreSQL 23505 and SQLite constraint codes onto gorm.ErrDuplicatedKey.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
