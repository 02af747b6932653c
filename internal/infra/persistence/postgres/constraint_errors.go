package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// The gorm.Config TranslateError option maps driver-level constraint
// failures onto GORM's sentinel errors, so checks here stay portable across
// driver versions.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
