package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err came from a unique index
// collision. The email column carries the only unique index in this schema,
// so a positive answer always means a duplicate registration attempt.
func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fallback for drivers that do not translate errors: PostgreSQL reports
	// unique_violation as SQLSTATE 23505.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "23505") ||
		strings.Contains(errMsg, "duplicate key")
}
