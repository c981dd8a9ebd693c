package repositories

import (
	"errors"
	"strings"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const pqUniqueViolation = pq.ErrorCode("23505")

// isUniqueViolation reports whether err comes from a unique index.
// gorm only translates pgx errors, so lib/pq errors are matched by SQLSTATE.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || strings.Contains(msg, "UNIQUE constraint failed")
}
