package postgres

import (
	"strings"

	"addressing/internal/errors"

	"gorm.io/gorm"
)

// SQLSTATE codes a malformed address block can trip.
const (
	sqlStateNotNullViolation = "23502"
	sqlStateCheckViolation   = "23514"
)

// isAddressConstraintViolation reports whether err is the database rejecting
// the row rather than failing to run the statement. pgx formats server
// errors as "... (SQLSTATE xxxxx)".
func isAddressConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	msg := err.Error()

	return strings.Contains(msg, "SQLSTATE "+sqlStateNotNullViolation) ||
		strings.Contains(msg, "SQLSTATE "+sqlStateCheckViolation)
}
