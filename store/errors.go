package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Failure taxonomy surfaced to the transport layers. Everything else is an
// unhandled store error and must not leak detail to clients.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("conflict")
)

// translate maps gorm and driver errors onto the taxonomy. Constraint
// violations become ErrConflict: the database schema is the authoritative
// enforcement point, the application-level pre-checks above it only exist to
// produce friendlier messages before the race window closes.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: constraint violated", ErrConflict)
	}
	if isConstraintViolation(err) {
		return fmt.Errorf("%w: constraint violated", ErrConflict)
	}
	return err
}

// isConstraintViolation matches unique and FK violation messages across the
// postgres and sqlite drivers.
func isConstraintViolation(err error) bool {
	s := err.Error()
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "UNIQUE constraint failed") ||
		strings.Contains(s, "violates foreign key constraint") ||
		strings.Contains(s, "FOREIGN KEY constraint failed")
}
