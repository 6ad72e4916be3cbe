package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"campus-coffee-backend/internal/model"
)

const (
	// pgUniqueViolation is the SQLSTATE class 23 code for unique_violation.
	pgUniqueViolation = "23505"

	// nameUniqueConstraint is the identifier GORM derives for the unique
	// index on pos.name (idx_<table>_<column>).
	nameUniqueConstraint = "idx_pos_name"

	// sqliteNameViolation is the message the sqlite driver, used in tests,
	// produces for the same violation.
	sqliteNameViolation = "UNIQUE constraint failed: pos.name"
)

// classifyConstraintErr decides whether a write failure is a duplicate of the
// pos name unique constraint. It returns DuplicateNameError for a unique
// violation attributable to that constraint and nil for everything else, in
// which case the caller must propagate the original error unchanged. A
// violation whose constraint cannot be identified is never classified.
func classifyConstraintErr(err error, name string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == nameUniqueConstraint {
			return model.DuplicateNameError{Name: name}
		}
		return nil
	}

	if strings.Contains(err.Error(), sqliteNameViolation) {
		return model.DuplicateNameError{Name: name}
	}

	return nil
}
