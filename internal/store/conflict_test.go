package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"campus-coffee-backend/internal/model"
)

func TestClassifyConstraintErr(t *testing.T) {
	testCases := []struct {
		name      string
		err       error
		wantMatch bool
	}{
		{
			name:      "Postgres unique violation on the name index",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "idx_pos_name"},
			wantMatch: true,
		},
		{
			name:      "Wrapped postgres unique violation on the name index",
			err:       fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_pos_name"}),
			wantMatch: true,
		},
		{
			name:      "Postgres unique violation on a different constraint",
			err:       &pgconn.PgError{Code: "23505", ConstraintName: "idx_pos_postal_code"},
			wantMatch: false,
		},
		{
			name:      "Postgres unique violation without a constraint identifier",
			err:       &pgconn.PgError{Code: "23505"},
			wantMatch: false,
		},
		{
			name:      "Postgres foreign key violation",
			err:       &pgconn.PgError{Code: "23503", ConstraintName: "fk_pos_campus"},
			wantMatch: false,
		},
		{
			name:      "Sqlite unique violation on the name column",
			err:       errors.New("UNIQUE constraint failed: pos.name"),
			wantMatch: true,
		},
		{
			name:      "Sqlite unique violation on another column",
			err:       errors.New("UNIQUE constraint failed: pos.id"),
			wantMatch: false,
		},
		{
			name:      "Unrelated error",
			err:       errors.New("connection refused"),
			wantMatch: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := classifyConstraintErr(tc.err, "Café Central")
			if tc.wantMatch {
				var dup model.DuplicateNameError
				assert.ErrorAs(t, got, &dup)
				assert.Equal(t, "Café Central", dup.Name)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}
