// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodbank/kodbank/internal/platform/apperr"
	"github.com/kodbank/kodbank/internal/platform/dberr"
)

/*
TestWrap classifies the three database error families: missing rows,
unique-constraint violations, and everything else.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			"no_rows",
			pgx.ErrNoRows,
			"NOT_FOUND",
			"User not found",
		},
		{
			"wrapped_no_rows",
			fmt.Errorf("query: %w", pgx.ErrNoRows),
			"NOT_FOUND",
			"User not found",
		},
		{
			"unique_violation",
			&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "account_username_key"},
			"CONFLICT",
			"User already exists",
		},
		{
			"other_pg_error",
			&pgconn.PgError{Code: pgerrcode.UndefinedTable},
			"INTERNAL_ERROR",
			"Internal server error",
		},
		{
			"plain_error",
			errors.New("connection reset"),
			"INTERNAL_ERROR",
			"Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "User")
			require.Error(t, wrapped)

			ae := apperr.As(wrapped)
			require.NotNil(t, ae)
			assert.Equal(t, tt.wantCode, ae.Code)
			assert.Equal(t, tt.wantMessage, ae.Message)
		})
	}

	t.Run("nil_error", func(t *testing.T) {
		assert.NoError(t, dberr.Wrap(nil, "User"))
	})
}

/*
TestIsUniqueViolation verifies the SQLSTATE 23505 detection, including
errors wrapped by the driver or by callers.
*/
func TestIsUniqueViolation(t *testing.T) {
	violation := &pgconn.PgError{Code: pgerrcode.UniqueViolation}

	assert.True(t, dberr.IsUniqueViolation(violation))
	assert.True(t, dberr.IsUniqueViolation(fmt.Errorf("insert: %w", violation)))

	assert.False(t, dberr.IsUniqueViolation(nil))
	assert.False(t, dberr.IsUniqueViolation(errors.New("unique-ish")))
	assert.False(t, dberr.IsUniqueViolation(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}))
}
