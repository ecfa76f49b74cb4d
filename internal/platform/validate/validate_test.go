// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodbank/kodbank/internal/platform/apperr"
	"github.com/kodbank/kodbank/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "uname", "kodet", false},
		{"empty_string", "uname", "", true},
		{"whitespace_only", "uname", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_MaxLen checks the length ceiling rule (Unicode-aware).
*/
func TestValidator_MaxLen(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		max      int
		hasError bool
	}{
		{"under_limit", "kodet", 10, false},
		{"at_limit", "kodet", 5, false},
		{"over_limit", "kodet", 4, true},
		{"multibyte_counted_as_runes", "kødet", 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.MaxLen("uname", tt.value, tt.max)

			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Custom tests the arbitrary-condition rule used for the role check.
*/
func TestValidator_Custom(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		hasError bool
	}{
		{"empty_role_defaults", "", false},
		{"explicit_customer", "customer", false},
		{"forbidden_role", "admin", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Custom("role", tt.role != "" && tt.role != "customer", "Only role customer is allowed")

			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Chain tests the fluent API (chaining multiple rules).
*/
func TestValidator_Chain(t *testing.T) {
	v := &validate.Validator{}

	// Multi-rule validation
	err := v.
		Required("uname", "kodet").
		MaxLen("uname", "kodet", 10).
		Required("email", "kodet@kodbank.app").
		Custom("role", false, "unused").
		Err()

	assert.NoError(t, err)
	assert.False(t, v.HasErrors())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	// All three rules fail
	err := v.
		Required("uname", "").
		MaxLen("phone", "123456", 5).
		Custom("role", true, "Only role customer is allowed").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	// Should accumulate all 3 errors
	assert.Len(t, ae.Details, 3)
}
