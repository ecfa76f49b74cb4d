// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// RoleCustomer is the only role the platform currently grants.
	// Registration rejects any other requested value.
	RoleCustomer UserRole = "customer"
)

// IsValid reports whether the role is one the platform recognizes.
func (r UserRole) IsValid() bool {
	return r == RoleCustomer
}
