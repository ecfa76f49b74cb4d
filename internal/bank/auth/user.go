// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

/*
Package auth implements the credential and session-issuance layer.

It defines the core domain entities (Account, TokenAudit) and logic for
registration, authentication, and session token issuance.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to account identity.
*/
package auth

import (
	"time"

	"github.com/kodbank/kodbank/internal/platform/sec"
)

// # Domain Entities

// Account represents a registered Kodbank customer.
//
// UID and Username are both globally unique and immutable after creation.
// UID is assigned by the registering client, never generated server-side;
// Username is the sole principal identity embedded in session tokens.
type Account struct {
	UID          string       `json:"uid"`
	Username     string       `json:"uname"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Phone        string       `json:"phone"`
	Balance      int64        `json:"balance"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"created_at"`
}

// TokenAudit is the durable record of an issued session token.
//
// It exists for traceability only. Nothing in the service ever reads it
// back: token validity is self-contained (signature + embedded expiry),
// and there is no server-side revocation.
type TokenAudit struct {
	ID     string    `json:"id"`
	Token  string    `json:"-"` // Never serialized; the cookie is the only delivery channel.
	UID    string    `json:"uid"`
	Expiry time.Time `json:"expiry"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldUID      = "uid"
	FieldUsername = "uname"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldRole     = "role"
	FieldMessage  = "message"
)
