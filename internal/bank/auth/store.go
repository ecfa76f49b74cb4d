// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package auth

import (
	"context"
)

// # Account Data Access

// AccountRepository defines the data access contract for customer accounts.
type AccountRepository interface {

	/*
		Create persists a brand-new account to storage.

		A unique-constraint violation on uid or username surfaces as
		apperr.Conflict — the database constraint is the authoritative
		duplicate check.

		Parameters:
		  - context: context.Context
		  - account: *Account

		Returns:
		  - error: apperr.Conflict or persistence failures
	*/
	Create(context context.Context, account *Account) error

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *Account: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*Account, error)

	/*
		Exists reports whether any account already uses the given uid OR username.

		This is the registration fast path only; Create remains safe without it.

		Parameters:
		  - context: context.Context
		  - uid: string
		  - username: string

		Returns:
		  - bool: true if a matching account exists
		  - error: Database retrieval failures
	*/
	Exists(context context.Context, uid, username string) (bool, error)
}

// # Token Audit Data Access

// TokenAuditRepository defines the write-only contract for session token
// issuance records.
//
// There is deliberately no read method: the audit table is bookkeeping,
// never consulted for authorization or revocation.
type TokenAuditRepository interface {

	/*
		Create persists the audit record of a freshly issued session token.

		Parameters:
		  - context: context.Context
		  - audit: *TokenAudit

		Returns:
		  - error: Persistence failures (callers treat these as non-fatal)
	*/
	Create(context context.Context, audit *TokenAudit) error
}
