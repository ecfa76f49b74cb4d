// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

// PostgreSQL implementations of the auth repositories.
//
// # Error Mapping
//
// Storage-specific errors (pgx.ErrNoRows, SQLSTATE 23505) are mapped to
// domain-friendly [apperr.AppError] types via dberr to avoid leaking storage
// implementation details.
package auth

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kodbank/kodbank/internal/platform/apperr"
	"github.com/kodbank/kodbank/internal/platform/dberr"
)

// # Account Repository

// PostgresAccountRepository implements the AccountRepository interface using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of the AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
Create persists a new account record into the bank.account table.

Description: Inserts the full credential row. The primary key (uid) and the
unique index on username are the authoritative duplicate rejection; a
violation of either maps to apperr.Conflict.

Parameters:
  - context: context.Context
  - account: *Account (Entity to persist)

Returns:
  - error: apperr.Conflict, or wrapped connectivity/constraint errors
*/
func (repository *PostgresAccountRepository) Create(context context.Context, account *Account) error {
	const query = `
		INSERT INTO bank.account (
			uid, username, email, passwordhash, balance, phone, role, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		account.UID,
		account.Username,
		account.Email,
		account.PasswordHash,
		account.Balance,
		account.Phone,
		account.Role,
		account.CreatedAt,
	)

	if err != nil {
		// The wire contract names both identifiers, so the uniqueness case
		// gets its own message instead of dberr's generic Conflict text.
		if dberr.IsUniqueViolation(err) {
			return apperr.Conflict("User with same uid/username exists")
		}
		return dberr.Wrap(err, "User")
	}

	return nil
}

/*
FindByUsername retrieves an account record by its unique username.

Description: Standard lookup by username for authentication and balance
resolution.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - *Account: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByUsername(context context.Context, username string) (*Account, error) {
	const query = `
		SELECT uid, username, email, passwordhash, balance, phone, role, createdat
		FROM bank.account
		WHERE username = $1`

	account := &Account{}
	err := repository.pool.QueryRow(context, query, username).Scan(
		&account.UID,
		&account.Username,
		&account.Email,
		&account.PasswordHash,
		&account.Balance,
		&account.Phone,
		&account.Role,
		&account.CreatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return account, nil
}

/*
Exists reports whether an account already uses the given uid OR username.

Description: Registration fast path. Concurrent registrations can both pass
this check; the unique constraints in Create are the real safety net.

Parameters:
  - context: context.Context
  - uid: string
  - username: string

Returns:
  - bool: true if a matching row exists
  - error: Execution errors
*/
func (repository *PostgresAccountRepository) Exists(context context.Context, uid, username string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM bank.account WHERE uid = $1 OR username = $2)`

	var exists bool
	if err := repository.pool.QueryRow(context, query, uid, username).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "User")
	}

	return exists, nil
}

// # Token Audit Repository

// PostgresTokenAuditRepository implements the TokenAuditRepository interface.
type PostgresTokenAuditRepository struct {
	pool *pgxpool.Pool
}

// NewTokenAuditRepository creates a new PostgreSQL implementation of TokenAuditRepository.
func NewTokenAuditRepository(pool *pgxpool.Pool) *PostgresTokenAuditRepository {
	return &PostgresTokenAuditRepository{pool: pool}
}

/*
Create persists an audit record into the bank.usertoken table.

Description: Records a successful token issuance for traceability. The row
is never read back by the application.

Parameters:
  - context: context.Context
  - audit: *TokenAudit

Returns:
  - error: Storage failures
*/
func (repository *PostgresTokenAuditRepository) Create(context context.Context, audit *TokenAudit) error {
	const query = `
		INSERT INTO bank.usertoken (id, token, uid, expiry)
		VALUES ($1, $2, $3, $4)`

	_, err := repository.pool.Exec(context, query,
		audit.ID,
		audit.Token,
		audit.UID,
		audit.Expiry,
	)

	if err != nil {
		return dberr.Wrap(err, "TokenAudit")
	}

	return nil
}
