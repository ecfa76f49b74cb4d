// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

/*
Package auth implements the core identity system for Kodbank.

It handles account registration with secure password hashing and session
issuance via signed bearer tokens.

Architecture:

  - Service: Orchestrates business logic (Register, Login).
  - Repository: Abstracted interfaces for Postgres (Accounts, TokenAudit).
  - Security: Leverages bcrypt and HMAC-signed JWTs from internal/platform/sec.

The package ensures that identity data remains consistent and secure throughout
the platform's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/kodbank/kodbank/internal/platform/apperr"
	"github.com/kodbank/kodbank/internal/platform/ctxutil"
	"github.com/kodbank/kodbank/internal/platform/sec"
	"github.com/kodbank/kodbank/pkg/uuidv7"
)

// # Contracts & Types

// TokenProvider defines the contract for generating session tokens.
type TokenProvider interface {
	// GenerateSessionToken creates a signed token string for the given account.
	//
	// # Parameters
	//   - username: The principal identity (token subject).
	//   - role: The role of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed token string, or an err if signing fails.
	GenerateSessionToken(username, role string, timeToLive time.Duration) (string, error)
}

// Service implements account authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	accountRepository    AccountRepository
	tokenAuditRepository TokenAuditRepository
	tokenProvider        TokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	accountRepo AccountRepository,
	auditRepo TokenAuditRepository,
	tokenProv TokenProvider,
) *Service {
	return &Service{
		accountRepository:    accountRepo,
		tokenAuditRepository: auditRepo,
		tokenProvider:        tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new customer.
type RegisterInput struct {
	UID      string
	Username string
	Password string
	Email    string
	Phone    string
}

/*
Register validates, hashes, and persists a brand new customer account.

Description: Enrolls a new customer with the fixed initial balance grant and
the customer role. The existence pre-check gives a clean Conflict on the
common path; the database unique constraints close the check-then-insert
race, and a constraint violation surfaces as the same Conflict.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Account: Created entity
  - err: Conflict (if uid or username is taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Account, error) {

	// Fast-path uniqueness check across both identifiers. A client-safe
	// Conflict err keeps the message identical for uid and username reuse.
	taken, err := service.accountRepository.Exists(context, input.UID, input.Username)
	if err != nil {
		return nil, fmt.Errorf("auth_service_exists_check_failed: %w", err)
	}
	if taken {
		return nil, apperr.Conflict("User with same uid/username exists")
	}

	// Prevent storing plain-text passwords. The cost factor is pinned in
	// the sec package.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new Account entity. Role and balance are policy
	// constants, never taken from the request.
	account := &Account{
		UID:          input.UID,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Phone:        input.Phone,
		Balance:      InitialBalanceGrant,
		Role:         sec.RoleCustomer,
	}

	// Persist the account. A concurrent duplicate insert loses here and
	// comes back as apperr.Conflict from the repository.
	if err := service.accountRepository.Create(context, account); err != nil {
		return nil, err
	}

	return account, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession represents a successfully established session.
type LoginSession struct {
	Token     string
	ExpiresAt time.Time
	Account   *Account
}

/*
Login validates customer credentials and issues a session token.

Description: Verifies identity, performs constant-time password comparison,
mints a signed bearer token, and records a best-effort audit copy of the
issued token.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready session token and expiry
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Look up the account by username. Only a missing account collapses
	// into the generic credential error: an unknown user and a wrong
	// password must be indistinguishable to the caller. Storage faults
	// propagate and surface as 500, never as a credential rejection.
	account, err := service.accountRepository.FindByUsername(context, input.Username)
	if err != nil {
		if ae := apperr.As(err); ae != nil && ae.Code == "NOT_FOUND" {
			return nil, apperr.Unauthorized("Invalid credentials")
		}
		return nil, fmt.Errorf("auth_service_find_by_username_failed: %w", err)
	}

	// Verify password hash using the constant-time comparison in bcrypt.
	// The failure message is byte-identical to the unknown-user one.
	if !sec.CheckPasswordHash(input.Password, account.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	// Mint the signed session token
	token, err := service.tokenProvider.GenerateSessionToken(account.Username, string(account.Role), SessionTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	// Record the audit copy of the issued token. This write is best-effort:
	// the token is self-contained and never depends on the audit row for
	// verification, so a storage failure here must not fail the login.
	expiresAt := time.Now().Add(SessionTokenTTL)
	audit := &TokenAudit{
		ID:     uuidv7.New(),
		Token:  token,
		UID:    account.UID,
		Expiry: expiresAt,
	}

	if err := service.tokenAuditRepository.Create(context, audit); err != nil {
		ctxutil.GetLogger(context).WarnContext(context, "auth_token_audit_write_failed",
			slog.String("uid", account.UID),
			slog.Any("error", err),
		)
	}

	return &LoginSession{
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   account,
	}, nil
}
