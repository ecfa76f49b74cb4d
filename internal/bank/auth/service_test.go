// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodbank/kodbank/internal/bank/auth"
	"github.com/kodbank/kodbank/internal/platform/apperr"
	"github.com/kodbank/kodbank/internal/platform/constants"
	"github.com/kodbank/kodbank/internal/platform/sec"
)

// # Test Fakes

// fakeAccountRepository is an in-memory AccountRepository keyed by username,
// mirroring the database unique constraints on uid and username. findErr
// forces FindByUsername to fail, simulating a storage outage.
type fakeAccountRepository struct {
	accounts []*auth.Account
	findErr  error
}

func (repo *fakeAccountRepository) Create(_ context.Context, account *auth.Account) error {
	for _, existing := range repo.accounts {
		if existing.UID == account.UID || existing.Username == account.Username {
			return apperr.Conflict("Account already exists")
		}
	}
	repo.accounts = append(repo.accounts, account)
	return nil
}

func (repo *fakeAccountRepository) FindByUsername(_ context.Context, username string) (*auth.Account, error) {
	if repo.findErr != nil {
		return nil, repo.findErr
	}
	for _, existing := range repo.accounts {
		if existing.Username == username {
			return existing, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *fakeAccountRepository) Exists(_ context.Context, uid, username string) (bool, error) {
	for _, existing := range repo.accounts {
		if existing.UID == uid || existing.Username == username {
			return true, nil
		}
	}
	return false, nil
}

// fakeTokenAuditRepository records audit writes; failNext forces the next
// Create call to fail so the best-effort contract can be asserted.
type fakeTokenAuditRepository struct {
	audits   []*auth.TokenAudit
	failNext bool
}

func (repo *fakeTokenAuditRepository) Create(_ context.Context, audit *auth.TokenAudit) error {
	if repo.failNext {
		repo.failNext = false
		return errors.New("audit storage unavailable")
	}
	repo.audits = append(repo.audits, audit)
	return nil
}

// newTestService wires a Service against in-memory fakes and a real HS256
// token service.
func newTestService(t *testing.T) (*auth.Service, *fakeAccountRepository, *fakeTokenAuditRepository, *sec.TokenService) {
	t.Helper()

	accountRepo := &fakeAccountRepository{}
	auditRepo := &fakeTokenAuditRepository{}
	tokenSvc := sec.NewTokenService("unit-test-secret", constants.AuthIssuer)

	return auth.NewService(accountRepo, auditRepo, tokenSvc), accountRepo, auditRepo, tokenSvc
}

var testRegisterInput = auth.RegisterInput{
	UID:      "u-1001",
	Username: "kodet",
	Password: "hunter2hunter2",
	Email:    "kodet@kodbank.app",
	Phone:    "+4512345678",
}

// # Registration

/*
TestService_Register verifies the happy path: the created account carries
the policy role and initial balance grant, and the password is stored hashed.
*/
func TestService_Register(t *testing.T) {
	service, accountRepo, _, _ := newTestService(t)

	account, err := service.Register(context.Background(), testRegisterInput)
	require.NoError(t, err)
	require.NotNil(t, account)

	assert.Equal(t, "u-1001", account.UID)
	assert.Equal(t, "kodet", account.Username)
	assert.Equal(t, sec.RoleCustomer, account.Role)
	assert.Equal(t, auth.InitialBalanceGrant, account.Balance)

	// The plaintext must never be persisted.
	assert.NotEqual(t, testRegisterInput.Password, account.PasswordHash)
	assert.True(t, sec.CheckPasswordHash(testRegisterInput.Password, account.PasswordHash))

	require.Len(t, accountRepo.accounts, 1)
}

/*
TestService_Register_Conflict verifies that reusing either identifier — uid
or username — yields the same Conflict error.
*/
func TestService_Register_Conflict(t *testing.T) {
	tests := []struct {
		name  string
		input auth.RegisterInput
	}{
		{"same_uid", auth.RegisterInput{UID: "u-1001", Username: "other", Password: "x", Email: "o@kodbank.app", Phone: "+450"}},
		{"same_username", auth.RegisterInput{UID: "u-2002", Username: "kodet", Password: "x", Email: "o@kodbank.app", Phone: "+450"}},
		{"same_both", testRegisterInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _ := newTestService(t)

			_, err := service.Register(context.Background(), testRegisterInput)
			require.NoError(t, err)

			account, err := service.Register(context.Background(), tt.input)
			assert.Nil(t, account)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "CONFLICT", ae.Code)
			assert.Equal(t, "User with same uid/username exists", ae.Message)
		})
	}
}

// # Authentication

/*
TestService_Login verifies credential checking, token issuance, and the
audit record written alongside a successful login.
*/
func TestService_Login(t *testing.T) {
	service, _, auditRepo, tokenSvc := newTestService(t)

	_, err := service.Register(context.Background(), testRegisterInput)
	require.NoError(t, err)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Username: "kodet",
		Password: testRegisterInput.Password,
	})
	require.NoError(t, err)
	require.NotNil(t, session)

	// The token must verify and carry the username as subject.
	claims, err := tokenSvc.VerifyToken(session.Token)
	require.NoError(t, err)
	assert.Equal(t, "kodet", claims.Subject)
	assert.Equal(t, string(sec.RoleCustomer), claims.Role)

	assert.WithinDuration(t, time.Now().Add(auth.SessionTokenTTL), session.ExpiresAt, time.Minute)

	// One audit row, bound to the account and the issued token.
	require.Len(t, auditRepo.audits, 1)
	assert.Equal(t, "u-1001", auditRepo.audits[0].UID)
	assert.Equal(t, session.Token, auditRepo.audits[0].Token)
	assert.NotEmpty(t, auditRepo.audits[0].ID)
}

/*
TestService_Login_InvalidCredentials verifies that unknown usernames and
wrong passwords fail with byte-identical errors (no account enumeration).
*/
func TestService_Login_InvalidCredentials(t *testing.T) {
	service, _, _, _ := newTestService(t)

	_, err := service.Register(context.Background(), testRegisterInput)
	require.NoError(t, err)

	tests := []struct {
		name  string
		input auth.LoginInput
	}{
		{"unknown_user", auth.LoginInput{Username: "ghost", Password: testRegisterInput.Password}},
		{"wrong_password", auth.LoginInput{Username: "kodet", Password: "not-the-password"}},
		{"empty_password", auth.LoginInput{Username: "kodet", Password: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, err := service.Login(context.Background(), tt.input)
			assert.Nil(t, session)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "UNAUTHORIZED", ae.Code)
			assert.Equal(t, "Invalid credentials", ae.Message)
		})
	}
}

/*
TestService_Login_StorageFailure verifies that a storage outage during the
account lookup is NOT reported as bad credentials: the error must propagate
so the HTTP layer maps it to 500, never 401.
*/
func TestService_Login_StorageFailure(t *testing.T) {
	service, accountRepo, _, _ := newTestService(t)

	_, err := service.Register(context.Background(), testRegisterInput)
	require.NoError(t, err)

	accountRepo.findErr = errors.New("connection refused")

	session, err := service.Login(context.Background(), auth.LoginInput{
		Username: "kodet",
		Password: testRegisterInput.Password,
	})
	assert.Nil(t, session)
	require.Error(t, err)

	// Not an AppError: respond.Error converts it to INTERNAL_ERROR / 500.
	assert.Nil(t, apperr.As(err))
	assert.NotEqual(t, "Invalid credentials", err.Error())
}

/*
TestService_Login_AuditWriteFailure verifies that a failing audit write does
not fail the login: the session is still issued.
*/
func TestService_Login_AuditWriteFailure(t *testing.T) {
	service, _, auditRepo, _ := newTestService(t)

	_, err := service.Register(context.Background(), testRegisterInput)
	require.NoError(t, err)

	auditRepo.failNext = true

	session, err := service.Login(context.Background(), auth.LoginInput{
		Username: "kodet",
		Password: testRegisterInput.Password,
	})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.NotEmpty(t, session.Token)

	// The failed write left no audit row behind.
	assert.Empty(t, auditRepo.audits)
}
