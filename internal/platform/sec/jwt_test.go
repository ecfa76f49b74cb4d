// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodbank/kodbank/internal/platform/sec"
)

const (
	testSecret = "unit-test-secret"
	testIssuer = "kodbank.test"
)

/*
TestTokenService_RoundTrip verifies that a generated token carries the
expected claims back through verification.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := sec.NewTokenService(testSecret, testIssuer)

	token, err := service.GenerateSessionToken("kodet", "customer", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "kodet", claims.Subject)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)

	// Expiry must be roughly now + TTL.
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

/*
TestTokenService_Expired verifies that an already-expired token fails with
the sentinel [sec.ErrTokenExpired].
*/
func TestTokenService_Expired(t *testing.T) {
	service := sec.NewTokenService(testSecret, testIssuer)

	// Negative TTL backdates the expiry past the validation leeway.
	token, err := service.GenerateSessionToken("kodet", "customer", -time.Hour)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_WrongSecret verifies that a token signed under one secret
is rejected by a verifier holding a different one.
*/
func TestTokenService_WrongSecret(t *testing.T) {
	signer := sec.NewTokenService(testSecret, testIssuer)
	verifier := sec.NewTokenService("another-secret", testIssuer)

	token, err := signer.GenerateSessionToken("kodet", "customer", time.Hour)
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(token)
	assert.Nil(t, claims)
	require.Error(t, err)
	assert.NotErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_Malformed verifies rejection of inputs that are not JWTs.
*/
func TestTokenService_Malformed(t *testing.T) {
	service := sec.NewTokenService(testSecret, testIssuer)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9"},
		{"wrong_segments", "a.b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.VerifyToken(tt.token)
			assert.Nil(t, claims)
			assert.Error(t, err)
		})
	}
}
