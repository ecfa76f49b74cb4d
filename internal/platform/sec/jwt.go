// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via the [auth.TokenProvider] interface.
package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired reports that a presented token failed verification solely
// because its expiry has passed. The HTTP layer still returns a generic
// message; the distinction exists for logging and tests.
var ErrTokenExpired = errors.New("sec: token expired")

// AuthClaims represents the payload embedded inside a session token.
//
// # Why custom claims?
//
// By embedding the Role next to the registered Subject (username), the
// cookie middleware can reconstruct the active user context WITHOUT querying
// the database on every single API request. The token is a pure bearer
// credential: validity is self-contained and no server-side state is
// consulted during verification.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Role is the authorization level bound to this session.
	Role string `json:"role"`
}

// TokenService handles generation and verification of session JWTs using
// HS256 with a single process-wide secret.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService signing with the given secret.
//
// The secret is read-only after construction; rotation requires a restart.
func NewTokenService(secret, issuer string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// GenerateSessionToken creates a signed session token for a user.
//
// # Claims
//   - sub: the username (sole principal identity)
//   - role: the account role
//   - iat / exp: issuance time and issuance + timeToLive
func (service *TokenService) GenerateSessionToken(username, role string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a session token string.
//
// Expired tokens return [ErrTokenExpired]; any other failure (malformed
// input, wrong signature, wrong algorithm) returns an opaque error.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
