// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

// Package middleware provides the HTTP middleware chain for the Kodbank API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, AuthN, Rate Limiting, and CORS.
package middleware

import (
	"net/http"

	"github.com/kodbank/kodbank/internal/platform/apperr"
	"github.com/kodbank/kodbank/internal/platform/constants"
	"github.com/kodbank/kodbank/internal/platform/ctxutil"
	"github.com/kodbank/kodbank/internal/platform/respond"
	"github.com/kodbank/kodbank/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify session tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing us to easily inject mocks during unit testing.
type TokenVerifier interface {
	VerifyToken(tokenStr string) (*sec.AuthClaims, error)
}

// Authenticate extracts and verifies the session token from the auth_token cookie.
//
// # Flow
//  1. Look for the 'auth_token' cookie (the sole credential carrier).
//  2. If absent, the request proceeds as anonymous; [RequireAuth] decides
//     whether that is acceptable downstream and reports the missing
//     credential distinctly from an invalid one.
//  3. If present, verify the token signature and expiry via [TokenVerifier].
//     The token is self-contained; no storage lookup happens here.
//  4. Inject [*sec.AuthClaims] into the request context for downstream use.
//
// # Parameters
//   - verifier: The TokenVerifier instance.
//
// # Returns
//   - An [http.Handler] middleware.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			cookie, err := request.Cookie(constants.SessionCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.VerifyToken(cookie.Value)
			if err != nil {
				// Covers bad signatures, malformed tokens, and expiry alike.
				// The external message stays generic either way.
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that did not present a session cookie.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
//
// # Flow
//  1. Check if [*sec.AuthClaims] exists in context via [ctxutil.GetAuthUser].
//  2. If missing, abort with HTTP 401 Unauthorized. The message differs
//     from the invalid-token one so clients can tell an absent credential
//     carrier from a rejected token.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Missing auth token"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
