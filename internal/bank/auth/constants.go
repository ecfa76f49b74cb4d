// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package auth

import "time"

// # Account Policy

const (
	// SessionTokenTTL is the duration a session token remains valid.
	// The cookie MaxAge mirrors this value exactly.
	SessionTokenTTL = 1 * time.Hour

	// InitialBalanceGrant is the fixed balance (whole currency units)
	// every new account starts with. Balance is immutable after creation;
	// the grant is policy, so it lives here rather than inline in SQL or
	// service code.
	InitialBalanceGrant int64 = 100000
)
