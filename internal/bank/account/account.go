// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

/*
Package account handles read-only account queries for authenticated customers.

It provides the balance lookup behind the session verifier. The package never
accepts raw tokens: callers resolve the principal identity first and pass the
verified username in.

# Architecture

  - Service: Orchestrates the cached balance lookup.
  - Repository: Postgres for truth, Redis as a TTL-bounded read-through cache.
  - Domain: Depends on the auth package's account table, not its logic.
*/
package account

import (
	"context"
	"time"
)

// # Repository Contracts

// BalanceRepository defines the persistence contract for balance lookups.
type BalanceRepository interface {
	/*
		FindBalanceByUsername returns the stored balance for a username.

		Parameters:
		  - context: context.Context
		  - username: string (verified session subject)

		Returns:
		  - int64: Balance in whole currency units
		  - error: apperr.NotFound or storage failures
	*/
	FindBalanceByUsername(context context.Context, username string) (int64, error)
}

// BalanceCache defines the volatile cache contract fronting the repository.
//
// Balance is immutable after account creation, so serving a cached value can
// never return stale data; the TTL only bounds memory, not correctness.
type BalanceCache interface {
	/*
		Get retrieves a cached balance.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - int64: Cached balance
		  - bool: true on a cache hit
		  - error: Connectivity failures (treated as a miss by callers)
	*/
	Get(context context.Context, username string) (int64, bool, error)

	/*
		Set stores a balance with the given TTL.

		Parameters:
		  - context: context.Context
		  - username: string
		  - balance: int64
		  - ttl: time.Duration

		Returns:
		  - error: Connectivity failures (best-effort for callers)
	*/
	Set(context context.Context, username string, balance int64, ttl time.Duration) error
}
