// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package account

import (
	"context"
	"log/slog"
	"time"

	"github.com/kodbank/kodbank/internal/platform/ctxutil"
)

// balanceCacheTTL bounds how long a cached balance lives in Redis.
// Correctness does not depend on it (balances are immutable in this
// service); it exists to keep the keyspace from growing unbounded.
const balanceCacheTTL = 15 * time.Minute

// Service implements read-only account query use cases.
type Service struct {
	balanceRepository BalanceRepository
	balanceCache      BalanceCache
}

// NewService constructs a new account [Service].
//
// The cache may be nil, in which case every lookup goes to the repository.
func NewService(balanceRepo BalanceRepository, cache BalanceCache) *Service {
	return &Service{
		balanceRepository: balanceRepo,
		balanceCache:      cache,
	}
}

/*
GetBalance returns the stored balance for a verified identity.

Description: Read-through lookup. Cache failures degrade silently to the
primary database; a cache write failure after a successful read is logged
and ignored.

Parameters:
  - context: context.Context
  - username: string (must come from a verified session, never a raw token)

Returns:
  - int64: Balance in whole currency units
  - err: apperr.NotFound if the identity resolves to no account, or storage errors
*/
func (service *Service) GetBalance(context context.Context, username string) (int64, error) {

	// 1. Cache fast path. Errors count as misses.
	if service.balanceCache != nil {
		balance, hit, err := service.balanceCache.Get(context, username)
		if err != nil {
			ctxutil.GetLogger(context).DebugContext(context, "balance_cache_read_failed",
				slog.Any("error", err),
			)
		} else if hit {
			return balance, nil
		}
	}

	// 2. Authoritative lookup.
	balance, err := service.balanceRepository.FindBalanceByUsername(context, username)
	if err != nil {
		return 0, err
	}

	// 3. Populate the cache best-effort.
	if service.balanceCache != nil {
		if err := service.balanceCache.Set(context, username, balance, balanceCacheTTL); err != nil {
			ctxutil.GetLogger(context).DebugContext(context, "balance_cache_write_failed",
				slog.Any("error", err),
			)
		}
	}

	return balance, nil
}
