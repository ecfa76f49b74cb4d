// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package account_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kodbank/kodbank/internal/bank/account"
	"github.com/kodbank/kodbank/internal/platform/apperr"
)

// # Test Fakes

// fakeBalanceRepository serves balances from a map and counts lookups so the
// cache fast path can be asserted.
type fakeBalanceRepository struct {
	balances map[string]int64
	lookups  int
}

func (repo *fakeBalanceRepository) FindBalanceByUsername(_ context.Context, username string) (int64, error) {
	repo.lookups++
	balance, ok := repo.balances[username]
	if !ok {
		return 0, apperr.NotFound("User")
	}
	return balance, nil
}

// fakeBalanceCache is an in-memory BalanceCache with switchable failure modes.
type fakeBalanceCache struct {
	entries  map[string]int64
	failGet  bool
	failSet  bool
	setCalls int
}

func (cache *fakeBalanceCache) Get(_ context.Context, username string) (int64, bool, error) {
	if cache.failGet {
		return 0, false, errors.New("cache unavailable")
	}
	balance, ok := cache.entries[username]
	return balance, ok, nil
}

func (cache *fakeBalanceCache) Set(_ context.Context, username string, balance int64, _ time.Duration) error {
	cache.setCalls++
	if cache.failSet {
		return errors.New("cache unavailable")
	}
	if cache.entries == nil {
		cache.entries = map[string]int64{}
	}
	cache.entries[username] = balance
	return nil
}

// # Balance Lookup

/*
TestService_GetBalance_CacheMiss verifies the read-through path: a miss hits
the repository and populates the cache.
*/
func TestService_GetBalance_CacheMiss(t *testing.T) {
	repo := &fakeBalanceRepository{balances: map[string]int64{"kodet": 100000}}
	cache := &fakeBalanceCache{}
	service := account.NewService(repo, cache)

	balance, err := service.GetBalance(context.Background(), "kodet")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), balance)

	assert.Equal(t, 1, repo.lookups)
	assert.Equal(t, int64(100000), cache.entries["kodet"])
}

/*
TestService_GetBalance_CacheHit verifies that a warm cache short-circuits
the repository entirely.
*/
func TestService_GetBalance_CacheHit(t *testing.T) {
	repo := &fakeBalanceRepository{balances: map[string]int64{"kodet": 100000}}
	cache := &fakeBalanceCache{entries: map[string]int64{"kodet": 100000}}
	service := account.NewService(repo, cache)

	balance, err := service.GetBalance(context.Background(), "kodet")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), balance)

	assert.Zero(t, repo.lookups)
}

/*
TestService_GetBalance_CacheFailure verifies that cache errors degrade to
the repository without failing the request.
*/
func TestService_GetBalance_CacheFailure(t *testing.T) {
	repo := &fakeBalanceRepository{balances: map[string]int64{"kodet": 100000}}
	cache := &fakeBalanceCache{failGet: true, failSet: true}
	service := account.NewService(repo, cache)

	balance, err := service.GetBalance(context.Background(), "kodet")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), balance)

	assert.Equal(t, 1, repo.lookups)
	assert.Equal(t, 1, cache.setCalls)
}

/*
TestService_GetBalance_NotFound verifies that an identity with no account
surfaces NOT_FOUND, and that nothing is cached for it.
*/
func TestService_GetBalance_NotFound(t *testing.T) {
	repo := &fakeBalanceRepository{balances: map[string]int64{}}
	cache := &fakeBalanceCache{}
	service := account.NewService(repo, cache)

	balance, err := service.GetBalance(context.Background(), "ghost")
	assert.Zero(t, balance)
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)

	assert.Zero(t, cache.setCalls)
}

/*
TestService_GetBalance_NilCache verifies the service works without a cache.
*/
func TestService_GetBalance_NilCache(t *testing.T) {
	repo := &fakeBalanceRepository{balances: map[string]int64{"kodet": 100000}}
	service := account.NewService(repo, nil)

	balance, err := service.GetBalance(context.Background(), "kodet")
	require.NoError(t, err)
	assert.Equal(t, int64(100000), balance)
}
