// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kodbank/kodbank/internal/platform/constants"
)

// RedisBalanceCache implements BalanceCache using Redis.
type RedisBalanceCache struct {
	client *redis.Client
}

// NewBalanceCache creates a new Redis-backed BalanceCache.
func NewBalanceCache(client *redis.Client) *RedisBalanceCache {
	return &RedisBalanceCache{client: client}
}

/*
Get retrieves a cached balance for the username.

Description: A missing key is a plain miss, not an error.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - int64: Cached balance
  - bool: Hit indicator
  - error: Connectivity or decoding failures
*/
func (cache *RedisBalanceCache) Get(context context.Context, username string) (int64, bool, error) {

	// Use constants for key prefix
	key := constants.RedisPrefixBalance + username

	// Get the balance from Redis
	balance, err := cache.client.Get(context, key).Int64()

	// Handle errors
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("redis_balance_cache_get_failed: %w", err)
	}

	// Return the cached balance
	return balance, true, nil
}

/*
Set stores a balance with the given TTL.

Parameters:
  - context: context.Context
  - username: string
  - balance: int64
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (cache *RedisBalanceCache) Set(context context.Context, username string, balance int64, ttl time.Duration) error {

	// Use constants for key prefix
	key := constants.RedisPrefixBalance + username

	// Set the balance with TTL
	if err := cache.client.Set(context, key, balance, ttl).Err(); err != nil {
		return fmt.Errorf("redis_balance_cache_set_failed: %w", err)
	}

	// Return nil on success
	return nil
}
