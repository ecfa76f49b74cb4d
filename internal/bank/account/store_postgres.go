// Copyright (c) 2026 Kodbank. All rights reserved.
// Author: platform@kodbank.dev

package account

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kodbank/kodbank/internal/platform/dberr"
)

// PostgresBalanceRepository implements the BalanceRepository interface using pgx.
type PostgresBalanceRepository struct {
	pool *pgxpool.Pool
}

// NewBalanceRepository creates a new PostgreSQL implementation of the BalanceRepository.
func NewBalanceRepository(pool *pgxpool.Pool) *PostgresBalanceRepository {
	return &PostgresBalanceRepository{pool: pool}
}

/*
FindBalanceByUsername retrieves the balance column for a single account.

Description: Narrow projection keyed by the unique username. A missing row
maps to apperr.NotFound — it should not occur while accounts are never
deleted, but the contract handles it.

Parameters:
  - context: context.Context
  - username: string

Returns:
  - int64: Stored balance
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresBalanceRepository) FindBalanceByUsername(context context.Context, username string) (int64, error) {
	const query = `SELECT balance FROM bank.account WHERE username = $1`

	var balance int64
	err := repository.pool.QueryRow(context, query, username).Scan(&balance)

	if err != nil {
		return 0, dberr.Wrap(err, "User")
	}

	return balance, nil
}
