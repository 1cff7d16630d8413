package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Store widens Querier with a transaction runner. Ledger operations
// hand ExecTx a closure so the wallet mutation and its audit record
// commit or roll back together.
type Store interface {
	Querier
	ExecTx(ctx context.Context, fq func(q Querier) error) error
}

type SQLStore struct {
	*Queries
	DB *sql.DB
}

func NewStore(db *sql.DB) *SQLStore {
	return &SQLStore{
		DB:      db,
		Queries: New(db),
	}
}

func (s *SQLStore) ExecTx(ctx context.Context, fq func(q Querier) error) error {
	// initialize transaction
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	q := New(tx)
	err = fq(q)

	if err != nil {
		txErr := tx.Rollback()
		if txErr != nil {
			return fmt.Errorf("encountered rollback error: %v", txErr)
		}
		return err
	}

	return tx.Commit()
}
