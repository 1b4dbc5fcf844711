package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

// SQLStore is the postgres-backed Store. The zero value is not usable;
// construct with NewStore.
type SQLStore struct {
	db           *sql.DB
	accounts     AccountRepository
	transactions TransactionRepository
	ledger       LedgerRepository
	inTx         bool
}

func NewStore(db *sql.DB) *SQLStore {
	return newSQLStore(db, db, false)
}

func newSQLStore(db *sql.DB, q DBTX, inTx bool) *SQLStore {
	return &SQLStore{
		db:           db,
		accounts:     NewAccountRepository(q),
		transactions: NewTransactionRepository(q),
		ledger:       NewLedgerRepository(q),
		inTx:         inTx,
	}
}

func (s *SQLStore) Accounts() AccountRepository         { return s.accounts }
func (s *SQLStore) Transactions() TransactionRepository { return s.transactions }
func (s *SQLStore) Ledger() LedgerRepository            { return s.ledger }

// ExecTx runs fn inside a single database transaction. A Store already
// scoped to a transaction runs fn directly, so nested calls share the
// outer commit boundary.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(Store) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(newSQLStore(s.db, tx, true)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Printf("[STORE] rollback failed: %v", rbErr)
		}
		return err
	}
	return tx.Commit()
}
