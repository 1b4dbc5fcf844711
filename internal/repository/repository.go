package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/corebank/ledger/internal/models"
)

// ErrNotFound is returned by lookups when no row matches. Callers map it
// to their own typed errors with the identifier that missed.
var ErrNotFound = errors.New("record not found")

// DBTX is satisfied by both *sql.DB and *sql.Tx so the same queries run
// standalone or inside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type AccountRepository interface {
	FindByID(ctx context.Context, id int64) (*models.Account, error)
	FindByNumber(ctx context.Context, number int64) (*models.Account, error)
	// FindByNumberForUpdate locks the row until the surrounding
	// transaction commits.
	FindByNumberForUpdate(ctx context.Context, number int64) (*models.Account, error)
	FindAll(ctx context.Context) ([]models.Account, error)
	// Save inserts when the account has no ID yet, updates otherwise,
	// and returns the stored row including generated fields.
	Save(ctx context.Context, account *models.Account) (*models.Account, error)
}

type TransactionRepository interface {
	Save(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	FindByReference(ctx context.Context, reference string) (*models.Transaction, error)
	FindRecent(ctx context.Context, accountNumber int64, limit int) ([]models.Transaction, error)
}

type LedgerRepository interface {
	Append(ctx context.Context, entry *models.LedgerEntry) error
}

// Store bundles the repositories behind one atomic boundary. ExecTx runs
// fn against a transaction-scoped Store; every write inside fn commits
// or rolls back as a unit.
type Store interface {
	Accounts() AccountRepository
	Transactions() TransactionRepository
	Ledger() LedgerRepository
	ExecTx(ctx context.Context, fn func(Store) error) error
}
