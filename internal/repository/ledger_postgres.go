package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/corebank/ledger/internal/models"
)

type ledgerSQL struct {
	db DBTX
}

func NewLedgerRepository(db DBTX) LedgerRepository {
	return &ledgerSQL{db: db}
}

func (r *ledgerSQL) Append(ctx context.Context, entry *models.LedgerEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO ledger_entries (transaction_reference, account_id, amount, entry_type, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		entry.TransactionRef, entry.AccountID, entry.Amount, entry.EntryType, entry.Balance, time.Now())
	if err != nil {
		return fmt.Errorf("appending ledger entry for account %d: %w", entry.AccountID, err)
	}
	return nil
}
