package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type EntryType string

const (
	EntryDebit  EntryType = "DEBIT"
	EntryCredit EntryType = "CREDIT"
)

// LedgerEntry is one side of a committed transaction: a signed amount
// against one account plus the running balance after the entry.
type LedgerEntry struct {
	ID             int64           `json:"id" db:"id"`
	TransactionRef string          `json:"transactionRef" db:"transaction_reference"`
	AccountID      int64           `json:"accountId" db:"account_id"`
	Amount         decimal.Decimal `json:"amount" db:"amount"`
	EntryType      EntryType       `json:"entryType" db:"entry_type"`
	Balance        decimal.Decimal `json:"balance" db:"balance"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
}
