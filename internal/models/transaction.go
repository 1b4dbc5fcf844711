package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeWithdraw TransactionType = "WITHDRAW"
	TypeTransfer TransactionType = "TRANSFER"
)

// Transaction records one completed money movement. ReceiverAccount is
// nil for withdrawals and set for transfers; the constructors below are
// the only way the service layer builds one, so the shape matches the
// type by construction.
type Transaction struct {
	ID              int64           `json:"id" db:"id"`
	Reference       string          `json:"reference" db:"reference"`
	Type            TransactionType `json:"type" db:"type"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	SourceAccount   *Account        `json:"sourceAccount"`
	ReceiverAccount *Account        `json:"receiverAccount,omitempty"`
	OpeningDate     time.Time       `json:"openingDate" db:"opening_date"`
}

// NewWithdrawal builds an in-memory WITHDRAW transaction debiting source.
func NewWithdrawal(source *Account, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Type:          TypeWithdraw,
		Amount:        amount,
		SourceAccount: source,
		OpeningDate:   time.Now(),
	}
}

// NewTransfer builds an in-memory TRANSFER transaction moving amount
// from source to receiver.
func NewTransfer(source, receiver *Account, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Type:            TypeTransfer,
		Amount:          amount,
		SourceAccount:   source,
		ReceiverAccount: receiver,
		OpeningDate:     time.Now(),
	}
}
