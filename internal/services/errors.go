package services

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// NotFoundError reports a lookup that matched no record. Key is the
// account number, id or transaction reference the caller supplied.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

// InsufficientFundsError reports a debit larger than the source
// account's balance plus special limit.
type InsufficientFundsError struct {
	AccountNumber int64
	Requested     decimal.Decimal
	Available     decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("account %d has insufficient funds: requested %s, available %s",
		e.AccountNumber, e.Requested, e.Available)
}
