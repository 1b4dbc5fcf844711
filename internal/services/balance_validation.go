package services

import (
	"github.com/corebank/ledger/internal/models"
)

// AvailableBalanceValidation checks that the source account can afford
// a prepared transaction. Spending the account down to exactly
// -SpecialLimit is allowed; only a strictly greater amount fails.
type AvailableBalanceValidation struct{}

func (AvailableBalanceValidation) Validate(tx *models.Transaction) error {
	available := tx.SourceAccount.BalanceWithLimit()
	if tx.Amount.GreaterThan(available) {
		return &InsufficientFundsError{
			AccountNumber: tx.SourceAccount.Number,
			Requested:     tx.Amount,
			Available:     available,
		}
	}
	return nil
}
