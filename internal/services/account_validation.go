package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/corebank/ledger/internal/models"
	"github.com/corebank/ledger/internal/repository"
)

// AvailableAccountValidation resolves an account number to the live
// account record, failing with *NotFoundError when no record exists.
// Constructed over a transaction-scoped repository it also holds the
// row lock for the rest of the transaction.
type AvailableAccountValidation struct {
	accounts repository.AccountRepository
}

func NewAvailableAccountValidation(accounts repository.AccountRepository) *AvailableAccountValidation {
	return &AvailableAccountValidation{accounts: accounts}
}

func (v *AvailableAccountValidation) Validate(ctx context.Context, number int64) (*models.Account, error) {
	account, err := v.accounts.FindByNumberForUpdate(ctx, number)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "account", Key: strconv.FormatInt(number, 10)}
	}
	if err != nil {
		return nil, fmt.Errorf("resolving account %d: %w", number, err)
	}
	return account, nil
}
