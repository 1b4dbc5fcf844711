package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/corebank/ledger/internal/cache"
	"github.com/corebank/ledger/internal/models"
	"github.com/corebank/ledger/internal/repository"
)

// ErrInvalidAmount rejects non-positive transaction amounts before any
// account is resolved.
var ErrInvalidAmount = errors.New("transaction amount must be positive")

// TransactionService runs withdrawals and transfers. Each operation
// resolves the accounts, validates funds, applies the balance deltas
// and persists the transaction plus its ledger entries inside a single
// store transaction, so a failure at any point leaves no partial state.
type TransactionService struct {
	store   repository.Store
	cache   *cache.AccountCache
	balance AvailableBalanceValidation
}

func NewTransactionService(store repository.Store, accountCache *cache.AccountCache) *TransactionService {
	return &TransactionService{store: store, cache: accountCache}
}

// Withdraw debits amount from the account with the given number.
func (s *TransactionService) Withdraw(ctx context.Context, sourceNumber int64, amount decimal.Decimal) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *models.Transaction
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		accounts := NewAvailableAccountValidation(tx.Accounts())

		source, err := accounts.Validate(ctx, sourceNumber)
		if err != nil {
			return err
		}

		transaction := models.NewWithdrawal(source, amount)
		transaction.Reference = uuid.NewString()

		if err := s.balance.Validate(transaction); err != nil {
			return err
		}

		source.Debit(amount)
		if _, err := tx.Accounts().Save(ctx, source); err != nil {
			return err
		}

		if result, err = tx.Transactions().Save(ctx, transaction); err != nil {
			return err
		}

		return tx.Ledger().Append(ctx, &models.LedgerEntry{
			TransactionRef: transaction.Reference,
			AccountID:      source.ID,
			Amount:         amount.Neg(),
			EntryType:      models.EntryDebit,
			Balance:        source.Balance,
		})
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, sourceNumber)
	log.Printf("[TRANSACTION] withdraw %s from account %d, reference %s", amount, sourceNumber, result.Reference)
	return result, nil
}

// Transfer moves amount from the source account to the receiver
// account. Both resolutions may independently fail with *NotFoundError
// carrying the number that missed. A transfer to the same number is
// permitted and nets to zero against a single locked row.
func (s *TransactionService) Transfer(ctx context.Context, sourceNumber, receiverNumber int64, amount decimal.Decimal) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var result *models.Transaction
	err := s.store.ExecTx(ctx, func(tx repository.Store) error {
		accounts := NewAvailableAccountValidation(tx.Accounts())

		source, receiver, err := resolvePair(ctx, accounts, sourceNumber, receiverNumber)
		if err != nil {
			return err
		}

		transaction := models.NewTransfer(source, receiver, amount)
		transaction.Reference = uuid.NewString()

		if err := s.balance.Validate(transaction); err != nil {
			return err
		}

		source.Debit(amount)
		receiver.Credit(amount)

		if _, err := tx.Accounts().Save(ctx, source); err != nil {
			return err
		}
		if receiver != source {
			if _, err := tx.Accounts().Save(ctx, receiver); err != nil {
				return err
			}
		}

		if result, err = tx.Transactions().Save(ctx, transaction); err != nil {
			return err
		}

		if err := tx.Ledger().Append(ctx, &models.LedgerEntry{
			TransactionRef: transaction.Reference,
			AccountID:      source.ID,
			Amount:         amount.Neg(),
			EntryType:      models.EntryDebit,
			Balance:        source.Balance,
		}); err != nil {
			return err
		}
		return tx.Ledger().Append(ctx, &models.LedgerEntry{
			TransactionRef: transaction.Reference,
			AccountID:      receiver.ID,
			Amount:         amount,
			EntryType:      models.EntryCredit,
			Balance:        receiver.Balance,
		})
	})
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, sourceNumber, receiverNumber)
	log.Printf("[TRANSACTION] transfer %s from account %d to account %d, reference %s",
		amount, sourceNumber, receiverNumber, result.Reference)
	return result, nil
}

// resolvePair locks both accounts in ascending number order so two
// opposing transfers cannot deadlock, then hands them back as
// (source, receiver). Equal numbers resolve to one shared record.
func resolvePair(ctx context.Context, accounts *AvailableAccountValidation, sourceNumber, receiverNumber int64) (source, receiver *models.Account, err error) {
	if sourceNumber == receiverNumber {
		source, err = accounts.Validate(ctx, sourceNumber)
		return source, source, err
	}

	first, second := sourceNumber, receiverNumber
	if first > second {
		first, second = second, first
	}

	firstAccount, err := accounts.Validate(ctx, first)
	if err != nil {
		return nil, nil, err
	}
	secondAccount, err := accounts.Validate(ctx, second)
	if err != nil {
		return nil, nil, err
	}

	if firstAccount.Number == sourceNumber {
		return firstAccount, secondAccount, nil
	}
	return secondAccount, firstAccount, nil
}

// GetByReference returns a persisted transaction by its reference.
func (s *TransactionService) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	transaction, err := s.store.Transactions().FindByReference(ctx, reference)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "transaction", Key: reference}
	}
	if err != nil {
		return nil, fmt.Errorf("fetching transaction %s: %w", reference, err)
	}
	return transaction, nil
}

// GetRecent returns the most recent transactions touching an account.
func (s *TransactionService) GetRecent(ctx context.Context, accountNumber int64, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.store.Transactions().FindRecent(ctx, accountNumber, limit)
}
