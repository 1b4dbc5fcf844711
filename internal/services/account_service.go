package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/corebank/ledger/internal/cache"
	"github.com/corebank/ledger/internal/models"
	"github.com/corebank/ledger/internal/repository"
)

// AccountService is the administrative surface over account records.
// Unlike the transaction path, Update may overwrite the balance
// directly; it is a correction path, not a money movement.
type AccountService struct {
	store repository.Store
	cache *cache.AccountCache
}

func NewAccountService(store repository.Store, accountCache *cache.AccountCache) *AccountService {
	return &AccountService{store: store, cache: accountCache}
}

func (s *AccountService) GetAll(ctx context.Context) ([]models.Account, error) {
	return s.store.Accounts().FindAll(ctx)
}

func (s *AccountService) GetByNumber(ctx context.Context, number int64) (*models.Account, error) {
	if account, ok := s.cache.Get(ctx, number); ok {
		return account, nil
	}

	account, err := s.store.Accounts().FindByNumber(ctx, number)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "account", Key: strconv.FormatInt(number, 10)}
	}
	if err != nil {
		return nil, fmt.Errorf("fetching account %d: %w", number, err)
	}

	s.cache.Set(ctx, account)
	return account, nil
}

func (s *AccountService) Create(ctx context.Context, in models.AccountInput) (*models.Account, error) {
	account, err := s.store.Accounts().Save(ctx, models.NewAccount(in))
	if err != nil {
		return nil, err
	}
	log.Printf("[ACCOUNT] created account %d (%s)", account.Number, account.Name)
	return account, nil
}

func (s *AccountService) Update(ctx context.Context, id int64, in models.AccountInput) (*models.Account, error) {
	account, err := s.store.Accounts().FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &NotFoundError{Entity: "account", Key: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return nil, fmt.Errorf("fetching account %d: %w", id, err)
	}

	previousNumber := account.Number
	account.Name = in.Name
	account.Number = in.Number
	account.Balance = in.Balance
	account.SpecialLimit = in.SpecialLimit

	updated, err := s.store.Accounts().Save(ctx, account)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, previousNumber, updated.Number)
	log.Printf("[ACCOUNT] updated account id %d, number %d", id, updated.Number)
	return updated, nil
}
