package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/corebank/ledger/internal/models"
	"github.com/corebank/ledger/internal/repository"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByNumber(ctx context.Context, number int64) (*models.Account, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByNumberForUpdate(ctx context.Context, number int64) (*models.Account, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAll(ctx context.Context) ([]models.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockAccountRepository) Save(ctx context.Context, account *models.Account) (*models.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) Save(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) FindRecent(ctx context.Context, accountNumber int64, limit int) ([]models.Transaction, error) {
	args := m.Called(ctx, accountNumber, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Append(ctx context.Context, entry *models.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// mockStore bundles the mocks behind the Store interface; ExecTx just
// runs fn against itself so tests observe every repository call.
type mockStore struct {
	accounts     *MockAccountRepository
	transactions *MockTransactionRepository
	ledger       *MockLedgerRepository
}

func newMockStore() *mockStore {
	return &mockStore{
		accounts:     &MockAccountRepository{},
		transactions: &MockTransactionRepository{},
		ledger:       &MockLedgerRepository{},
	}
}

func (s *mockStore) Accounts() repository.AccountRepository         { return s.accounts }
func (s *mockStore) Transactions() repository.TransactionRepository { return s.transactions }
func (s *mockStore) Ledger() repository.LedgerRepository            { return s.ledger }

func (s *mockStore) ExecTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(s)
}
