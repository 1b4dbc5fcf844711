package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/corebank/ledger/internal/models"
)

// MemoryStore is a map-backed Store used by tests and local development.
// ExecTx serializes callers with a single mutex, which gives the same
// all-or-nothing observable behavior as the postgres store for
// sequential use; it does not attempt rollback of partial writes.
type MemoryStore struct {
	mu           sync.Mutex
	nextID       int64
	accounts     map[int64]*models.Account // keyed by id
	transactions map[string]*models.Transaction
	entries      []models.LedgerEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID:       1,
		accounts:     make(map[int64]*models.Account),
		transactions: make(map[string]*models.Transaction),
	}
}

func (s *MemoryStore) Accounts() AccountRepository         { return (*memAccounts)(s) }
func (s *MemoryStore) Transactions() TransactionRepository { return (*memTransactions)(s) }
func (s *MemoryStore) Ledger() LedgerRepository            { return (*memLedger)(s) }

func (s *MemoryStore) ExecTx(ctx context.Context, fn func(Store) error) error {
	return fn(s)
}

type memAccounts MemoryStore

func (r *memAccounts) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *memAccounts) FindByNumber(ctx context.Context, number int64) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.byNumberLocked(number)
}

func (r *memAccounts) FindByNumberForUpdate(ctx context.Context, number int64) (*models.Account, error) {
	return r.FindByNumber(ctx, number)
}

func (r *memAccounts) byNumberLocked(number int64) (*models.Account, error) {
	for _, a := range r.accounts {
		if a.Number == number {
			copied := *a
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memAccounts) FindAll(ctx context.Context) ([]models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	accounts := make([]models.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		accounts = append(accounts, *a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Number < accounts[j].Number })
	return accounts, nil
}

func (r *memAccounts) Save(ctx context.Context, account *models.Account) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	if account.ID == 0 {
		account.ID = r.nextID
		r.nextID++
		account.CreatedAt = now
	} else if _, ok := r.accounts[account.ID]; !ok {
		return nil, ErrNotFound
	}
	account.UpdatedAt = now

	copied := *account
	r.accounts[account.ID] = &copied
	return account, nil
}

type memTransactions MemoryStore

func (r *memTransactions) Save(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.ID = r.nextID
	r.nextID++
	copied := *tx
	r.transactions[tx.Reference] = &copied
	return tx, nil
}

func (r *memTransactions) FindByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx, ok := r.transactions[reference]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *tx
	return &copied, nil
}

func (r *memTransactions) FindRecent(ctx context.Context, accountNumber int64, limit int) ([]models.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []models.Transaction
	for _, tx := range r.transactions {
		if tx.SourceAccount.Number == accountNumber ||
			(tx.ReceiverAccount != nil && tx.ReceiverAccount.Number == accountNumber) {
			matched = append(matched, *tx)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].OpeningDate.After(matched[j].OpeningDate)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

type memLedger MemoryStore

func (r *memLedger) Append(ctx context.Context, entry *models.LedgerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = r.nextID
	r.nextID++
	entry.CreatedAt = time.Now()
	r.entries = append(r.entries, *entry)
	return nil
}

// Entries returns a snapshot of the appended ledger entries.
func (s *MemoryStore) Entries() []models.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.LedgerEntry(nil), s.entries...)
}
