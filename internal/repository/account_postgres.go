package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/corebank/ledger/internal/models"
)

type accountSQL struct {
	db DBTX
}

func NewAccountRepository(db DBTX) AccountRepository {
	return &accountSQL{db: db}
}

const accountColumns = `id, number, name, balance, special_limit, created_at, updated_at`

func (r *accountSQL) FindByID(ctx context.Context, id int64) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	return scanAccount(row)
}

func (r *accountSQL) FindByNumber(ctx context.Context, number int64) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE number = $1`, number)
	return scanAccount(row)
}

func (r *accountSQL) FindByNumberForUpdate(ctx context.Context, number int64) (*models.Account, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+accountColumns+` FROM accounts WHERE number = $1 FOR UPDATE`, number)
	return scanAccount(row)
}

func (r *accountSQL) FindAll(ctx context.Context) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+accountColumns+` FROM accounts ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(&a.ID, &a.Number, &a.Name, &a.Balance, &a.SpecialLimit, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

func (r *accountSQL) Save(ctx context.Context, account *models.Account) (*models.Account, error) {
	if account.ID == 0 {
		err := r.db.QueryRowContext(ctx, `
			INSERT INTO accounts (number, name, balance, special_limit, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $5)
			RETURNING id, created_at, updated_at`,
			account.Number, account.Name, account.Balance, account.SpecialLimit, time.Now()).
			Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
				return nil, fmt.Errorf("account number %d already exists: %w", account.Number, err)
			}
			return nil, fmt.Errorf("inserting account: %w", err)
		}
		return account, nil
	}

	err := r.db.QueryRowContext(ctx, `
		UPDATE accounts
		SET number = $1, name = $2, balance = $3, special_limit = $4, updated_at = $5
		WHERE id = $6
		RETURNING updated_at`,
		account.Number, account.Name, account.Balance, account.SpecialLimit, time.Now(), account.ID).
		Scan(&account.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("updating account %d: %w", account.ID, err)
	}
	return account, nil
}

func scanAccount(row *sql.Row) (*models.Account, error) {
	var a models.Account
	err := row.Scan(&a.ID, &a.Number, &a.Name, &a.Balance, &a.SpecialLimit, &a.CreatedAt, &a.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scanning account: %w", err)
	}
	return &a, nil
}
