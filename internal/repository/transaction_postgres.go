package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/corebank/ledger/internal/models"
)

type transactionSQL struct {
	db DBTX
}

func NewTransactionRepository(db DBTX) TransactionRepository {
	return &transactionSQL{db: db}
}

func (r *transactionSQL) Save(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	var receiverID sql.NullInt64
	if tx.ReceiverAccount != nil {
		receiverID = sql.NullInt64{Int64: tx.ReceiverAccount.ID, Valid: true}
	}

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO transactions (reference, type, amount, source_account_id, receiver_account_id, opening_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		tx.Reference, tx.Type, tx.Amount, tx.SourceAccount.ID, receiverID, tx.OpeningDate).
		Scan(&tx.ID)
	if err != nil {
		return nil, fmt.Errorf("inserting transaction %s: %w", tx.Reference, err)
	}
	return tx, nil
}

const transactionSelect = `
	SELECT t.id, t.reference, t.type, t.amount, t.opening_date,
	       src.id, src.number, src.name, src.balance, src.special_limit, src.created_at, src.updated_at,
	       rcv.id, rcv.number, rcv.name, rcv.balance, rcv.special_limit, rcv.created_at, rcv.updated_at
	FROM transactions t
	JOIN accounts src ON src.id = t.source_account_id
	LEFT JOIN accounts rcv ON rcv.id = t.receiver_account_id`

func (r *transactionSQL) FindByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, transactionSelect+` WHERE t.reference = $1`, reference)
	if err != nil {
		return nil, fmt.Errorf("querying transaction %s: %w", reference, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}
	return scanTransaction(rows)
}

func (r *transactionSQL) FindRecent(ctx context.Context, accountNumber int64, limit int) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, transactionSelect+`
		WHERE src.number = $1 OR rcv.number = $1
		ORDER BY t.opening_date DESC
		LIMIT $2`, accountNumber, limit)
	if err != nil {
		return nil, fmt.Errorf("querying recent transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	return transactions, rows.Err()
}

func scanTransaction(rows *sql.Rows) (*models.Transaction, error) {
	var (
		tx  models.Transaction
		src models.Account
		rcv struct {
			id           sql.NullInt64
			number       sql.NullInt64
			name         sql.NullString
			balance      sql.NullString
			specialLimit sql.NullString
			createdAt    sql.NullTime
			updatedAt    sql.NullTime
		}
	)

	err := rows.Scan(
		&tx.ID, &tx.Reference, &tx.Type, &tx.Amount, &tx.OpeningDate,
		&src.ID, &src.Number, &src.Name, &src.Balance, &src.SpecialLimit, &src.CreatedAt, &src.UpdatedAt,
		&rcv.id, &rcv.number, &rcv.name, &rcv.balance, &rcv.specialLimit, &rcv.createdAt, &rcv.updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning transaction: %w", err)
	}

	tx.SourceAccount = &src
	if rcv.id.Valid {
		receiver := models.Account{
			ID:        rcv.id.Int64,
			Number:    rcv.number.Int64,
			Name:      rcv.name.String,
			CreatedAt: rcv.createdAt.Time,
			UpdatedAt: rcv.updatedAt.Time,
		}
		if err := receiver.Balance.Scan(rcv.balance.String); err != nil {
			return nil, fmt.Errorf("scanning receiver balance: %w", err)
		}
		if err := receiver.SpecialLimit.Scan(rcv.specialLimit.String); err != nil {
			return nil, fmt.Errorf("scanning receiver limit: %w", err)
		}
		tx.ReceiverAccount = &receiver
	}
	return &tx, nil
}
