package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a bank account. Balance may go negative down to the
// negative of SpecialLimit, the account's overdraft allowance.
type Account struct {
	ID           int64           `json:"id" db:"id"`
	Number       int64           `json:"number" db:"number"`
	Name         string          `json:"name" db:"name"`
	Balance      decimal.Decimal `json:"balance" db:"balance"`
	SpecialLimit decimal.Decimal `json:"specialLimit" db:"special_limit"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}

// AccountInput carries caller-supplied account fields for create/update.
type AccountInput struct {
	Name         string          `json:"name" validate:"required,max=120"`
	Number       int64           `json:"number" validate:"required,gt=0"`
	Balance      decimal.Decimal `json:"balance"`
	SpecialLimit decimal.Decimal `json:"specialLimit"`
}

func NewAccount(in AccountInput) *Account {
	return &Account{
		Number:       in.Number,
		Name:         in.Name,
		Balance:      in.Balance,
		SpecialLimit: in.SpecialLimit,
	}
}

// BalanceWithLimit is the maximum amount a single debit may consume.
func (a *Account) BalanceWithLimit() decimal.Decimal {
	return a.Balance.Add(a.SpecialLimit)
}

// Debit subtracts amount from the balance. Callers run balance
// validation first; Debit itself performs no checks.
func (a *Account) Debit(amount decimal.Decimal) {
	a.Balance = a.Balance.Sub(amount)
}

// Credit adds amount to the balance.
func (a *Account) Credit(amount decimal.Decimal) {
	a.Balance = a.Balance.Add(amount)
}
