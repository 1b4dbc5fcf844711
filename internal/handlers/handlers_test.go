package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/corebank/ledger/internal/models"
	"github.com/corebank/ledger/internal/repository"
	"github.com/corebank/ledger/internal/services"
)

func newTestRouter(store *repository.MemoryStore) chi.Router {
	accountService := services.NewAccountService(store, nil)
	transactionService := services.NewTransactionService(store, nil)
	accountHandler := NewAccountHandler(accountService)
	transactionHandler := NewTransactionHandler(transactionService)

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/accounts", accountHandler.GetAll)
		r.Get("/accounts/{number}", accountHandler.GetByNumber)
		r.Post("/accounts", accountHandler.Create)
		r.Put("/accounts/{id}", accountHandler.Update)

		r.Post("/transactions/withdraw", transactionHandler.Withdraw)
		r.Post("/transactions/transfer", transactionHandler.Transfer)
		r.Get("/transactions/recent", transactionHandler.GetRecent)
		r.Get("/transactions/{reference}", transactionHandler.GetByReference)
	})
	return r
}

func seedTestAccount(t *testing.T, store *repository.MemoryStore, number int64, name string, balance, limit int64) *models.Account {
	t.Helper()
	account, err := store.Accounts().Save(context.Background(), &models.Account{
		Number:       number,
		Name:         name,
		Balance:      decimal.NewFromInt(balance),
		SpecialLimit: decimal.NewFromInt(limit),
	})
	require.NoError(t, err)
	return account
}

func doJSON(r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
