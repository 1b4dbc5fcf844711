package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebank/ledger/internal/models"
	"github.com/corebank/ledger/internal/repository"
)

func TestAccountHandler_GetAll(t *testing.T) {
	store := repository.NewMemoryStore()
	seedTestAccount(t, store, 12345, "Ricardo Sobjak", 1000, 500)
	seedTestAccount(t, store, 67890, "Juca Silva", 2000, 1000)
	router := newTestRouter(store)

	w := doJSON(router, "GET", "/api/v1/accounts", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ricardo Sobjak")
	assert.Contains(t, w.Body.String(), "Juca Silva")

	var accounts []models.Account
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &accounts))
	assert.Len(t, accounts, 2)
}

func TestAccountHandler_GetByNumber(t *testing.T) {
	store := repository.NewMemoryStore()
	seedTestAccount(t, store, 12346, "Ana Campos", 500, 0)
	router := newTestRouter(store)

	t.Run("existing account returns 200", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/accounts/12346", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ana Campos")
	})

	t.Run("unknown account returns 404", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/accounts/99999", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed number returns 400", func(t *testing.T) {
		w := doJSON(router, "GET", "/api/v1/accounts/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandler_Create(t *testing.T) {
	t.Run("valid account returns 201", func(t *testing.T) {
		store := repository.NewMemoryStore()
		router := newTestRouter(store)

		w := doJSON(router, "POST", "/api/v1/accounts", `{
			"name": "Ricardo Sobjak",
			"number": 12345,
			"balance": 1000,
			"specialLimit": 500
		}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var account models.Account
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &account))
		assert.NotZero(t, account.ID)
		assert.Equal(t, "1000", account.Balance.String())
	})

	t.Run("missing fields return 400", func(t *testing.T) {
		store := repository.NewMemoryStore()
		router := newTestRouter(store)

		w := doJSON(router, "POST", "/api/v1/accounts", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative special limit returns 400", func(t *testing.T) {
		store := repository.NewMemoryStore()
		router := newTestRouter(store)

		w := doJSON(router, "POST", "/api/v1/accounts", `{
			"name": "Ricardo Sobjak",
			"number": 12345,
			"specialLimit": -10
		}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAccountHandler_Update(t *testing.T) {
	t.Run("existing account returns 200 with updated fields", func(t *testing.T) {
		store := repository.NewMemoryStore()
		account := seedTestAccount(t, store, 12345, "Ricardo Sobjak", 1000, 500)
		router := newTestRouter(store)

		w := doJSON(router, "PUT", fmt.Sprintf("/api/v1/accounts/%d", account.ID), `{
			"name": "Ricardo Sobjak Atualizado",
			"number": 12345,
			"balance": 1500,
			"specialLimit": 600
		}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ricardo Sobjak Atualizado")
	})

	t.Run("unknown id returns 404", func(t *testing.T) {
		store := repository.NewMemoryStore()
		router := newTestRouter(store)

		w := doJSON(router, "PUT", "/api/v1/accounts/99999", `{
			"name": "Conta Inexistente",
			"number": 99999,
			"balance": 1000,
			"specialLimit": 500
		}`)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
