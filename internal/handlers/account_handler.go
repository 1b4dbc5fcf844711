package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/corebank/ledger/internal/models"
	"github.com/corebank/ledger/internal/services"
)

type AccountHandler struct {
	service   *services.AccountService
	validator *services.ValidationHelper
}

func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

// GetAll lists every account
// @Summary List accounts
// @Description Get all accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} models.Account
// @Failure 500 {object} services.ErrorResponse
// @Router /accounts [get]
func (h *AccountHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.GetAll(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(accounts)
}

// GetByNumber fetches one account by its number
// @Summary Get account by number
// @Description Retrieve a single account by account number
// @Tags accounts
// @Produce json
// @Param number path int true "Account number"
// @Success 200 {object} models.Account
// @Failure 404 {object} services.ErrorResponse
// @Router /accounts/{number} [get]
func (h *AccountHandler) GetByNumber(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.ParseInt(chi.URLParam(r, "number"), 10, 64)
	if err != nil {
		services.SendErrorResponse(w, "Invalid account number", http.StatusBadRequest, nil)
		return
	}

	account, err := h.service.GetByNumber(r.Context(), number)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

// Create opens a new account
// @Summary Create account
// @Description Create a new account
// @Tags accounts
// @Accept json
// @Produce json
// @Param account body models.AccountInput true "Account data"
// @Success 201 {object} models.Account
// @Failure 400 {object} services.ErrorResponse
// @Router /accounts [post]
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	account, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(account)
}

// Update overwrites an existing account
// @Summary Update account
// @Description Overwrite name, number, balance and special limit of an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account id"
// @Param account body models.AccountInput true "Account data"
// @Success 200 {object} models.Account
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Router /accounts/{id} [put]
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		services.SendErrorResponse(w, "Invalid account id", http.StatusBadRequest, nil)
		return
	}

	in, ok := h.decodeInput(w, r)
	if !ok {
		return
	}

	account, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(account)
}

func (h *AccountHandler) decodeInput(w http.ResponseWriter, r *http.Request) (models.AccountInput, bool) {
	var in models.AccountInput

	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&in); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return in, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return in, false
	}

	if err := h.validator.ValidateStruct(&in); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return in, false
	}
	if in.SpecialLimit.IsNegative() {
		services.SendErrorResponse(w, "specialLimit must not be negative", http.StatusBadRequest, nil)
		return in, false
	}
	return in, true
}
