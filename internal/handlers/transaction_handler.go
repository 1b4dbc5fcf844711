package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/corebank/ledger/internal/models"
	"github.com/corebank/ledger/internal/services"
)

type TransactionHandler struct {
	service   *services.TransactionService
	validator *services.ValidationHelper
}

func NewTransactionHandler(service *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		service:   service,
		validator: services.NewValidationHelper(),
	}
}

type WithdrawRequest struct {
	SourceAccountNumber int64           `json:"sourceAccountNumber" validate:"required,gt=0"`
	Amount              decimal.Decimal `json:"amount" validate:"required"`
}

type TransferRequest struct {
	SourceAccountNumber   int64           `json:"sourceAccountNumber" validate:"required,gt=0"`
	ReceiverAccountNumber int64           `json:"receiverAccountNumber" validate:"required,gt=0"`
	Amount                decimal.Decimal `json:"amount" validate:"required"`
}

// Withdraw debits an account
// @Summary Withdraw funds
// @Description Debit an amount from the source account, overdraft allowed up to the special limit
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body WithdrawRequest true "Withdrawal data"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 422 {object} services.ErrorResponse
// @Router /transactions/withdraw [post]
func (h *TransactionHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	var req WithdrawRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !req.Amount.IsPositive() {
		services.SendErrorResponse(w, "amount must be positive", http.StatusBadRequest, nil)
		return
	}

	transaction, err := h.service.Withdraw(r.Context(), req.SourceAccountNumber, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
}

// Transfer moves funds between two accounts
// @Summary Transfer funds
// @Description Debit the source account and credit the receiver account by the same amount
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body TransferRequest true "Transfer data"
// @Success 201 {object} models.Transaction
// @Failure 400 {object} services.ErrorResponse
// @Failure 404 {object} services.ErrorResponse
// @Failure 422 {object} services.ErrorResponse
// @Router /transactions/transfer [post]
func (h *TransactionHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if !h.decode(w, r, &req) {
		return
	}
	if !req.Amount.IsPositive() {
		services.SendErrorResponse(w, "amount must be positive", http.StatusBadRequest, nil)
		return
	}

	transaction, err := h.service.Transfer(r.Context(), req.SourceAccountNumber, req.ReceiverAccountNumber, req.Amount)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transaction)
}

// GetByReference fetches one transaction
// @Summary Get transaction by reference
// @Description Retrieve a persisted transaction by its reference
// @Tags transactions
// @Produce json
// @Param reference path string true "Transaction reference"
// @Success 200 {object} models.Transaction
// @Failure 404 {object} services.ErrorResponse
// @Router /transactions/{reference} [get]
func (h *TransactionHandler) GetByReference(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	transaction, err := h.service.GetByReference(r.Context(), reference)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(transaction)
}

// GetRecent lists the latest transactions touching an account
// @Summary List recent transactions
// @Description Get the most recent transactions for an account number
// @Tags transactions
// @Produce json
// @Param accountNumber query int true "Account number"
// @Param limit query int false "Number of transactions to return (default 10, max 100)"
// @Success 200 {object} object{transactions=[]models.Transaction,count=int}
// @Failure 400 {object} services.ErrorResponse
// @Router /transactions/recent [get]
func (h *TransactionHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	accountNumber, err := strconv.ParseInt(r.URL.Query().Get("accountNumber"), 10, 64)
	if err != nil || accountNumber <= 0 {
		services.SendErrorResponse(w, "accountNumber is required", http.StatusBadRequest, nil)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil {
			limit = l
		}
	}

	transactions, err := h.service.GetRecent(r.Context(), accountNumber, limit)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	})
}

func (h *TransactionHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1_048_576)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		services.SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		services.SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return false
	}

	if err := h.validator.ValidateStruct(dst); err != nil {
		services.SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return false
	}
	return true
}
