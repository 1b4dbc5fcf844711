package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/corebank/ledger/internal/services"
)

// writeDomainError maps core errors onto HTTP status codes: missing
// records to 404, rejected debits to 422, everything else to 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var notFound *services.NotFoundError
	var insufficient *services.InsufficientFundsError

	switch {
	case errors.As(err, &notFound):
		services.SendErrorResponse(w, notFound.Error(), http.StatusNotFound, nil)
	case errors.As(err, &insufficient):
		services.SendErrorResponse(w, insufficient.Error(), http.StatusUnprocessableEntity, nil)
	case errors.Is(err, services.ErrInvalidAmount):
		services.SendErrorResponse(w, err.Error(), http.StatusBadRequest, nil)
	default:
		log.Printf("[HTTP] internal error: %v", err)
		services.SendErrorResponse(w, "Internal server error", http.StatusInternalServerError, nil)
	}
}
