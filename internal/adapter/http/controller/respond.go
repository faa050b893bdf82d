package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/api-sage/banca-ledger/internal/commons"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusForError maps the domain error kinds onto HTTP statuses so callers
// branch on the error value rather than the message text.
func statusForError(err error) int {
	switch {
	case errors.Is(err, commons.ErrCustomerNotFound), errors.Is(err, commons.ErrAccountNotFound):
		return http.StatusNotFound
	case errors.Is(err, commons.ErrDuplicateAccountNumber):
		return http.StatusConflict
	case errors.Is(err, commons.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, commons.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
