package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

// statusFor maps the domain error taxonomy onto HTTP status codes.
// Validation failures are always 400, never 422. Anything outside the
// taxonomy is a storage failure and surfaces as a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStockExhausted):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrAlreadyReturned):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrStillActive):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
		// Do not leak driver errors to the client.
		writeJSON(w, status, errorResponse{Error: "internal server error"})
		return
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
