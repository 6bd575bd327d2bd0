package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/domain/entity"
)

// APIError is the body of every non-2xx response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, APIError{Code: code, Message: message})
}

// writeStoreError maps store errors onto HTTP statuses.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrTabGroupNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, entity.ErrInvalidTabGroup):
		writeError(w, http.StatusBadRequest, "INVALID", err.Error())
	case errors.Is(err, usecase.ErrStoreUnavailable):
		writeError(w, http.StatusServiceUnavailable, "UNAVAILABLE", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "STORE_WRITE", err.Error())
	}
}
