// Package handlers exposes the ledger over HTTP with chi. Each resource
// has its own handler struct; caller identity arrives in the
// X-Caller-Key header as a base58 public key.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/saviour-frank/vault-chain/models"
)

// CallerHeader carries the identity attributed to a mutating request.
const CallerHeader = "X-Caller-Key"

type errorResponse struct {
	Code  uint32 `json:"code"`
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps ledger error codes onto HTTP statuses. Anything
// without a ledger code is a plain 500.
func writeError(w http.ResponseWriter, err error) {
	code, ok := models.CodeOf(err)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, statusFor(code), errorResponse{Code: uint32(code), Error: err.Error()})
}

func statusFor(code models.Code) int {
	switch code {
	case models.CodeInvalidInput:
		return http.StatusBadRequest
	case models.CodeInvalidAsset:
		return http.StatusNotFound
	case models.CodeUnauthorized, models.CodeComplianceCheckFailed:
		return http.StatusForbidden
	case models.CodeInsufficientShares, models.CodeInsufficientFunds:
		return http.StatusUnprocessableEntity
	case models.CodeTransferFailed:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// caller extracts the caller key header; mutating endpoints require it.
func caller(r *http.Request) (string, error) {
	key := r.Header.Get(CallerHeader)
	if key == "" {
		return "", models.Errf(models.CodeInvalidInput, "missing %s header", CallerHeader)
	}
	return key, nil
}
