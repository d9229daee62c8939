package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/saviour-frank/vault-chain/models"
	"github.com/saviour-frank/vault-chain/services"
)

// TransferHandler serves fractional-ownership transfers.
type TransferHandler struct {
	Service *services.LedgerService
}

func NewTransferHandler(s *services.LedgerService) *TransferHandler {
	return &TransferHandler{Service: s}
}

type transferRequest struct {
	AssetID uint64 `json:"asset_id"`
	To      string `json:"to"`
	Amount  uint64 `json:"amount"`
}

// Transfer moves shares from the caller to the recipient, moving the
// ownership token with them when the caller's whole balance goes.
// POST /transfers
func (h *TransferHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.Errf(models.CodeInvalidInput, "decode request: %v", err))
		return
	}
	sender, err := caller(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.Service.Transfer(r.Context(), sender, req.AssetID, req.To, req.Amount); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
