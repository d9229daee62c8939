package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saviour-frank/vault-chain/models"
	"github.com/saviour-frank/vault-chain/services"
)

// ComplianceHandler serves compliance updates and lookups.
type ComplianceHandler struct {
	Service *services.LedgerService
}

func NewComplianceHandler(s *services.LedgerService) *ComplianceHandler {
	return &ComplianceHandler{Service: s}
}

type setComplianceRequest struct {
	AssetID    uint64 `json:"asset_id"`
	User       string `json:"user"`
	IsApproved bool   `json:"is_approved"`
}

// SetStatus records the approval flag for (asset, user). Only the
// governing authority's key is accepted.
// POST /compliance
func (h *ComplianceHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req setComplianceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, models.Errf(models.CodeInvalidInput, "decode request: %v", err))
		return
	}
	authority, err := caller(r)
	if err != nil {
		writeError(w, err)
		return
	}

	flag, err := h.Service.SetComplianceStatus(r.Context(), authority, req.AssetID, req.User, req.IsApproved)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"is_approved": flag})
}

// GetDetails returns the compliance record for (asset, user).
// GET /compliance/{assetID}/{user}
func (h *ComplianceHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	assetID, err := strconv.ParseUint(chi.URLParam(r, "assetID"), 10, 64)
	if err != nil {
		writeError(w, models.Errf(models.CodeInvalidInput, "asset id: %v", err))
		return
	}
	user := chi.URLParam(r, "user")

	rec, found := h.Service.GetComplianceDetails(assetID, user)
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no compliance record"})
		return
	}
	writeJSON(w, http.StatusOK, rec)
}
