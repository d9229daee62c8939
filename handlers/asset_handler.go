package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saviour-frank/vault-chain/models"
	"github.com/saviour-frank/vault-chain/services"
)

// AssetHandler serves asset creation and asset lookups.
type AssetHandler struct {
	Service *services.LedgerService
}

func NewAssetHandler(s *services.LedgerService) *AssetHandler {
	return &AssetHandler{Service: s}
}

// CreateAsset registers a new asset owned by the caller.
// POST /assets
func (h *AssetHandler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var requestBody struct {
		TotalSupply      uint64 `json:"total_supply"`
		FractionalShares uint64 `json:"fractional_shares"`
		MetadataURI      string `json:"metadata_uri"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		writeError(w, models.Errf(models.CodeInvalidInput, "decode request: %v", err))
		return
	}
	creator, err := caller(r)
	if err != nil {
		writeError(w, err)
		return
	}

	assetID, err := h.Service.CreateAsset(r.Context(),
		creator, requestBody.TotalSupply, requestBody.FractionalShares, requestBody.MetadataURI)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]uint64{"asset_id": assetID})
}

// GetAssetByID returns the asset record.
// GET /assets/{id}
func (h *AssetHandler) GetAssetByID(w http.ResponseWriter, r *http.Request) {
	assetID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, models.Errf(models.CodeInvalidInput, "asset id: %v", err))
		return
	}

	asset, found := h.Service.GetAsset(assetID)
	if !found {
		writeError(w, models.Errf(models.CodeInvalidAsset, "asset %d not found", assetID))
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// GetOwnerShares returns one share balance, zero when the owner holds
// nothing.
// GET /assets/{id}/shares/{owner}
func (h *AssetHandler) GetOwnerShares(w http.ResponseWriter, r *http.Request) {
	assetID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, models.Errf(models.CodeInvalidInput, "asset id: %v", err))
		return
	}
	owner := chi.URLParam(r, "owner")

	shares := h.Service.GetOwnerShares(assetID, owner)
	writeJSON(w, http.StatusOK, models.ShareBalance{
		AssetID: assetID,
		Owner:   models.Identity(owner),
		Shares:  shares,
	})
}
