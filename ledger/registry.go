package ledger

import "github.com/saviour-frank/vault-chain/models"

// isValidAssetID reports whether id has been allocated: 0 < id < nextAssetID.
func (e *Engine) isValidAssetID(id uint64) bool {
	return id > 0 && id < e.t.nextAssetID
}

// getAsset reads an asset through the changeset overlay.
func (e *Engine) getAsset(cs *Changeset, id uint64) (models.Asset, bool) {
	if cs != nil {
		if a, ok := cs.Assets[id]; ok {
			return a, true
		}
	}
	a, ok := e.t.assets[id]
	return a, ok
}

// createAsset validates inputs, allocates the next asset id and stages
// the immutable asset record. No state is touched on a validation
// failure. The caller is responsible for advancing NextAssetID on the
// changeset once the rest of the creation steps have been staged.
func (e *Engine) createAsset(cs *Changeset, creator models.Identity, totalSupply, fractionalShares uint64, metadataURI string, height uint64) (uint64, error) {
	if totalSupply == 0 {
		return 0, models.Errf(models.CodeInvalidInput, "total supply must be positive")
	}
	if fractionalShares == 0 {
		return 0, models.Errf(models.CodeInvalidInput, "fractional shares must be positive")
	}
	if fractionalShares > totalSupply {
		return 0, models.Errf(models.CodeInvalidInput, "fractional shares %d exceed total supply %d", fractionalShares, totalSupply)
	}
	if n := len(metadataURI); n <= models.MetadataURIMinLen || n > models.MetadataURIMaxLen {
		return 0, models.Errf(models.CodeInvalidInput, "metadata URI length %d outside (%d, %d]", n, models.MetadataURIMinLen, models.MetadataURIMaxLen)
	}

	id := e.t.nextAssetID
	cs.Assets[id] = models.Asset{
		ID:               id,
		Owner:            creator,
		TotalSupply:      totalSupply,
		FractionalShares: fractionalShares,
		MetadataURI:      metadataURI,
		IsTransferable:   true,
		CreatedAt:        height,
	}
	return id, nil
}
