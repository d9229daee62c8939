package ledger

import (
	"context"

	"github.com/saviour-frank/vault-chain/models"
)

// CreateAsset registers a new asset owned by caller: the asset record is
// stored, the creator's balance is set to the full supply, the ownership
// token is minted to the creator and an ASSET_CREATED event is appended,
// all in one atomic unit. Returns the new asset id.
//
// Note that the creator's opening balance is the total supply, not the
// fractional share count; the latter is descriptive only.
func (e *Engine) CreateAsset(ctx context.Context, caller models.Identity, totalSupply, fractionalShares uint64, metadataURI string, height uint64) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cs := newChangeset()
	id, err := e.createAsset(cs, caller, totalSupply, fractionalShares, metadataURI, height)
	if err != nil {
		return 0, err
	}
	e.setBalance(cs, id, caller, totalSupply)
	e.mintToken(cs, id, caller)
	if _, err := e.appendEvent(cs, models.EventAssetCreated, id, caller, height); err != nil {
		return 0, err
	}
	cs.NextAssetID = id + 1
	if err := e.commit(ctx, cs); err != nil {
		return 0, err
	}
	return id, nil
}

// Transfer moves amount shares of an asset from caller to recipient.
// Gates run in a fixed order and the first failure aborts with no
// mutation applied: asset exists, asset id well-formed, recipient
// well-formed and distinct from the authority and the system identity,
// asset transferable, recipient approved by the compliance gate (the
// sender is never checked), sender balance sufficient. When the amount
// equals the sender's entire pre-transfer balance the ownership token
// moves with the shares.
func (e *Engine) Transfer(ctx context.Context, caller models.Identity, assetID uint64, to models.Identity, amount uint64, height uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	cs := newChangeset()
	asset, ok := e.getAsset(cs, assetID)
	if !ok {
		return models.Errf(models.CodeInvalidAsset, "asset %d does not exist", assetID)
	}
	if !e.isValidAssetID(assetID) {
		return models.Errf(models.CodeInvalidInput, "asset id %d out of range", assetID)
	}
	if !to.Valid() {
		return models.Errf(models.CodeInvalidInput, "recipient is not a well-formed identity")
	}
	if to == e.authority || to == e.system {
		return models.Errf(models.CodeInvalidInput, "recipient may not be the authority or the system identity")
	}
	if !asset.IsTransferable {
		return models.Errf(models.CodeUnauthorized, "asset %d is not transferable", assetID)
	}
	if !e.isApproved(cs, assetID, to) {
		return models.Errf(models.CodeComplianceCheckFailed, "recipient is not approved for asset %d", assetID)
	}

	preBalance := e.balanceOf(cs, assetID, caller)
	if err := e.transferShares(cs, assetID, caller, to, amount); err != nil {
		return err
	}
	if amount == preBalance {
		// The sender's holdings dropped to zero: full title moves too.
		if err := e.transferToken(cs, assetID, caller, to); err != nil {
			return err
		}
	}
	if _, err := e.appendEvent(cs, models.EventTransfer, assetID, caller, height); err != nil {
		return err
	}
	return e.commit(ctx, cs)
}

// SetComplianceStatus records the approval flag for (asset, user). Only
// the governing authority may call it; the target user must be a
// well-formed identity distinct from the authority and the system
// identity. Returns the flag that was written.
func (e *Engine) SetComplianceStatus(ctx context.Context, caller models.Identity, assetID uint64, user models.Identity, approved bool, height uint64) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.isValidAssetID(assetID) {
		return false, models.Errf(models.CodeInvalidInput, "asset id %d out of range", assetID)
	}
	if !user.Valid() {
		return false, models.Errf(models.CodeInvalidInput, "user is not a well-formed identity")
	}
	if user == e.authority || user == e.system {
		return false, models.Errf(models.CodeInvalidInput, "user may not be the authority or the system identity")
	}
	if caller != e.authority {
		return false, models.Errf(models.CodeUnauthorized, "only the governing authority may set compliance status")
	}

	cs := newChangeset()
	e.setCompliance(cs, assetID, user, approved, height)
	if _, err := e.appendEvent(cs, models.EventComplianceUpdate, assetID, user, height); err != nil {
		return false, err
	}
	if err := e.commit(ctx, cs); err != nil {
		return false, err
	}
	return approved, nil
}

// GetAsset is a pure lookup of an asset record.
func (e *Engine) GetAsset(assetID uint64) (models.Asset, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.getAsset(nil, assetID)
}

// BalanceOf is a pure lookup of one share balance, zero when absent.
func (e *Engine) BalanceOf(assetID uint64, owner models.Identity) uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.balanceOf(nil, assetID, owner)
}

// TokenHolder is a pure lookup of the ownership-token holder.
func (e *Engine) TokenHolder(assetID uint64) (models.Identity, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tokenHolder(nil, assetID)
}

// GetCompliance is a pure lookup of a compliance record.
func (e *Engine) GetCompliance(assetID uint64, user models.Identity) (models.ComplianceRecord, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.getCompliance(nil, assetID, user)
}

// GetEvent is a pure lookup of an event record.
func (e *Engine) GetEvent(eventID uint64) (models.Event, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	ev, ok := e.t.events[eventID]
	return ev, ok
}
