package ledger

import "github.com/saviour-frank/vault-chain/models"

// tokenHolder reads the ownership-token holder through the changeset
// overlay.
func (e *Engine) tokenHolder(cs *Changeset, assetID uint64) (models.Identity, bool) {
	if cs != nil {
		if holder, ok := cs.TokenHolders[assetID]; ok {
			return holder, true
		}
	}
	holder, ok := e.t.tokens[assetID]
	return holder, ok
}

// mintToken stages the one-time assignment of the asset's ownership
// token to its creator.
func (e *Engine) mintToken(cs *Changeset, assetID uint64, to models.Identity) {
	cs.TokenHolders[assetID] = to
}

// transferToken stages the token handoff. The ledger invariant keeps the
// token with whoever holds all shares, so a holder mismatch should not
// occur; it is still checked and fails the whole operation.
func (e *Engine) transferToken(cs *Changeset, assetID uint64, from, to models.Identity) error {
	holder, ok := e.tokenHolder(cs, assetID)
	if !ok || holder != from {
		return models.Errf(models.CodeTransferFailed, "sender does not hold the ownership token for asset %d", assetID)
	}
	cs.TokenHolders[assetID] = to
	return nil
}
