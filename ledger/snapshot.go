package ledger

import "github.com/saviour-frank/vault-chain/models"

// Snapshot is a full copy of the ledger state, used to persist and
// restore the engine across restarts.
type Snapshot struct {
	Assets       []models.Asset
	Balances     []models.ShareBalance
	TokenHolders []models.OwnershipToken
	Compliance   []models.ComplianceRecord
	Events       []models.Event
	NextAssetID  uint64
	LastEventID  uint64
}

// Snapshot exports a copy of the current state.
func (e *Engine) Snapshot() *Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := &Snapshot{
		NextAssetID: e.t.nextAssetID,
		LastEventID: e.t.lastEventID,
	}
	for _, a := range e.t.assets {
		snap.Assets = append(snap.Assets, a)
	}
	for k, shares := range e.t.balances {
		snap.Balances = append(snap.Balances, models.ShareBalance{
			AssetID: k.AssetID, Owner: k.Owner, Shares: shares,
		})
	}
	for id, holder := range e.t.tokens {
		snap.TokenHolders = append(snap.TokenHolders, models.OwnershipToken{
			AssetID: id, Holder: holder,
		})
	}
	for _, rec := range e.t.compliance {
		snap.Compliance = append(snap.Compliance, rec)
	}
	for _, ev := range e.t.events {
		snap.Events = append(snap.Events, ev)
	}
	return snap
}

func (e *Engine) restore(snap *Snapshot) {
	if snap == nil {
		return
	}
	t := genesisTables()
	for _, a := range snap.Assets {
		t.assets[a.ID] = a
	}
	for _, b := range snap.Balances {
		t.balances[BalanceKey{AssetID: b.AssetID, Owner: b.Owner}] = b.Shares
	}
	for _, tok := range snap.TokenHolders {
		t.tokens[tok.AssetID] = tok.Holder
	}
	for _, rec := range snap.Compliance {
		t.compliance[ComplianceKey{AssetID: rec.AssetID, User: rec.User}] = rec
	}
	for _, ev := range snap.Events {
		t.events[ev.ID] = ev
	}
	if snap.NextAssetID > 0 {
		t.nextAssetID = snap.NextAssetID
	}
	t.lastEventID = snap.LastEventID
	e.t = t
}
