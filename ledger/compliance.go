package ledger

import "github.com/saviour-frank/vault-chain/models"

// getCompliance reads a compliance record through the changeset overlay.
func (e *Engine) getCompliance(cs *Changeset, assetID uint64, user models.Identity) (models.ComplianceRecord, bool) {
	k := ComplianceKey{AssetID: assetID, User: user}
	if cs != nil {
		if rec, ok := cs.Compliance[k]; ok {
			return rec, true
		}
	}
	rec, ok := e.t.compliance[k]
	return rec, ok
}

// isApproved reports the approval flag for (asset, user). No record
// means not approved.
func (e *Engine) isApproved(cs *Changeset, assetID uint64, user models.Identity) bool {
	rec, ok := e.getCompliance(cs, assetID, user)
	return ok && rec.IsApproved
}

// setCompliance stages an overwrite (or creation) of the record.
func (e *Engine) setCompliance(cs *Changeset, assetID uint64, user models.Identity, approved bool, height uint64) {
	cs.Compliance[ComplianceKey{AssetID: assetID, User: user}] = models.ComplianceRecord{
		AssetID:     assetID,
		User:        user,
		IsApproved:  approved,
		LastUpdated: height,
		ApprovedBy:  e.authority,
	}
}
