package ledger

import "github.com/saviour-frank/vault-chain/models"

// BalanceKey addresses one share balance row.
type BalanceKey struct {
	AssetID uint64
	Owner   models.Identity
}

// ComplianceKey addresses one compliance record.
type ComplianceKey struct {
	AssetID uint64
	User    models.Identity
}

// Changeset stages every write of one atomic operation. Reads performed
// while an operation is in flight consult the changeset before the base
// tables, so an operation observes its own staged writes. Nothing in the
// engine changes until the changeset commits; dropping it on any failure
// is the rollback.
type Changeset struct {
	Assets       map[uint64]models.Asset
	Balances     map[BalanceKey]uint64
	TokenHolders map[uint64]models.Identity
	Compliance   map[ComplianceKey]models.ComplianceRecord
	Events       []models.Event

	// New counter values; zero means unchanged.
	NextAssetID uint64
	LastEventID uint64
}

func newChangeset() *Changeset {
	return &Changeset{
		Assets:       make(map[uint64]models.Asset),
		Balances:     make(map[BalanceKey]uint64),
		TokenHolders: make(map[uint64]models.Identity),
		Compliance:   make(map[ComplianceKey]models.ComplianceRecord),
	}
}

// Empty reports whether the changeset stages no writes at all.
func (cs *Changeset) Empty() bool {
	return len(cs.Assets) == 0 && len(cs.Balances) == 0 &&
		len(cs.TokenHolders) == 0 && len(cs.Compliance) == 0 &&
		len(cs.Events) == 0 && cs.NextAssetID == 0 && cs.LastEventID == 0
}
