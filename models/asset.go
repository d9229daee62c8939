package models

// Bounds for the metadata URI of an asset. The lower bound is exclusive,
// the upper bound inclusive.
const (
	MetadataURIMinLen = 5
	MetadataURIMaxLen = 256
)

// Asset is the canonical record of a tokenized external asset. Owner
// records the creator and is never updated by transfers; current
// ownership is derived from the share ledger and the ownership token.
type Asset struct {
	ID               uint64   `json:"id" db:"id"`
	Owner            Identity `json:"owner" db:"owner"`
	TotalSupply      uint64   `json:"total_supply" db:"total_supply"`
	FractionalShares uint64   `json:"fractional_shares" db:"fractional_shares"`
	MetadataURI      string   `json:"metadata_uri" db:"metadata_uri"`
	IsTransferable   bool     `json:"is_transferable" db:"is_transferable"`
	CreatedAt        uint64   `json:"created_at" db:"created_at"`
}

// ShareBalance is one row of the fractional-share ledger, keyed by
// (asset, owner). A missing row is a balance of zero.
type ShareBalance struct {
	AssetID uint64   `json:"asset_id" db:"asset_id"`
	Owner   Identity `json:"owner" db:"owner"`
	Shares  uint64   `json:"shares" db:"shares"`
}

// OwnershipToken records the single holder of full legal title to an
// asset. Exactly one token exists per asset.
type OwnershipToken struct {
	AssetID uint64   `json:"asset_id" db:"asset_id"`
	Holder  Identity `json:"holder" db:"holder"`
}
