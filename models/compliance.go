package models

// ComplianceRecord is the approval flag gating a user's ability to
// receive shares of an asset. Absence of a record means not approved.
// Records are written only by the governing authority.
type ComplianceRecord struct {
	AssetID     uint64   `json:"asset_id" db:"asset_id"`
	User        Identity `json:"user" db:"user_key"`
	IsApproved  bool     `json:"is_approved" db:"is_approved"`
	LastUpdated uint64   `json:"last_updated" db:"last_updated"`
	ApprovedBy  Identity `json:"approved_by" db:"approved_by"`
}
