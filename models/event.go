package models

// EventType identifies the kind of state-changing action an event records.
type EventType string

const (
	EventAssetCreated     EventType = "ASSET_CREATED"
	EventTransfer         EventType = "TRANSFER"
	EventComplianceUpdate EventType = "COMPLIANCE_UPDATE"
)

// Event is one append-only audit record. IDs are allocated sequentially
// starting at 1; once written an event is never mutated or deleted.
// Principal is the identity the action is attributed to: the creator for
// ASSET_CREATED, the sender for TRANSFER, and the affected user for
// COMPLIANCE_UPDATE.
type Event struct {
	ID        uint64    `json:"id" db:"id"`
	Type      EventType `json:"event_type" db:"event_type"`
	AssetID   uint64    `json:"asset_id" db:"asset_id"`
	Principal Identity  `json:"principal" db:"principal"`
	Height    uint64    `json:"height" db:"height"`
}
