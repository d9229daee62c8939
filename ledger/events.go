package ledger

import "github.com/saviour-frank/vault-chain/models"

// appendEvent allocates the next event id and stages the record. This is
// the final staged step of every mutating operation. The collision check
// is defensive; if the counter is ever inconsistent the whole operation
// aborts rather than overwrite history.
func (e *Engine) appendEvent(cs *Changeset, typ models.EventType, assetID uint64, principal models.Identity, height uint64) (uint64, error) {
	last := e.t.lastEventID
	if cs.LastEventID > last {
		last = cs.LastEventID
	}
	id := last + 1
	if _, exists := e.t.events[id]; exists {
		return 0, models.Errf(models.CodeEventLogging, "event id %d already recorded", id)
	}
	cs.Events = append(cs.Events, models.Event{
		ID:        id,
		Type:      typ,
		AssetID:   assetID,
		Principal: principal,
		Height:    height,
	})
	cs.LastEventID = id
	return id, nil
}
