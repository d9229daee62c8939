// Package ledger implements the tokenized-ownership state machine: the
// asset registry, the fractional-share ledger, the per-asset ownership
// token, the compliance gate and the append-only event log. All three
// mutating entry points run under a single mutex and stage their writes
// into a Changeset that commits all-or-nothing, so no caller can ever
// observe a half-applied operation.
package ledger

import (
	"context"
	"sync"

	"github.com/saviour-frank/vault-chain/models"
)

// Sink receives each committed changeset before it is applied to the
// in-memory tables. A sink failure aborts the whole operation with no
// mutation retained, which is how durable storage joins the atomicity
// boundary.
type Sink interface {
	Apply(ctx context.Context, cs *Changeset) error
}

type tables struct {
	assets      map[uint64]models.Asset
	balances    map[BalanceKey]uint64
	tokens      map[uint64]models.Identity
	compliance  map[ComplianceKey]models.ComplianceRecord
	events      map[uint64]models.Event
	nextAssetID uint64
	lastEventID uint64
}

func genesisTables() tables {
	return tables{
		assets:      make(map[uint64]models.Asset),
		balances:    make(map[BalanceKey]uint64),
		tokens:      make(map[uint64]models.Identity),
		compliance:  make(map[ComplianceKey]models.ComplianceRecord),
		events:      make(map[uint64]models.Event),
		nextAssetID: 1,
		lastEventID: 0,
	}
}

// Engine owns the full ledger state. The governing authority and the
// system's own operating identity are fixed at construction.
type Engine struct {
	mu        sync.Mutex
	t         tables
	authority models.Identity
	system    models.Identity
	sink      Sink
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithSink attaches a durable sink to the commit path.
func WithSink(s Sink) Option {
	return func(e *Engine) { e.sink = s }
}

// WithSnapshot seeds the engine from previously persisted state.
func WithSnapshot(snap *Snapshot) Option {
	return func(e *Engine) { e.restore(snap) }
}

// New builds an engine at genesis: empty tables, next asset id 1, last
// event id 0.
func New(authority, system models.Identity, opts ...Option) *Engine {
	e := &Engine{
		t:         genesisTables(),
		authority: authority,
		system:    system,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Authority returns the governing identity fixed at genesis.
func (e *Engine) Authority() models.Identity { return e.authority }

// commit pushes the changeset through the sink, then folds it into the
// base tables. The sink runs first so that a persistence failure leaves
// the in-memory state untouched.
func (e *Engine) commit(ctx context.Context, cs *Changeset) error {
	if e.sink != nil {
		if err := e.sink.Apply(ctx, cs); err != nil {
			return models.Errf(models.CodeEventLogging, "persist changeset: %v", err)
		}
	}
	for id, a := range cs.Assets {
		e.t.assets[id] = a
	}
	for k, shares := range cs.Balances {
		e.t.balances[k] = shares
	}
	for id, holder := range cs.TokenHolders {
		e.t.tokens[id] = holder
	}
	for k, rec := range cs.Compliance {
		e.t.compliance[k] = rec
	}
	for _, ev := range cs.Events {
		e.t.events[ev.ID] = ev
	}
	if cs.NextAssetID != 0 {
		e.t.nextAssetID = cs.NextAssetID
	}
	if cs.LastEventID != 0 {
		e.t.lastEventID = cs.LastEventID
	}
	return nil
}
