package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/saviour-frank/vault-chain/ledger"
)

// Counter names in the ledger_counters table.
const (
	counterNextAssetID = "next_asset_id"
	counterLastEventID = "last_event_id"
)

// Store persists ledger changesets and loads snapshots. It implements
// ledger.Sink, so a database failure aborts the enclosing ledger
// operation before anything commits in memory.
type Store struct {
	db *DB
}

func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Apply writes one changeset inside a single SQL transaction. Asset,
// balance, token and compliance rows upsert; events are insert-only.
func (s *Store) Apply(ctx context.Context, cs *ledger.Changeset) error {
	if cs.Empty() {
		return nil
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, a := range cs.Assets {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO assets (id, owner, total_supply, fractional_shares, metadata_uri, is_transferable, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET is_transferable = EXCLUDED.is_transferable`,
			a.ID, a.Owner, a.TotalSupply, a.FractionalShares, a.MetadataURI, a.IsTransferable, a.CreatedAt)
		if err != nil {
			return fmt.Errorf("upsert asset %d: %w", a.ID, err)
		}
	}
	for k, shares := range cs.Balances {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO share_balances (asset_id, owner, shares)
			VALUES ($1, $2, $3)
			ON CONFLICT (asset_id, owner) DO UPDATE SET shares = EXCLUDED.shares`,
			k.AssetID, k.Owner, shares)
		if err != nil {
			return fmt.Errorf("upsert balance (%d, %s): %w", k.AssetID, k.Owner, err)
		}
	}
	for assetID, holder := range cs.TokenHolders {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO ownership_tokens (asset_id, holder)
			VALUES ($1, $2)
			ON CONFLICT (asset_id) DO UPDATE SET holder = EXCLUDED.holder`,
			assetID, holder)
		if err != nil {
			return fmt.Errorf("upsert ownership token %d: %w", assetID, err)
		}
	}
	for k, rec := range cs.Compliance {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO compliance_records (asset_id, user_key, is_approved, last_updated, approved_by)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (asset_id, user_key) DO UPDATE
			SET is_approved = EXCLUDED.is_approved,
			    last_updated = EXCLUDED.last_updated,
			    approved_by = EXCLUDED.approved_by`,
			k.AssetID, k.User, rec.IsApproved, rec.LastUpdated, rec.ApprovedBy)
		if err != nil {
			return fmt.Errorf("upsert compliance record (%d, %s): %w", k.AssetID, k.User, err)
		}
	}
	for _, ev := range cs.Events {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO events (id, event_type, asset_id, principal, height)
			VALUES ($1, $2, $3, $4, $5)`,
			ev.ID, ev.Type, ev.AssetID, ev.Principal, ev.Height)
		if err != nil {
			return fmt.Errorf("insert event %d: %w", ev.ID, err)
		}
	}
	if cs.NextAssetID != 0 {
		if err := s.setCounter(ctx, tx, counterNextAssetID, cs.NextAssetID); err != nil {
			return err
		}
	}
	if cs.LastEventID != 0 {
		if err := s.setCounter(ctx, tx, counterLastEventID, cs.LastEventID); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func (s *Store) setCounter(ctx context.Context, tx *sqlx.Tx, name string, value uint64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO ledger_counters (name, value)
		VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value`,
		name, value)
	if err != nil {
		return fmt.Errorf("upsert counter %s: %w", name, err)
	}
	return nil
}

// Load reads the full persisted state back into a snapshot suitable for
// ledger.WithSnapshot. A fresh database yields a genesis snapshot.
func (s *Store) Load(ctx context.Context) (*ledger.Snapshot, error) {
	snap := &ledger.Snapshot{NextAssetID: 1}

	if err := s.db.SelectContext(ctx, &snap.Assets, `SELECT id, owner, total_supply, fractional_shares, metadata_uri, is_transferable, created_at FROM assets`); err != nil {
		return nil, fmt.Errorf("load assets: %w", err)
	}
	if err := s.db.SelectContext(ctx, &snap.Balances, `SELECT asset_id, owner, shares FROM share_balances`); err != nil {
		return nil, fmt.Errorf("load balances: %w", err)
	}
	if err := s.db.SelectContext(ctx, &snap.TokenHolders, `SELECT asset_id, holder FROM ownership_tokens`); err != nil {
		return nil, fmt.Errorf("load ownership tokens: %w", err)
	}
	if err := s.db.SelectContext(ctx, &snap.Compliance, `SELECT asset_id, user_key, is_approved, last_updated, approved_by FROM compliance_records`); err != nil {
		return nil, fmt.Errorf("load compliance records: %w", err)
	}
	if err := s.db.SelectContext(ctx, &snap.Events, `SELECT id, event_type, asset_id, principal, height FROM events`); err != nil {
		return nil, fmt.Errorf("load events: %w", err)
	}

	nextAssetID, err := s.counter(ctx, counterNextAssetID)
	if err != nil {
		return nil, err
	}
	if nextAssetID > 0 {
		snap.NextAssetID = nextAssetID
	}
	lastEventID, err := s.counter(ctx, counterLastEventID)
	if err != nil {
		return nil, err
	}
	snap.LastEventID = lastEventID
	return snap, nil
}

func (s *Store) counter(ctx context.Context, name string) (uint64, error) {
	var value uint64
	err := s.db.GetContext(ctx, &value, `SELECT value FROM ledger_counters WHERE name = $1`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load counter %s: %w", name, err)
	}
	return value, nil
}

var _ ledger.Sink = (*Store)(nil)
