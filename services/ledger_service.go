// Package services orchestrates the ledger engine for the HTTP layer:
// it parses caller identities, stamps each mutating operation with the
// current height and records outcome logs and metrics.
package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/saviour-frank/vault-chain/heights"
	"github.com/saviour-frank/vault-chain/ledger"
	"github.com/saviour-frank/vault-chain/metrics"
	"github.com/saviour-frank/vault-chain/models"
)

// LedgerService is the dispatcher-facing service over the core engine.
type LedgerService struct {
	engine  *ledger.Engine
	heights heights.Source
	log     zerolog.Logger
}

// NewLedgerService wires the engine to a height source.
func NewLedgerService(engine *ledger.Engine, src heights.Source, logger zerolog.Logger) *LedgerService {
	return &LedgerService{
		engine:  engine,
		heights: src,
		log:     logger.With().Str("component", "ledger").Logger(),
	}
}

// CreateAsset registers a new asset with the caller as creator and
// returns the allocated asset id.
func (s *LedgerService) CreateAsset(ctx context.Context, caller string, totalSupply, fractionalShares uint64, metadataURI string) (uint64, error) {
	creator, err := models.ParseIdentity(caller)
	if err != nil {
		return 0, s.fail("create_asset", models.Errf(models.CodeInvalidInput, "caller identity: %v", err))
	}
	height, err := s.heights.Current(ctx)
	if err != nil {
		return 0, s.fail("create_asset", models.Errf(models.CodeEventLogging, "height source: %v", err))
	}

	assetID, err := s.engine.CreateAsset(ctx, creator, totalSupply, fractionalShares, metadataURI, height)
	if err != nil {
		return 0, s.fail("create_asset", err)
	}
	metrics.Operations.WithLabelValues("create_asset", "ok").Inc()
	s.log.Info().
		Uint64("asset_id", assetID).
		Str("creator", creator.String()).
		Uint64("total_supply", totalSupply).
		Uint64("height", height).
		Msg("asset created")
	return assetID, nil
}

// Transfer moves fractional shares from the caller to the recipient. The
// recipient string is passed to the engine unparsed so that the
// well-formedness gate fires in its specified position.
func (s *LedgerService) Transfer(ctx context.Context, caller string, assetID uint64, to string, amount uint64) error {
	sender, err := models.ParseIdentity(caller)
	if err != nil {
		return s.fail("transfer", models.Errf(models.CodeInvalidInput, "caller identity: %v", err))
	}
	height, err := s.heights.Current(ctx)
	if err != nil {
		return s.fail("transfer", models.Errf(models.CodeEventLogging, "height source: %v", err))
	}

	if err := s.engine.Transfer(ctx, sender, assetID, models.Identity(to), amount, height); err != nil {
		return s.fail("transfer", err)
	}
	metrics.Operations.WithLabelValues("transfer", "ok").Inc()
	s.log.Info().
		Uint64("asset_id", assetID).
		Str("from", sender.String()).
		Str("to", to).
		Uint64("amount", amount).
		Uint64("height", height).
		Msg("shares transferred")
	return nil
}

// SetComplianceStatus records the approval flag for (asset, user) and
// returns the written flag.
func (s *LedgerService) SetComplianceStatus(ctx context.Context, caller string, assetID uint64, user string, approved bool) (bool, error) {
	authority, err := models.ParseIdentity(caller)
	if err != nil {
		return false, s.fail("set_compliance", models.Errf(models.CodeInvalidInput, "caller identity: %v", err))
	}
	height, err := s.heights.Current(ctx)
	if err != nil {
		return false, s.fail("set_compliance", models.Errf(models.CodeEventLogging, "height source: %v", err))
	}

	flag, err := s.engine.SetComplianceStatus(ctx, authority, assetID, models.Identity(user), approved, height)
	if err != nil {
		return false, s.fail("set_compliance", err)
	}
	metrics.Operations.WithLabelValues("set_compliance", "ok").Inc()
	s.log.Info().
		Uint64("asset_id", assetID).
		Str("user", user).
		Bool("approved", flag).
		Uint64("height", height).
		Msg("compliance status updated")
	return flag, nil
}

// GetAsset returns the asset record, if any.
func (s *LedgerService) GetAsset(assetID uint64) (models.Asset, bool) {
	return s.engine.GetAsset(assetID)
}

// GetOwnerShares returns the share balance, zero when absent.
func (s *LedgerService) GetOwnerShares(assetID uint64, owner string) uint64 {
	return s.engine.BalanceOf(assetID, models.Identity(owner))
}

// GetTokenHolder returns the current ownership-token holder, if any.
func (s *LedgerService) GetTokenHolder(assetID uint64) (models.Identity, bool) {
	return s.engine.TokenHolder(assetID)
}

// GetComplianceDetails returns the compliance record, if any.
func (s *LedgerService) GetComplianceDetails(assetID uint64, user string) (models.ComplianceRecord, bool) {
	return s.engine.GetCompliance(assetID, models.Identity(user))
}

// GetEvent returns the event record, if any.
func (s *LedgerService) GetEvent(eventID uint64) (models.Event, bool) {
	return s.engine.GetEvent(eventID)
}

func (s *LedgerService) fail(op string, err error) error {
	outcome := "error"
	if code, ok := models.CodeOf(err); ok {
		outcome = code.String()
	}
	metrics.Operations.WithLabelValues(op, outcome).Inc()
	s.log.Warn().Err(err).Str("op", op).Msg("operation rejected")
	return err
}
