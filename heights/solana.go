package heights

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

// SolanaSource tracks the finalized slot height of a Solana RPC node and
// serves it as the ledger height. A background poller keeps a cached
// value fresh; the cache only ever moves forward, so a lagging or
// restarted RPC node cannot make the height regress.
type SolanaSource struct {
	client   *rpc.Client
	interval time.Duration
	log      zerolog.Logger
	last     atomic.Uint64
}

// NewSolanaSource builds a source against rpcEndpoint, polling at the
// given interval once Start is called.
func NewSolanaSource(rpcEndpoint string, interval time.Duration, logger zerolog.Logger) *SolanaSource {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &SolanaSource{
		client:   rpc.New(rpcEndpoint),
		interval: interval,
		log:      logger.With().Str("component", "heights").Logger(),
	}
}

// Start runs the poll loop until ctx is cancelled. Run it in its own
// goroutine.
func (s *SolanaSource) Start(ctx context.Context) {
	s.log.Info().Dur("interval", s.interval).Msg("starting solana slot poller")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	s.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			s.log.Info().Msg("solana slot poller stopped")
			return
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *SolanaSource) poll(ctx context.Context) {
	slot, err := s.client.GetSlot(ctx, rpc.CommitmentFinalized)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to fetch slot")
		return
	}
	s.advance(slot)
}

func (s *SolanaSource) advance(slot uint64) {
	for {
		last := s.last.Load()
		if slot <= last {
			return
		}
		if s.last.CompareAndSwap(last, slot) {
			return
		}
	}
}

// Current returns the cached slot, fetching synchronously if the poller
// has not observed one yet.
func (s *SolanaSource) Current(ctx context.Context) (uint64, error) {
	if last := s.last.Load(); last > 0 {
		return last, nil
	}
	slot, err := s.client.GetSlot(ctx, rpc.CommitmentFinalized)
	if err != nil {
		return 0, err
	}
	s.advance(slot)
	return s.last.Load(), nil
}
