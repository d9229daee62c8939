// Package heights supplies the monotonic height counter used to
// timestamp ledger state. The service runs against either a logical
// in-process counter or the slot height of a Solana RPC node.
package heights

import (
	"context"
	"sync/atomic"
)

// Source yields the current height. Implementations must never return a
// value lower than one they returned before.
type Source interface {
	Current(ctx context.Context) (uint64, error)
}

// Logical is a strictly increasing in-process counter. It is the
// default source for standalone deployments and the deterministic
// choice for tests.
type Logical struct {
	n atomic.Uint64
}

// NewLogical starts a counter whose first Current call returns start+1.
func NewLogical(start uint64) *Logical {
	l := &Logical{}
	l.n.Store(start)
	return l
}

func (l *Logical) Current(ctx context.Context) (uint64, error) {
	return l.n.Add(1), nil
}
