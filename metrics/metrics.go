// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operations counts ledger entry-point invocations by operation and
// outcome ("ok" or the failed error code name).
var Operations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vaultchain_operations_total",
	Help: "Ledger operations by entry point and outcome.",
}, []string{"op", "outcome"})
