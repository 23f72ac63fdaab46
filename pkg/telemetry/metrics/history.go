package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HistoryMetrics tracks the validation history store.
type HistoryMetrics struct {
	prunedTotal prometheus.Counter
}

// NewHistoryMetrics creates and registers history metrics with the provided
// registry.
func NewHistoryMetrics(registry *prometheus.Registry) *HistoryMetrics {
	hm := &HistoryMetrics{
		prunedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "history_records_pruned_total",
			Help:      "Total number of history runs deleted by retention pruning",
		}),
	}
	registry.MustRegister(hm.prunedTotal)
	return hm
}

// RecordPruned adds n deleted runs.
func (hm *HistoryMetrics) RecordPruned(n int64) {
	hm.prunedTotal.Add(float64(n))
}
