package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetrics tracks the parse result cache.
//
// Metrics:
//   - mechcfg_cache_hits_total
//   - mechcfg_cache_misses_total
//   - mechcfg_cache_entries: current number of cached results
type CacheMetrics struct {
	hitsTotal   prometheus.Counter
	missesTotal prometheus.Counter
	entries     prometheus.Gauge
}

// NewCacheMetrics creates and registers cache metrics with the provided registry.
func NewCacheMetrics(registry *prometheus.Registry) *CacheMetrics {
	cm := &CacheMetrics{
		hitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of parse results served from the cache",
		}),
		missesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of parses not found in the cache",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "cache_entries",
			Help:      "Current number of cached parse results",
		}),
	}

	registry.MustRegister(cm.hitsTotal, cm.missesTotal, cm.entries)

	return cm
}

// RecordHit records a cache hit.
func (cm *CacheMetrics) RecordHit() {
	cm.hitsTotal.Inc()
}

// RecordMiss records a cache miss.
func (cm *CacheMetrics) RecordMiss() {
	cm.missesTotal.Inc()
}

// SetEntries sets the number of cached results.
func (cm *CacheMetrics) SetEntries(n int) {
	cm.entries.Set(float64(n))
}
