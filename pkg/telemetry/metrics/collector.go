package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"open-atmos/mechanism-configuration/pkg/config"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Namespace prefixes every metric name.
const Namespace = "mechcfg"

// Collector owns the Prometheus collectors of the tool and the registry
// they are registered with. A disabled collector ignores every update, so
// callers never need to check the configuration themselves.
type Collector struct {
	enabled  bool
	registry *prometheus.Registry

	validation *ValidationMetrics
	cache      *CacheMetrics
	history    *HistoryMetrics
}

// NewCollector creates a collector and registers its metrics with registry.
// A nil registry gets a fresh one; a nil cfg means enabled.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	enabled := cfg == nil || cfg.Enabled

	return &Collector{
		enabled:    enabled,
		registry:   registry,
		validation: NewValidationMetrics(registry),
		cache:      NewCacheMetrics(registry),
		history:    NewHistoryMetrics(registry),
	}
}

// Registry returns the registry the metrics are registered with.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Enabled reports whether updates are recorded.
func (c *Collector) Enabled() bool {
	return c.enabled
}

// RecordValidation records one finished validation of a configuration:
// its outcome by schema line, its duration, and every error by kind.
func (c *Collector) RecordValidation(schema types.Schema, errs *mechErrors.ErrorList, duration time.Duration) {
	if !c.enabled {
		return
	}
	c.validation.RecordValidation(schemaLabel(schema), !errs.HasErrors(), duration)
	if errs == nil {
		return
	}
	for _, err := range errs.Errors {
		c.validation.RecordError(string(err.Kind))
	}
}

// RecordMechanism counts the reactions of a parsed mechanism by type.
func (c *Collector) RecordMechanism(m *types.Mechanism) {
	if !c.enabled || m == nil {
		return
	}
	for reactionType, n := range m.Reactions.CountByType() {
		c.validation.RecordReactions(reactionType, n)
	}
}

// RecordCacheHit records a parse result served from the cache.
func (c *Collector) RecordCacheHit() {
	if !c.enabled {
		return
	}
	c.cache.RecordHit()
}

// RecordCacheMiss records a parse that had to read the configuration.
func (c *Collector) RecordCacheMiss() {
	if !c.enabled {
		return
	}
	c.cache.RecordMiss()
}

// UpdateCacheEntries sets the current number of cached results.
func (c *Collector) UpdateCacheEntries(n int) {
	if !c.enabled {
		return
	}
	c.cache.SetEntries(n)
}

// RecordPruned records history runs deleted by the pruner.
func (c *Collector) RecordPruned(n int64) {
	if !c.enabled || n <= 0 {
		return
	}
	c.history.RecordPruned(n)
}

func schemaLabel(s types.Schema) string {
	if s == types.SchemaUnknown {
		return "unknown"
	}
	return string(s)
}
