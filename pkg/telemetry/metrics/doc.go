// Package metrics provides the Prometheus metrics of the mechcfg tool.
//
// Metrics:
//
//   - mechcfg_validations_total{schema,result}
//   - mechcfg_validation_errors_total{kind}
//   - mechcfg_validation_duration_seconds{schema}
//   - mechcfg_reactions_parsed_total{type}
//   - mechcfg_cache_hits_total, mechcfg_cache_misses_total, mechcfg_cache_entries
//   - mechcfg_history_records_pruned_total
//
// Usage:
//
//	collector := metrics.NewCollector(&cfg.Metrics, nil)
//	collector.RecordValidation(res.Schema, res.Errors, time.Since(start))
//	http.Handle(cfg.Metrics.Path, collector.Handler())
//
// Each collector owns its registry, so tests can create as many as they
// need without registration conflicts.
package metrics
