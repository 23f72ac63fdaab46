package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ValidationMetrics tracks validation runs.
//
// Metrics:
//   - mechcfg_validations_total: runs by schema and result ("valid", "invalid")
//   - mechcfg_validation_errors_total: reported errors by kind
//   - mechcfg_validation_duration_seconds: run duration by schema
//   - mechcfg_reactions_parsed_total: parsed reactions by type
type ValidationMetrics struct {
	validationsTotal *prometheus.CounterVec
	errorsTotal      *prometheus.CounterVec
	duration         *prometheus.HistogramVec
	reactionsTotal   *prometheus.CounterVec
}

// NewValidationMetrics creates and registers validation metrics with the
// provided registry.
func NewValidationMetrics(registry *prometheus.Registry) *ValidationMetrics {
	vm := &ValidationMetrics{
		validationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "validations_total",
				Help:      "Total number of configuration validations",
			},
			[]string{"schema", "result"},
		),

		errorsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "validation_errors_total",
				Help:      "Total number of validation errors by kind",
			},
			[]string{"kind"},
		),

		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of configuration validations in seconds",
				// Small documents parse in well under a millisecond.
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"schema"},
		),

		reactionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "reactions_parsed_total",
				Help:      "Total number of reactions parsed by type",
			},
			[]string{"type"},
		),
	}

	registry.MustRegister(
		vm.validationsTotal,
		vm.errorsTotal,
		vm.duration,
		vm.reactionsTotal,
	)

	return vm
}

// RecordValidation records the outcome and duration of one run.
func (vm *ValidationMetrics) RecordValidation(schema string, valid bool, duration time.Duration) {
	result := "valid"
	if !valid {
		result = "invalid"
	}
	vm.validationsTotal.WithLabelValues(schema, result).Inc()
	vm.duration.WithLabelValues(schema).Observe(duration.Seconds())
}

// RecordError records one reported error.
func (vm *ValidationMetrics) RecordError(kind string) {
	vm.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordReactions adds n parsed reactions of the given type.
func (vm *ValidationMetrics) RecordReactions(reactionType string, n int) {
	if n <= 0 {
		return
	}
	vm.reactionsTotal.WithLabelValues(reactionType).Add(float64(n))
}
