package tracing

import (
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	// SamplerAlways samples all traces.
	SamplerAlways = "always"

	// SamplerNever samples no traces.
	SamplerNever = "never"

	// SamplerRatio samples a fraction of root traces by trace ID.
	SamplerRatio = "ratio"

	// SamplerParent follows the sampling decision of a propagated parent
	// (TRACEPARENT from the environment) and samples roots by ratio.
	SamplerParent = "parent"
)

// createSampler maps a sampler name from the configuration to an SDK
// sampler. Only "parent" defers to a remote parent; a CLI run is usually
// the root of its trace.
func createSampler(strategy string, ratio float64) (sdktrace.Sampler, error) {
	switch strategy {
	case SamplerAlways:
		return sdktrace.AlwaysSample(), nil
	case SamplerNever:
		return sdktrace.NeverSample(), nil
	case SamplerRatio, SamplerParent:
		if ratio < 0.0 || ratio > 1.0 {
			return nil, fmt.Errorf("sample ratio must be between 0.0 and 1.0, got %f", ratio)
		}
		if strategy == SamplerParent {
			return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio)), nil
		}
		return sdktrace.TraceIDRatioBased(ratio), nil
	default:
		return nil, fmt.Errorf("unknown sampler strategy: %s (valid: always, never, ratio, parent)", strategy)
	}
}
