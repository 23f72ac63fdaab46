package tracing

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/propagation"
)

// Environment variables carrying a W3C trace context into the process, as
// set by CI systems that trace their pipelines.
const (
	EnvTraceParent = "TRACEPARENT"
	EnvTraceState  = "TRACESTATE"
)

// Propagator returns the W3C trace context and baggage propagator.
func Propagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

// ExtractFromEnv returns ctx with the remote span context found in
// TRACEPARENT and TRACESTATE, so that a run joins the caller's trace. ctx is
// returned unchanged when the variables are absent or malformed.
func ExtractFromEnv(ctx context.Context) context.Context {
	carrier := propagation.MapCarrier{}
	if v := os.Getenv(EnvTraceParent); v != "" {
		carrier["traceparent"] = v
	}
	if v := os.Getenv(EnvTraceState); v != "" {
		carrier["tracestate"] = v
	}
	if len(carrier) == 0 {
		return ctx
	}
	return Propagator().Extract(ctx, carrier)
}

// InjectToMap writes the span context of ctx into carrier.
func InjectToMap(ctx context.Context, carrier map[string]string) {
	Propagator().Inject(ctx, propagation.MapCarrier(carrier))
}
