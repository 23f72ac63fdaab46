package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/trace"
)

const traceParent = "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01"

func TestExtractFromEnv(t *testing.T) {
	t.Setenv(EnvTraceParent, traceParent)
	t.Setenv(EnvTraceState, "vendor=value")

	ctx := ExtractFromEnv(context.Background())
	sc := trace.SpanContextFromContext(ctx)

	assert.True(t, sc.IsValid())
	assert.True(t, sc.IsRemote())
	assert.True(t, sc.IsSampled())
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", sc.TraceID().String())
	assert.Equal(t, "00f067aa0ba902b7", sc.SpanID().String())
	assert.Equal(t, "value", sc.TraceState().Get("vendor"))
}

func TestExtractFromEnv_Absent(t *testing.T) {
	t.Setenv(EnvTraceParent, "")
	ctx := context.Background()
	assert.Equal(t, ctx, ExtractFromEnv(ctx))
}

func TestExtractFromEnv_Malformed(t *testing.T) {
	t.Setenv(EnvTraceParent, "not-a-traceparent")
	sc := trace.SpanContextFromContext(ExtractFromEnv(context.Background()))
	assert.False(t, sc.IsValid())
}

func TestInjectToMap_RoundTrip(t *testing.T) {
	t.Setenv(EnvTraceParent, traceParent)
	ctx := ExtractFromEnv(context.Background())

	carrier := map[string]string{}
	InjectToMap(ctx, carrier)
	assert.Equal(t, traceParent, carrier["traceparent"])
}
