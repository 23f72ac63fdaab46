package tracing

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Attribute keys shared by the parser spans and the run span.
const (
	AttrSource     = "mechanism.source"
	AttrSchema     = "mechanism.schema"
	AttrErrorCount = "mechanism.error_count"
	AttrRunID      = "mechanism.run_id"
	AttrCacheHit   = "mechanism.cache_hit"
	AttrReactions  = "mechanism.reactions"
	AttrSpecies    = "mechanism.species"
	AttrDurationMs = "mechanism.duration_ms"
)

// SetRunAttributes records the identity of a validation run on span.
func SetRunAttributes(span trace.Span, runID, source string) {
	span.SetAttributes(
		attribute.String(AttrRunID, runID),
		attribute.String(AttrSource, source),
	)
}

// SetResultAttributes records the outcome of a run on span. m may be nil
// when the configuration did not parse.
func SetResultAttributes(span trace.Span, schema types.Schema, errorCount int, m *types.Mechanism, d time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String(AttrSchema, string(schema)),
		attribute.Int(AttrErrorCount, errorCount),
		attribute.Int64(AttrDurationMs, d.Milliseconds()),
	}
	if m != nil {
		attrs = append(attrs,
			attribute.Int(AttrReactions, m.Reactions.Count()),
			attribute.Int(AttrSpecies, len(m.Species)),
		)
	}
	span.SetAttributes(attrs...)
}

// SetCacheAttribute records whether the result came from the cache.
func SetCacheAttribute(span trace.Span, hit bool) {
	span.SetAttributes(attribute.Bool(AttrCacheHit, hit))
}
