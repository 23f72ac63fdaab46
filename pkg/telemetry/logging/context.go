package logging

import (
	"context"
)

type contextKey string

const (
	// RunIDKey is the context key for the validation run ID.
	RunIDKey contextKey = "run_id"

	// SourceKey is the context key for the configuration being validated.
	SourceKey contextKey = "source"

	// SchemaKey is the context key for the detected schema line.
	SchemaKey contextKey = "schema"
)

// WithRunID adds a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// GetRunID retrieves the run ID from the context.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}

// WithSource adds the configuration path or URL to the context.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, SourceKey, source)
}

// GetSource retrieves the configuration source from the context.
func GetSource(ctx context.Context) string {
	if source, ok := ctx.Value(SourceKey).(string); ok {
		return source
	}
	return ""
}

// WithSchema adds the schema line to the context.
func WithSchema(ctx context.Context, schema string) context.Context {
	return context.WithValue(ctx, SchemaKey, schema)
}

// GetSchema retrieves the schema line from the context.
func GetSchema(ctx context.Context) string {
	if schema, ok := ctx.Value(SchemaKey).(string); ok {
		return schema
	}
	return ""
}

// extractContextFields returns the run fields set on ctx as key-value pairs
// in a fixed order.
func extractContextFields(ctx context.Context) []any {
	var fields []any

	if runID := GetRunID(ctx); runID != "" {
		fields = append(fields, string(RunIDKey), runID)
	}
	if source := GetSource(ctx); source != "" {
		fields = append(fields, string(SourceKey), source)
	}
	if schema := GetSchema(ctx); schema != "" {
		fields = append(fields, string(SchemaKey), schema)
	}

	return fields
}
