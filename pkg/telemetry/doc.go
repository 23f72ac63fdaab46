// Package telemetry groups the observability packages of the mechcfg tool:
//
//   - logging: structured slog logging with credential redaction
//   - metrics: Prometheus collectors for validation runs, the cache and the history
//   - tracing: OpenTelemetry spans over the parser stages
//
// The root package holds no code of its own.
package telemetry
