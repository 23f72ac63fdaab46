// Package runner ties the pieces of a validation run together: it resolves
// a source, parses the configuration (through a go-cache result cache for
// local files), and reports the outcome to the logger, the Prometheus
// collector, the tracer and, optionally, the history store.
package runner
