// Package tracing sets up OpenTelemetry tracing for the mechcfg tool.
//
// Spans are exported over OTLP/gRPC or written to a stream by the stdout
// exporter. The universal parser opens a "mechanism.parse" span with a child
// per validation stage ("mechanism.stage.species", ...) and the runner wraps
// each run in "mechanism.run".
//
//	tracer, err := tracing.New(&cfg.Tracing, tracing.WithVersion(version))
//	if err != nil {
//		return err
//	}
//	defer tracer.Shutdown(context.Background())
//
//	p := parser.New().WithTracer(tracer.Tracer())
//
// A run started by a traced CI job joins its trace through the TRACEPARENT
// environment variable (see ExtractFromEnv).
package tracing
