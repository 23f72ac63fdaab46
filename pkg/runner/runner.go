package runner

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"open-atmos/mechanism-configuration/pkg/config"
	"open-atmos/mechanism-configuration/pkg/history"
	"open-atmos/mechanism-configuration/pkg/mechanism/parser"
	"open-atmos/mechanism-configuration/pkg/source"
	"open-atmos/mechanism-configuration/pkg/telemetry/logging"
	"open-atmos/mechanism-configuration/pkg/telemetry/metrics"
	"open-atmos/mechanism-configuration/pkg/telemetry/tracing"
)

// Options wire a Runner to its collaborators. Nil fields are replaced by
// quiet defaults.
type Options struct {
	// Config supplies parser limits and cache settings.
	Config *config.Config

	Logger  *logging.Logger
	Metrics *metrics.Collector
	Tracer  trace.Tracer

	// Store, when set, receives a history record for every run.
	Store history.Store
}

// Report is the outcome of one run.
type Report struct {
	Run    *history.Run
	Result parser.Result

	// Path is the local path that was parsed. For a git source it no
	// longer exists once Run returns.
	Path string

	Cached bool
}

// Runner validates configurations from sources. It feeds each result to
// the logs, metrics, traces and history.
type Runner struct {
	parser  *parser.Parser
	cache   *ResultCache
	logger  *logging.Logger
	metrics *metrics.Collector
	tracer  trace.Tracer
	store   history.Store
}

// New creates a runner.
func New(opts Options) *Runner {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	collector := opts.Metrics
	if collector == nil {
		collector = metrics.NewCollector(&config.MetricsConfig{Enabled: false}, nil)
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}

	r := &Runner{
		parser: parser.New().
			WithMaxFileSize(cfg.Parser.MaxFileSize).
			WithLogger(logger.Slog()).
			WithTracer(tracer),
		logger:  logger,
		metrics: collector,
		tracer:  tracer,
		store:   opts.Store,
	}
	if cfg.Cache.Enabled {
		r.cache = NewResultCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}
	return r
}

// Cache returns the result cache, or nil when caching is disabled.
func (r *Runner) Cache() *ResultCache {
	return r.cache
}

// Run resolves src and validates the configuration it points at. Problems
// with the configuration are reported in the Result; an error means the
// source itself could not be resolved.
func (r *Runner) Run(ctx context.Context, src source.Source) (*Report, error) {
	run := history.NewRun(src.String())

	ctx, span := r.tracer.Start(ctx, "mechanism.run")
	defer span.End()
	tracing.SetRunAttributes(span, run.ID, run.Source)

	ctx = logging.WithRunID(ctx, run.ID)
	ctx = logging.WithSource(ctx, run.Source)

	path, cleanup, err := src.Resolve(ctx)
	if err != nil {
		tracing.SetStatus(span, err)
		r.logger.ErrorContext(ctx, "failed to resolve source", "error", err)
		return nil, err
	}
	defer cleanup()

	start := time.Now()
	res, cached := r.parse(ctx, src, path)
	duration := time.Since(start)
	tracing.SetCacheAttribute(span, cached)

	run.Finish(res.Schema, res.Errors, duration)
	ctx = logging.WithSchema(ctx, string(res.Schema))

	r.metrics.RecordValidation(res.Schema, res.Errors, duration)
	if !cached {
		r.metrics.RecordMechanism(res.Mechanism)
	}
	tracing.SetResultAttributes(span, res.Schema, run.ErrorCount, res.Mechanism, duration)
	if !run.Valid {
		tracing.SetStatus(span, res.Errors.ToError())
	}

	if res.OK() {
		r.logger.InfoContext(ctx, "configuration valid",
			"reactions", res.Mechanism.Reactions.Count(),
			"species", len(res.Mechanism.Species),
			"duration", duration,
			"cached", cached,
		)
	} else {
		r.logger.WarnContext(ctx, "configuration invalid",
			"errors", run.ErrorCount,
			"kinds", res.Errors.Kinds(),
			"duration", duration,
			"cached", cached,
		)
	}

	if r.store != nil {
		if err := r.store.Record(ctx, run); err != nil {
			r.logger.ErrorContext(ctx, "failed to record run", "error", err)
		}
	}

	return &Report{Run: run, Result: res, Path: path, Cached: cached}, nil
}

// RunPath validates a local file or v0 directory.
func (r *Runner) RunPath(ctx context.Context, path string) (*Report, error) {
	return r.Run(ctx, source.NewFileSource(path))
}

// RunAll validates each path in order and stops early only when ctx is
// cancelled.
func (r *Runner) RunAll(ctx context.Context, paths []string) ([]*Report, error) {
	reports := make([]*Report, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		report, err := r.RunPath(ctx, path)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// parse consults the cache for local sources. Clones of git sources live
// in fresh temporary directories, so caching them would never hit.
func (r *Runner) parse(ctx context.Context, src source.Source, path string) (parser.Result, bool) {
	_, local := src.(*source.FileSource)
	if r.cache == nil || !local {
		return r.parser.ParseContext(ctx, path), false
	}

	key, err := Fingerprint(path)
	if err != nil {
		// Let the parser report the missing file.
		return r.parser.ParseContext(ctx, path), false
	}

	if res, ok := r.cache.Get(key); ok {
		r.metrics.RecordCacheHit()
		r.logger.DebugContext(ctx, "parse result served from cache")
		return res, true
	}

	r.metrics.RecordCacheMiss()
	res := r.parser.ParseContext(ctx, path)
	r.cache.Set(key, res)
	r.metrics.UpdateCacheEntries(r.cache.Len())
	return res, false
}

// Slog returns the runner's logger for packages that take *slog.Logger.
func (r *Runner) Slog() *slog.Logger {
	return r.logger.Slog()
}
