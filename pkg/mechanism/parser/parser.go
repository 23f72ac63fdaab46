package parser

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"open-atmos/mechanism-configuration/pkg/mechanism/assembler"
	"open-atmos/mechanism-configuration/pkg/mechanism/development"
	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
	v0 "open-atmos/mechanism-configuration/pkg/mechanism/v0"
	v1 "open-atmos/mechanism-configuration/pkg/mechanism/v1"
)

// Result is the outcome of parsing one configuration, whatever its schema.
type Result = assembler.Result

// DefaultMaxFileSize is the largest document Parse reads (10MB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// Parser routes configurations to the assembler for their schema line.
type Parser struct {
	maxFileSize int64
	logger      *slog.Logger
	tracer      trace.Tracer

	v1  *assembler.Assembler
	dev *assembler.Assembler
}

// New creates a parser with default configuration.
func New() *Parser {
	return &Parser{
		maxFileSize: DefaultMaxFileSize,
		logger:      slog.Default(),
		tracer:      noop.NewTracerProvider().Tracer(""),
		v1:          v1.New(),
		dev:         development.New(),
	}
}

// WithMaxFileSize sets the maximum document size in bytes.
func (p *Parser) WithMaxFileSize(size int64) *Parser {
	p.maxFileSize = size
	return p
}

// WithLogger sets the logger used for routing decisions and by the legacy
// parser.
func (p *Parser) WithLogger(logger *slog.Logger) *Parser {
	if logger != nil {
		p.logger = logger
	}
	return p
}

// WithTracer sets the tracer. Each parse gets a span and each validation
// stage a child span.
func (p *Parser) WithTracer(tracer trace.Tracer) *Parser {
	if tracer != nil {
		p.tracer = tracer
	}
	return p
}

// Parse reads the configuration at path. See ParseContext.
func (p *Parser) Parse(path string) Result {
	return p.ParseContext(context.Background(), path)
}

// ParseContext reads the configuration at path and routes it:
//   - a directory is a legacy v0 configuration;
//   - a file with a version field goes to the assembler for its major;
//   - a file without one is v0 when it lists camp files.
//
// When none of these apply every schema line is tried in turn and the
// errors of all attempts are returned together.
func (p *Parser) ParseContext(ctx context.Context, path string) Result {
	ctx, span := p.tracer.Start(ctx, "mechanism.parse",
		trace.WithAttributes(attribute.String("mechanism.source", path)))
	defer span.End()

	res := p.parse(ctx, path)

	span.SetAttributes(
		attribute.String("mechanism.schema", string(res.Schema)),
		attribute.Int("mechanism.error_count", res.Errors.Count()),
	)
	if !res.OK() {
		span.SetStatus(codes.Error, "invalid configuration")
	}
	return res
}

func (p *Parser) parse(ctx context.Context, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		return assembler.Failed(types.SchemaUnknown, assembler.FileNotFound(path))
	}
	if info.IsDir() {
		return p.legacy(path)
	}
	if info.Size() > p.maxFileSize {
		return assembler.Failed(types.SchemaUnknown, mechErrors.New(mechErrors.KindInvalidFilePath,
			fmt.Sprintf("File size %d exceeds maximum %d bytes.", info.Size(), p.maxFileSize),
			types.Location{File: path}))
	}

	root, err := document.LoadFile(path)
	if err != nil {
		return assembler.Failed(types.SchemaUnknown, assembler.LoadError(path, err))
	}

	schemaLine, ok := Detect(root)
	if !ok && v0.IsConfig(root) {
		schemaLine, ok = types.SchemaV0, true
	}
	p.logger.Debug("routing configuration", "path", path, "schema", schemaLine, "detected", ok)

	if !ok {
		return p.fallback(ctx, root, path)
	}
	switch schemaLine {
	case types.SchemaV0:
		return p.legacy(path)
	case types.SchemaUnknown:
		return p.unsupported(root, path)
	}

	res := p.assemblerFor(ctx, schemaLine).ParseNode(root)
	res.Errors.SetFile(path)
	return res
}

// ParseBytes parses an in-memory document. Legacy configurations refer to
// other files and cannot be read this way.
func (p *Parser) ParseBytes(ctx context.Context, data []byte, source string) Result {
	if int64(len(data)) > p.maxFileSize {
		return assembler.Failed(types.SchemaUnknown, mechErrors.New(mechErrors.KindInvalidFilePath,
			fmt.Sprintf("Data size %d exceeds maximum %d bytes.", len(data), p.maxFileSize),
			types.Location{File: source}))
	}
	root, err := document.LoadBytes(data, source)
	if err != nil {
		return assembler.Failed(types.SchemaUnknown, assembler.LoadError(source, err))
	}

	var res Result
	switch schemaLine, ok := Detect(root); {
	case !ok:
		res = p.fallback(ctx, root, "")
	case schemaLine == types.SchemaUnknown:
		res = p.unsupported(root, source)
	default:
		res = p.assemblerFor(ctx, schemaLine).ParseNode(root)
	}
	if source != "" {
		res.Errors.SetFile(source)
	}
	return res
}

// Detect reads the schema line from the document's version field. It
// returns false when the field is absent or not a version; a well-formed
// version with an unsupported major yields SchemaUnknown and true.
func Detect(root document.Node) (types.Schema, bool) {
	raw, err := root.Get(schema.KeyVersion).String()
	if err != nil {
		return types.SchemaUnknown, false
	}
	v, err := types.ParseVersion(raw)
	if err != nil {
		return types.SchemaUnknown, false
	}
	schemaLine, _ := types.SchemaForMajor(v.Major)
	return schemaLine, true
}

func (p *Parser) unsupported(root document.Node, path string) Result {
	node := root.Get(schema.KeyVersion)
	return assembler.Failed(types.SchemaUnknown, mechErrors.New(mechErrors.KindInvalidVersion,
		fmt.Sprintf("Invalid version '%s': expected major version %d or %d.", node.Str(), v1.Major, development.Major),
		node.Location().WithFile(path)))
}

func (p *Parser) legacy(path string) Result {
	return v0.New(p.logger).Parse(path)
}

// fallback tries v1, then development, then v0 when path names a file.
func (p *Parser) fallback(ctx context.Context, root document.Node, path string) Result {
	all := mechErrors.NewErrorList()
	for _, schemaLine := range []types.Schema{types.SchemaV1, types.SchemaDevelopment} {
		res := p.assemblerFor(ctx, schemaLine).ParseNode(root)
		if res.OK() {
			return res
		}
		all.Merge(res.Errors)
	}
	if path != "" {
		res := p.legacy(path)
		if res.OK() {
			return res
		}
		all.Merge(res.Errors)
	}
	all.SetFile(path)
	return assembler.Failed(types.SchemaUnknown, all)
}

func (p *Parser) assemblerFor(ctx context.Context, schemaLine types.Schema) *assembler.Assembler {
	a := p.v1
	if schemaLine == types.SchemaDevelopment {
		a = p.dev
	}
	return a.WithStageHook(p.stageHook(ctx, schemaLine))
}

func (p *Parser) stageHook(ctx context.Context, schemaLine types.Schema) assembler.StageHook {
	return func(stage string) func(*mechErrors.ErrorList) {
		_, span := p.tracer.Start(ctx, "mechanism.stage."+stage,
			trace.WithAttributes(attribute.String("mechanism.schema", string(schemaLine))))
		return func(errs *mechErrors.ErrorList) {
			span.SetAttributes(attribute.Int("mechanism.error_count", errs.Count()))
			span.End()
		}
	}
}
