package assembler

import (
	"fmt"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/models"
	"open-atmos/mechanism-configuration/pkg/mechanism/reactions"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Stage names reported to a StageHook.
const (
	StageVersion   = "version"
	StageEnvelope  = "envelope"
	StageSpecies   = "species"
	StagePhases    = "phases"
	StageReactions = "reactions"
	StageModels    = "models"
)

var (
	envelopeRequired = []string{schema.KeyVersion, schema.KeySpecies, schema.KeyPhases, schema.KeyReactions}
	envelopeOptional = []string{schema.KeyName, schema.KeyModels}
)

// StageHook is called when a validation stage starts. The returned function
// is called when the stage ends, with the errors accumulated so far.
type StageHook func(stage string) func(errs *mechErrors.ErrorList)

// Config selects the behavior of one schema line.
type Config struct {
	Dialect reactions.Dialect

	// Major is the only version major the assembler accepts.
	Major int

	// SpeciesOptional lists the optional keys of a species entry.
	SpeciesOptional []string

	// StrictPhases ends the run on any phase failure. Otherwise failed
	// phases are reported and hidden from the later stages.
	StrictPhases bool
}

// Assembler validates and parses single-document configurations of one
// schema line.
type Assembler struct {
	cfg       Config
	reactions *reactions.Table
	models    *models.Table
	hook      StageHook
}

// New creates an assembler for cfg.
func New(cfg Config) *Assembler {
	return &Assembler{
		cfg:       cfg,
		reactions: reactions.NewTable(cfg.Dialect),
		models:    models.NewTable(),
	}
}

// WithStageHook returns a copy of the assembler that reports stages to h.
func (a *Assembler) WithStageHook(h StageHook) *Assembler {
	cp := *a
	cp.hook = h
	return &cp
}

// Schema returns the schema line the assembler reads.
func (a *Assembler) Schema() types.Schema {
	return a.cfg.Dialect.Schema
}

// Reactions returns the reaction table in use.
func (a *Assembler) Reactions() *reactions.Table {
	return a.reactions
}

func (a *Assembler) stage(name string) func(*mechErrors.ErrorList) {
	if a.hook == nil {
		return func(*mechErrors.ErrorList) {}
	}
	return a.hook(name)
}

// Validate collects every schema and cross-reference error of root.
func (a *Assembler) Validate(root document.Node) *mechErrors.ErrorList {
	errs := mechErrors.NewErrorList()

	done := a.stage(StageVersion)
	ok := a.validateVersion(root, errs)
	done(errs)
	if !ok {
		return errs
	}

	done = a.stage(StageEnvelope)
	errs.Merge(schema.Validate(root, envelopeRequired, envelopeOptional))
	done(errs)
	if errs.HasErrors() {
		return errs
	}

	done = a.stage(StageSpecies)
	ok = a.validateSpecies(root.Get(schema.KeySpecies), errs)
	done(errs)
	if !ok {
		return errs
	}
	species := a.parseSpecies(root.Get(schema.KeySpecies))

	done = a.stage(StagePhases)
	phases, ok := a.validatePhases(root.Get(schema.KeyPhases), species, errs)
	done(errs)
	if !ok {
		return errs
	}

	done = a.stage(StageReactions)
	errs.Merge(a.reactions.ValidateAll(root.Get(schema.KeyReactions), species, phases))
	done(errs)

	if modelList := root.Get(schema.KeyModels); !modelList.IsNull() {
		done = a.stage(StageModels)
		errs.Merge(a.models.ValidateAll(modelList, phases))
		done(errs)
	}

	return errs
}

func (a *Assembler) validateVersion(root document.Node, errs *mechErrors.ErrorList) bool {
	if root.IsNull() {
		errs.Merge(schema.Validate(root, envelopeRequired, envelopeOptional))
		return false
	}

	node := root.Get(schema.KeyVersion)
	if node.IsNull() {
		errs.AddErrorWithSuggestion(mechErrors.KindMissingVersionField,
			"Missing 'version' field.",
			root.Location(),
			fmt.Sprintf("Add 'version: %d.0.0' to the document", a.cfg.Major))
		return false
	}

	raw := node.Str()
	v, err := types.ParseVersion(raw)
	if err != nil || v.Major != a.cfg.Major {
		errs.AddError(mechErrors.KindInvalidVersion,
			fmt.Sprintf("Invalid version '%s': expected major version %d.", raw, a.cfg.Major),
			node.Location())
		return false
	}
	return true
}

// Parse builds the mechanism from a document that passed Validate.
func (a *Assembler) Parse(root document.Node) *types.Mechanism {
	version, _ := types.ParseVersion(root.Get(schema.KeyVersion).Str())
	return &types.Mechanism{
		Schema:    a.Schema(),
		Name:      root.Get(schema.KeyName).Str(),
		Version:   version,
		Species:   a.parseSpecies(root.Get(schema.KeySpecies)),
		Phases:    a.parsePhases(root.Get(schema.KeyPhases)),
		Reactions: a.reactions.ParseAll(root.Get(schema.KeyReactions)),
		Models:    a.models.ParseAll(root.Get(schema.KeyModels)),
	}
}

// ParseNode validates root and, when it is valid, parses it.
func (a *Assembler) ParseNode(root document.Node) Result {
	errs := a.Validate(root)
	if errs.HasErrors() {
		return Failed(a.Schema(), errs)
	}
	return Result{Mechanism: a.Parse(root), Errors: errs, Schema: a.Schema()}
}

// ParseBytes parses an in-memory document. source is used for positions.
func (a *Assembler) ParseBytes(data []byte, source string) Result {
	root, err := document.LoadBytes(data, source)
	if err != nil {
		return Failed(a.Schema(), LoadError(source, err))
	}
	res := a.ParseNode(root)
	if source != "" {
		res.Errors.SetFile(source)
	}
	return res
}

// ParseFile reads and parses the document at path.
func (a *Assembler) ParseFile(path string) Result {
	root, err := document.LoadFile(path)
	if err != nil {
		return Failed(a.Schema(), LoadError(path, err))
	}
	res := a.ParseNode(root)
	res.Errors.SetFile(path)
	return res
}
