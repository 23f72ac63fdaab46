package reactions

import (
	"fmt"
	"sort"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// kind describes one reaction type: its key sets, the checks that run once
// the key shape is valid, and the field extraction.
type kind struct {
	required []string
	optional []string
	validate func(c *checker)
	parse    func(d Dialect, obj document.Node) types.Reaction
}

// Entry is the validate/parse pair registered for one type tag.
type Entry struct {
	Tag     string
	dialect Dialect
	k       kind
}

// Validate checks obj against the reaction type. The key-shape check gates
// everything else; the remaining checks are independent and all run.
func (e Entry) Validate(obj document.Node, species []types.Species, phases []types.Phase) *mechErrors.ErrorList {
	c := newChecker(e.dialect, e.Tag, obj, species, phases)
	if !c.schemaOK(e.k.required, e.k.optional) {
		return c.errs
	}
	e.k.validate(c)
	return c.errs
}

// Parse extracts the typed reaction, applying defaults for absent
// parameters. obj must already have passed Validate.
func (e Entry) Parse(obj document.Node) types.Reaction {
	return e.k.parse(e.dialect, obj)
}

// RequiredKeys returns the keys every reaction of this type must carry.
func (e Entry) RequiredKeys() []string {
	return append([]string(nil), e.k.required...)
}

// OptionalKeys returns the keys a reaction of this type may carry.
func (e Entry) OptionalKeys() []string {
	return append([]string(nil), e.k.optional...)
}

// Table maps type tags to entries for one dialect. It is built once and
// never modified.
type Table struct {
	dialect Dialect
	entries map[string]Entry
}

// NewTable builds the reaction table for a dialect.
func NewTable(d Dialect) *Table {
	kinds := map[string]kind{
		types.TypeArrhenius:                 arrheniusKind,
		types.TypeBranched:                  branchedKind,
		types.TypeCondensedPhaseArrhenius:   condensedPhaseArrheniusKind,
		types.TypeCondensedPhasePhotolysis:  condensedPhasePhotolysisKind,
		types.TypeEmission:                  emissionKind,
		types.TypeFirstOrderLoss:            firstOrderLossKind,
		types.TypeSimpolPhaseTransfer:       simpolPhaseTransferKind,
		types.TypeAqueousEquilibrium:        aqueousEquilibriumKind,
		types.TypeWetDeposition:             wetDepositionKind,
		types.TypeHenrysLaw:                 henrysLawKind,
		types.TypePhotolysis:                photolysisKind,
		types.TypeSurface:                   surfaceKind,
		types.TypeTaylorSeries:              taylorSeriesKind,
		types.TypeTroe:                      troeKind,
		types.TypeTernaryChemicalActivation: ternaryChemicalActivationKind,
		types.TypeTunneling:                 tunnelingKind,
		types.TypeUserDefined:               userDefinedKind,
	}

	t := &Table{dialect: d, entries: make(map[string]Entry, len(kinds))}
	for tag, k := range kinds {
		t.entries[tag] = Entry{Tag: tag, dialect: d, k: k}
	}
	return t
}

// Dialect returns the dialect the table was built for.
func (t *Table) Dialect() Dialect {
	return t.dialect
}

// Lookup returns the entry for tag.
func (t *Table) Lookup(tag string) (Entry, bool) {
	e, ok := t.entries[tag]
	return e, ok
}

// Tags returns every registered tag, sorted.
func (t *Table) Tags() []string {
	tags := make([]string, 0, len(t.entries))
	for tag := range t.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// dispatch resolves the entry for one reaction object, reporting a missing
// or unknown type tag.
func (t *Table) dispatch(obj document.Node, errs *mechErrors.ErrorList) (Entry, bool) {
	if !obj.Has(schema.KeyType) {
		errs.AddError(mechErrors.KindRequiredKeyNotFound, "Missing 'type' object in reaction.", obj.Location())
		return Entry{}, false
	}
	typeNode := obj.Get(schema.KeyType)
	tag := typeNode.Str()
	e, ok := t.Lookup(tag)
	if !ok {
		errs.AddErrorWithSuggestion(mechErrors.KindUnknownType,
			fmt.Sprintf("Unknown reaction type '%s' found.", tag),
			typeNode.Location(),
			mechErrors.SuggestType(tag, t.Tags()))
		return Entry{}, false
	}
	return e, true
}

// ValidateAll validates every reaction of list. A reaction with a missing
// or unknown type is reported and skipped; its siblings are still checked.
func (t *Table) ValidateAll(list document.Node, species []types.Species, phases []types.Phase) *mechErrors.ErrorList {
	errs := mechErrors.NewErrorList()
	for _, obj := range list.Items() {
		e, ok := t.dispatch(obj, errs)
		if !ok {
			continue
		}
		errs.Merge(e.Validate(obj, species, phases))
	}
	return errs
}

// ParseAll parses every reaction of list into the aggregate, in document
// order within each kind. Reactions with an unknown type are skipped.
func (t *Table) ParseAll(list document.Node) types.Reactions {
	var rs types.Reactions
	for _, obj := range list.Items() {
		e, ok := t.Lookup(obj.Get(schema.KeyType).Str())
		if !ok {
			continue
		}
		// Add only fails for values outside the closed kind set.
		_ = rs.Add(e.Parse(obj))
	}
	return rs
}
