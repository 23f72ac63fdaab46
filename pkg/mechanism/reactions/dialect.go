package reactions

import (
	"fmt"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Dialect captures the key-level differences between schema lines that
// otherwise share one reaction table.
type Dialect struct {
	Schema types.Schema

	// ComponentKey names the species inside a reaction component.
	ComponentKey string

	// ScalarPhaseSpecies is set when phase species lists hold plain names
	// rather than {name, diffusion coefficient} objects.
	ScalarPhaseSpecies bool
}

var (
	// V1 is the dialect of version 1.x documents.
	V1 = Dialect{
		Schema:             types.SchemaV1,
		ComponentKey:       schema.KeySpeciesName,
		ScalarPhaseSpecies: true,
	}

	// Development is the dialect of version 2.x documents.
	Development = Dialect{
		Schema:       types.SchemaDevelopment,
		ComponentKey: schema.KeyName,
	}
)

// ValidatePhaseSpecies checks the shape of every entry of a phase species
// list and returns the named entries. Entries without a usable name are
// reported and left out.
func (d Dialect) ValidatePhaseSpecies(list document.Node, errs *mechErrors.ErrorList) []schema.NamedNode {
	var refs []schema.NamedNode
	for _, item := range list.Items() {
		if d.ScalarPhaseSpecies {
			name, err := item.String()
			if err != nil {
				errs.AddError(mechErrors.KindInvalidType,
					"Expected a species name, but found a different type.",
					item.Location())
				continue
			}
			refs = append(refs, schema.NamedNode{Name: name, Node: item})
			continue
		}

		shape := schema.Validate(item, []string{schema.KeyName}, []string{schema.KeyDiffusionCoefficient})
		errs.Merge(shape)
		if shape.HasErrors() {
			continue
		}
		checkNumber(item, schema.KeyDiffusionCoefficient, errs, fmt.Sprintf("'%s' species", item.Get(schema.KeyName).Str()))
		name, err := item.Get(schema.KeyName).String()
		if err != nil {
			continue
		}
		refs = append(refs, schema.NamedNode{Name: name, Node: item})
	}
	return refs
}

// ParsePhaseSpecies reads one phase species entry.
func (d Dialect) ParsePhaseSpecies(item document.Node) types.PhaseSpecies {
	if d.ScalarPhaseSpecies {
		return types.PhaseSpecies{Name: item.Str()}
	}
	ps := types.PhaseSpecies{
		Name:              item.Get(schema.KeyName).Str(),
		UnknownProperties: schema.Comments(item),
	}
	if v, err := item.Get(schema.KeyDiffusionCoefficient).Float(); err == nil {
		ps.DiffusionCoefficient = &v
	}
	return ps
}

// ParsePhaseSpeciesList reads every entry of a phase species list.
func (d Dialect) ParsePhaseSpeciesList(list document.Node) []types.PhaseSpecies {
	items := list.Items()
	out := make([]types.PhaseSpecies, 0, len(items))
	for _, item := range items {
		out = append(out, d.ParsePhaseSpecies(item))
	}
	return out
}

// ParseComponent reads one reaction component, defaulting the coefficient to 1.
func (d Dialect) ParseComponent(item document.Node) types.ReactionComponent {
	return types.ReactionComponent{
		Name:              item.Get(d.ComponentKey).Str(),
		Coefficient:       item.Get(schema.KeyCoefficient).MustFloat(1.0),
		UnknownProperties: schema.Comments(item),
	}
}

// ParseComponents reads every component of list.
func (d Dialect) ParseComponents(list document.Node) []types.ReactionComponent {
	items := list.Items()
	out := make([]types.ReactionComponent, 0, len(items))
	for _, item := range items {
		out = append(out, d.ParseComponent(item))
	}
	return out
}

// ParseFirstComponent reads the first component of a single-entry list.
func (d Dialect) ParseFirstComponent(list document.Node) types.ReactionComponent {
	items := list.Items()
	if len(items) == 0 {
		return types.ReactionComponent{Coefficient: 1.0}
	}
	return d.ParseComponent(items[0])
}

func checkNumber(obj document.Node, key string, errs *mechErrors.ErrorList, owner string) {
	node := obj.Get(key)
	if node.IsNull() {
		return
	}
	if _, err := node.Float(); err != nil {
		errs.AddError(mechErrors.KindInvalidType,
			fmt.Sprintf("Expected '%s' to be a number in %s.", key, owner),
			node.Location())
	}
}
