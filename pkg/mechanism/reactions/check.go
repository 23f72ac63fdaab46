package reactions

import (
	"fmt"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// checker carries the state of one reaction validation.
type checker struct {
	d       Dialect
	obj     document.Node
	tag     string
	owner   schema.Owner
	species []string
	phases  []types.Phase
	errs    *mechErrors.ErrorList
}

func newChecker(d Dialect, tag string, obj document.Node, species []types.Species, phases []types.Phase) *checker {
	return &checker{
		d:       d,
		obj:     obj,
		tag:     tag,
		owner:   schema.ReactionOwner(tag),
		species: types.SpeciesNames(species),
		phases:  phases,
		errs:    mechErrors.NewErrorList(),
	}
}

// schemaOK runs the key-shape gate and reports whether it passed.
func (c *checker) schemaOK(required, optional []string) bool {
	errs := schema.Validate(c.obj, required, optional)
	c.errs.Merge(errs)
	return !errs.HasErrors()
}

// components validates the shape of each entry under key and returns the
// named ones.
func (c *checker) components(key string) []schema.NamedNode {
	return c.componentsIn(c.obj, key)
}

func (c *checker) componentsIn(obj document.Node, key string) []schema.NamedNode {
	var refs []schema.NamedNode
	for _, item := range obj.Get(key).Items() {
		shape := schema.Validate(item, []string{c.d.ComponentKey}, []string{schema.KeyCoefficient})
		c.errs.Merge(shape)
		if shape.HasErrors() {
			continue
		}
		checkNumber(item, schema.KeyCoefficient, c.errs, c.owner.String())
		name, err := item.Get(c.d.ComponentKey).String()
		if err != nil {
			c.errs.AddError(mechErrors.KindInvalidType,
				fmt.Sprintf("Expected '%s' to be a species name in %s.", c.d.ComponentKey, c.owner),
				item.Get(c.d.ComponentKey).Location())
			continue
		}
		refs = append(refs, schema.NamedNode{Name: name, Node: item})
	}
	return refs
}

// numbers reports present keys whose value is not numeric.
func (c *checker) numbers(keys ...string) {
	for _, key := range keys {
		checkNumber(c.obj, key, c.errs, c.owner.String())
	}
}

// numberList reports non-numeric entries of the list under key.
func (c *checker) numberList(key string) {
	for _, item := range c.obj.Get(key).Items() {
		if _, err := item.Float(); err != nil {
			c.errs.AddError(mechErrors.KindInvalidType,
				fmt.Sprintf("Expected '%s' entries to be numbers in %s.", key, c.owner),
				item.Location())
		}
	}
}

// eaConflict reports both 'Ea' and 'C' being set.
func (c *checker) eaConflict() bool {
	if !c.obj.Has(schema.KeyEa) || !c.obj.Has(schema.KeyC) {
		return false
	}
	c.errs.AddError(mechErrors.KindMutuallyExclusiveOption,
		fmt.Sprintf("Mutually exclusive option 'Ea' and 'C' found in '%s' reaction.", c.tag),
		c.obj.Get(schema.KeyEa).Location())
	return true
}

// single reports a component list that holds more than one entry. The
// location is that of the list itself.
func (c *checker) single(obj document.Node, key, noun string) {
	n := len(obj.Get(key).Items())
	if n <= 1 {
		return
	}
	c.errs.AddError(mechErrors.KindTooManyReactionComponents,
		fmt.Sprintf("'%s' reaction requires one %s, but %d were provided.", c.tag, noun, n),
		obj.Get(key).Location())
}

// unknownSpecies reports every reference to a species that is not declared.
func (c *checker) unknownSpecies(refs ...[]schema.NamedNode) {
	for _, group := range refs {
		schema.ReportUnknownSpecies(c.errs, mechErrors.KindReactionRequiresUnknownSpecies, c.owner,
			schema.FindUnknown(c.species, group))
	}
}

// phase resolves obj[key] against the declared phases.
func (c *checker) phase(obj document.Node, key string) (*types.Phase, bool) {
	return schema.CheckPhaseExists(obj, key, c.phases, c.errs, c.owner)
}

// members reports references that are not members of phase.
func (c *checker) members(phase *types.Phase, refs ...[]schema.NamedNode) {
	for _, group := range refs {
		schema.CheckSpeciesInPhase(phase, group, c.errs)
	}
}

// scalarRef reads a single species name stored directly under key.
func (c *checker) scalarRef(key string) []schema.NamedNode {
	node := c.obj.Get(key)
	name, err := node.String()
	if err != nil {
		c.errs.AddError(mechErrors.KindInvalidType,
			fmt.Sprintf("Expected '%s' to be a species name in %s.", key, c.owner),
			node.Location())
		return nil
	}
	return []schema.NamedNode{{Name: name, Node: node}}
}

func concat(groups ...[]schema.NamedNode) []schema.NamedNode {
	var out []schema.NamedNode
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
