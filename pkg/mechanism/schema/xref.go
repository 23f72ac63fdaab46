package schema

import (
	"fmt"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// NamedNode pairs an entity name with the node it was read from.
type NamedNode struct {
	Name string
	Node document.Node
}

// Duplicate is a name declared more than once, with every declaring node.
type Duplicate struct {
	Name  string
	Nodes []document.Node
}

// FindDuplicates groups entries by name. Groups appear in the order of their
// first occurrence and nodes inside a group keep document order.
func FindDuplicates(entries []NamedNode) []Duplicate {
	index := make(map[string]int)
	var groups []Duplicate
	for _, e := range entries {
		i, ok := index[e.Name]
		if !ok {
			i = len(groups)
			index[e.Name] = i
			groups = append(groups, Duplicate{Name: e.Name})
		}
		groups[i].Nodes = append(groups[i].Nodes, e.Node)
	}

	var dups []Duplicate
	for _, g := range groups {
		if len(g.Nodes) > 1 {
			dups = append(dups, g)
		}
	}
	return dups
}

// DuplicateErrors reports one error per occurrence of every duplicate, e.g.
// "Duplicate species name 'A' found (1 of 2).". noun names the entity.
func DuplicateErrors(errs *mechErrors.ErrorList, kind mechErrors.Kind, noun string, dups []Duplicate) {
	for _, d := range dups {
		total := len(d.Nodes)
		for i, n := range d.Nodes {
			errs.AddError(kind,
				fmt.Sprintf("Duplicate %s name '%s' found (%d of %d).", noun, d.Name, i+1, total),
				n.Location())
		}
	}
}

// FindUnknown returns the requests whose name is not in existing, in order.
func FindUnknown(existing []string, requested []NamedNode) []NamedNode {
	known := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		known[name] = struct{}{}
	}
	var unknown []NamedNode
	for _, r := range requested {
		if _, ok := known[r.Name]; !ok {
			unknown = append(unknown, r)
		}
	}
	return unknown
}

// Owner describes the object a cross-reference appears in, for messages
// such as "found in 'ARRHENIUS' reaction".
type Owner struct {
	Type string
	Noun string
}

// ReactionOwner returns the owner for a reaction of the given type tag.
func ReactionOwner(tag string) Owner {
	return Owner{Type: tag, Noun: "reaction"}
}

// ModelOwner returns the owner for a model of the given type tag.
func ModelOwner(tag string) Owner {
	return Owner{Type: tag, Noun: "model"}
}

func (o Owner) String() string {
	return fmt.Sprintf("'%s' %s", o.Type, o.Noun)
}

// ReportUnknownSpecies adds one error of kind for every unknown request.
func ReportUnknownSpecies(errs *mechErrors.ErrorList, kind mechErrors.Kind, owner Owner, unknown []NamedNode) {
	for _, u := range unknown {
		errs.AddError(kind,
			fmt.Sprintf("Unknown species name '%s' found in %s.", u.Name, owner),
			u.Node.Location())
	}
}

// Name reads obj[key] as the name of a noun ("species", "phase"). A value
// that is not a scalar or is empty records an InvalidType error.
func Name(obj document.Node, key, noun string, errs *mechErrors.ErrorList) (string, bool) {
	node := obj.Get(key)
	name, err := node.String()
	if err != nil {
		errs.AddError(mechErrors.KindInvalidType,
			fmt.Sprintf("Expected %s '%s' to be a string.", noun, key),
			node.Location())
		return "", false
	}
	if name == "" {
		errs.AddError(mechErrors.KindInvalidType,
			fmt.Sprintf("Expected %s '%s' to be a non-empty string.", noun, key),
			node.Location())
		return "", false
	}
	return name, true
}

// CheckPhaseExists resolves the phase named by obj[key]. When the phase is
// unknown it records an UnknownPhase error and returns false; callers must
// then skip membership checks against it. An absent key was already reported
// by the schema check and yields false silently; a value that is not a
// scalar is an InvalidType error.
func CheckPhaseExists(obj document.Node, key string, phases []types.Phase, errs *mechErrors.ErrorList, owner Owner) (*types.Phase, bool) {
	if !obj.Has(key) {
		return nil, false
	}
	node := obj.Get(key)
	name, err := node.String()
	if err != nil {
		errs.AddError(mechErrors.KindInvalidType,
			fmt.Sprintf("Expected '%s' to be a phase name in %s.", key, owner),
			node.Location())
		return nil, false
	}

	if phase, ok := types.FindPhase(phases, name); ok {
		return phase, true
	}

	errs.AddErrorWithSuggestion(
		mechErrors.KindUnknownPhase,
		fmt.Sprintf("Unknown phase name '%s' found in %s.", name, owner),
		node.Location(),
		mechErrors.SuggestKey(name, types.PhaseNames(phases)),
	)
	return nil, false
}

// CheckSpeciesInPhase reports every requested species that is not a member
// of phase.
func CheckSpeciesInPhase(phase *types.Phase, requested []NamedNode, errs *mechErrors.ErrorList) {
	if phase == nil {
		return
	}
	for _, r := range requested {
		if phase.HasSpecies(r.Name) {
			continue
		}
		errs.AddError(mechErrors.KindRequestedSpeciesNotRegisteredInPhase,
			fmt.Sprintf("Species '%s' is not registered in '%s' phase.", r.Name, phase.Name),
			r.Node.Location())
	}
}
