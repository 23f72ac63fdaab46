package v0

import (
	"fmt"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Object type tags found in camp-data.
const (
	TypeChemSpec          = "CHEM_SPEC"
	TypeRelativeTolerance = "RELATIVE_TOLERANCE"
	TypeMechanism         = "MECHANISM"
)

const keyValue = "value"

var speciesOptional = []string{
	schema.KeyTracerType,
	schema.KeyAbsoluteTolerance,
	schema.KeyDiffusionCoefficient,
	schema.KeyMolecularWeight,
}

// builder collects the objects of every camp file into one mechanism.
type builder struct {
	name              string
	species           []types.Species
	seen              map[string]bool
	relativeTolerance *float64
	reactions         types.Reactions
}

func newBuilder() *builder {
	return &builder{seen: make(map[string]bool)}
}

func (b *builder) mechanism() *types.Mechanism {
	gas := types.Phase{Name: GasPhase, Species: make([]types.PhaseSpecies, 0, len(b.species))}
	for _, s := range b.species {
		gas.Species = append(gas.Species, types.PhaseSpecies{Name: s.Name, DiffusionCoefficient: s.DiffusionCoefficient})
	}
	return &types.Mechanism{
		Schema:            types.SchemaV0,
		Name:              b.name,
		Species:           b.species,
		Phases:            []types.Phase{gas},
		Reactions:         b.reactions,
		RelativeTolerance: b.relativeTolerance,
	}
}

func campData(root document.Node) (document.Node, *mechErrors.Error) {
	data := root.Get(keyCampData)
	if data.IsNull() {
		return data, &mechErrors.Error{
			Kind:       mechErrors.KindRequiredKeyNotFound,
			Message:    fmt.Sprintf("Required key '%s' is missing.", keyCampData),
			Location:   root.Location(),
			Suggestion: mechErrors.SuggestMissingKey(keyCampData),
		}
	}
	if !data.IsSequence() {
		return data, &mechErrors.Error{
			Kind:     mechErrors.KindInvalidType,
			Message:  fmt.Sprintf("Expected '%s' to be a sequence of objects.", keyCampData),
			Location: data.Location(),
		}
	}
	return data, nil
}

func objectType(obj document.Node) (string, *mechErrors.Error) {
	tag, err := obj.Get(schema.KeyType).String()
	if err != nil {
		return "", &mechErrors.Error{
			Kind:     mechErrors.KindObjectTypeNotFound,
			Message:  "Missing 'type' object.",
			Location: obj.Location(),
		}
	}
	switch tag {
	case TypeChemSpec, TypeRelativeTolerance, TypeMechanism:
		return tag, nil
	}
	return "", &mechErrors.Error{
		Kind:       mechErrors.KindObjectTypeNotFound,
		Message:    fmt.Sprintf("Unknown object type '%s' found.", tag),
		Location:   obj.Get(schema.KeyType).Location(),
		Suggestion: mechErrors.SuggestType(tag, []string{TypeChemSpec, TypeRelativeTolerance, TypeMechanism}),
	}
}

func (b *builder) readSpecies(root document.Node) *mechErrors.Error {
	data, err := campData(root)
	if err != nil {
		return err
	}
	for _, obj := range data.Items() {
		tag, err := objectType(obj)
		if err != nil {
			return err
		}
		switch tag {
		case TypeChemSpec:
			err = b.chemSpec(obj)
		case TypeRelativeTolerance:
			err = b.tolerance(obj)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) readMechanisms(root document.Node) *mechErrors.Error {
	data, err := campData(root)
	if err != nil {
		return err
	}
	for _, obj := range data.Items() {
		if obj.Get(schema.KeyType).Str() != TypeMechanism {
			continue
		}
		if err := first(schema.Validate(obj, []string{schema.KeyName, schema.KeyReactions, schema.KeyType}, nil)); err != nil {
			return err
		}
		b.name = obj.Get(schema.KeyName).Str()

		list := obj.Get(schema.KeyReactions)
		if !list.IsSequence() {
			return &mechErrors.Error{
				Kind:     mechErrors.KindInvalidType,
				Message:  fmt.Sprintf("Expected '%s' to be a sequence in '%s' mechanism.", schema.KeyReactions, b.name),
				Location: list.Location(),
			}
		}
		for _, item := range list.Items() {
			if err := b.reaction(item); err != nil {
				return err
			}
		}
	}
	return nil
}

// chemSpec reads one species. Every key other than name and type is also
// kept verbatim among the unknown properties.
func (b *builder) chemSpec(obj document.Node) *mechErrors.Error {
	if err := first(schema.Validate(obj, []string{schema.KeyName, schema.KeyType}, speciesOptional)); err != nil {
		return err
	}
	name, nameErr := obj.Get(schema.KeyName).String()
	if nameErr != nil || name == "" {
		return &mechErrors.Error{
			Kind:     mechErrors.KindInvalidType,
			Message:  "Expected species 'name' to be a non-empty string.",
			Location: obj.Get(schema.KeyName).Location(),
		}
	}
	if b.seen[name] {
		return &mechErrors.Error{
			Kind:     mechErrors.KindDuplicateSpeciesDetected,
			Message:  fmt.Sprintf("Duplicate species name '%s' found.", name),
			Location: obj.Get(schema.KeyName).Location(),
		}
	}

	// The schema check leaves only comment keys outside the known lists.
	s := types.Species{Name: name, UnknownProperties: schema.Comments(obj)}
	for _, pair := range obj.Pairs() {
		switch pair.Key {
		case schema.KeyTracerType:
			tracer := pair.Value.Str()
			s.TracerType = &tracer
			if tracer == schema.TracerThirdBody {
				thirdBody := true
				s.IsThirdBody = &thirdBody
			}
		case schema.KeyAbsoluteTolerance, schema.KeyDiffusionCoefficient, schema.KeyMolecularWeight:
			v, err := pair.Value.Float()
			if err != nil {
				return &mechErrors.Error{
					Kind:     mechErrors.KindInvalidType,
					Message:  fmt.Sprintf("Expected '%s' to be a number in '%s' species.", pair.Key, name),
					Location: pair.Value.Location(),
				}
			}
			switch pair.Key {
			case schema.KeyAbsoluteTolerance:
				s.AbsoluteTolerance = &v
			case schema.KeyDiffusionCoefficient:
				s.DiffusionCoefficient = &v
			default:
				s.MolecularWeight = &v
			}
		}
	}

	b.seen[name] = true
	b.species = append(b.species, s)
	return nil
}

func (b *builder) tolerance(obj document.Node) *mechErrors.Error {
	if err := first(schema.Validate(obj, []string{keyValue, schema.KeyType}, nil)); err != nil {
		return err
	}
	v, err := obj.Get(keyValue).Float()
	if err != nil {
		return &mechErrors.Error{
			Kind:     mechErrors.KindInvalidType,
			Message:  fmt.Sprintf("Expected '%s' to be a number in '%s' object.", keyValue, TypeRelativeTolerance),
			Location: obj.Get(keyValue).Location(),
		}
	}
	b.relativeTolerance = &v
	return nil
}
