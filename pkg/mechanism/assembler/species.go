package assembler

import (
	"fmt"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// SpeciesKeys are the optional species keys shared by every schema line.
var SpeciesKeys = []string{
	schema.KeyAbsoluteTolerance,
	schema.KeyDiffusionCoefficient,
	schema.KeyMolecularWeight,
	schema.KeyHenrysLawConstant298,
	schema.KeyHenrysLawConstantExponentialFactor,
	schema.KeyNStar,
	schema.KeyDensity,
	schema.KeyTracerType,
}

// BoundaryKeys are the optional species keys for fixed concentrations and
// third bodies.
var BoundaryKeys = []string{
	schema.KeyConstantConcentration,
	schema.KeyConstantMixingRatio,
	schema.KeyIsThirdBody,
}

var numericSpeciesKeys = []string{
	schema.KeyAbsoluteTolerance,
	schema.KeyDiffusionCoefficient,
	schema.KeyMolecularWeight,
	schema.KeyHenrysLawConstant298,
	schema.KeyHenrysLawConstantExponentialFactor,
	schema.KeyNStar,
	schema.KeyDensity,
	schema.KeyConstantConcentration,
	schema.KeyConstantMixingRatio,
}

func (a *Assembler) validateSpecies(list document.Node, errs *mechErrors.ErrorList) bool {
	stageErrs := mechErrors.NewErrorList()
	var named []schema.NamedNode

	for _, item := range list.Items() {
		shape := schema.Validate(item, []string{schema.KeyName}, a.cfg.SpeciesOptional)
		stageErrs.Merge(shape)
		if shape.HasErrors() {
			continue
		}

		name, ok := schema.Name(item, schema.KeyName, "species", stageErrs)
		if !ok {
			continue
		}
		checkSpeciesValues(item, name, stageErrs)
		named = append(named, schema.NamedNode{Name: name, Node: item})
	}

	schema.DuplicateErrors(stageErrs, mechErrors.KindDuplicateSpeciesDetected, "species", schema.FindDuplicates(named))
	errs.Merge(stageErrs)
	return !stageErrs.HasErrors()
}

func checkSpeciesValues(item document.Node, name string, errs *mechErrors.ErrorList) {
	for _, key := range numericSpeciesKeys {
		node := item.Get(key)
		if node.IsNull() {
			continue
		}
		if _, err := node.Float(); err != nil {
			errs.AddError(mechErrors.KindInvalidType,
				fmt.Sprintf("Expected '%s' to be a number in '%s' species.", key, name),
				node.Location())
		}
	}
	if node := item.Get(schema.KeyIsThirdBody); !node.IsNull() {
		if _, err := node.Bool(); err != nil {
			errs.AddError(mechErrors.KindInvalidType,
				fmt.Sprintf("Expected '%s' to be a boolean in '%s' species.", schema.KeyIsThirdBody, name),
				node.Location())
		}
	}
}

func optionalFloat(item document.Node, key string) *float64 {
	v, err := item.Get(key).Float()
	if err != nil {
		return nil
	}
	return &v
}

// ParseSpecies reads one species entry. A tracer type of THIRD_BODY marks
// the species as a third body unless the entry says otherwise.
func ParseSpecies(item document.Node) types.Species {
	s := types.Species{
		Name:                               item.Get(schema.KeyName).Str(),
		MolecularWeight:                    optionalFloat(item, schema.KeyMolecularWeight),
		AbsoluteTolerance:                  optionalFloat(item, schema.KeyAbsoluteTolerance),
		DiffusionCoefficient:               optionalFloat(item, schema.KeyDiffusionCoefficient),
		HenrysLawConstant298:               optionalFloat(item, schema.KeyHenrysLawConstant298),
		HenrysLawConstantExponentialFactor: optionalFloat(item, schema.KeyHenrysLawConstantExponentialFactor),
		NStar:                              optionalFloat(item, schema.KeyNStar),
		Density:                            optionalFloat(item, schema.KeyDensity),
		ConstantConcentration:              optionalFloat(item, schema.KeyConstantConcentration),
		ConstantMixingRatio:                optionalFloat(item, schema.KeyConstantMixingRatio),
		UnknownProperties:                  schema.Comments(item),
	}
	if tracer, err := item.Get(schema.KeyTracerType).String(); err == nil {
		s.TracerType = &tracer
		if tracer == schema.TracerThirdBody {
			thirdBody := true
			s.IsThirdBody = &thirdBody
		}
	}
	if b, err := item.Get(schema.KeyIsThirdBody).Bool(); err == nil {
		s.IsThirdBody = &b
	}
	return s
}

func (a *Assembler) parseSpecies(list document.Node) []types.Species {
	items := list.Items()
	out := make([]types.Species, 0, len(items))
	for _, item := range items {
		out = append(out, ParseSpecies(item))
	}
	return out
}
