package assembler

import (
	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// validatePhases checks every phase and returns the ones later stages may
// reference. The boolean is false when the run must stop here.
func (a *Assembler) validatePhases(list document.Node, species []types.Species, errs *mechErrors.ErrorList) ([]types.Phase, bool) {
	stageErrs := mechErrors.NewErrorList()
	known := types.SpeciesNames(species)

	var kept []types.Phase
	var named []schema.NamedNode
	for _, item := range list.Items() {
		phaseErrs := schema.Validate(item, []string{schema.KeyName, schema.KeySpecies}, nil)
		if phaseErrs.HasErrors() {
			stageErrs.Merge(phaseErrs)
			continue
		}

		name, ok := schema.Name(item, schema.KeyName, "phase", stageErrs)
		if !ok {
			continue
		}
		named = append(named, schema.NamedNode{Name: name, Node: item})

		refs := a.cfg.Dialect.ValidatePhaseSpecies(item.Get(schema.KeySpecies), phaseErrs)
		schema.DuplicateErrors(phaseErrs, mechErrors.KindDuplicateSpeciesInPhaseDetected, "species",
			schema.FindDuplicates(refs))
		schema.ReportUnknownSpecies(phaseErrs, mechErrors.KindPhaseRequiresUnknownSpecies,
			schema.Owner{Type: name, Noun: "phase"}, schema.FindUnknown(known, refs))

		stageErrs.Merge(phaseErrs)
		if !phaseErrs.HasErrors() {
			kept = append(kept, a.parsePhase(item))
		}
	}

	schema.DuplicateErrors(stageErrs, mechErrors.KindDuplicatePhasesDetected, "phase", schema.FindDuplicates(named))
	errs.Merge(stageErrs)

	if a.cfg.StrictPhases && stageErrs.HasErrors() {
		return nil, false
	}
	return kept, true
}

func (a *Assembler) parsePhase(item document.Node) types.Phase {
	return types.Phase{
		Name:              item.Get(schema.KeyName).Str(),
		Species:           a.cfg.Dialect.ParsePhaseSpeciesList(item.Get(schema.KeySpecies)),
		UnknownProperties: schema.Comments(item),
	}
}

func (a *Assembler) parsePhases(list document.Node) []types.Phase {
	items := list.Items()
	out := make([]types.Phase, 0, len(items))
	for _, item := range items {
		out = append(out, a.parsePhase(item))
	}
	return out
}
