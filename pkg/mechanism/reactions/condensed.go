package reactions

import (
	"fmt"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// simpolParams is the number of SIMPOL.1 vapor-pressure coefficients.
const simpolParams = 4

var condensedPhasePhotolysisKind = kind{
	required: []string{schema.KeyReactants, schema.KeyProducts, schema.KeyType, schema.KeyCondensedPhase},
	optional: scaledOptional,
	validate: func(c *checker) {
		reactants := c.components(schema.KeyReactants)
		products := c.components(schema.KeyProducts)
		c.numbers(schema.KeyScalingFactor)
		c.single(c.obj, schema.KeyReactants, "reactant")
		c.unknownSpecies(reactants, products)
		if phase, ok := c.phase(c.obj, schema.KeyCondensedPhase); ok {
			c.members(phase, reactants, products)
		}
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.CondensedPhasePhotolysis{
			Name:              obj.Get(schema.KeyName).Str(),
			CondensedPhase:    obj.Get(schema.KeyCondensedPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:          d.ParseComponents(obj.Get(schema.KeyProducts)),
			ScalingFactor:     obj.Get(schema.KeyScalingFactor).MustFloat(1.0),
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var wetDepositionKind = kind{
	required: []string{schema.KeyType, schema.KeyCondensedPhase},
	optional: scaledOptional,
	validate: func(c *checker) {
		c.numbers(schema.KeyScalingFactor)
		c.phase(c.obj, schema.KeyCondensedPhase)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.WetDeposition{
			Name:              obj.Get(schema.KeyName).Str(),
			CondensedPhase:    obj.Get(schema.KeyCondensedPhase).Str(),
			ScalingFactor:     obj.Get(schema.KeyScalingFactor).MustFloat(1.0),
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var simpolPhaseTransferKind = kind{
	required: []string{
		schema.KeyType, schema.KeyGasPhase, schema.KeyGasPhaseSpecies,
		schema.KeyCondensedPhase, schema.KeyCondensedPhaseSpecies, schema.KeyB,
	},
	optional: []string{schema.KeyName},
	validate: func(c *checker) {
		gasSpecies := c.components(schema.KeyGasPhaseSpecies)
		condensedSpecies := c.components(schema.KeyCondensedPhaseSpecies)

		b := c.obj.Get(schema.KeyB)
		switch {
		case !b.IsSequence():
			c.errs.AddError(mechErrors.KindInvalidParameterNumber,
				fmt.Sprintf("'%s' reaction parameter 'B' value must be a sequence.", c.tag),
				b.Location())
		case b.Len() != simpolParams:
			c.errs.AddError(mechErrors.KindInvalidParameterNumber,
				fmt.Sprintf("'%s' reaction requires %d parameters, but %d were provided.", c.tag, simpolParams, b.Len()),
				b.Location())
		default:
			c.numberList(schema.KeyB)
		}

		c.single(c.obj, schema.KeyGasPhaseSpecies, "gas-phase species")
		c.single(c.obj, schema.KeyCondensedPhaseSpecies, "condensed-phase species")
		c.unknownSpecies(gasSpecies, condensedSpecies)
		if phase, ok := c.phase(c.obj, schema.KeyGasPhase); ok {
			c.members(phase, gasSpecies)
		}
		if phase, ok := c.phase(c.obj, schema.KeyCondensedPhase); ok {
			c.members(phase, condensedSpecies)
		}
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		r := types.SimpolPhaseTransfer{
			Name:                  obj.Get(schema.KeyName).Str(),
			GasPhase:              obj.Get(schema.KeyGasPhase).Str(),
			GasPhaseSpecies:       d.ParseComponents(obj.Get(schema.KeyGasPhaseSpecies)),
			CondensedPhase:        obj.Get(schema.KeyCondensedPhase).Str(),
			CondensedPhaseSpecies: d.ParseComponents(obj.Get(schema.KeyCondensedPhaseSpecies)),
			UnknownProperties:     schema.Comments(obj),
		}
		for i, item := range obj.Get(schema.KeyB).Items() {
			if i == simpolParams {
				break
			}
			r.B[i] = item.MustFloat(0)
		}
		return r
	},
}

var aqueousEquilibriumKind = kind{
	required: []string{
		schema.KeyType, schema.KeyCondensedPhase, schema.KeyCondensedPhaseWater,
		schema.KeyReactants, schema.KeyProducts, schema.KeyKReverse,
	},
	optional: []string{schema.KeyName, schema.KeyA, schema.KeyC},
	validate: func(c *checker) {
		reactants := c.components(schema.KeyReactants)
		products := c.components(schema.KeyProducts)
		water := c.scalarRef(schema.KeyCondensedPhaseWater)
		c.numbers(schema.KeyA, schema.KeyC, schema.KeyKReverse)
		c.unknownSpecies(reactants, products, water)
		if phase, ok := c.phase(c.obj, schema.KeyCondensedPhase); ok {
			c.members(phase, reactants, products, water)
		}
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.AqueousEquilibrium{
			Name:                obj.Get(schema.KeyName).Str(),
			CondensedPhase:      obj.Get(schema.KeyCondensedPhase).Str(),
			CondensedPhaseWater: obj.Get(schema.KeyCondensedPhaseWater).Str(),
			Reactants:           d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:            d.ParseComponents(obj.Get(schema.KeyProducts)),
			A:                   obj.Get(schema.KeyA).MustFloat(1.0),
			C:                   obj.Get(schema.KeyC).MustFloat(0.0),
			KReverse:            obj.Get(schema.KeyKReverse).MustFloat(0.0),
			UnknownProperties:   schema.Comments(obj),
		}
	},
}

var henrysLawKind = kind{
	required: []string{schema.KeyType, schema.KeyGas, schema.KeyParticle},
	optional: []string{schema.KeyName},
	validate: func(c *checker) {
		gas := c.obj.Get(schema.KeyGas)
		particle := c.obj.Get(schema.KeyParticle)
		gasShape := schema.Validate(gas, []string{schema.KeyName, schema.KeySpecies}, nil)
		particleShape := schema.Validate(particle, []string{schema.KeyPhase, schema.KeySolutes, schema.KeySolvent}, nil)
		c.errs.Merge(gasShape)
		c.errs.Merge(particleShape)
		if gasShape.HasErrors() || particleShape.HasErrors() {
			return
		}

		gasSpecies := c.d.ValidatePhaseSpecies(gas.Get(schema.KeySpecies), c.errs)
		solutes := c.componentsIn(particle, schema.KeySolutes)
		solvent := c.componentsIn(particle, schema.KeySolvent)
		c.single(particle, schema.KeySolvent, "solvent")
		c.unknownSpecies(gasSpecies, solutes, solvent)
		if phase, ok := c.phase(gas, schema.KeyName); ok {
			c.members(phase, gasSpecies)
		}
		if phase, ok := c.phase(particle, schema.KeyPhase); ok {
			c.members(phase, solutes, solvent)
		}
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		gas := obj.Get(schema.KeyGas)
		particle := obj.Get(schema.KeyParticle)
		return types.HenrysLaw{
			Name: obj.Get(schema.KeyName).Str(),
			Gas: types.Phase{
				Name:              gas.Get(schema.KeyName).Str(),
				Species:           d.ParsePhaseSpeciesList(gas.Get(schema.KeySpecies)),
				UnknownProperties: schema.Comments(gas),
			},
			Particle: types.HenrysLawParticle{
				Phase:   particle.Get(schema.KeyPhase).Str(),
				Solutes: d.ParseComponents(particle.Get(schema.KeySolutes)),
				Solvent: d.ParseComponents(particle.Get(schema.KeySolvent)),
			},
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var surfaceKind = kind{
	required: []string{
		schema.KeyGasPhaseProducts, schema.KeyGasPhaseSpecies, schema.KeyType,
		schema.KeyGasPhase, schema.KeyCondensedPhase,
	},
	optional: []string{schema.KeyReactionProbability, schema.KeyName},
	validate: func(c *checker) {
		gasSpecies := c.components(schema.KeyGasPhaseSpecies)
		products := c.components(schema.KeyGasPhaseProducts)
		c.numbers(schema.KeyReactionProbability)
		c.single(c.obj, schema.KeyGasPhaseSpecies, "gas-phase species")
		c.unknownSpecies(gasSpecies, products)
		if phase, ok := c.phase(c.obj, schema.KeyGasPhase); ok {
			c.members(phase, gasSpecies, products)
		}
		c.phase(c.obj, schema.KeyCondensedPhase)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.Surface{
			Name:                obj.Get(schema.KeyName).Str(),
			GasPhase:            obj.Get(schema.KeyGasPhase).Str(),
			GasPhaseSpecies:     d.ParseFirstComponent(obj.Get(schema.KeyGasPhaseSpecies)),
			GasPhaseProducts:    d.ParseComponents(obj.Get(schema.KeyGasPhaseProducts)),
			CondensedPhase:      obj.Get(schema.KeyCondensedPhase).Str(),
			ReactionProbability: obj.Get(schema.KeyReactionProbability).MustFloat(1.0),
			UnknownProperties:   schema.Comments(obj),
		}
	},
}
