package reactions

import (
	"fmt"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

var gasRequired = []string{schema.KeyReactants, schema.KeyProducts, schema.KeyType, schema.KeyGasPhase}

var scaledOptional = []string{schema.KeyScalingFactor, schema.KeyName}

// checkGas is the common path for gas-phase kinds with reactants and
// products and no extra rules beyond numeric parameters.
func checkGas(c *checker, params ...string) {
	reactants := c.components(schema.KeyReactants)
	products := c.components(schema.KeyProducts)
	c.numbers(params...)
	c.unknownSpecies(reactants, products)
	c.phase(c.obj, schema.KeyGasPhase)
}

var photolysisKind = kind{
	required: gasRequired,
	optional: scaledOptional,
	validate: func(c *checker) {
		reactants := c.components(schema.KeyReactants)
		products := c.components(schema.KeyProducts)
		c.numbers(schema.KeyScalingFactor)
		c.single(c.obj, schema.KeyReactants, "reactant")
		c.unknownSpecies(reactants, products)
		c.phase(c.obj, schema.KeyGasPhase)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.Photolysis{
			Name:              obj.Get(schema.KeyName).Str(),
			GasPhase:          obj.Get(schema.KeyGasPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:          d.ParseComponents(obj.Get(schema.KeyProducts)),
			ScalingFactor:     obj.Get(schema.KeyScalingFactor).MustFloat(1.0),
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var emissionKind = kind{
	required: []string{schema.KeyProducts, schema.KeyType, schema.KeyGasPhase},
	optional: scaledOptional,
	validate: func(c *checker) {
		products := c.components(schema.KeyProducts)
		c.numbers(schema.KeyScalingFactor)
		c.unknownSpecies(products)
		c.phase(c.obj, schema.KeyGasPhase)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.Emission{
			Name:              obj.Get(schema.KeyName).Str(),
			GasPhase:          obj.Get(schema.KeyGasPhase).Str(),
			Products:          d.ParseComponents(obj.Get(schema.KeyProducts)),
			ScalingFactor:     obj.Get(schema.KeyScalingFactor).MustFloat(1.0),
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var firstOrderLossKind = kind{
	required: []string{schema.KeyReactants, schema.KeyType, schema.KeyGasPhase},
	optional: scaledOptional,
	validate: func(c *checker) {
		reactants := c.components(schema.KeyReactants)
		c.numbers(schema.KeyScalingFactor)
		c.single(c.obj, schema.KeyReactants, "reactant")
		c.unknownSpecies(reactants)
		if phase, ok := c.phase(c.obj, schema.KeyGasPhase); ok {
			c.members(phase, reactants)
		}
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.FirstOrderLoss{
			Name:              obj.Get(schema.KeyName).Str(),
			GasPhase:          obj.Get(schema.KeyGasPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			ScalingFactor:     obj.Get(schema.KeyScalingFactor).MustFloat(1.0),
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var userDefinedKind = kind{
	required: gasRequired,
	optional: scaledOptional,
	validate: func(c *checker) {
		checkGas(c, schema.KeyScalingFactor)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.UserDefined{
			Name:              obj.Get(schema.KeyName).Str(),
			GasPhase:          obj.Get(schema.KeyGasPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:          d.ParseComponents(obj.Get(schema.KeyProducts)),
			ScalingFactor:     obj.Get(schema.KeyScalingFactor).MustFloat(1.0),
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var tunnelingKind = kind{
	required: gasRequired,
	optional: []string{schema.KeyA, schema.KeyB, schema.KeyC, schema.KeyName},
	validate: func(c *checker) {
		checkGas(c, schema.KeyA, schema.KeyB, schema.KeyC)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.Tunneling{
			Name:              obj.Get(schema.KeyName).Str(),
			GasPhase:          obj.Get(schema.KeyGasPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:          d.ParseComponents(obj.Get(schema.KeyProducts)),
			A:                 obj.Get(schema.KeyA).MustFloat(1.0),
			B:                 obj.Get(schema.KeyB).MustFloat(0.0),
			C:                 obj.Get(schema.KeyC).MustFloat(0.0),
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var falloffParams = []string{
	schema.KeyK0A, schema.KeyK0B, schema.KeyK0C,
	schema.KeyKinfA, schema.KeyKinfB, schema.KeyKinfC,
	schema.KeyFc, schema.KeyN,
}

// falloff holds the parameters shared by TROE and TERNARY_CHEMICAL_ACTIVATION.
type falloff struct {
	k0A, k0B, k0C, kinfA, kinfB, kinfC, fc, n float64
}

func parseFalloff(obj document.Node) falloff {
	return falloff{
		k0A:   obj.Get(schema.KeyK0A).MustFloat(1.0),
		k0B:   obj.Get(schema.KeyK0B).MustFloat(0.0),
		k0C:   obj.Get(schema.KeyK0C).MustFloat(0.0),
		kinfA: obj.Get(schema.KeyKinfA).MustFloat(1.0),
		kinfB: obj.Get(schema.KeyKinfB).MustFloat(0.0),
		kinfC: obj.Get(schema.KeyKinfC).MustFloat(0.0),
		fc:    obj.Get(schema.KeyFc).MustFloat(0.6),
		n:     obj.Get(schema.KeyN).MustFloat(1.0),
	}
}

var troeKind = kind{
	required: gasRequired,
	optional: append([]string{schema.KeyName}, falloffParams...),
	validate: func(c *checker) {
		checkGas(c, falloffParams...)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		f := parseFalloff(obj)
		return types.Troe{
			Name:              obj.Get(schema.KeyName).Str(),
			GasPhase:          obj.Get(schema.KeyGasPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:          d.ParseComponents(obj.Get(schema.KeyProducts)),
			K0A:               f.k0A,
			K0B:               f.k0B,
			K0C:               f.k0C,
			KinfA:             f.kinfA,
			KinfB:             f.kinfB,
			KinfC:             f.kinfC,
			Fc:                f.fc,
			N:                 f.n,
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var ternaryChemicalActivationKind = kind{
	required: gasRequired,
	optional: append([]string{schema.KeyName}, falloffParams...),
	validate: func(c *checker) {
		checkGas(c, falloffParams...)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		f := parseFalloff(obj)
		return types.TernaryChemicalActivation{
			Name:              obj.Get(schema.KeyName).Str(),
			GasPhase:          obj.Get(schema.KeyGasPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:          d.ParseComponents(obj.Get(schema.KeyProducts)),
			K0A:               f.k0A,
			K0B:               f.k0B,
			K0C:               f.k0C,
			KinfA:             f.kinfA,
			KinfB:             f.kinfB,
			KinfC:             f.kinfC,
			Fc:                f.fc,
			N:                 f.n,
			UnknownProperties: schema.Comments(obj),
		}
	},
}

var branchedKind = kind{
	required: []string{
		schema.KeyType, schema.KeyGasPhase, schema.KeyReactants,
		schema.KeyNitrateProducts, schema.KeyAlkoxyProducts,
		schema.KeyX, schema.KeyY, schema.KeyA0, schema.KeyLowerN,
	},
	optional: []string{schema.KeyName},
	validate: func(c *checker) {
		reactants := c.components(schema.KeyReactants)
		nitrate := c.components(schema.KeyNitrateProducts)
		alkoxy := c.components(schema.KeyAlkoxyProducts)
		c.numbers(schema.KeyX, schema.KeyY, schema.KeyA0)
		if _, err := c.obj.Get(schema.KeyLowerN).Int(); err != nil {
			c.errs.AddError(mechErrors.KindInvalidType,
				fmt.Sprintf("Expected '%s' to be an integer in %s.", schema.KeyLowerN, c.owner),
				c.obj.Get(schema.KeyLowerN).Location())
		}
		c.unknownSpecies(reactants, nitrate, alkoxy)
		c.phase(c.obj, schema.KeyGasPhase)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		return types.Branched{
			Name:              obj.Get(schema.KeyName).Str(),
			GasPhase:          obj.Get(schema.KeyGasPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			NitrateProducts:   d.ParseComponents(obj.Get(schema.KeyNitrateProducts)),
			AlkoxyProducts:    d.ParseComponents(obj.Get(schema.KeyAlkoxyProducts)),
			X:                 obj.Get(schema.KeyX).MustFloat(0),
			Y:                 obj.Get(schema.KeyY).MustFloat(0),
			A0:                obj.Get(schema.KeyA0).MustFloat(0),
			N:                 obj.Get(schema.KeyLowerN).MustInt(0),
			UnknownProperties: schema.Comments(obj),
		}
	},
}
