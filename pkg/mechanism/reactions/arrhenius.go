package reactions

import (
	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

var arrheniusParams = []string{schema.KeyA, schema.KeyB, schema.KeyC, schema.KeyD, schema.KeyE, schema.KeyEa}

// Arrhenius defaults.
const (
	defaultA = 1.0
	defaultB = 0.0
	defaultC = 0.0
	defaultD = 300.0
	defaultE = 0.0
)

// arrheniusRate reads A..E, deriving C from Ea when Ea is given.
func arrheniusRate(obj document.Node) (a, b, c, d, e float64) {
	a = obj.Get(schema.KeyA).MustFloat(defaultA)
	b = obj.Get(schema.KeyB).MustFloat(defaultB)
	c = obj.Get(schema.KeyC).MustFloat(defaultC)
	d = obj.Get(schema.KeyD).MustFloat(defaultD)
	e = obj.Get(schema.KeyE).MustFloat(defaultE)
	if ea, err := obj.Get(schema.KeyEa).Float(); err == nil {
		if derived, err := CFromEa(ea); err == nil {
			c = derived
		}
	}
	return a, b, c, d, e
}

var arrheniusKind = kind{
	required: []string{schema.KeyReactants, schema.KeyProducts, schema.KeyType, schema.KeyGasPhase},
	optional: append([]string{schema.KeyName}, arrheniusParams...),
	validate: func(c *checker) {
		reactants := c.components(schema.KeyReactants)
		products := c.components(schema.KeyProducts)
		c.numbers(arrheniusParams...)
		if c.eaConflict() {
			return
		}
		c.unknownSpecies(reactants, products)
		c.phase(c.obj, schema.KeyGasPhase)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		r := types.Arrhenius{
			Name:              obj.Get(schema.KeyName).Str(),
			GasPhase:          obj.Get(schema.KeyGasPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:          d.ParseComponents(obj.Get(schema.KeyProducts)),
			UnknownProperties: schema.Comments(obj),
		}
		r.A, r.B, r.C, r.D, r.E = arrheniusRate(obj)
		return r
	},
}

var condensedPhaseArrheniusKind = kind{
	required: []string{schema.KeyReactants, schema.KeyProducts, schema.KeyType, schema.KeyCondensedPhase},
	optional: append([]string{schema.KeyName}, arrheniusParams...),
	validate: func(c *checker) {
		reactants := c.components(schema.KeyReactants)
		products := c.components(schema.KeyProducts)
		c.numbers(arrheniusParams...)
		if c.eaConflict() {
			return
		}
		c.unknownSpecies(reactants, products)
		if phase, ok := c.phase(c.obj, schema.KeyCondensedPhase); ok {
			c.members(phase, reactants, products)
		}
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		r := types.CondensedPhaseArrhenius{
			Name:              obj.Get(schema.KeyName).Str(),
			CondensedPhase:    obj.Get(schema.KeyCondensedPhase).Str(),
			Reactants:         d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:          d.ParseComponents(obj.Get(schema.KeyProducts)),
			UnknownProperties: schema.Comments(obj),
		}
		r.A, r.B, r.C, r.D, r.E = arrheniusRate(obj)
		return r
	},
}

var taylorSeriesKind = kind{
	required: []string{schema.KeyReactants, schema.KeyProducts, schema.KeyType, schema.KeyGasPhase},
	optional: append([]string{schema.KeyName, schema.KeyTaylorCoefficients}, arrheniusParams...),
	validate: func(c *checker) {
		reactants := c.components(schema.KeyReactants)
		products := c.components(schema.KeyProducts)
		c.numbers(arrheniusParams...)
		c.numberList(schema.KeyTaylorCoefficients)
		if c.eaConflict() {
			return
		}
		c.unknownSpecies(reactants, products)
		c.phase(c.obj, schema.KeyGasPhase)
	},
	parse: func(d Dialect, obj document.Node) types.Reaction {
		r := types.TaylorSeries{
			Name:               obj.Get(schema.KeyName).Str(),
			GasPhase:           obj.Get(schema.KeyGasPhase).Str(),
			Reactants:          d.ParseComponents(obj.Get(schema.KeyReactants)),
			Products:           d.ParseComponents(obj.Get(schema.KeyProducts)),
			TaylorCoefficients: []float64{1.0},
			UnknownProperties:  schema.Comments(obj),
		}
		r.A, r.B, r.C, r.D, r.E = arrheniusRate(obj)
		if obj.Has(schema.KeyTaylorCoefficients) {
			items := obj.Get(schema.KeyTaylorCoefficients).Items()
			r.TaylorCoefficients = make([]float64, 0, len(items))
			for _, item := range items {
				r.TaylorCoefficients = append(r.TaylorCoefficients, item.MustFloat(0))
			}
		}
		return r
	},
}
