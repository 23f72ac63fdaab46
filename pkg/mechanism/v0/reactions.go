package v0

import (
	"fmt"
	"math"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/reactions"
	"open-atmos/mechanism-configuration/pkg/mechanism/schema"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// AvogadroConstant is N_A in mol-1.
const AvogadroConstant = 6.02214076e23

// MolesM3ToMoleculesCm3 converts a concentration in mol m-3 to molecules cm-3.
const MolesM3ToMoleculesCm3 = AvogadroConstant * 1e-6

// Reaction type tags that only exist in v0 configurations.
const (
	TypeWennbergNoRO2     = "WENNBERG_NO_RO2"
	TypeWennbergTunneling = "WENNBERG_TUNNELING"
)

// Name prefixes of the user-defined rate constants v0 reactions become.
const (
	PrefixPhotolysis = "PHOTO."
	PrefixEmission   = "EMIS."
	PrefixLoss       = "LOSS."
	PrefixUser       = "USER."
	PrefixSurface    = "SURF."
)

const (
	keyMusicaName       = "MUSICA name"
	keyQty              = "qty"
	keyYield            = "yield"
	keyGasPhaseReactant = "gas-phase reactant"
)

type reactionParser func(b *builder, obj document.Node) *mechErrors.Error

var reactionParsers = map[string]reactionParser{
	types.TypeArrhenius:                 (*builder).arrhenius,
	types.TypeTroe:                      (*builder).troe,
	types.TypeTernaryChemicalActivation: (*builder).ternary,
	TypeWennbergNoRO2:                   (*builder).branched,
	TypeWennbergTunneling:               (*builder).tunneling,
	types.TypePhotolysis:                (*builder).photolysis,
	types.TypeEmission:                  (*builder).emission,
	types.TypeFirstOrderLoss:            (*builder).firstOrderLoss,
	types.TypeUserDefined:               (*builder).userDefined,
	types.TypeSurface:                   (*builder).surface,
}

// ReactionTypes returns the reaction type tags a v0 mechanism may use.
func ReactionTypes() []string {
	tags := make([]string, 0, len(reactionParsers))
	for tag := range reactionParsers {
		tags = append(tags, tag)
	}
	return tags
}

func (b *builder) reaction(obj document.Node) *mechErrors.Error {
	typeNode := obj.Get(schema.KeyType)
	tag, err := typeNode.String()
	if err != nil {
		return &mechErrors.Error{
			Kind:     mechErrors.KindObjectTypeNotFound,
			Message:  "Missing 'type' object in reaction.",
			Location: obj.Location(),
		}
	}
	parse, ok := reactionParsers[tag]
	if !ok {
		return &mechErrors.Error{
			Kind:       mechErrors.KindUnknownType,
			Message:    fmt.Sprintf("Unknown reaction type '%s' found.", tag),
			Location:   typeNode.Location(),
			Suggestion: mechErrors.SuggestType(tag, ReactionTypes()),
		}
	}
	return parse(b, obj)
}

// components reads a species map such as {A: {qty: 2}, B: {}}. amountKey
// names the per-species coefficient, which defaults to 1.
func (b *builder) components(obj document.Node, key, amountKey, tag string) ([]types.ReactionComponent, *mechErrors.Error) {
	node := obj.Get(key)
	if !node.IsMap() {
		return nil, &mechErrors.Error{
			Kind:     mechErrors.KindInvalidType,
			Message:  fmt.Sprintf("Expected '%s' to be a map of species in '%s' reaction.", key, tag),
			Location: node.Location(),
		}
	}

	var out []types.ReactionComponent
	var refs []schema.NamedNode
	for _, pair := range node.Pairs() {
		c := types.ReactionComponent{Name: pair.Key, Coefficient: 1}
		if !pair.Value.IsNull() {
			if !pair.Value.IsMap() {
				return nil, &mechErrors.Error{
					Kind:     mechErrors.KindInvalidType,
					Message:  fmt.Sprintf("Expected '%s' entry '%s' to be an object in '%s' reaction.", key, pair.Key, tag),
					Location: pair.Value.Location(),
				}
			}
			if err := first(schema.Validate(pair.Value, nil, []string{amountKey})); err != nil {
				return nil, err
			}
			if amount := pair.Value.Get(amountKey); !amount.IsNull() {
				v, err := amount.Float()
				if err != nil {
					return nil, &mechErrors.Error{
						Kind:     mechErrors.KindInvalidType,
						Message:  fmt.Sprintf("Expected '%s' to be a number in '%s' reaction.", amountKey, tag),
						Location: amount.Location(),
					}
				}
				c.Coefficient = v
			}
			c.UnknownProperties = schema.Comments(pair.Value)
		}
		out = append(out, c)
		refs = append(refs, schema.NamedNode{Name: pair.Key, Node: pair.KeyAt})
	}

	if err := b.knownSpecies(refs, tag); err != nil {
		return nil, err
	}
	return out, nil
}

func (b *builder) knownSpecies(refs []schema.NamedNode, tag string) *mechErrors.Error {
	errs := mechErrors.NewErrorList()
	schema.ReportUnknownSpecies(errs, mechErrors.KindReactionRequiresUnknownSpecies,
		schema.ReactionOwner(tag), schema.FindUnknown(types.SpeciesNames(b.species), refs))
	return first(errs)
}

func totalMoles(reactants []types.ReactionComponent) float64 {
	var total float64
	for _, r := range reactants {
		total += r.Coefficient
	}
	return total
}

// convert rescales a rate constant whose concentrations are in mol m-3 to
// molecules cm-3, for a rate law of the given order in concentration.
func convert(v, order float64) float64 {
	return v * math.Pow(MolesM3ToMoleculesCm3, order)
}

func number(obj document.Node, key, tag string, def float64) (float64, *mechErrors.Error) {
	node := obj.Get(key)
	if node.IsNull() {
		return def, nil
	}
	v, err := node.Float()
	if err != nil {
		return 0, &mechErrors.Error{
			Kind:     mechErrors.KindInvalidType,
			Message:  fmt.Sprintf("Expected '%s' to be a number in '%s' reaction.", key, tag),
			Location: node.Location(),
		}
	}
	return v, nil
}

// numbers reads several keys at once; defaults pairs up with keys.
func numbers(obj document.Node, tag string, keys []string, defaults []float64) ([]float64, *mechErrors.Error) {
	out := make([]float64, len(keys))
	for i, key := range keys {
		v, err := number(obj, key, tag, defaults[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (b *builder) reactantsAndProducts(obj document.Node, tag string) ([]types.ReactionComponent, []types.ReactionComponent, *mechErrors.Error) {
	reactants, err := b.components(obj, schema.KeyReactants, keyQty, tag)
	if err != nil {
		return nil, nil, err
	}
	products, err := b.components(obj, schema.KeyProducts, keyYield, tag)
	if err != nil {
		return nil, nil, err
	}
	return reactants, products, nil
}

func (b *builder) arrhenius(obj document.Node) *mechErrors.Error {
	tag := types.TypeArrhenius
	optional := []string{schema.KeyA, schema.KeyB, schema.KeyC, schema.KeyD, schema.KeyE, schema.KeyEa, keyMusicaName}
	if err := first(schema.Validate(obj, []string{schema.KeyType, schema.KeyReactants, schema.KeyProducts}, optional)); err != nil {
		return err
	}
	reactants, products, err := b.reactantsAndProducts(obj, tag)
	if err != nil {
		return err
	}
	p, err := numbers(obj, tag,
		[]string{schema.KeyA, schema.KeyB, schema.KeyC, schema.KeyD, schema.KeyE},
		[]float64{1, 0, 0, 300, 0})
	if err != nil {
		return err
	}

	r := types.Arrhenius{
		Name:              obj.Get(keyMusicaName).Str(),
		GasPhase:          GasPhase,
		Reactants:         reactants,
		Products:          products,
		A:                 convert(p[0], totalMoles(reactants)-1),
		B:                 p[1],
		C:                 p[2],
		D:                 p[3],
		E:                 p[4],
		UnknownProperties: schema.Comments(obj),
	}

	if ea := obj.Get(schema.KeyEa); !ea.IsNull() {
		if r.C != 0 {
			return &mechErrors.Error{
				Kind:     mechErrors.KindMutuallyExclusiveOption,
				Message:  "Cannot specify both 'C' and 'Ea'.",
				Location: ea.Location(),
			}
		}
		v, err := number(obj, schema.KeyEa, tag, 0)
		if err != nil {
			return err
		}
		c, convErr := reactions.CFromEa(v)
		if convErr != nil {
			return &mechErrors.Error{Kind: mechErrors.KindUnexpectedError, Message: convErr.Error(), Location: ea.Location()}
		}
		r.C = c
	}

	b.reactions.Arrhenius = append(b.reactions.Arrhenius, r)
	return nil
}

var falloffKeys = []string{
	schema.KeyK0A, schema.KeyK0B, schema.KeyK0C,
	schema.KeyKinfA, schema.KeyKinfB, schema.KeyKinfC,
	schema.KeyFc, schema.KeyN,
}

var falloffDefaults = []float64{1, 0, 0, 1, 0, 0, 0.6, 1}

func (b *builder) falloff(obj document.Node, tag string) ([]types.ReactionComponent, []types.ReactionComponent, []float64, *mechErrors.Error) {
	if err := first(schema.Validate(obj, []string{schema.KeyType, schema.KeyReactants, schema.KeyProducts},
		append([]string{keyMusicaName}, falloffKeys...))); err != nil {
		return nil, nil, nil, err
	}
	reactants, products, err := b.reactantsAndProducts(obj, tag)
	if err != nil {
		return nil, nil, nil, err
	}
	p, err := numbers(obj, tag, falloffKeys, falloffDefaults)
	if err != nil {
		return nil, nil, nil, err
	}
	return reactants, products, p, nil
}

// troe converts k0_A including the third body M, hence one order higher
// than kinf_A.
func (b *builder) troe(obj document.Node) *mechErrors.Error {
	reactants, products, p, err := b.falloff(obj, types.TypeTroe)
	if err != nil {
		return err
	}
	moles := totalMoles(reactants)
	b.reactions.Troe = append(b.reactions.Troe, types.Troe{
		Name:              obj.Get(keyMusicaName).Str(),
		GasPhase:          GasPhase,
		Reactants:         reactants,
		Products:          products,
		K0A:               convert(p[0], moles),
		K0B:               p[1],
		K0C:               p[2],
		KinfA:             convert(p[3], moles-1),
		KinfB:             p[4],
		KinfC:             p[5],
		Fc:                p[6],
		N:                 p[7],
		UnknownProperties: schema.Comments(obj),
	})
	return nil
}

func (b *builder) ternary(obj document.Node) *mechErrors.Error {
	reactants, products, p, err := b.falloff(obj, types.TypeTernaryChemicalActivation)
	if err != nil {
		return err
	}
	moles := totalMoles(reactants)
	b.reactions.TernaryChemicalActivation = append(b.reactions.TernaryChemicalActivation, types.TernaryChemicalActivation{
		Name:              obj.Get(keyMusicaName).Str(),
		GasPhase:          GasPhase,
		Reactants:         reactants,
		Products:          products,
		K0A:               convert(p[0], moles-1),
		K0B:               p[1],
		K0C:               p[2],
		KinfA:             convert(p[3], moles-2),
		KinfB:             p[4],
		KinfC:             p[5],
		Fc:                p[6],
		N:                 p[7],
		UnknownProperties: schema.Comments(obj),
	})
	return nil
}

func (b *builder) branched(obj document.Node) *mechErrors.Error {
	tag := TypeWennbergNoRO2
	required := []string{
		schema.KeyType, schema.KeyReactants, schema.KeyAlkoxyProducts, schema.KeyNitrateProducts,
		schema.KeyX, schema.KeyY, schema.KeyA0, schema.KeyLowerN,
	}
	if err := first(schema.Validate(obj, required, []string{keyMusicaName})); err != nil {
		return err
	}
	reactants, err := b.components(obj, schema.KeyReactants, keyQty, tag)
	if err != nil {
		return err
	}
	alkoxy, err := b.components(obj, schema.KeyAlkoxyProducts, keyYield, tag)
	if err != nil {
		return err
	}
	nitrate, err := b.components(obj, schema.KeyNitrateProducts, keyYield, tag)
	if err != nil {
		return err
	}
	p, err := numbers(obj, tag, []string{schema.KeyX, schema.KeyY, schema.KeyA0}, []float64{0, 0, 0})
	if err != nil {
		return err
	}
	n, intErr := obj.Get(schema.KeyLowerN).Int()
	if intErr != nil {
		return &mechErrors.Error{
			Kind:     mechErrors.KindInvalidType,
			Message:  fmt.Sprintf("Expected '%s' to be an integer in '%s' reaction.", schema.KeyLowerN, tag),
			Location: obj.Get(schema.KeyLowerN).Location(),
		}
	}

	b.reactions.Branched = append(b.reactions.Branched, types.Branched{
		Name:              obj.Get(keyMusicaName).Str(),
		GasPhase:          GasPhase,
		Reactants:         reactants,
		AlkoxyProducts:    alkoxy,
		NitrateProducts:   nitrate,
		X:                 convert(p[0], totalMoles(reactants)-1),
		Y:                 p[1],
		A0:                p[2],
		N:                 n,
		UnknownProperties: schema.Comments(obj),
	})
	return nil
}

func (b *builder) tunneling(obj document.Node) *mechErrors.Error {
	tag := TypeWennbergTunneling
	optional := []string{schema.KeyA, schema.KeyB, schema.KeyC, keyMusicaName}
	if err := first(schema.Validate(obj, []string{schema.KeyType, schema.KeyReactants, schema.KeyProducts}, optional)); err != nil {
		return err
	}
	reactants, products, err := b.reactantsAndProducts(obj, tag)
	if err != nil {
		return err
	}
	p, err := numbers(obj, tag, []string{schema.KeyA, schema.KeyB, schema.KeyC}, []float64{1, 0, 0})
	if err != nil {
		return err
	}
	b.reactions.Tunneling = append(b.reactions.Tunneling, types.Tunneling{
		Name:              obj.Get(keyMusicaName).Str(),
		GasPhase:          GasPhase,
		Reactants:         reactants,
		Products:          products,
		A:                 convert(p[0], totalMoles(reactants)-1),
		B:                 p[1],
		C:                 p[2],
		UnknownProperties: schema.Comments(obj),
	})
	return nil
}

// userRate appends the user-defined rate constant that PHOTOLYSIS,
// EMISSION, FIRST_ORDER_LOSS and USER_DEFINED reactions become.
func (b *builder) userRate(obj document.Node, prefix, tag string, reactants, products []types.ReactionComponent) *mechErrors.Error {
	scaling, err := number(obj, schema.KeyScalingFactor, tag, 1)
	if err != nil {
		return err
	}
	b.reactions.UserDefined = append(b.reactions.UserDefined, types.UserDefined{
		Name:              prefix + obj.Get(keyMusicaName).Str(),
		GasPhase:          GasPhase,
		Reactants:         reactants,
		Products:          products,
		ScalingFactor:     scaling,
		UnknownProperties: schema.Comments(obj),
	})
	return nil
}

func (b *builder) photolysis(obj document.Node) *mechErrors.Error {
	return b.reactantsRate(obj, types.TypePhotolysis, PrefixPhotolysis)
}

func (b *builder) userDefined(obj document.Node) *mechErrors.Error {
	return b.reactantsRate(obj, types.TypeUserDefined, PrefixUser)
}

func (b *builder) reactantsRate(obj document.Node, tag, prefix string) *mechErrors.Error {
	required := []string{schema.KeyType, schema.KeyReactants, schema.KeyProducts, keyMusicaName}
	if err := first(schema.Validate(obj, required, []string{schema.KeyScalingFactor})); err != nil {
		return err
	}
	reactants, products, err := b.reactantsAndProducts(obj, tag)
	if err != nil {
		return err
	}
	return b.userRate(obj, prefix, tag, reactants, products)
}

// emission and firstOrderLoss name a single species instead of a
// component map.
func (b *builder) emission(obj document.Node) *mechErrors.Error {
	required := []string{schema.KeyType, schema.KeySpecies, keyMusicaName}
	optional := []string{schema.KeyScalingFactor, schema.KeyProducts}
	if err := first(schema.Validate(obj, required, optional)); err != nil {
		return err
	}
	c, err := b.singleSpecies(obj, schema.KeySpecies, types.TypeEmission)
	if err != nil {
		return err
	}
	return b.userRate(obj, PrefixEmission, types.TypeEmission, nil, []types.ReactionComponent{c})
}

func (b *builder) firstOrderLoss(obj document.Node) *mechErrors.Error {
	required := []string{schema.KeyType, schema.KeySpecies, keyMusicaName}
	if err := first(schema.Validate(obj, required, []string{schema.KeyScalingFactor})); err != nil {
		return err
	}
	c, err := b.singleSpecies(obj, schema.KeySpecies, types.TypeFirstOrderLoss)
	if err != nil {
		return err
	}
	return b.userRate(obj, PrefixLoss, types.TypeFirstOrderLoss, []types.ReactionComponent{c}, nil)
}

func (b *builder) singleSpecies(obj document.Node, key, tag string) (types.ReactionComponent, *mechErrors.Error) {
	node := obj.Get(key)
	name, err := node.String()
	if err != nil {
		return types.ReactionComponent{}, &mechErrors.Error{
			Kind:     mechErrors.KindInvalidType,
			Message:  fmt.Sprintf("Expected '%s' to be a species name in '%s' reaction.", key, tag),
			Location: node.Location(),
		}
	}
	if err := b.knownSpecies([]schema.NamedNode{{Name: name, Node: node}}, tag); err != nil {
		return types.ReactionComponent{}, err
	}
	return types.ReactionComponent{Name: name, Coefficient: 1}, nil
}

func (b *builder) surface(obj document.Node) *mechErrors.Error {
	tag := types.TypeSurface
	required := []string{schema.KeyType, schema.KeyGasPhaseProducts, keyGasPhaseReactant, keyMusicaName}
	if err := first(schema.Validate(obj, required, []string{schema.KeyReactionProbability})); err != nil {
		return err
	}
	reactant, err := b.singleSpecies(obj, keyGasPhaseReactant, tag)
	if err != nil {
		return err
	}
	products, err := b.components(obj, schema.KeyGasPhaseProducts, keyYield, tag)
	if err != nil {
		return err
	}
	probability, err := number(obj, schema.KeyReactionProbability, tag, 1)
	if err != nil {
		return err
	}
	b.reactions.Surface = append(b.reactions.Surface, types.Surface{
		Name:                PrefixSurface + obj.Get(keyMusicaName).Str(),
		GasPhase:            GasPhase,
		GasPhaseSpecies:     reactant,
		GasPhaseProducts:    products,
		ReactionProbability: probability,
		UnknownProperties:   schema.Comments(obj),
	})
	return nil
}
