package types

import "fmt"

// Reaction type tags as they appear in the "type" field of a reaction.
const (
	TypeArrhenius                 = "ARRHENIUS"
	TypeBranched                  = "BRANCHED_NO_RO2"
	TypeCondensedPhaseArrhenius   = "CONDENSED_PHASE_ARRHENIUS"
	TypeCondensedPhasePhotolysis  = "CONDENSED_PHASE_PHOTOLYSIS"
	TypeEmission                  = "EMISSION"
	TypeFirstOrderLoss            = "FIRST_ORDER_LOSS"
	TypeSimpolPhaseTransfer       = "SIMPOL_PHASE_TRANSFER"
	TypeAqueousEquilibrium        = "AQUEOUS_EQUILIBRIUM"
	TypeWetDeposition             = "WET_DEPOSITION"
	TypeHenrysLaw                 = "HL_PHASE_TRANSFER"
	TypePhotolysis                = "PHOTOLYSIS"
	TypeSurface                   = "SURFACE"
	TypeTaylorSeries              = "TAYLOR_SERIES"
	TypeTroe                      = "TROE"
	TypeTernaryChemicalActivation = "TERNARY_CHEMICAL_ACTIVATION"
	TypeTunneling                 = "TUNNELING"
	TypeUserDefined               = "USER_DEFINED"
)

// Reaction is implemented by every reaction kind. The set of implementations
// is closed; Reactions.Add switches over it.
type Reaction interface {
	ReactionType() string
}

// Arrhenius: k = A exp(C/T) (T/D)^B (1 + E P).
type Arrhenius struct {
	Name              string              `json:"name,omitempty"`
	GasPhase          string              `json:"gas_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	Products          []ReactionComponent `json:"products"`
	A                 float64             `json:"A"`
	B                 float64             `json:"B"`
	C                 float64             `json:"C"`
	D                 float64             `json:"D"`
	E                 float64             `json:"E"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// Branched is the Wennberg NO + RO2 branched reaction.
type Branched struct {
	Name              string              `json:"name,omitempty"`
	GasPhase          string              `json:"gas_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	NitrateProducts   []ReactionComponent `json:"nitrate_products"`
	AlkoxyProducts    []ReactionComponent `json:"alkoxy_products"`
	X                 float64             `json:"X"`
	Y                 float64             `json:"Y"`
	A0                float64             `json:"a0"`
	N                 int                 `json:"n"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// CondensedPhaseArrhenius is an Arrhenius reaction in a condensed phase.
type CondensedPhaseArrhenius struct {
	Name              string              `json:"name,omitempty"`
	CondensedPhase    string              `json:"condensed_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	Products          []ReactionComponent `json:"products"`
	A                 float64             `json:"A"`
	B                 float64             `json:"B"`
	C                 float64             `json:"C"`
	D                 float64             `json:"D"`
	E                 float64             `json:"E"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// CondensedPhasePhotolysis is a photolysis reaction in a condensed phase.
type CondensedPhasePhotolysis struct {
	Name              string              `json:"name,omitempty"`
	CondensedPhase    string              `json:"condensed_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	Products          []ReactionComponent `json:"products"`
	ScalingFactor     float64             `json:"scaling_factor"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// Emission is a source term for gas-phase products.
type Emission struct {
	Name              string              `json:"name,omitempty"`
	GasPhase          string              `json:"gas_phase"`
	Products          []ReactionComponent `json:"products"`
	ScalingFactor     float64             `json:"scaling_factor"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// FirstOrderLoss removes a single gas-phase reactant.
type FirstOrderLoss struct {
	Name              string              `json:"name,omitempty"`
	GasPhase          string              `json:"gas_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	ScalingFactor     float64             `json:"scaling_factor"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// SimpolPhaseTransfer moves one species between a gas and a condensed phase.
type SimpolPhaseTransfer struct {
	Name                  string              `json:"name,omitempty"`
	GasPhase              string              `json:"gas_phase"`
	GasPhaseSpecies       []ReactionComponent `json:"gas_phase_species"`
	CondensedPhase        string              `json:"condensed_phase"`
	CondensedPhaseSpecies []ReactionComponent `json:"condensed_phase_species"`
	B                     [4]float64          `json:"B"`
	UnknownProperties     map[string]string   `json:"unknown_properties,omitempty"`
}

// AqueousEquilibrium is a reversible reaction in an aqueous phase.
type AqueousEquilibrium struct {
	Name                string              `json:"name,omitempty"`
	CondensedPhase      string              `json:"condensed_phase"`
	CondensedPhaseWater string              `json:"condensed_phase_water"`
	Reactants           []ReactionComponent `json:"reactants"`
	Products            []ReactionComponent `json:"products"`
	A                   float64             `json:"A"`
	C                   float64             `json:"C"`
	KReverse            float64             `json:"k_reverse"`
	UnknownProperties   map[string]string   `json:"unknown_properties,omitempty"`
}

// WetDeposition removes a condensed phase by precipitation.
type WetDeposition struct {
	Name              string            `json:"name,omitempty"`
	CondensedPhase    string            `json:"condensed_phase"`
	ScalingFactor     float64           `json:"scaling_factor"`
	UnknownProperties map[string]string `json:"unknown_properties,omitempty"`
}

// HenrysLawParticle is the condensed side of a Henry's law transfer.
type HenrysLawParticle struct {
	Phase   string              `json:"phase"`
	Solutes []ReactionComponent `json:"solutes"`
	Solvent []ReactionComponent `json:"solvent"`
}

// HenrysLaw is a gas/particle phase transfer following Henry's law.
type HenrysLaw struct {
	Name              string            `json:"name,omitempty"`
	Gas               Phase             `json:"gas"`
	Particle          HenrysLawParticle `json:"particle"`
	UnknownProperties map[string]string `json:"unknown_properties,omitempty"`
}

// Photolysis is a gas-phase photodissociation with a single reactant.
type Photolysis struct {
	Name              string              `json:"name,omitempty"`
	GasPhase          string              `json:"gas_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	Products          []ReactionComponent `json:"products"`
	ScalingFactor     float64             `json:"scaling_factor"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// Surface is a heterogeneous reaction of a gas-phase species on a condensed surface.
type Surface struct {
	Name                string              `json:"name,omitempty"`
	GasPhase            string              `json:"gas_phase"`
	GasPhaseSpecies     ReactionComponent   `json:"gas_phase_species"`
	GasPhaseProducts    []ReactionComponent `json:"gas_phase_products"`
	CondensedPhase      string              `json:"condensed_phase"`
	ReactionProbability float64             `json:"reaction_probability"`
	UnknownProperties   map[string]string   `json:"unknown_properties,omitempty"`
}

// TaylorSeries extends Arrhenius with a polynomial in temperature.
type TaylorSeries struct {
	Name               string              `json:"name,omitempty"`
	GasPhase           string              `json:"gas_phase"`
	Reactants          []ReactionComponent `json:"reactants"`
	Products           []ReactionComponent `json:"products"`
	A                  float64             `json:"A"`
	B                  float64             `json:"B"`
	C                  float64             `json:"C"`
	D                  float64             `json:"D"`
	E                  float64             `json:"E"`
	TaylorCoefficients []float64           `json:"taylor_coefficients"`
	UnknownProperties  map[string]string   `json:"unknown_properties,omitempty"`
}

// Troe is a pressure-dependent falloff reaction.
type Troe struct {
	Name              string              `json:"name,omitempty"`
	GasPhase          string              `json:"gas_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	Products          []ReactionComponent `json:"products"`
	K0A               float64             `json:"k0_A"`
	K0B               float64             `json:"k0_B"`
	K0C               float64             `json:"k0_C"`
	KinfA             float64             `json:"kinf_A"`
	KinfB             float64             `json:"kinf_B"`
	KinfC             float64             `json:"kinf_C"`
	Fc                float64             `json:"Fc"`
	N                 float64             `json:"N"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// TernaryChemicalActivation shares Troe's parameterization.
type TernaryChemicalActivation struct {
	Name              string              `json:"name,omitempty"`
	GasPhase          string              `json:"gas_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	Products          []ReactionComponent `json:"products"`
	K0A               float64             `json:"k0_A"`
	K0B               float64             `json:"k0_B"`
	K0C               float64             `json:"k0_C"`
	KinfA             float64             `json:"kinf_A"`
	KinfB             float64             `json:"kinf_B"`
	KinfC             float64             `json:"kinf_C"`
	Fc                float64             `json:"Fc"`
	N                 float64             `json:"N"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// Tunneling is the Wennberg tunneling rate form.
type Tunneling struct {
	Name              string              `json:"name,omitempty"`
	GasPhase          string              `json:"gas_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	Products          []ReactionComponent `json:"products"`
	A                 float64             `json:"A"`
	B                 float64             `json:"B"`
	C                 float64             `json:"C"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

// UserDefined has its rate supplied externally, scaled by ScalingFactor.
type UserDefined struct {
	Name              string              `json:"name,omitempty"`
	GasPhase          string              `json:"gas_phase"`
	Reactants         []ReactionComponent `json:"reactants"`
	Products          []ReactionComponent `json:"products"`
	ScalingFactor     float64             `json:"scaling_factor"`
	UnknownProperties map[string]string   `json:"unknown_properties,omitempty"`
}

func (Arrhenius) ReactionType() string                 { return TypeArrhenius }
func (Branched) ReactionType() string                  { return TypeBranched }
func (CondensedPhaseArrhenius) ReactionType() string   { return TypeCondensedPhaseArrhenius }
func (CondensedPhasePhotolysis) ReactionType() string  { return TypeCondensedPhasePhotolysis }
func (Emission) ReactionType() string                  { return TypeEmission }
func (FirstOrderLoss) ReactionType() string            { return TypeFirstOrderLoss }
func (SimpolPhaseTransfer) ReactionType() string       { return TypeSimpolPhaseTransfer }
func (AqueousEquilibrium) ReactionType() string        { return TypeAqueousEquilibrium }
func (WetDeposition) ReactionType() string             { return TypeWetDeposition }
func (HenrysLaw) ReactionType() string                 { return TypeHenrysLaw }
func (Photolysis) ReactionType() string                { return TypePhotolysis }
func (Surface) ReactionType() string                   { return TypeSurface }
func (TaylorSeries) ReactionType() string              { return TypeTaylorSeries }
func (Troe) ReactionType() string                      { return TypeTroe }
func (TernaryChemicalActivation) ReactionType() string { return TypeTernaryChemicalActivation }
func (Tunneling) ReactionType() string                 { return TypeTunneling }
func (UserDefined) ReactionType() string               { return TypeUserDefined }

// Reactions holds every parsed reaction, grouped by kind in document order.
type Reactions struct {
	Arrhenius                 []Arrhenius                 `json:"arrhenius,omitempty"`
	Branched                  []Branched                  `json:"branched,omitempty"`
	CondensedPhaseArrhenius   []CondensedPhaseArrhenius   `json:"condensed_phase_arrhenius,omitempty"`
	CondensedPhasePhotolysis  []CondensedPhasePhotolysis  `json:"condensed_phase_photolysis,omitempty"`
	Emission                  []Emission                  `json:"emission,omitempty"`
	FirstOrderLoss            []FirstOrderLoss            `json:"first_order_loss,omitempty"`
	SimpolPhaseTransfer       []SimpolPhaseTransfer       `json:"simpol_phase_transfer,omitempty"`
	AqueousEquilibrium        []AqueousEquilibrium        `json:"aqueous_equilibrium,omitempty"`
	WetDeposition             []WetDeposition             `json:"wet_deposition,omitempty"`
	HenrysLaw                 []HenrysLaw                 `json:"henrys_law,omitempty"`
	Photolysis                []Photolysis                `json:"photolysis,omitempty"`
	Surface                   []Surface                   `json:"surface,omitempty"`
	TaylorSeries              []TaylorSeries              `json:"taylor_series,omitempty"`
	Troe                      []Troe                      `json:"troe,omitempty"`
	TernaryChemicalActivation []TernaryChemicalActivation `json:"ternary_chemical_activation,omitempty"`
	Tunneling                 []Tunneling                 `json:"tunneling,omitempty"`
	UserDefined               []UserDefined               `json:"user_defined,omitempty"`
}

// Add appends r to the slice for its kind.
func (rs *Reactions) Add(r Reaction) error {
	switch v := r.(type) {
	case Arrhenius:
		rs.Arrhenius = append(rs.Arrhenius, v)
	case Branched:
		rs.Branched = append(rs.Branched, v)
	case CondensedPhaseArrhenius:
		rs.CondensedPhaseArrhenius = append(rs.CondensedPhaseArrhenius, v)
	case CondensedPhasePhotolysis:
		rs.CondensedPhasePhotolysis = append(rs.CondensedPhasePhotolysis, v)
	case Emission:
		rs.Emission = append(rs.Emission, v)
	case FirstOrderLoss:
		rs.FirstOrderLoss = append(rs.FirstOrderLoss, v)
	case SimpolPhaseTransfer:
		rs.SimpolPhaseTransfer = append(rs.SimpolPhaseTransfer, v)
	case AqueousEquilibrium:
		rs.AqueousEquilibrium = append(rs.AqueousEquilibrium, v)
	case WetDeposition:
		rs.WetDeposition = append(rs.WetDeposition, v)
	case HenrysLaw:
		rs.HenrysLaw = append(rs.HenrysLaw, v)
	case Photolysis:
		rs.Photolysis = append(rs.Photolysis, v)
	case Surface:
		rs.Surface = append(rs.Surface, v)
	case TaylorSeries:
		rs.TaylorSeries = append(rs.TaylorSeries, v)
	case Troe:
		rs.Troe = append(rs.Troe, v)
	case TernaryChemicalActivation:
		rs.TernaryChemicalActivation = append(rs.TernaryChemicalActivation, v)
	case Tunneling:
		rs.Tunneling = append(rs.Tunneling, v)
	case UserDefined:
		rs.UserDefined = append(rs.UserDefined, v)
	default:
		return fmt.Errorf("unsupported reaction value %T", r)
	}
	return nil
}

// Count returns the total number of reactions of every kind.
func (rs *Reactions) Count() int {
	return len(rs.Arrhenius) + len(rs.Branched) + len(rs.CondensedPhaseArrhenius) +
		len(rs.CondensedPhasePhotolysis) + len(rs.Emission) + len(rs.FirstOrderLoss) +
		len(rs.SimpolPhaseTransfer) + len(rs.AqueousEquilibrium) + len(rs.WetDeposition) +
		len(rs.HenrysLaw) + len(rs.Photolysis) + len(rs.Surface) + len(rs.TaylorSeries) +
		len(rs.Troe) + len(rs.TernaryChemicalActivation) + len(rs.Tunneling) + len(rs.UserDefined)
}

// CountByType returns the number of reactions per type tag, omitting empty kinds.
func (rs *Reactions) CountByType() map[string]int {
	counts := map[string]int{
		TypeArrhenius:                 len(rs.Arrhenius),
		TypeBranched:                  len(rs.Branched),
		TypeCondensedPhaseArrhenius:   len(rs.CondensedPhaseArrhenius),
		TypeCondensedPhasePhotolysis:  len(rs.CondensedPhasePhotolysis),
		TypeEmission:                  len(rs.Emission),
		TypeFirstOrderLoss:            len(rs.FirstOrderLoss),
		TypeSimpolPhaseTransfer:       len(rs.SimpolPhaseTransfer),
		TypeAqueousEquilibrium:        len(rs.AqueousEquilibrium),
		TypeWetDeposition:             len(rs.WetDeposition),
		TypeHenrysLaw:                 len(rs.HenrysLaw),
		TypePhotolysis:                len(rs.Photolysis),
		TypeSurface:                   len(rs.Surface),
		TypeTaylorSeries:              len(rs.TaylorSeries),
		TypeTroe:                      len(rs.Troe),
		TypeTernaryChemicalActivation: len(rs.TernaryChemicalActivation),
		TypeTunneling:                 len(rs.Tunneling),
		TypeUserDefined:               len(rs.UserDefined),
	}
	for k, v := range counts {
		if v == 0 {
			delete(counts, k)
		}
	}
	return counts
}
