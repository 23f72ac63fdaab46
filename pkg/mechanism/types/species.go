package types

// Species is a chemical species declared at mechanism level.
// Optional physical attributes are nil when the document omits them.
type Species struct {
	Name string `json:"name"`

	MolecularWeight                    *float64 `json:"molecular_weight,omitempty"`
	AbsoluteTolerance                  *float64 `json:"absolute_tolerance,omitempty"`
	DiffusionCoefficient               *float64 `json:"diffusion_coefficient,omitempty"`
	HenrysLawConstant298               *float64 `json:"henrys_law_constant_298,omitempty"`
	HenrysLawConstantExponentialFactor *float64 `json:"henrys_law_constant_exponential_factor,omitempty"`
	NStar                              *float64 `json:"n_star,omitempty"`
	Density                            *float64 `json:"density,omitempty"`
	TracerType                         *string  `json:"tracer_type,omitempty"`
	ConstantConcentration              *float64 `json:"constant_concentration,omitempty"`
	ConstantMixingRatio                *float64 `json:"constant_mixing_ratio,omitempty"`
	IsThirdBody                        *bool    `json:"is_third_body,omitempty"`

	UnknownProperties map[string]string `json:"unknown_properties,omitempty"`
}

// PhaseSpecies is a reference to a Species from inside a Phase.
type PhaseSpecies struct {
	Name                 string            `json:"name"`
	DiffusionCoefficient *float64          `json:"diffusion_coefficient,omitempty"`
	UnknownProperties    map[string]string `json:"unknown_properties,omitempty"`
}

// Phase is a named chemical compartment holding a subset of the species.
type Phase struct {
	Name              string            `json:"name"`
	Species           []PhaseSpecies    `json:"species"`
	UnknownProperties map[string]string `json:"unknown_properties,omitempty"`
}

// SpeciesNames returns the names of the species in the phase, in order.
func (p Phase) SpeciesNames() []string {
	names := make([]string, 0, len(p.Species))
	for _, s := range p.Species {
		names = append(names, s.Name)
	}
	return names
}

// HasSpecies reports whether name is a member of the phase.
func (p Phase) HasSpecies(name string) bool {
	for _, s := range p.Species {
		if s.Name == name {
			return true
		}
	}
	return false
}

// ReactionComponent is a (species, stoichiometric coefficient) pair.
type ReactionComponent struct {
	Name              string            `json:"name"`
	Coefficient       float64           `json:"coefficient"`
	UnknownProperties map[string]string `json:"unknown_properties,omitempty"`
}

// SpeciesNames returns the names of all species in a species list.
func SpeciesNames(species []Species) []string {
	names := make([]string, 0, len(species))
	for _, s := range species {
		names = append(names, s.Name)
	}
	return names
}

// PhaseNames returns the names of all phases in a phase list.
func PhaseNames(phases []Phase) []string {
	names := make([]string, 0, len(phases))
	for _, p := range phases {
		names = append(names, p.Name)
	}
	return names
}

// FindPhase returns the phase named name, if any.
func FindPhase(phases []Phase, name string) (*Phase, bool) {
	for i := range phases {
		if phases[i].Name == name {
			return &phases[i], true
		}
	}
	return nil, false
}
