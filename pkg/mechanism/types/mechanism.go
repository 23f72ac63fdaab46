package types

// Mechanism is the fully parsed configuration of one document (or one v0
// directory). It is built once by an assembler and not mutated afterwards.
type Mechanism struct {
	Schema    Schema    `json:"schema"`
	Name      string    `json:"name,omitempty"`
	Version   Version   `json:"version"`
	Species   []Species `json:"species"`
	Phases    []Phase   `json:"phases"`
	Reactions Reactions `json:"reactions"`
	Models    Models    `json:"models,omitempty"`

	// RelativeTolerance is only set by legacy v0 configurations.
	RelativeTolerance *float64 `json:"relative_tolerance,omitempty"`
}

// FindSpecies returns the species named name, if any.
func (m *Mechanism) FindSpecies(name string) (*Species, bool) {
	for i := range m.Species {
		if m.Species[i].Name == name {
			return &m.Species[i], true
		}
	}
	return nil, false
}

// FindPhase returns the phase named name, if any.
func (m *Mechanism) FindPhase(name string) (*Phase, bool) {
	return FindPhase(m.Phases, name)
}
