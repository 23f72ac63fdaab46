package types

// Model type tags.
const (
	ModelTypeGasPhase = "GAS_PHASE"
	ModelTypeModal    = "MODAL"
)

// Model is implemented by every aerosol model kind.
type Model interface {
	ModelType() string
}

// GasModel describes a single gas phase.
type GasModel struct {
	Name              string            `json:"name,omitempty"`
	Type              string            `json:"type"`
	Phase             string            `json:"phase"`
	UnknownProperties map[string]string `json:"unknown_properties,omitempty"`
}

// Mode is one log-normal mode of a modal aerosol distribution.
type Mode struct {
	Name                       string            `json:"name"`
	GeometricMeanDiameter      float64           `json:"geometric_mean_diameter"`
	GeometricStandardDeviation float64           `json:"geometric_standard_deviation"`
	Phase                      string            `json:"phase"`
	UnknownProperties          map[string]string `json:"unknown_properties,omitempty"`
}

// ModalModel is a multi-mode aerosol representation.
type ModalModel struct {
	Name              string            `json:"name,omitempty"`
	Type              string            `json:"type"`
	Modes             []Mode            `json:"modes"`
	UnknownProperties map[string]string `json:"unknown_properties,omitempty"`
}

func (GasModel) ModelType() string   { return ModelTypeGasPhase }
func (ModalModel) ModelType() string { return ModelTypeModal }

// Models is the optional aerosol model aggregate of a mechanism.
type Models struct {
	GasModel   *GasModel   `json:"gas_model,omitempty"`
	ModalModel *ModalModel `json:"modal_model,omitempty"`
}

// Set stores m in the slot for its kind. A later model of the same kind
// replaces an earlier one.
func (ms *Models) Set(m Model) {
	switch v := m.(type) {
	case GasModel:
		ms.GasModel = &v
	case ModalModel:
		ms.ModalModel = &v
	}
}

// IsEmpty reports whether no model was configured.
func (ms Models) IsEmpty() bool {
	return ms.GasModel == nil && ms.ModalModel == nil
}
