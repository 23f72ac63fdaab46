package schema

// Document keys shared by the v1 and development schema lines.
const (
	KeyVersion   = "version"
	KeyName      = "name"
	KeySpecies   = "species"
	KeyPhases    = "phases"
	KeyReactions = "reactions"
	KeyModels    = "models"
	KeyType      = "type"

	// Species attributes.
	KeyAbsoluteTolerance                  = "absolute tolerance"
	KeyDiffusionCoefficient               = "diffusion coefficient [m2 s-1]"
	KeyMolecularWeight                    = "molecular weight [kg mol-1]"
	KeyHenrysLawConstant298               = "HLC(298K) [mol m-3 Pa-1]"
	KeyHenrysLawConstantExponentialFactor = "HLC exponential factor [K]"
	KeyNStar                              = "N star"
	KeyDensity                            = "density [kg m-3]"
	KeyTracerType                         = "tracer type"
	KeyConstantConcentration              = "constant concentration [mol m-3]"
	KeyConstantMixingRatio                = "constant mixing ratio [mol mol-1]"
	KeyIsThirdBody                        = "is third body"

	// TracerThirdBody is the tracer type that marks a third-body species.
	TracerThirdBody = "THIRD_BODY"

	// Reaction components.
	KeySpeciesName = "species name"
	KeyCoefficient = "coefficient"
	KeyReactants   = "reactants"
	KeyProducts    = "products"

	// Phases referenced by reactions and models.
	KeyGasPhase              = "gas phase"
	KeyCondensedPhase        = "condensed phase"
	KeyPhase                 = "phase"
	KeyGasPhaseSpecies       = "gas-phase species"
	KeyGasPhaseProducts      = "gas-phase products"
	KeyCondensedPhaseSpecies = "condensed-phase species"
	KeyCondensedPhaseWater   = "condensed-phase water"

	// Rate parameters.
	KeyA                   = "A"
	KeyB                   = "B"
	KeyC                   = "C"
	KeyD                   = "D"
	KeyE                   = "E"
	KeyEa                  = "Ea"
	KeyTaylorCoefficients  = "taylor coefficients"
	KeyK0A                 = "k0_A"
	KeyK0B                 = "k0_B"
	KeyK0C                 = "k0_C"
	KeyKinfA               = "kinf_A"
	KeyKinfB               = "kinf_B"
	KeyKinfC               = "kinf_C"
	KeyFc                  = "Fc"
	KeyN                   = "N"
	KeyX                   = "X"
	KeyY                   = "Y"
	KeyA0                  = "a0"
	KeyLowerN              = "n"
	KeyNitrateProducts     = "nitrate products"
	KeyAlkoxyProducts      = "alkoxy products"
	KeyScalingFactor       = "scaling factor"
	KeyReactionProbability = "reaction probability"
	KeyKReverse            = "k_reverse"

	// Henry's law phase transfer.
	KeyGas      = "gas"
	KeyParticle = "particle"
	KeySolutes  = "solutes"
	KeySolvent  = "solvent"

	// Models.
	KeyModes                      = "modes"
	KeyGeometricMeanDiameter      = "geometric mean diameter [m]"
	KeyGeometricStandardDeviation = "geometric standard deviation"
)
