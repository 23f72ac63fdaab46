package errors

// Kind categorizes a configuration problem. The set is closed: every error
// produced by the validators and assemblers carries one of these kinds.
type Kind string

const (
	KindSuccess         Kind = "Success"
	KindNone            Kind = "None"
	KindUnexpectedError Kind = "UnexpectedError"

	KindInvalidKey              Kind = "InvalidKey"
	KindUnknownKey              Kind = "UnknownKey"
	KindEmptyObject             Kind = "EmptyObject"
	KindObjectTypeNotFound      Kind = "ObjectTypeNotFound"
	KindRequiredKeyNotFound     Kind = "RequiredKeyNotFound"
	KindMutuallyExclusiveOption Kind = "MutuallyExclusiveOption"

	KindInvalidFilePath Kind = "InvalidFilePath"
	KindFileNotFound    Kind = "FileNotFound"

	KindDuplicateSpeciesDetected        Kind = "DuplicateSpeciesDetected"
	KindDuplicatePhasesDetected         Kind = "DuplicatePhasesDetected"
	KindDuplicateSpeciesInPhaseDetected Kind = "DuplicateSpeciesInPhaseDetected"

	KindPhaseRequiresUnknownSpecies          Kind = "PhaseRequiresUnknownSpecies"
	KindReactionRequiresUnknownSpecies       Kind = "ReactionRequiresUnknownSpecies"
	KindUnknownSpecies                       Kind = "UnknownSpecies"
	KindUnknownPhase                         Kind = "UnknownPhase"
	KindRequestedSpeciesNotRegisteredInPhase Kind = "RequestedSpeciesNotRegisteredInPhase"

	KindTooManyReactionComponents Kind = "TooManyReactionComponents"
	KindInvalidIonPair            Kind = "InvalidIonPair"
	KindInvalidParameterNumber    Kind = "InvalidParameterNumber"

	KindInvalidVersion      Kind = "InvalidVersion"
	KindMissingVersionField Kind = "MissingVersionField"

	KindInvalidType Kind = "InvalidType"
	KindUnknownType Kind = "UnknownType"
)

var allKinds = []Kind{
	KindSuccess, KindNone, KindUnexpectedError,
	KindInvalidKey, KindUnknownKey, KindEmptyObject, KindObjectTypeNotFound,
	KindRequiredKeyNotFound, KindMutuallyExclusiveOption,
	KindInvalidFilePath, KindFileNotFound,
	KindDuplicateSpeciesDetected, KindDuplicatePhasesDetected, KindDuplicateSpeciesInPhaseDetected,
	KindPhaseRequiresUnknownSpecies, KindReactionRequiresUnknownSpecies, KindUnknownSpecies,
	KindUnknownPhase, KindRequestedSpeciesNotRegisteredInPhase,
	KindTooManyReactionComponents, KindInvalidIonPair, KindInvalidParameterNumber,
	KindInvalidVersion, KindMissingVersionField,
	KindInvalidType, KindUnknownType,
}

// AllKinds returns every defined kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	for _, known := range allKinds {
		if k == known {
			return true
		}
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}
