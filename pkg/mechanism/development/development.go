// Package development reads mechanism configurations with a 2.x version.
//
// Validation is strict: any phase failure ends the run before reactions and
// models are checked.
package development

import (
	"open-atmos/mechanism-configuration/pkg/mechanism/assembler"
	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/reactions"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Major is the version major read by this package.
const Major = 2

// New returns the development assembler.
func New() *assembler.Assembler {
	return assembler.New(assembler.Config{
		Dialect:         reactions.Development,
		Major:           Major,
		SpeciesOptional: append(append([]string(nil), assembler.SpeciesKeys...), assembler.BoundaryKeys...),
		StrictPhases:    true,
	})
}

var std = New()

// Validate collects every error of a development document.
func Validate(root document.Node) *mechErrors.ErrorList {
	return std.Validate(root)
}

// Parse builds the mechanism from a document that passed Validate.
func Parse(root document.Node) *types.Mechanism {
	return std.Parse(root)
}

// ParseFile reads and parses a development document.
func ParseFile(path string) assembler.Result {
	return std.ParseFile(path)
}

// ParseBytes parses an in-memory development document.
func ParseBytes(data []byte, source string) assembler.Result {
	return std.ParseBytes(data, source)
}
