// Package v1 reads mechanism configurations with a 1.x version.
//
// A phase that references undeclared species is reported and left out of
// the phases reactions and models may use; validation then continues so
// that one run reports as much as possible.
package v1

import (
	"open-atmos/mechanism-configuration/pkg/mechanism/assembler"
	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/reactions"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Major is the version major read by this package.
const Major = 1

// New returns the v1 assembler.
func New() *assembler.Assembler {
	return assembler.New(assembler.Config{
		Dialect:         reactions.V1,
		Major:           Major,
		SpeciesOptional: assembler.SpeciesKeys,
	})
}

var std = New()

// Validate collects every error of a v1 document.
func Validate(root document.Node) *mechErrors.ErrorList {
	return std.Validate(root)
}

// Parse builds the mechanism from a document that passed Validate.
func Parse(root document.Node) *types.Mechanism {
	return std.Parse(root)
}

// ParseFile reads and parses a v1 document.
func ParseFile(path string) assembler.Result {
	return std.ParseFile(path)
}

// ParseBytes parses an in-memory v1 document.
func ParseBytes(data []byte, source string) assembler.Result {
	return std.ParseBytes(data, source)
}
