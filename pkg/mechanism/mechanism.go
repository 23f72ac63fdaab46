// Package mechanism parses and validates atmospheric chemistry mechanism
// configurations.
//
// The functions here cover the common cases with a default parser. Use
// package parser directly to set a logger, a tracer or a size limit.
package mechanism

import (
	"context"

	"open-atmos/mechanism-configuration/pkg/mechanism/parser"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Result is the outcome of parsing one configuration.
type Result = parser.Result

// ParseFile parses the configuration at path, which may be a v1 or
// development document or a legacy v0 directory or config file.
func ParseFile(path string) Result {
	return parser.New().Parse(path)
}

// ParseBytes parses an in-memory v1 or development document.
func ParseBytes(data []byte, source string) Result {
	return parser.New().ParseBytes(context.Background(), data, source)
}

// ValidateFile reports every problem with the configuration at path. It
// returns nil when the configuration is valid.
func ValidateFile(path string) error {
	return ParseFile(path).Errors.ToError()
}

// Load is ParseFile for callers that only want the mechanism.
func Load(path string) (*types.Mechanism, error) {
	res := ParseFile(path)
	if err := res.Errors.ToError(); err != nil {
		return nil, err
	}
	return res.Mechanism, nil
}
