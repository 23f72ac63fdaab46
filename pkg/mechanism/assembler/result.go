package assembler

import (
	"errors"
	"fmt"
	"io/fs"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Result is the outcome of parsing one configuration.
type Result struct {
	Mechanism *types.Mechanism
	Errors    *mechErrors.ErrorList
	Schema    types.Schema
}

// OK reports whether a mechanism was produced without errors.
func (r Result) OK() bool {
	return r.Mechanism != nil && !r.Errors.HasErrors()
}

// Failed returns a result carrying only errs.
func Failed(schema types.Schema, errs *mechErrors.ErrorList) Result {
	return Result{Errors: errs, Schema: schema}
}

// LoadError converts a document loading failure into a single-error list.
func LoadError(path string, err error) *mechErrors.ErrorList {
	if errors.Is(err, fs.ErrNotExist) {
		return FileNotFound(path)
	}
	var se *document.SyntaxError
	if errors.As(err, &se) {
		return mechErrors.New(mechErrors.KindUnexpectedError,
			fmt.Sprintf("Malformed document: %s", se.Message), se.Location)
	}
	return mechErrors.New(mechErrors.KindUnexpectedError, err.Error(), types.Location{File: path})
}

// FileNotFound is the single-error list for a missing path.
func FileNotFound(path string) *mechErrors.ErrorList {
	return mechErrors.New(mechErrors.KindFileNotFound,
		fmt.Sprintf("File not found: '%s'.", path),
		types.Location{File: path})
}
