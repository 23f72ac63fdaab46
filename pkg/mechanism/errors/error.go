package errors

import (
	"fmt"
	"sort"
	"strings"

	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Error is a single configuration problem with its source position.
type Error struct {
	Kind       Kind           // Category of error
	Message    string         // Human readable text without position
	Location   types.Location // Source location (file, line, column)
	Context    string         // Surrounding source lines, if extracted
	Suggestion string         // Suggested fix (optional)
}

// Diagnostic renders the compact one-line form "file:line:col error: message".
func (e *Error) Diagnostic() string {
	if !e.Location.IsValid() {
		if e.Location.File != "" {
			return fmt.Sprintf("%s: error: %s", e.Location.File, e.Message)
		}
		return "error: " + e.Message
	}
	return fmt.Sprintf("%s error: %s", e.Location.String(), e.Message)
}

// Error implements the error interface with the multi-line rendering used by
// the CLI text output.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s\n", e.Kind, e.Message))

	if e.Location.IsValid() {
		sb.WriteString(fmt.Sprintf("  --> %s\n", e.Location.String()))
	}

	if e.Context != "" {
		sb.WriteString("  |\n")
		sb.WriteString(e.Context)
		sb.WriteString("  |\n")
	}

	if e.Suggestion != "" {
		sb.WriteString(fmt.Sprintf("  = suggestion: %s\n", e.Suggestion))
	}

	return sb.String()
}

// ErrorList accumulates errors across a validation run. Validators append to
// it rather than stopping at the first problem.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error.
func (el *ErrorList) AddError(kind Kind, message string, location types.Location) {
	el.Add(&Error{
		Kind:     kind,
		Message:  message,
		Location: location,
	})
}

// AddErrorf is AddError with a format string.
func (el *ErrorList) AddErrorf(kind Kind, location types.Location, format string, args ...any) {
	el.AddError(kind, fmt.Sprintf(format, args...), location)
}

// AddErrorWithSuggestion creates and adds a new error with a suggestion.
func (el *ErrorList) AddErrorWithSuggestion(kind Kind, message string, location types.Location, suggestion string) {
	el.Add(&Error{
		Kind:       kind,
		Message:    message,
		Location:   location,
		Suggestion: suggestion,
	})
}

// Merge appends every error of other. A nil other is ignored.
func (el *ErrorList) Merge(other *ErrorList) {
	if other == nil {
		return
	}
	el.Errors = append(el.Errors, other.Errors...)
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return el != nil && len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	if el == nil {
		return 0
	}
	return len(el.Errors)
}

// Error implements the error interface.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d error(s):\n\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("Error %d:\n", i+1))
		sb.WriteString(err.Error())
		sb.WriteString("\n")
	}

	return sb.String()
}

// Diagnostics returns the one-line form of every error, in order.
func (el *ErrorList) Diagnostics() []string {
	if el == nil {
		return nil
	}
	out := make([]string, 0, len(el.Errors))
	for _, err := range el.Errors {
		out = append(out, err.Diagnostic())
	}
	return out
}

// ToError returns nil if the error list is empty, otherwise returns the error list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByKind returns all errors of the given kind.
func (el *ErrorList) ByKind(kind Kind) []*Error {
	if el == nil {
		return nil
	}
	var result []*Error
	for _, err := range el.Errors {
		if err.Kind == kind {
			result = append(result, err)
		}
	}
	return result
}

// HasKind returns true if the list contains at least one error of the given kind.
func (el *ErrorList) HasKind(kind Kind) bool {
	if el == nil {
		return false
	}
	for _, err := range el.Errors {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

// Kinds returns the distinct kinds present in the list, sorted.
func (el *ErrorList) Kinds() []Kind {
	if el == nil {
		return nil
	}
	seen := make(map[Kind]struct{})
	for _, err := range el.Errors {
		seen[err.Kind] = struct{}{}
	}
	kinds := make([]Kind, 0, len(seen))
	for k := range seen {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// SetFile attaches a source path to every error that does not already carry one.
func (el *ErrorList) SetFile(file string) {
	if el == nil {
		return
	}
	for _, err := range el.Errors {
		if err.Location.File == "" {
			err.Location.File = file
		}
	}
}

// New returns a single-error list. It is used for the conditions that end a
// parse immediately, such as a missing file.
func New(kind Kind, message string, location types.Location) *ErrorList {
	el := NewErrorList()
	el.AddError(kind, message, location)
	return el
}
