package types

import "fmt"

// Location is the source position of a document node.
// Line and Column are 1-based; File may be empty for in-memory documents.
type Location struct {
	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

// String returns "file:line:column", or "line:column" when no file is known.
func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// IsValid returns true if the location carries line information.
func (l Location) IsValid() bool {
	return l.Line > 0
}

// WithFile returns a copy of the location attributed to file.
func (l Location) WithFile(file string) Location {
	l.File = file
	return l
}
