package document

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// SyntaxError is returned when a document is not well-formed YAML or JSON.
type SyntaxError struct {
	Location types.Location
	Message  string
}

func (e *SyntaxError) Error() string {
	if e.Location.IsValid() {
		return fmt.Sprintf("%s: %s", e.Location, e.Message)
	}
	if e.Location.File != "" {
		return fmt.Sprintf("%s: %s", e.Location.File, e.Message)
	}
	return e.Message
}

var yamlLineRe = regexp.MustCompile(`line (\d+)(?: column (\d+))?:\s*(.*)$`)

// LoadFile reads and parses a YAML or JSON file.
func LoadFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Node{}, err
	}
	return LoadBytes(data, path)
}

// LoadBytes parses YAML or JSON text. sourcePath is only used for positions.
// An empty document yields a null Node and no error.
func LoadBytes(data []byte, sourcePath string) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Node{}, newSyntaxError(err, sourcePath)
	}
	return Wrap(&doc, sourcePath), nil
}

func newSyntaxError(err error, file string) *SyntaxError {
	msg := err.Error()

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}

	se := &SyntaxError{Location: types.Location{File: file}, Message: msg}
	if m := yamlLineRe.FindStringSubmatch(msg); m != nil {
		se.Location.Line, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			se.Location.Column, _ = strconv.Atoi(m[2])
		}
		se.Message = m[3]
	}
	return se
}
