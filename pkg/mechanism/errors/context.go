package errors

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// ExtractContext reads the configuration file named by location and renders
// contextLines lines on either side of it, marking the offending line with
// "->" and the column with a caret.
func ExtractContext(location types.Location, contextLines int) string {
	if !location.IsValid() || location.File == "" {
		return ""
	}

	file, err := os.Open(location.File)
	if err != nil {
		return ""
	}
	defer file.Close()

	return extractContext(file, location, contextLines)
}

// ExtractContextFromSource is ExtractContext over an in-memory document.
func ExtractContextFromSource(source []byte, location types.Location, contextLines int) string {
	if !location.IsValid() {
		return ""
	}
	return extractContext(bytes.NewReader(source), location, contextLines)
}

func extractContext(r io.Reader, location types.Location, contextLines int) string {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return ""
	}

	errorLine := location.Line - 1
	if errorLine >= len(lines) {
		return ""
	}
	startLine := max(errorLine-contextLines, 0)
	endLine := min(errorLine+contextLines, len(lines)-1)

	var sb strings.Builder
	width := len(fmt.Sprintf("%d", endLine+1))

	for i := startLine; i <= endLine; i++ {
		prefix := "  "
		if i == errorLine {
			prefix = "->"
		}
		sb.WriteString(fmt.Sprintf("%s %*d | %s\n", prefix, width, i+1, lines[i]))

		if i == errorLine && location.Column > 0 {
			sb.WriteString(fmt.Sprintf("   %s | %s^\n", strings.Repeat(" ", width), strings.Repeat(" ", location.Column-1)))
		}
	}

	return sb.String()
}

// WithContext fills err.Context from the file named in its location.
func WithContext(err *Error, contextLines int) *Error {
	if err.Location.IsValid() {
		err.Context = ExtractContext(err.Location, contextLines)
	}
	return err
}

// AddContext fills the context of every error whose file can be read.
func (el *ErrorList) AddContext(contextLines int) {
	if el == nil {
		return
	}
	cache := make(map[string][]byte)
	for _, err := range el.Errors {
		if !err.Location.IsValid() || err.Location.File == "" {
			continue
		}
		src, ok := cache[err.Location.File]
		if !ok {
			data, readErr := os.ReadFile(err.Location.File)
			if readErr != nil {
				data = nil
			}
			cache[err.Location.File] = data
			src = data
		}
		if src != nil {
			err.Context = ExtractContextFromSource(src, err.Location, contextLines)
		}
	}
}
