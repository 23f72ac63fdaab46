package v0

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"open-atmos/mechanism-configuration/pkg/mechanism/assembler"
	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

const (
	keyCampFiles = "camp-files"
	keyCampData  = "camp-data"
)

// GasPhase is the name of the phase every v0 species is placed in.
const GasPhase = "gas"

// ConfigNames are the file names looked up when Parse is given a directory,
// in order of preference.
var ConfigNames = []string{"config.json", "config.yaml", "config.yml"}

// Parser reads legacy configurations.
type Parser struct {
	logger *slog.Logger
}

// New creates a parser that reports violations to logger.
// A nil logger uses slog.Default().
func New(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{logger: logger}
}

// Parse reads the configuration at path, which is either a directory
// holding a config file or the config file itself.
func (p *Parser) Parse(path string) assembler.Result {
	configPath, err := resolveConfig(path)
	if err != nil {
		return p.fail(err)
	}

	config, loadErr := document.LoadFile(configPath)
	if loadErr != nil {
		return p.fail(assembler.LoadError(configPath, loadErr).Errors[0])
	}

	files, err := campFiles(config, filepath.Dir(configPath))
	if err != nil {
		return p.fail(err)
	}

	b := newBuilder()
	docs := make([]document.Node, 0, len(files))
	for _, file := range files {
		root, loadErr := document.LoadFile(file)
		if loadErr != nil {
			return p.fail(assembler.LoadError(file, loadErr).Errors[0])
		}
		docs = append(docs, root)
	}

	// Species first, so reactions may refer to species from any file.
	for _, root := range docs {
		if err := b.readSpecies(root); err != nil {
			return p.fail(err)
		}
	}
	for _, root := range docs {
		if err := b.readMechanisms(root); err != nil {
			return p.fail(err)
		}
	}

	m := b.mechanism()
	p.logger.Debug("parsed v0 configuration",
		"path", configPath,
		"files", len(files),
		"species", len(m.Species),
		"reactions", m.Reactions.Count(),
	)
	return assembler.Result{Mechanism: m, Errors: mechErrors.NewErrorList(), Schema: types.SchemaV0}
}

func (p *Parser) fail(err *mechErrors.Error) assembler.Result {
	p.logger.Error("invalid v0 configuration",
		"kind", err.Kind,
		"location", err.Location.String(),
		"error", err.Message,
	)
	errs := mechErrors.NewErrorList()
	errs.Add(err)
	return assembler.Failed(types.SchemaV0, errs)
}

// Parse reads the configuration at path with a parser that logs to
// slog.Default().
func Parse(path string) assembler.Result {
	return New(nil).Parse(path)
}

// IsConfig reports whether root looks like a v0 config file.
func IsConfig(root document.Node) bool {
	return root.Has(keyCampFiles)
}

// ListedFiles returns the camp files named by the v0 configuration at path
// (a config file or a directory holding one), resolved against the config's
// directory. It returns nil when path is not a readable v0 configuration.
// Listed files need not exist.
func ListedFiles(path string) []string {
	configPath, cerr := resolveConfig(path)
	if cerr != nil {
		return nil
	}
	root, err := document.LoadFile(configPath)
	if err != nil || !IsConfig(root) {
		return nil
	}
	dir := filepath.Dir(configPath)
	var files []string
	for _, item := range root.Get(keyCampFiles).Items() {
		rel, err := item.String()
		if err != nil || rel == "" {
			continue
		}
		if !filepath.IsAbs(rel) {
			rel = filepath.Join(dir, rel)
		}
		files = append(files, rel)
	}
	return files
}

func resolveConfig(path string) (string, *mechErrors.Error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", notFound(path)
	}
	if !info.IsDir() {
		return path, nil
	}
	for _, name := range ConfigNames {
		candidate := filepath.Join(path, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", notFound(filepath.Join(path, ConfigNames[0]))
}

func campFiles(config document.Node, dir string) ([]string, *mechErrors.Error) {
	if !config.Has(keyCampFiles) {
		return nil, &mechErrors.Error{
			Kind:       mechErrors.KindRequiredKeyNotFound,
			Message:    fmt.Sprintf("Required key '%s' is missing.", keyCampFiles),
			Location:   config.Location(),
			Suggestion: mechErrors.SuggestMissingKey(keyCampFiles),
		}
	}

	list := config.Get(keyCampFiles)
	if !list.IsSequence() {
		return nil, &mechErrors.Error{
			Kind:     mechErrors.KindInvalidType,
			Message:  fmt.Sprintf("Expected '%s' to be a sequence of paths.", keyCampFiles),
			Location: list.Location(),
		}
	}
	if list.Len() == 0 {
		return nil, &mechErrors.Error{
			Kind:     mechErrors.KindInvalidFilePath,
			Message:  fmt.Sprintf("No files listed in '%s'.", keyCampFiles),
			Location: list.Location(),
		}
	}

	files := make([]string, 0, list.Len())
	for _, item := range list.Items() {
		rel, err := item.String()
		if err != nil || rel == "" {
			return nil, &mechErrors.Error{
				Kind:     mechErrors.KindInvalidFilePath,
				Message:  fmt.Sprintf("Invalid path '%s' in '%s'.", item.Encode(), keyCampFiles),
				Location: item.Location(),
			}
		}
		path := rel
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, rel)
		}
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			e := notFound(path)
			e.Location = item.Location()
			return nil, e
		}
		files = append(files, path)
	}
	return files, nil
}

func notFound(path string) *mechErrors.Error {
	return assembler.FileNotFound(path).Errors[0]
}

// first returns the leading error of errs, or nil when there is none.
func first(errs *mechErrors.ErrorList) *mechErrors.Error {
	if errs == nil || !errs.HasErrors() {
		return nil
	}
	return errs.Errors[0]
}
