package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Source yields a local path that the parser can read.
type Source interface {
	// Resolve makes the configuration available on disk. The returned
	// cleanup function releases anything Resolve created and is never nil.
	Resolve(ctx context.Context) (path string, cleanup func(), err error)

	// String describes the source for logs and history records.
	String() string
}

// SourceError reports a source that could not be resolved.
type SourceError struct {
	Source    string
	Operation string
	Cause     error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %s failed: %v", e.Source, e.Operation, e.Cause)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

func noop() {}

// FileSource is a configuration file or v0 directory on the local disk.
type FileSource struct {
	path string
}

// NewFileSource creates a source for path. The path is not checked until
// Resolve so that a missing file surfaces as a parser FileNotFound error.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Resolve returns the absolute path.
func (s *FileSource) Resolve(ctx context.Context) (string, func(), error) {
	if err := ctx.Err(); err != nil {
		return "", noop, err
	}
	abs, err := filepath.Abs(s.path)
	if err != nil {
		return "", noop, &SourceError{Source: s.path, Operation: "resolve", Cause: err}
	}
	return abs, noop, nil
}

func (s *FileSource) String() string {
	return s.path
}

// Options configure how a source is opened.
type Options struct {
	Ref      string
	Path     string
	Username string
	Token    string
	Depth    int
}

// Open returns a GitSource when location looks like a repository URL and a
// FileSource otherwise.
func Open(location string, opts Options) Source {
	if IsRepositoryURL(location) {
		return NewGitSource(GitOptions{
			URL:      location,
			Ref:      opts.Ref,
			Path:     opts.Path,
			Username: opts.Username,
			Token:    opts.Token,
			Depth:    opts.Depth,
		})
	}
	return NewFileSource(location)
}

// Walk returns the mechanism documents (*.yaml, *.yml, *.json) under dir,
// skipping hidden files and directories.
func Walk(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if isHidden(path) && path != dir {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.IsDir() && HasDocumentExtension(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, &SourceError{Source: dir, Operation: "walk", Cause: err}
	}
	return files, nil
}
