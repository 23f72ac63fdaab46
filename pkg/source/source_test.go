package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestFileSource_Resolve(t *testing.T) {
	dir := t.TempDir()
	src := NewFileSource(filepath.Join(dir, "m.yaml"))

	path, cleanup, err := src.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	defer cleanup()

	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}
	if src.String() != filepath.Join(dir, "m.yaml") {
		t.Errorf("expected String() to return the given path, got %q", src.String())
	}
}

func TestFileSource_ResolveCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, cleanup, err := NewFileSource("m.yaml").Resolve(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	cleanup()
}

func TestOpen(t *testing.T) {
	tests := []struct {
		location string
		wantGit  bool
	}{
		{"mechanism.yaml", false},
		{"/data/camp", false},
		{"https://github.com/open-atmos/mechanism-configuration", true},
		{"git@github.com:open-atmos/mechanism-configuration.git", true},
		{"ssh://git@example.com/repo", true},
		{"/srv/repos/mechanisms.git", true},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			_, isGit := Open(tt.location, Options{}).(*GitSource)
			if isGit != tt.wantGit {
				t.Errorf("expected git=%v, got %v", tt.wantGit, isGit)
			}
		})
	}
}

func TestWalk(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.yaml":            "version: 1.0.0",
		"b.json":            "{}",
		"sub/c.yml":         "version: 2.0.0",
		"sub/notes.txt":     "ignored",
		".hidden/d.yaml":    "ignored",
		"sub/.e.yaml":       "ignored",
		"sub/deeper/F.YAML": "version: 1.0.0",
	}
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Walk(dir)
	if err != nil {
		t.Fatalf("Walk() failed: %v", err)
	}
	for i := range got {
		got[i], _ = filepath.Rel(dir, got[i])
		got[i] = filepath.ToSlash(got[i])
	}
	sort.Strings(got)

	want := []string{"a.yaml", "b.json", "sub/c.yml", "sub/deeper/F.YAML"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
			break
		}
	}
}

func TestWalk_MissingDir(t *testing.T) {
	_, err := Walk(filepath.Join(t.TempDir(), "missing"))
	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceError, got %v", err)
	}
	if srcErr.Operation != "walk" {
		t.Errorf("expected walk operation, got %q", srcErr.Operation)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}
