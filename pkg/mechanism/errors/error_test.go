package errors

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

func TestError_Diagnostic(t *testing.T) {
	tests := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "with file",
			err:  Error{Kind: KindInvalidKey, Message: "Non-standard key 'foo' found.", Location: types.Location{File: "m.yaml", Line: 3, Column: 5}},
			want: "m.yaml:3:5 error: Non-standard key 'foo' found.",
		},
		{
			name: "without file",
			err:  Error{Kind: KindEmptyObject, Message: "Object is null.", Location: types.Location{Line: 1, Column: 1}},
			want: "1:1 error: Object is null.",
		},
		{
			name: "file only",
			err:  Error{Kind: KindFileNotFound, Message: "File not found: 'x'.", Location: types.Location{File: "x"}},
			want: "x: error: File not found: 'x'.",
		},
		{
			name: "no location",
			err:  Error{Kind: KindUnexpectedError, Message: "boom"},
			want: "error: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Diagnostic(); got != tt.want {
				t.Errorf("Diagnostic() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	err := &Error{
		Kind:       KindInvalidKey,
		Message:    "Non-standard key 'gas phse' found.",
		Location:   types.Location{File: "m.yaml", Line: 7, Column: 3},
		Suggestion: "Did you mean 'gas phase'?",
	}

	got := err.Error()
	for _, want := range []string{
		"[InvalidKey] Non-standard key 'gas phse' found.",
		"--> m.yaml:7:3",
		"= suggestion: Did you mean 'gas phase'?",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestErrorList(t *testing.T) {
	el := NewErrorList()
	if el.HasErrors() {
		t.Fatal("new list should be empty")
	}
	if el.ToError() != nil {
		t.Error("ToError() on empty list should be nil")
	}

	el.AddError(KindUnknownPhase, "a", types.Location{Line: 1})
	el.AddErrorf(KindUnknownPhase, types.Location{Line: 2}, "Unknown phase name '%s'.", "mist")
	el.AddErrorWithSuggestion(KindInvalidKey, "c", types.Location{Line: 3}, "hint")

	if el.Count() != 3 {
		t.Errorf("Count() = %d, want 3", el.Count())
	}
	if got := len(el.ByKind(KindUnknownPhase)); got != 2 {
		t.Errorf("len(ByKind(UnknownPhase)) = %d, want 2", got)
	}
	if el.Errors[1].Message != "Unknown phase name 'mist'." {
		t.Errorf("Message = %q", el.Errors[1].Message)
	}
	if !el.HasKind(KindInvalidKey) {
		t.Error("HasKind(InvalidKey) = false, want true")
	}
	if el.HasKind(KindFileNotFound) {
		t.Error("HasKind(FileNotFound) = true, want false")
	}

	kinds := el.Kinds()
	if len(kinds) != 2 || kinds[0] != KindInvalidKey || kinds[1] != KindUnknownPhase {
		t.Errorf("Kinds() = %v, want [InvalidKey UnknownPhase]", kinds)
	}

	if !strings.HasPrefix(el.Error(), "Found 3 error(s):") {
		t.Errorf("Error() = %q", el.Error())
	}
}

func TestErrorList_MergeAndSetFile(t *testing.T) {
	a := NewErrorList()
	a.AddError(KindInvalidKey, "a", types.Location{Line: 1, Column: 1})
	b := NewErrorList()
	b.AddError(KindInvalidKey, "b", types.Location{File: "other.yaml", Line: 2, Column: 1})

	a.Merge(b)
	a.Merge(nil)
	a.SetFile("main.yaml")

	if a.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", a.Count())
	}
	if a.Errors[0].Location.File != "main.yaml" {
		t.Errorf("File = %q, want main.yaml", a.Errors[0].Location.File)
	}
	if a.Errors[1].Location.File != "other.yaml" {
		t.Errorf("File = %q, want other.yaml", a.Errors[1].Location.File)
	}

	diags := a.Diagnostics()
	if diags[0] != "main.yaml:1:1 error: a" {
		t.Errorf("Diagnostics()[0] = %q", diags[0])
	}
}

func TestErrorList_NilSafe(t *testing.T) {
	var el *ErrorList
	if el.HasErrors() || el.Count() != 0 || el.HasKind(KindNone) {
		t.Error("nil list should behave as empty")
	}
	el.SetFile("x")
	if el.ByKind(KindNone) != nil || el.Kinds() != nil {
		t.Error("nil list queries should return nil")
	}
}

func TestKind_Valid(t *testing.T) {
	for _, k := range AllKinds() {
		if !k.Valid() {
			t.Errorf("%s.Valid() = false", k)
		}
	}
	if Kind("Bogus").Valid() {
		t.Error("Bogus.Valid() = true")
	}
}

func TestSuggestKey(t *testing.T) {
	valid := []string{"gas phase", "reactants", "products", "type"}

	tests := []struct {
		unknown string
		want    string
	}{
		{"gas phse", "Did you mean 'gas phase'?"},
		{"reactant", "Did you mean 'reactants'?"},
		{"completely unrelated", "Valid keys: gas phase, reactants, products, type"},
	}

	for _, tt := range tests {
		t.Run(tt.unknown, func(t *testing.T) {
			if got := SuggestKey(tt.unknown, valid); got != tt.want {
				t.Errorf("SuggestKey(%q) = %q, want %q", tt.unknown, got, tt.want)
			}
		})
	}

	if got := SuggestKey("x", nil); got != "" {
		t.Errorf("SuggestKey with no keys = %q, want empty", got)
	}
}

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"kitten", "sitting", 3},
		{"Ea", "E", 1},
	}
	for _, tt := range tests {
		if got := levenshteinDistance(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestExtractContext(t *testing.T) {
	src := "line one\nline two\nline three\nline four\n"
	path := filepath.Join(t.TempDir(), "m.yaml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	got := ExtractContext(types.Location{File: path, Line: 2, Column: 6}, 1)
	if !strings.Contains(got, "-> 2 | line two") {
		t.Errorf("context missing marked line:\n%s", got)
	}
	if !strings.Contains(got, "   1 | line one") || !strings.Contains(got, "   3 | line three") {
		t.Errorf("context missing neighbours:\n%s", got)
	}
	if strings.Contains(got, "line four") {
		t.Errorf("context too wide:\n%s", got)
	}

	if ExtractContext(types.Location{File: path}, 1) != "" {
		t.Error("invalid location should give empty context")
	}
	if ExtractContextFromSource([]byte(src), types.Location{Line: 99}, 1) != "" {
		t.Error("out of range line should give empty context")
	}

	el := NewErrorList()
	el.AddError(KindInvalidKey, "x", types.Location{File: path, Line: 4, Column: 1})
	el.AddContext(0)
	if !strings.Contains(el.Errors[0].Context, "-> 4 | line four") {
		t.Errorf("AddContext() context = %q", el.Errors[0].Context)
	}
}
