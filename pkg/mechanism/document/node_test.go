package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleYAML = `version: 1.0.0
name: sample
species:
  - name: A
    molecular weight [kg mol-1]: 0.025
    __note: first
  - name: B
flag: true
count: 3
quoted: "2.5"
empty:
base: &base
  x: 1
copy: *base
plain:
  y: 2
`

func mustLoad(t *testing.T, src string) Node {
	t.Helper()
	root, err := LoadBytes([]byte(src), "sample.yaml")
	if err != nil {
		t.Fatalf("LoadBytes() failed: %v", err)
	}
	return root
}

func TestNode_Lookup(t *testing.T) {
	root := mustLoad(t, sampleYAML)

	if !root.IsMap() {
		t.Fatal("root should be a mapping")
	}
	if name := root.Get("name").Str(); name != "sample" {
		t.Errorf("name = %q, want %q", name, "sample")
	}
	if v, err := root.Get("version").String(); err != nil || v != "1.0.0" {
		t.Errorf("version = %q, %v, want 1.0.0", v, err)
	}
	if !root.Has("empty") {
		t.Error("Has(empty) = false, want true")
	}
	if !root.Get("empty").IsNull() {
		t.Error("empty should be null")
	}
	if root.Has("missing") {
		t.Error("Has(missing) = true, want false")
	}
	missing := root.Get("missing")
	if !missing.IsNull() {
		t.Error("missing key should be null")
	}
	if missing.Line() != root.Line() {
		t.Errorf("missing.Line() = %d, want object line %d", missing.Line(), root.Line())
	}

	want := []string{"version", "name", "species", "flag", "count", "quoted", "empty", "base", "copy", "plain"}
	keys := root.Keys()
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("Keys() = %v, want %v", keys, want)
	}
}

func TestNode_Scalars(t *testing.T) {
	root := mustLoad(t, sampleYAML)

	if b, err := root.Get("flag").Bool(); err != nil || !b {
		t.Errorf("flag = %v, %v, want true", b, err)
	}
	if i, err := root.Get("count").Int(); err != nil || i != 3 {
		t.Errorf("count = %d, %v, want 3", i, err)
	}
	if f, err := root.Get("quoted").Float(); err != nil || f != 2.5 {
		t.Errorf("quoted = %v, %v, want 2.5", f, err)
	}
	if f := root.Get("missing").MustFloat(300); f != 300 {
		t.Errorf("MustFloat(300) = %v, want 300", f)
	}
	if _, err := root.Get("species").Float(); err == nil {
		t.Error("Float() on a sequence should fail")
	}
	if _, err := root.Get("name").Int(); err == nil {
		t.Error("Int() on a word should fail")
	}
}

func TestNode_IntRejectsFractions(t *testing.T) {
	tests := []struct {
		src     string
		want    int
		wantErr bool
	}{
		{src: "n: 2", want: 2},
		{src: "n: -4", want: -4},
		{src: "n: \"3\"", want: 3},
		{src: "n: 1.9", wantErr: true},
		{src: "n: 1.0", wantErr: true},
		{src: "n: 1e3", wantErr: true},
		{src: "n: \"1.5\"", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := mustLoad(t, tt.src).Get("n").Int()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Int() = %d, %v, wantErr %v", got, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNode_Items(t *testing.T) {
	root := mustLoad(t, sampleYAML)

	species := root.Get("species").Items()
	if len(species) != 2 {
		t.Fatalf("len(species) = %d, want 2", len(species))
	}
	if species[1].Get("name").Str() != "B" {
		t.Errorf("species[1].name = %q, want B", species[1].Get("name").Str())
	}
	if species[0].Line() != 4 {
		t.Errorf("species[0].Line() = %d, want 4", species[0].Line())
	}
	if species[0].Location().File != "sample.yaml" {
		t.Errorf("File = %q, want sample.yaml", species[0].Location().File)
	}

	if items := root.Get("missing").Items(); len(items) != 0 {
		t.Errorf("null Items() = %d, want 0", len(items))
	}
	if items := root.Get("base").Items(); len(items) != 1 {
		t.Errorf("mapping Items() = %d, want 1", len(items))
	}
}

func TestNode_AliasAndEncode(t *testing.T) {
	root := mustLoad(t, sampleYAML)

	if x := root.Get("copy").Get("x").MustInt(0); x != 1 {
		t.Errorf("copy.x = %d, want 1", x)
	}
	if got := root.Get("plain").Encode(); got != "y: 2" {
		t.Errorf("Encode() = %q, want %q", got, "y: 2")
	}
	if got := root.Get("name").Encode(); got != "sample" {
		t.Errorf("Encode() scalar = %q, want sample", got)
	}
}

func TestNode_Pairs(t *testing.T) {
	root := mustLoad(t, sampleYAML)

	pairs := root.Get("species").Items()[0].Pairs()
	if len(pairs) != 3 {
		t.Fatalf("len(Pairs()) = %d, want 3", len(pairs))
	}
	if pairs[2].Key != "__note" || pairs[2].Value.Str() != "first" {
		t.Errorf("pairs[2] = %q: %q", pairs[2].Key, pairs[2].Value.Str())
	}
	if pairs[2].KeyAt.Line() != 6 {
		t.Errorf("KeyAt.Line() = %d, want 6", pairs[2].KeyAt.Line())
	}
}

func TestLoadBytes_JSON(t *testing.T) {
	src := `{"version": "2.0.0", "species": [{"name": "A"}], "reactions": []}`
	root := mustLoad(t, src)

	if root.Get("version").Str() != "2.0.0" {
		t.Errorf("version = %q", root.Get("version").Str())
	}
	if n := root.Get("species").Len(); n != 1 {
		t.Errorf("len(species) = %d, want 1", n)
	}
	if !root.Get("reactions").IsSequence() {
		t.Error("reactions should be a sequence")
	}
}

func TestLoadBytes_Empty(t *testing.T) {
	root, err := LoadBytes(nil, "empty.yaml")
	if err != nil {
		t.Fatalf("LoadBytes() failed: %v", err)
	}
	if !root.IsNull() {
		t.Error("empty document should be null")
	}
}

func TestLoadBytes_SyntaxError(t *testing.T) {
	_, err := LoadBytes([]byte("name: ok\na: b: c\n"), "bad.yaml")
	if err == nil {
		t.Fatal("expected a syntax error")
	}

	var se *SyntaxError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *SyntaxError", err)
	}
	if se.Location.File != "bad.yaml" {
		t.Errorf("File = %q, want bad.yaml", se.Location.File)
	}
	if se.Location.Line == 0 {
		t.Errorf("Line = 0, want the reported line (%q)", err.Error())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.yaml")
	if err := os.WriteFile(path, []byte("name: x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	root, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if root.File() != path {
		t.Errorf("File() = %q, want %q", root.File(), path)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); !os.IsNotExist(err) {
		t.Errorf("LoadFile(missing) error = %v, want not-exist", err)
	}
}
