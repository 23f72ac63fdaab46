package v0

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/reactions"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

func quiet() *Parser {
	return New(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

// writeConfig lays out a config.yaml listing one camp file with the given
// camp-data body.
func writeConfig(t *testing.T, campData string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"config.yaml": "camp-files:\n  - data.yaml\n",
		"data.yaml":   "camp-data:\n" + campData,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write config: %v", err)
		}
	}
	return dir
}

const species = `  - {name: A, type: CHEM_SPEC}
  - {name: B, type: CHEM_SPEC}
`

func TestParseFullConfiguration(t *testing.T) {
	res := quiet().Parse(filepath.Join("testdata", "full"))
	require.True(t, res.OK(), "errors: %v", res.Errors.Diagnostics())
	assert.Equal(t, types.SchemaV0, res.Schema)

	m := res.Mechanism
	assert.Equal(t, "Full v0 configuration", m.Name)
	require.NotNil(t, m.RelativeTolerance)
	assert.Equal(t, 1.0e-4, *m.RelativeTolerance)
	require.Len(t, m.Species, 5)
	require.Len(t, m.Phases, 1)
	assert.Equal(t, GasPhase, m.Phases[0].Name)
	assert.Equal(t, types.SpeciesNames(m.Species), m.Phases[0].SpeciesNames())

	a, _ := m.FindSpecies("A")
	require.NotNil(t, a.AbsoluteTolerance)
	assert.Equal(t, 1.0e-12, *a.AbsoluteTolerance)
	assert.Equal(t, map[string]string{"__description": "a reactive species"}, a.UnknownProperties)

	third, _ := m.FindSpecies("M")
	require.NotNil(t, third.IsThirdBody)
	assert.True(t, *third.IsThirdBody)
	assert.Nil(t, third.UnknownProperties)

	counts := m.Reactions.CountByType()
	assert.Equal(t, map[string]int{
		types.TypeArrhenius:                 2,
		types.TypeTroe:                      1,
		types.TypeTernaryChemicalActivation: 1,
		types.TypeBranched:                  1,
		types.TypeTunneling:                 1,
		types.TypeUserDefined:               4,
		types.TypeSurface:                   1,
	}, counts)
}

func TestUnitConversions(t *testing.T) {
	res := quiet().Parse(filepath.Join("testdata", "full", "config.json"))
	require.True(t, res.OK(), "errors: %v", res.Errors.Diagnostics())
	r := res.Mechanism.Reactions
	n := MolesM3ToMoleculesCm3

	arr := r.Arrhenius[0]
	assert.Equal(t, "my arrhenius", arr.Name)
	assert.Equal(t, []types.ReactionComponent{{Name: "A", Coefficient: 2}, {Name: "B", Coefficient: 1}}, arr.Reactants)
	assert.Equal(t, []types.ReactionComponent{{Name: "C", Coefficient: 0.5}}, arr.Products)
	assert.InEpsilon(t, 2.0e-12*n*n, arr.A, 1e-12)
	assert.Equal(t, 1.2, arr.B)
	assert.Equal(t, -75.0, arr.C)
	assert.Equal(t, 298.0, arr.D)
	assert.Equal(t, 0.5, arr.E)

	fromEa := r.Arrhenius[1]
	assert.Equal(t, 1.0, fromEa.A)
	assert.InEpsilon(t, -2.0e-20/reactions.BoltzmannConstant, fromEa.C, 1e-12)
	assert.Equal(t, 300.0, fromEa.D)

	troe := r.Troe[0]
	assert.InEpsilon(t, 1.2e-30*n*n, troe.K0A, 1e-12)
	assert.InEpsilon(t, 3.0e-11*n, troe.KinfA, 1e-12)
	assert.Equal(t, -2.5, troe.K0B)
	assert.Equal(t, 0.9, troe.Fc)
	assert.Equal(t, 1.0, troe.N)

	ternary := r.TernaryChemicalActivation[0]
	assert.InEpsilon(t, 4.0e-30*n, ternary.K0A, 1e-12)
	assert.InEpsilon(t, 2.0e-12, ternary.KinfA, 1e-12)
	assert.Equal(t, 0.6, ternary.Fc)
	assert.Equal(t, 1.2, ternary.N)

	branched := r.Branched[0]
	assert.InEpsilon(t, 1.2e-4*n, branched.X, 1e-12)
	assert.Equal(t, 9, branched.N)
	assert.Equal(t, []types.ReactionComponent{{Name: "M", Coefficient: 0.1}}, branched.NitrateProducts)

	assert.Equal(t, 2.4, r.Tunneling[0].A)
	assert.Equal(t, 1.8e8, r.Tunneling[0].C)
}

func TestUserDefinedPrefixes(t *testing.T) {
	res := quiet().Parse(filepath.Join("testdata", "full"))
	require.True(t, res.OK())
	r := res.Mechanism.Reactions

	var names []string
	for _, u := range r.UserDefined {
		names = append(names, u.Name)
		assert.Equal(t, GasPhase, u.GasPhase)
	}
	assert.Equal(t, []string{"PHOTO.jA", "EMIS.B source", "LOSS.C sink", "USER.custom"}, names)

	assert.Equal(t, 0.5, r.UserDefined[0].ScalingFactor)
	assert.Equal(t, []types.ReactionComponent{{Name: "B", Coefficient: 1}}, r.UserDefined[1].Products)
	assert.Empty(t, r.UserDefined[1].Reactants)
	assert.Equal(t, []types.ReactionComponent{{Name: "C", Coefficient: 1}}, r.UserDefined[2].Reactants)
	assert.Equal(t, 2.0, r.UserDefined[2].ScalingFactor)
	assert.Equal(t, 1.0, r.UserDefined[3].ScalingFactor)

	surface := r.Surface[0]
	assert.Equal(t, "SURF.uptake", surface.Name)
	assert.Equal(t, types.ReactionComponent{Name: "surface reacting species", Coefficient: 1}, surface.GasPhaseSpecies)
	assert.Equal(t, 0.2, surface.ReactionProbability)
}

func TestFailFast(t *testing.T) {
	tests := []struct {
		name     string
		campData string
		want     mechErrors.Kind
	}{
		{
			name: "photolysis without MUSICA name",
			campData: species + `  - type: MECHANISM
    name: m
    reactions:
      - type: PHOTOLYSIS
        reactants: {A: {}}
        products: {B: {}}
`,
			want: mechErrors.KindRequiredKeyNotFound,
		},
		{
			name:     "unknown object type",
			campData: species + "  - {name: C, type: CHEM_SPECIES}\n",
			want:     mechErrors.KindObjectTypeNotFound,
		},
		{
			name:     "object without type",
			campData: "  - {name: C}\n",
			want:     mechErrors.KindObjectTypeNotFound,
		},
		{
			name: "Ea alongside C",
			campData: species + `  - type: MECHANISM
    name: m
    reactions:
      - type: ARRHENIUS
        reactants: {A: {}}
        products: {B: {}}
        C: 10
        Ea: 1.0e-20
`,
			want: mechErrors.KindMutuallyExclusiveOption,
		},
		{
			name: "unknown reactant",
			campData: species + `  - type: MECHANISM
    name: m
    reactions:
      - type: ARRHENIUS
        reactants: {A: {}, Z: {}, Y: {}}
        products: {B: {}}
`,
			want: mechErrors.KindReactionRequiresUnknownSpecies,
		},
		{
			name: "unknown reaction type",
			campData: species + `  - type: MECHANISM
    name: m
    reactions:
      - type: CMAQ_H2O2
        reactants: {A: {}}
        products: {B: {}}
`,
			want: mechErrors.KindUnknownType,
		},
		{
			name:     "non-standard species key",
			campData: "  - {name: A, type: CHEM_SPEC, phase: GAS, density: 1}\n",
			want:     mechErrors.KindInvalidKey,
		},
		{
			name:     "duplicate species",
			campData: species + "  - {name: A, type: CHEM_SPEC}\n",
			want:     mechErrors.KindDuplicateSpeciesDetected,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := quiet().Parse(writeConfig(t, tt.campData))
			assert.False(t, res.OK())
			assert.Nil(t, res.Mechanism)
			require.Equal(t, 1, res.Errors.Count(), "errors: %v", res.Errors.Diagnostics())
			assert.Equal(t, tt.want, res.Errors.Errors[0].Kind)
		})
	}
}

func TestSpeciesMayFollowReactions(t *testing.T) {
	dir := writeConfig(t, `  - type: MECHANISM
    name: m
    reactions:
      - type: ARRHENIUS
        reactants: {A: {}}
        products: {B: {}}
`+species)
	res := quiet().Parse(dir)
	require.True(t, res.OK(), "errors: %v", res.Errors.Diagnostics())
	assert.Len(t, res.Mechanism.Reactions.Arrhenius, 1)
}

func TestConfigFileErrors(t *testing.T) {
	res := quiet().Parse(filepath.Join("testdata", "missing"))
	require.Equal(t, 1, res.Errors.Count())
	assert.Equal(t, mechErrors.KindFileNotFound, res.Errors.Errors[0].Kind)

	res = quiet().Parse(t.TempDir())
	require.Equal(t, 1, res.Errors.Count())
	assert.Equal(t, mechErrors.KindFileNotFound, res.Errors.Errors[0].Kind)

	tests := []struct {
		name   string
		config string
		want   mechErrors.Kind
	}{
		{name: "no camp files key", config: "files: [data.yaml]\n", want: mechErrors.KindRequiredKeyNotFound},
		{name: "empty camp files", config: "camp-files: []\n", want: mechErrors.KindInvalidFilePath},
		{name: "missing camp file", config: "camp-files: [absent.json]\n", want: mechErrors.KindFileNotFound},
		{name: "camp file without camp data", config: "camp-files: [config.yaml]\n", want: mechErrors.KindRequiredKeyNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "config.yaml")
			if err := os.WriteFile(path, []byte(tt.config), 0644); err != nil {
				t.Fatalf("Failed to write config: %v", err)
			}
			res := quiet().Parse(path)
			require.Equal(t, 1, res.Errors.Count(), "errors: %v", res.Errors.Diagnostics())
			assert.Equal(t, tt.want, res.Errors.Errors[0].Kind)
		})
	}
}

func TestViolationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	p := New(slog.New(slog.NewTextHandler(&buf, nil)))

	res := p.Parse(writeConfig(t, "  - {name: C}\n"))
	require.False(t, res.OK())
	assert.Contains(t, buf.String(), "invalid v0 configuration")
	assert.Contains(t, buf.String(), string(mechErrors.KindObjectTypeNotFound))
}

func TestConversionFactor(t *testing.T) {
	assert.Equal(t, 1.0, convert(1, 0))
	assert.InEpsilon(t, 6.02214076e17, MolesM3ToMoleculesCm3, 1e-15)
	assert.InEpsilon(t, 1/MolesM3ToMoleculesCm3, convert(1, -1), 1e-12)
	assert.False(t, math.IsNaN(convert(2, 0.5)))
}

func TestListedFiles(t *testing.T) {
	dir := writeConfig(t, species)
	want := []string{filepath.Join(dir, "data.yaml")}
	assert.Equal(t, want, ListedFiles(dir))
	assert.Equal(t, want, ListedFiles(filepath.Join(dir, "config.yaml")))

	assert.Nil(t, ListedFiles(filepath.Join(dir, "data.yaml")))
	assert.Nil(t, ListedFiles(filepath.Join(dir, "missing.yaml")))
}
