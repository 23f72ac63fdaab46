package reactions

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

func load(t testing.TB, src string) document.Node {
	t.Helper()
	n, err := document.LoadBytes([]byte(src), "")
	if err != nil {
		t.Fatalf("LoadBytes() failed: %v", err)
	}
	return n
}

func fixture() ([]types.Species, []types.Phase) {
	species := []types.Species{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "Q"}, {Name: "H2O"}}
	phases := []types.Phase{
		{Name: "gas", Species: []types.PhaseSpecies{{Name: "A"}, {Name: "B"}, {Name: "C"}, {Name: "Q"}}},
		{Name: "aqueous", Species: []types.PhaseSpecies{{Name: "B"}, {Name: "H2O"}}},
	}
	return species, phases
}

func kinds(errs *mechErrors.ErrorList) []mechErrors.Kind {
	var out []mechErrors.Kind
	for _, e := range errs.Errors {
		out = append(out, e.Kind)
	}
	return out
}

func TestTableValidate(t *testing.T) {
	species, phases := fixture()

	tests := []struct {
		name    string
		dialect Dialect
		src     string
		want    []mechErrors.Kind
	}{
		{
			name:    "valid arrhenius",
			dialect: Development,
			src: `
type: ARRHENIUS
gas phase: gas
reactants: [{name: A}]
products: [{name: B, coefficient: 2}]
A: 1.0e-12
C: -500
`,
		},
		{
			name:    "arrhenius in unknown phase",
			dialect: Development,
			src: `
type: ARRHENIUS
gas phase: aqueous_x
reactants: [{name: A}]
products: [{name: B}]
`,
			want: []mechErrors.Kind{mechErrors.KindUnknownPhase},
		},
		{
			name:    "Ea and C short-circuit",
			dialect: Development,
			src: `
type: ARRHENIUS
gas phase: nowhere
reactants: [{name: Z}]
products: [{name: B}]
Ea: 1.0e-20
C: 10
`,
			want: []mechErrors.Kind{mechErrors.KindMutuallyExclusiveOption},
		},
		{
			name:    "unknown reactant",
			dialect: Development,
			src: `
type: ARRHENIUS
gas phase: gas
reactants: [{name: Z}]
products: [{name: B}]
`,
			want: []mechErrors.Kind{mechErrors.KindReactionRequiresUnknownSpecies},
		},
		{
			name:    "schema failure gates further checks",
			dialect: Development,
			src: `
type: ARRHENIUS
reactants: [{name: Z}]
products: [{name: B}]
`,
			want: []mechErrors.Kind{mechErrors.KindRequiredKeyNotFound},
		},
		{
			name:    "non-numeric parameter",
			dialect: Development,
			src: `
type: ARRHENIUS
gas phase: gas
reactants: [{name: A}]
products: [{name: B}]
A: fast
`,
			want: []mechErrors.Kind{mechErrors.KindInvalidType},
		},
		{
			name:    "surface with two gas-phase species",
			dialect: Development,
			src: `
type: SURFACE
gas phase: gas
condensed phase: aqueous
gas-phase species: [{name: A}, {name: B}]
gas-phase products: [{name: C}]
`,
			want: []mechErrors.Kind{mechErrors.KindTooManyReactionComponents},
		},
		{
			name:    "simpol species missing from condensed phase",
			dialect: Development,
			src: `
type: SIMPOL_PHASE_TRANSFER
gas phase: gas
condensed phase: aqueous
gas-phase species: [{name: A}]
condensed-phase species: [{name: Q}]
B: [1, 2, 3, 4]
`,
			want: []mechErrors.Kind{mechErrors.KindRequestedSpeciesNotRegisteredInPhase},
		},
		{
			name:    "simpol with three parameters",
			dialect: Development,
			src: `
type: SIMPOL_PHASE_TRANSFER
gas phase: gas
condensed phase: aqueous
gas-phase species: [{name: B}]
condensed-phase species: [{name: B}]
B: [1, 2, 3]
`,
			want: []mechErrors.Kind{mechErrors.KindInvalidParameterNumber},
		},
		{
			name:    "first order loss with two reactants",
			dialect: Development,
			src: `
type: FIRST_ORDER_LOSS
gas phase: gas
reactants: [{name: A}, {name: B}]
`,
			want: []mechErrors.Kind{mechErrors.KindTooManyReactionComponents},
		},
		{
			name:    "aqueous equilibrium water outside phase",
			dialect: Development,
			src: `
type: AQUEOUS_EQUILIBRIUM
condensed phase: aqueous
condensed-phase water: A
reactants: [{name: B}]
products: [{name: B}]
k_reverse: 0.32
`,
			want: []mechErrors.Kind{mechErrors.KindRequestedSpeciesNotRegisteredInPhase},
		},
		{
			name:    "henry's law development",
			dialect: Development,
			src: `
type: HL_PHASE_TRANSFER
gas:
  name: gas
  species:
    - name: A
      diffusion coefficient [m2 s-1]: 1.5e-5
particle:
  phase: aqueous
  solutes: [{name: B}]
  solvent: [{name: H2O}]
`,
		},
		{
			name:    "henry's law v1 scalar gas species",
			dialect: V1,
			src: `
type: HL_PHASE_TRANSFER
gas:
  name: gas
  species: [A]
particle:
  phase: aqueous
  solutes: [{species name: B}]
  solvent: [{species name: H2O}, {species name: B}]
`,
			want: []mechErrors.Kind{mechErrors.KindTooManyReactionComponents},
		},
		{
			name:    "v1 component key",
			dialect: V1,
			src: `
type: PHOTOLYSIS
gas phase: gas
reactants: [{name: A}]
products: [{species name: B}]
`,
			want: []mechErrors.Kind{mechErrors.KindRequiredKeyNotFound, mechErrors.KindInvalidKey},
		},
		{
			name:    "branched with fractional n",
			dialect: Development,
			src: `
type: BRANCHED_NO_RO2
gas phase: gas
reactants: [{name: A}]
nitrate products: [{name: B}]
alkoxy products: [{name: C}]
X: 1.0e-3
Y: 2.0
a0: 0.15
n: 1.5
`,
			want: []mechErrors.Kind{mechErrors.KindInvalidType},
		},
		{
			name:    "wet deposition in unknown phase",
			dialect: Development,
			src: `
type: WET_DEPOSITION
condensed phase: cloud
`,
			want: []mechErrors.Kind{mechErrors.KindUnknownPhase},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable(tt.dialect)
			obj := load(t, tt.src)
			entry, ok := table.Lookup(obj.Get("type").Str())
			require.True(t, ok)

			errs := entry.Validate(obj, species, phases)
			assert.Equal(t, tt.want, kinds(errs), "errors: %v", errs.Diagnostics())
		})
	}
}

func TestValidateAllSkipsUnknownTypes(t *testing.T) {
	species, phases := fixture()
	list := load(t, `
- type: ARRHENIUS
  gas phase: gas
  reactants: [{name: A}]
  products: [{name: Z}]
- type: ARHENIUS
  gas phase: gas
- gas phase: gas
- type: EMISSION
  gas phase: gas
  products: [{name: Y}]
`)

	errs := NewTable(Development).ValidateAll(list, species, phases)
	require.Equal(t, []mechErrors.Kind{
		mechErrors.KindReactionRequiresUnknownSpecies,
		mechErrors.KindUnknownType,
		mechErrors.KindRequiredKeyNotFound,
		mechErrors.KindReactionRequiresUnknownSpecies,
	}, kinds(errs))

	unknown := errs.ByKind(mechErrors.KindUnknownType)[0]
	assert.Equal(t, "Unknown reaction type 'ARHENIUS' found.", unknown.Message)
	assert.Contains(t, unknown.Suggestion, "ARRHENIUS")
	assert.Equal(t, 6, unknown.Location.Line)

	missing := errs.ByKind(mechErrors.KindRequiredKeyNotFound)[0]
	assert.Equal(t, "Missing 'type' object in reaction.", missing.Message)
}

func TestParseDefaults(t *testing.T) {
	list := load(t, `
- type: ARRHENIUS
  name: r1
  gas phase: gas
  reactants: [{name: A}]
  products: [{name: B, coefficient: 0.5, __note: kept}]
  __source: jpl
- type: ARRHENIUS
  gas phase: gas
  reactants: [{name: A}]
  products: []
  Ea: 1.380649e-21
- type: TROE
  gas phase: gas
  reactants: [{name: A}]
  products: [{name: B}]
- type: SIMPOL_PHASE_TRANSFER
  gas phase: gas
  condensed phase: aqueous
  gas-phase species: [{name: B}]
  condensed-phase species: [{name: B}]
  B: [-1.97e3, 2.91, 1.96e-3, -4.96e-1]
- type: SURFACE
  gas phase: gas
  condensed phase: aqueous
  gas-phase species: [{name: A}]
  gas-phase products: [{name: B}]
- type: BRANCHED_NO_RO2
  gas phase: gas
  reactants: [{name: A}]
  nitrate products: [{name: B}]
  alkoxy products: [{name: C}]
  X: 1.2
  Y: 2.3
  a0: 0.15
  n: 9
`)

	rs := NewTable(Development).ParseAll(list)
	require.Equal(t, 6, rs.Count())

	first := rs.Arrhenius[0]
	assert.Equal(t, "r1", first.Name)
	assert.Equal(t, 1.0, first.A)
	assert.Equal(t, 0.0, first.B)
	assert.Equal(t, 300.0, first.D)
	assert.Equal(t, 1.0, first.Reactants[0].Coefficient)
	assert.Equal(t, 0.5, first.Products[0].Coefficient)
	assert.Equal(t, map[string]string{"__note": "kept"}, first.Products[0].UnknownProperties)
	assert.Equal(t, map[string]string{"__source": "jpl"}, first.UnknownProperties)

	assert.InDelta(t, -100.0, rs.Arrhenius[1].C, 1e-9)

	troe := rs.Troe[0]
	assert.Equal(t, 1.0, troe.K0A)
	assert.Equal(t, 0.6, troe.Fc)
	assert.Equal(t, 1.0, troe.N)

	assert.Equal(t, [4]float64{-1.97e3, 2.91, 1.96e-3, -4.96e-1}, rs.SimpolPhaseTransfer[0].B)

	surface := rs.Surface[0]
	assert.Equal(t, "A", surface.GasPhaseSpecies.Name)
	assert.Equal(t, 1.0, surface.ReactionProbability)

	assert.Equal(t, 9, rs.Branched[0].N)
}

func TestTableTags(t *testing.T) {
	tags := NewTable(V1).Tags()
	assert.Len(t, tags, 17)
	assert.Contains(t, tags, types.TypeTernaryChemicalActivation)
	assert.IsIncreasing(t, tags)

	entry, ok := NewTable(V1).Lookup(types.TypeArrhenius)
	require.True(t, ok)
	req := entry.RequiredKeys()
	req[0] = "mutated"
	assert.NotEqual(t, "mutated", entry.RequiredKeys()[0])
}

func TestCFromEa(t *testing.T) {
	c, err := CFromEa(1.380649e-23)
	require.NoError(t, err)
	if math.Abs(c-(-1.0)) > 1e-12 {
		t.Errorf("CFromEa(k_B) = %v, want -1", c)
	}
}

func TestCFromEaExact(t *testing.T) {
	for _, want := range []float64{102.3, -500, 63.4, 32.1, -1.3, 1000} {
		c, err := CFromEa(EaFromC(want))
		require.NoError(t, err)
		assert.Equal(t, want, c, "C round trip through Ea")
	}
}

func TestEaRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ea := rapid.Float64Range(-1e-15, 1e-15).Draw(t, "ea")
		c, err := CFromEa(ea)
		if err != nil {
			t.Fatalf("CFromEa(%v) failed: %v", ea, err)
		}
		back := EaFromC(c)
		if diff := math.Abs(back - ea); diff > 1e-9*math.Abs(ea)+1e-300 {
			t.Fatalf("EaFromC(CFromEa(%v)) = %v", ea, back)
		}
	})
}
