package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

var phases = []types.Phase{{Name: "gas"}, {Name: "aqueous"}, {Name: "organic"}}

func load(t *testing.T, src string) document.Node {
	t.Helper()
	n, err := document.LoadBytes([]byte(src), "")
	require.NoError(t, err)
	return n
}

func kinds(errs *mechErrors.ErrorList) []mechErrors.Kind {
	var out []mechErrors.Kind
	for _, e := range errs.Errors {
		out = append(out, e.Kind)
	}
	return out
}

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []mechErrors.Kind
	}{
		{
			name: "valid gas and modal",
			src: `
- type: GAS_PHASE
  phase: gas
- type: MODAL
  name: aerosol
  modes:
    - name: aitken
      geometric mean diameter [m]: 2.6e-8
      geometric standard deviation: 1.6
      phase: aqueous
`,
		},
		{
			name: "gas model in unknown phase",
			src:  "- type: GAS_PHASE\n  phase: plasma\n",
			want: []mechErrors.Kind{mechErrors.KindUnknownPhase},
		},
		{
			name: "gas model phase as a mapping",
			src:  "- type: GAS_PHASE\n  phase: {name: gas}\n",
			want: []mechErrors.Kind{mechErrors.KindInvalidType},
		},
		{
			name: "mode phase as a sequence",
			src:  "- type: MODAL\n  modes:\n    - name: m\n      geometric mean diameter [m]: 2.6e-8\n      geometric standard deviation: 1.6\n      phase: [aqueous]\n",
			want: []mechErrors.Kind{mechErrors.KindInvalidType},
		},
		{
			name: "modes must be a sequence",
			src:  "- type: MODAL\n  modes: {name: m}\n",
			want: []mechErrors.Kind{mechErrors.KindInvalidType},
		},
		{
			name: "bad mode skipped, phases checked per mode",
			src: `
- type: MODAL
  modes:
    - name: m1
      phase: aqueous
    - name: m2
      geometric mean diameter [m]: 1.0e-7
      geometric standard deviation: 1.8
      phase: ice
    - name: m3
      geometric mean diameter [m]: 1.0e-6
      geometric standard deviation: 2.0
      phase: snow
`,
			want: []mechErrors.Kind{
				mechErrors.KindRequiredKeyNotFound,
				mechErrors.KindRequiredKeyNotFound,
				mechErrors.KindUnknownPhase,
				mechErrors.KindUnknownPhase,
			},
		},
		{
			name: "missing and unknown types",
			src:  "- phase: gas\n- type: SECTIONAL\n",
			want: []mechErrors.Kind{mechErrors.KindRequiredKeyNotFound, mechErrors.KindUnknownType},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := NewTable().ValidateAll(load(t, tt.src), phases)
			assert.Equal(t, tt.want, kinds(errs), "errors: %v", errs.Diagnostics())
		})
	}
}

func TestModalMessage(t *testing.T) {
	errs := NewTable().ValidateAll(load(t, "- type: MODAL\n  modes: 3\n"), phases)
	require.Equal(t, 1, errs.Count())
	assert.Equal(t, "Expected 'modes' to be a sequence, but found a different type in the 'MODAL' model.", errs.Errors[0].Message)
}

func TestParseAll(t *testing.T) {
	ms := NewTable().ParseAll(load(t, `
- type: GAS_PHASE
  name: gas model
  phase: gas
  __origin: test
- type: MODAL
  modes:
    - name: accumulation
      geometric mean diameter [m]: 1.1e-7
      geometric standard deviation: 1.8
      phase: organic
`))

	require.NotNil(t, ms.GasModel)
	assert.Equal(t, "gas model", ms.GasModel.Name)
	assert.Equal(t, "gas", ms.GasModel.Phase)
	assert.Equal(t, map[string]string{"__origin": "test"}, ms.GasModel.UnknownProperties)

	require.NotNil(t, ms.ModalModel)
	require.Len(t, ms.ModalModel.Modes, 1)
	mode := ms.ModalModel.Modes[0]
	assert.Equal(t, "accumulation", mode.Name)
	assert.Equal(t, 1.1e-7, mode.GeometricMeanDiameter)
	assert.Equal(t, 1.8, mode.GeometricStandardDeviation)
	assert.Equal(t, "organic", mode.Phase)
}

func TestEmptyList(t *testing.T) {
	var null document.Node
	errs := NewTable().ValidateAll(null, phases)
	assert.False(t, errs.HasErrors())
	assert.True(t, NewTable().ParseAll(null).IsEmpty())
}
