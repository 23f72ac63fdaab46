package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSampler(t *testing.T) {
	tests := []struct {
		strategy string
		ratio    float64
		want     string
		wantErr  bool
	}{
		{strategy: SamplerAlways, want: "AlwaysOnSampler"},
		{strategy: SamplerNever, want: "AlwaysOffSampler"},
		{strategy: SamplerRatio, ratio: 0.25, want: "TraceIDRatioBased{0.25}"},
		{strategy: SamplerParent, ratio: 0.5, want: "ParentBased{root:TraceIDRatioBased{0.5}"},
		{strategy: SamplerRatio, ratio: 1.5, wantErr: true},
		{strategy: SamplerParent, ratio: -0.1, wantErr: true},
		{strategy: "sometimes", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			sampler, err := createSampler(tt.strategy, tt.ratio)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, sampler.Description(), tt.want)
		})
	}
}
