package logging

import (
	"context"
	"testing"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()

	if GetRunID(ctx) != "" || GetSource(ctx) != "" || GetSchema(ctx) != "" {
		t.Error("expected empty values from a bare context")
	}

	ctx = WithRunID(ctx, "run-1")
	ctx = WithSource(ctx, "configs/v1.yaml")
	ctx = WithSchema(ctx, "v1")

	if got := GetRunID(ctx); got != "run-1" {
		t.Errorf("expected run ID %q, got %q", "run-1", got)
	}
	if got := GetSource(ctx); got != "configs/v1.yaml" {
		t.Errorf("expected source %q, got %q", "configs/v1.yaml", got)
	}
	if got := GetSchema(ctx); got != "v1" {
		t.Errorf("expected schema %q, got %q", "v1", got)
	}
}

func TestExtractContextFields(t *testing.T) {
	tests := []struct {
		name string
		ctx  context.Context
		want []any
	}{
		{
			name: "empty",
			ctx:  context.Background(),
			want: nil,
		},
		{
			name: "source only",
			ctx:  WithSource(context.Background(), "a.json"),
			want: []any{"source", "a.json"},
		},
		{
			name: "fixed order",
			ctx:  WithRunID(WithSchema(WithSource(context.Background(), "b"), "v0"), "r"),
			want: []any{"run_id", "r", "source", "b", "schema", "v0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractContextFields(tt.ctx)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("field %d: expected %v, got %v", i, tt.want[i], got[i])
				}
			}
		})
	}
}
