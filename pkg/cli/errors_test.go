package cli

import (
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("format", "unknown output format")

	expected := "config error in format: unknown output format"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

func TestCommandError(t *testing.T) {
	underlying := errors.New("underlying error")
	err := NewCommandError("validate", underlying)

	expected := "command validate failed: underlying error"
	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
	if !errors.Is(err, underlying) {
		t.Error("errors.Is() should see through CommandError")
	}
}

func TestValidationFailedError(t *testing.T) {
	err := &ValidationFailedError{Invalid: 2, Total: 5}
	if err.Error() != "2 of 5 configurations invalid" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"validation failed", &ValidationFailedError{Invalid: 1, Total: 1}, ExitInvalid},
		{"config error", NewConfigError("format", "bad"), ExitUsage},
		{"wrapped config error", fmt.Errorf("setup: %w", NewConfigError("format", "bad")), ExitUsage},
		{"command error", NewCommandError("watch", errors.New("boom")), ExitInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
