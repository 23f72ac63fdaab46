package cli

import (
	"errors"
	"fmt"
)

// Exit codes returned by the mechcfg command.
const (
	ExitOK      = 0
	ExitInvalid = 1
	ExitUsage   = 2
)

// ConfigError represents an error in the tool configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ValidationFailedError reports that at least one configuration was
// invalid. The details have already been printed.
type ValidationFailedError struct {
	Invalid int
	Total   int
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("%d of %d configurations invalid", e.Invalid, e.Total)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// ExitCode maps an error returned by a command to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var configErr *ConfigError
	if errors.As(err, &configErr) {
		return ExitUsage
	}
	return ExitInvalid
}
