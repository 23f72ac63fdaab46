package history

import (
	"context"
	"time"

	"github.com/google/uuid"

	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Run is one recorded validation of a configuration.
type Run struct {
	ID         string        `json:"id"`
	Source     string        `json:"source"`
	Schema     types.Schema  `json:"schema"`
	Valid      bool          `json:"valid"`
	ErrorCount int           `json:"error_count"`
	Errors     []RunError    `json:"errors,omitempty"`
	Duration   time.Duration `json:"duration"`
	StartedAt  time.Time     `json:"started_at"`
}

// RunError is the stored form of one validation error.
type RunError struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}

// NewRun starts a run for source with a fresh ID.
func NewRun(source string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Source:    source,
		StartedAt: time.Now().UTC(),
	}
}

// Finish records the outcome of the run.
func (r *Run) Finish(schema types.Schema, errs *mechErrors.ErrorList, duration time.Duration) {
	r.Schema = schema
	r.Duration = duration
	r.ErrorCount = errs.Count()
	r.Valid = r.ErrorCount == 0
	r.Errors = nil
	if errs == nil {
		return
	}
	for _, e := range errs.Errors {
		re := RunError{Kind: string(e.Kind), Message: e.Message}
		if e.Location.IsValid() {
			re.Location = e.Location.String()
		}
		r.Errors = append(r.Errors, re)
	}
}

// Query filters stored runs. Zero fields do not filter. Results are newest
// first.
type Query struct {
	Source string
	Schema types.Schema
	Valid  *bool
	Since  *time.Time
	Before *time.Time

	// Limit of 0 returns every match.
	Limit  int
	Offset int
}

// Store persists validation runs.
type Store interface {
	// Record stores a finished run.
	Record(ctx context.Context, run *Run) error

	// Query returns the runs matching q, newest first.
	Query(ctx context.Context, q Query) ([]*Run, error)

	// Count returns the number of runs matching q.
	Count(ctx context.Context, q Query) (int64, error)

	// Delete removes runs started before the cutoff and returns how many.
	Delete(ctx context.Context, before time.Time) (int64, error)

	// Trim keeps the newest keep runs and removes the rest.
	Trim(ctx context.Context, keep int64) (int64, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error

	Close() error
}
