package history

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryStore implements Store in memory. Runs are lost on exit; it backs
// the "memory" driver and tests.
type MemoryStore struct {
	mu   sync.RWMutex
	runs map[string]*Run
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{runs: make(map[string]*Run)}
}

// Record stores a copy of run.
func (s *MemoryStore) Record(_ context.Context, run *Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = copyRun(run)
	return nil
}

// Query returns the runs matching q, newest first.
func (s *MemoryStore) Query(_ context.Context, q Query) ([]*Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []*Run{}
	for _, run := range s.sorted() {
		if matches(run, q) {
			results = append(results, copyRun(run))
		}
	}

	if q.Offset >= len(results) {
		return []*Run{}, nil
	}
	results = results[q.Offset:]
	if q.Limit > 0 && q.Limit < len(results) {
		results = results[:q.Limit]
	}
	return results, nil
}

// Count returns the number of runs matching q.
func (s *MemoryStore) Count(_ context.Context, q Query) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, run := range s.runs {
		if matches(run, q) {
			n++
		}
	}
	return n, nil
}

// Delete removes runs started before the cutoff.
func (s *MemoryStore) Delete(_ context.Context, before time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, run := range s.runs {
		if run.StartedAt.Before(before) {
			delete(s.runs, id)
			n++
		}
	}
	return n, nil
}

// Trim keeps the newest keep runs.
func (s *MemoryStore) Trim(_ context.Context, keep int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := s.sorted()
	if int64(len(sorted)) <= keep {
		return 0, nil
	}
	var n int64
	for _, run := range sorted[keep:] {
		delete(s.runs, run.ID)
		n++
	}
	return n, nil
}

// Ping always succeeds.
func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close is a no-op.
func (s *MemoryStore) Close() error {
	return nil
}

// sorted returns the runs newest first, ties broken by ID as in SQLite.
func (s *MemoryStore) sorted() []*Run {
	runs := make([]*Run, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		if !runs[i].StartedAt.Equal(runs[j].StartedAt) {
			return runs[i].StartedAt.After(runs[j].StartedAt)
		}
		return runs[i].ID > runs[j].ID
	})
	return runs
}

func matches(run *Run, q Query) bool {
	if q.Source != "" && run.Source != q.Source {
		return false
	}
	if q.Schema != "" && run.Schema != q.Schema {
		return false
	}
	if q.Valid != nil && run.Valid != *q.Valid {
		return false
	}
	if q.Since != nil && run.StartedAt.Before(*q.Since) {
		return false
	}
	if q.Before != nil && !run.StartedAt.Before(*q.Before) {
		return false
	}
	return true
}

func copyRun(run *Run) *Run {
	c := *run
	c.Errors = append([]RunError(nil), run.Errors...)
	return &c
}
