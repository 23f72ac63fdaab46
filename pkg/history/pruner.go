package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PrunerConfig sets the retention policy.
type PrunerConfig struct {
	// RetentionDays is how long runs are kept. 0 keeps them forever.
	RetentionDays int

	// MaxRecords caps the number of runs kept. 0 means unlimited.
	MaxRecords int64

	// PruneSchedule is the cron expression used by the Scheduler.
	PruneSchedule string
}

// Pruner enforces the retention policy on a Store.
type Pruner struct {
	store    Store
	config   PrunerConfig
	logger   *slog.Logger
	now      func() time.Time
	onPruned func(int64)
}

// NewPruner creates a pruner. A nil logger uses slog.Default().
func NewPruner(store Store, config PrunerConfig, logger *slog.Logger) *Pruner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pruner{
		store:  store,
		config: config,
		logger: logger.With("component", "history.retention"),
		now:    time.Now,
	}
}

// OnPruned sets a callback receiving the number of runs deleted by each
// Prune that deleted any. The CLI feeds it to the metrics collector.
func (p *Pruner) OnPruned(fn func(int64)) *Pruner {
	p.onPruned = fn
	return p
}

// Prune deletes runs older than the retention period, then the oldest runs
// beyond MaxRecords. It returns the total deleted.
func (p *Pruner) Prune(ctx context.Context) (int64, error) {
	var total int64

	if p.config.RetentionDays > 0 {
		cutoff := p.now().AddDate(0, 0, -p.config.RetentionDays)
		deleted, err := p.store.Delete(ctx, cutoff)
		if err != nil {
			return total, fmt.Errorf("prune by age failed: %w", err)
		}
		total += deleted
		p.logger.Debug("pruned runs by age", "deleted_count", deleted, "cutoff", cutoff)
	}

	if p.config.MaxRecords > 0 {
		deleted, err := p.store.Trim(ctx, p.config.MaxRecords)
		if err != nil {
			return total, fmt.Errorf("prune by count failed: %w", err)
		}
		total += deleted
		p.logger.Debug("pruned runs by count", "deleted_count", deleted, "max_records", p.config.MaxRecords)
	}

	if total > 0 {
		p.logger.Info("history pruning completed",
			"total_deleted", total,
			"retention_days", p.config.RetentionDays,
			"max_records", p.config.MaxRecords,
		)
		if p.onPruned != nil {
			p.onPruned(total)
		}
	}
	return total, nil
}
