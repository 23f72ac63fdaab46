// Package history records validation runs so that the CLI can show how a
// configuration's validity changed over time.
//
// Backends:
//
//   - SQLiteStore with the "sqlite3" driver (github.com/mattn/go-sqlite3, cgo)
//   - SQLiteStore with the "sqlite" driver (modernc.org/sqlite, pure Go)
//   - MemoryStore
//
// A Pruner applies the retention policy (age and record count) and a
// Scheduler runs it on a cron schedule:
//
//	store, err := history.Open(cfg.History, logger)
//	pruner := history.NewPruner(store, history.PrunerConfig{
//		RetentionDays: cfg.History.RetentionDays,
//		MaxRecords:    cfg.History.MaxRecords,
//		PruneSchedule: cfg.History.PruneSchedule,
//	}, logger)
//	err = history.NewScheduler(pruner).Start(ctx)
package history
