package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	_ "modernc.org/sqlite"

	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// SQLite driver names as registered with database/sql.
const (
	// DriverCGO is github.com/mattn/go-sqlite3.
	DriverCGO = "sqlite3"
	// DriverPureGo is modernc.org/sqlite, for builds without cgo.
	DriverPureGo = "sqlite"
)

// SQLiteConfig contains configuration for the SQLite store.
type SQLiteConfig struct {
	// Driver is DriverCGO or DriverPureGo.
	Driver string

	// Path is the database file path. ":memory:" gives a private database.
	Path string

	// WALMode enables write-ahead logging.
	// Default: true
	WALMode bool

	// BusyTimeout is how long to wait on a locked database.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Driver:      DriverPureGo,
		Path:        "data/history.db",
		WALMode:     true,
		BusyTimeout: 5 * time.Second,
	}
}

// SQLiteStore implements Store on SQLite through either driver.
type SQLiteStore struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStore opens (creating if needed) the database and its schema.
func NewSQLiteStore(config *SQLiteConfig, logger *slog.Logger) (*SQLiteStore, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "history.sqlite", "driver", config.Driver)

	if config.Path != ":memory:" {
		if dir := filepath.Dir(config.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, NewStorageError(config.Driver, "open", err)
			}
		}
	}

	db, err := sql.Open(config.Driver, config.Path)
	if err != nil {
		return nil, NewStorageError(config.Driver, "open", err)
	}
	// One connection keeps ":memory:" databases shared and serializes writes.
	db.SetMaxOpenConns(1)

	s := &SQLiteStore{
		db:     db,
		config: config,
		logger: logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Debug("history store opened", "path", config.Path, "wal_mode", config.WALMode)
	return s, nil
}

func (s *SQLiteStore) initialize() error {
	if s.config.WALMode && s.config.Path != ":memory:" {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return NewStorageError(s.config.Driver, "enable_wal", err)
		}
	}

	busy := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", busy)); err != nil {
		return NewStorageError(s.config.Driver, "set_busy_timeout", err)
	}

	if _, err := s.db.Exec(Schema); err != nil {
		return NewStorageError(s.config.Driver, "create_schema", err)
	}
	if _, err := s.db.Exec(insertSchemaVersion, SchemaVersion); err != nil {
		return NewStorageError(s.config.Driver, "insert_schema_version", err)
	}

	var version int
	if err := s.db.QueryRow(getSchemaVersion).Scan(&version); err != nil {
		return NewStorageError(s.config.Driver, "get_schema_version", err)
	}
	if version != SchemaVersion {
		return NewStorageError(s.config.Driver, "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}
	return nil
}

// Record stores a finished run.
func (s *SQLiteStore) Record(ctx context.Context, run *Run) error {
	errs, err := json.Marshal(run.Errors)
	if err != nil {
		return NewStorageError(s.config.Driver, "record", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, schema_line, valid, error_count, errors, duration_ns, started_at_ns)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Source, string(run.Schema), boolToInt(run.Valid), run.ErrorCount,
		string(errs), int64(run.Duration), run.StartedAt.UnixNano(),
	)
	if err != nil {
		return NewStorageError(s.config.Driver, "record", err)
	}
	return nil
}

// Query returns the runs matching q, newest first.
func (s *SQLiteStore) Query(ctx context.Context, q Query) ([]*Run, error) {
	where, args := buildWhereClause(q)

	query := `SELECT id, source, schema_line, valid, error_count, errors, duration_ns, started_at_ns FROM runs`
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY started_at_ns DESC, id DESC"

	switch {
	case q.Limit > 0:
		query += " LIMIT ?"
		args = append(args, q.Limit)
	case q.Offset > 0:
		query += " LIMIT -1"
	}
	if q.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, q.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, NewStorageError(s.config.Driver, "query", err)
	}
	defer rows.Close()

	runs := []*Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, NewStorageError(s.config.Driver, "scan", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStorageError(s.config.Driver, "query", err)
	}
	return runs, nil
}

// Count returns the number of runs matching q.
func (s *SQLiteStore) Count(ctx context.Context, q Query) (int64, error) {
	where, args := buildWhereClause(q)
	query := "SELECT COUNT(*) FROM runs"
	if where != "" {
		query += " WHERE " + where
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, NewStorageError(s.config.Driver, "count", err)
	}
	return count, nil
}

// Delete removes runs started before the cutoff.
func (s *SQLiteStore) Delete(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE started_at_ns < ?", before.UnixNano())
	if err != nil {
		return 0, NewStorageError(s.config.Driver, "delete", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, NewStorageError(s.config.Driver, "delete", err)
	}
	return n, nil
}

// Trim keeps the newest keep runs.
func (s *SQLiteStore) Trim(ctx context.Context, keep int64) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY started_at_ns DESC, id DESC LIMIT ?
		)`, keep)
	if err != nil {
		return 0, NewStorageError(s.config.Driver, "trim", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, NewStorageError(s.config.Driver, "trim", err)
	}
	return n, nil
}

// Ping checks the database connection.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return NewStorageError(s.config.Driver, "ping", err)
	}
	return nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	if err := s.db.Close(); err != nil {
		return NewStorageError(s.config.Driver, "close", err)
	}
	s.logger.Debug("history store closed")
	return nil
}

func buildWhereClause(q Query) (string, []any) {
	var conditions []string
	var args []any

	if q.Source != "" {
		conditions = append(conditions, "source = ?")
		args = append(args, q.Source)
	}
	if q.Schema != "" {
		conditions = append(conditions, "schema_line = ?")
		args = append(args, string(q.Schema))
	}
	if q.Valid != nil {
		conditions = append(conditions, "valid = ?")
		args = append(args, boolToInt(*q.Valid))
	}
	if q.Since != nil {
		conditions = append(conditions, "started_at_ns >= ?")
		args = append(args, q.Since.UnixNano())
	}
	if q.Before != nil {
		conditions = append(conditions, "started_at_ns < ?")
		args = append(args, q.Before.UnixNano())
	}

	return strings.Join(conditions, " AND "), args
}

func scanRun(rows *sql.Rows) (*Run, error) {
	var (
		run        Run
		schemaLine string
		valid      int
		errs       sql.NullString
		durationNs int64
		startedNs  int64
	)
	if err := rows.Scan(&run.ID, &run.Source, &schemaLine, &valid, &run.ErrorCount,
		&errs, &durationNs, &startedNs); err != nil {
		return nil, err
	}

	run.Schema = types.Schema(schemaLine)
	run.Valid = valid != 0
	run.Duration = time.Duration(durationNs)
	run.StartedAt = time.Unix(0, startedNs).UTC()
	if errs.Valid && errs.String != "" && errs.String != "null" {
		if err := json.Unmarshal([]byte(errs.String), &run.Errors); err != nil {
			return nil, fmt.Errorf("decode errors of run %s: %w", run.ID, err)
		}
	}
	return &run, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
