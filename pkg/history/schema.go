package history

// SchemaVersion is the current database schema version.
const SchemaVersion = 1

// Schema creates the history tables. Times are stored as Unix nanoseconds
// so that both SQLite drivers read them back identically.
const Schema = `
CREATE TABLE IF NOT EXISTS runs (
    id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    schema_line TEXT NOT NULL,
    valid INTEGER NOT NULL,
    error_count INTEGER NOT NULL,
    errors TEXT,
    duration_ns INTEGER NOT NULL,
    started_at_ns INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at_ns);
CREATE INDEX IF NOT EXISTS idx_runs_source ON runs(source);
`

const insertSchemaVersion = `
INSERT INTO schema_version (version, applied_at)
VALUES (?, datetime('now'))
ON CONFLICT(version) DO NOTHING;
`

const getSchemaVersion = `
SELECT version FROM schema_version ORDER BY version DESC LIMIT 1;
`
