package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema. Every statement is guarded with
// IF NOT EXISTS, so running it on an already-initialized database is a no-op
// and the server can restart on its own data file.
func (db *DB) RunMigrations() error {
	migration := `
-- Member time ledger
CREATE TABLE IF NOT EXISTS time_entries (
    id TEXT PRIMARY KEY,
    member_id TEXT NOT NULL,
    task_label TEXT NOT NULL,
    task_key TEXT,
    project_label TEXT NOT NULL DEFAULT '',
    activity_date TEXT NOT NULL,
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    duration_minutes INTEGER NOT NULL,
    recorded_by TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_member_entries ON time_entries(member_id);
CREATE INDEX IF NOT EXISTS idx_member_activity_date ON time_entries(member_id, activity_date);
CREATE INDEX IF NOT EXISTS idx_member_project ON time_entries(member_id, project_label);
CREATE INDEX IF NOT EXISTS idx_member_task ON time_entries(member_id, task_label);

-- Event directory
CREATE TABLE IF NOT EXISTS events (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    starts_at TIMESTAMP,
    ends_at TIMESTAMP,
    location TEXT NOT NULL DEFAULT '',
    accent_color TEXT NOT NULL DEFAULT '',
    type_label TEXT NOT NULL DEFAULT '',
    permalink TEXT NOT NULL DEFAULT ''
);

-- Weekly recurrence slots (weekday: 0=Sunday .. 6=Saturday, time.Weekday)
CREATE TABLE IF NOT EXISTS event_slots (
    event_id TEXT NOT NULL,
    weekday INTEGER NOT NULL CHECK(weekday BETWEEN 0 AND 6),
    start_time TEXT NOT NULL,
    end_time TEXT NOT NULL,
    FOREIGN KEY (event_id) REFERENCES events(id)
);
CREATE INDEX IF NOT EXISTS idx_event_slots ON event_slots(event_id);

-- Member role attachments
CREATE TABLE IF NOT EXISTS event_members (
    event_id TEXT NOT NULL,
    member_id TEXT NOT NULL,
    role TEXT NOT NULL CHECK(role IN ('facilitator', 'volunteer')),
    PRIMARY KEY (event_id, member_id, role),
    FOREIGN KEY (event_id) REFERENCES events(id)
);
CREATE INDEX IF NOT EXISTS idx_member_events ON event_members(member_id, role);

-- Closure periods (inclusive day ranges)
CREATE TABLE IF NOT EXISTS closures (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    start_date TEXT NOT NULL,
    end_date TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    cover_id TEXT
);
CREATE INDEX IF NOT EXISTS idx_closure_range ON closures(start_date, end_date);

-- API keys for member authentication
CREATE TABLE IF NOT EXISTS api_keys (
    key_hash TEXT PRIMARY KEY,
    member_id TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    last_used TIMESTAMP,
    description TEXT
);
CREATE INDEX IF NOT EXISTS idx_member_keys ON api_keys(member_id);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
