package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory database with the full schema applied.
func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.RunMigrations())
	return db
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	db := newTestDB(t)

	tables := []string{
		"time_entries",
		"events",
		"event_slots",
		"event_members",
		"closures",
		"api_keys",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s", table)
		require.Equal(t, table, name)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// A second run against the same connection must not trip over the
	// existing schema.
	require.NoError(t, db.RunMigrations())
}

func TestRunMigrations_SurvivesRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hourbook.db")

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	_, err = db.Exec(`INSERT INTO closures (start_date, end_date) VALUES ('2024-03-05', '2024-03-05')`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Reopening and migrating again, as the server does on boot, keeps the
	// stored data intact.
	db, err = New(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.RunMigrations())

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM closures`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestNew_EnablesForeignKeys(t *testing.T) {
	db := newTestDB(t)

	var enabled int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&enabled))
	require.Equal(t, 1, enabled)
}

func TestEventMembers_RejectUnknownRole(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec(`INSERT INTO events (id, title) VALUES ('e1', 'Atelier')`)
	require.NoError(t, err)

	_, err = db.Exec(
		`INSERT INTO event_members (event_id, member_id, role) VALUES ('e1', 'm1', 'visitor')`,
	)
	require.Error(t, err)
}
