package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func seedClosure(t *testing.T, db *DB, startDate, endDate, description string) {
	t.Helper()
	_, err := db.Exec(
		`INSERT INTO closures (start_date, end_date, description) VALUES (?, ?, ?)`,
		startDate, endDate, description,
	)
	require.NoError(t, err)
}

func TestClosureRepository_ListOverlapping(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewClosureRepository(db)

	seedClosure(t, db, "2024-02-26", "2024-03-01", "before")
	seedClosure(t, db, "2024-03-01", "2024-03-04", "spills in")
	seedClosure(t, db, "2024-03-05", "2024-03-05", "inside")
	seedClosure(t, db, "2024-03-10", "2024-03-15", "spills out")
	seedClosure(t, db, "2024-03-11", "2024-03-12", "after")

	closures, err := repo.ListOverlapping(ctx, "2024-03-04", "2024-03-10")
	require.NoError(t, err)
	require.Len(t, closures, 3)

	// Ordered by start date; touching the range edge counts as overlap.
	require.Equal(t, "spills in", closures[0].Description)
	require.Equal(t, "inside", closures[1].Description)
	require.Equal(t, "spills out", closures[2].Description)
}

func TestClosureRepository_ListOverlappingEmpty(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewClosureRepository(db)

	seedClosure(t, db, "2024-01-01", "2024-01-02", "january")

	closures, err := repo.ListOverlapping(ctx, "2024-03-04", "2024-03-10")
	require.NoError(t, err)
	require.Empty(t, closures)
}

func TestClosureRepository_NullCoverID(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewClosureRepository(db)

	seedClosure(t, db, "2024-03-05", "2024-03-05", "no cover")
	_, err := db.Exec(
		`INSERT INTO closures (start_date, end_date, description, cover_id)
		 VALUES ('2024-03-06', '2024-03-06', 'with cover', 'img-42')`,
	)
	require.NoError(t, err)

	closures, err := repo.ListOverlapping(ctx, "2024-03-04", "2024-03-10")
	require.NoError(t, err)
	require.Len(t, closures, 2)
	require.Nil(t, closures[0].CoverID)
	require.NotNil(t, closures[1].CoverID)
	require.Equal(t, "img-42", *closures[1].CoverID)
}
