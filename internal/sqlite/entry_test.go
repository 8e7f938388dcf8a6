package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/mverbist/hourbook/internal/domain/catalog"
	"github.com/mverbist/hourbook/internal/domain/entry"
	"github.com/mverbist/hourbook/internal/repository"
	"github.com/stretchr/testify/require"
)

func testEntry(id, memberID, project, task, day string) *entry.TimeEntry {
	now := time.Now().UTC().Truncate(time.Second)
	key := entry.Slugify(task)
	e := &entry.TimeEntry{
		ID:              id,
		MemberID:        memberID,
		TaskLabel:       task,
		ProjectLabel:    project,
		ActivityDate:    day,
		StartTime:       "10:00:00",
		EndTime:         "12:00:00",
		DurationMinutes: 120,
		RecordedBy:      memberID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if key != "" {
		e.TaskKey = &key
	}
	return e
}

func TestEntryRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	created := testEntry("e1", "m1", "Camp", "Camp d'été", "2024-03-05")
	require.NoError(t, repo.Create(ctx, created))

	got, err := repo.Get(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, "m1", got.MemberID)
	require.Equal(t, "Camp d'été", got.TaskLabel)
	require.NotNil(t, got.TaskKey)
	require.Equal(t, "camp-d-ete", *got.TaskKey)
	require.Equal(t, 120, got.DurationMinutes)
}

func TestEntryRepository_GetMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	_, err := repo.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEntryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	e := testEntry("e1", "m1", "Camp", "Animation", "2024-03-05")
	require.NoError(t, repo.Create(ctx, e))

	e.TaskLabel = "Animation jeunesse"
	e.EndTime = "13:00:00"
	e.DurationMinutes = 180
	require.NoError(t, repo.Update(ctx, e))

	got, err := repo.Get(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, "Animation jeunesse", got.TaskLabel)
	require.Equal(t, 180, got.DurationMinutes)
}

func TestEntryRepository_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	err := repo.Update(ctx, testEntry("ghost", "m1", "", "Animation", "2024-03-05"))
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestEntryRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, testEntry("e1", "m1", "", "Animation", "2024-03-05")))
	require.NoError(t, repo.Delete(ctx, "e1"))

	_, err := repo.Get(ctx, "e1")
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.ErrorIs(t, repo.Delete(ctx, "e1"), repository.ErrNotFound)
}

func TestEntryRepository_ListByMemberAndRange(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, testEntry("before", "m1", "", "a", "2024-03-03")))
	require.NoError(t, repo.Create(ctx, testEntry("first", "m1", "", "b", "2024-03-04")))
	require.NoError(t, repo.Create(ctx, testEntry("mid", "m1", "", "c", "2024-03-06")))
	require.NoError(t, repo.Create(ctx, testEntry("last", "m1", "", "d", "2024-03-10")))
	require.NoError(t, repo.Create(ctx, testEntry("after", "m1", "", "e", "2024-03-11")))
	require.NoError(t, repo.Create(ctx, testEntry("other", "m2", "", "f", "2024-03-06")))

	listed, err := repo.ListByMemberAndRange(ctx, "m1", "2024-03-04", "2024-03-10")
	require.NoError(t, err)
	require.Len(t, listed, 3)

	// Both range edges are inclusive and the order is by activity date.
	require.Equal(t, "first", listed[0].ID)
	require.Equal(t, "mid", listed[1].ID)
	require.Equal(t, "last", listed[2].ID)
}

func TestEntryRepository_DistinctProjectLabels(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, testEntry("e1", "m1", "Camp", "a", "2024-03-04")))
	require.NoError(t, repo.Create(ctx, testEntry("e2", "m1", "Camp", "b", "2024-03-05")))
	require.NoError(t, repo.Create(ctx, testEntry("e3", "m1", "Atelier", "c", "2024-03-06")))
	require.NoError(t, repo.Create(ctx, testEntry("e4", "m1", "", "d", "2024-03-07")))
	require.NoError(t, repo.Create(ctx, testEntry("e5", "m2", "Secret", "e", "2024-03-07")))

	labels, err := repo.DistinctProjectLabels(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, []string{"Atelier", "Camp"}, labels)
}

func TestEntryRepository_BulkRenameProject(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, testEntry("e1", "m1", "Camp", "a", "2024-03-04")))
	require.NoError(t, repo.Create(ctx, testEntry("e2", "m1", "Camp", "b", "2024-03-05")))
	require.NoError(t, repo.Create(ctx, testEntry("e3", "m1", "Atelier", "c", "2024-03-06")))
	// Another member's entries under the same label stay untouched.
	require.NoError(t, repo.Create(ctx, testEntry("e4", "m2", "Camp", "d", "2024-03-06")))

	count, err := repo.BulkRename(ctx, "m1", catalog.FieldProject, "Camp", "Camp d'été")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	labels, err := repo.DistinctProjectLabels(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, []string{"Atelier", "Camp d'été"}, labels)

	other, err := repo.Get(ctx, "e4")
	require.NoError(t, err)
	require.Equal(t, "Camp", other.ProjectLabel)
}

func TestEntryRepository_BulkRenameTask(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, testEntry("e1", "m1", "", "Accueil", "2024-03-04")))
	require.NoError(t, repo.Create(ctx, testEntry("e2", "m1", "", "Accueil", "2024-03-05")))

	count, err := repo.BulkRename(ctx, "m1", catalog.FieldTask, "Accueil", "Accueil du soir")
	require.NoError(t, err)
	require.Equal(t, int64(2), count)

	got, err := repo.Get(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, "Accueil du soir", got.TaskLabel)
}

func TestEntryRepository_BulkRenameEmptyLabelTarget(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	require.NoError(t, repo.Create(ctx, testEntry("e1", "m1", "", "a", "2024-03-04")))
	require.NoError(t, repo.Create(ctx, testEntry("e2", "m1", "Camp", "b", "2024-03-05")))

	count, err := repo.BulkRename(ctx, "m1", catalog.FieldProject, "", "Divers")
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	got, err := repo.Get(ctx, "e1")
	require.NoError(t, err)
	require.Equal(t, "Divers", got.ProjectLabel)
}

func TestEntryRepository_BulkRenameRejectsUnknownField(t *testing.T) {
	ctx := context.Background()
	repo := NewEntryRepository(newTestDB(t))

	_, err := repo.BulkRename(ctx, "m1", "recorded_by", "a", "b")
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}
