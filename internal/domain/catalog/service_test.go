package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/mverbist/hourbook/internal/domain/catalog"
	"github.com/mverbist/hourbook/internal/repository"
	"github.com/mverbist/hourbook/internal/repository/mocks"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCatalogService_Projects(t *testing.T) {
	ctx := context.Background()
	entries := &mocks.EntryRepository{}
	entries.On("DistinctProjectLabels", ctx, "m1").Return([]string{"Camp", "Atelier", "  "}, nil)

	svc := catalog.NewService(entries, testLogger())
	projects, err := svc.Projects(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, []string{"Atelier", "Camp"}, projects)
}

func TestCatalogService_Projects_EmptyHistory(t *testing.T) {
	ctx := context.Background()
	entries := &mocks.EntryRepository{}
	entries.On("DistinctProjectLabels", ctx, "m1").Return(nil, nil)

	svc := catalog.NewService(entries, testLogger())
	projects, err := svc.Projects(ctx, "m1")
	require.NoError(t, err)
	require.Empty(t, projects)
	require.NotNil(t, projects)
}

func TestCatalogService_RenameProject(t *testing.T) {
	ctx := context.Background()
	entries := &mocks.EntryRepository{}
	entries.On("BulkRename", ctx, "m1", catalog.FieldProject, "Camp", "Camp d'été").Return(int64(3), nil)

	svc := catalog.NewService(entries, testLogger())
	count, err := svc.RenameProject(ctx, "m1", "Camp", "Camp d'été")
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
	entries.AssertExpectations(t)
}

func TestCatalogService_RenameProject_SentinelTargetsEmptyLabel(t *testing.T) {
	ctx := context.Background()

	for _, sentinel := range []string{"Sans projet", "No project", "SANS PROJET", "no Project"} {
		entries := &mocks.EntryRepository{}
		entries.On("BulkRename", ctx, "m1", catalog.FieldProject, "", "Divers").Return(int64(2), nil)

		svc := catalog.NewService(entries, testLogger())
		count, err := svc.RenameProject(ctx, "m1", sentinel, "Divers")
		require.NoError(t, err, "sentinel %q", sentinel)
		require.Equal(t, int64(2), count, "sentinel %q", sentinel)
		entries.AssertExpectations(t)
	}
}

func TestCatalogService_RenameProject_SameLabelIsNoOp(t *testing.T) {
	ctx := context.Background()
	entries := &mocks.EntryRepository{}

	svc := catalog.NewService(entries, testLogger())
	count, err := svc.RenameProject(ctx, "m1", "camp", "Camp")
	require.NoError(t, err)
	require.Zero(t, count)
	entries.AssertNotCalled(t, "BulkRename", ctx, "m1", catalog.FieldProject, "camp", "Camp")
}

func TestCatalogService_RenameProject_EmptyNewLabel(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(&mocks.EntryRepository{}, testLogger())

	_, err := svc.RenameProject(ctx, "m1", "Camp", "   ")
	require.ErrorIs(t, err, catalog.ErrLabelRequired)
	require.ErrorIs(t, err, repository.ErrInvalidInput)
}

func TestCatalogService_RenameTask(t *testing.T) {
	ctx := context.Background()
	entries := &mocks.EntryRepository{}
	entries.On("BulkRename", ctx, "m1", catalog.FieldTask, "Animation", "Animation jeunesse").Return(int64(5), nil)

	svc := catalog.NewService(entries, testLogger())
	count, err := svc.RenameTask(ctx, "m1", "Animation", "Animation jeunesse")
	require.NoError(t, err)
	require.Equal(t, int64(5), count)
}

func TestCatalogService_RenameTask_RequiresBothLabels(t *testing.T) {
	ctx := context.Background()
	svc := catalog.NewService(&mocks.EntryRepository{}, testLogger())

	_, err := svc.RenameTask(ctx, "m1", "", "Animation")
	require.ErrorIs(t, err, catalog.ErrLabelRequired)

	_, err = svc.RenameTask(ctx, "m1", "Animation", "")
	require.ErrorIs(t, err, catalog.ErrLabelRequired)
}

func TestIsNoProject(t *testing.T) {
	require.True(t, catalog.IsNoProject("Sans projet"))
	require.True(t, catalog.IsNoProject("no project"))
	require.True(t, catalog.IsNoProject("NO PROJECT"))
	require.False(t, catalog.IsNoProject("Camp"))
	require.False(t, catalog.IsNoProject(""))
}
