package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// Rename target fields. BulkRename implementations only accept these.
const (
	FieldProject = "project_label"
	FieldTask    = "task_label"
)

// Repository provides the label queries and bulk mutations the catalog needs.
type Repository interface {
	DistinctProjectLabels(ctx context.Context, memberID string) ([]string, error)
	BulkRename(ctx context.Context, memberID, field, oldLabel, newLabel string) (int64, error)
}

// Service tracks the distinct project and task labels a member has used and
// renames them in bulk.
type Service struct {
	entries Repository
	logger  *slog.Logger
}

// NewService creates a new catalog service.
func NewService(entries Repository, logger *slog.Logger) *Service {
	return &Service{entries: entries, logger: logger}
}

// Projects returns the distinct non-empty project labels across the member's
// entire history, sorted. An empty history yields an empty slice.
func (s *Service) Projects(ctx context.Context, memberID string) ([]string, error) {
	labels, err := s.entries.DistinctProjectLabels(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("listing project labels: %w", err)
	}

	projects := make([]string, 0, len(labels))
	for _, label := range labels {
		if strings.TrimSpace(label) != "" {
			projects = append(projects, label)
		}
	}
	sort.Strings(projects)
	return projects, nil
}

// RenameProject renames every entry of the member whose project label exactly
// matches oldLabel. A "no project" sentinel spelling as oldLabel targets
// entries with an empty label. Returns the number of entries updated.
func (s *Service) RenameProject(ctx context.Context, memberID, oldLabel, newLabel string) (int64, error) {
	oldLabel = strings.TrimSpace(oldLabel)
	newLabel = strings.TrimSpace(newLabel)
	if newLabel == "" {
		return 0, ErrLabelRequired
	}
	if strings.EqualFold(oldLabel, newLabel) {
		return 0, nil
	}
	if IsNoProject(oldLabel) {
		oldLabel = ""
	}

	count, err := s.entries.BulkRename(ctx, memberID, FieldProject, oldLabel, newLabel)
	if err != nil {
		return 0, fmt.Errorf("renaming project: %w", err)
	}
	s.logger.Info("renamed project", "member", memberID, "to", newLabel, "entries", count)
	return count, nil
}

// RenameTask renames every entry of the member whose task label exactly
// matches oldLabel. Both labels must be non-empty.
func (s *Service) RenameTask(ctx context.Context, memberID, oldLabel, newLabel string) (int64, error) {
	oldLabel = strings.TrimSpace(oldLabel)
	newLabel = strings.TrimSpace(newLabel)
	if oldLabel == "" || newLabel == "" {
		return 0, ErrLabelRequired
	}
	if strings.EqualFold(oldLabel, newLabel) {
		return 0, nil
	}

	count, err := s.entries.BulkRename(ctx, memberID, FieldTask, oldLabel, newLabel)
	if err != nil {
		return 0, fmt.Errorf("renaming task: %w", err)
	}
	s.logger.Info("renamed task", "member", memberID, "to", newLabel, "entries", count)
	return count, nil
}
