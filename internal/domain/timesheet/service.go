package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mverbist/hourbook/internal/domain/catalog"
	"github.com/mverbist/hourbook/internal/domain/entry"
	"github.com/mverbist/hourbook/internal/domain/report"
	"github.com/mverbist/hourbook/internal/domain/schedule"
	"github.com/mverbist/hourbook/internal/domain/week"
)

// Service orchestrates the ledger, catalog, aggregator and report services
// into the combined week responses the transport layer serves.
type Service struct {
	ledger   *entry.Service
	catalogs *catalog.Service
	schedule *schedule.Service
	reports  *report.Service
	loc      *time.Location
	logger   *slog.Logger
}

// NewService creates a new timesheet orchestrator.
func NewService(
	ledger *entry.Service,
	catalogs *catalog.Service,
	scheduleSvc *schedule.Service,
	reports *report.Service,
	loc *time.Location,
	logger *slog.Logger,
) *Service {
	return &Service{
		ledger:   ledger,
		catalogs: catalogs,
		schedule: scheduleSvc,
		reports:  reports,
		loc:      loc,
		logger:   logger,
	}
}

// WeekView is the combined response for one member and week.
type WeekView struct {
	Week           week.Week             `json:"week"`
	Occurrences    []schedule.Occurrence `json:"occurrences"`
	Entries        []entry.WeekEntry     `json:"entries"`
	Projects       []string              `json:"projects"`
	ProjectCatalog []string              `json:"project_catalog"`
	ProjectTotals  []report.ProjectTotal `json:"project_totals"`
}

// EntryResult is a week view extended with the entry a mutation produced.
type EntryResult struct {
	WeekView
	Entry *entry.TimeEntry `json:"entry"`
}

// DeleteResult is a week view extended with the removed entry's id.
type DeleteResult struct {
	WeekView
	DeletedID string `json:"deleted_id"`
}

// GetWeek resolves the week parameter and assembles the member's combined
// view for it.
func (s *Service) GetWeek(ctx context.Context, memberID, weekParam string) (*WeekView, error) {
	return s.weekView(ctx, memberID, week.Resolve(weekParam, s.loc))
}

// CreateEntry logs a new time entry and returns the view of the week the
// entry lands in.
func (s *Service) CreateEntry(ctx context.Context, memberID string, req entry.CreateRequest) (*EntryResult, error) {
	created, err := s.ledger.Create(ctx, memberID, req)
	if err != nil {
		return nil, err
	}
	view, err := s.weekView(ctx, memberID, week.Resolve(created.ActivityDate, s.loc))
	if err != nil {
		return nil, err
	}
	return &EntryResult{WeekView: *view, Entry: created}, nil
}

// UpdateEntry applies a partial update and returns the view of the week the
// merged entry belongs to.
func (s *Service) UpdateEntry(ctx context.Context, memberID, entryID string, req entry.UpdateRequest) (*EntryResult, error) {
	updated, err := s.ledger.Update(ctx, memberID, entryID, req)
	if err != nil {
		return nil, err
	}
	view, err := s.weekView(ctx, memberID, week.Resolve(updated.ActivityDate, s.loc))
	if err != nil {
		return nil, err
	}
	return &EntryResult{WeekView: *view, Entry: updated}, nil
}

// DeleteEntry removes an entry and returns the view of the week it was
// logged in.
func (s *Service) DeleteEntry(ctx context.Context, memberID, entryID string) (*DeleteResult, error) {
	existing, err := s.ledger.Get(ctx, memberID, entryID)
	if err != nil {
		return nil, err
	}
	if err := s.ledger.Delete(ctx, memberID, entryID); err != nil {
		return nil, err
	}
	view, err := s.weekView(ctx, memberID, week.Resolve(existing.ActivityDate, s.loc))
	if err != nil {
		return nil, err
	}
	return &DeleteResult{WeekView: *view, DeletedID: entryID}, nil
}

// RenameProject bulk-renames a project label across the member's history.
func (s *Service) RenameProject(ctx context.Context, memberID, oldLabel, newLabel string) (int64, error) {
	return s.catalogs.RenameProject(ctx, memberID, oldLabel, newLabel)
}

// RenameTask bulk-renames a task label across the member's history.
func (s *Service) RenameTask(ctx context.Context, memberID, oldLabel, newLabel string) (int64, error) {
	return s.catalogs.RenameTask(ctx, memberID, oldLabel, newLabel)
}

func (s *Service) weekView(ctx context.Context, memberID string, wk week.Week) (*WeekView, error) {
	occurrences, err := s.schedule.WeekOccurrences(ctx, memberID, wk)
	if err != nil {
		return nil, fmt.Errorf("aggregating occurrences: %w", err)
	}

	entries, projects, err := s.ledger.ListWeek(ctx, memberID, wk)
	if err != nil {
		return nil, err
	}

	projectCatalog, err := s.catalogs.Projects(ctx, memberID)
	if err != nil {
		return nil, err
	}

	totals, err := s.reports.ProjectTotals(ctx, memberID)
	if err != nil {
		return nil, err
	}

	return &WeekView{
		Week:           wk,
		Occurrences:    occurrences,
		Entries:        entries,
		Projects:       projects,
		ProjectCatalog: projectCatalog,
		ProjectTotals:  totals,
	}, nil
}
