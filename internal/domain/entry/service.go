package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mverbist/hourbook/internal/domain/week"
	"github.com/mverbist/hourbook/internal/repository"
)

// Service handles time ledger business logic.
type Service struct {
	entries Repository
	loc     *time.Location
	logger  *slog.Logger
}

// NewService creates a new ledger service. All day and clock inputs are
// interpreted in loc.
func NewService(entries Repository, loc *time.Location, logger *slog.Logger) *Service {
	return &Service{
		entries: entries,
		loc:     loc,
		logger:  logger,
	}
}

// CreateRequest describes a new ledger entry.
type CreateRequest struct {
	TaskLabel    string
	ProjectLabel string
	Day          string // YYYY-MM-DD
	StartTime    string // H:MM[:SS], 24h
	EndTime      string
}

// UpdateRequest describes a partial entry update. Nil fields keep the
// stored value.
type UpdateRequest struct {
	TaskLabel    *string
	ProjectLabel *string
	Day          *string
	StartTime    *string
	EndTime      *string
}

// Create validates and persists a new entry owned by memberID.
func (s *Service) Create(ctx context.Context, memberID string, req CreateRequest) (*TimeEntry, error) {
	task := strings.TrimSpace(req.TaskLabel)
	if task == "" {
		return nil, ErrTaskRequired
	}

	_, clocks, minutes, err := resolveInterval(req.Day, req.StartTime, req.EndTime, s.loc)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	e := &TimeEntry{
		ID:              uuid.NewString(),
		MemberID:        memberID,
		TaskLabel:       task,
		TaskKey:         taskKey(task),
		ProjectLabel:    strings.TrimSpace(req.ProjectLabel),
		ActivityDate:    req.Day,
		StartTime:       clocks[0],
		EndTime:         clocks[1],
		DurationMinutes: minutes,
		RecordedBy:      memberID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.entries.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("creating entry: %w", err)
	}
	s.logger.Info("entry logged", "member", memberID, "entry", e.ID, "day", e.ActivityDate, "minutes", e.DurationMinutes)
	return e, nil
}

// Update merges the supplied fields over the stored entry, re-validates the
// result exactly as Create does, and persists it. Two concurrent updates to
// the same entry are last-write-wins; there is no version check.
func (s *Service) Update(ctx context.Context, memberID, id string, req UpdateRequest) (*TimeEntry, error) {
	current, err := s.ownedEntry(ctx, memberID, id)
	if err != nil {
		return nil, err
	}

	task := current.TaskLabel
	if req.TaskLabel != nil {
		task = strings.TrimSpace(*req.TaskLabel)
	}
	if task == "" {
		return nil, ErrTaskRequired
	}

	project := current.ProjectLabel
	if req.ProjectLabel != nil {
		project = strings.TrimSpace(*req.ProjectLabel)
	}
	day := current.ActivityDate
	if req.Day != nil {
		day = *req.Day
	}
	start := current.StartTime
	if req.StartTime != nil {
		start = *req.StartTime
	}
	end := current.EndTime
	if req.EndTime != nil {
		end = *req.EndTime
	}

	_, clocks, minutes, err := resolveInterval(day, start, end, s.loc)
	if err != nil {
		return nil, err
	}

	updated := *current
	updated.TaskLabel = task
	updated.TaskKey = taskKey(task)
	updated.ProjectLabel = project
	updated.ActivityDate = day
	updated.StartTime = clocks[0]
	updated.EndTime = clocks[1]
	updated.DurationMinutes = minutes
	updated.UpdatedAt = time.Now()

	if err := s.entries.Update(ctx, &updated); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("updating entry: %w", err)
	}
	s.logger.Info("entry updated", "member", memberID, "entry", id)
	return &updated, nil
}

// Delete removes an entry after verifying ownership.
func (s *Service) Delete(ctx context.Context, memberID, id string) error {
	if _, err := s.ownedEntry(ctx, memberID, id); err != nil {
		return err
	}
	if err := s.entries.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrEntryNotFound
		}
		return fmt.Errorf("deleting entry: %w", err)
	}
	s.logger.Info("entry deleted", "member", memberID, "entry", id)
	return nil
}

// Get returns an entry owned by memberID. Entries of other members are
// reported as not found.
func (s *Service) Get(ctx context.Context, memberID, id string) (*TimeEntry, error) {
	return s.ownedEntry(ctx, memberID, id)
}

// ListWeek returns the member's entries whose activity date falls inside the
// week, each with reconstructed display instants, plus the sorted distinct
// non-empty project labels present in that week.
func (s *Service) ListWeek(ctx context.Context, memberID string, wk week.Week) ([]WeekEntry, []string, error) {
	stored, err := s.entries.ListByMemberAndRange(ctx, memberID, wk.StartDay(), wk.EndDay())
	if err != nil {
		return nil, nil, fmt.Errorf("listing entries: %w", err)
	}

	entries := make([]WeekEntry, 0, len(stored))
	seen := map[string]bool{}
	for _, e := range stored {
		entries = append(entries, s.reconstruct(e))
		if e.ProjectLabel != "" && !seen[e.ProjectLabel] {
			seen[e.ProjectLabel] = true
		}
	}

	projects := make([]string, 0, len(seen))
	for label := range seen {
		projects = append(projects, label)
	}
	sort.Strings(projects)

	return entries, projects, nil
}

// reconstruct derives the display instants of a stored entry. When only one
// of the time-of-day fields survives, the other bound comes from the stored
// duration.
func (s *Service) reconstruct(e TimeEntry) WeekEntry {
	we := WeekEntry{TimeEntry: e}
	duration := time.Duration(e.DurationMinutes) * time.Minute

	switch {
	case e.StartTime != "" && e.EndTime != "":
		we.StartsAt, _ = combine(e.ActivityDate, e.StartTime, s.loc)
		we.EndsAt, _ = combine(e.ActivityDate, e.EndTime, s.loc)
	case e.StartTime != "":
		we.StartsAt, _ = combine(e.ActivityDate, e.StartTime, s.loc)
		we.EndsAt = we.StartsAt.Add(duration)
	case e.EndTime != "":
		we.EndsAt, _ = combine(e.ActivityDate, e.EndTime, s.loc)
		we.StartsAt = we.EndsAt.Add(-duration)
	default:
		we.StartsAt, _ = time.ParseInLocation("2006-01-02", e.ActivityDate, s.loc)
		we.EndsAt = we.StartsAt.Add(duration)
	}
	return we
}

func (s *Service) ownedEntry(ctx context.Context, memberID, id string) (*TimeEntry, error) {
	e, err := s.entries.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("loading entry: %w", err)
	}
	if e.MemberID != memberID {
		return nil, ErrEntryNotFound
	}
	return e, nil
}

func taskKey(task string) *string {
	if slug := Slugify(task); slug != "" {
		return &slug
	}
	return nil
}
