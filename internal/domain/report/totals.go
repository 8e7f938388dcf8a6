package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mverbist/hourbook/internal/domain/catalog"
	"github.com/mverbist/hourbook/internal/domain/entry"
	"github.com/mverbist/hourbook/internal/domain/week"
)

// ProjectTotal aggregates a member's logged minutes for one project label,
// with year, month, week and task breakdowns.
type ProjectTotal struct {
	Project      string         `json:"project"`
	TotalMinutes int            `json:"total_minutes"`
	Years        map[string]int `json:"years"`
	Months       map[string]int `json:"months"`
	Weeks        map[string]int `json:"weeks"`
	Tasks        map[string]int `json:"tasks"`
}

// HistoryRepository loads a member's complete ledger history.
type HistoryRepository interface {
	ListAllByMember(ctx context.Context, memberID string) ([]entry.TimeEntry, error)
}

// Service computes time aggregates over a member's full history.
type Service struct {
	entries HistoryRepository
	logger  *slog.Logger
}

// NewService creates a new aggregation service.
func NewService(entries HistoryRepository, logger *slog.Logger) *Service {
	return &Service{entries: entries, logger: logger}
}

// ProjectTotals groups the member's entire history by project label, using
// the "no project" sentinel for unlabeled entries. Entries with a
// non-positive duration are skipped; entries with an unparsable activity
// date still count toward the grand total and task buckets but are left out
// of the calendar buckets. Order of the result is unspecified.
func (s *Service) ProjectTotals(ctx context.Context, memberID string) ([]ProjectTotal, error) {
	history, err := s.entries.ListAllByMember(ctx, memberID)
	if err != nil {
		return nil, fmt.Errorf("loading history: %w", err)
	}

	byProject := map[string]*ProjectTotal{}
	for _, e := range history {
		if e.DurationMinutes <= 0 {
			continue
		}

		label := strings.TrimSpace(e.ProjectLabel)
		if label == "" {
			label = catalog.NoProjectLabel
		}
		total, ok := byProject[label]
		if !ok {
			total = &ProjectTotal{
				Project: label,
				Years:   map[string]int{},
				Months:  map[string]int{},
				Weeks:   map[string]int{},
				Tasks:   map[string]int{},
			}
			byProject[label] = total
		}

		total.TotalMinutes += e.DurationMinutes
		total.Tasks[e.TaskLabel] += e.DurationMinutes

		day, parseErr := time.ParseInLocation("2006-01-02", e.ActivityDate, time.UTC)
		if parseErr != nil {
			s.logger.Warn("entry with unparsable activity date kept out of calendar buckets",
				"entry", e.ID, "activity_date", e.ActivityDate)
			continue
		}
		total.Years[day.Format("2006")] += e.DurationMinutes
		total.Months[day.Format("2006-01")] += e.DurationMinutes
		total.Weeks[week.MondayOf(day).Format("2006-01-02")] += e.DurationMinutes
	}

	totals := make([]ProjectTotal, 0, len(byProject))
	for _, total := range byProject {
		totals = append(totals, *total)
	}
	return totals, nil
}
