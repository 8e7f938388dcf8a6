package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/mverbist/hourbook/internal/domain/week"
)

// DefaultMaxOccurrences caps per-event schedule expansion.
const DefaultMaxOccurrences = 100

// EventDirectory resolves a member's events and their descriptors.
type EventDirectory interface {
	EventIDsForMember(ctx context.Context, memberID string, role Role) ([]string, error)
	FetchEvents(ctx context.Context, ids []string) ([]Event, error)
}

// ClosureDirectory lists closures overlapping a day range.
type ClosureDirectory interface {
	ListOverlapping(ctx context.Context, fromDay, toDay string) ([]Closure, error)
}

// Expander evaluates an event's recurrence schedule inside a window.
type Expander func(ev Event, since, until time.Time, max int) []Interval

// PostProcessor reworks the merged timeline after aggregation, e.g. to
// inject synthetic entries the aggregator knows nothing about.
type PostProcessor func([]Occurrence) []Occurrence

// Service merges a member's event occurrences and the organization's
// closures into one sorted weekly timeline.
type Service struct {
	events         EventDirectory
	closures       ClosureDirectory
	expand         Expander
	maxOccurrences int
	logger         *slog.Logger
}

// NewService creates a new occurrence aggregator. maxOccurrences <= 0 falls
// back to DefaultMaxOccurrences.
func NewService(events EventDirectory, closures ClosureDirectory, maxOccurrences int, logger *slog.Logger) *Service {
	if maxOccurrences <= 0 {
		maxOccurrences = DefaultMaxOccurrences
	}
	return &Service{
		events:         events,
		closures:       closures,
		expand:         ExpandWeekly,
		maxOccurrences: maxOccurrences,
		logger:         logger,
	}
}

// WeekOccurrences builds the merged timeline for one member and week,
// sorted ascending by start with a stable kind+id tiebreak. Optional post
// processors run in order over the sorted result.
func (s *Service) WeekOccurrences(ctx context.Context, memberID string, wk week.Week, post ...PostProcessor) ([]Occurrence, error) {
	merged := make([]Occurrence, 0)

	events, err := s.memberEvents(ctx, memberID)
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		merged = append(merged, s.eventOccurrences(ev, wk)...)
	}

	closures, err := s.closures.ListOverlapping(ctx, wk.StartDay(), wk.EndDay())
	if err != nil {
		return nil, fmt.Errorf("listing closures: %w", err)
	}
	for _, c := range closures {
		if occ, ok := closureOccurrence(c, wk); ok {
			merged = append(merged, occ)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		si, sj := merged[i].StartsAt(), merged[j].StartsAt()
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return sortKey(merged[i]) < sortKey(merged[j])
	})

	for _, fn := range post {
		merged = fn(merged)
	}
	return merged, nil
}

// memberEvents resolves the events the member is attached to under either
// role, de-duplicated, then fetches their descriptors.
func (s *Service) memberEvents(ctx context.Context, memberID string) ([]Event, error) {
	seen := map[string]bool{}
	var ids []string
	for _, role := range []Role{RoleFacilitator, RoleVolunteer} {
		roleIDs, err := s.events.EventIDsForMember(ctx, memberID, role)
		if err != nil {
			return nil, fmt.Errorf("resolving %s events: %w", role, err)
		}
		for _, id := range roleIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	events, err := s.events.FetchEvents(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching events: %w", err)
	}
	return events, nil
}

// eventOccurrences expands one event into the week. When the schedule yields
// nothing but the event's own period overlaps the week, a single fallback
// occurrence is synthesized from that period.
func (s *Service) eventOccurrences(ev Event, wk week.Week) []Occurrence {
	intervals := s.expand(ev, wk.Start, wk.End, s.maxOccurrences)

	if len(intervals) == 0 && overlapsWeek(ev, wk) {
		s.logger.Debug("event yielded no slot occurrences, falling back to its period", "event", ev.ID)
		start, end := ev.StartsAt, ev.EndsAt
		if start.Before(wk.Start) {
			start = wk.Start
		}
		if end.After(wk.End) {
			end = wk.End
		}
		intervals = []Interval{{Start: start, End: end}}
	}

	out := make([]Occurrence, 0, len(intervals))
	for _, iv := range intervals {
		out = append(out, EventOccurrence{
			ID:          fmt.Sprintf("%s-%s", ev.ID, iv.Start.Format("20060102T150405")),
			EventID:     ev.ID,
			Title:       ev.Title,
			Start:       iv.Start,
			End:         iv.End,
			Location:    ev.Location,
			AccentColor: ev.AccentColor,
			TypeLabel:   ev.TypeLabel,
			Permalink:   ev.Permalink,
		})
	}
	return out
}

// closureOccurrence clamps a closure to the week and renders it as one
// full-day occurrence. The ID derives from closure id plus clamped start
// date, so repeated requests produce identical occurrences.
func closureOccurrence(c Closure, wk week.Week) (ClosureOccurrence, bool) {
	fromDay, toDay := c.StartDate, c.EndDate
	if fromDay < wk.StartDay() {
		fromDay = wk.StartDay()
	}
	if toDay > wk.EndDay() {
		toDay = wk.EndDay()
	}
	if toDay < fromDay {
		return ClosureOccurrence{}, false
	}

	loc := wk.Start.Location()
	first, err := time.ParseInLocation("2006-01-02", fromDay, loc)
	if err != nil {
		return ClosureOccurrence{}, false
	}
	last, err := time.ParseInLocation("2006-01-02", toDay, loc)
	if err != nil {
		return ClosureOccurrence{}, false
	}

	return ClosureOccurrence{
		ID:          fmt.Sprintf("closure-%d-%s", c.ID, fromDay),
		ClosureID:   c.ID,
		Description: c.Description,
		Start:       first,
		End:         time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 0, loc),
		CoverID:     c.CoverID,
	}, true
}

func overlapsWeek(ev Event, wk week.Week) bool {
	if ev.StartsAt.IsZero() && ev.EndsAt.IsZero() {
		return false
	}
	return !ev.EndsAt.Before(wk.Start) && !ev.StartsAt.After(wk.End)
}

func sortKey(o Occurrence) string {
	return string(o.OccurrenceKind()) + ":" + o.OccurrenceID()
}
