package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/mverbist/hourbook/internal/domain/schedule"
)

// EventRepository is the SQLite-backed event directory. It satisfies
// schedule.EventDirectory.
type EventRepository struct {
	db *DB
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *DB) *EventRepository {
	return &EventRepository{db: db}
}

// EventIDsForMember returns the IDs of events the member is attached to
// under the given role
func (r *EventRepository) EventIDsForMember(ctx context.Context, memberID string, role schedule.Role) ([]string, error) {
	query := `
		SELECT event_id
		FROM event_members
		WHERE member_id = ? AND role = ?
		ORDER BY event_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, memberID, string(role))
	if err != nil {
		return nil, fmt.Errorf("failed to list member events: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan event id: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event id rows: %w", err)
	}
	return ids, nil
}

// FetchEvents loads full event descriptors, including weekly slots, for the
// given IDs. Unknown IDs are silently skipped.
func (r *EventRepository) FetchEvents(ctx context.Context, ids []string) ([]schedule.Event, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?,", len(ids))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, title, starts_at, ends_at, location, accent_color, type_label, permalink
		FROM events
		WHERE id IN (%s)
		ORDER BY id ASC
	`, placeholders)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}
	defer rows.Close()

	var events []schedule.Event
	for rows.Next() {
		var ev schedule.Event
		var startsAt, endsAt sql.NullTime
		err := rows.Scan(
			&ev.ID,
			&ev.Title,
			&startsAt,
			&endsAt,
			&ev.Location,
			&ev.AccentColor,
			&ev.TypeLabel,
			&ev.Permalink,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		if startsAt.Valid {
			ev.StartsAt = startsAt.Time
		}
		if endsAt.Valid {
			ev.EndsAt = endsAt.Time
		}
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	for i := range events {
		slots, err := r.eventSlots(ctx, events[i].ID)
		if err != nil {
			return nil, err
		}
		events[i].Slots = slots
	}
	return events, nil
}

func (r *EventRepository) eventSlots(ctx context.Context, eventID string) ([]schedule.WeeklySlot, error) {
	query := `
		SELECT weekday, start_time, end_time
		FROM event_slots
		WHERE event_id = ?
		ORDER BY weekday ASC, start_time ASC
	`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list event slots: %w", err)
	}
	defer rows.Close()

	var slots []schedule.WeeklySlot
	for rows.Next() {
		var weekday int
		var slot schedule.WeeklySlot
		if err := rows.Scan(&weekday, &slot.StartClock, &slot.EndClock); err != nil {
			return nil, fmt.Errorf("failed to scan event slot: %w", err)
		}
		slot.Weekday = time.Weekday(weekday)
		slots = append(slots, slot)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating slot rows: %w", err)
	}
	return slots, nil
}
