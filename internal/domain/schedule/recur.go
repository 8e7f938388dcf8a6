package schedule

import (
	"fmt"
	"time"
)

// Interval is one evaluated occurrence window.
type Interval struct {
	Start time.Time
	End   time.Time
}

// ExpandWeekly evaluates an event's weekly slots inside [since, until],
// bounded by the event's own active period and capped at max intervals.
// Intervals spilling over the window edges are clamped to it.
func ExpandWeekly(ev Event, since, until time.Time, max int) []Interval {
	if max <= 0 || until.Before(since) {
		return nil
	}

	var out []Interval
	day := time.Date(since.Year(), since.Month(), since.Day(), 0, 0, 0, 0, since.Location())
	for ; !day.After(until); day = day.AddDate(0, 0, 1) {
		for _, slot := range ev.Slots {
			if slot.Weekday != day.Weekday() {
				continue
			}
			start, err := clockOn(day, slot.StartClock)
			if err != nil {
				continue
			}
			end, err := clockOn(day, slot.EndClock)
			if err != nil || end.Before(start) {
				continue
			}
			if !ev.StartsAt.IsZero() && end.Before(ev.StartsAt) {
				continue
			}
			if !ev.EndsAt.IsZero() && start.After(ev.EndsAt) {
				continue
			}
			if end.Before(since) || start.After(until) {
				continue
			}
			if start.Before(since) {
				start = since
			}
			if end.After(until) {
				end = until
			}
			out = append(out, Interval{Start: start, End: end})
			if len(out) >= max {
				return out
			}
		}
	}
	return out
}

// clockOn places an HH:MM:SS clock on a calendar day, in the day's location.
func clockOn(day time.Time, clock string) (time.Time, error) {
	var h, m, s int
	if _, err := fmt.Sscanf(clock, "%d:%d:%d", &h, &m, &s); err != nil {
		return time.Time{}, err
	}
	if h > 23 || m > 59 || s > 59 || h < 0 || m < 0 || s < 0 {
		return time.Time{}, fmt.Errorf("clock out of range: %s", clock)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, s, 0, day.Location()), nil
}
