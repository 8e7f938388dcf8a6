package week

import (
	"regexp"
	"time"
)

// Week is the canonical Monday-to-Sunday browsing window. Start is Monday
// 00:00:00 and End is Sunday 23:59:59, both in the resolving location.
type Week struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

var isoDayPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Resolve canonicalizes a week parameter into a Week. The parameter is either
// a strict YYYY-MM-DD day or anything else (including "now" and malformed
// input), which resolves to the current week. A parseable day is interpreted
// in loc and rolled back to the Monday of its calendar week.
func Resolve(param string, loc *time.Location) Week {
	ref := time.Now().In(loc)
	if isoDayPattern.MatchString(param) {
		if parsed, err := time.ParseInLocation("2006-01-02", param, loc); err == nil {
			ref = parsed
		}
	}
	return Of(ref)
}

// Of returns the week containing t, in t's location.
func Of(t time.Time) Week {
	monday := MondayOf(t)
	sunday := monday.AddDate(0, 0, 6)
	return Week{
		Start: monday,
		End:   time.Date(sunday.Year(), sunday.Month(), sunday.Day(), 23, 59, 59, 0, t.Location()),
	}
}

// MondayOf returns midnight of the Monday of the calendar week containing t.
func MondayOf(t time.Time) time.Time {
	// Go weekday: Sunday=0 .. Saturday=6; ISO treats Sunday as day 7.
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := t.AddDate(0, 0, -(wd - 1))
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// StartDay and EndDay return the week bounds as calendar day strings, the
// form the ledger stores activity dates in.
func (w Week) StartDay() string { return w.Start.Format("2006-01-02") }

func (w Week) EndDay() string { return w.End.Format("2006-01-02") }

// Contains reports whether the instant falls inside the week window.
func (w Week) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
