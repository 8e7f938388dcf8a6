package entry

import (
	"fmt"
	"math"
	"regexp"
	"time"
)

var (
	dayPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
)

// normalizeClock validates a 24h H:MM[:SS] time of day and returns it in
// canonical HH:MM:SS form.
func normalizeClock(raw string) (string, bool) {
	m := clockPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	var h, min, sec int
	fmt.Sscanf(m[1], "%d", &h)
	fmt.Sscanf(m[2], "%d", &min)
	if m[3] != "" {
		fmt.Sscanf(m[3], "%d", &sec)
	}
	if h > 23 || min > 59 || sec > 59 {
		return "", false
	}
	return fmt.Sprintf("%02d:%02d:%02d", h, min, sec), true
}

// combine joins a calendar day and a canonical clock into an instant in loc.
func combine(day, clock string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05", day+" "+clock, loc)
}

// resolveInterval validates a (day, start, end) triple and returns the two
// bounds, their canonical clock forms, and the rounded duration in minutes.
func resolveInterval(day, startRaw, endRaw string, loc *time.Location) (bounds [2]time.Time, clocks [2]string, minutes int, err error) {
	if !dayPattern.MatchString(day) {
		return bounds, clocks, 0, ErrInvalidDate
	}
	if _, parseErr := time.ParseInLocation("2006-01-02", day, loc); parseErr != nil {
		return bounds, clocks, 0, ErrInvalidDate
	}

	startClock, ok := normalizeClock(startRaw)
	if !ok {
		return bounds, clocks, 0, ErrTimeRequired
	}
	endClock, ok := normalizeClock(endRaw)
	if !ok {
		return bounds, clocks, 0, ErrTimeRequired
	}

	start, err := combine(day, startClock, loc)
	if err != nil {
		return bounds, clocks, 0, ErrInvalidDate
	}
	end, err := combine(day, endClock, loc)
	if err != nil {
		return bounds, clocks, 0, ErrInvalidDate
	}

	if !end.After(start) {
		return bounds, clocks, 0, ErrEndBeforeStart
	}

	minutes = int(math.Round(end.Sub(start).Seconds() / 60))
	if minutes <= 0 {
		return bounds, clocks, 0, ErrInvalidDuration
	}

	return [2]time.Time{start, end}, [2]string{startClock, endClock}, minutes, nil
}
