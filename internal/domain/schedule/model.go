package schedule

import (
	"encoding/json"
	"time"
)

// Kind discriminates the occurrence union on the wire.
type Kind string

const (
	KindEvent   Kind = "event"
	KindClosure Kind = "closure"
)

// Role names a member's attachment to an event.
type Role string

const (
	RoleFacilitator Role = "facilitator"
	RoleVolunteer   Role = "volunteer"
)

// Occurrence is one concrete interval on the weekly timeline: a single
// instance of a recurring event, a one-off event, or a closure day span.
type Occurrence interface {
	OccurrenceID() string
	OccurrenceKind() Kind
	StartsAt() time.Time
	EndsAt() time.Time
}

// EventOccurrence is one dated instance of an event inside a week.
type EventOccurrence struct {
	ID          string    `json:"occurrence_id"`
	EventID     string    `json:"event_id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Location    string    `json:"location,omitempty"`
	AccentColor string    `json:"accent_color,omitempty"`
	TypeLabel   string    `json:"type_label,omitempty"`
	Permalink   string    `json:"permalink,omitempty"`
}

func (o EventOccurrence) OccurrenceID() string { return o.ID }
func (o EventOccurrence) OccurrenceKind() Kind { return KindEvent }
func (o EventOccurrence) StartsAt() time.Time { return o.Start }
func (o EventOccurrence) EndsAt() time.Time { return o.End }

func (o EventOccurrence) MarshalJSON() ([]byte, error) {
	type alias EventOccurrence
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{Kind: KindEvent, alias: alias(o)})
}

// ClosureOccurrence is a closure period clamped to a week, rendered as one
// full-day span.
type ClosureOccurrence struct {
	ID          string    `json:"occurrence_id"`
	ClosureID   int64     `json:"closure_id"`
	Description string    `json:"description,omitempty"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	CoverID     *string   `json:"cover_id,omitempty"`
}

func (o ClosureOccurrence) OccurrenceID() string { return o.ID }
func (o ClosureOccurrence) OccurrenceKind() Kind { return KindClosure }
func (o ClosureOccurrence) StartsAt() time.Time { return o.Start }
func (o ClosureOccurrence) EndsAt() time.Time { return o.End }

func (o ClosureOccurrence) MarshalJSON() ([]byte, error) {
	type alias ClosureOccurrence
	return json.Marshal(struct {
		Kind Kind `json:"kind"`
		alias
	}{Kind: KindClosure, alias: alias(o)})
}

// Event is a full event descriptor: its own period, display attributes, and
// the weekly slots it recurs on.
type Event struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	StartsAt    time.Time    `json:"starts_at"`
	EndsAt      time.Time    `json:"ends_at"`
	Location    string       `json:"location,omitempty"`
	AccentColor string       `json:"accent_color,omitempty"`
	TypeLabel   string       `json:"type_label,omitempty"`
	Permalink   string       `json:"permalink,omitempty"`
	Slots       []WeeklySlot `json:"slots,omitempty"`
}

// WeeklySlot is one recurring weekday interval of an event, as local
// times of day.
type WeeklySlot struct {
	Weekday    time.Weekday `json:"weekday"`
	StartClock string       `json:"start_clock"` // HH:MM:SS
	EndClock   string       `json:"end_clock"`
}

// Closure is an inclusive calendar-day range during which the organization
// is closed. Owned by the closure directory; consumed read-only here.
type Closure struct {
	ID          int64   `json:"id"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`
	Description string  `json:"description,omitempty"`
	CoverID     *string `json:"cover_id,omitempty"`
}
