package entry

import "time"

// TimeEntry is one logged interval in a member's time ledger.
type TimeEntry struct {
	ID              string    `json:"id"`
	MemberID        string    `json:"member_id"`
	TaskLabel       string    `json:"task_label"`
	TaskKey         *string   `json:"task_key,omitempty"`
	ProjectLabel    string    `json:"project_label,omitempty"`
	ActivityDate    string    `json:"activity_date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	RecordedBy      string    `json:"recorded_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// WeekEntry is a ledger entry decorated with the concrete instants it covers,
// reconstructed from its stored date and time-of-day fields for display
// inside a resolved week.
type WeekEntry struct {
	TimeEntry
	StartsAt time.Time `json:"starts_at"`
	EndsAt   time.Time `json:"ends_at"`
}
