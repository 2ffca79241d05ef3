package models

import "time"

// DateLayout is the calendar-day format used for session dates.
const DateLayout = "2006-01-02"

// Session is the log of a single day's learning work. Immutable once
// logged; owned exclusively by ProgressState.
type Session struct {
	Date          string   `json:"date"` // YYYY-MM-DD
	DurationHours float64  `json:"duration_hours"`
	TopicsCovered []string `json:"topics_covered"`
	ResourcesUsed []string `json:"resources_used"`
	Notes         string   `json:"notes,omitempty"`
	Mood          string   `json:"mood,omitempty"`
}

// Day parses the session date as a UTC calendar day. ok is false only when
// the data file was edited by hand into an unparseable shape; dates are
// validated before a session is ever appended.
func (s Session) Day() (time.Time, bool) {
	t, err := time.Parse(DateLayout, s.Date)
	return t, err == nil
}

// ProgressState tracks overall progress across the journey. The streak
// fields are derived from Sessions on every mutation and never hand-edited.
type ProgressState struct {
	Sessions            []Session `json:"daily_sessions"`
	CurrentStreak       int       `json:"current_streak"`
	LongestStreak       int       `json:"longest_streak"`
	LastSessionDate     string    `json:"last_session_date,omitempty"`
	TotalHours          float64   `json:"total_hours"`
	CompletedMilestones int       `json:"completed_milestones"`
	TotalMilestones     int       `json:"total_milestones"`
	UpdatedAt           time.Time `json:"updated_at"`
}
