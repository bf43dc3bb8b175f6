package model

type CalendarEntryKind string

const (
	EntryMilestone CalendarEntryKind = "milestone"
	EntryUpdate    CalendarEntryKind = "update"
)

type CalendarIndicator string

const (
	IndicatorMilestoneCompleted CalendarIndicator = "milestone-completed"
	IndicatorMilestone          CalendarIndicator = "milestone"
	IndicatorUpdate             CalendarIndicator = "update"
)

type CalendarEntry struct {
	Kind      CalendarEntryKind `json:"kind"`
	ID        string            `json:"id"`
	Label     string            `json:"label"`
	Completed bool              `json:"completed"`
	ImageURL  string            `json:"image_url,omitempty"`
}

type CalendarDay struct {
	Date      string            `json:"date"`
	Indicator CalendarIndicator `json:"indicator"`
	Entries   []CalendarEntry   `json:"entries"`
}

// Calendar is one month of a project's milestones and updates.
type Calendar struct {
	ProjectID string `json:"project_id"`
	Month     string `json:"month"`
	// LeadingBlanks is the weekday (Sunday = 0) of the first of the month.
	LeadingBlanks int           `json:"leading_blanks"`
	DaysInMonth   int           `json:"days_in_month"`
	Days          []CalendarDay `json:"days"`
}
