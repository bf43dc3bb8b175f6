package model

// ProjectRef is the slim view of a project used in dashboard lists.
type ProjectRef struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	City     string        `json:"city"`
	District string        `json:"district"`
	Status   ProjectStatus `json:"status"`
	Progress int           `json:"progress"`
}

func (p Project) Ref() ProjectRef {
	return ProjectRef{
		ID:       p.ID,
		Name:     p.Name,
		City:     p.City,
		District: p.District,
		Status:   p.Status,
		Progress: p.Progress,
	}
}

type Staleness struct {
	Days5To10  []ProjectRef `json:"days_5_to_10"`
	Days10To15 []ProjectRef `json:"days_10_to_15"`
	Days15Plus []ProjectRef `json:"days_15_plus"`
	// Skipped lists projects whose last update date could not be read.
	Skipped []string `json:"skipped,omitempty"`
}

type DeadlineItem struct {
	ProjectRef
	ExpectedEndDate string `json:"expected_end_date"`
	// DaysLeft is negative once the deadline has passed.
	DaysLeft int `json:"days_left"`
}

type RecentUpdate struct {
	ProjectUpdate
	ProjectID     string        `json:"project_id"`
	ProjectName   string        `json:"project_name"`
	ProjectStatus ProjectStatus `json:"project_status"`
}

type ProgressSplit struct {
	Below50   []ProjectRef `json:"below_50"`
	AtLeast50 []ProjectRef `json:"at_least_50"`
}

type DistrictCount struct {
	District string `json:"district"`
	Count    int    `json:"count"`
}

type DashboardTotals struct {
	Active      int `json:"active"`
	Completed   int `json:"completed"`
	Delayed     int `json:"delayed"`
	Planned     int `json:"planned"`
	OnHold      int `json:"on_hold"`
	Total       int `json:"total"`
	ActiveUsers int `json:"active_users"`
}

type Dashboard struct {
	Date          string                `json:"date"`
	Totals        DashboardTotals       `json:"totals"`
	StatusCounts  map[ProjectStatus]int `json:"status_counts"`
	Staleness     Staleness             `json:"staleness"`
	ByDistrict    []DistrictCount       `json:"by_district"`
	Progress      ProgressSplit         `json:"progress"`
	Deadline      []DeadlineItem        `json:"deadline_approaching"`
	Overdue       []DeadlineItem        `json:"overdue"`
	RecentUpdates []RecentUpdate        `json:"recent_updates"`
}
