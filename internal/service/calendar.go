package service

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nurpe/obras-portal/internal/model"
)

const monthLayout = "2006-01"

// BuildCalendar merges milestones and updates by date for one month. An
// empty month selects the month of the latest dated entry.
func BuildCalendar(project model.Project, month string, now time.Time) (model.Calendar, error) {
	byDate := make(map[string][]model.CalendarEntry)
	var latest time.Time

	add := func(date string, entry model.CalendarEntry) {
		at, ok := model.ParseDate(date)
		if !ok {
			return
		}
		key := model.FormatDate(at)
		byDate[key] = append(byDate[key], entry)
		if at.After(latest) {
			latest = at
		}
	}
	for _, ms := range project.Milestones {
		add(ms.Date, model.CalendarEntry{Kind: model.EntryMilestone, ID: ms.ID, Label: ms.Label, Completed: ms.Completed})
	}
	for _, u := range project.Updates {
		add(u.Date, model.CalendarEntry{Kind: model.EntryUpdate, ID: u.ID, Label: u.Title, ImageURL: u.ImageURL})
	}

	var first time.Time
	month = strings.TrimSpace(month)
	switch {
	case month != "":
		parsed, err := time.Parse(monthLayout, month)
		if err != nil {
			return model.Calendar{}, fmt.Errorf("%w: month must be YYYY-MM", ErrInvalidInput)
		}
		first = parsed
	case !latest.IsZero():
		first = time.Date(latest.Year(), latest.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		today := model.DateOnly(now)
		first = time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	cal := model.Calendar{
		ProjectID:     project.ID,
		Month:         first.Format(monthLayout),
		LeadingBlanks: int(first.Weekday()),
		DaysInMonth:   first.AddDate(0, 1, -1).Day(),
		Days:          []model.CalendarDay{},
	}
	prefix := cal.Month + "-"
	for date, entries := range byDate {
		if !strings.HasPrefix(date, prefix) {
			continue
		}
		cal.Days = append(cal.Days, model.CalendarDay{
			Date:      date,
			Indicator: indicatorFor(entries),
			Entries:   entries,
		})
	}
	sort.Slice(cal.Days, func(i, j int) bool {
		return cal.Days[i].Date < cal.Days[j].Date
	})
	return cal, nil
}

func indicatorFor(entries []model.CalendarEntry) model.CalendarIndicator {
	indicator := model.IndicatorUpdate
	for _, e := range entries {
		if e.Kind != model.EntryMilestone {
			continue
		}
		if e.Completed {
			return model.IndicatorMilestoneCompleted
		}
		indicator = model.IndicatorMilestone
	}
	return indicator
}
