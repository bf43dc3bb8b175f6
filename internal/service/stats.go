package service

import (
	"sort"
	"time"

	"github.com/nurpe/obras-portal/internal/model"
)

// StatusCounts always carries every status key, zero-filled.
func StatusCounts(list []model.Project) map[model.ProjectStatus]int {
	counts := make(map[model.ProjectStatus]int, len(model.AllStatuses()))
	for _, status := range model.AllStatuses() {
		counts[status] = 0
	}
	for _, p := range list {
		counts[p.Status]++
	}
	return counts
}

// DaysSince is the number of whole days between a calendar date and now.
func DaysSince(date string, now time.Time) (int, bool) {
	parsed, ok := model.ParseDate(date)
	if !ok {
		return 0, false
	}
	return model.DaysBetween(parsed, now), true
}

func StalenessBuckets(list []model.Project, now time.Time) model.Staleness {
	out := model.Staleness{
		Days5To10:  []model.ProjectRef{},
		Days10To15: []model.ProjectRef{},
		Days15Plus: []model.ProjectRef{},
	}
	for _, p := range list {
		days, ok := DaysSince(p.LastUpdate, now)
		if !ok {
			out.Skipped = append(out.Skipped, p.ID)
			continue
		}
		switch {
		case days >= 15:
			out.Days15Plus = append(out.Days15Plus, p.Ref())
		case days >= 10:
			out.Days10To15 = append(out.Days10To15, p.Ref())
		case days >= 5:
			out.Days5To10 = append(out.Days5To10, p.Ref())
		}
	}
	return out
}

// DeadlineApproaching lists unfinished projects due within window days,
// deadline day included. Overdue projects are reported by Overdue instead.
func DeadlineApproaching(list []model.Project, now time.Time, window int) []model.DeadlineItem {
	return deadlineItems(list, now, func(days int) bool {
		return days >= 0 && days <= window
	})
}

func Overdue(list []model.Project, now time.Time) []model.DeadlineItem {
	return deadlineItems(list, now, func(days int) bool {
		return days < 0
	})
}

func deadlineItems(list []model.Project, now time.Time, keep func(days int) bool) []model.DeadlineItem {
	out := []model.DeadlineItem{}
	for _, p := range list {
		if p.Status == model.StatusCompleted {
			continue
		}
		end, ok := model.ParseDate(p.ExpectedEndDate)
		if !ok {
			continue
		}
		days := model.DaysBetween(now, end)
		if !keep(days) {
			continue
		}
		out = append(out, model.DeadlineItem{
			ProjectRef:      p.Ref(),
			ExpectedEndDate: p.ExpectedEndDate,
			DaysLeft:        days,
		})
	}
	return out
}

// RecentUpdates flattens every project's updates, newest first. Updates on
// the same date keep their flattened order; undated ones are dropped.
func RecentUpdates(list []model.Project, limit int) []model.RecentUpdate {
	type dated struct {
		at     time.Time
		update model.RecentUpdate
	}

	all := make([]dated, 0)
	for _, p := range list {
		for _, u := range p.Updates {
			at, ok := model.ParseDate(u.Date)
			if !ok {
				continue
			}
			all = append(all, dated{at: at, update: model.RecentUpdate{
				ProjectUpdate: u,
				ProjectID:     p.ID,
				ProjectName:   p.Name,
				ProjectStatus: p.Status,
			}})
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].at.After(all[j].at)
	})

	if limit < 0 {
		limit = 0
	}
	if limit > len(all) {
		limit = len(all)
	}
	out := make([]model.RecentUpdate, limit)
	for i := range out {
		out[i] = all[i].update
	}
	return out
}

// ProgressSplit partitions in-progress projects at the 50% mark; other
// statuses are ignored.
func ProgressSplit(list []model.Project) model.ProgressSplit {
	out := model.ProgressSplit{Below50: []model.ProjectRef{}, AtLeast50: []model.ProjectRef{}}
	for _, p := range list {
		if p.Status != model.StatusInProgress {
			continue
		}
		if p.Progress < 50 {
			out.Below50 = append(out.Below50, p.Ref())
		} else {
			out.AtLeast50 = append(out.AtLeast50, p.Ref())
		}
	}
	return out
}

// GroupByDistrict counts projects per district in first-seen order.
func GroupByDistrict(list []model.Project) []model.DistrictCount {
	out := []model.DistrictCount{}
	index := make(map[string]int)
	for _, p := range list {
		if pos, ok := index[p.District]; ok {
			out[pos].Count++
			continue
		}
		index[p.District] = len(out)
		out = append(out, model.DistrictCount{District: p.District, Count: 1})
	}
	return out
}

type DashboardOptions struct {
	DeadlineWindowDays int
	RecentLimit        int
}

func BuildDashboard(projects []model.Project, users []model.AdminUser, now time.Time, opts DashboardOptions) model.Dashboard {
	counts := StatusCounts(projects)
	activeUsers := 0
	for _, u := range users {
		if u.Status == model.UserActive {
			activeUsers++
		}
	}

	return model.Dashboard{
		Date: model.FormatDate(model.DateOnly(now)),
		Totals: model.DashboardTotals{
			Active:      counts[model.StatusInProgress],
			Completed:   counts[model.StatusCompleted],
			Delayed:     counts[model.StatusDelayed],
			Planned:     counts[model.StatusPlanned],
			OnHold:      counts[model.StatusOnHold],
			Total:       len(projects),
			ActiveUsers: activeUsers,
		},
		StatusCounts:  counts,
		Staleness:     StalenessBuckets(projects, now),
		ByDistrict:    GroupByDistrict(projects),
		Progress:      ProgressSplit(projects),
		Deadline:      DeadlineApproaching(projects, now, opts.DeadlineWindowDays),
		Overdue:       Overdue(projects, now),
		RecentUpdates: RecentUpdates(projects, opts.RecentLimit),
	}
}
