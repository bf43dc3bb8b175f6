package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/obras-portal/internal/db"
	"github.com/nurpe/obras-portal/internal/model"
)

func TestStatusCounts(t *testing.T) {
	counts := StatusCounts(fixtureProjects())
	assert.Equal(t, map[model.ProjectStatus]int{
		model.StatusInProgress: 6,
		model.StatusCompleted:  2,
		model.StatusPlanned:    2,
		model.StatusDelayed:    1,
		model.StatusOnHold:     1,
	}, counts)

	lists := [][]model.Project{nil, fixtureProjects()[:1], fixtureProjects()[3:9], fixtureProjects()}
	for _, list := range lists {
		counts := StatusCounts(list)
		assert.Len(t, counts, 5)
		sum := 0
		for _, n := range counts {
			sum += n
		}
		assert.Equal(t, len(list), sum)
	}
}

func TestStalenessBuckets(t *testing.T) {
	buckets := StalenessBuckets(fixtureProjects(), fixedNow)

	assert.Equal(t, []string{"proj-002", "proj-005", "proj-011", "proj-012"}, refIDs(buckets.Days5To10))
	assert.Equal(t, []string{"proj-003"}, refIDs(buckets.Days10To15))
	assert.Equal(t, []string{"proj-004", "proj-008", "proj-009"}, refIDs(buckets.Days15Plus))
	assert.Empty(t, buckets.Skipped)
}

func TestStalenessBuckets_Boundaries(t *testing.T) {
	at := func(id string, daysAgo int) model.Project {
		return model.Project{ID: id, LastUpdate: model.FormatDate(fixedNow.AddDate(0, 0, -daysAgo))}
	}
	list := []model.Project{
		at("today", 0),
		at("d4", 4),
		at("d5", 5),
		at("d9", 9),
		at("d10", 10),
		at("d14", 14),
		at("d15", 15),
		at("d300", 300),
		at("future", -3),
		{ID: "broken", LastUpdate: "10/02/2026"},
	}

	buckets := StalenessBuckets(list, fixedNow)
	assert.Equal(t, []string{"d5", "d9"}, refIDs(buckets.Days5To10))
	assert.Equal(t, []string{"d10", "d14"}, refIDs(buckets.Days10To15))
	assert.Equal(t, []string{"d15", "d300"}, refIDs(buckets.Days15Plus))
	assert.Equal(t, []string{"broken"}, buckets.Skipped)
}

func TestStalenessBuckets_TimeOfDayDoesNotShiftDays(t *testing.T) {
	list := []model.Project{{ID: "p", LastUpdate: "2026-01-28"}}
	for _, now := range []time.Time{
		time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 10, 23, 59, 59, 0, time.UTC),
	} {
		buckets := StalenessBuckets(list, now)
		assert.Equal(t, []string{"p"}, refIDs(buckets.Days10To15))
	}
}

func TestDeadlineApproaching(t *testing.T) {
	items := DeadlineApproaching(fixtureProjects(), fixedNow, 60)
	require.Len(t, items, 1)
	assert.Equal(t, "proj-005", items[0].ID)
	assert.Equal(t, 49, items[0].DaysLeft)

	for _, item := range DeadlineApproaching(fixtureProjects(), fixedNow, 10000) {
		assert.NotEqual(t, model.StatusCompleted, item.Status)
		assert.GreaterOrEqual(t, item.DaysLeft, 0)
		assert.NotEqual(t, "proj-009", item.ID)
	}
}

func TestDeadlineApproaching_EdgesAndOverdue(t *testing.T) {
	due := func(id string, inDays int, status model.ProjectStatus) model.Project {
		return model.Project{ID: id, Status: status, ExpectedEndDate: model.FormatDate(fixedNow.AddDate(0, 0, inDays))}
	}
	list := []model.Project{
		due("today", 0, model.StatusInProgress),
		due("d60", 60, model.StatusDelayed),
		due("d61", 61, model.StatusInProgress),
		due("late", -40, model.StatusDelayed),
		due("done-late", -5, model.StatusCompleted),
		due("done-soon", 5, model.StatusCompleted),
		{ID: "no-date", Status: model.StatusPlanned},
	}

	approaching := DeadlineApproaching(list, fixedNow, 60)
	assert.Len(t, approaching, 2)
	assert.Equal(t, "today", approaching[0].ID)
	assert.Equal(t, "d60", approaching[1].ID)

	overdue := Overdue(list, fixedNow)
	require.Len(t, overdue, 1)
	assert.Equal(t, "late", overdue[0].ID)
	assert.Equal(t, -40, overdue[0].DaysLeft)

	assert.Empty(t, Overdue(fixtureProjects(), fixedNow))
}

func TestRecentUpdates(t *testing.T) {
	recent := RecentUpdates(fixtureProjects(), 5)
	require.Len(t, recent, 5)

	owners := make([]string, len(recent))
	for i, u := range recent {
		owners[i] = u.ProjectID
	}
	assert.Equal(t, []string{"proj-006", "proj-001", "proj-007", "proj-010", "proj-002"}, owners)
	assert.Equal(t, "2026-02-09", recent[0].Date)
	assert.Equal(t, model.StatusInProgress, recent[0].ProjectStatus)
	assert.NotEmpty(t, recent[0].ProjectName)
}

func TestRecentUpdates_LengthAndOrder(t *testing.T) {
	all := fixtureProjects()
	for _, limit := range []int{0, 1, 6, 19, 50} {
		recent := RecentUpdates(all, limit)
		assert.Len(t, recent, min(limit, 19))
		for i := 1; i < len(recent); i++ {
			assert.GreaterOrEqual(t, recent[i-1].Date, recent[i].Date)
		}
	}
	assert.Empty(t, RecentUpdates(nil, 5))
	assert.Empty(t, RecentUpdates(all, -1))
}

func TestRecentUpdates_SameDateKeepsFlattenOrder(t *testing.T) {
	recent := RecentUpdates(fixtureProjects(), 100)
	first, second := -1, -1
	for i, u := range recent {
		if u.Date != "2026-01-15" {
			continue
		}
		switch u.ProjectID {
		case "proj-002":
			first = i
		case "proj-008":
			second = i
		}
	}
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestRecentUpdates_SkipsUndated(t *testing.T) {
	list := []model.Project{{
		ID: "p",
		Updates: []model.ProjectUpdate{
			{ID: "ok", Date: "2026-02-01"},
			{ID: "bad", Date: "ontem"},
		},
	}}
	recent := RecentUpdates(list, 10)
	require.Len(t, recent, 1)
	assert.Equal(t, "ok", recent[0].ID)
}

func TestProgressSplit(t *testing.T) {
	split := ProgressSplit(fixtureProjects())
	assert.Equal(t, []string{"proj-002", "proj-010"}, refIDs(split.Below50))
	assert.Equal(t, []string{"proj-001", "proj-006", "proj-007", "proj-012"}, refIDs(split.AtLeast50))

	empty := ProgressSplit(nil)
	assert.NotNil(t, empty.Below50)
	assert.NotNil(t, empty.AtLeast50)
}

func TestGroupByDistrict(t *testing.T) {
	groups := GroupByDistrict(fixtureProjects())
	assert.Equal(t, []model.DistrictCount{
		{District: "Region Norte", Count: 5},
		{District: "Region Centro", Count: 4},
		{District: "Region Sur", Count: 3},
	}, groups)

	assert.Empty(t, GroupByDistrict(nil))
}

func TestBuildDashboard(t *testing.T) {
	data := db.Fixtures()
	d := BuildDashboard(data.Projects, data.Users, fixedNow, DashboardOptions{DeadlineWindowDays: 60, RecentLimit: 6})

	assert.Equal(t, "2026-02-10", d.Date)
	assert.Equal(t, model.DashboardTotals{
		Active:      6,
		Completed:   2,
		Delayed:     1,
		Planned:     2,
		OnHold:      1,
		Total:       12,
		ActiveUsers: 10,
	}, d.Totals)
	assert.Len(t, d.RecentUpdates, 6)
	assert.Len(t, d.Deadline, 1)
	assert.Empty(t, d.Overdue)
	assert.Len(t, d.ByDistrict, 3)
}

func TestBuildDashboard_EmptyInput(t *testing.T) {
	d := BuildDashboard(nil, nil, fixedNow, DashboardOptions{DeadlineWindowDays: 60, RecentLimit: 6})
	assert.Equal(t, 0, d.Totals.Total)
	assert.Len(t, d.StatusCounts, 5)
	assert.NotNil(t, d.Deadline)
	assert.NotNil(t, d.Overdue)
	assert.NotNil(t, d.RecentUpdates)
	assert.NotNil(t, d.Staleness.Days5To10)
}
