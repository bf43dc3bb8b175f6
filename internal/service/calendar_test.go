package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/obras-portal/internal/model"
)

func TestBuildCalendar_DefaultsToLatestMonth(t *testing.T) {
	project := fixtureProjects()[0]

	cal, err := BuildCalendar(project, "", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-08", cal.Month)
	assert.Equal(t, 6, cal.LeadingBlanks)
	assert.Equal(t, 31, cal.DaysInMonth)
	require.Len(t, cal.Days, 1)
	assert.Equal(t, "2026-08-30", cal.Days[0].Date)
	assert.Equal(t, model.IndicatorMilestone, cal.Days[0].Indicator)
}

func TestBuildCalendar_MergesByDate(t *testing.T) {
	project := fixtureProjects()[0]

	cal, err := BuildCalendar(project, "2026-01", fixedNow)
	require.NoError(t, err)
	require.Len(t, cal.Days, 1)
	day := cal.Days[0]
	assert.Equal(t, "2026-01-22", day.Date)
	assert.Equal(t, model.IndicatorMilestoneCompleted, day.Indicator)
	require.Len(t, day.Entries, 2)
	assert.Equal(t, model.EntryMilestone, day.Entries[0].Kind)
	assert.Equal(t, model.EntryUpdate, day.Entries[1].Kind)

	cal, err = BuildCalendar(project, "2026-02", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, 0, cal.LeadingBlanks)
	assert.Equal(t, 28, cal.DaysInMonth)
	require.Len(t, cal.Days, 1)
	assert.Equal(t, model.IndicatorUpdate, cal.Days[0].Indicator)
}

func TestBuildCalendar_SortedDays(t *testing.T) {
	project := model.Project{
		ID: "p",
		Milestones: []model.ProjectMilestone{
			{ID: "m2", Label: "b", Date: "2026-03-20"},
			{ID: "m1", Label: "a", Date: "2026-03-02", Completed: true},
		},
		Updates: []model.ProjectUpdate{{ID: "u1", Title: "c", Date: "2026-03-11"}},
	}
	cal, err := BuildCalendar(project, "2026-03", fixedNow)
	require.NoError(t, err)
	require.Len(t, cal.Days, 3)
	assert.Equal(t, "2026-03-02", cal.Days[0].Date)
	assert.Equal(t, "2026-03-11", cal.Days[1].Date)
	assert.Equal(t, "2026-03-20", cal.Days[2].Date)
}

func TestBuildCalendar_EmptyProjectUsesCurrentMonth(t *testing.T) {
	cal, err := BuildCalendar(model.Project{ID: "p"}, "", fixedNow)
	require.NoError(t, err)
	assert.Equal(t, "2026-02", cal.Month)
	assert.NotNil(t, cal.Days)
	assert.Empty(t, cal.Days)
}

func TestBuildCalendar_InvalidMonth(t *testing.T) {
	_, err := BuildCalendar(model.Project{ID: "p"}, "2026-13", fixedNow)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
