package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nurpe/obras-portal/internal/geomap"
	"github.com/nurpe/obras-portal/internal/model"
)

func TestPortalService_Summary(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	all, err := s.portal.Summary(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, AllFilter, all.CityID)
	assert.Nil(t, all.City)
	assert.Equal(t, 12, all.Total)
	assert.Len(t, all.RecentUpdates, 5)
	assert.Equal(t, 12, all.View.Zoom)

	city, err := s.portal.Summary(ctx, "city-1")
	require.NoError(t, err)
	assert.Equal(t, "city-1", city.CityID)
	require.NotNil(t, city.City)
	assert.Equal(t, "San Miguel", city.City.Name)
	assert.Equal(t, "Region Norte", city.Region)
	assert.Equal(t, 2, city.Total)
	assert.Equal(t, 14, city.View.Zoom)
	assert.Equal(t, 2, city.StatusCounts[model.StatusInProgress])

	unknown, err := s.portal.Summary(ctx, "city-404")
	require.NoError(t, err)
	assert.Equal(t, AllFilter, unknown.CityID)
	assert.Equal(t, 12, unknown.Total)
}

func TestPortalService_RecentUpdatesDefaultLimit(t *testing.T) {
	s := newServices(t)
	feed, err := s.portal.RecentUpdates(context.Background(), ProjectFilter{}, 0)
	require.NoError(t, err)
	assert.Len(t, feed, 4)

	feed, err = s.portal.RecentUpdates(context.Background(), ProjectFilter{Status: string(model.StatusCompleted)}, 50)
	require.NoError(t, err)
	for _, u := range feed {
		assert.Equal(t, model.StatusCompleted, u.ProjectStatus)
	}
}

func TestPortalService_ProjectNotFound(t *testing.T) {
	s := newServices(t)
	_, err := s.portal.Project(context.Background(), "proj-404")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.portal.Calendar(context.Background(), "proj-404", "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPortalService_Dashboard(t *testing.T) {
	s := newServices(t)
	d, err := s.portal.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2026-02-10", d.Date)
	assert.Equal(t, 12, d.Totals.Total)
	assert.Equal(t, 10, d.Totals.ActiveUsers)
	assert.Len(t, d.RecentUpdates, 6)
}

func TestPortalService_MapFrame(t *testing.T) {
	s := newServices(t)
	frame, err := s.portal.MapFrame(context.Background(), MapQuery{
		Filter: ProjectFilter{CityID: "city-1"},
		Width:  800,
		Height: 600,
	})
	require.NoError(t, err)

	assert.Equal(t, 14, frame.View.Zoom)
	assert.Equal(t, geomap.Viewport{Width: 800, Height: 600}, frame.Viewport)
	require.Len(t, frame.Markers, 2)
	assert.Equal(t, "proj-001", frame.Markers[0].ID)
	require.NotEmpty(t, frame.Commands)
	assert.Equal(t, geomap.OpFillRect, frame.Commands[0].Op)
	assert.Equal(t, geomap.OpText, frame.Commands[len(frame.Commands)-1].Op)
}

func TestPortalService_MapStateValidation(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	for _, q := range []MapQuery{
		{Width: 0, Height: 600},
		{Width: 800, Height: -1},
		{Width: 5000, Height: 600},
	} {
		_, _, err := s.portal.MapState(ctx, q)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	zoom := 23
	_, _, err := s.portal.MapState(ctx, MapQuery{Width: 100, Height: 100, Zoom: &zoom})
	assert.ErrorIs(t, err, ErrInvalidInput)

	zoom = 9
	state, view, err := s.portal.MapState(ctx, MapQuery{Width: 100, Height: 100, Zoom: &zoom, Highlighted: "proj-003"})
	require.NoError(t, err)
	assert.Equal(t, 9, view.Zoom)
	assert.Equal(t, 9, state.Zoom)
	assert.Equal(t, "proj-003", state.Highlighted)
	assert.Len(t, state.Projects, 12)
}

func TestPortalService_HitTest(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()
	q := MapQuery{Filter: ProjectFilter{CityID: "city-1"}, Width: 800, Height: 600}

	frame, err := s.portal.MapFrame(ctx, q)
	require.NoError(t, err)
	target := frame.Markers[1]

	tip, err := s.portal.HitTest(ctx, q, target.X+3, target.Y-3)
	require.NoError(t, err)
	require.NotNil(t, tip)
	assert.Equal(t, target.ID, tip.ProjectID)
	assert.InDelta(t, target.X+14, tip.X, 1e-9)
	assert.InDelta(t, target.Y-10, tip.Y, 1e-9)

	tip, err = s.portal.HitTest(ctx, q, -100000, -100000)
	require.NoError(t, err)
	assert.Nil(t, tip)
}

func TestPortalService_LocationMap(t *testing.T) {
	s := newServices(t)
	ctx := context.Background()

	frame, err := s.portal.LocationMap(ctx, "proj-005", 400, 300)
	require.NoError(t, err)
	require.Len(t, frame.Markers, 1)
	assert.Equal(t, geomap.Point{X: 200, Y: 150}, frame.Markers[0].Point)
	assert.InDelta(t, -11.998, frame.View.Center.Lat, 1e-9)
	assert.NotEmpty(t, frame.Commands)

	_, err = s.portal.LocationMap(ctx, "proj-404", 400, 300)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.portal.LocationMap(ctx, "proj-005", 0, 300)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
