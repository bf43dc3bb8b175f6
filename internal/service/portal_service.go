package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nurpe/obras-portal/internal/config"
	"github.com/nurpe/obras-portal/internal/geomap"
	"github.com/nurpe/obras-portal/internal/metrics"
	"github.com/nurpe/obras-portal/internal/model"
	"github.com/nurpe/obras-portal/internal/repository"
)

const maxViewportSide = 4096

// PortalService serves the read side of the portal: filtered lists,
// statistics and map frames, all derived from the project repository.
type PortalService struct {
	projects *repository.ProjectRepository
	users    *repository.UserRepository
	cfg      *config.Config
	now      func() time.Time
}

func NewPortalService(projects *repository.ProjectRepository, users *repository.UserRepository, cfg *config.Config) *PortalService {
	return &PortalService{
		projects: projects,
		users:    users,
		cfg:      cfg,
		now:      cfg.Clock(),
	}
}

func (s *PortalService) Now() time.Time {
	return s.now()
}

func (s *PortalService) DefaultView() MapView {
	return MapView{
		Center: model.LatLng{Lat: s.cfg.Map.DefaultLat, Lng: s.cfg.Map.DefaultLng},
		Zoom:   s.cfg.Map.DefaultZoom,
	}
}

func (s *PortalService) Regions(ctx context.Context) ([]model.Region, error) {
	return s.projects.Regions(ctx)
}

func (s *PortalService) Projects(ctx context.Context, filter ProjectFilter) ([]model.Project, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	regions, err := s.projects.Regions(ctx)
	if err != nil {
		return nil, err
	}
	filter.FoldAccents = filter.FoldAccents || s.cfg.Search.FoldAccents
	result := FilterProjects(all, regions, filter)
	metrics.ObserveFilterResults(len(result))
	return result, nil
}

func (s *PortalService) Project(ctx context.Context, id string) (*model.Project, error) {
	project, err := s.projects.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: project %s", ErrNotFound, id)
		}
		return nil, err
	}
	return project, nil
}

func (s *PortalService) Calendar(ctx context.Context, id, month string) (model.Calendar, error) {
	project, err := s.Project(ctx, id)
	if err != nil {
		return model.Calendar{}, err
	}
	return BuildCalendar(*project, month, s.now())
}

type Summary struct {
	CityID        string                      `json:"city_id"`
	City          *model.City                 `json:"city,omitempty"`
	Region        string                      `json:"region,omitempty"`
	Total         int                         `json:"total"`
	StatusCounts  map[model.ProjectStatus]int `json:"status_counts"`
	RecentUpdates []model.RecentUpdate        `json:"recent_updates"`
	View          MapView                     `json:"view"`
}

// Summary is the landing page digest for one city, or for everything when
// cityID is empty, "all" or unknown.
func (s *PortalService) Summary(ctx context.Context, cityID string) (Summary, error) {
	regions, err := s.projects.Regions(ctx)
	if err != nil {
		return Summary{}, err
	}
	list, err := s.Projects(ctx, ProjectFilter{CityID: cityID})
	if err != nil {
		return Summary{}, err
	}

	out := Summary{
		CityID:        AllFilter,
		Total:         len(list),
		StatusCounts:  StatusCounts(list),
		RecentUpdates: RecentUpdates(list, s.cfg.Stats.PortalRecent),
		View:          ResolveMapView(regions, cityID, s.DefaultView()),
	}
	if city, region, ok := ResolveCity(regions, cityID); ok {
		out.CityID = city.ID
		out.City = &city
		out.Region = region.Name
	}
	return out, nil
}

// RecentUpdates returns the update feed of the filtered projects; a
// non-positive limit uses the explore page default.
func (s *PortalService) RecentUpdates(ctx context.Context, filter ProjectFilter, limit int) ([]model.RecentUpdate, error) {
	list, err := s.Projects(ctx, filter)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = s.cfg.Stats.ExploreRecent
	}
	return RecentUpdates(list, limit), nil
}

func (s *PortalService) Dashboard(ctx context.Context) (model.Dashboard, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return model.Dashboard{}, err
	}
	users, err := s.users.List(ctx)
	if err != nil {
		return model.Dashboard{}, err
	}
	return BuildDashboard(projects, users, s.now(), DashboardOptions{
		DeadlineWindowDays: s.cfg.Stats.DeadlineWindowDays,
		RecentLimit:        s.cfg.Stats.DashboardRecent,
	}), nil
}

type MapQuery struct {
	Filter      ProjectFilter
	Width       float64
	Height      float64
	Zoom        *int
	Highlighted string
	Hovered     string
}

type MapFrame struct {
	View     MapView          `json:"view"`
	Viewport geomap.Viewport  `json:"viewport"`
	Markers  []geomap.Marker  `json:"markers"`
	Commands []geomap.Command `json:"commands"`
}

// MapState resolves a query into the state of one map frame: the filtered
// projects centred on the selected city or the default view.
func (s *PortalService) MapState(ctx context.Context, q MapQuery) (geomap.State, MapView, error) {
	if q.Width <= 0 || q.Height <= 0 || q.Width > maxViewportSide || q.Height > maxViewportSide {
		return geomap.State{}, MapView{}, fmt.Errorf("%w: viewport must be between 1 and %d px", ErrInvalidInput, maxViewportSide)
	}
	regions, err := s.projects.Regions(ctx)
	if err != nil {
		return geomap.State{}, MapView{}, err
	}
	list, err := s.Projects(ctx, q.Filter)
	if err != nil {
		return geomap.State{}, MapView{}, err
	}

	view := ResolveMapView(regions, q.Filter.CityID, s.DefaultView())
	if q.Zoom != nil {
		if *q.Zoom < 0 || *q.Zoom > 22 {
			return geomap.State{}, MapView{}, fmt.Errorf("%w: zoom must be between 0 and 22", ErrInvalidInput)
		}
		view.Zoom = *q.Zoom
	}

	return geomap.State{
		Viewport:    geomap.Viewport{Width: q.Width, Height: q.Height},
		Projects:    list,
		Center:      view.Center,
		Zoom:        view.Zoom,
		Highlighted: q.Highlighted,
		Hovered:     q.Hovered,
	}, view, nil
}

func (s *PortalService) MapFrame(ctx context.Context, q MapQuery) (MapFrame, error) {
	state, view, err := s.MapState(ctx, q)
	if err != nil {
		return MapFrame{}, err
	}
	return MapFrame{
		View:     view,
		Viewport: state.Viewport,
		Markers:  geomap.Markers(state.Projects, state.Projection()),
		Commands: geomap.Scene(state),
	}, nil
}

// HitTest resolves a pointer position on the frame described by q.
func (s *PortalService) HitTest(ctx context.Context, q MapQuery, x, y float64) (*geomap.Tooltip, error) {
	state, _, err := s.MapState(ctx, q)
	if err != nil {
		return nil, err
	}
	marker, ok := geomap.HitTest(geomap.Markers(state.Projects, state.Projection()), x, y)
	if !ok {
		return nil, nil
	}
	tip := geomap.TooltipFor(marker, state.Viewport)
	return &tip, nil
}

func (s *PortalService) LocationMap(ctx context.Context, id string, width, height float64) (MapFrame, error) {
	project, err := s.Project(ctx, id)
	if err != nil {
		return MapFrame{}, err
	}
	if width <= 0 || height <= 0 || width > maxViewportSide || height > maxViewportSide {
		return MapFrame{}, fmt.Errorf("%w: viewport must be between 1 and %d px", ErrInvalidInput, maxViewportSide)
	}
	vp := geomap.Viewport{Width: width, Height: height}
	return MapFrame{
		View:     MapView{Center: project.Coordinates(), Zoom: s.cfg.Map.DefaultZoom},
		Viewport: vp,
		Markers: []geomap.Marker{{
			ID:       project.ID,
			Name:     project.Name,
			Location: project.Location,
			City:     project.City,
			Status:   project.Status,
			Progress: project.Progress,
			Point:    geomap.Point{X: width / 2, Y: height / 2},
		}},
		Commands: geomap.LocationScene(vp),
	}, nil
}
