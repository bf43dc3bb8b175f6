package geomap

import "github.com/nurpe/obras-portal/internal/model"

// Map is the interactive project map. Every state change redraws the whole
// frame onto the canvas; pointer events are hit-tested against the markers
// of the current frame.
type Map struct {
	canvas  Canvas
	state   State
	markers []Marker
	frames  int

	// OnHover receives the hovered project id, or "" when the pointer leaves
	// every marker.
	OnHover  func(id string)
	OnSelect func(id string)
}

func NewMap(canvas Canvas, initial State) *Map {
	m := &Map{canvas: canvas, state: initial}
	m.redraw()
	return m
}

func (m *Map) State() State {
	return m.state
}

// Frames counts the redraws performed so far.
func (m *Map) Frames() int {
	return m.frames
}

func (m *Map) Markers() []Marker {
	out := make([]Marker, len(m.markers))
	copy(out, m.markers)
	return out
}

func (m *Map) SetViewport(vp Viewport) {
	if vp == m.state.Viewport {
		return
	}
	m.state.Viewport = vp
	m.redraw()
}

// SetProjects always redraws: a new collection is a new frame even when
// it holds the same records. A hovered project missing from the new
// collection is un-hovered.
func (m *Map) SetProjects(projects []model.Project) {
	m.state.Projects = projects
	dropped := m.state.Hovered != "" && !containsProject(projects, m.state.Hovered)
	if dropped {
		m.state.Hovered = ""
	}
	m.redraw()
	if dropped && m.OnHover != nil {
		m.OnHover("")
	}
}

func containsProject(projects []model.Project, id string) bool {
	for _, p := range projects {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (m *Map) SetCenter(center model.LatLng) {
	if center == m.state.Center {
		return
	}
	m.state.Center = center
	m.redraw()
}

func (m *Map) SetZoom(zoom int) {
	if zoom == m.state.Zoom {
		return
	}
	m.state.Zoom = zoom
	m.redraw()
}

func (m *Map) SetHighlighted(id string) {
	if id == m.state.Highlighted {
		return
	}
	m.state.Highlighted = id
	m.redraw()
}

// PointerMove updates the hovered marker and reports it through OnHover
// when it changes.
func (m *Map) PointerMove(x, y float64) {
	id := ""
	if hit, ok := HitTest(m.markers, x, y); ok {
		id = hit.ID
	}
	m.setHovered(id)
}

func (m *Map) PointerLeave() {
	m.setHovered("")
}

// Click selects the marker under the pointer, if any.
func (m *Map) Click(x, y float64) (string, bool) {
	hit, ok := HitTest(m.markers, x, y)
	if !ok {
		return "", false
	}
	if m.OnSelect != nil {
		m.OnSelect(hit.ID)
	}
	return hit.ID, true
}

type Tooltip struct {
	ProjectID   string              `json:"project_id"`
	Name        string              `json:"name"`
	Location    string              `json:"location"`
	Status      model.ProjectStatus `json:"status"`
	StatusLabel string              `json:"status_label"`
	Progress    int                 `json:"progress"`
	Color       Color               `json:"color"`
	X           float64             `json:"x"`
	Y           float64             `json:"y"`
	// FlipLeft places the tooltip on the left of the marker near the right edge.
	FlipLeft bool `json:"flip_left"`
}

// Tooltip describes the hovered marker; false when nothing is hovered.
func (m *Map) Tooltip() (Tooltip, bool) {
	if m.state.Hovered == "" {
		return Tooltip{}, false
	}
	for _, mk := range m.markers {
		if mk.ID == m.state.Hovered {
			return TooltipFor(mk, m.state.Viewport), true
		}
	}
	return Tooltip{}, false
}

func TooltipFor(mk Marker, vp Viewport) Tooltip {
	return Tooltip{
		ProjectID:   mk.ID,
		Name:        mk.Name,
		Location:    mk.Location,
		Status:      mk.Status,
		StatusLabel: mk.Status.Label(),
		Progress:    mk.Progress,
		Color:       StatusColor(mk.Status),
		X:           mk.X + 14,
		Y:           mk.Y - 10,
		FlipLeft:    mk.X > vp.Width*0.7,
	}
}

func (m *Map) setHovered(id string) {
	if id == m.state.Hovered {
		return
	}
	m.state.Hovered = id
	m.redraw()
	if m.OnHover != nil {
		m.OnHover(id)
	}
}

func (m *Map) redraw() {
	m.markers = Markers(m.state.Projects, m.state.Projection())
	cmds := Scene(m.state)
	if cmds == nil {
		return
	}
	m.frames++
	if m.canvas == nil {
		return
	}
	m.canvas.Reset(m.state.Viewport)
	Replay(cmds, m.canvas)
}
