package geomap

import "github.com/nurpe/obras-portal/internal/model"

// HitRadiusSquared is the squared pointer distance, in px², that counts as
// touching a marker.
const HitRadiusSquared = 200

const (
	markerRadius     = 7
	markerRadiusWide = 10
)

type Marker struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Location string              `json:"location"`
	City     string              `json:"city"`
	Status   model.ProjectStatus `json:"status"`
	Progress int                 `json:"progress"`
	Point
}

// Markers projects every project, keeping list order.
func Markers(projects []model.Project, proj Projection) []Marker {
	out := make([]Marker, len(projects))
	for i, p := range projects {
		out[i] = Marker{
			ID:       p.ID,
			Name:     p.Name,
			Location: p.Location,
			City:     p.City,
			Status:   p.Status,
			Progress: p.Progress,
			Point:    proj.Project(p.Coordinates()),
		}
	}
	return out
}

// HitTest returns the first marker in list order within the hit radius of
// (x, y). Overlapping markers are not resolved by distance.
func HitTest(markers []Marker, x, y float64) (Marker, bool) {
	for _, m := range markers {
		dx := m.X - x
		dy := m.Y - y
		if dx*dx+dy*dy < HitRadiusSquared {
			return m, true
		}
	}
	return Marker{}, false
}
