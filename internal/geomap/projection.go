package geomap

import (
	"math"

	"github.com/nurpe/obras-portal/internal/model"
)

type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (v Viewport) Empty() bool {
	return v.Width <= 0 || v.Height <= 0
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Projection maps degrees linearly onto a flat plane around Center. It is
// not Mercator: the backdrop it is drawn on is synthetic.
type Projection struct {
	Viewport Viewport
	Center   model.LatLng
	Zoom     int
}

// Scale is the number of pixels per degree.
func (p Projection) Scale() float64 {
	return math.Pow(2, float64(p.Zoom)) * 100
}

func (p Projection) Project(ll model.LatLng) Point {
	scale := p.Scale()
	return Point{
		X: p.Viewport.Width/2 + (ll.Lng-p.Center.Lng)*scale,
		Y: p.Viewport.Height/2 - (ll.Lat-p.Center.Lat)*scale,
	}
}

func (p Projection) Unproject(pt Point) model.LatLng {
	scale := p.Scale()
	return model.LatLng{
		Lat: p.Center.Lat - (pt.Y-p.Viewport.Height/2)/scale,
		Lng: p.Center.Lng + (pt.X-p.Viewport.Width/2)/scale,
	}
}
