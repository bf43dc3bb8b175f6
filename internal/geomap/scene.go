package geomap

import "github.com/nurpe/obras-portal/internal/model"

const Attribution = "Mapa simulado -- Dados de exemplo"

type Op string

const (
	OpFillRect     Op = "fill_rect"
	OpLine         Op = "line"
	OpFillCircle   Op = "fill_circle"
	OpStrokeCircle Op = "stroke_circle"
	OpText         Op = "text"
)

// Command is one primitive of a frame. Which fields matter depends on Op.
type Command struct {
	Op        Op      `json:"op"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	X2        float64 `json:"x2,omitempty"`
	Y2        float64 `json:"y2,omitempty"`
	W         float64 `json:"w,omitempty"`
	H         float64 `json:"h,omitempty"`
	R         float64 `json:"r,omitempty"`
	LineWidth float64 `json:"line_width,omitempty"`
	Color     Color   `json:"color"`
	Text      string  `json:"text,omitempty"`
	FontSize  float64 `json:"font_size,omitempty"`
	Align     string  `json:"align,omitempty"`
	MarkerID  string  `json:"marker_id,omitempty"`
}

// State is everything a frame of the project map depends on.
type State struct {
	Viewport    Viewport
	Projects    []model.Project
	Center      model.LatLng
	Zoom        int
	Highlighted string
	Hovered     string
}

func (s State) Projection() Projection {
	return Projection{Viewport: s.Viewport, Center: s.Center, Zoom: s.Zoom}
}

// Emphasized reports whether a marker is drawn in its enlarged form.
func (s State) Emphasized(id string) bool {
	return id != "" && (id == s.Highlighted || id == s.Hovered)
}

// Scene computes the full frame for s: backdrop, markers in list order and
// the attribution. An empty viewport yields no commands.
func Scene(s State) []Command {
	vp := s.Viewport
	if vp.Empty() {
		return nil
	}
	w, h := vp.Width, vp.Height

	cmds := make([]Command, 0, 64+len(s.Projects)*4)
	cmds = append(cmds, Command{Op: OpFillRect, W: w, H: h, Color: ColorBackground})
	cmds = appendGrid(cmds, vp, 40)

	roads := [][4]float64{
		{0, h * 0.3, w, h * 0.35},
		{0, h * 0.6, w, h * 0.58},
		{w * 0.25, 0, w * 0.28, h},
		{w * 0.65, 0, w * 0.62, h},
		{w * 0.45, 0, w * 0.48, h},
	}
	cmds = appendRoads(cmds, roads)

	blocks := [][4]float64{
		{50, 50, 120, 80},
		{w - 200, 100, 140, 100},
		{100, h - 180, 160, 100},
		{w * 0.4, h * 0.15, 100, 70},
		{w * 0.7, h * 0.7, 130, 90},
	}
	for _, b := range blocks {
		cmds = append(cmds, Command{Op: OpFillRect, X: b[0], Y: b[1], W: b[2], H: b[3], Color: ColorBlock})
	}

	for _, m := range Markers(s.Projects, s.Projection()) {
		cmds = appendMarker(cmds, m, s.Emphasized(m.ID))
	}

	return append(cmds, attribution(vp))
}

// LocationScene is the single-pin map of a project detail page: the project
// always sits at the centre.
func LocationScene(vp Viewport) []Command {
	if vp.Empty() {
		return nil
	}
	w, h := vp.Width, vp.Height
	cx, cy := w/2, h/2

	cmds := make([]Command, 0, 48)
	cmds = append(cmds, Command{Op: OpFillRect, W: w, H: h, Color: ColorBackground})
	cmds = appendGrid(cmds, vp, 32)
	cmds = appendRoads(cmds, [][4]float64{
		{0, h * 0.4, w, h * 0.42},
		{w * 0.5, 0, w * 0.48, h},
	})
	cmds = append(cmds,
		Command{Op: OpFillCircle, X: cx, Y: cy, R: 18, Color: ColorPulse},
		Command{Op: OpFillCircle, X: cx, Y: cy + 2, R: 10, Color: ColorShadow},
		Command{Op: OpFillCircle, X: cx, Y: cy, R: 10, Color: ColorPin},
		Command{Op: OpStrokeCircle, X: cx, Y: cy, R: 10, LineWidth: 3, Color: ColorWhite},
		Command{Op: OpFillCircle, X: cx, Y: cy, R: 3, Color: ColorWhite},
	)
	return append(cmds, attribution(vp))
}

func appendGrid(cmds []Command, vp Viewport, step float64) []Command {
	for x := 0.0; x < vp.Width; x += step {
		cmds = append(cmds, Command{Op: OpLine, X: x, X2: x, Y2: vp.Height, LineWidth: 0.5, Color: ColorGrid})
	}
	for y := 0.0; y < vp.Height; y += step {
		cmds = append(cmds, Command{Op: OpLine, Y: y, X2: vp.Width, Y2: y, LineWidth: 0.5, Color: ColorGrid})
	}
	return cmds
}

func appendRoads(cmds []Command, roads [][4]float64) []Command {
	for _, r := range roads {
		cmds = append(cmds, Command{Op: OpLine, X: r[0], Y: r[1], X2: r[2], Y2: r[3], LineWidth: 2, Color: ColorRoad})
	}
	return cmds
}

func appendMarker(cmds []Command, m Marker, emphasized bool) []Command {
	color := StatusColor(m.Status)
	radius := float64(markerRadius)
	if emphasized {
		radius = markerRadiusWide
	}

	cmds = append(cmds,
		Command{Op: OpFillCircle, X: m.X, Y: m.Y + 2, R: radius, Color: ColorShadow, MarkerID: m.ID},
		Command{Op: OpFillCircle, X: m.X, Y: m.Y, R: radius, Color: color, MarkerID: m.ID},
	)
	if !emphasized {
		return append(cmds, Command{Op: OpStrokeCircle, X: m.X, Y: m.Y, R: radius, LineWidth: 1.5, Color: ColorWhite, MarkerID: m.ID})
	}
	return append(cmds,
		Command{Op: OpStrokeCircle, X: m.X, Y: m.Y, R: radius, LineWidth: 2.5, Color: ColorWhite, MarkerID: m.ID},
		Command{Op: OpStrokeCircle, X: m.X, Y: m.Y, R: radius + 3, LineWidth: 1.5, Color: color, MarkerID: m.ID},
	)
}

func attribution(vp Viewport) Command {
	return Command{
		Op:       OpText,
		X:        vp.Width - 12,
		Y:        vp.Height - 10,
		Text:     Attribution,
		FontSize: 10,
		Align:    "right",
		Color:    ColorAttribution,
	}
}
