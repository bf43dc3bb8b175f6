package geomap

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/nurpe/obras-portal/internal/model"
)

// Color is a non-premultiplied RGBA colour serialised as "#rrggbb", or as
// "rgba(r,g,b,a)" when translucent.
type Color color.NRGBA

var (
	ColorBackground  = Hex("#e8edf2")
	ColorGrid        = Hex("#d5dce5")
	ColorRoad        = Hex("#cdd5de")
	ColorBlock       = Hex("#dde4ec")
	ColorShadow      = Color{A: 38}
	ColorWhite       = Hex("#ffffff")
	ColorAttribution = Hex("#94a3b8")
	ColorPulse       = Color{R: 26, G: 82, B: 118, A: 26}
	ColorPin         = Hex("#1a5276")
)

var statusColors = map[model.ProjectStatus]Color{
	model.StatusInProgress: Hex("#1a5276"),
	model.StatusCompleted:  Hex("#2e8b57"),
	model.StatusPlanned:    Hex("#d4901e"),
	model.StatusDelayed:    Hex("#c0392b"),
	model.StatusOnHold:     Hex("#6b7280"),
}

// StatusColor returns the marker colour for a status; unknown statuses use
// the on-hold grey.
func StatusColor(status model.ProjectStatus) Color {
	if c, ok := statusColors[status]; ok {
		return c
	}
	return statusColors[model.StatusOnHold]
}

// Hex parses "#rrggbb". Malformed input yields opaque black.
func Hex(raw string) Color {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "#")
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil || len(raw) != 6 {
		return Color{A: 255}
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

// Alpha is the opacity in [0, 1].
func (c Color) Alpha() float64 {
	return float64(c.A) / 255
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, c.Alpha())
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
