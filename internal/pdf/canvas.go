package pdf

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/obras-portal/internal/geomap"
)

// pxToPt converts canvas pixels (96 dpi) to PDF points.
const pxToPt = 0.75

// MapCanvas replays map frames onto a gofpdf page. Coordinates are canvas
// pixels; origin and scale place the frame in page units.
type MapCanvas struct {
	pdf     *gofpdf.Fpdf
	originX float64
	originY float64
	scale   float64
	frames  int
}

func NewMapCanvas(pdf *gofpdf.Fpdf, originX, originY, scale float64) *MapCanvas {
	return &MapCanvas{pdf: pdf, originX: originX, originY: originY, scale: scale}
}

// Reset clips the following frame to the viewport. A later frame paints
// over the previous one, starting with its background.
func (c *MapCanvas) Reset(vp geomap.Viewport) {
	if c.frames > 0 {
		c.pdf.ClipEnd()
	}
	c.frames++
	c.pdf.ClipRect(c.originX, c.originY, vp.Width*c.scale, vp.Height*c.scale, false)
}

// Close ends the clipping region of the last frame.
func (c *MapCanvas) Close() {
	if c.frames > 0 {
		c.pdf.ClipEnd()
		c.frames = 0
	}
}

func (c *MapCanvas) FillRect(x, y, w, h float64, col geomap.Color) {
	c.fill(col)
	c.pdf.Rect(c.x(x), c.y(y), w*c.scale, h*c.scale, "F")
	c.resetAlpha(col)
}

func (c *MapCanvas) Line(x1, y1, x2, y2, width float64, col geomap.Color) {
	c.stroke(col, width)
	c.pdf.Line(c.x(x1), c.y(y1), c.x(x2), c.y(y2))
	c.resetAlpha(col)
}

func (c *MapCanvas) FillCircle(x, y, r float64, col geomap.Color) {
	c.fill(col)
	c.pdf.Circle(c.x(x), c.y(y), r*c.scale, "F")
	c.resetAlpha(col)
}

func (c *MapCanvas) StrokeCircle(x, y, r, width float64, col geomap.Color) {
	c.stroke(col, width)
	c.pdf.Circle(c.x(x), c.y(y), r*c.scale, "D")
	c.resetAlpha(col)
}

func (c *MapCanvas) Text(x, y, size float64, align, text string, col geomap.Color) {
	c.pdf.SetFont("Helvetica", "", size*pxToPt)
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
	px := c.x(x)
	switch align {
	case "right":
		px -= c.pdf.GetStringWidth(text)
	case "center":
		px -= c.pdf.GetStringWidth(text) / 2
	}
	c.pdf.Text(px, c.y(y), text)
	c.pdf.SetTextColor(0, 0, 0)
}

func (c *MapCanvas) x(v float64) float64 {
	return c.originX + v*c.scale
}

func (c *MapCanvas) y(v float64) float64 {
	return c.originY + v*c.scale
}

func (c *MapCanvas) fill(col geomap.Color) {
	c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
	if col.A < 255 {
		c.pdf.SetAlpha(col.Alpha(), "Normal")
	}
}

func (c *MapCanvas) stroke(col geomap.Color, width float64) {
	c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
	c.pdf.SetLineWidth(width * c.scale)
	if col.A < 255 {
		c.pdf.SetAlpha(col.Alpha(), "Normal")
	}
}

func (c *MapCanvas) resetAlpha(col geomap.Color) {
	if col.A < 255 {
		c.pdf.SetAlpha(1, "Normal")
	}
}
