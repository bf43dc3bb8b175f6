package geomap

// Canvas is the thin drawing surface a frame is replayed onto.
type Canvas interface {
	// Reset starts a new frame of the given size.
	Reset(vp Viewport)
	FillRect(x, y, w, h float64, c Color)
	Line(x1, y1, x2, y2, width float64, c Color)
	FillCircle(x, y, r float64, c Color)
	StrokeCircle(x, y, r, width float64, c Color)
	Text(x, y, size float64, align, text string, c Color)
}

func Replay(cmds []Command, canvas Canvas) {
	for _, cmd := range cmds {
		switch cmd.Op {
		case OpFillRect:
			canvas.FillRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color)
		case OpLine:
			canvas.Line(cmd.X, cmd.Y, cmd.X2, cmd.Y2, cmd.LineWidth, cmd.Color)
		case OpFillCircle:
			canvas.FillCircle(cmd.X, cmd.Y, cmd.R, cmd.Color)
		case OpStrokeCircle:
			canvas.StrokeCircle(cmd.X, cmd.Y, cmd.R, cmd.LineWidth, cmd.Color)
		case OpText:
			canvas.Text(cmd.X, cmd.Y, cmd.FontSize, cmd.Align, cmd.Text, cmd.Color)
		}
	}
}
