package wireframe

// Rect is an axis-aligned rectangle in absolute canvas coordinates.
// All values are user units (typically pixels in the rendered output).
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center point.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// CenterY returns the vertical center point.
func (r Rect) CenterY() float64 { return r.Y + r.Height/2 }

// Inset returns the rectangle shrunk by pad on all four sides.
// Width and height are clamped at zero so a pad larger than half the
// extent never produces a negative rectangle.
func (r Rect) Inset(pad float64) Rect {
	if pad <= 0 {
		return r
	}
	return Rect{
		X:      r.X + pad,
		Y:      r.Y + pad,
		Width:  clampNonNegative(r.Width - 2*pad),
		Height: clampNonNegative(r.Height - 2*pad),
	}
}

// Extent returns the rectangle's size along the given axis.
func (r Rect) Extent(a Axis) float64 {
	if a == Horizontal {
		return r.Width
	}
	return r.Height
}

// CrossExtent returns the rectangle's size perpendicular to the given axis.
func (r Rect) CrossExtent(a Axis) float64 {
	if a == Horizontal {
		return r.Height
	}
	return r.Width
}

func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
