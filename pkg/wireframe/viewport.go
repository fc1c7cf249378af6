package wireframe

import "fmt"

// =============================================================================
// Viewport Classes & Arrangements
// =============================================================================

// ViewportClass selects a preset screen width.
type ViewportClass string

const (
	ViewportNarrow ViewportClass = "narrow"
	ViewportMedium ViewportClass = "medium"
	ViewportWide   ViewportClass = "wide"
)

// Arrangement controls how multiple screens are tiled on the canvas.
type Arrangement string

const (
	// SideBySide tiles screens left to right.
	SideBySide Arrangement = "side-by-side"
	// Stacked tiles screens top to bottom.
	Stacked Arrangement = "stacked"
)

// Canvas sizing constants. Every screen box adds padding on all sides and
// a label band above the screen content; boxes are separated by a fixed
// gap. The same constants drive both canvas sizing and screen tiling so
// origins and dimensions can never drift apart.
const (
	// BaseHeight is the screen content height shared by all classes.
	BaseHeight = 640.0

	// ScreenPadding is the whitespace around each screen's content.
	ScreenPadding = 24.0

	// LabelBand is the strip above each screen reserved for its title.
	LabelBand = 40.0

	// ScreenGap separates consecutive screen boxes.
	ScreenGap = 48.0
)

// viewportWidths maps each class to its screen content width.
var viewportWidths = map[ViewportClass]float64{
	ViewportNarrow: 375,
	ViewportMedium: 768,
	ViewportWide:   1280,
}

// Width returns the screen content width for the class.
// Unknown classes return an error; there is no silent default.
func (v ViewportClass) Width() (float64, error) {
	w, ok := viewportWidths[v]
	if !ok {
		return 0, fmt.Errorf("unknown viewport class %q", v)
	}
	return w, nil
}

// =============================================================================
// Frame - Multi-Screen Canvas
// =============================================================================

// Frame describes a multi-screen canvas: a viewport class shared by every
// screen and the direction in which screens are arranged.
type Frame struct {
	Viewport    ViewportClass
	Arrangement Arrangement
}

// Dims holds total canvas dimensions.
type Dims struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// boxSize returns the outer size of a single screen box: content plus
// padding on all sides plus the label band above.
func (f Frame) boxSize() (w, h float64, err error) {
	base, err := f.Viewport.Width()
	if err != nil {
		return 0, 0, err
	}
	w = base + 2*ScreenPadding
	h = BaseHeight + 2*ScreenPadding + LabelBand
	return w, h, nil
}

// Dimensions computes the total canvas size for screens screen boxes.
// For side-by-side arrangements the boxes extend the width; for stacked
// arrangements the roles of width and height swap. screens must be at
// least 1.
func (f Frame) Dimensions(screens int) (Dims, error) {
	if screens < 1 {
		return Dims{}, fmt.Errorf("screen count must be >= 1, got %d", screens)
	}
	boxW, boxH, err := f.boxSize()
	if err != nil {
		return Dims{}, err
	}

	n := float64(screens)
	span := func(box float64) float64 { return box*n + ScreenGap*(n-1) }

	if f.Arrangement == Stacked {
		return Dims{Width: boxW, Height: span(boxH)}, nil
	}
	return Dims{Width: span(boxW), Height: boxH}, nil
}

// ScreenBox returns the outer bounds of the i-th screen box (0-based),
// including its padding and label band.
func (f Frame) ScreenBox(i int) (Rect, error) {
	if i < 0 {
		return Rect{}, fmt.Errorf("screen index must be >= 0, got %d", i)
	}
	boxW, boxH, err := f.boxSize()
	if err != nil {
		return Rect{}, err
	}
	step := float64(i)
	if f.Arrangement == Stacked {
		return Rect{X: 0, Y: step * (boxH + ScreenGap), Width: boxW, Height: boxH}, nil
	}
	return Rect{X: step * (boxW + ScreenGap), Y: 0, Width: boxW, Height: boxH}, nil
}

// Content returns the root layout bounds for the i-th screen: the box
// minus padding, below the label band. This is the rectangle handed to
// Layout for that screen's component tree.
func (f Frame) Content(i int) (Rect, error) {
	box, err := f.ScreenBox(i)
	if err != nil {
		return Rect{}, err
	}
	base, err := f.Viewport.Width()
	if err != nil {
		return Rect{}, err
	}
	return Rect{
		X:      box.X + ScreenPadding,
		Y:      box.Y + ScreenPadding + LabelBand,
		Width:  base,
		Height: BaseHeight,
	}, nil
}

// LayoutScreens sizes the canvas for the given screens and lays out each
// screen tree against its tile. Placements include container nodes.
func (f Frame) LayoutScreens(screens []*Component) (Dims, []Placement, error) {
	dims, err := f.Dimensions(len(screens))
	if err != nil {
		return Dims{}, nil, err
	}

	var out []Placement
	for i, screen := range screens {
		content, err := f.Content(i)
		if err != nil {
			return Dims{}, nil, err
		}
		placed, err := LayoutAll(screen, content)
		if err != nil {
			return Dims{}, nil, err
		}
		out = append(out, placed...)
	}
	return dims, out, nil
}
