package wireframe

import "testing"

func TestFrameDimensions(t *testing.T) {
	// narrow box: 375 + 2*24 = 423 wide, 640 + 2*24 + 40 = 728 tall
	tests := []struct {
		name    string
		frame   Frame
		screens int
		want    Dims
	}{
		{
			name:    "single narrow",
			frame:   Frame{Viewport: ViewportNarrow, Arrangement: SideBySide},
			screens: 1,
			want:    Dims{Width: 423, Height: 728},
		},
		{
			name:    "three narrow side-by-side",
			frame:   Frame{Viewport: ViewportNarrow, Arrangement: SideBySide},
			screens: 3,
			want:    Dims{Width: 423*3 + 48*2, Height: 728},
		},
		{
			name:    "three narrow stacked swaps roles",
			frame:   Frame{Viewport: ViewportNarrow, Arrangement: Stacked},
			screens: 3,
			want:    Dims{Width: 423, Height: 728*3 + 48*2},
		},
		{
			name:    "two wide side-by-side",
			frame:   Frame{Viewport: ViewportWide, Arrangement: SideBySide},
			screens: 2,
			want:    Dims{Width: (1280+48)*2 + 48, Height: 728},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.frame.Dimensions(tt.screens)
			if err != nil {
				t.Fatalf("Dimensions() error = %v", err)
			}
			if !approx(got.Width, tt.want.Width) || !approx(got.Height, tt.want.Height) {
				t.Errorf("Dimensions() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestFrameDimensionsErrors(t *testing.T) {
	frame := Frame{Viewport: ViewportNarrow, Arrangement: SideBySide}
	if _, err := frame.Dimensions(0); err == nil {
		t.Error("Dimensions(0) should fail")
	}
	if _, err := frame.Dimensions(-1); err == nil {
		t.Error("Dimensions(-1) should fail")
	}

	bad := Frame{Viewport: "cinema", Arrangement: SideBySide}
	if _, err := bad.Dimensions(1); err == nil {
		t.Error("unknown viewport class should fail")
	}
}

func TestFrameContent(t *testing.T) {
	frame := Frame{Viewport: ViewportNarrow, Arrangement: SideBySide}

	got, err := frame.Content(1)
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	// second box starts at 423+48; content is inset by padding, below the label band
	want := Rect{X: 471 + 24, Y: 24 + 40, Width: 375, Height: 640}
	if !rectApprox(got, want) {
		t.Errorf("Content(1) = %+v, want %+v", got, want)
	}
}

func TestFrameContentStacked(t *testing.T) {
	frame := Frame{Viewport: ViewportMedium, Arrangement: Stacked}

	got, err := frame.Content(2)
	if err != nil {
		t.Fatalf("Content() error = %v", err)
	}
	want := Rect{X: 24, Y: 2*(728+48) + 24 + 40, Width: 768, Height: 640}
	if !rectApprox(got, want) {
		t.Errorf("Content(2) = %+v, want %+v", got, want)
	}
}

func TestFrameLayoutScreens(t *testing.T) {
	frame := Frame{Viewport: ViewportNarrow, Arrangement: SideBySide}
	screens := []*Component{
		{ID: "s1", Kind: KindScreen, Children: []*Component{leaf("s1-body")}},
		{ID: "s2", Kind: KindScreen, Children: []*Component{leaf("s2-body")}},
	}

	dims, placed, err := frame.LayoutScreens(screens)
	if err != nil {
		t.Fatalf("LayoutScreens() error = %v", err)
	}
	if !approx(dims.Width, 423*2+48) {
		t.Errorf("canvas width = %v, want %v", dims.Width, 423.0*2+48)
	}
	if len(placed) != 4 {
		t.Fatalf("got %d placements, want 4 (two screens, one leaf each)", len(placed))
	}

	// Each screen root fills its tile content; the sole child fills the screen.
	first, err := frame.Content(0)
	if err != nil {
		t.Fatal(err)
	}
	if !rectApprox(placed[0].Bounds, first) {
		t.Errorf("first screen bounds = %+v, want %+v", placed[0].Bounds, first)
	}
	if !rectApprox(placed[1].Bounds, first) {
		t.Errorf("first screen body = %+v, want full content %+v", placed[1].Bounds, first)
	}

	second, err := frame.Content(1)
	if err != nil {
		t.Fatal(err)
	}
	if !rectApprox(placed[2].Bounds, second) {
		t.Errorf("second screen bounds = %+v, want %+v", placed[2].Bounds, second)
	}
}

func TestViewportWidths(t *testing.T) {
	tests := []struct {
		class ViewportClass
		want  float64
	}{
		{ViewportNarrow, 375},
		{ViewportMedium, 768},
		{ViewportWide, 1280},
	}
	for _, tt := range tests {
		got, err := tt.class.Width()
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.class, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s width = %v, want %v", tt.class, got, tt.want)
		}
	}

	if _, err := ViewportClass("huge").Width(); err == nil {
		t.Error("unknown class should fail")
	}
}
