package wireframe

import (
	"errors"
	"testing"
)

func TestKindAxis(t *testing.T) {
	tests := []struct {
		kind Kind
		want Axis
	}{
		{KindRow, Horizontal},
		{KindColumn, Vertical},
		{KindScreen, Vertical},
		{KindCard, Vertical},
		{KindText, Vertical},
		{KindButton, Vertical},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			got, err := tt.kind.Axis()
			if err != nil {
				t.Fatalf("Axis() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Axis() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKindAxisUnknown(t *testing.T) {
	_, err := Kind("blob").Axis()
	var uke *UnknownKindError
	if !errors.As(err, &uke) {
		t.Fatalf("Axis() error = %v, want UnknownKindError", err)
	}
}

func TestKindClassification(t *testing.T) {
	for _, k := range []Kind{KindScreen, KindColumn, KindRow, KindCard} {
		if !k.IsContainer() || k.IsLeaf() {
			t.Errorf("%s should classify as container", k)
		}
	}
	for _, k := range []Kind{KindText, KindButton, KindInput, KindImage, KindIcon, KindDivider} {
		if !k.IsLeaf() || k.IsContainer() {
			t.Errorf("%s should classify as leaf", k)
		}
	}
	if Kind("blob").Known() {
		t.Error("unknown kind should not be Known")
	}
}

func TestAxisString(t *testing.T) {
	if Vertical.String() != "vertical" || Horizontal.String() != "horizontal" {
		t.Errorf("Axis.String() = %q/%q", Vertical, Horizontal)
	}
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if r.Right() != 40 || r.Bottom() != 60 {
		t.Errorf("edges = %v/%v, want 40/60", r.Right(), r.Bottom())
	}
	if r.CenterX() != 25 || r.CenterY() != 40 {
		t.Errorf("center = %v/%v, want 25/40", r.CenterX(), r.CenterY())
	}

	in := r.Inset(5)
	want := Rect{X: 15, Y: 25, Width: 20, Height: 30}
	if in != want {
		t.Errorf("Inset(5) = %+v, want %+v", in, want)
	}

	// Oversized padding clamps at zero rather than going negative.
	tiny := Rect{Width: 10, Height: 10}.Inset(20)
	if tiny.Width != 0 || tiny.Height != 0 {
		t.Errorf("oversized Inset = %+v, want zero extents", tiny)
	}
}
