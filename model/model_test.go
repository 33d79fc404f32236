package model

import (
	"testing"
)

// ============================================================================
// BoundingBox Tests
// ============================================================================

func TestBoundingBoxDimensions(t *testing.T) {
	tests := []struct {
		name          string
		box           BoundingBox
		width, height float32
	}{
		{"top-down", BoundingBox{Top: 100, Right: 250, Bottom: 112, Left: 200}, 50, 12},
		{"bottom-up", BoundingBox{Top: 712, Right: 250, Bottom: 700, Left: 200}, 50, 12},
		{"zero", BoundingBox{}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Width(); got != tt.width {
				t.Errorf("Width() = %v, want %v", got, tt.width)
			}
			if got := tt.box.Height(); got != tt.height {
				t.Errorf("Height() = %v, want %v", got, tt.height)
			}
		})
	}
}

func TestBoundingBoxCorners(t *testing.T) {
	box := BoundingBox{Top: 10, Right: 40, Bottom: 20, Left: 30}

	if p := box.TopLeft(); p != (Point{X: 30, Y: 10}) {
		t.Errorf("TopLeft() = %+v", p)
	}
	if p := box.TopRight(); p != (Point{X: 40, Y: 10}) {
		t.Errorf("TopRight() = %+v", p)
	}
	if p := box.BottomLeft(); p != (Point{X: 30, Y: 20}) {
		t.Errorf("BottomLeft() = %+v", p)
	}
	if p := box.BottomRight(); p != (Point{X: 40, Y: 20}) {
		t.Errorf("BottomRight() = %+v", p)
	}
}

func TestBoundingBoxString(t *testing.T) {
	box := BoundingBox{Top: 72, Right: 130.25, Bottom: 84.04, Left: 72}
	want := "(t: 72.0, r: 130.2, b: 84.0, l: 72.0)"
	if got := box.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBoundingBoxUnion(t *testing.T) {
	a := BoundingBox{Top: 10, Right: 50, Bottom: 20, Left: 10}
	b := BoundingBox{Top: 12, Right: 90, Bottom: 24, Left: 60}

	got := a.Union(b)
	want := BoundingBox{Top: 10, Right: 90, Bottom: 24, Left: 10}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}

	if got := (BoundingBox{}).Union(b); got != b {
		t.Errorf("zero.Union(b) = %+v, want %+v", got, b)
	}
	if got := a.Union(BoundingBox{}); got != a {
		t.Errorf("a.Union(zero) = %+v, want %+v", got, a)
	}
}

func TestBoundingBoxUnionBottomUp(t *testing.T) {
	a := BoundingBox{Top: 712, Right: 50, Bottom: 700, Left: 10}
	b := BoundingBox{Top: 715, Right: 90, Bottom: 703, Left: 60}

	got := a.Union(b)
	want := BoundingBox{Top: 715, Right: 90, Bottom: 700, Left: 10}
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}

// ============================================================================
// Line Tests
// ============================================================================

func TestLineText(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want string
	}{
		{"empty", nil, ""},
		{"single", Line{{Text: "Hello"}}, "Hello"},
		{"multiple", Line{{Text: "Invoice"}, {Text: "#42"}, {Text: "$10.00"}}, "Invoice #42 $10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.line.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLineBBox(t *testing.T) {
	line := Line{
		{Text: "a", BBox: BoundingBox{Top: 10, Right: 20, Bottom: 22, Left: 10}},
		{Text: "b", BBox: BoundingBox{Top: 11, Right: 80, Bottom: 21, Left: 70}},
	}

	want := BoundingBox{Top: 10, Right: 80, Bottom: 22, Left: 10}
	if got := line.BBox(); got != want {
		t.Errorf("BBox() = %+v, want %+v", got, want)
	}

	if got := (Line{}).BBox(); !got.IsZero() {
		t.Errorf("empty line BBox() = %+v, want zero", got)
	}
}

func TestLineClone(t *testing.T) {
	line := Line{{Text: "a"}, {Text: "b"}}
	clone := line.Clone()
	clone[0].Text = "changed"

	if line[0].Text != "a" {
		t.Error("Clone shares backing array with original")
	}
	if Line(nil).Clone() != nil {
		t.Error("Clone of nil line should be nil")
	}
}
