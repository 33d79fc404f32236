package model

import (
	"fmt"
	"math"
)

// Point represents a 2D point in engine coordinates.
type Point struct {
	X, Y float32
}

// BoundingBox holds the edges of a span. Field order matches the engine's
// native struct.
type BoundingBox struct {
	Top    float32
	Right  float32
	Bottom float32
	Left   float32
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float32 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box, regardless of whether the
// engine's Y axis points up or down.
func (b BoundingBox) Height() float32 {
	return float32(math.Abs(float64(b.Bottom - b.Top)))
}

// TopLeft returns the corner at (Left, Top).
func (b BoundingBox) TopLeft() Point {
	return Point{X: b.Left, Y: b.Top}
}

// TopRight returns the corner at (Right, Top).
func (b BoundingBox) TopRight() Point {
	return Point{X: b.Right, Y: b.Top}
}

// BottomLeft returns the corner at (Left, Bottom).
func (b BoundingBox) BottomLeft() Point {
	return Point{X: b.Left, Y: b.Bottom}
}

// BottomRight returns the corner at (Right, Bottom).
func (b BoundingBox) BottomRight() Point {
	return Point{X: b.Right, Y: b.Bottom}
}

// IsZero reports whether all four edges are zero.
func (b BoundingBox) IsZero() bool {
	return b == BoundingBox{}
}

// Union returns the smallest box containing both boxes. The zero box is
// treated as empty so that Union can be used as an accumulator.
//
// Top and Bottom are combined by value (min/max) so the result is only
// meaningful when both boxes come from the same engine coordinate space.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	if b.IsZero() {
		return other
	}
	if other.IsZero() {
		return b
	}

	topDown := b.Top <= b.Bottom
	out := BoundingBox{
		Left:  min32(b.Left, other.Left),
		Right: max32(b.Right, other.Right),
	}
	if topDown {
		out.Top = min32(b.Top, other.Top)
		out.Bottom = max32(b.Bottom, other.Bottom)
	} else {
		out.Top = max32(b.Top, other.Top)
		out.Bottom = min32(b.Bottom, other.Bottom)
	}
	return out
}

// String formats the box the same way the engine's debug output does.
func (b BoundingBox) String() string {
	return fmt.Sprintf("(t: %.1f, r: %.1f, b: %.1f, l: %.1f)", b.Top, b.Right, b.Bottom, b.Left)
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
