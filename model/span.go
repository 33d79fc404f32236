package model

import "strings"

// Span is one contiguous run of text at one position on one page.
type Span struct {
	// Text is a Go-owned copy of the engine's span text.
	Text string

	// BBox is the span's bounding box in engine coordinates.
	BBox BoundingBox

	// FontSize is the effective font size reported by the engine.
	FontSize float32

	// Page is the engine's page number. The reference engine numbers pages
	// from 1.
	Page uint32
}

// Line is an ordered sequence of spans in the engine's reading order.
// The order is significant and must not be changed.
type Line []Span

// Text joins the span texts with a single space.
func (l Line) Text() string {
	if len(l) == 0 {
		return ""
	}
	if len(l) == 1 {
		return l[0].Text
	}

	var sb strings.Builder
	for i, span := range l {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// BBox returns the union of the span boxes, or the zero box for an empty line.
func (l Line) BBox() BoundingBox {
	var box BoundingBox
	for _, span := range l {
		box = box.Union(span.BBox)
	}
	return box
}

// Clone returns a copy of the line that shares no backing array with l.
func (l Line) Clone() Line {
	if l == nil {
		return nil
	}
	out := make(Line, len(l))
	copy(out, l)
	return out
}
