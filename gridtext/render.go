package gridtext

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/pdfstrings/model"
)

// CharWidth is the width in engine units (PDF points) of one grid column.
const CharWidth = 4.0

// AlignmentThreshold is how far, in engine units, a span's right edge may be
// from a detected right-aligned column and still snap to it.
const AlignmentThreshold = 16.0

// Column converts an x coordinate to a grid column. Negative coordinates map
// to column 0.
func Column(x float32) int {
	col := math.Round(float64(x) / CharWidth)
	if col <= 0 || math.IsNaN(col) {
		return 0
	}
	return int(col)
}

// Plain renders one line per row with spans separated by a single space.
func Plain(lines []model.Line) string {
	var sb strings.Builder
	for _, line := range lines {
		for i, span := range line {
			if i > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(span.Text)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Pretty renders lines on a character grid, preserving horizontal layout.
func Pretty(lines []model.Line) string {
	columns := RightAlignedColumns(lines)

	var sb strings.Builder
	for _, line := range lines {
		writeGridLine(&sb, line, columns)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func writeGridLine(sb *strings.Builder, line model.Line, columns []float32) {
	cursor := 0
	for _, span := range line {
		textLen := utf8.RuneCountInString(span.Text)

		start := Column(span.BBox.Left)
		if pos, ok := alignedColumn(span, columns); ok {
			start = Column(pos) - textLen
			if start < 0 {
				start = 0
			}
		}

		if start > cursor {
			sb.WriteString(strings.Repeat(" ", start-cursor))
			cursor = start
		} else if cursor > 0 {
			sb.WriteByte(' ')
			cursor++
		}

		sb.WriteString(span.Text)
		cursor += textLen
	}
}

// alignedColumn returns the first right-aligned column the span's right edge
// snaps to.
func alignedColumn(span model.Span, columns []float32) (float32, bool) {
	for _, pos := range columns {
		if math.Abs(float64(span.BBox.Right-pos)) < AlignmentThreshold {
			return pos, true
		}
	}
	return 0, false
}
