package output

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDebug writes every line and span with its bounding box and font size:
//
//	Line 0:
//	  Span 0: "Invoice"
//	    BBox: (t: 72.0, r: 130.2, b: 84.0, l: 72.0)
//	    Font size: 12.0
//	    Page: 1
func (d *Document) WriteDebug(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, line := range d.lines {
		if len(line) == 0 {
			fmt.Fprintf(bw, "Line %d: (empty)\n", i)
			continue
		}

		fmt.Fprintf(bw, "Line %d:\n", i)
		for j, span := range line {
			fmt.Fprintf(bw, "  Span %d: %q\n", j, span.Text)
			fmt.Fprintf(bw, "    BBox: %s\n", span.BBox)
			fmt.Fprintf(bw, "    Font size: %.1f\n", span.FontSize)
			fmt.Fprintf(bw, "    Page: %d\n", span.Page)
		}
	}
	return bw.Flush()
}
