package boundary

import (
	"fmt"
	"unsafe"
)

// ptrSize is the size of a C pointer on this platform.
const ptrSize = unsafe.Sizeof(uintptr(0))

type fieldLayout struct {
	name   string
	got    uintptr
	expect uintptr
}

// CheckLayout verifies that SpanC and BBoxC have the same size and field
// offsets as the engine's C structs:
//
//	struct { float t, r, b, l; }                        // 16 bytes
//	struct { char *text; bbox; float font_size; uint32_t page; }
func CheckLayout() error {
	var span SpanC
	var box BBoxC

	spanSize := ptrSize + 16 + 4 + 4
	if rem := spanSize % ptrSize; rem != 0 {
		spanSize += ptrSize - rem
	}

	checks := []fieldLayout{
		{"sizeof(BBoxC)", unsafe.Sizeof(box), 16},
		{"BBoxC.T", unsafe.Offsetof(box.T), 0},
		{"BBoxC.R", unsafe.Offsetof(box.R), 4},
		{"BBoxC.B", unsafe.Offsetof(box.B), 8},
		{"BBoxC.L", unsafe.Offsetof(box.L), 12},
		{"sizeof(SpanC)", unsafe.Sizeof(span), spanSize},
		{"SpanC.Text", unsafe.Offsetof(span.Text), 0},
		{"SpanC.BBox", unsafe.Offsetof(span.BBox), ptrSize},
		{"SpanC.FontSize", unsafe.Offsetof(span.FontSize), ptrSize + 16},
		{"SpanC.Page", unsafe.Offsetof(span.Page), ptrSize + 20},
	}

	for _, c := range checks {
		if c.got != c.expect {
			return fmt.Errorf("boundary: %s is %d, engine expects %d", c.name, c.got, c.expect)
		}
	}
	return nil
}
