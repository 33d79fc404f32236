package boundary

// Handle is an engine-owned extraction result. Zero is null.
type Handle uintptr

// CStr is a pointer to a NUL-terminated UTF-8 buffer owned by the engine.
// Zero is null.
type CStr uintptr

// BBoxC mirrors the engine's bounding box struct.
type BBoxC struct {
	T float32
	R float32
	B float32
	L float32
}

// SpanC mirrors the engine's span struct. Text is engine-owned and must be
// released with ReleaseSpanText after a successful GetSpan.
type SpanC struct {
	Text     CStr
	BBox     BBoxC
	FontSize float32
	Page     uint32
}

// Engine is the raw entry-point table of an extraction engine.
//
// Ownership rules:
//   - handles returned by the Extract calls belong to the engine until
//     passed to ReleaseHandle; releasing twice is undefined
//   - strings returned by RenderPlain and RenderPretty must be passed to
//     ReleaseString
//   - SpanC.Text filled by GetSpan must be passed to ReleaseSpanText
//   - LastError is borrowed and must not be released
//
// Implementations need not be safe for concurrent use; Library serializes
// all calls.
type Engine interface {
	ExtractFromPath(path string) Handle
	ExtractFromPathWithPassword(path, password string) Handle
	ExtractFromBytes(data []byte) Handle
	ExtractFromBytesWithPassword(data []byte, password string) Handle

	LineCount(h Handle) uint
	LineSpanCount(h Handle, line uint) uint
	// GetSpan returns 0 on success.
	GetSpan(h Handle, line, span uint, out *SpanC) int32

	RenderPlain(h Handle) CStr
	RenderPretty(h Handle) CStr

	ReleaseString(s CStr)
	ReleaseSpanText(s CStr)
	ReleaseHandle(h Handle)

	LastError() CStr
}
