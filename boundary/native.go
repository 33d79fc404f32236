//go:build darwin || linux || freebsd

package boundary

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// native is an Engine backed by the shared library through purego.
type native struct {
	extractFromPath              func(path string) uintptr
	extractFromPathWithPassword  func(path, password string) uintptr
	extractFromBytes             func(data *byte, n uintptr) uintptr
	extractFromBytesWithPassword func(data *byte, n uintptr, password string) uintptr
	lineCount                    func(h uintptr) uintptr
	lineSpanCount                func(h uintptr, line uintptr) uintptr
	getSpan                      func(h uintptr, line, span uintptr, out *SpanC) int32
	renderPlain                  func(h uintptr) uintptr
	renderPretty                 func(h uintptr) uintptr
	stringFree                   func(s uintptr)
	spanTextFree                 func(s uintptr)
	outputFree                   func(h uintptr)
	lastError                    func() uintptr
}

// LoadNative opens the native engine at path, or at FindLibrary() when path is
// empty, and binds every entry point. Any failure is a *LoadError.
func LoadNative(path string) (*Library, error) {
	if path == "" {
		path = FindLibrary()
	}
	if err := CheckLayout(); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	n := &native{}
	bindings := []struct {
		fn   any
		name string
	}{
		{&n.extractFromPath, "pdf_extract_from_path"},
		{&n.extractFromPathWithPassword, "pdf_extract_from_path_with_password"},
		{&n.extractFromBytes, "pdf_extract_from_bytes"},
		{&n.extractFromBytesWithPassword, "pdf_extract_from_bytes_with_password"},
		{&n.lineCount, "pdf_line_count"},
		{&n.lineSpanCount, "pdf_line_span_count"},
		{&n.getSpan, "pdf_get_span"},
		{&n.renderPlain, "pdf_output_to_string"},
		{&n.renderPretty, "pdf_output_to_string_pretty"},
		{&n.stringFree, "pdf_string_free"},
		{&n.spanTextFree, "pdf_span_text_free"},
		{&n.outputFree, "pdf_output_free"},
		{&n.lastError, "pdf_last_error"},
	}

	// Resolve with Dlsym first: RegisterLibFunc panics on a missing symbol.
	for _, b := range bindings {
		sym, err := purego.Dlsym(lib, b.name)
		if err != nil {
			_ = purego.Dlclose(lib)
			return nil, &LoadError{Path: path, Err: fmt.Errorf("missing symbol %s: %w", b.name, err)}
		}
		purego.RegisterFunc(b.fn, sym)
	}

	return New(path, n), nil
}

func (n *native) ExtractFromPath(path string) Handle {
	return Handle(n.extractFromPath(path))
}

func (n *native) ExtractFromPathWithPassword(path, password string) Handle {
	return Handle(n.extractFromPathWithPassword(path, password))
}

func (n *native) ExtractFromBytes(data []byte) Handle {
	h := n.extractFromBytes(bytePtr(data), uintptr(len(data)))
	runtime.KeepAlive(data)
	return Handle(h)
}

func (n *native) ExtractFromBytesWithPassword(data []byte, password string) Handle {
	h := n.extractFromBytesWithPassword(bytePtr(data), uintptr(len(data)), password)
	runtime.KeepAlive(data)
	return Handle(h)
}

func (n *native) LineCount(h Handle) uint {
	return uint(n.lineCount(uintptr(h)))
}

func (n *native) LineSpanCount(h Handle, line uint) uint {
	return uint(n.lineSpanCount(uintptr(h), uintptr(line)))
}

func (n *native) GetSpan(h Handle, line, span uint, out *SpanC) int32 {
	return n.getSpan(uintptr(h), uintptr(line), uintptr(span), out)
}

func (n *native) RenderPlain(h Handle) CStr {
	return CStr(n.renderPlain(uintptr(h)))
}

func (n *native) RenderPretty(h Handle) CStr {
	return CStr(n.renderPretty(uintptr(h)))
}

func (n *native) ReleaseString(s CStr) {
	n.stringFree(uintptr(s))
}

func (n *native) ReleaseSpanText(s CStr) {
	n.spanTextFree(uintptr(s))
}

func (n *native) ReleaseHandle(h Handle) {
	n.outputFree(uintptr(h))
}

func (n *native) LastError() CStr {
	return CStr(n.lastError())
}

// bytePtr returns a pointer to the first byte of data, or nil when data is
// empty. The engine rejects a null data pointer with its own error.
func bytePtr(data []byte) *byte {
	if len(data) == 0 {
		return nil
	}
	return &data[0]
}
