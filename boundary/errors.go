package boundary

import "fmt"

// UnknownError is reported when a call fails and the engine recorded no message.
const UnknownError = "unknown error"

// CallError is returned when an entry point signals failure. Message is the
// engine's last-error text read immediately after the failing call.
type CallError struct {
	Op      string
	Message string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// LoadError is returned when the engine library cannot be located, opened, or
// does not export the expected symbols. It is fatal: no extraction is possible.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load extraction engine: %v", e.Err)
	}
	return fmt.Sprintf("load extraction engine from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
