package handle

import "fmt"

// Source is the input of an acquisition: a file path or PDF bytes.
type Source struct {
	path  string
	data  []byte
	inMem bool
}

// Path returns a Source that opens the file at p.
func Path(p string) Source {
	return Source{path: p}
}

// Bytes returns a Source over data. The engine reads data during acquisition
// only; it is not retained afterwards.
func Bytes(data []byte) Source {
	return Source{data: data, inMem: true}
}

// IsBytes reports whether s is an in-memory source.
func (s Source) IsBytes() bool {
	return s.inMem
}

// String describes the source for errors and logs.
func (s Source) String() string {
	if s.inMem {
		return fmt.Sprintf("<%d bytes>", len(s.data))
	}
	return s.path
}
