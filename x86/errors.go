package x86

import "errors"

// Decoding errors, named the way the taxonomy in spec.md §7 describes them.
var (
	// ErrTruncatedStream is returned when a matched instruction pattern
	// needs bytes past the end of the stream. The decoder never reads past
	// the buffer; this is the signal that forward progress is no longer
	// possible.
	ErrTruncatedStream = errors.New("x86: truncated instruction stream")
)
