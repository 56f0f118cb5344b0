// errors.go defines public error types for the lpc10 package.

package lpc10

import "errors"

// Public error values for analysis, bitstream, and synthesis operations.
// Each corresponds to one error kind in the package's error taxonomy.
// Use errors.Is to test for a specific kind; this package maps the internal
// packages' own errors onto these with fmt.Errorf("%w: ...") to attach
// context.
var (
	// ErrInvalidAudio indicates the audio collaborator could not decode the
	// source, or its sample-rate/channel data is unusable.
	ErrInvalidAudio = errors.New("lpc10: invalid audio")

	// ErrEmptyBuffer indicates an operation (segment access, render) was
	// called on a buffer with no samples.
	ErrEmptyBuffer = errors.New("lpc10: empty audio buffer")

	// ErrIndexOutOfRange indicates a segment index >= n_segments, or an
	// access to a missing coding-table entry.
	ErrIndexOutOfRange = errors.New("lpc10: index out of range")

	// ErrBitstreamMalformed indicates an ASCII bitstream contained non-hex
	// characters, or the bit sequence ended mid-frame before the grammar
	// would permit.
	ErrBitstreamMalformed = errors.New("lpc10: malformed bitstream")
)
