package audio

import "errors"

// Sentinel errors for the audio buffer. The root lpc10 package re-exports
// equivalents and callers should use errors.Is against those, since these
// internal values and the root ones are distinct by design (internal/
// packages are not importable outside this module).
var (
	// ErrEmpty is returned when an operation requires samples but the
	// buffer holds none.
	ErrEmpty = errors.New("lpc10/internal/audio: buffer is empty")

	// ErrIndexOutOfRange is returned by Segment for an out-of-bounds index.
	ErrIndexOutOfRange = errors.New("lpc10/internal/audio: index out of range")

	// ErrInvalidAudio is returned when a WAV source cannot be decoded.
	ErrInvalidAudio = errors.New("lpc10/internal/audio: invalid audio")
)
