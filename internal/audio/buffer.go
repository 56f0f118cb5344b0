// Package audio implements the segmented mono PCM buffer that both analysis
// tracts share. It also owns the WAV boundary to the outside world:
// rendering synthesized PCM to disk and loading PCM from an existing WAV
// file.
package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Buffer holds mono PCM samples segmented into fixed-width windows.
//
// A Buffer is an owned value: all mutation happens through its own methods,
// never through aliasing. It is not safe for concurrent mutation, though
// read-only access (Segment, AllSegments) from multiple goroutines is fine
// once construction has finished.
type Buffer struct {
	samples           []float32
	original          []float32
	sampleRateHz      int
	windowWidthMs     float64
	samplesPerSegment int
	nSegments         int
}

// NewFromSamples constructs a Buffer from existing mono PCM samples and
// immediately establishes the segmentation-padding invariant.
func NewFromSamples(samples []float32, sampleRateHz int, windowWidthMs float64) *Buffer {
	b := &Buffer{
		sampleRateHz: sampleRateHz,
	}
	b.samples = append([]float32(nil), samples...)
	b.original = append([]float32(nil), samples...)
	b.SetWindowWidthMs(windowWidthMs)
	return b
}

// NewEmpty constructs a Buffer with no samples. Per the data model, a
// freshly constructed empty buffer always has zero segments.
func NewEmpty(sampleRateHz int, windowWidthMs float64) *Buffer {
	return &Buffer{
		sampleRateHz:  sampleRateHz,
		windowWidthMs: windowWidthMs,
	}
}

// SampleRate returns the buffer's sample rate in Hertz.
func (b *Buffer) SampleRate() int { return b.sampleRateHz }

// WindowWidthMs returns the current segmentation window width.
func (b *Buffer) WindowWidthMs() float64 { return b.windowWidthMs }

// SamplesPerSegment returns the number of samples in each segment.
func (b *Buffer) SamplesPerSegment() int { return b.samplesPerSegment }

// NSegments returns the number of complete segments in the buffer.
func (b *Buffer) NSegments() int { return b.nSegments }

// IsEmpty reports whether the buffer holds no samples.
func (b *Buffer) IsEmpty() bool { return len(b.samples) == 0 }

// Samples returns the flat, unsegmented sample slice. Callers must not
// mutate the returned slice.
func (b *Buffer) Samples() []float32 { return b.samples }

// SetWindowWidthMs recomputes segmentation for a new window width and
// re-establishes the padding invariant: zero-padding the sample slice so
// that n_segments*samplesPerSegment <= len(samples) <= (n_segments+1)*samplesPerSegment.
func (b *Buffer) SetWindowWidthMs(windowWidthMs float64) {
	b.windowWidthMs = windowWidthMs
	b.samplesPerSegment = int(float64(b.sampleRateHz) * windowWidthMs * 1e-3)

	if b.samplesPerSegment <= 0 {
		b.nSegments = 0
		return
	}

	b.nSegments = len(b.samples) / b.samplesPerSegment

	paddedSize := b.nSegments * b.samplesPerSegment
	switch {
	case len(b.samples) < paddedSize:
		b.samples = growZeroed(b.samples, paddedSize)
	case len(b.samples) > paddedSize:
		b.samples = growZeroed(b.samples, paddedSize+b.samplesPerSegment)
	}
}

func growZeroed(s []float32, size int) []float32 {
	out := make([]float32, size)
	copy(out, s)
	return out
}

// Segment returns a view of the i-th segment (0-indexed). It fails with
// ErrIndexOutOfRange if i is outside [0, NSegments), or ErrEmpty if the
// buffer holds no samples at all.
func (b *Buffer) Segment(i int) ([]float32, error) {
	if b.IsEmpty() {
		return nil, ErrEmpty
	}
	if i < 0 || i >= b.nSegments {
		return nil, fmt.Errorf("%w: segment %d (have %d)", ErrIndexOutOfRange, i, b.nSegments)
	}

	start := i * b.samplesPerSegment
	end := start + b.samplesPerSegment
	return b.samples[start:end], nil
}

// AllSegments returns a view of every segment in order.
func (b *Buffer) AllSegments() ([][]float32, error) {
	segments := make([][]float32, 0, b.nSegments)
	for i := 0; i < b.nSegments; i++ {
		seg, err := b.Segment(i)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// SetSamples overwrites the buffer's sample data in place, e.g. after a
// filter pass. The replacement must be the same length as the current
// sample slice unless the buffer was empty, in which case the segmentation
// invariant is re-established for the new samples.
func (b *Buffer) SetSamples(newSamples []float32) error {
	wasEmpty := b.IsEmpty()
	if !wasEmpty && len(newSamples) != len(b.samples) {
		return fmt.Errorf("lpc10/internal/audio: replacement sample count %d does not match buffer size %d", len(newSamples), len(b.samples))
	}

	b.samples = append([]float32(nil), newSamples...)
	if wasEmpty {
		b.SetWindowWidthMs(b.windowWidthMs)
	}
	return nil
}

// Reset restores the buffer to the sample data it was constructed with.
// The window width is left untouched.
func (b *Buffer) Reset() {
	b.samples = append([]float32(nil), b.original...)
}

// Clone returns a deep, independent copy of the buffer, used so the lower
// and upper vocal-tract analyses can each filter their own copy while
// sharing the same segmentation boundaries.
func (b *Buffer) Clone() *Buffer {
	clone := &Buffer{
		sampleRateHz:      b.sampleRateHz,
		windowWidthMs:     b.windowWidthMs,
		samplesPerSegment: b.samplesPerSegment,
		nSegments:         b.nSegments,
	}
	clone.samples = append([]float32(nil), b.samples...)
	clone.original = append([]float32(nil), b.original...)
	return clone
}

// Render writes the buffer's samples to path as a 16-bit PCM mono WAV file
// at the buffer's sample rate.
func (b *Buffer) Render(path string) error {
	if b.IsEmpty() {
		return ErrEmpty
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("lpc10/internal/audio: creating %q: %w", path, err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, b.sampleRateHz, 16, 1, 1)

	ints := make([]int, len(b.samples))
	for i, s := range b.samples {
		ints[i] = int(clamp(s, -1, 1) * 32767)
	}

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: b.sampleRateHz},
		Data:           ints,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("lpc10/internal/audio: writing %q: %w", path, err)
	}
	return enc.Close()
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LoadWAV decodes a mono (or downmixed) PCM WAV file at its native sample
// rate and returns a Buffer segmented at windowWidthMs. It sits outside the
// analysis core; any resampling to a different target rate is the caller's
// responsibility.
func LoadWAV(r io.Reader, windowWidthMs float64) (*Buffer, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%w: not a valid WAV file", ErrInvalidAudio)
	}

	pcmBuf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAudio, err)
	}

	channels := pcmBuf.Format.NumChannels
	if channels <= 0 {
		return nil, fmt.Errorf("%w: zero channels", ErrInvalidAudio)
	}

	samples := downmixToMono(pcmBuf.Data, channels, pcmBuf.SourceBitDepth)
	return NewFromSamples(samples, pcmBuf.Format.SampleRate, windowWidthMs), nil
}

func downmixToMono(data []int, channels, bitDepth int) []float32 {
	if bitDepth <= 0 {
		bitDepth = 16
	}
	fullScale := float32(int(1) << (bitDepth - 1))

	nFrames := len(data) / channels
	out := make([]float32, nFrames)
	for frame := 0; frame < nFrames; frame++ {
		var sum float32
		for ch := 0; ch < channels; ch++ {
			sum += float32(data[frame*channels+ch]) / fullScale
		}
		out[frame] = sum / float32(channels)
	}
	return out
}
