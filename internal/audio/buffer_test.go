package audio

import (
	"bytes"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSegmentationPaddingInvariant establishes property 1: the buffer pads
// so that n_segments*samplesPerSegment <= len(samples) <= (n_segments+1)*samplesPerSegment.
func TestSegmentationPaddingInvariant(t *testing.T) {
	samples := make([]float32, 173)
	for i := range samples {
		samples[i] = float32(i)
	}

	b := NewFromSamples(samples, 8000, 22.5) // samplesPerSegment = 180
	assert.Equal(t, 180, b.SamplesPerSegment())
	assert.Equal(t, 0, b.NSegments())
	assert.Len(t, b.Samples(), 180)
}

func TestNewEmptyHasZeroSegments(t *testing.T) {
	b := NewEmpty(8000, 22.5)
	assert.Equal(t, 0, b.NSegments())
	assert.True(t, b.IsEmpty())
}

func TestSegmentBoundsChecking(t *testing.T) {
	b := NewFromSamples(make([]float32, 360), 8000, 22.5)
	require.Equal(t, 2, b.NSegments())

	seg, err := b.Segment(0)
	require.NoError(t, err)
	assert.Len(t, seg, 180)

	_, err = b.Segment(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)

	_, err = b.Segment(-1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestSegmentOnEmptyBufferFails(t *testing.T) {
	b := NewEmpty(8000, 22.5)
	_, err := b.Segment(0)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestAllSegmentsCoversEveryCompleteWindow(t *testing.T) {
	b := NewFromSamples(make([]float32, 540), 8000, 22.5)
	segments, err := b.AllSegments()
	require.NoError(t, err)
	assert.Len(t, segments, 3)
	for _, seg := range segments {
		assert.Len(t, seg, 180)
	}
}

func TestSetWindowWidthMsRepads(t *testing.T) {
	b := NewFromSamples(make([]float32, 360), 8000, 22.5)
	require.Equal(t, 2, b.NSegments())

	b.SetWindowWidthMs(45)
	assert.Equal(t, 360, b.SamplesPerSegment())
	assert.Equal(t, 1, b.NSegments())
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewFromSamples([]float32{1, 2, 3, 4}, 8000, 0.5)
	clone := b.Clone()

	require.NoError(t, clone.SetSamples(make([]float32, len(clone.Samples()))))
	assert.NotEqual(t, b.Samples(), clone.Samples())
}

func TestResetRestoresOriginalSamples(t *testing.T) {
	original := []float32{0.1, 0.2, 0.3}
	b := NewFromSamples(original, 8000, 22.5) // pads heavily at this width

	b.Reset()
	assert.Equal(t, original, b.Samples())
}

func TestSetSamplesRejectsLengthMismatch(t *testing.T) {
	b := NewFromSamples(make([]float32, 360), 8000, 22.5)
	err := b.SetSamples(make([]float32, 10))
	assert.Error(t, err)
}

func TestLoadWAVDecodesEncodedPCM(t *testing.T) {
	samples := []float32{0, 0.5, -0.5, 0.25, -0.25}

	var buf bytes.Buffer
	enc := wav.NewEncoder(&buf, 8000, 16, 1, 1)
	ints := make([]int, len(samples))
	for i, s := range samples {
		ints[i] = int(s * 32767)
	}
	require.NoError(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: 8000},
		Data:           ints,
		SourceBitDepth: 16,
	}))
	require.NoError(t, enc.Close())

	loaded, err := LoadWAV(bytes.NewReader(buf.Bytes()), 1000)
	require.NoError(t, err)
	assert.Equal(t, 8000, loaded.SampleRate())
	require.GreaterOrEqual(t, len(loaded.Samples()), len(samples))
	for i, s := range samples {
		assert.InDelta(t, s, loaded.Samples()[i], 1e-3)
	}
}

func TestLoadWAVRejectsGarbage(t *testing.T) {
	_, err := LoadWAV(bytes.NewReader([]byte("not a wav file")), 1000)
	assert.ErrorIs(t, err, ErrInvalidAudio)
}
