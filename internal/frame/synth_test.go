package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tms-express-go/lpc10/internal/codingtable"
)

// TestSynthesizeHaltsAtStopFrame establishes property 10.
func TestSynthesizeHaltsAtStopFrame(t *testing.T) {
	s := NewSynthesizer(8000, 22.5)

	frames := []Frame{
		voicedFrame(38, 100, s3Coeffs),
		unvoicedFrame(38, 80, s3Coeffs),
		Stop(),
		voicedFrame(38, 100, s3Coeffs),
	}

	out := s.Synthesize(frames)
	assert.Len(t, out, 2*s.SamplesPerFrame())
}

func TestSynthesizeWithNoStopFrameRendersEverything(t *testing.T) {
	s := NewSynthesizer(8000, 22.5)
	frames := []Frame{
		voicedFrame(38, 100, s3Coeffs),
		unvoicedFrame(38, 80, s3Coeffs),
	}

	out := s.Synthesize(frames)
	assert.Len(t, out, 2*s.SamplesPerFrame())
}

func TestSynthesizeQuantizedGainStopSentinelAlsoHalts(t *testing.T) {
	s := NewSynthesizer(8000, 22.5)

	// A frame whose gain quantizes to the sentinel index (15) must halt
	// synthesis exactly like a frame built via Stop().
	frames := []Frame{
		voicedFrame(38, 100, s3Coeffs),
		{IsVoiced: true, GainDB: 7789, PitchPeriod: 38, Coeffs: [10]float32{}},
	}

	out := s.Synthesize(frames)
	assert.Len(t, out, s.SamplesPerFrame())
}

func TestSynthesizeOutputStaysInRange(t *testing.T) {
	s := NewSynthesizer(8000, 22.5)
	frames := []Frame{
		voicedFrame(38, 6000, s3Coeffs),
		unvoicedFrame(20, 6000, s3Coeffs),
	}

	out := s.Synthesize(frames)
	for _, v := range out {
		assert.GreaterOrEqual(t, v, float32(-1))
		assert.LessOrEqual(t, v, float32(1))
	}
}

func TestSynthesizeSilentFrameProducesNoEnergyInjection(t *testing.T) {
	s := NewSynthesizer(8000, 22.5)
	frames := []Frame{silentFrame()}

	out := s.Synthesize(frames)
	require := assert.New(t)
	require.Len(out, s.SamplesPerFrame())
	for _, v := range out {
		require.Equal(float32(0), v)
	}
}

func TestSynthesizeRepeatFrameReusesPriorCoefficients(t *testing.T) {
	s := NewSynthesizer(8000, 22.5)

	voiced := voicedFrame(38, 3000, s3Coeffs)
	repeat := Frame{IsVoiced: true, GainDB: 3000, PitchPeriod: 38, IsRepeat: true}

	frames := []Frame{voiced, repeat}
	out := s.Synthesize(frames)
	assert.Len(t, out, 2*s.SamplesPerFrame())

	// The repeat frame carries zero coefficients; the lattice must still hold
	// the ones loaded from the voiced frame.
	coeffs := voiced.QuantizedCoeffs()
	assert.Equal(t, codingtable.K1[coeffs[0]], s.k1)
	assert.Equal(t, codingtable.K10[coeffs[9]], s.k10)
}

func TestSynthesizerResetBetweenCalls(t *testing.T) {
	s := NewSynthesizer(8000, 22.5)

	first := s.Synthesize([]Frame{voicedFrame(38, 6000, s3Coeffs)})
	second := s.Synthesize([]Frame{voicedFrame(38, 6000, s3Coeffs)})

	assert.Equal(t, first, second, "synthesis of the same frame table twice must be deterministic")
}
