package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreEmphasisPreservesLeadingSample(t *testing.T) {
	samples := []float32{1, 1, 1, 1}
	out := PreEmphasis(samples, 0.9375)

	assert.Equal(t, samples[0], out[0], "leading sample must be preserved, not dropped")
	for i := 1; i < len(out); i++ {
		assert.InDelta(t, float32(0.0625), out[i], 1e-6)
	}
}

func TestPreEmphasisEmpty(t *testing.T) {
	assert.Empty(t, PreEmphasis(nil, 0.9375))
}

func TestBiquadDisabledPassesThrough(t *testing.T) {
	samples := []float32{0.1, -0.2, 0.3}
	out := Biquad(samples, 0, 8000, BiquadLowpass)
	assert.Equal(t, samples, out)
}

func TestBiquadLowpassAttenuatesHighFrequency(t *testing.T) {
	const sampleRate = 8000
	const n = 256
	samples := make([]float32, n)
	for i := range samples {
		samples[i] = float32(math.Sin(2 * math.Pi * 3500 * float64(i) / sampleRate))
	}

	out := Biquad(samples, 300, sampleRate, BiquadLowpass)

	var inEnergy, outEnergy float64
	for i := n / 2; i < n; i++ {
		inEnergy += float64(samples[i]) * float64(samples[i])
		outEnergy += float64(out[i]) * float64(out[i])
	}
	assert.Less(t, outEnergy, inEnergy*0.1, "a 300Hz lowpass should strongly attenuate a 3500Hz tone")
}

func TestHammingWindowEndpointsNearZero(t *testing.T) {
	segment := make([]float32, 100)
	for i := range segment {
		segment[i] = 1
	}
	HammingWindow(segment)

	assert.InDelta(t, 0.08, segment[0], 1e-6)
	assert.InDelta(t, 1.0, segment[len(segment)/2], 0.05)
}

func TestHammingWindowEmpty(t *testing.T) {
	assert.NotPanics(t, func() { HammingWindow(nil) })
}
