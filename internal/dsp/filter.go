// Package dsp implements the time-domain filter bank (pre-emphasis, biquad
// highpass/lowpass, Hamming window) and the biased autocorrelation used by
// both vocal-tract analysis paths. All functions are pure: they consume a
// sample slice and return a new, filtered one (or mutate a caller-owned
// segment in place, as noted per function), with no package-level state.
package dsp

import "math"

// PreEmphasis applies a first-order pre-emphasis filter with coefficient
// alpha (typically 0.9375): y[0] = x[0], y[n] = x[n] - alpha*x[n-1]. The
// leading sample is preserved rather than dropped.
func PreEmphasis(samples []float32, alpha float32) []float32 {
	out := make([]float32, len(samples))
	if len(samples) == 0 {
		return out
	}

	out[0] = samples[0]
	for i := 1; i < len(samples); i++ {
		out[i] = samples[i] - alpha*samples[i-1]
	}
	return out
}

// BiquadMode selects which RBJ biquad response Biquad computes.
type BiquadMode int

const (
	// BiquadLowpass attenuates frequencies above the cutoff.
	BiquadLowpass BiquadMode = iota
	// BiquadHighpass attenuates frequencies below the cutoff.
	BiquadHighpass
)

// Biquad applies a direct-form-I RBJ biquad highpass or lowpass filter at
// cutoffHz against the given sample rate, using a fixed Q of 1/sqrt(2).
// A cutoffHz of zero or less disables filtering (returns samples unchanged).
func Biquad(samples []float32, cutoffHz, sampleRateHz float64, mode BiquadMode) []float32 {
	if cutoffHz <= 0 {
		out := make([]float32, len(samples))
		copy(out, samples)
		return out
	}

	omega := 2 * math.Pi * cutoffHz / sampleRateHz
	c := math.Cos(omega)
	s := math.Sin(omega)
	alpha := s / (2 * 0.707)

	var b0, b1, b2, a0, a1, a2 float64
	a0 = 1 + alpha
	a1 = -2 * c
	a2 = 1 - alpha

	switch mode {
	case BiquadLowpass:
		b0 = (1 - c) / 2
		b1 = 1 - c
		b2 = b0
	case BiquadHighpass:
		b0 = (1 + c) / 2
		b1 = -(1 + c)
		b2 = b0
	}

	b0 /= a0
	b1 /= a0
	b2 /= a0
	a1 /= a0
	a2 /= a0

	out := make([]float32, len(samples))
	var x1, x2, y1, y2 float64
	for i, sample := range samples {
		x0 := float64(sample)
		y0 := b0*x0 + b1*x1 + b2*x2 - a1*y1 - a2*y2

		x2, x1 = x1, x0
		y2, y1 = y1, y0

		out[i] = float32(y0)
	}
	return out
}

// HammingWindow multiplies a segment of length N in place by a Hamming
// window: x[n] *= 0.54 - 0.46*cos(2*pi*n/N). The denominator is the
// segment length itself, not N-1 or 1.5N-1 (both of which appear as
// variants in the reference implementation this spec was distilled from).
func HammingWindow(segment []float32) {
	n := float64(len(segment))
	if n == 0 {
		return
	}
	for i := range segment {
		theta := 2 * math.Pi * float64(i) / n
		window := 0.54 - 0.46*math.Cos(theta)
		segment[i] *= float32(window)
	}
}
