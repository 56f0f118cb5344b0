package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutocorrelatePeakAtZero(t *testing.T) {
	segment := []float32{0.2, -0.5, 0.9, -0.1, 0.3, 0.7, -0.8}
	acf := Autocorrelate(segment)

	require.NotEmpty(t, acf)
	maxIdx := 0
	for i, v := range acf {
		if v > acf[maxIdx] {
			maxIdx = i
		}
	}
	assert.Equal(t, 0, maxIdx, "argmax of the autocorrelation of a nonzero segment must be at lag 0")
}

func TestAutocorrelateEmpty(t *testing.T) {
	assert.Empty(t, Autocorrelate(nil))
}

func TestAutocorrelateDampedCosinePeriodicity(t *testing.T) {
	const n = 200
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		samples[i] = float32(20 * math.Cos(2*math.Pi*float64(i)/50) * math.Exp(-0.02*float64(i)))
	}

	acf := Autocorrelate(samples)

	maxIdx := 0
	for i, v := range acf {
		if v > acf[maxIdx] {
			maxIdx = i
		}
	}
	assert.Equal(t, 0, maxIdx)

	minIdx := 0
	for i := 1; i < len(acf); i++ {
		if acf[i] < acf[minIdx] {
			minIdx = i
		}
		if i > 0 && acf[i] < acf[i-1] && (i+1 >= len(acf) || acf[i] <= acf[i+1]) {
			minIdx = i
			break
		}
	}

	nextMaxIdx := minIdx
	for i := minIdx + 1; i < len(acf); i++ {
		if acf[i] > acf[nextMaxIdx] {
			nextMaxIdx = i
		}
	}

	assert.InDelta(t, 50, nextMaxIdx, 2, "next local max after the first local min should land near the 50-sample period")
}
