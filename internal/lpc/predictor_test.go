package lpc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tms-express-go/lpc10/internal/dsp"
)

func TestReflectorCoefficientsCount(t *testing.T) {
	acf := make([]float32, Order+1)
	acf[0] = 1
	for i := 1; i <= Order; i++ {
		acf[i] = float32(1.0 / float64(i+1))
	}

	p := NewPredictor()
	coeffs := p.ReflectorCoefficients(acf)
	assert.Len(t, coeffs, Order)
}

func TestReflectorCoefficientsDegenerateSegmentIsNaN(t *testing.T) {
	acf := make([]float32, Order+1)

	p := NewPredictor()
	coeffs := p.ReflectorCoefficients(acf)
	for _, c := range coeffs {
		assert.True(t, math.IsNaN(float64(c)))
	}
	assert.True(t, math.IsNaN(float64(p.GainDB())))
}

func TestGainDBOfPureToneIsFinitePositive(t *testing.T) {
	const n = 256
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		samples[i] = float32(math.Sin(2 * math.Pi * float64(i) / 40))
	}
	dsp.HammingWindow(samples)
	acf := dsp.Autocorrelate(samples)

	p := NewPredictor()
	p.ReflectorCoefficients(acf)
	gain := p.GainDB()

	assert.False(t, math.IsNaN(float64(gain)))
	assert.GreaterOrEqual(t, gain, float32(0))
}

func TestReflectorCoefficientsMagnitudeBoundedForWellConditionedInput(t *testing.T) {
	const n = 256
	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		samples[i] = float32(math.Sin(2*math.Pi*float64(i)/37) + 0.3*math.Sin(2*math.Pi*float64(i)/11))
	}
	dsp.HammingWindow(samples)
	acf := dsp.Autocorrelate(samples)

	p := NewPredictor()
	coeffs := p.ReflectorCoefficients(acf)
	for i, k := range coeffs {
		assert.LessOrEqual(t, math.Abs(float64(k)), 1.5, "k%d magnitude implausibly large", i+1)
	}
}
