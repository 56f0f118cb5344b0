package pitch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tms-express-go/lpc10/internal/dsp"
)

func TestEstimatePeriodRecoversKnownPitch(t *testing.T) {
	const sampleRateHz = 8000
	const period = 80 // 100 Hz at 8kHz
	const n = 400

	samples := make([]float32, n)
	for i := 0; i < n; i++ {
		samples[i] = float32(math.Sin(2 * math.Pi * float64(i) / period))
	}

	estimator := NewEstimator(sampleRateHz, 50, 400)
	acf := dsp.Autocorrelate(samples)

	got := estimator.EstimatePeriod(acf)
	assert.InDelta(t, period, got, 2)
}

func TestEstimatePeriodClampsToWindow(t *testing.T) {
	estimator := NewEstimator(8000, 50, 400)
	assert.Equal(t, estimator.MinPeriod(), 8000/400)
	assert.Equal(t, estimator.MaxPeriod(), 8000/50)

	flat := make([]float32, estimator.MaxPeriod()+10)
	got := estimator.EstimatePeriod(flat)
	assert.GreaterOrEqual(t, got, estimator.MinPeriod())
	assert.LessOrEqual(t, got, estimator.MaxPeriod())
}

func TestEstimateFrequencyIsInverseOfPeriod(t *testing.T) {
	estimator := NewEstimator(8000, 50, 400)
	acf := make([]float32, 200)
	for i := range acf {
		acf[i] = float32(100 - i)
	}
	freq := estimator.EstimateFrequency(acf)
	period := estimator.EstimatePeriod(acf)
	assert.InDelta(t, float32(8000)/float32(period), freq, 1e-6)
}
