// Package pitch implements the autocorrelation-based pitch period
// estimator. The autocorrelation of a near-periodic signal rises
// from its global maximum at lag 0, crosses a trough, then re-peaks near
// one pitch period; restricting the search to the band of admissible
// periods avoids both sub-harmonics and noise lobes.
package pitch

// Estimator estimates a segment's pitch period (in samples) from its
// autocorrelation, bounded by a configurable frequency range.
type Estimator struct {
	sampleRateHz int
	minPeriod    int
	maxPeriod    int
}

// NewEstimator builds an Estimator for the given sample rate and admissible
// pitch frequency range. minPeriod = sampleRateHz/maxFrqHz, maxPeriod =
// sampleRateHz/minFrqHz.
func NewEstimator(sampleRateHz, minFrqHz, maxFrqHz int) *Estimator {
	return &Estimator{
		sampleRateHz: sampleRateHz,
		minPeriod:    sampleRateHz / maxFrqHz,
		maxPeriod:    sampleRateHz / minFrqHz,
	}
}

// MinPeriod returns the lower bound of the admissible pitch period window.
func (e *Estimator) MinPeriod() int { return e.minPeriod }

// MaxPeriod returns the upper bound of the admissible pitch period window.
func (e *Estimator) MaxPeriod() int { return e.maxPeriod }

// EstimatePeriod finds the pitch period (in samples) implied by acf:
// within the index window [minPeriod, maxPeriod), it locates the first
// local minimum, then the maximum from there to the end of the window.
// That index is the pitch period, clamped to [minPeriod, maxPeriod].
func (e *Estimator) EstimatePeriod(acf []float32) int {
	lo, hi := e.minPeriod, e.maxPeriod
	if hi > len(acf) {
		hi = len(acf)
	}
	if lo >= hi {
		return clampInt(lo, e.minPeriod, e.maxPeriod)
	}

	minIdx := firstLocalMinimum(acf, lo, hi)

	maxIdx := minIdx
	for i := minIdx + 1; i < hi; i++ {
		if acf[i] > acf[maxIdx] {
			maxIdx = i
		}
	}

	return clampInt(maxIdx, e.minPeriod, e.maxPeriod)
}

// EstimateFrequency returns sampleRateHz / EstimatePeriod(acf).
func (e *Estimator) EstimateFrequency(acf []float32) float32 {
	period := e.EstimatePeriod(acf)
	if period == 0 {
		return 0
	}
	return float32(e.sampleRateHz) / float32(period)
}

// firstLocalMinimum scans [lo, hi) for the first index at which the
// autocorrelation stops decreasing: acf[i] < acf[i-1] and acf[i] <= acf[i+1].
// If the window is monotonically decreasing throughout (no such turning
// point), the global minimum in the window is used as a fallback.
func firstLocalMinimum(acf []float32, lo, hi int) int {
	minIdx := lo
	for i := lo; i < hi; i++ {
		if acf[i] < acf[minIdx] {
			minIdx = i
		}

		if i > lo && i+1 < hi && acf[i] < acf[i-1] && acf[i] <= acf[i+1] {
			return i
		}
	}
	return minIdx
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
