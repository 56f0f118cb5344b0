// Package lpc implements the Levinson-Durbin linear predictor: it solves
// for the 10 reflector coefficients of the all-pole vocal-tract model and
// the residual prediction error used to derive gain.
package lpc

import "math"

// Order is the fixed LPC order mandated by the TMS5220 format.
const Order = 10

// Predictor runs the Levinson-Durbin recursion against a segment's
// autocorrelation and retains the residual error for GainDB.
type Predictor struct {
	lastError float64
}

// NewPredictor returns a Predictor for the fixed model order.
func NewPredictor() *Predictor {
	return &Predictor{}
}

// ReflectorCoefficients runs the Levinson-Durbin recursion against acf
// (which must have at least Order+1 entries) and returns the 10 reflector
// coefficients k1..k10.
//
//	e[0] = r[0]; k[0] = 0
//	for m = 1..=10:
//	  sum = r[m] + sum_{i=1..m-1} b[m-1,i]*r[m-i]
//	  k[m] = b[m,m] = -sum / e[m-1]
//	  e[m] = e[m-1] * (1 - k[m]^2)
//	  for i = 1..m-1: b[m,i] = b[m-1,i] + k[m]*b[m-1,m-i]
//	return k[1..=10]
//
// The r[0]=0 degenerate case yields NaN coefficients and a NaN error; it is
// the caller's responsibility (the Frame constructor) to neutralize those.
func (p *Predictor) ReflectorCoefficients(acf []float32) []float32 {
	r := make([]float64, Order+1)
	for i := range r {
		if i < len(acf) {
			r[i] = float64(acf[i])
		}
	}

	e := make([]float64, Order+1)
	k := make([]float64, Order+1)
	b := make([][]float64, Order+1)
	for i := range b {
		b[i] = make([]float64, Order+1)
	}

	e[0] = r[0]
	k[0] = 0

	for m := 1; m <= Order; m++ {
		sum := r[m]
		for i := 1; i < m; i++ {
			sum += b[m-1][i] * r[m-i]
		}

		k[m] = -sum / e[m-1]
		b[m][m] = k[m]
		e[m] = e[m-1] * (1 - k[m]*k[m])

		for i := 1; i < m; i++ {
			b[m][i] = b[m-1][i] + k[m]*b[m-1][m-i]
		}
	}

	// The residual error is taken after the penultimate recursion stage
	// (e[Order-1], i.e. e[9] for the fixed order-10 model), matching the
	// TMS-Express reference this format was distilled from.
	p.lastError = e[Order-1]

	coeffs := make([]float32, Order)
	for i := 0; i < Order; i++ {
		coeffs[i] = float32(k[i+1])
	}
	return coeffs
}

// GainDB returns the prediction gain in decibels, derived from the
// residual error of the most recent ReflectorCoefficients call:
// |10*log10(error / 1e-12)|. A degenerate r[0]=0 segment yields NaN.
func (p *Predictor) GainDB() float32 {
	gain := 10 * math.Log10(p.lastError/1e-12)
	return float32(math.Abs(gain))
}
