package frame

import "github.com/tms-express-go/lpc10/internal/codingtable"

// Synthesizer reconstructs PCM samples from a Frame sequence through a
// 10-stage all-pole lattice filter modeled on the TMS5220 Voice Synthesis
// Processor: a chirp-driven pulse train excites voiced segments, a 16-bit
// LFSR drives unvoiced ones, and the reflector coefficients of the current
// frame shape the lattice's response.
type Synthesizer struct {
	sampleRateHz    int
	windowWidthMs   float64
	samplesPerFrame int

	energy, period                                     float32
	k1, k2, k3, k4, k5, k6, k7, k8, k9, k10             float32
	x0, x1, x2, x3, x4, x5, x6, x7, x8, x9, u0          float32
	lfsr          uint16
	periodCounter int
}

// NewSynthesizer returns a Synthesizer for the given sample rate and frame
// (window) width in milliseconds.
func NewSynthesizer(sampleRateHz int, windowWidthMs float64) *Synthesizer {
	return &Synthesizer{
		sampleRateHz:    sampleRateHz,
		windowWidthMs:   windowWidthMs,
		samplesPerFrame: int(float64(sampleRateHz) * windowWidthMs * 1e-3),
	}
}

// SamplesPerFrame returns the number of PCM samples each frame renders to.
func (s *Synthesizer) SamplesPerFrame() int {
	return s.samplesPerFrame
}

func (s *Synthesizer) reset() {
	*s = Synthesizer{
		sampleRateHz:    s.sampleRateHz,
		windowWidthMs:   s.windowWidthMs,
		samplesPerFrame: s.samplesPerFrame,
	}
}

// Synthesize renders frames into PCM samples in [-1,1]. It halts at the
// first stop frame, yielding a sample count of (index of stop) *
// SamplesPerFrame(); if frames contains no stop frame, every frame renders.
func (s *Synthesizer) Synthesize(frames []Frame) []float32 {
	s.reset()

	var samples []float32
	for _, f := range frames {
		if s.updateSynthTable(f) {
			break
		}
		for i := 0; i < s.samplesPerFrame; i++ {
			samples = append(samples, s.updateLatticeFilter())
		}
	}
	return samples
}

// updateSynthTable loads f's parameters into the synthesis state and
// reports whether a stop frame was encountered (synthesis should halt).
func (s *Synthesizer) updateSynthTable(f Frame) bool {
	if f.IsStop || f.QuantizedGain() == codingtable.StopGainIndex {
		s.reset()
		return true
	}

	gainIdx := f.QuantizedGain()
	if gainIdx == 0 {
		s.energy = 0
		return false
	}

	s.energy = codingtable.Energy[gainIdx]
	s.period = codingtable.Pitch[f.QuantizedPitch()]

	if f.IsRepeat {
		return false
	}

	coeffs := f.QuantizedCoeffs()
	s.k1 = codingtable.K1[coeffs[0]]
	s.k2 = codingtable.K2[coeffs[1]]
	s.k3 = codingtable.K3[coeffs[2]]
	s.k4 = codingtable.K4[coeffs[3]]

	if s.period != 0 {
		s.k5 = codingtable.K5[coeffs[4]]
		s.k6 = codingtable.K6[coeffs[5]]
		s.k7 = codingtable.K7[coeffs[6]]
		s.k8 = codingtable.K8[coeffs[7]]
		s.k9 = codingtable.K9[coeffs[8]]
		// The tenth reflector coefficient is loaded from table k10, not
		// table k9: the reference synthesizer this is modeled on indexes
		// k9 twice, leaving k10 permanently at its zero-value.
		s.k10 = codingtable.K10[coeffs[9]]
	}

	return false
}

func (s *Synthesizer) updateNoiseGenerator() bool {
	var feedback uint16
	if s.lfsr&1 != 0 {
		feedback = 0xB800
	}
	s.lfsr = (s.lfsr >> 1) ^ feedback
	return s.lfsr&1 != 0
}

func (s *Synthesizer) updateLatticeFilter() float32 {
	if s.period != 0 {
		if float32(s.periodCounter) < s.period {
			s.periodCounter++
		} else {
			s.periodCounter = 0
		}

		if s.periodCounter < len(codingtable.Chirp) {
			s.u0 = codingtable.Chirp[s.periodCounter] * s.energy
		} else {
			s.u0 = 0
		}
	} else {
		if s.updateNoiseGenerator() {
			s.u0 = s.energy
		} else {
			s.u0 = -s.energy
		}
	}

	if s.period != 0 {
		s.u0 -= s.k10*s.x9 + s.k9*s.x8
		s.x9 = s.x8 + s.k9*s.u0

		s.u0 -= s.k8 * s.x7
		s.x8 = s.x7 + s.k8*s.u0

		s.u0 -= s.k7 * s.x6
		s.x7 = s.x6 + s.k7*s.u0

		s.u0 -= s.k6 * s.x5
		s.x6 = s.x5 + s.k6*s.u0

		s.u0 -= s.k5 * s.x4
		s.x5 = s.x4 + s.k5*s.u0
	}

	s.u0 -= s.k4 * s.x3
	s.x4 = s.x3 + s.k4*s.u0

	s.u0 -= s.k3 * s.x2
	s.x3 = s.x2 + s.k3*s.u0

	s.u0 -= s.k2 * s.x1
	s.x2 = s.x1 + s.k2*s.u0

	s.u0 -= s.k1 * s.x0
	s.x1 = s.x0 + s.k1*s.u0

	s.x0 = clampSample(s.u0)
	return s.x0
}

func clampSample(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
