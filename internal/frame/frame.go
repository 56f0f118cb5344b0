// Package frame implements the Frame record, its quantizer, the
// post-processor, the bit-level packer/unpacker, and the lattice-filter
// synthesizer — the frame-grammar heart of the LPC-10 format.
package frame

import (
	"math"

	"github.com/tms-express-go/lpc10/internal/codingtable"
)

// Frame is the smallest unit of LPC-10 speech: a pitch period, a voicing
// flag, a gain, and 10 reflector coefficients, plus post-processor flags.
//
// Frame parameters are floating-point analysis values; the coding-table
// index they quantize to is computed on demand by QuantizedGain,
// QuantizedPitch, and QuantizedCoeffs, never stored redundantly.
type Frame struct {
	PitchPeriod int // in samples, >= 0
	IsVoiced    bool
	GainDB      float32 // >= 0
	Coeffs      [codingtable.NCoeffs]float32
	IsRepeat    bool

	// IsStop marks the synthesizer-only stop sentinel. It is never
	// produced by analysis; only Stop() sets it (Unpack ends at a stop
	// frame instead of returning one).
	IsStop bool
}

// New constructs a Frame from analysis output, applying the NaN-safety
// invariant: a NaN gain (from a degenerate r[0]=0 autocorrelation) is
// coerced to 0 with all coefficients zeroed, since it carries no usable
// spectral information.
func New(pitchPeriod int, isVoiced bool, gainDB float32, coeffs []float32) Frame {
	f := Frame{
		PitchPeriod: pitchPeriod,
		IsVoiced:    isVoiced,
		GainDB:      gainDB,
	}
	copy(f.Coeffs[:], coeffs)

	if math.IsNaN(float64(gainDB)) {
		f.GainDB = 0
		f.Coeffs = [codingtable.NCoeffs]float32{}
	}
	return f
}

// QuantizedGain returns the coding-table index of the frame's gain.
func (f Frame) QuantizedGain() int {
	return ClosestIndex(f.GainDB, codingtable.RMS[:])
}

// QuantizedPitch returns the coding-table index of the frame's pitch
// period, or 0 for an unvoiced frame (pitch is not coded for unvoiced
// segments).
func (f Frame) QuantizedPitch() int {
	if !f.IsVoiced {
		return 0
	}
	return ClosestIndex(float32(f.PitchPeriod), codingtable.Pitch[:])
}

// QuantizedCoeffs returns the coding-table index of each reflector
// coefficient k1..k10.
func (f Frame) QuantizedCoeffs() [codingtable.NCoeffs]int {
	var out [codingtable.NCoeffs]int
	for i := 0; i < codingtable.NCoeffs; i++ {
		table, _ := codingtable.KTable(i)
		out[i] = ClosestIndex(f.Coeffs[i], table)
	}
	return out
}

// IsSilent reports whether the frame's gain quantizes to index 0, meaning
// no spectral information is conveyed.
func (f Frame) IsSilent() bool {
	return f.QuantizedGain() == 0
}

// Stop returns the synthesizer-only stop-frame sentinel.
func Stop() Frame {
	return Frame{IsStop: true}
}
