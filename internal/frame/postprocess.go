package frame

import (
	"github.com/tms-express-go/lpc10/internal/codingtable"
	"github.com/tms-express-go/lpc10/util"
)

// Logger receives debug-level notices for locally-recovered conditions
// (a clamped gain/pitch shift, a neutralized degenerate-analysis frame).
// It matches github.com/charmbracelet/log's formatted logging methods
// structurally, so a *log.Logger can be passed directly; nil is valid and
// discards every call.
type Logger interface {
	Debugf(format string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Debugf(string, ...any) {}

func logOrDiscard(l Logger) Logger {
	if l == nil {
		return discardLogger{}
	}
	return l
}

// NormalizeGain independently scales the gain of the voiced and unvoiced
// populations in frames so that each population's loudest frame hits its
// configured ceiling (maxVoicedDB, maxUnvoicedDB), improving perceived
// loudness without crossing into clipping. Frames with zero observed max
// in their population are left untouched (nothing to scale against).
func NormalizeGain(frames []Frame, maxVoicedDB, maxUnvoicedDB float32) {
	normalizePopulation(frames, true, maxVoicedDB)
	normalizePopulation(frames, false, maxUnvoicedDB)
}

func normalizePopulation(frames []Frame, voiced bool, maxTargetDB float32) {
	var maxGain float32
	for _, f := range frames {
		if f.IsVoiced == voiced && f.GainDB > maxGain {
			maxGain = f.GainDB
		}
	}
	if maxGain == 0 {
		return
	}

	scale := maxTargetDB / maxGain
	for i := range frames {
		if frames[i].IsVoiced == voiced {
			frames[i].GainDB *= scale
		}
	}
}

// ShiftGain adds offset to every non-silent frame's quantized gain index,
// clamped to [0,15]. Silent frames are left bit-identical: the shift never
// turns a silent frame into a non-silent one, though a negative offset can
// clamp a non-silent frame down to index 0 (silent). Clamping is a hard
// ceiling and floor, not a wraparound.
func ShiftGain(frames []Frame, offset int, logger Logger) {
	if offset == 0 {
		return
	}
	logger = logOrDiscard(logger)

	for i := range frames {
		idx := frames[i].QuantizedGain()
		if idx == 0 {
			continue
		}

		shifted := idx + offset
		clamped := clampIndex(shifted, 0, len(codingtable.RMS)-1)
		if clamped != shifted {
			logger.Debugf("frame gain shift clamped: index %d out of [0,%d]", shifted, len(codingtable.RMS)-1)
		}
		frames[i].GainDB = codingtable.RMS[clamped]
	}
}

// ShiftPitch adds offset to every voiced, non-silent frame's quantized
// pitch index, clamped to the 64-entry pitch table. Silent frames never
// have their pitch set.
func ShiftPitch(frames []Frame, offset int, logger Logger) {
	if offset == 0 {
		return
	}
	logger = logOrDiscard(logger)

	for i := range frames {
		if frames[i].IsSilent() || !frames[i].IsVoiced {
			continue
		}

		idx := frames[i].QuantizedPitch()
		shifted := idx + offset
		clamped := clampIndex(shifted, 0, len(codingtable.Pitch)-1)
		if clamped != shifted {
			logger.Debugf("frame pitch shift clamped: index %d out of [0,%d]", shifted, len(codingtable.Pitch)-1)
		}
		frames[i].PitchPeriod = int(codingtable.Pitch[clamped])
	}
}

// OverridePitch sets every voiced, non-silent frame's pitch to the table
// value at the given index, clamped to the table bounds.
func OverridePitch(frames []Frame, index int, logger Logger) {
	logger = logOrDiscard(logger)

	clamped := clampIndex(index, 0, len(codingtable.Pitch)-1)
	if clamped != index {
		logger.Debugf("pitch override index %d clamped to %d", index, clamped)
	}

	for i := range frames {
		if frames[i].IsSilent() || !frames[i].IsVoiced {
			continue
		}
		frames[i].PitchPeriod = int(codingtable.Pitch[clamped])
	}
}

// DetectRepeatFrames marks frame i (i>=1) as a repeat when both it and its
// predecessor are non-silent and their quantized k1 indices differ by
// exactly 1. It never marks frame 0, and never marks a frame whose
// predecessor is silent. Returns the number of frames that meet the
// condition, including any that were already marked.
func DetectRepeatFrames(frames []Frame) int {
	count := 0
	for i := 1; i < len(frames); i++ {
		prev, cur := frames[i-1], frames[i]
		if prev.IsSilent() || cur.IsSilent() {
			continue
		}

		prevK1 := prev.QuantizedCoeffs()[0]
		curK1 := cur.QuantizedCoeffs()[0]
		if util.Abs(curK1-prevK1) == 1 {
			frames[i].IsRepeat = true
			count++
		}
	}
	return count
}

func clampIndex(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
