package lpc10

import (
	"errors"
	"fmt"
	"math"

	"github.com/tms-express-go/lpc10/internal/audio"
	"github.com/tms-express-go/lpc10/internal/dsp"
	"github.com/tms-express-go/lpc10/internal/frame"
	"github.com/tms-express-go/lpc10/internal/lpc"
	"github.com/tms-express-go/lpc10/internal/pitch"
)

// Logger receives debug-level notices for locally-recovered conditions
// (a neutralized degenerate-analysis frame, a clamped gain/pitch shift). A
// nil Logger discards every call. *charmbracelet/log.Logger satisfies this
// interface directly.
type Logger = frame.Logger

// Frame is the exported alias of the frame-pipeline's record type, returned
// by Analyze and accepted by Synthesize.
type Frame = frame.Frame

// Analyze runs the two-path analysis pipeline (lower tract: pitch
// estimation; upper tract: linear prediction) over mono PCM samples and
// returns the post-processed frame table. Encode builds the bitstream on
// top of this; callers that only need the frame table (e.g. for the JSON
// inspection encoder) can call it directly.
func Analyze(samples []float32, shared SharedParameters, upper UpperVocalTractParameters, lower LowerVocalTractParameters, post PostProcessorParameters, logger Logger) ([]Frame, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyBuffer
	}

	pitchBuf := audio.NewFromSamples(samples, shared.SampleRateHz, shared.WindowWidthMs)
	lpcBuf := pitchBuf.Clone()

	if err := runFilterPath(pitchBuf, lower.HpfCutoffHz, lower.LpfCutoffHz, lower.PreEmphasisAlpha); err != nil {
		return nil, err
	}
	if err := runFilterPath(lpcBuf, upper.HpfCutoffHz, upper.LpfCutoffHz, upper.PreEmphasisAlpha); err != nil {
		return nil, err
	}

	estimator := pitch.NewEstimator(shared.SampleRateHz, lower.MinPitchHz, lower.MaxPitchHz)
	predictor := lpc.NewPredictor()

	nSegments := pitchBuf.NSegments()
	frames := make([]Frame, nSegments)
	for i := 0; i < nSegments; i++ {
		pitchSeg, err := pitchBuf.Segment(i)
		if err != nil {
			return nil, wrapAudioErr(err)
		}
		lpcSeg, err := lpcBuf.Segment(i)
		if err != nil {
			return nil, wrapAudioErr(err)
		}

		period := estimator.EstimatePeriod(dsp.Autocorrelate(pitchSeg))

		windowed := append([]float32(nil), lpcSeg...)
		dsp.HammingWindow(windowed)
		coeffs := predictor.ReflectorCoefficients(dsp.Autocorrelate(windowed))
		gainDB := predictor.GainDB()
		if math.IsNaN(float64(gainDB)) && logger != nil {
			logger.Debugf("segment %d: degenerate analysis, gain and coefficients zeroed", i)
		}

		isVoiced := coeffs[0] < 0
		frames[i] = frame.New(period, isVoiced, gainDB, coeffs)
	}

	if post.NormalizeGain {
		frame.NormalizeGain(frames, post.MaxVoicedGainDB, post.MaxUnvoicedGainDB)
	}
	if post.GainShift != 0 {
		frame.ShiftGain(frames, post.GainShift, logger)
	}
	if post.DetectRepeatFrames {
		frame.DetectRepeatFrames(frames)
	}

	return frames, nil
}

// Encode runs Analyze and packs the resulting frame table into a bitstream
// rendered in bitstream.EncoderStyle.
func Encode(samples []float32, shared SharedParameters, upper UpperVocalTractParameters, lower LowerVocalTractParameters, post PostProcessorParameters, bitstream BitstreamParameters, logger Logger) ([]byte, error) {
	frames, err := Analyze(samples, shared, upper, lower, post, logger)
	if err != nil {
		return nil, err
	}

	packed := frame.Pack(frames, bitstream.IncludeStopFrame)
	out, err := frame.Encode(bitstream.EncoderStyle, bitstream.DeclarationName, packed, frames)
	if err != nil {
		return nil, fmt.Errorf("lpc10: %w", err)
	}
	return out, nil
}

// EncodeProfile is Encode called with the five parameter groups bundled
// into a single Profile, resolving BitstreamParameters.EncoderStyleName
// (as loaded from YAML) into its typed EncoderStyle first.
func EncodeProfile(samples []float32, p Profile, logger Logger) ([]byte, error) {
	if err := p.Bitstream.resolveEncoderStyle(); err != nil {
		return nil, err
	}
	return Encode(samples, p.Shared, p.Upper, p.Lower, p.Post, p.Bitstream, logger)
}

// Decode parses a packed bitstream (raw bytes, as produced by the Binary
// encoder style) into PCM samples via the lattice-filter synthesizer.
func Decode(data []byte, shared SharedParameters) ([]float32, error) {
	frames, err := frame.Unpack(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBitstreamMalformed, err)
	}
	return Synthesize(frames, shared), nil
}

// DecodeHex parses a comma-delimited ASCII hex bitstream (each token an
// optional "0x" prefix) and synthesizes it.
func DecodeHex(hexStream string, shared SharedParameters) ([]float32, error) {
	data, err := frame.ParseHex(hexStream)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBitstreamMalformed, err)
	}
	return Decode(data, shared)
}

// Synthesize renders an already-decoded frame table into PCM samples,
// halting at the first stop frame per the frame pipeline's state machine.
func Synthesize(frames []Frame, shared SharedParameters) []float32 {
	synth := frame.NewSynthesizer(shared.SampleRateHz, shared.WindowWidthMs)
	return synth.Synthesize(frames)
}

// runFilterPath applies pre-emphasis, then highpass, then lowpass to buf's
// samples in place, skipping any stage whose cutoff/alpha is the disabled
// sentinel (DisableFilter for the biquads, 0 for pre-emphasis).
func runFilterPath(buf *audio.Buffer, hpfCutoffHz, lpfCutoffHz float64, preEmphasisAlpha float32) error {
	samples := buf.Samples()

	if preEmphasisAlpha != 0 {
		samples = dsp.PreEmphasis(samples, preEmphasisAlpha)
	}
	if hpfCutoffHz != DisableFilter {
		samples = dsp.Biquad(samples, hpfCutoffHz, float64(buf.SampleRate()), dsp.BiquadHighpass)
	}
	if lpfCutoffHz != DisableFilter {
		samples = dsp.Biquad(samples, lpfCutoffHz, float64(buf.SampleRate()), dsp.BiquadLowpass)
	}

	return wrapAudioErr(buf.SetSamples(samples))
}

func wrapAudioErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, audio.ErrEmpty):
		return fmt.Errorf("%w: %v", ErrEmptyBuffer, err)
	case errors.Is(err, audio.ErrIndexOutOfRange):
		return fmt.Errorf("%w: %v", ErrIndexOutOfRange, err)
	case errors.Is(err, audio.ErrInvalidAudio):
		return fmt.Errorf("%w: %v", ErrInvalidAudio, err)
	default:
		return err
	}
}
