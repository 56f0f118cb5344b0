package lpc10

import (
	"github.com/tms-express-go/lpc10/internal/codingtable"
	"github.com/tms-express-go/lpc10/internal/frame"
)

// DisableFilter is the sentinel cutoff value meaning "do not apply this
// filter", used by UpperVocalTractParameters and LowerVocalTractParameters.
const DisableFilter = -1

// SharedParameters covers the segmentation settings common to both analysis
// tracts.
type SharedParameters struct {
	SampleRateHz  int     `yaml:"sample_rate_hz"`
	WindowWidthMs float64 `yaml:"window_width_ms"`
}

// UpperVocalTractParameters configures the linear-predictive analysis path
// (highpass, pre-emphasis, Hamming window, Levinson-Durbin). ModelOrder is
// fixed at 10 by the TMS5220 format and is carried here only for profile
// round-tripping; encoders always run at order 10 regardless of its value.
type UpperVocalTractParameters struct {
	HpfCutoffHz     float64 `yaml:"hpf_cutoff_hz"`
	LpfCutoffHz     float64 `yaml:"lpf_cutoff_hz"`
	PreEmphasisAlpha float32 `yaml:"pre_emphasis_alpha"`
	ModelOrder      int     `yaml:"model_order"`
}

// LowerVocalTractParameters configures the pitch-estimation path.
type LowerVocalTractParameters struct {
	HpfCutoffHz float64 `yaml:"hpf_cutoff_hz"`
	LpfCutoffHz float64 `yaml:"lpf_cutoff_hz"`
	PreEmphasisAlpha float32 `yaml:"pre_emphasis_alpha"`
	MinPitchHz  int     `yaml:"min_pitch_hz"`
	MaxPitchHz  int     `yaml:"max_pitch_hz"`
}

// PostProcessorParameters configures the frame-table post-processing stage.
type PostProcessorParameters struct {
	GainShift          int     `yaml:"gain_shift"`
	NormalizeGain      bool    `yaml:"normalize_gain"`
	MaxVoicedGainDB    float32 `yaml:"max_voiced_gain_db"`
	MaxUnvoicedGainDB  float32 `yaml:"max_unvoiced_gain_db"`
	DetectRepeatFrames bool    `yaml:"detect_repeat_frames"`
}

// BitstreamParameters configures bitstream serialization.
type BitstreamParameters struct {
	EncoderStyle      frame.EncoderStyle `yaml:"-"`
	EncoderStyleName  string             `yaml:"encoder_style"`
	IncludeStopFrame  bool               `yaml:"include_stop_frame"`
	DeclarationName   string             `yaml:"declaration_name"`
}

// Profile bundles all five parameter groups, loadable as a single named
// YAML document by the CLI collaborator.
type Profile struct {
	Shared    SharedParameters          `yaml:"shared"`
	Upper     UpperVocalTractParameters `yaml:"upper_vocal_tract"`
	Lower     LowerVocalTractParameters `yaml:"lower_vocal_tract"`
	Post      PostProcessorParameters   `yaml:"post_processor"`
	Bitstream BitstreamParameters       `yaml:"bitstream"`
}

// DefaultProfile returns the parameter set used by the reference hobbyist
// workflow: 8 kHz mono, 25 ms frames, pre-emphasis at the datasheet's
// typical 0.9375, pitch search over 50-400 Hz, no post-processing, ASCII
// hex output with a trailing stop frame.
func DefaultProfile() Profile {
	return Profile{
		Shared: SharedParameters{
			SampleRateHz:  8000,
			WindowWidthMs: 25,
		},
		Upper: UpperVocalTractParameters{
			HpfCutoffHz:      DisableFilter,
			LpfCutoffHz:      DisableFilter,
			PreEmphasisAlpha: 0.9375,
			ModelOrder:       10,
		},
		Lower: LowerVocalTractParameters{
			HpfCutoffHz:      DisableFilter,
			LpfCutoffHz:      800,
			PreEmphasisAlpha: 0,
			MinPitchHz:       50,
			MaxPitchHz:       400,
		},
		Post: PostProcessorParameters{
			MaxVoicedGainDB:   codingtable.RMS[len(codingtable.RMS)-1],
			MaxUnvoicedGainDB: codingtable.RMS[len(codingtable.RMS)-1],
		},
		Bitstream: BitstreamParameters{
			EncoderStyle:     frame.ASCII,
			EncoderStyleName: "ASCII",
			IncludeStopFrame: true,
		},
	}
}

// resolveEncoderStyle keeps EncoderStyleName (the YAML-facing field) and
// EncoderStyle (the typed field the pipeline actually uses) consistent
// after a profile is loaded from disk.
func (b *BitstreamParameters) resolveEncoderStyle() error {
	switch b.EncoderStyleName {
	case "", "ASCII":
		b.EncoderStyle = frame.ASCII
	case "C":
		b.EncoderStyle = frame.C
	case "Arduino":
		b.EncoderStyle = frame.Arduino
	case "Binary":
		b.EncoderStyle = frame.Binary
	case "JSON":
		b.EncoderStyle = frame.JSON
	default:
		return &unknownEncoderStyleError{name: b.EncoderStyleName}
	}
	return nil
}

type unknownEncoderStyleError struct{ name string }

func (e *unknownEncoderStyleError) Error() string {
	return "lpc10: unknown encoder style " + e.name
}
