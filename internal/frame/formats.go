package frame

import (
	"encoding/json"
	"fmt"
	"strings"
)

// EncoderStyle selects the textual wrapping applied to a packed bitstream.
// Every style carries the same underlying byte sequence (see Pack); only the
// presentation differs.
type EncoderStyle int

const (
	ASCII EncoderStyle = iota
	C
	Arduino
	Binary
	JSON
)

// String renders the style's name, matching the YAML/flag vocabulary used by
// BitstreamParameters.EncoderStyle.
func (s EncoderStyle) String() string {
	switch s {
	case ASCII:
		return "ASCII"
	case C:
		return "C"
	case Arduino:
		return "Arduino"
	case Binary:
		return "Binary"
	case JSON:
		return "JSON"
	default:
		return fmt.Sprintf("EncoderStyle(%d)", int(s))
	}
}

// ErrUnknownEncoderStyle is returned by Encode for a style value outside the
// five declared constants.
var ErrUnknownEncoderStyle = fmt.Errorf("lpc10/internal/frame: unknown encoder style")

const defaultDeclarationName = "lpc10_frames"

// Encode renders a packed bitstream (data, as produced by Pack) under the
// requested style. name is the declaration identifier used by the C and
// Arduino styles (an empty name falls back to "lpc10_frames"); frames is
// the source frame sequence, used only by the JSON style to carry both the
// raw analysis floats and the quantized table indices.
func Encode(style EncoderStyle, name string, data []byte, frames []Frame) ([]byte, error) {
	if name == "" {
		name = defaultDeclarationName
	}

	switch style {
	case ASCII:
		return []byte(HexString(data)), nil
	case C:
		return []byte(cHeader(name, data)), nil
	case Arduino:
		return []byte(arduinoHeader(name, data)), nil
	case Binary:
		return data, nil
	case JSON:
		return jsonFrames(frames)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownEncoderStyle, int(style))
	}
}

// HexString renders data as lowercase comma-delimited hex, with no "0x"
// prefix (ParseHex accepts an optional prefix on decode; this encoder omits
// it).
func HexString(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 3)
	for i, by := range data {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%02x", by)
	}
	return b.String()
}

func cHeader(name string, data []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "const int %s[] = { %s };\n", name, hexLiteralList(data))
	return b.String()
}

func arduinoHeader(name string, data []byte) string {
	var b strings.Builder
	fmt.Fprintf(&b, "extern const uint8_t %s[] PROGMEM = { %s };\n", name, hexLiteralList(data))
	return b.String()
}

func hexLiteralList(data []byte) string {
	var b strings.Builder
	for i, by := range data {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "0x%02x", by)
	}
	return b.String()
}

// frameDTO is the JSON-inspection shape for a Frame: both the raw analysis
// floats and the quantized coding-table indices they resolve to.
type frameDTO struct {
	PitchPeriod     int     `json:"pitch_period"`
	IsVoiced        bool    `json:"is_voiced"`
	GainDB          float32 `json:"gain_db"`
	Coeffs          []float32 `json:"coeffs"`
	IsRepeat        bool    `json:"is_repeat"`
	IsStop          bool    `json:"is_stop"`
	QuantizedGain   int     `json:"quantized_gain"`
	QuantizedPitch  int     `json:"quantized_pitch"`
	QuantizedCoeffs []int   `json:"quantized_coeffs"`
}

func toDTO(f Frame) frameDTO {
	coeffs := f.QuantizedCoeffs()
	return frameDTO{
		PitchPeriod:     f.PitchPeriod,
		IsVoiced:        f.IsVoiced,
		GainDB:          f.GainDB,
		Coeffs:          append([]float32(nil), f.Coeffs[:]...),
		IsRepeat:        f.IsRepeat,
		IsStop:          f.IsStop,
		QuantizedGain:   f.QuantizedGain(),
		QuantizedPitch:  f.QuantizedPitch(),
		QuantizedCoeffs: coeffs[:],
	}
}

func jsonFrames(frames []Frame) ([]byte, error) {
	dtos := make([]frameDTO, len(frames))
	for i, f := range frames {
		dtos[i] = toDTO(f)
	}
	return json.MarshalIndent(dtos, "", "  ")
}
