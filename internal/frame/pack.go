package frame

import (
	"strings"

	"github.com/tms-express-go/lpc10/internal/codingtable"
)

// bits renders an unsigned value as bitWidth bits, MSB first.
func bits(value, bitWidth int) string {
	var b strings.Builder
	b.Grow(bitWidth)
	for i := bitWidth - 1; i >= 0; i-- {
		if value&(1<<uint(i)) != 0 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// grammarBits renders f's bit sequence per the LPC-10 frame grammar: gain,
// then (for non-silent frames) repeat + pitch, then (for non-repeat frames)
// k1-k4 and, if voiced, k5-k10.
func grammarBits(f Frame) string {
	if f.IsStop {
		return bits(codingtable.StopGainIndex, codingtable.GainWidth)
	}

	var b strings.Builder
	b.WriteString(bits(f.QuantizedGain(), codingtable.GainWidth))

	if f.IsSilent() {
		return b.String()
	}

	if f.IsRepeat {
		b.WriteByte('1')
	} else {
		b.WriteByte('0')
	}

	pitchIdx := 0
	if f.IsVoiced {
		pitchIdx = f.QuantizedPitch()
	}
	b.WriteString(bits(pitchIdx, codingtable.PitchWidth))

	if f.IsRepeat {
		return b.String()
	}

	// "Voiced" for grammar purposes means a nonzero quantized pitch, since
	// the packed bitstream carries no separate voicing bit: the decoder
	// can only tell voiced from unvoiced by the pitch field itself.
	coeffs := f.QuantizedCoeffs()
	nCoeffs := 4
	if pitchIdx != 0 {
		nCoeffs = codingtable.NCoeffs
	}

	for i := 0; i < nCoeffs; i++ {
		b.WriteString(bits(coeffs[i], codingtable.CoeffWidths[i]))
	}

	return b.String()
}

// Packer accumulates frame bits into a growing byte sequence, exactly as
// the original frame-by-frame bitstream construction does: each frame's
// bits are appended, filling any partial byte left by the previous frame
// before starting new whole bytes.
type Packer struct {
	bytes []string // each entry holds up to 8 bits, MSB-first, un-reversed
}

// NewPacker returns an empty Packer.
func NewPacker() *Packer {
	return &Packer{bytes: []string{""}}
}

// AppendFrame appends one frame's grammar bits to the packer.
func (p *Packer) AppendFrame(f Frame) {
	p.appendBits(grammarBits(f))
}

// AppendFrames appends every frame in order.
func (p *Packer) AppendFrames(frames []Frame) {
	for _, f := range frames {
		p.AppendFrame(f)
	}
}

// AppendStop appends a 4-bit stop frame (all gain bits set).
func (p *Packer) AppendStop() {
	p.appendBits(bits(codingtable.StopGainIndex, codingtable.GainWidth))
}

func (p *Packer) appendBits(bin string) {
	last := len(p.bytes) - 1
	emptyBits := 8 - len(p.bytes[last])
	if emptyBits != 0 {
		take := emptyBits
		if take > len(bin) {
			take = len(bin)
		}
		p.bytes[last] += bin[:take]
		bin = bin[take:]
	}

	for len(bin) > 0 {
		take := 8
		if take > len(bin) {
			take = len(bin)
		}
		p.bytes = append(p.bytes, bin[:take])
		bin = bin[take:]
	}
}

// Bytes finalizes the packer: it pads the last partial byte with trailing
// zeros to 8 bits, then reverses the bit order within each byte (so the
// first bit appended becomes the LSB of the emitted byte, matching the
// TMS6100's LSB-first clocking) and returns the resulting byte sequence.
func (p *Packer) Bytes() []byte {
	last := len(p.bytes) - 1
	if pad := 8 - len(p.bytes[last]); pad != 0 && pad != 8 {
		p.bytes[last] += strings.Repeat("0", pad)
	} else if len(p.bytes[last]) == 0 {
		p.bytes = p.bytes[:last]
	}

	out := make([]byte, len(p.bytes))
	for i, byteBits := range p.bytes {
		out[i] = reverseByte(byteBits)
	}
	return out
}

func reverseByte(bin string) byte {
	var v byte
	for i := 0; i < len(bin); i++ {
		if bin[i] == '1' {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Pack is a convenience wrapper: it packs frames (optionally followed by a
// stop frame) into their final byte sequence in one call.
func Pack(frames []Frame, includeStop bool) []byte {
	p := NewPacker()
	p.AppendFrames(frames)
	if includeStop {
		p.AppendStop()
	}
	return p.Bytes()
}
