package frame

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/tms-express-go/lpc10/internal/codingtable"
)

// ErrBitstreamMalformed is returned by ParseHex and Unpack when the input
// cannot be parsed as a valid LPC-10 bitstream, either because it contains
// non-hex characters or because it truncates in the middle of a frame.
var ErrBitstreamMalformed = errors.New("lpc10/internal/frame: malformed bitstream")

// ParseHex decodes a comma-delimited ASCII hex byte stream, each token an
// optional "0x"/"0X" prefix followed by exactly two hex digits, into raw
// packed bytes. An empty (or all-whitespace) string decodes to no bytes.
func ParseHex(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	tokens := strings.Split(s, ",")
	out := make([]byte, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		tok = strings.TrimPrefix(tok, "0x")
		tok = strings.TrimPrefix(tok, "0X")
		if len(tok) != 2 {
			return nil, fmt.Errorf("%w: %q is not a 2-digit hex byte", ErrBitstreamMalformed, tok)
		}

		b, err := hex.DecodeString(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBitstreamMalformed, tok, err)
		}
		out = append(out, b[0])
	}
	return out, nil
}

// unreverseByte is reverseByte's inverse: it recovers the original
// chronological bit-append order (what Packer accumulated before Bytes
// reversed it for TMS6100 LSB-first clocking) from a packed byte.
func unreverseByte(b byte) string {
	var out [8]byte
	for i := 0; i < 8; i++ {
		if b&(1<<uint(i)) != 0 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out[:])
}

// bitReader walks a bit string left to right, reporting short reads instead
// of panicking so Unpack can report truncation precisely.
type bitReader struct {
	bits string
	pos  int
}

func (r *bitReader) take(n int) (int, bool) {
	if r.pos+n > len(r.bits) {
		return 0, false
	}

	v := 0
	for i := 0; i < n; i++ {
		v <<= 1
		if r.bits[r.pos+i] == '1' {
			v |= 1
		}
	}
	r.pos += n
	return v, true
}

// Unpack decodes raw packed bytes (as produced by Packer.Bytes(), bit-
// reversed for TMS6100 LSB-first clocking) back into the frame sequence
// they encode, running the frame grammar in reverse:
//
//	read 4 gain bits; 0xF halts (stop), 0x0 yields a silent frame
//	read 1 repeat bit, 6 pitch bits; a set repeat bit yields a repeat frame
//	read k1-k4; if pitch == 0 the frame is unvoiced and done (29 bits)
//	else read k5-k10: the frame is voiced (50 bits)
//
// Decoding halts at the first stop frame or the first grammar violation,
// returning the frames recovered up to that point alongside any error —
// callers get a best-effort prefix rather than nothing. Running out of bits
// before a stop frame is a violation even at a frame boundary, and the zero
// bits that pad the last byte decode as silent frames, so a stream packed
// without a stop frame always ends in an error.
func Unpack(data []byte) ([]Frame, error) {
	var sb strings.Builder
	sb.Grow(len(data) * 8)
	for _, b := range data {
		sb.WriteString(unreverseByte(b))
	}
	r := &bitReader{bits: sb.String()}

	var frames []Frame
	for {
		gainIdx, ok := r.take(codingtable.GainWidth)
		if !ok {
			return frames, fmt.Errorf("%w: truncated before gain field", ErrBitstreamMalformed)
		}
		if gainIdx == codingtable.StopGainIndex {
			return frames, nil
		}
		if gainIdx == 0 {
			frames = append(frames, New(0, false, codingtable.RMS[0], nil))
			continue
		}

		repeatBit, ok := r.take(codingtable.RepeatWidth)
		if !ok {
			return frames, fmt.Errorf("%w: truncated before repeat bit", ErrBitstreamMalformed)
		}
		pitchIdx, ok := r.take(codingtable.PitchWidth)
		if !ok {
			return frames, fmt.Errorf("%w: truncated before pitch field", ErrBitstreamMalformed)
		}

		if repeatBit == 1 {
			f := New(int(codingtable.Pitch[pitchIdx]), pitchIdx != 0, codingtable.RMS[gainIdx], nil)
			f.IsRepeat = true
			frames = append(frames, f)
			continue
		}

		nCoeffs := 4
		if pitchIdx != 0 {
			nCoeffs = codingtable.NCoeffs
		}

		var coeffs [codingtable.NCoeffs]float32
		for i := 0; i < nCoeffs; i++ {
			idx, ok := r.take(codingtable.CoeffWidths[i])
			if !ok {
				return frames, fmt.Errorf("%w: truncated mid-coefficient (k%d)", ErrBitstreamMalformed, i+1)
			}
			table, _ := codingtable.KTable(i)
			coeffs[i] = table[idx]
		}

		frames = append(frames, New(int(codingtable.Pitch[pitchIdx]), pitchIdx != 0, codingtable.RMS[gainIdx], coeffs[:]))
	}
}
