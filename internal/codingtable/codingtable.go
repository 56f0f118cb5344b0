// Package codingtable holds the static TMS5220 quantization tables and the
// bit widths of the LPC-10 frame grammar. The values are taken verbatim from
// the TMS5220 datasheet (via the TMS-Express / Arduino Talkie lineage) and
// never change at runtime, so the whole package is safe for concurrent use.
package codingtable

import "fmt"

// NCoeffs is the fixed LPC order the TMS5220 format encodes.
const NCoeffs = 10

// Bit widths of each frame field, per the LPC-10 grammar.
const (
	GainWidth    = 4
	RepeatWidth  = 1
	PitchWidth   = 6
	VoicingWidth = 1 // voicing flag as a frame value; the packed grammar has no voicing field (a nonzero pitch index marks a voiced frame)
)

// CoeffWidths gives the bit width of the i-th reflector coefficient (k1..k10).
var CoeffWidths = [NCoeffs]int{5, 5, 4, 4, 4, 4, 4, 3, 3, 3}

// Total frame widths (in bits, before byte packing) for each frame shape.
const (
	SilentFrameBits   = GainWidth
	RepeatFrameBits   = GainWidth + RepeatWidth + PitchWidth
	UnvoicedFrameBits = GainWidth + RepeatWidth + PitchWidth + 5 + 5 + 4 + 4
	VoicedFrameBits   = UnvoicedFrameBits + 4 + 4 + 4 + 3 + 3 + 3
	StopFrameBits     = GainWidth

	// StopGainIndex is the sentinel gain-table index (0xF) that signals a
	// stop frame. It is never produced by analysis, only by the packer.
	StopGainIndex = 0xF
)

// RMS is the 16-entry gain (energy) quantization table.
var RMS = [16]float32{
	0, 52, 87, 123, 174, 246, 348, 491,
	694, 981, 1385, 1957, 2764, 3904, 5514, 7789,
}

// Pitch is the 64-entry pitch-period quantization table, in samples.
var Pitch = [64]float32{
	0, 15, 16, 17, 18, 19, 20, 21, 22, 23,
	24, 25, 26, 27, 28, 29, 30, 31, 32, 33,
	34, 35, 36, 37, 38, 39, 40, 41, 42, 44,
	46, 48, 50, 52, 53, 56, 58, 60, 62, 65,
	68, 70, 72, 76, 78, 80, 84, 86, 91, 94,
	98, 101, 105, 109, 114, 118, 122, 127, 132,
	137, 142, 148, 153, 159,
}

// K1 through K10 are the reflector-coefficient quantization tables. Their
// lengths vary (32, 32, 16, 16, 16, 16, 16, 8, 8, 8 entries) matching the
// bit widths in CoeffWidths.
var (
	K1 = [32]float32{
		-0.97850, -0.97270, -0.97070, -0.96680, -0.96290, -0.95900,
		-0.95310, -0.94140, -0.93360, -0.92580, -0.91600, -0.90620,
		-0.89650, -0.88280, -0.86910, -0.85350, -0.80420, -0.74058,
		-0.66019, -0.56116, -0.44296, -0.30706, -0.15735, -0.00005,
		0.15725, 0.30696, 0.44288, 0.56109, 0.66013, 0.74054,
		0.80416, 0.85350,
	}

	K2 = [32]float32{
		-0.64000, -0.58999, -0.53500, -0.47507, -0.41039, -0.34129,
		-0.26830, -0.19209, -0.11350, -0.03345, 0.04702, 0.12690,
		0.20515, 0.28087, 0.35325, 0.42163, 0.48553, 0.54464,
		0.59878, 0.64796, 0.69227, 0.73190, 0.76714, 0.79828,
		0.82567, 0.84965, 0.87057, 0.88875, 0.90451, 0.91813,
		0.92988, 0.98830,
	}

	K3 = [16]float32{
		-0.86000, -0.75467, -0.64933, -0.54400, -0.43867, -0.33333,
		-0.22800, -0.12267, -0.01733, 0.08800, 0.19333, 0.29867,
		0.40400, 0.50933, 0.61467, 0.72000,
	}

	K4 = [16]float32{
		-0.64000, -0.53145, -0.42289, -0.31434, -0.20579, -0.09723,
		0.01132, 0.11987, 0.22843, 0.33698, 0.44553, 0.55409,
		0.66264, 0.77119, 0.87975, 0.98830,
	}

	K5 = [16]float32{
		-0.64000, -0.54933, -0.45867, -0.36800, -0.27733, -0.18667,
		-0.09600, -0.00533, 0.08533, 0.17600, 0.26667, 0.35733,
		0.44800, 0.53867, 0.62933, 0.72000,
	}

	K6 = [16]float32{
		-0.50000, -0.41333, -0.32667, -0.24000, -0.15333, -0.06667,
		0.02000, 0.10667, 0.19333, 0.28000, 0.36667, 0.45333,
		0.54000, 0.62667, 0.71333, 0.80000,
	}

	K7 = [16]float32{
		-0.60000, -0.50667, -0.41333, -0.32000, -0.22667, -0.13333,
		-0.04000, 0.05333, 0.14667, 0.24000, 0.33333, 0.42667,
		0.52000, 0.61333, 0.70667, 0.80000,
	}

	K8 = [8]float32{
		-0.50000, -0.31429, -0.12857, 0.05714, 0.24286, 0.42857,
		0.61429, 0.80000,
	}

	K9 = [8]float32{
		-0.50000, -0.34286, -0.18571, 0.02857, 0.12857, 0.28571,
		0.44286, 0.60000,
	}

	K10 = [8]float32{
		-0.40000, -0.25714, -0.11429, 0.02857, 0.17143, 0.31429,
		0.45714, 0.60000,
	}
)

// Chirp is the 41-sample deterministic voiced excitation pulse.
var Chirp = [41]float32{
	0, 0.328125, -0.34375, 0.390625, -0.609375, 0.140625, 0.2890625,
	0.15625, 0.015625, -0.2421875, -0.4609375, 0.015625, 0.7421875,
	0.703125, 0.0390625, 0.1171875, 0.296875, -0.03125, -0.7109375,
	-0.7109375, -0.328125, -0.2734375, -0.28125, -0.03125, 0.2890625,
	0.3359375, 0.265625, 0.2578125, 0.1171875, -0.0078125, -0.0625,
	-0.140625, -0.1484375, -0.1328125, -0.0703125, -0.078125, -0.046875,
	0, 0.0234375, 0.015625, 0.0078125,
}

// Energy is the 16-entry synthesis gain table consumed by the lattice
// filter (distinct from RMS, which is the analysis-side quantizer table).
var Energy = [16]float32{
	0, 0.00390625, 0.005859375, 0.0078125, 0.009765625, 0.013671875,
	0.01953125, 0.029296875, 0.0390625, 0.0625, 0.080078125, 0.111328125,
	0.158203125, 0.22265625, 0.314453125, 0,
}

// KTable returns a read-only view of the i-th reflector-coefficient table
// (0 <= i < NCoeffs, i.e. K1..K10). It returns an error if i is out of range.
func KTable(i int) ([]float32, error) {
	switch i {
	case 0:
		return K1[:], nil
	case 1:
		return K2[:], nil
	case 2:
		return K3[:], nil
	case 3:
		return K4[:], nil
	case 4:
		return K5[:], nil
	case 5:
		return K6[:], nil
	case 6:
		return K7[:], nil
	case 7:
		return K8[:], nil
	case 8:
		return K9[:], nil
	case 9:
		return K10[:], nil
	default:
		return nil, fmt.Errorf("codingtable: k-coefficient index %d out of range [0,%d)", i, NCoeffs)
	}
}
