package lpc10

import (
	"io"

	"github.com/tms-express-go/lpc10/internal/audio"
)

// RenderWAV writes samples to path as 16-bit PCM mono WAV at sampleRateHz.
// It sits outside the analysis/synthesis core, as a convenience wrapper
// the CLI uses.
func RenderWAV(samples []float32, sampleRateHz int, path string) error {
	buf := audio.NewFromSamples(samples, sampleRateHz, exactWindowWidthMs(samples, sampleRateHz))
	// Reset drops any zero padding the segmentation added, so exactly the
	// given samples are written.
	buf.Reset()
	return wrapAudioErr(buf.Render(path))
}

// LoadWAV decodes a mono (or downmixed) WAV file and returns its samples
// and native sample rate. The core itself never decodes audio files.
func LoadWAV(r io.Reader) (samples []float32, sampleRateHz int, err error) {
	// windowWidthMs=1 here only selects a (discarded) segmentation; the
	// returned sample count is exact once re-requested below.
	probe, err := audio.LoadWAV(r, 1)
	if err != nil {
		return nil, 0, wrapAudioErr(err)
	}
	// LoadWAV's segmentation may have zero-padded the sample slice; Reset
	// restores the exact samples the decoder produced.
	probe.Reset()
	return probe.Samples(), probe.SampleRate(), nil
}

// exactWindowWidthMs returns the window width at which the whole sample
// slice is one segment. Floating-point rounding can make the derived segment
// one sample short, in which case the buffer pads; RenderWAV resets the
// buffer before rendering, so that padding is never written.
func exactWindowWidthMs(samples []float32, sampleRateHz int) float64 {
	if len(samples) == 0 || sampleRateHz <= 0 {
		return 1
	}
	return float64(len(samples)) / float64(sampleRateHz) * 1000
}
