// Command lpc10 is a thin CLI collaborator around the lpc10 package: it
// wires file I/O, flag parsing, and progress logging around the core
// encode/synthesize calls. It contains no DSP of its own.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/tms-express-go/lpc10"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:])
	case "synth":
		err = runSynth(os.Args[2:])
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "lpc10: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "lpc10:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: lpc10 <encode|synth> [options]")
	fmt.Fprintln(os.Stderr, "  encode --in speech.wav --out speech.lpc10")
	fmt.Fprintln(os.Stderr, "  synth  --in speech.lpc10 --out speech.wav")
}

func runEncode(args []string) error {
	flags := pflag.NewFlagSet("encode", pflag.ExitOnError)

	profilePath := flags.String("profile", "", "YAML profile overriding the default parameters")
	inPath := flags.StringP("in", "i", "", "input WAV file (mono, any sample rate)")
	outPath := flags.StringP("out", "o", "", "output bitstream file (- for stdout)")
	windowWidthMs := flags.Float64("window-width-ms", 0, "segmentation window width in ms (0: keep profile default)")
	sampleRateHz := flags.Int("sample-rate-hz", 0, "override the declared sample rate (0: use the WAV's own rate)")
	upperHpf := flags.Float64("upper-hpf-hz", 0, "upper-tract highpass cutoff, -1 to disable (0: keep profile default)")
	upperLpf := flags.Float64("upper-lpf-hz", 0, "upper-tract lowpass cutoff, -1 to disable (0: keep profile default)")
	preEmphasis := flags.Float64("pre-emphasis-alpha", 0, "upper-tract pre-emphasis coefficient (0: keep profile default)")
	lowerHpf := flags.Float64("lower-hpf-hz", 0, "lower-tract highpass cutoff, -1 to disable (0: keep profile default)")
	lowerLpf := flags.Float64("lower-lpf-hz", 0, "lower-tract lowpass cutoff, -1 to disable (0: keep profile default)")
	minPitchHz := flags.Int("min-pitch-hz", 0, "lower bound of the pitch search (0: keep profile default)")
	maxPitchHz := flags.Int("max-pitch-hz", 0, "upper bound of the pitch search (0: keep profile default)")
	gainShift := flags.Int("gain-shift", 0, "post-processor gain index shift")
	normalizeGain := flags.Bool("normalize-gain", false, "normalize voiced/unvoiced gain populations independently")
	detectRepeat := flags.Bool("detect-repeat-frames", false, "mark compressible repeat frames")
	encoderStyle := flags.String("encoder-style", "", "ASCII|C|Arduino|Binary|JSON (default: profile's, or ASCII)")
	includeStop := flags.Bool("stop-frame", true, "append a stop frame")
	declName := flags.String("declaration-name", "", "identifier used by the C/Arduino encoder styles")
	verbose := flags.BoolP("verbose", "v", false, "log progress to stderr")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return fmt.Errorf("--in and --out are required")
	}

	logger := newLogger(*verbose)

	profile, err := loadProfile(*profilePath)
	if err != nil {
		return err
	}

	if *windowWidthMs != 0 {
		profile.Shared.WindowWidthMs = *windowWidthMs
	}
	if *sampleRateHz != 0 {
		profile.Shared.SampleRateHz = *sampleRateHz
	}
	if *upperHpf != 0 {
		profile.Upper.HpfCutoffHz = *upperHpf
	}
	if *upperLpf != 0 {
		profile.Upper.LpfCutoffHz = *upperLpf
	}
	if *preEmphasis != 0 {
		profile.Upper.PreEmphasisAlpha = float32(*preEmphasis)
	}
	if *lowerHpf != 0 {
		profile.Lower.HpfCutoffHz = *lowerHpf
	}
	if *lowerLpf != 0 {
		profile.Lower.LpfCutoffHz = *lowerLpf
	}
	if *minPitchHz != 0 {
		profile.Lower.MinPitchHz = *minPitchHz
	}
	if *maxPitchHz != 0 {
		profile.Lower.MaxPitchHz = *maxPitchHz
	}
	if flags.Changed("gain-shift") {
		profile.Post.GainShift = *gainShift
	}
	if flags.Changed("normalize-gain") {
		profile.Post.NormalizeGain = *normalizeGain
	}
	if flags.Changed("detect-repeat-frames") {
		profile.Post.DetectRepeatFrames = *detectRepeat
	}
	if *encoderStyle != "" {
		profile.Bitstream.EncoderStyleName = *encoderStyle
	}
	if flags.Changed("stop-frame") {
		profile.Bitstream.IncludeStopFrame = *includeStop
	}
	if *declName != "" {
		profile.Bitstream.DeclarationName = *declName
	}

	f, err := os.Open(*inPath)
	if err != nil {
		return err
	}
	defer f.Close()

	samples, wavSampleRateHz, err := lpc10.LoadWAV(f)
	if err != nil {
		return fmt.Errorf("loading %q: %w", *inPath, err)
	}
	// The WAV's own rate is authoritative unless --sample-rate-hz overrides
	// it (already applied above), since analysis only makes sense against
	// the rate the audio was actually captured at.
	if *sampleRateHz == 0 {
		profile.Shared.SampleRateHz = wavSampleRateHz
	}
	logger.Debugf("loaded %d samples at %d Hz from %s", len(samples), wavSampleRateHz, *inPath)

	out, err := lpc10.EncodeProfile(samples, profile, logger)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", *inPath, err)
	}
	logger.Debugf("encoded %d bytes (%s style)", len(out), profile.Bitstream.EncoderStyleName)

	return writeOutput(*outPath, out)
}

func runSynth(args []string) error {
	flags := pflag.NewFlagSet("synth", pflag.ExitOnError)

	inPath := flags.StringP("in", "i", "", "input bitstream file (ASCII hex, - for stdin)")
	outPath := flags.StringP("out", "o", "", "output WAV file")
	sampleRateHz := flags.Int("sample-rate-hz", 8000, "sample rate of the synthesized audio")
	windowWidthMs := flags.Float64("window-width-ms", 25, "frame (window) width in ms")
	verbose := flags.BoolP("verbose", "v", false, "log progress to stderr")

	if err := flags.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return fmt.Errorf("--in and --out are required")
	}

	logger := newLogger(*verbose)

	data, err := readInput(*inPath)
	if err != nil {
		return err
	}

	shared := lpc10.SharedParameters{SampleRateHz: *sampleRateHz, WindowWidthMs: *windowWidthMs}
	samples, err := lpc10.DecodeHex(string(data), shared)
	if err != nil {
		return fmt.Errorf("decoding %q: %w", *inPath, err)
	}
	logger.Debugf("synthesized %d samples", len(samples))

	if err := lpc10.RenderWAV(samples, *sampleRateHz, *outPath); err != nil {
		return fmt.Errorf("rendering %q: %w", *outPath, err)
	}
	return nil
}

func newLogger(verbose bool) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})
	return logger
}

func loadProfile(path string) (lpc10.Profile, error) {
	if path == "" {
		return lpc10.DefaultProfile(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return lpc10.Profile{}, fmt.Errorf("loading profile %q: %w", path, err)
	}
	defer f.Close()

	profile := lpc10.DefaultProfile()
	if err := yaml.NewDecoder(f).Decode(&profile); err != nil {
		return lpc10.Profile{}, fmt.Errorf("parsing profile %q: %w", path, err)
	}
	return profile, nil
}

func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
