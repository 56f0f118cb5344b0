// Package lpc10 implements the analysis, encoding, and synthesis pipeline
// for the TMS5220 Voice Synthesis Processor's LPC-10 speech format.
//
// The package converts mono PCM audio into a compact bitstream compatible
// with the TMS5220's coding tables, and resynthesizes speech-like audio
// from such a bitstream. It targets hobbyists and engineers working with
// classic speech-synthesis silicon, Arduino Talkie-style embedded replay,
// and software emulators.
//
// # Pipeline
//
// Encoding runs two independent filter paths over the same segmentation
// boundaries: a lower-tract path (lowpass-filtered) feeds pitch estimation,
// and an upper-tract path (highpass-filtered, pre-emphasized, windowed)
// feeds linear-predictive analysis. The two analyses combine into a Frame
// per segment, which a post-processing stage may normalize, shift, or
// mark as a repeat of its predecessor. A bit packer then serializes the
// frame table into one of several textual or binary encodings.
//
// Decoding reverses the process: a bitstream is unpacked into a frame
// table and driven through a 10-stage all-pole lattice filter to
// reconstruct PCM samples. Decode and DecodeHex apply no post-processing
// to the decoded frames.
//
// # Scope
//
// This package is single-threaded and synchronous: every exported call
// blocks until its output (a complete bitstream, or a complete PCM
// buffer) is available. Audio file decoding, resampling, and the GUI or
// CLI front ends are treated as external collaborators; see the
// subpackages under internal/audio for the WAV boundary this package
// does own.
package lpc10
