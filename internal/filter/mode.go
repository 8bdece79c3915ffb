// Package filter implements the resonant ladder filter: a four-stage IIR
// cascade with global feedback, 2x oversampled, with an Oberheim-style tap
// selecting one of 21 output combinations of the five stage outputs. Two
// cores are available (Improved-Moog, Nonlinear-Moog); the build tag
// "nonlinearmoog" selects the latter so the inner render loop monomorphizes
// on whichever core is compiled in.
package filter

// Mode selects which combination of ladder stage outputs is returned.
type Mode int

const (
	None Mode = iota
	Peak
	LowPass1
	LowPass2
	LowPass3
	LowPass4
	HighPass1
	HighPass2
	HighPass3
	HighPass4
	BandPass1
	BandPass1LowPass1
	BandPass1LowPass2
	BandPass1HighPass1
	BandPass1HighPass2
	BandPass2
	Notch
	NotchLowPass1
	NotchLowPass2
	PhaseShift
	PhaseShiftLowPass1

	modeCount
)

// Oversample is the number of ladder iterations computed per audio sample.
const Oversample = 2

// Config mirrors spec.md's FilterConfig: log2-octave cutoff components
// relative to the voice's key frequency, plus resonance.
type Config struct {
	Mode       Mode
	CutoffBase float32
	CutoffLFO  float32
	CutoffEnv  float32
	Resonance  float32
}
