// Package wave implements the family of band-limited waveform generators
// and the phase-accumulator oscillator that drives them. Every generator
// has the same contract: given a config, a mutable per-oscillator state,
// and the phase step for this sample, it returns a value in [-1, 1] and
// may only touch state.index/state.advance, never state.phase.
package wave

import "github.com/voltlattice/ladderwave/internal/noise"

// Type enumerates the oscillator waveforms a NoteOscillatorConfig can select.
type Type int

const (
	Sine Type = iota
	Pulse
	Sawtooth
	Triangle
	Noise
	Poly4
	Poly5
	Poly17
	PulsePoly5
	Poly4Poly5
	Poly17Poly5

	typeCount
)

// adjustFrequency retunes table-driven waves so their perceived pitch tracks
// the continuous waves; see original_source/Wave.cpp wave_adjust_frequency.
var adjustFrequency = [typeCount]float32{
	Sine:        1.0,
	Pulse:       1.0,
	Sawtooth:    1.0,
	Triangle:    1.0,
	Noise:       1.0,
	Poly4:       2.0 * 15.0 / 16.0,
	Poly5:       2.0 * 31.0 / 32.0,
	Poly17:      2.0,
	PulsePoly5:  2.0 * 31.0 / 32.0,
	Poly4Poly5:  2.0 * 465.0 / 512.0,
	Poly17Poly5: 2.0,
}

// AdjustFrequency returns the wave-type pitch correction factor applied when
// deriving an oscillator's audio-rate frequency from its base value.
func (t Type) AdjustFrequency() float32 { return adjustFrequency[t] }

// LoopCycle returns the phase-cycle count after which a table-driven wave's
// index realigns with its starting position, or 1 for continuous waves. The
// consolidated-file convention (cycle=1 means "not a table wave") is
// canonical here rather than the split file's INT_MAX, per original_source.
func (t Type) LoopCycle(tables *noise.Tables) int {
	switch t {
	case Poly4:
		return len(tables.Poly4)
	case Poly5:
		return len(tables.Poly5)
	case Poly17:
		return len(tables.Poly17)
	case PulsePoly5:
		return len(tables.PulsePoly5)
	case Poly4Poly5:
		return len(tables.Poly4Poly5)
	case Poly17Poly5:
		return len(tables.Poly17Poly5)
	default:
		return 1
	}
}

// Config is the minimal per-oscillator configuration the waveform
// generators and the phase accumulator need each sample; it is the target
// of the once-per-sample base+LFO recomputation described by
// NoteOscillatorConfig/LFOOscillatorConfig.
type Config struct {
	WaveType  Type
	Width     float32 // pulse width, [0,1]
	Frequency float32 // Hz, relative to the voice key frequency multiplier
	Amplitude float32
	Antialias bool
}

// State is the mutable per-oscillator phase accumulator. After Update, the
// invariant 0 <= Phase < 1 always holds.
type State struct {
	Phase   float32
	Advance int // whole cycles crossed on the last Update
	Index   int // index into the LFSR table for poly-driven waves
}

// Reset zeroes the oscillator's state, used on every OFF->ATTACK transition.
func (s *State) Reset() {
	*s = State{}
}

// Tables is the shared, read-only set of noise tables every Poly-family
// generator samples from. It is built once at startup by noise.NewTables
// and never mutated thereafter.
type Tables = noise.Tables
