// Package synthcfg holds the process-wide patch configuration shared
// between the control context (UI/parameter edits) and the audio context
// (the render loop), plus the derived-value recomputation that turns a
// NoteOscillatorConfig's base+LFO values into the wave.Config the audio
// rate oscillators consume.
package synthcfg

import (
	"github.com/voltlattice/ladderwave/internal/envelope"
	"github.com/voltlattice/ladderwave/internal/filter"
	"github.com/voltlattice/ladderwave/internal/wave"
)

// NoOscillator marks a NoteOscillatorConfig as not hard-synced to its
// sibling slot.
const NoOscillator = -1

// NoteOscillatorConfig extends wave.Config with the base values and LFO
// modulation depths the render loop recomputes every sample.
type NoteOscillatorConfig struct {
	WaveType  wave.Type
	Antialias bool

	WidthBase float32
	WidthLFO  float32

	FrequencyBase float32 // log2 octaves relative to the voice's key frequency
	FrequencyLFO  float32

	AmplitudeBase float32
	AmplitudeLFO  float32

	// SyncSource is NoOscillator, or the sibling oscillator slot (0 or 1)
	// whose cycle completions hard-reset this oscillator's phase.
	SyncSource int
}

// LFOOscillatorConfig configures the shared LFO. FrequencyBase is
// logarithmic (octaves) so the control context can step it in cents.
type LFOOscillatorConfig struct {
	WaveType      wave.Type
	Antialias     bool
	Width         float32
	FrequencyBase float32
	Amplitude     float32
}

// Patch is the full set of parameters the audio render loop reads every
// sample and the control context mutates on parameter edits.
type Patch struct {
	Oscillators [2]NoteOscillatorConfig
	LFO         LFOOscillatorConfig
	FilterEnv   envelope.Config
	VolumeEnv   envelope.Config
	Filter      filter.Config

	OutputScale       float32
	UseAntialias      bool
	KeyboardTimescale float32 // 2^octave_shift
}

// DefaultPatch returns a conservative starting patch: two sine oscillators,
// no filter, moderate envelopes, no LFO depth.
func DefaultPatch() Patch {
	osc := NoteOscillatorConfig{
		WaveType:      wave.Sine,
		Antialias:     true,
		AmplitudeBase: 1,
		SyncSource:    NoOscillator,
	}
	return Patch{
		Oscillators: [2]NoteOscillatorConfig{osc, osc},
		LFO: LFOOscillatorConfig{
			WaveType:      wave.Sine,
			Antialias:     true,
			FrequencyBase: 1, // ~2 Hz
		},
		FilterEnv: envelope.Config{AttackRate: 20, DecayRate: 4, SustainLevel: 1, ReleaseRate: 4},
		VolumeEnv: envelope.Config{AttackRate: 20, DecayRate: 4, SustainLevel: 1, ReleaseRate: 4},
		Filter:    filter.Config{Mode: filter.None},

		OutputScale:       1,
		UseAntialias:      true,
		KeyboardTimescale: 1,
	}
}

// Derive recomputes cfg's audio-rate width/frequency/amplitude from the
// oscillator's base values and the current LFO sample, per spec.md §3.
func Derive(osc NoteOscillatorConfig, lfo float32) wave.Config {
	freq := exp2(osc.FrequencyBase+osc.FrequencyLFO*lfo) * osc.WaveType.AdjustFrequency()
	return wave.Config{
		WaveType:  osc.WaveType,
		Width:     osc.WidthBase + osc.WidthLFO*lfo,
		Frequency: freq,
		Amplitude: osc.AmplitudeBase + osc.AmplitudeLFO*lfo,
		Antialias: osc.Antialias,
	}
}

// DeriveLFO builds the wave.Config for the LFO itself. Its FrequencyBase is
// logarithmic exactly like a note oscillator's, but it carries no LFO
// modulation of its own.
func DeriveLFO(cfg LFOOscillatorConfig) wave.Config {
	return wave.Config{
		WaveType:  cfg.WaveType,
		Width:     cfg.Width,
		Frequency: exp2(cfg.FrequencyBase),
		Amplitude: cfg.Amplitude,
		Antialias: cfg.Antialias,
	}
}
