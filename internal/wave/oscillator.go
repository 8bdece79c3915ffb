package wave

import (
	"math"

	"github.com/voltlattice/ladderwave/internal/noise"
)

// Oscillator is a stateless phase accumulator bound to a shared noise table
// set; State carries everything per-voice.
type Oscillator struct {
	Tables *noise.Tables
}

// NewOscillator returns an Oscillator sharing the given noise tables. The
// tables are never mutated, so a single instance may back every voice.
func NewOscillator(tables *noise.Tables) Oscillator {
	return Oscillator{Tables: tables}
}

// Update advances state by one sample and returns the oscillator's output.
// frequencyScale multiplies cfg.Frequency (the voice's key frequency for a
// note oscillator, or 1 for the LFO). syncedFrom, when non-nil, is the
// sibling oscillator's state in the same voice; whenever it completed a
// cycle on its last Update, this oscillator's phase is forced to zero
// before the sample is computed (hard sync).
func (o Oscillator) Update(cfg *Config, frequencyScale float32, dt float32, state *State, syncedFrom *State) float32 {
	if syncedFrom != nil && syncedFrom.Advance != 0 {
		state.Phase = 0
	}

	delta := cfg.Frequency * frequencyScale * dt

	value := cfg.Amplitude * Compute(cfg, o.Tables, state, delta)

	newPhase := float64(state.Phase) + float64(delta)
	advance := math.Floor(newPhase)
	state.Advance = int(advance)
	state.Phase = float32(newPhase - advance)

	return value
}
