// Package voice bundles the per-key state needed to render one simultaneous
// note: two oscillator phase accumulators, the filter and volume envelopes,
// the ladder filter state, and the current gate.
package voice

import (
	"github.com/voltlattice/ladderwave/internal/envelope"
	"github.com/voltlattice/ladderwave/internal/filter"
	"github.com/voltlattice/ladderwave/internal/wave"
)

// Voice is one of the fixed K=24 polyphonic voice slots.
type Voice struct {
	Oscillators [2]wave.State
	FilterEnv   envelope.Generator
	VolumeEnv   envelope.Generator
	Filter      filter.State
	gate        bool
}

// Active reports whether the voice's volume envelope has left Off; it is
// the sole criterion the render loop uses to decide whether a voice still
// occupies a slot in the active-index list.
func (v *Voice) Active() bool { return v.VolumeEnv.Active() }

// Gate applies a rising or falling gate edge to both envelopes. A rising
// edge on a voice whose volume envelope was Off additionally resets both
// oscillator phase accumulators and clears the filter state, per §4.G.
// It returns true when that reset happened, so the caller can record the
// voice as most-recently-triggered for the display collaborator.
func (v *Voice) Gate(down bool) (retriggered bool) {
	wasOff := !v.VolumeEnv.Active()
	if down && wasOff {
		v.Oscillators[0].Reset()
		v.Oscillators[1].Reset()
		v.Filter.Clear()
		retriggered = true
	}
	v.gate = down
	v.FilterEnv.Gate(down)
	v.VolumeEnv.Gate(down)
	return retriggered
}

// Gated reports the last gate value applied via Gate.
func (v *Voice) Gated() bool { return v.gate }

// OscillatorOutput advances both of the voice's oscillators by one sample
// and returns their sum, honoring hard sync between slot 0 and slot 1 as
// configured per-oscillator.
func OscillatorOutput(osc wave.Oscillator, cfgs [2]wave.Config, syncSource [2]int, frequencyScale, dt float32, states *[2]wave.State) float32 {
	var synced [2]*wave.State
	for i, src := range syncSource {
		if src == 0 || src == 1 {
			synced[i] = &states[src]
		}
	}

	var sum float32
	for i := range states {
		sum += osc.Update(&cfgs[i], frequencyScale, dt, &states[i], synced[i])
	}
	return sum
}
