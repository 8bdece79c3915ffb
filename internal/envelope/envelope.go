// Package envelope implements the four-stage ADSR state machine shared by
// every voice's filter and volume envelopes.
package envelope

import "math"

// State enumerates the envelope's lifecycle stages.
type State int

const (
	Off State = iota
	Attack
	Decay
	Sustain
	Release
)

// attackBias and decayBias bias the exponential-approach target so the
// curve reaches its boundary in finite time instead of asymptotically.
var (
	attackBias = float32(1/(1-math.Exp(-1)) - 1) // ~0.582
	decayBias  = float32(1 - 1/(1-math.Exp(-3))) // ~-0.0524
)

// Config holds the per-second rate coefficients and sustain level for one
// envelope. Rates are exponential-approach coefficients, not durations.
type Config struct {
	AttackRate   float32
	DecayRate    float32
	SustainLevel float32
	ReleaseRate  float32
}

// Generator tracks one envelope's runtime state. After Update, state == Off
// implies amplitude == 0, and amplitude == 0 implies state == Off except
// with a SustainLevel of 0, where Decay ends in Sustain at amplitude 0 and
// stays there until the gate is released.
type Generator struct {
	gate      bool
	state     State
	amplitude float32
}

// State returns the current lifecycle stage.
func (g *Generator) State() State { return g.state }

// Amplitude returns the current output level, in [0, 1].
func (g *Generator) Amplitude() float32 { return g.amplitude }

// Active reports whether the envelope has left the Off state.
func (g *Generator) Active() bool { return g.state != Off }

// Gate applies a rising or falling gate edge. A rising edge always moves to
// Attack; a falling edge moves to Release. Redundant edges (gate already at
// the requested level) are no-ops, matching the external, edge-triggered
// contract of §4.E.
func (g *Generator) Gate(down bool) {
	if down == g.gate {
		return
	}
	g.gate = down
	if down {
		g.state = Attack
	} else if g.state != Off {
		g.state = Release
	}
}

// Reset forces the envelope back to Off with zero amplitude, outside the
// normal gate-driven lifecycle. Nothing in this module calls it.
func (g *Generator) Reset() {
	*g = Generator{}
}

// Update advances the envelope by dt seconds and returns the new amplitude.
func (g *Generator) Update(cfg Config, dt float32) float32 {
	switch g.state {
	case Attack:
		target := 1 + attackBias
		g.amplitude += (target - g.amplitude) * cfg.AttackRate * dt
		if g.amplitude >= 1 {
			g.amplitude = 1
			if cfg.SustainLevel < 1 {
				g.state = Decay
			} else {
				g.state = Sustain
			}
		}

	case Decay:
		target := cfg.SustainLevel + (1-cfg.SustainLevel)*decayBias
		g.amplitude += (target - g.amplitude) * cfg.DecayRate * dt
		if g.amplitude <= cfg.SustainLevel {
			g.amplitude = cfg.SustainLevel
			g.state = Sustain
		}

	case Sustain:
		// amplitude held at cfg.SustainLevel; gate release drives the Release
		// transition externally via Gate(false).

	case Release:
		target := decayBias
		rate := cfg.ReleaseRate
		if g.amplitude >= cfg.SustainLevel && cfg.DecayRate >= cfg.ReleaseRate {
			rate = cfg.DecayRate
		}
		g.amplitude += (target - g.amplitude) * rate * dt
		if g.amplitude <= 0 {
			g.amplitude = 0
			g.state = Off
		}
	}

	return g.amplitude
}
