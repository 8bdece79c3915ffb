package wave

import (
	"math"

	"github.com/voltlattice/ladderwave/internal/noise"
)

// generator computes one sample of a waveform. Non-table-driven waves
// ignore tables. Implementations must not touch state.Phase.
type generator func(cfg *Config, tables *noise.Tables, state *State, step float32) float32

var generators = [typeCount]generator{
	Sine:        sineGen,
	Pulse:       pulseGen,
	Sawtooth:    sawtoothGen,
	Triangle:    triangleGen,
	Noise:       noiseGen,
	Poly4:       poly4Gen,
	Poly5:       poly5Gen,
	Poly17:      poly17Gen,
	PulsePoly5:  pulsePoly5Gen,
	Poly4Poly5:  poly4Poly5Gen,
	Poly17Poly5: poly17Poly5Gen,
}

// Compute dispatches to the generator selected by cfg.WaveType.
func Compute(cfg *Config, tables *noise.Tables, state *State, step float32) float32 {
	return generators[cfg.WaveType](cfg, tables, state, step)
}

func sineGen(cfg *Config, _ *noise.Tables, state *State, step float32) float32 {
	if step > 0.5 {
		return 0
	}
	return fastSin(state.Phase)
}

func pulseGen(cfg *Config, _ *noise.Tables, state *State, step float32) float32 {
	if step > 0.5 {
		return 0
	}
	phase, width := state.Phase, cfg.Width
	var v float32 = -1
	if phase < width {
		v = 1
	}
	if !cfg.Antialias {
		return v
	}
	w := step * 1.5
	if w > 1 {
		w = 1
	}
	// rising edge at phase=0 (current cycle and the one ahead)
	v += PolyBLEP(phase, w)
	v += PolyBLEP(phase-1, w)
	// falling edge at phase=width (current cycle and its neighbors both ways)
	v -= PolyBLEP(phase-width, w)
	v -= PolyBLEP(phase-width+1, w)
	v -= PolyBLEP(phase-width-1, w)
	return v
}

func sawtoothGen(cfg *Config, _ *noise.Tables, state *State, step float32) float32 {
	if step > 0.5 {
		return 0
	}
	phase := state.Phase
	v := 1 - 2*phase
	if !cfg.Antialias {
		return v
	}
	w := step
	if w > 1 {
		w = 1
	}
	v += PolyBLEP(phase, w)
	v += PolyBLEP(phase-1, w)
	return v
}

func triangleGen(cfg *Config, _ *noise.Tables, state *State, step float32) float32 {
	if step > 0.5 {
		return 0
	}
	phase := state.Phase
	v := absf(2-absf(4*phase-1)) - 1
	if !cfg.Antialias {
		return v
	}
	w := step
	if w > 1 {
		w = 1
	}
	// corners at the rising peak (phase=0.25) and falling trough (phase=0.75),
	// each checked against its neighbor-cycle copy for the wrap-around case.
	v -= 4 * step * IntegratedPolyBLEP(phase-0.25, w)
	v -= 4 * step * IntegratedPolyBLEP(phase+0.75, w)
	v += 4 * step * IntegratedPolyBLEP(phase-0.75, w)
	v += 4 * step * IntegratedPolyBLEP(phase-1.75, w)
	return v
}

// gSeed is the fixed-seed xorshift32 state shared by every Noise oscillator
// on the audio thread, making the noise stream deterministic across runs.
var gSeed uint32 = 0x2545F491

func xorshift32() uint32 {
	gSeed ^= gSeed << 13
	gSeed ^= gSeed >> 17
	gSeed ^= gSeed << 5
	return gSeed
}

func noiseGen(cfg *Config, _ *noise.Tables, state *State, step float32) float32 {
	if step > 0.5 {
		return 0
	}
	return 2*(float32(xorshift32())/float32(math.MaxUint32)) - 1
}

func absf(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// polyGen is the shared implementation for every table-driven wave: it
// advances the table index by the cycles crossed since the last call, emits
// the table's current value, and (when anti-aliasing) scans the neighboring
// table entries for transitions to band-limit them with PolyBLEP.
func polyGen(table noise.Table, cfg *Config, state *State, step float32) float32 {
	if step > 0.5 {
		return 0
	}
	cycle := len(table)
	if cycle == 0 {
		return 0
	}
	state.Index = ((state.Index+state.Advance)%cycle + cycle) % cycle
	state.Advance = 0
	v := table[state.Index]
	if !cfg.Antialias {
		return v
	}
	w := step * 1.5
	if w > 8 {
		w = 8
	}
	span := int(w) + 2
	for o := -span; o <= span; o++ {
		// the step into entry Index+o lies o cycles after the start of the
		// current entry, so the sample sits Phase-o cycles past it
		idxNew := ((state.Index+o)%cycle + cycle) % cycle
		idxOld := ((state.Index+o-1)%cycle + cycle) % cycle
		vNew, vOld := table[idxNew], table[idxOld]
		if vNew == vOld {
			continue
		}
		v += 0.5 * (vNew - vOld) * PolyBLEP(state.Phase-float32(o), w)
	}
	return v
}

func poly4Gen(cfg *Config, tables *noise.Tables, state *State, step float32) float32 {
	return polyGen(tables.Poly4, cfg, state, step)
}

func poly5Gen(cfg *Config, tables *noise.Tables, state *State, step float32) float32 {
	return polyGen(tables.Poly5, cfg, state, step)
}

func poly17Gen(cfg *Config, tables *noise.Tables, state *State, step float32) float32 {
	return polyGen(tables.Poly17, cfg, state, step)
}

func pulsePoly5Gen(cfg *Config, tables *noise.Tables, state *State, step float32) float32 {
	return polyGen(tables.PulsePoly5, cfg, state, step)
}

func poly4Poly5Gen(cfg *Config, tables *noise.Tables, state *State, step float32) float32 {
	return polyGen(tables.Poly4Poly5, cfg, state, step)
}

func poly17Poly5Gen(cfg *Config, tables *noise.Tables, state *State, step float32) float32 {
	return polyGen(tables.Poly17Poly5, cfg, state, step)
}
