package wave

import (
	"testing"

	"github.com/voltlattice/ladderwave/internal/noise"
)

func TestGeneratorsBoundedAndSilentAboveNyquist(t *testing.T) {
	tables := noise.NewTables()
	const eps = 0.1

	for wt := Sine; wt < typeCount; wt++ {
		cfg := &Config{WaveType: wt, Width: 0.5, Amplitude: 1, Antialias: true}
		state := &State{}

		t.Logf("wave type %d: bounded output for step <= 0.5", wt)
		for phase := float32(0); phase < 1; phase += 0.05 {
			state.Phase = phase
			v := Compute(cfg, tables, state, 0.3)
			if v > 1+eps || v < -1-eps {
				t.Errorf("type %d phase %v: |v|=%v exceeds 1+eps", wt, phase, v)
			}
		}

		t.Logf("wave type %d: silent for step > 0.5", wt)
		state.Phase = 0.25
		if v := Compute(cfg, tables, state, 0.6); v != 0 {
			t.Errorf("type %d: step>0.5 produced %v, want 0", wt, v)
		}
	}
}

func TestOscillatorPhaseInvariant(t *testing.T) {
	tables := noise.NewTables()
	osc := NewOscillator(tables)
	cfg := &Config{WaveType: Sawtooth, Frequency: 261.6, Amplitude: 1, Antialias: true}
	state := &State{}

	t.Log("phase must stay in [0, 1) across many updates, including negative deltas")
	for i := 0; i < 10000; i++ {
		osc.Update(cfg, 1, 1.0/48000, state, nil)
		if state.Phase < 0 || state.Phase >= 1 {
			t.Fatalf("iteration %d: phase=%v out of [0,1)", i, state.Phase)
		}
	}

	cfg.Frequency = -1000
	for i := 0; i < 1000; i++ {
		osc.Update(cfg, 1, 1.0/48000, state, nil)
		if state.Phase < 0 || state.Phase >= 1 {
			t.Fatalf("negative delta iteration %d: phase=%v out of [0,1)", i, state.Phase)
		}
	}
}

// TestPulseWidthSweep is scenario S3: a pulse oscillator held at a fixed
// width should read as a DC level, and that level should track 2*width-1
// exactly at the extremes where no anti-alias transition windows overlap.
func TestPulseWidthSweep(t *testing.T) {
	tables := noise.NewTables()
	osc := NewOscillator(tables)

	for _, width := range []float32{1, 0} {
		cfg := &Config{WaveType: Pulse, Width: width, Frequency: 0, Amplitude: 1, Antialias: false}
		state := &State{}
		v := osc.Update(cfg, 1, 0, state, nil)
		want := 2*width - 1
		if v != want {
			t.Errorf("width=%v: v=%v want=%v", width, v, want)
		}
	}
}
