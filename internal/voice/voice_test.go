package voice

import (
	"testing"

	"github.com/voltlattice/ladderwave/internal/noise"
	"github.com/voltlattice/ladderwave/internal/wave"
)

func TestGateRetriggerResetsState(t *testing.T) {
	var v Voice
	v.Oscillators[0].Phase = 0.5
	v.Oscillators[1].Index = 7
	v.Filter.Clear() // already clear, but exercises the call path

	if retriggered := v.Gate(false); retriggered {
		t.Fatal("gate-off on an inactive voice should not retrigger")
	}

	if retriggered := v.Gate(true); !retriggered {
		t.Fatal("gate-on from Off should retrigger")
	}
	if v.Oscillators[0].Phase != 0 || v.Oscillators[1].Index != 0 {
		t.Error("retrigger must reset both oscillator states")
	}

	if retriggered := v.Gate(true); retriggered {
		t.Error("redundant gate-on should not retrigger again")
	}
}

func TestHardSyncResetsSlaveOnMasterCycle(t *testing.T) {
	tables := noise.NewTables()
	osc := wave.NewOscillator(tables)

	cfgs := [2]wave.Config{
		{WaveType: wave.Sine, Frequency: 1000, Amplitude: 1},
		{WaveType: wave.Sine, Frequency: 10, Amplitude: 1},
	}
	syncSource := [2]int{-1, 0} // slot 1 syncs from slot 0
	var states [2]wave.State
	states[0].Phase = 0.99 // guarantees a cycle crossing this sample
	states[1].Phase = 0.9

	OscillatorOutput(osc, cfgs, syncSource, 1, 1.0/48000, &states)

	if states[0].Advance == 0 {
		t.Fatal("expected master oscillator to cross a cycle boundary")
	}
	// Phase was forced to 0 before this sample's own advance, so it should
	// be near zero rather than the 0.9-plus-delta it would reach unsynced.
	if states[1].Phase > 0.01 {
		t.Errorf("slave phase after master cycle crossing = %v, want near 0", states[1].Phase)
	}
}
