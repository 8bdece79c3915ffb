package engine

import (
	"math"
	"testing"

	"github.com/voltlattice/ladderwave/internal/noise"
	"github.com/voltlattice/ladderwave/internal/synthcfg"
	"github.com/voltlattice/ladderwave/internal/wave"
)

const sampleRate = 48000

func newTestPatch() synthcfg.Patch {
	p := synthcfg.DefaultPatch()
	p.Oscillators[1].AmplitudeBase = 0 // single oscillator for clean measurement
	return p
}

// TestSineGateScenario is scenario S1: a sine voice held for 1s should
// read RMS ~= 1/sqrt(2), peak ~= 1, and negligible DC offset.
func TestSineGateScenario(t *testing.T) {
	eng := NewEngine(sampleRate)
	patch := newTestPatch()
	eng.SetPatch(patch)
	eng.SetGate(0, true)

	const count = sampleRate
	buf := make([]byte, 4*count)
	eng.Render(buf, count)

	var sumSq, sum float64
	var peak float32
	for i := 0; i < count; i++ {
		s := int16(buf[4*i]) | int16(buf[4*i+1])<<8
		v := float32(s) / 32767
		sumSq += float64(v) * float64(v)
		sum += float64(v)
		if abs32(v) > peak {
			peak = abs32(v)
		}
	}
	rms := math.Sqrt(sumSq / float64(count))
	dc := sum / float64(count)

	t.Logf("rms=%v peak=%v dc=%v", rms, peak, dc)
	if diff := rms - 1/math.Sqrt2; diff > 0.05 || diff < -0.05 {
		t.Errorf("rms=%v, want ~%v", rms, 1/math.Sqrt2)
	}
	if peak < 0.9 {
		t.Errorf("peak=%v, want close to 1", peak)
	}
	if dc > 1e-2 || dc < -1e-2 {
		t.Errorf("dc offset=%v, want near 0", dc)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// TestGateLatencyBound checks that a gate request is applied no later
// than the start of the render call following the request, matching the
// one-block latency bound of the gate interface.
func TestGateLatencyBound(t *testing.T) {
	eng := NewEngine(sampleRate)
	if eng.voices[0].Active() {
		t.Fatal("voice should start inactive")
	}
	eng.SetGate(0, true)

	buf := make([]byte, 4*64)
	eng.Render(buf, 64)
	if !eng.voices[0].Active() {
		t.Fatal("voice should be active after one render call following SetGate")
	}
}

// TestActiveVoiceReapedOnRelease checks that a voice is removed from the
// active list once its volume envelope reaches Off.
func TestActiveVoiceReapedOnRelease(t *testing.T) {
	eng := NewEngine(sampleRate)
	patch := newTestPatch()
	patch.VolumeEnv.AttackRate = 10000
	patch.VolumeEnv.ReleaseRate = 10000
	patch.VolumeEnv.SustainLevel = 1
	eng.SetPatch(patch)

	eng.SetGate(0, true)
	buf := make([]byte, 4*64)
	eng.Render(buf, 64)
	if !eng.voices[0].Active() {
		t.Fatal("voice should be active after attack")
	}

	eng.SetGate(0, false)
	for i := 0; i < 100; i++ {
		eng.Render(buf, 64)
		if !eng.voices[0].Active() {
			return
		}
	}
	t.Fatal("voice never reaped after a fast release")
}

// TestPoly17RealignsAfterFullPeriod is scenario S4: a Poly17 oscillator
// held at a fixed frequency must return its table index and phase to
// their starting values every 131071 of its own cycles.
func TestPoly17RealignsAfterFullPeriod(t *testing.T) {
	const period = 131071
	tables := noise.NewTables()
	osc := wave.NewOscillator(tables)
	freq := keyFrequency[0]
	cfg := &wave.Config{WaveType: wave.Poly17, Frequency: freq, Amplitude: 1, Antialias: false}
	state := &wave.State{}
	// delta = cfg.Frequency*1*dt = 0.5, the largest step the generators do
	// not silence, so the table index advances by 1 every second call.
	dt := 0.5 / freq

	// The first call reads index 0; every later call first applies the
	// previous call's whole-cycle advance, so after this call a full
	// period is 2*period further calls.
	osc.Update(cfg, 1, dt, state, nil)
	for i := 0; i < 2*period; i++ {
		osc.Update(cfg, 1, dt, state, nil)
	}
	if state.Index != 0 {
		t.Errorf("after a full poly17 period, index=%v, want 0", state.Index)
	}
	if state.Phase < 0 || state.Phase >= 1 {
		t.Errorf("phase out of [0,1): %v", state.Phase)
	}
}
