// Package engine implements the mixer/render loop (spec.md §4.H) and the
// voice allocation policy (§4.G/§4.J): it owns the fixed 24-voice array, the
// shared LFO, the active-voice list, and the process-wide Patch, and
// renders interleaved 16-bit stereo PCM on demand from the audio callback.
//
// The render path never locks or blocks: the Patch is read through an
// atomic.Pointer swap and per-voice gates through atomic.Bool, so the
// control context (UI/parameter edits, key events) never contends with the
// audio context for a lock. It does allocate: every Render call publishes a
// newly allocated Display, and the per-sample LFO and oscillator configs
// handed to the waveform generators escape to the heap.
package engine

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath/cpu"

	"github.com/voltlattice/ladderwave/internal/envelope"
	"github.com/voltlattice/ladderwave/internal/filter"
	"github.com/voltlattice/ladderwave/internal/noise"
	"github.com/voltlattice/ladderwave/internal/synthcfg"
	"github.com/voltlattice/ladderwave/internal/voice"
	"github.com/voltlattice/ladderwave/internal/wave"
)

// Display is a read-only snapshot of engine state for the UI collaborator
// (spectrum/waveform/meter rendering, out of scope here) and is refreshed
// once per Render call.
type Display struct {
	LFO           float32
	EnvelopeState [NumVoices]envelope.State
	MostRecentKey int
	Oscillators   [2]synthcfg.NoteOscillatorConfig
	LFOConfig     synthcfg.LFOOscillatorConfig
}

// Engine owns every piece of process-duration state described by spec.md §3.
type Engine struct {
	sampleRate float32
	tables     *noise.Tables
	osc        wave.Oscillator

	patch atomic.Pointer[synthcfg.Patch]
	gates [NumVoices]atomic.Bool

	voices   [NumVoices]voice.Voice
	active   [NumVoices]int
	lfoState wave.State

	mostRecentKey atomic.Int32
	display       atomic.Pointer[Display]

	cpuFeatures cpu.Features
}

// CPUFeatures reports the vector instruction sets detected at startup,
// informational only: the render loop's inner math is scalar, matching
// the teacher's single render path rather than a dispatched SIMD kernel.
func (e *Engine) CPUFeatures() cpu.Features { return e.cpuFeatures }

// NewEngine allocates the noise tables and voice array once, at startup.
func NewEngine(sampleRate float32) *Engine {
	e := &Engine{
		sampleRate:  sampleRate,
		tables:      noise.NewTables(),
		cpuFeatures: cpu.DetectFeatures(),
	}
	e.osc = wave.NewOscillator(e.tables)
	patch := synthcfg.DefaultPatch()
	e.patch.Store(&patch)
	e.display.Store(&Display{})
	return e
}

// SetPatch replaces the whole process-wide configuration atomically. Safe
// to call from the control context at any time.
func (e *Engine) SetPatch(p synthcfg.Patch) {
	e.patch.Store(&p)
}

// Patch returns the currently active configuration. Intended for the
// control context (parameter-update helpers read-modify-write through
// this), not the audio path.
func (e *Engine) Patch() synthcfg.Patch {
	return *e.patch.Load()
}

// SetGate requests a gate edge for voice k. Safe to call from the control
// context without coordinating with the audio context; the render loop
// picks up the new value at the start of its next call, so delivery
// latency of up to one audio block is expected and acceptable.
func (e *Engine) SetGate(k int, down bool) {
	if k < 0 || k >= NumVoices {
		return
	}
	e.gates[k].Store(down)
}

// Snapshot returns the most recently published Display state.
func (e *Engine) Snapshot() Display {
	return *e.display.Load()
}

// dt is the sample interval in seconds for the engine's configured rate.
func (e *Engine) dt() float32 { return 1 / e.sampleRate }

// applyGateEdges compares each voice's recorded gate against the
// control-context request and drives the ATTACK/RELEASE transition for any
// that changed since the last call.
func (e *Engine) applyGateEdges() {
	for k := range e.voices {
		want := e.gates[k].Load()
		if want == e.voices[k].Gated() {
			continue
		}
		if e.voices[k].Gate(want) {
			e.mostRecentKey.Store(int32(k))
		}
	}
}

// buildActive scans every voice and returns the number of active entries
// written into e.active.
func (e *Engine) buildActive() int {
	n := 0
	for k := range e.voices {
		if e.voices[k].Active() {
			e.active[n] = k
			n++
		}
	}
	return n
}

// Render fills buf with count interleaved stereo 16-bit little-endian PCM
// samples (so len(buf) must be 4*count) and publishes a fresh Display
// snapshot. It is the sole entry point for the audio callback; it is not
// allocation-free (see the package comment).
func (e *Engine) Render(buf []byte, count int) {
	patch := e.patch.Load()
	dt := e.dt()

	e.applyGateEdges()
	activeCount := e.buildActive()

	if activeCount == 0 {
		for i := range buf[:4*count] {
			buf[i] = 0
		}
		lfo := e.osc.Update(derivedLFOConfig(patch.LFO), 1, dt*float32(count), &e.lfoState, nil)
		e.publishDisplay(patch, lfo)
		return
	}

	var lfo float32
	for c := 0; c < count; c++ {
		lfoCfg := derivedLFOConfig(patch.LFO)
		lfo = e.osc.Update(lfoCfg, 1, dt, &e.lfoState, nil)

		oscCfgs := [2]wave.Config{
			synthcfg.Derive(patch.Oscillators[0], lfo),
			synthcfg.Derive(patch.Oscillators[1], lfo),
		}
		syncSources := [2]int{patch.Oscillators[0].SyncSource, patch.Oscillators[1].SyncSource}

		var sample float32
		for i := 0; i < activeCount; i++ {
			k := e.active[i]
			v := &e.voices[k]

			keyFreq := keyFrequency[k] * patch.KeyboardTimescale

			fltEnvVal := v.FilterEnv.Update(patch.FilterEnv, dt)
			volEnvVal := v.VolumeEnv.Update(patch.VolumeEnv, dt)

			if !v.Active() {
				activeCount--
				e.active[i] = e.active[activeCount]
				i--
				continue
			}

			osc := voice.OscillatorOutput(e.osc, oscCfgs, syncSources, keyFreq, dt, &v.Oscillators)

			var flt float32
			if patch.Filter.Mode == filter.None {
				flt = osc
			} else {
				cutoff := keyFreq * synthcfg.Exp2(patch.Filter.CutoffBase+patch.Filter.CutoffLFO*lfo+patch.Filter.CutoffEnv*fltEnvVal)
				v.Filter.Setup(cutoff, patch.Filter.Resonance, dt)
				flt = v.Filter.Update(patch.Filter.Mode, osc)
			}

			sample += flt * volEnvVal
		}

		out := int16(clampSample(fastTanhMix(float64(sample*patch.OutputScale))) * 32767)
		lo, hi := byte(out), byte(out>>8)
		buf[4*c+0], buf[4*c+1] = lo, hi
		buf[4*c+2], buf[4*c+3] = lo, hi
	}

	e.publishDisplay(patch, lfo)
}

func (e *Engine) publishDisplay(patch *synthcfg.Patch, lfo float32) {
	d := &Display{
		LFO:           lfo,
		MostRecentKey: int(e.mostRecentKey.Load()),
		Oscillators:   patch.Oscillators,
		LFOConfig:     patch.LFO,
	}
	for k := range e.voices {
		d.EnvelopeState[k] = e.voices[k].VolumeEnv.State()
	}
	e.display.Store(d)
}

func fastTanhMix(x float64) float64 { return math.Tanh(x) }

func clampSample(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}

func derivedLFOConfig(cfg synthcfg.LFOOscillatorConfig) *wave.Config {
	c := synthcfg.DeriveLFO(cfg)
	return &c
}
