package wave

import (
	"math"
	"testing"

	algofft "github.com/cwbudde/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"

	"github.com/voltlattice/ladderwave/internal/noise"
)

// TestSawtoothAntialiasSpectrum is scenario S2: a band-limited sawtooth at
// 220Hz must have no spectral component above Nyquist/2 exceeding -40dB
// relative to the fundamental.
func TestSawtoothAntialiasSpectrum(t *testing.T) {
	const sampleRate = 48000
	const fftSize = 16384
	const freq = 220

	tables := noise.NewTables()
	osc := NewOscillator(tables)
	cfg := &Config{WaveType: Sawtooth, Frequency: freq, Amplitude: 1, Antialias: true}
	state := &State{}

	signal := make([]float64, fftSize)
	for i := range signal {
		signal[i] = float64(osc.Update(cfg, 1, 1.0/sampleRate, state, nil))
	}

	coeffs := window.Generate(window.TypeHann, fftSize)
	in := make([]complex128, fftSize)
	for i, v := range signal {
		in[i] = complex(v*coeffs[i], 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		t.Fatalf("NewPlan64: %v", err)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		t.Fatalf("Forward: %v", err)
	}

	binHz := func(bin int) float64 { return float64(bin) * sampleRate / fftSize }
	magAt := func(bin int) float64 { return math.Hypot(real(out[bin]), imag(out[bin])) }

	fundamentalBin := int(float64(freq) * fftSize / sampleRate)
	fundamentalMag := magAt(fundamentalBin)
	if fundamentalMag == 0 {
		t.Fatal("zero magnitude at fundamental, cannot measure spectrum")
	}

	nyquistHalf := sampleRate / 4
	for bin := fundamentalBin * 2; bin < fftSize/2; bin++ {
		if binHz(bin) > float64(nyquistHalf) {
			break
		}
		mag := magAt(bin)
		db := 20 * math.Log10(mag/fundamentalMag)
		if db > -40 {
			t.Errorf("bin %v (%.0fHz): %.1fdB above fundamental, want <= -40dB", bin, binHz(bin), db)
		}
	}
}
