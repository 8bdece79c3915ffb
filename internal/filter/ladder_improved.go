//go:build !nonlinearmoog

package filter

import "math"

// State is the Improved-Moog ladder core: a four-pole cascade of one-pole
// IIR stages with saturated global feedback. Grounded in
// original_source/synth.cpp's FILTER_IMPROVED_MOOG branch.
type State struct {
	y          [5]float32
	feedback   float32
	a1, b0, b1 float32
}

// Clear zeroes every stage output and coefficient, used on voice retrigger.
func (s *State) Clear() { *s = State{} }

// Setup recomputes the IIR coefficients for a new cutoff/resonance pair.
// cutoffHz and dt are both in the audio-rate domain; fc is the normalized
// cutoff clamped to the Nyquist of the oversampled rate.
func (s *State) Setup(cutoffHz, resonance, dt float32) {
	fn := float32(Oversample) * 0.5 / dt
	fc := cutoffHz / fn
	if fc > 1 {
		fc = 1
	}
	g := float32(1 - math.Exp(-math.Pi*float64(fc)))
	s.feedback = 4 * resonance
	s.a1 = g - 1
	s.b0 = g * 0.769231
	s.b1 = s.b0 * 0.3
}

// Update runs Oversample ladder iterations against input and returns the
// tapped output for mode. None bypasses the ladder entirely.
func (s *State) Update(mode Mode, input float32) float32 {
	if mode == None {
		return input
	}
	for i := 0; i < Oversample; i++ {
		in := input - s.feedback*(fastTanh(s.y[4])-0.5*input)
		t := s.y
		s.y[0] = in
		s.y[1] = s.b0*s.y[0] + s.b1*t[0] - s.a1*s.y[1]
		s.y[2] = s.b0*s.y[1] + s.b1*t[1] - s.a1*s.y[2]
		s.y[3] = s.b0*s.y[2] + s.b1*t[2] - s.a1*s.y[3]
		s.y[4] = s.b0*s.y[3] + s.b1*t[3] - s.a1*s.y[4]
	}
	return tap(mode, s.y)
}
