//go:build nonlinearmoog

package filter

import "math"

// State is the Huovilainen Nonlinear-Moog ladder core, with a tanh
// saturator between every stage instead of only in the feedback path.
// Grounded in original_source/synth.cpp's FILTER_NONLINEAR_MOOG branch.
type State struct {
	y        [5]float32
	ytan     [4]float32
	feedback float32
	tune     float32
}

// Clear zeroes every stage output, saturator history, and coefficient.
func (s *State) Clear() { *s = State{} }

// Setup recomputes the tuning curve for a new cutoff/resonance pair.
func (s *State) Setup(cutoffHz, resonance, dt float32) {
	fn := float32(Oversample) * 0.5 / dt
	fc := cutoffHz / fn
	if fc > 1 {
		fc = 1
	}

	fcr := ((1.8730*fc+0.4955)*fc - 0.6490) * fc + 0.9988
	acr := (-3.9364*fc+1.8409)*fc + 0.9968

	s.feedback = 4 * resonance * acr
	s.tune = float32(1-math.Exp(-math.Pi*float64(fc*fcr))) * 1.22070313
}

// Update runs Oversample ladder iterations against input and returns the
// tapped output for mode. The stage-4 state s.y[4] always holds the raw
// ladder output, feeding the next iteration's and the next call's feedback
// path unmodified; only the value handed to tap is decimated by averaging
// the pre-call stage-4 output with the post-call one.
func (s *State) Update(mode Mode, input float32) float32 {
	if mode == None {
		return input
	}
	lastStage := s.y[4]
	for i := 0; i < Oversample; i++ {
		in := input - s.feedback*s.y[4]
		s.y[0] = in
		s.ytan[0] = fastTanh(0.8192 * s.y[0])
		s.y[1] += s.tune * (s.ytan[0] - s.ytan[1])
		s.ytan[1] = fastTanh(0.8192 * s.y[1])
		s.y[2] += s.tune * (s.ytan[1] - s.ytan[2])
		s.ytan[2] = fastTanh(0.8192 * s.y[2])
		s.y[3] += s.tune * (s.ytan[2] - s.ytan[3])
		s.ytan[3] = fastTanh(0.8192 * s.y[3])
		s.y[4] += s.tune * (s.ytan[3] - fastTanh(0.8192*s.y[4]))
	}

	output := s.y
	output[4] = 0.5 * (s.y[4] + lastStage)
	return tap(mode, output)
}
