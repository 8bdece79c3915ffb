package wave

// PolyBLEP returns the polynomial band-limited step correction for a
// discontinuity t phase-units away, with half-width w. It is zero outside
// [-w, w] and odd: PolyBLEP(-t, w) == -PolyBLEP(t, w).
//
// Grounded on the teacher's polyBLEP32 (audio_lut.go), generalized from a
// fixed dt-wide support to an explicit half-width so it can be reused both
// at the two-sided discontinuities of Pulse/Sawtooth and at the wider
// scanning window the Poly generators need.
func PolyBLEP(t, w float32) float32 {
	if t == 0 || t >= w || t <= -w {
		return 0
	}
	tau := t / w
	if tau > 0 {
		return 2*tau - tau*tau - 1
	}
	return tau*tau + 2*tau + 1
}

// IntegratedPolyBLEP is the antiderivative form used to band-limit the
// slope discontinuities of Triangle.
func IntegratedPolyBLEP(t, w float32) float32 {
	if t == 0 || t >= w || t <= -w {
		return 0
	}
	tau := t / w
	if tau > 0 {
		return (1.0/3 - tau + tau*tau - tau*tau*tau/3) * 4 * w
	}
	return (1.0/3 + tau + tau*tau + tau*tau*tau/3) * 4 * w
}
