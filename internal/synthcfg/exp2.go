package synthcfg

import "math"

// Exp2 returns 2^octaves in float32, the common log-frequency-to-linear
// conversion used throughout the patch (oscillator and filter cutoff).
func Exp2(octaves float32) float32 {
	return float32(math.Exp2(float64(octaves)))
}

func exp2(octaves float32) float32 { return Exp2(octaves) }
