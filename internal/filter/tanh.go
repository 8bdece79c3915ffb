package filter

import "math"

// tanhLUT is a linearly-interpolated lookup table covering the input range
// where tanh hasn't already saturated; grounded on the teacher's
// audio_lut.go fastTanh, reused here for the per-stage saturation of the
// Nonlinear-Moog core and the global feedback saturation of both cores.
const (
	tanhLUTSize = 4096
	tanhLUTMin  = float32(-4.0)
	tanhLUTMax  = float32(4.0)
)

var (
	tanhLUT      [tanhLUTSize]float32
	tanhLUTScale = float32(tanhLUTSize-1) / (tanhLUTMax - tanhLUTMin)
)

func init() {
	for i := 0; i < tanhLUTSize; i++ {
		x := float64(tanhLUTMin) + float64(i)*float64(tanhLUTMax-tanhLUTMin)/float64(tanhLUTSize-1)
		tanhLUT[i] = float32(math.Tanh(x))
	}
}

// fastTanh returns tanh(x) via the precomputed table, clamped to ±1 past
// the table's domain (tanh is already indistinguishable from ±1 there).
func fastTanh(x float32) float32 {
	if x <= tanhLUTMin {
		return -1
	}
	if x >= tanhLUTMax {
		return 1
	}
	indexF := (x - tanhLUTMin) * tanhLUTScale
	index := int(indexF)
	frac := indexF - float32(index)
	if index >= tanhLUTSize-1 {
		return tanhLUT[tanhLUTSize-1]
	}
	return tanhLUT[index] + frac*(tanhLUT[index+1]-tanhLUT[index])
}
