package wave

import "math"

// sinLUT is a linearly-interpolated 8192-step lookup table over one full
// turn, grounded on the teacher's audio_lut.go fastSin;
// adapted here to take a phase already normalized to [0,1) turns rather
// than radians, since every oscillator in this package already carries
// state.Phase in that domain.
const sinLUTSize = 8192

var sinLUT [sinLUTSize + 1]float32

func init() {
	for i := 0; i <= sinLUTSize; i++ {
		turns := float64(i) / float64(sinLUTSize)
		sinLUT[i] = float32(math.Sin(2 * math.Pi * turns))
	}
}

// fastSin returns sin(2*pi*turns) via the precomputed table, wrapping turns
// into [0,1) first.
func fastSin(turns float32) float32 {
	turns -= float32(math.Floor(float64(turns)))
	indexF := turns * sinLUTSize
	index := int(indexF)
	frac := indexF - float32(index)
	return sinLUT[index] + frac*(sinLUT[index+1]-sinLUT[index])
}
