package engine

import "github.com/voltlattice/ladderwave/internal/synthcfg"

// NumVoices is K, the fixed polyphony ceiling of spec.md §3.
const NumVoices = 24

// keyFrequency is the precomputed 24-entry keyboard frequency table:
// freq[k] = 2^((k+3)/12) * 220, so key 9 (A above middle C) is 440 Hz.
var keyFrequency = buildKeyFrequency()

func buildKeyFrequency() [NumVoices]float32 {
	var f [NumVoices]float32
	for k := range f {
		f[k] = synthcfg.Exp2(float32(k+3)/12) * 220
	}
	return f
}
