// Package noise builds the precomputed LFSR bit tables used by the POKEY-style
// table-driven wave generators (Poly4, Poly5, Poly17, and their poly5-clocked
// composites). Tables are generated once at startup and never mutated
// afterward, so they are safe to share across voices without locking.
package noise

// Table holds a generator's output sequence, already mapped to ±1.
type Table []float32

// Tables bundles every table the wave generators need, built once per
// process and shared by every oscillator on the audio thread.
type Tables struct {
	Poly4       Table
	Poly5       Table
	Poly17      Table
	PulsePoly5  Table
	Poly4Poly5  Table
	Poly17Poly5 Table
}

// lfsr bits (not yet mapped to ±1), used both standalone and to drive the
// composite tables.
type bits []int

// NewTables builds every noise table from scratch. It allocates; callers must
// only invoke it during setup, never from the audio render path.
func NewTables() *Tables {
	poly4Bits := galois(4, 1, 0xF, false)
	poly5Bits := galois(5, 2, 0x1F, true)
	poly17Bits := galois(17, 5, 0x1FFFF, false)

	return &Tables{
		Poly4:       poly4Bits.toSigned(),
		Poly5:       poly5Bits.toSigned(),
		Poly17:      poly17Bits.toSigned(),
		PulsePoly5:  pulsePoly5(poly5Bits),
		Poly4Poly5:  samplePoly5(poly5Bits, poly4Bits),
		Poly17Poly5: samplePoly5(poly5Bits, poly17Bits),
	}
}

// galois runs the Galois-style LFSR recurrence from a given seed until the
// state returns to the seed, emitting one bit per step. size is the register
// width; tap selects the feedback bit; invert flips every emitted bit (used
// for poly5, whose POKEY output is active-low).
func galois(size uint, tap uint, seed uint32, invert bool) bits {
	period := int(1)<<size - 1
	out := make(bits, 0, period)
	x := seed
	for {
		newBit := ((x >> tap) ^ x) & 1
		x = (newBit << (size - 1)) | (x >> 1)
		b := int(x & 1)
		if invert {
			b ^= 1
		}
		out = append(out, b)
		if x == seed {
			break
		}
	}
	return out
}

func (b bits) toSigned() Table {
	out := make(Table, len(b))
	for i, v := range b {
		out[i] = float32(v)*2 - 1
	}
	return out
}

// pulsePoly5 walks poly5 as a clock for a simple two-state toggle, emitting
// the toggle's current value on every poly5 step and flipping it whenever
// the poly5 bit is 1. The composite period is the smallest number of poly5
// laps needed to return the toggle to its starting state.
func pulsePoly5(poly5 bits) Table {
	const toggleStates = 2
	length := toggleStates * len(poly5)
	out := make(Table, length)
	state := 1
	for i := 0; i < length; i++ {
		if poly5[i%len(poly5)] == 1 {
			state = -state
		}
		out[i] = float32(state)
	}
	return out
}

// samplePoly5 walks poly5 as a clock for the given table-driven generator,
// advancing the generator's index on every poly5 1-bit and emitting its
// current (signed) value on every poly5 step.
func samplePoly5(poly5 bits, secondary bits) Table {
	length := len(secondary) * len(poly5)
	out := make(Table, length)
	idx := 0
	for i := 0; i < length; i++ {
		if poly5[i%len(poly5)] == 1 {
			idx = (idx + 1) % len(secondary)
		}
		out[i] = float32(secondary[idx])*2 - 1
	}
	return out
}
