package filter

// tap mixes the five ladder stage outputs into the mode's Oberheim-style
// combination. y[0] is the input after feedback, y[1..4] are the four
// one-pole stage outputs.
func tap(mode Mode, y [5]float32) float32 {
	switch mode {
	case Peak:
		return y[0]
	case LowPass1:
		return y[1]
	case LowPass2:
		return y[2]
	case LowPass3:
		return y[3]
	case LowPass4:
		return y[4]
	case HighPass1:
		return y[1] - y[0]
	case HighPass2:
		return -y[2] + 2*y[1] - y[0]
	case HighPass3:
		return y[3] - 3*y[2] + 3*y[1] - y[0]
	case HighPass4:
		return -y[4] + 4*y[3] - 6*y[2] + 4*y[1] - y[0]
	case BandPass1:
		return y[2] - y[1]
	case BandPass1LowPass1:
		return y[3] - y[2]
	case BandPass1LowPass2:
		return y[4] - y[3]
	case BandPass1HighPass1:
		return -y[3] + 2*y[2] - y[1]
	case BandPass1HighPass2:
		return y[4] - 3*y[3] + 3*y[2] - y[1]
	case BandPass2:
		return y[4] - 2*y[3] + y[2]
	case Notch:
		return -2*y[2] + 2*y[1] - y[0]
	case NotchLowPass1:
		return -2*y[3] + 2*y[2] - y[1]
	case NotchLowPass2:
		return -2*y[4] + 2*y[3] - y[2]
	case PhaseShift:
		return 4*y[3] - 6*y[2] + 3*y[1] - y[0]
	case PhaseShiftLowPass1:
		return 4*y[4] - 6*y[3] + 3*y[2] - y[1]
	default: // None is bypassed before reaching tap; Peak already handled
		return y[0]
	}
}
