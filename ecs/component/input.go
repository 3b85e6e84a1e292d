package component

// Input is the held movement state, updated from key down/up events.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
}

// Axis returns the movement direction on each axis as -1, 0 or 1.
func (in Input) Axis() (dx, dy float64) {
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	return dx, dy
}
