package tile

// Direction is a cardinal direction on the grid. y grows downward.
type Direction uint8

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

// AllDirections lists every cardinal direction.
var AllDirections = [4]Direction{DirRight, DirUp, DirLeft, DirDown}

// Delta returns what to add to a coordinate to reach the neighbor.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirLeft:
		return -1, 0
	default:
		return 0, 1
	}
}

// Arrow returns an arrow glyph pointing in the direction.
func (d Direction) Arrow() rune {
	switch d {
	case DirRight:
		return '→'
	case DirUp:
		return '↑'
	case DirLeft:
		return '←'
	default:
		return '↓'
	}
}

func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirDown:
		return "down"
	}
	return ""
}

// SpinDirection is a quarter-turn rotation sense.
type SpinDirection uint8

const (
	Clockwise SpinDirection = iota
	CounterClockwise
)

// Reversed returns the opposite spin.
func (s SpinDirection) Reversed() SpinDirection {
	if s == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

func (s SpinDirection) String() string {
	if s == Clockwise {
		return "clockwise"
	}
	return "counter-clockwise"
}
