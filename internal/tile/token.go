// Package tile models a single 4x4 board tile: its cells, walls and
// escalators, the ASCII notation it is stored in, rotation, and which cells
// can be reached from the tile's entrances.
package tile

// Pawn identifies one of the four player colors.
type Pawn uint8

const (
	PawnGreen Pawn = iota
	PawnOrange
	PawnYellow
	PawnPurple
)

// AllPawns lists the pawns in token order.
var AllPawns = [4]Pawn{PawnGreen, PawnOrange, PawnYellow, PawnPurple}

// String returns a human-readable pawn name.
func (p Pawn) String() string {
	switch p {
	case PawnGreen:
		return "green"
	case PawnOrange:
		return "orange"
	case PawnYellow:
		return "yellow"
	case PawnPurple:
		return "purple"
	default:
		return "unknown"
	}
}

// Availability tracks whether a one-shot cell item has been used.
type Availability uint8

const (
	Available Availability = iota
	Used
)

// String returns a human-readable availability.
func (a Availability) String() string {
	if a == Used {
		return "used"
	}
	return "available"
}

// Toggled returns the opposite availability.
func (a Availability) Toggled() Availability {
	if a == Used {
		return Available
	}
	return Used
}

// token describes one single-character slot of the tile notation.
type token[T any] struct {
	name    string
	allowed string
	parse   func(c byte) (T, bool)
}

type placeholder struct{}

var placeholderToken = token[placeholder]{
	name:    "Placeholder",
	allowed: "+",
	parse: func(c byte) (placeholder, bool) {
		return placeholder{}, c == '+'
	},
}

var cellToken = token[Cell]{
	name:    "TileCell",
	allowed: " 1234GOYPgoypctb",
	parse:   ParseCell,
}

var wallToken = token[Wall]{
	name:    "Wall",
	allowed: " -|^5678~",
	parse:   ParseWall,
}
