package tile

import "fmt"

// WallKind discriminates the state of a wall slot.
type WallKind uint8

const (
	// WallOpen has no wall at all.
	WallOpen WallKind = iota
	// WallBlocked cannot be crossed.
	WallBlocked
	// WallExplore is a tile edge the matching pawn explores through.
	WallExplore
	// WallEntrance is the edge the tile is entered from.
	WallEntrance
	// WallOrangeOnly can only be crossed by the orange pawn.
	WallOrangeOnly
)

// Wall is the state of one wall slot. Pawn is only meaningful for
// WallExplore.
type Wall struct {
	Kind WallKind
	Pawn Pawn
}

var (
	Open       = Wall{}
	Blocked    = Wall{Kind: WallBlocked}
	Entrance   = Wall{Kind: WallEntrance}
	OrangeOnly = Wall{Kind: WallOrangeOnly}
)

// Explore returns an explore wall for p.
func Explore(p Pawn) Wall {
	return Wall{Kind: WallExplore, Pawn: p}
}

// IsPassableFromOutside returns true if a pawn may enter the tile through
// this wall when it sits on the tile boundary.
func (w Wall) IsPassableFromOutside() bool {
	switch w.Kind {
	case WallEntrance, WallExplore, WallOpen:
		return true
	default:
		return false
	}
}

// Byte returns the notation character. Horizontal and vertical blocked
// walls use different characters.
func (w Wall) Byte(vertical bool) byte {
	switch w.Kind {
	case WallBlocked:
		if vertical {
			return '|'
		}
		return '-'
	case WallExplore:
		return "5678"[w.Pawn]
	case WallEntrance:
		return '^'
	case WallOrangeOnly:
		return '~'
	default:
		return ' '
	}
}

func (w Wall) String() string {
	switch w.Kind {
	case WallBlocked:
		return "Blocked"
	case WallExplore:
		return fmt.Sprintf("Explore(%s)", w.Pawn)
	case WallEntrance:
		return "Entrance"
	case WallOrangeOnly:
		return "OrangeOnly"
	default:
		return "Open"
	}
}

// ParseWall maps a notation character to a wall.
func ParseWall(c byte) (Wall, bool) {
	switch c {
	case '-', '|':
		return Blocked, true
	case ' ':
		return Open, true
	case '5', '6', '7', '8':
		return Explore(Pawn(c - '5')), true
	case '^':
		return Entrance, true
	case '~':
		return OrangeOnly, true
	}
	return Open, false
}
