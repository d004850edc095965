package tile

import "fmt"

// CellKind discriminates the contents of a Cell.
type CellKind uint8

const (
	// CellEmpty is a plain floor cell pawns walk through.
	CellEmpty CellKind = iota
	// CellWarp is a point the matching pawn can be warped to.
	CellWarp
	// CellTimerFlip lets a pawn flip the sand timer once.
	CellTimerFlip
	// CellCamera is a security camera.
	CellCamera
	// CellLoot is the item the matching pawn must steal before exiting.
	CellLoot
	// CellFinalExit is the matching pawn's way out.
	CellFinalExit
	// CellCrystalBall is a one-shot crystal ball.
	CellCrystalBall
)

// Cell is the content of one grid position. Only the fields relevant to
// Kind are set; the constructors below keep the rest zeroed so cells
// compare with ==.
type Cell struct {
	Kind         CellKind
	Pawn         Pawn
	Availability Availability
}

// Empty is the zero cell.
var Empty = Cell{}

func Warp(p Pawn) Cell      { return Cell{Kind: CellWarp, Pawn: p} }
func Loot(p Pawn) Cell      { return Cell{Kind: CellLoot, Pawn: p} }
func FinalExit(p Pawn) Cell { return Cell{Kind: CellFinalExit, Pawn: p} }

func TimerFlip(a Availability) Cell   { return Cell{Kind: CellTimerFlip, Availability: a} }
func Camera(a Availability) Cell      { return Cell{Kind: CellCamera, Availability: a} }
func CrystalBall(a Availability) Cell { return Cell{Kind: CellCrystalBall, Availability: a} }

// HasAvailability reports whether the cell carries a used/available state.
func (c Cell) HasAvailability() bool {
	switch c.Kind {
	case CellTimerFlip, CellCamera, CellCrystalBall:
		return true
	default:
		return false
	}
}

// HasPawn reports whether the cell belongs to a specific pawn.
func (c Cell) HasPawn() bool {
	switch c.Kind {
	case CellWarp, CellLoot, CellFinalExit:
		return true
	default:
		return false
	}
}

// IsUsed returns true for stateful items that have been used.
func (c Cell) IsUsed() bool {
	return c.HasAvailability() && c.Availability == Used
}

// WithAvailability returns the cell with its availability replaced.
// Cells without availability are returned unchanged.
func (c Cell) WithAvailability(a Availability) Cell {
	if !c.HasAvailability() {
		return c
	}
	c.Availability = a
	return c
}

// Byte returns the notation character for the cell. Availability is not
// part of the notation.
func (c Cell) Byte() byte {
	switch c.Kind {
	case CellWarp:
		return "1234"[c.Pawn]
	case CellLoot:
		return "goyp"[c.Pawn]
	case CellFinalExit:
		return "GOYP"[c.Pawn]
	case CellTimerFlip:
		return 't'
	case CellCamera:
		return 'c'
	case CellCrystalBall:
		return 'b'
	default:
		return ' '
	}
}

// String returns a debug representation such as "Warp(green)".
func (c Cell) String() string {
	switch c.Kind {
	case CellWarp:
		return fmt.Sprintf("Warp(%s)", c.Pawn)
	case CellLoot:
		return fmt.Sprintf("Loot(%s)", c.Pawn)
	case CellFinalExit:
		return fmt.Sprintf("FinalExit(%s)", c.Pawn)
	case CellTimerFlip:
		return fmt.Sprintf("TimerFlip(%s)", c.Availability)
	case CellCamera:
		return fmt.Sprintf("Camera(%s)", c.Availability)
	case CellCrystalBall:
		return fmt.Sprintf("CrystalBall(%s)", c.Availability)
	default:
		return "Empty"
	}
}

// ParseCell maps a notation character to a cell.
func ParseCell(c byte) (Cell, bool) {
	switch c {
	case ' ':
		return Empty, true
	case '1', '2', '3', '4':
		return Warp(Pawn(c - '1')), true
	case 'g':
		return Loot(PawnGreen), true
	case 'o':
		return Loot(PawnOrange), true
	case 'y':
		return Loot(PawnYellow), true
	case 'p':
		return Loot(PawnPurple), true
	case 'G':
		return FinalExit(PawnGreen), true
	case 'O':
		return FinalExit(PawnOrange), true
	case 'Y':
		return FinalExit(PawnYellow), true
	case 'P':
		return FinalExit(PawnPurple), true
	case 't':
		return TimerFlip(Available), true
	case 'c':
		return Camera(Available), true
	case 'b':
		return CrystalBall(Available), true
	}
	return Empty, false
}
