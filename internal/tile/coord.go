package tile

import (
	"cmp"
	"fmt"
)

// Coord is an index into the cell grid. x grows to the right, y grows
// downward. The zero value is the top-left cell.
type Coord struct {
	x, y uint8
}

// NewCoord returns the coordinate (x, y), or false if it is off the grid.
func NewCoord(x, y int) (Coord, bool) {
	if x < 0 || x >= GridWidth || y < 0 || y >= GridWidth {
		return Coord{}, false
	}
	return Coord{x: uint8(x), y: uint8(y)}, true
}

// MustCoord is NewCoord for constant tables; it panics on bad input.
func MustCoord(x, y int) Coord {
	c, ok := NewCoord(x, y)
	if !ok {
		panic(fmt.Sprintf("tile: coordinate (%d,%d) off the grid", x, y))
	}
	return c
}

func (c Coord) X() int { return int(c.x) }
func (c Coord) Y() int { return int(c.y) }

// Added offsets the coordinate, returning false if the result leaves the grid.
func (c Coord) Added(dx, dy int) (Coord, bool) {
	return NewCoord(int(c.x)+dx, int(c.y)+dy)
}

// Rotated returns where the coordinate lands after a quarter turn of the
// whole tile.
func (c Coord) Rotated(spin SpinDirection) Coord {
	if spin == Clockwise {
		return Coord{x: GridWidth - 1 - c.y, y: c.x}
	}
	return Coord{x: c.y, y: GridWidth - 1 - c.x}
}

// Compare orders coordinates by x, then y.
func (c Coord) Compare(o Coord) int {
	if r := cmp.Compare(c.x, o.x); r != 0 {
		return r
	}
	return cmp.Compare(c.y, o.y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.x, c.y)
}
