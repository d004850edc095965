package tile

import (
	"errors"
	"slices"

	log "github.com/sirupsen/logrus"
)

const (
	// GridWidth is the number of cells on each side of a tile.
	GridWidth = 4
	// MaxEscalatorsPerTile bounds the escalators a tile can hold.
	MaxEscalatorsPerTile = 4
)

// ErrTooManyEscalators is returned when a tile is already full of escalators.
var ErrTooManyEscalators = errors.New("exceeded max escalators")

// entranceCoords are the only cells whose outer wall can be crossed from
// outside. Each sits on exactly one edge of the grid.
var entranceCoords = [4]Coord{
	MustCoord(0, 1),
	MustCoord(1, 3),
	MustCoord(2, 0),
	MustCoord(3, 2),
}

// Tile is one board tile.
//
// HorzWalls[y][x] is the wall above cell (x, y); row GridWidth is the
// bottom edge. VertWalls[y][x] is the wall left of cell (x, y); column
// GridWidth is the right edge. The zero value is fully open and empty.
type Tile struct {
	Cells     [GridWidth][GridWidth]Cell
	HorzWalls [GridWidth + 1][GridWidth]Wall
	VertWalls [GridWidth][GridWidth + 1]Wall

	escalators    [MaxEscalatorsPerTile]Escalator
	numEscalators int
}

// Named pairs a tile with the name it was given in a tileset.
type Named struct {
	Name string
	Tile Tile
}

// Escalators returns the tile's escalators in declaration order.
func (t Tile) Escalators() []Escalator {
	return slices.Clone(t.escalators[:t.numEscalators])
}

// AddEscalator appends an escalator, failing once the tile is full.
func (t *Tile) AddEscalator(e Escalator) error {
	if t.numEscalators >= MaxEscalatorsPerTile {
		return ErrTooManyEscalators
	}
	t.escalators[t.numEscalators] = e
	t.numEscalators++
	return nil
}

// Cell returns the content of the cell at c.
func (t Tile) Cell(c Coord) Cell {
	return t.Cells[c.y][c.x]
}

// SetAvailability marks the item at c as available or used. Cells that do
// not carry availability are left alone.
func (t *Tile) SetAvailability(c Coord, a Availability) {
	t.Cells[c.y][c.x] = t.Cells[c.y][c.x].WithAvailability(a)
}

// SetAllAvailability applies SetAvailability to every cell.
func (t *Tile) SetAllAvailability(a Availability) {
	for y := range t.Cells {
		for x := range t.Cells[y] {
			t.Cells[y][x] = t.Cells[y][x].WithAvailability(a)
		}
	}
}

// OuterEdgeDirections returns the directions in which c touches the edge
// of the grid: two for a corner, none for an interior cell.
func (t Tile) OuterEdgeDirections(c Coord) []Direction {
	const maxIdx = GridWidth - 1

	dirs := make([]Direction, 0, 2)
	if c.x == 0 {
		dirs = append(dirs, DirLeft)
	}
	if c.x == maxIdx {
		dirs = append(dirs, DirRight)
	}
	if c.y == 0 {
		dirs = append(dirs, DirUp)
	}
	if c.y == maxIdx {
		dirs = append(dirs, DirDown)
	}
	return dirs
}

// Wall returns the wall on side d of cell c.
func (t Tile) Wall(c Coord, d Direction) Wall {
	x, y := c.x, c.y
	switch d {
	case DirUp:
		return t.HorzWalls[y][x]
	case DirDown:
		return t.HorzWalls[y+1][x]
	case DirLeft:
		return t.VertWalls[y][x]
	default:
		return t.VertWalls[y][x+1]
	}
}

// CardinalNeighbor returns the cell one step from c in direction d,
// ignoring walls.
func (t Tile) CardinalNeighbor(c Coord, d Direction) (Coord, bool) {
	return c.Added(d.Delta())
}

// ImmediateNeighbors returns the cells one step from c, either through an
// open wall or along an escalator, sorted and without duplicates.
//
// Only WallOpen counts as passable here; orange-only and explore walls
// inside a tile are treated as closed.
func (t Tile) ImmediateNeighbors(c Coord) []Coord {
	var neighbors []Coord
	for _, d := range AllDirections {
		n, ok := t.CardinalNeighbor(c, d)
		if ok && t.Wall(c, d) == Open {
			neighbors = append(neighbors, n)
		}
	}
	for _, e := range t.escalators[:t.numEscalators] {
		if n, ok := e.Neighbor(c); ok {
			neighbors = append(neighbors, n)
		}
	}

	slices.SortFunc(neighbors, Coord.Compare)
	return slices.Compact(neighbors)
}

// ExitDirection picks the direction an exit arrow at c should point: the
// one outer edge of c whose wall is open. When there is no such edge, or
// more than one, a warning is logged and DirRight is returned.
func (t Tile) ExitDirection(c Coord) Direction {
	var open []Direction
	for _, d := range t.OuterEdgeDirections(c) {
		if t.Wall(c, d) == Open {
			open = append(open, d)
		}
	}
	if len(open) == 1 {
		return open[0]
	}

	logger.WithFields(log.Fields{
		"coord":      c.String(),
		"open_edges": len(open),
	}).Warn("Unable to find a good direction for exit direction")
	return DirRight
}
