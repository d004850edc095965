package tile

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// EntranceCoords returns the entrance cells whose outward wall can be
// crossed from outside the tile, in entrance table order.
func (t Tile) EntranceCoords() []Coord {
	coords := make([]Coord, 0, len(entranceCoords))
	for _, c := range entranceCoords {
		dirs := t.OuterEdgeDirections(c)
		if len(dirs) != 1 {
			panic(fmt.Sprintf("tile: entrance %s has %d outer edges, want 1", c, len(dirs)))
		}
		if t.Wall(c, dirs[0]).IsPassableFromOutside() {
			coords = append(coords, c)
		}
	}
	return coords
}

// ReachableCoords marks, indexed [y][x], every cell that can be walked to
// from the tile's open entrances.
func (t Tile) ReachableCoords() [GridWidth][GridWidth]bool {
	var reachable [GridWidth][GridWidth]bool

	pending := t.EntranceCoords()
	visited := mapset.New[Coord]()

	for len(pending) > 0 {
		c := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		visited.Put(c)
		reachable[c.y][c.x] = true

		for _, n := range t.ImmediateNeighbors(c) {
			if !visited.Has(n) && !slices.Contains(pending, n) {
				pending = append(pending, n)
			}
		}
	}
	return reachable
}

// CountReachable returns how many cells ReachableCoords marks.
func (t Tile) CountReachable() int {
	n := 0
	for _, row := range t.ReachableCoords() {
		for _, ok := range row {
			if ok {
				n++
			}
		}
	}
	return n
}
