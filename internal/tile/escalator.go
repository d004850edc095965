package tile

import (
	"errors"
	"fmt"
)

// ErrSameEndpoints is returned when both ends of an escalator are one cell.
var ErrSameEndpoints = errors.New("escalator endpoints must differ")

// Escalator links two cells of the same tile in both directions.
type Escalator [2]Coord

// NewEscalator builds an escalator between two distinct cells.
func NewEscalator(a, b Coord) (Escalator, error) {
	if a == b {
		return Escalator{}, fmt.Errorf("%w: %s", ErrSameEndpoints, a)
	}
	return Escalator{a, b}, nil
}

// Rotated rotates both endpoints.
func (e Escalator) Rotated(spin SpinDirection) Escalator {
	return Escalator{e[0].Rotated(spin), e[1].Rotated(spin)}
}

// Neighbor returns the other end if c is one of the endpoints.
func (e Escalator) Neighbor(c Coord) (Coord, bool) {
	switch c {
	case e[0]:
		return e[1], true
	case e[1]:
		return e[0], true
	}
	return Coord{}, false
}

// String renders the escalator the way the notation writes it, e.g. "01-23".
func (e Escalator) String() string {
	return fmt.Sprintf("%d%d-%d%d", e[0].x, e[0].y, e[1].x, e[1].y)
}
