package tile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCoord(t *testing.T) {
	tests := []struct {
		x, y int
		ok   bool
	}{
		{0, 0, true},
		{3, 3, true},
		{1, 2, true},
		{4, 0, false},
		{0, 4, false},
		{-1, 0, false},
		{0, -1, false},
		{9, 9, false},
	}
	for _, tt := range tests {
		c, ok := NewCoord(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "NewCoord(%d, %d)", tt.x, tt.y)
		if ok {
			assert.Equal(t, tt.x, c.X())
			assert.Equal(t, tt.y, c.Y())
		}
	}

	assert.Panics(t, func() { MustCoord(4, 4) })
}

func TestCoordAdded(t *testing.T) {
	c := MustCoord(1, 2)

	got, ok := c.Added(1, -1)
	assert.True(t, ok)
	assert.Equal(t, MustCoord(2, 1), got)

	_, ok = c.Added(-2, 0)
	assert.False(t, ok)
	_, ok = c.Added(0, 2)
	assert.False(t, ok)
}

func TestCoordRotated(t *testing.T) {
	c := MustCoord(1, 0)
	assert.Equal(t, MustCoord(3, 1), c.Rotated(Clockwise))
	assert.Equal(t, MustCoord(0, 2), c.Rotated(CounterClockwise))

	for y := 0; y < GridWidth; y++ {
		for x := 0; x < GridWidth; x++ {
			c := MustCoord(x, y)
			assert.Equal(t, c, c.Rotated(Clockwise).Rotated(CounterClockwise))
			assert.Equal(t, c, c.Rotated(Clockwise).Rotated(Clockwise).Rotated(Clockwise).Rotated(Clockwise))
		}
	}
}

func TestCoordCompare(t *testing.T) {
	assert.Negative(t, MustCoord(0, 3).Compare(MustCoord(1, 0)))
	assert.Positive(t, MustCoord(1, 1).Compare(MustCoord(1, 0)))
	assert.Zero(t, MustCoord(2, 2).Compare(MustCoord(2, 2)))
}

func TestEscalatorNeighbor(t *testing.T) {
	a := MustCoord(0, 1)
	b := MustCoord(2, 3)
	e, err := NewEscalator(a, b)
	assert.NoError(t, err)

	n, ok := e.Neighbor(a)
	assert.True(t, ok)
	assert.Equal(t, b, n)

	n, ok = e.Neighbor(b)
	assert.True(t, ok)
	assert.Equal(t, a, n)

	_, ok = e.Neighbor(MustCoord(3, 3))
	assert.False(t, ok)

	assert.Equal(t, "01-23", e.String())
}

func TestEscalatorRejectsSelfLoop(t *testing.T) {
	_, err := NewEscalator(MustCoord(1, 1), MustCoord(1, 1))
	assert.ErrorIs(t, err, ErrSameEndpoints)
}

func TestEscalatorRotated(t *testing.T) {
	e := esc(2, 3, 3, 2)
	assert.Equal(t, esc(3, 1, 2, 0), e.Rotated(CounterClockwise))
	assert.Equal(t, esc(0, 2, 1, 3), e.Rotated(Clockwise))
}
