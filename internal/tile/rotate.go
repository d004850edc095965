package tile

// rotateGrid copies a height x width grid into its width x height quarter
// turn. Clockwise, (row, col) lands on (col, height-1-row); counter
// clockwise, on (width-1-col, row).
func rotateGrid[T any](height, width int, spin SpinDirection, get func(row, col int) T, set func(row, col int, v T)) {
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			v := get(row, col)
			if spin == Clockwise {
				set(col, height-1-row, v)
			} else {
				set(width-1-col, row, v)
			}
		}
	}
}

// Rotate turns the tile a quarter turn in place. Horizontal walls become
// vertical walls and the other way round.
func (t *Tile) Rotate(spin SpinDirection) {
	*t = t.Rotated(spin)
}

// Rotated returns a copy of the tile turned a quarter turn.
func (t Tile) Rotated(spin SpinDirection) Tile {
	out := Tile{numEscalators: t.numEscalators}

	rotateGrid(GridWidth, GridWidth, spin,
		func(r, c int) Cell { return t.Cells[r][c] },
		func(r, c int, v Cell) { out.Cells[r][c] = v })
	rotateGrid(GridWidth+1, GridWidth, spin,
		func(r, c int) Wall { return t.HorzWalls[r][c] },
		func(r, c int, v Wall) { out.VertWalls[r][c] = v })
	rotateGrid(GridWidth, GridWidth+1, spin,
		func(r, c int) Wall { return t.VertWalls[r][c] },
		func(r, c int, v Wall) { out.HorzWalls[r][c] = v })

	for i, e := range t.escalators[:t.numEscalators] {
		out.escalators[i] = e.Rotated(spin)
	}
	return out
}

// RotatedTimes applies n counter-clockwise quarter turns; negative n turns
// clockwise.
func (t Tile) RotatedTimes(n int) Tile {
	spin := CounterClockwise
	if n < 0 {
		spin, n = Clockwise, -n
	}
	for i := 0; i < n%4; i++ {
		t = t.Rotated(spin)
	}
	return t
}
