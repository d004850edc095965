package tile

import (
	"strings"
)

// Format writes the tile back into its text notation, including an
// escalator line when the tile has escalators. Used availability has no
// notation and is written as available.
func (t Tile) Format() string {
	var b strings.Builder
	for y := 0; y <= GridWidth; y++ {
		b.WriteByte('+')
		for x := 0; x < GridWidth; x++ {
			b.WriteByte(t.HorzWalls[y][x].Byte(false))
			b.WriteByte('+')
		}
		b.WriteByte('\n')

		if y == GridWidth {
			break
		}
		b.WriteByte(t.VertWalls[y][0].Byte(true))
		for x := 0; x < GridWidth; x++ {
			b.WriteByte(t.Cells[y][x].Byte())
			b.WriteByte(t.VertWalls[y][x+1].Byte(true))
		}
		b.WriteByte('\n')
	}

	if t.numEscalators > 0 {
		hunks := make([]string, 0, t.numEscalators)
		for _, e := range t.escalators[:t.numEscalators] {
			hunks = append(hunks, e.String())
		}
		b.WriteString("E: ")
		b.WriteString(strings.Join(hunks, ", "))
		b.WriteByte('\n')
	}
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (t Tile) MarshalText() ([]byte, error) {
	return []byte(t.Format()), nil
}

// FormatTileset writes named tiles in tileset notation, separated by blank
// lines.
func FormatTileset(tiles []Named) string {
	var b strings.Builder
	for i, n := range tiles {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('@')
		b.WriteString(n.Name)
		b.WriteByte('\n')
		b.WriteString(n.Tile.Format())
	}
	return b.String()
}
