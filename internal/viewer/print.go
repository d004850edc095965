package viewer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/samdwyer/mmazing/internal/tile"
	"github.com/samdwyer/mmazing/internal/tileset"
)

// Print writes every tile of set in tileset notation, each followed by a
// map of the cells reachable from its entrances ('#' reachable, '.' not).
// The map is written as comments so the output parses as a tileset.
func Print(w io.Writer, set tileset.Tileset) error {
	bw := bufio.NewWriter(w)
	for i, n := 0, set.Len(); i < n; i++ {
		named := set.At(i)
		if i > 0 {
			bw.WriteByte('\n')
		}
		fmt.Fprintf(bw, "@%s\n", named.Name)
		bw.WriteString(named.Tile.Format())
		bw.WriteByte('\n')
		writeReachability(bw, &named.Tile)
	}
	return bw.Flush()
}

func writeReachability(w *bufio.Writer, t *tile.Tile) {
	reach := t.ReachableCoords()
	fmt.Fprintf(w, "# reachable %d/%d\n", t.CountReachable(), tile.GridWidth*tile.GridWidth)
	for _, row := range reach {
		w.WriteString("# ")
		for _, ok := range row {
			if ok {
				w.WriteByte('#')
			} else {
				w.WriteByte('.')
			}
		}
		w.WriteByte('\n')
	}
}
