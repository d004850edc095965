package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mmazing/internal/theme"
	"github.com/samdwyer/mmazing/internal/tile"
)

// Canvas is the drawing surface the renderer needs. *Screen satisfies it.
type Canvas interface {
	Clear()
	SetContent(x, y int, r rune, style tcell.Style)
	Show()
}

// Layout of the viewer, in terminal cells.
const (
	TileX = 2 // left edge of the tile grid
	TileY = 2 // top edge of the tile grid

	// TileSize is the width and height of a tile drawn in its text notation.
	TileSize = 2*tile.GridWidth + 1

	PanelX = TileX + TileSize + 4 // left edge of the side panel
)

// HelpText lists the viewer key bindings.
const HelpText = "←/→ tile  Home/End first/last  [/] rotate  k/u used/available  r reload  p print  q quit"

// View is everything shown for one frame.
type View struct {
	Title  string
	Tile   tile.Tile
	Status string
}

// Renderer handles drawing a tile to the screen.
type Renderer struct {
	canvas Canvas
	theme  *theme.Theme
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas, th *theme.Theme) *Renderer {
	return &Renderer{canvas: canvas, theme: th}
}

// Render draws a whole frame.
func (r *Renderer) Render(v View) {
	r.canvas.Clear()

	r.drawText(0, 0, v.Title, r.theme.Title)
	r.drawTile(&v.Tile)
	r.drawPanel(&v.Tile)

	statusY := TileY + TileSize + 1
	if v.Status != "" {
		r.drawText(0, statusY, v.Status, r.theme.Base)
	}
	r.drawText(0, statusY+1, HelpText, r.theme.Placeholder)

	r.canvas.Show()
}

// CellPos returns the screen position of cell c.
func CellPos(c tile.Coord) (x, y int) {
	return TileX + 2*c.X() + 1, TileY + 2*c.Y() + 1
}

// drawTile lays the tile out the way it is written in a tileset file.
func (r *Renderer) drawTile(t *tile.Tile) {
	th := r.theme
	reach := t.ReachableCoords()

	for y := 0; y <= tile.GridWidth; y++ {
		row := TileY + 2*y
		for x := 0; x < tile.GridWidth; x++ {
			r.canvas.SetContent(TileX+2*x, row, '+', th.Placeholder)
			w := t.HorzWalls[y][x]
			r.canvas.SetContent(TileX+2*x+1, row, rune(w.Byte(false)), th.WallStyle(w))
		}
		r.canvas.SetContent(TileX+2*tile.GridWidth, row, '+', th.Placeholder)
	}

	for y := 0; y < tile.GridWidth; y++ {
		row := TileY + 2*y + 1
		for x := 0; x <= tile.GridWidth; x++ {
			w := t.VertWalls[y][x]
			r.canvas.SetContent(TileX+2*x, row, rune(w.Byte(true)), th.WallStyle(w))
		}
		for x := 0; x < tile.GridWidth; x++ {
			c := t.Cells[y][x]
			style := th.CellStyle(c)
			if !reach[y][x] {
				style = style.Background(th.Unreachable)
			}
			r.canvas.SetContent(TileX+2*x+1, row, rune(c.Byte()), style)
		}
	}

	r.drawExitArrows(t)
}

// drawExitArrows replaces the open outer wall next to each final exit with
// an arrow pointing off the tile.
func (r *Renderer) drawExitArrows(t *tile.Tile) {
	for y := 0; y < tile.GridWidth; y++ {
		for x := 0; x < tile.GridWidth; x++ {
			if t.Cells[y][x].Kind != tile.CellFinalExit {
				continue
			}
			c := tile.MustCoord(x, y)
			d := t.ExitDirection(c)
			if t.Wall(c, d) != tile.Open {
				continue
			}
			cx, cy := CellPos(c)
			dx, dy := d.Delta()
			r.canvas.SetContent(cx+dx, cy+dy, d.Arrow(), r.theme.ExitArrow)
		}
	}
}

// drawPanel lists the escalators and reachability next to the tile.
func (r *Renderer) drawPanel(t *tile.Tile) {
	th := r.theme
	y := TileY

	r.drawText(PanelX, y, fmt.Sprintf("reachable: %d/%d", t.CountReachable(), tile.GridWidth*tile.GridWidth), th.Base)
	y += 2

	escalators := t.Escalators()
	if len(escalators) == 0 {
		r.drawText(PanelX, y, "no escalators", th.Placeholder)
		return
	}
	r.drawText(PanelX, y, "escalators:", th.Base)
	for _, e := range escalators {
		y++
		r.drawText(PanelX+2, y, e.String(), th.Escalator)
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
