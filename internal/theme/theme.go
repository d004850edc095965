// Package theme turns the JSON color definitions in data/ into tcell styles
// for the tile renderer.
package theme

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/mmazing/data"
	"github.com/samdwyer/mmazing/internal/tile"
)

// Theme holds the resolved styles used to draw a tile.
type Theme struct {
	Name string

	Base        tcell.Style
	Title       tcell.Style
	Placeholder tcell.Style

	WallBlocked    tcell.Style
	WallOpen       tcell.Style
	WallEntrance   tcell.Style
	WallOrangeOnly tcell.Style

	Pawns [len(tile.AllPawns)]tcell.Style

	Timer       tcell.Style
	Camera      tcell.Style
	CrystalBall tcell.Style
	Escalator   tcell.Style
	ExitArrow   tcell.Style
	Used        tcell.Style

	// Unreachable is the background given to cells no entrance leads to.
	Unreachable tcell.Color
}

// New resolves a theme definition into styles.
func New(def data.ThemeDef) (Theme, error) {
	var cs colorSet
	bg := cs.parse("background", def.Background)
	base := tcell.StyleDefault.Background(bg)
	fg := func(field, hex string) tcell.Style {
		return base.Foreground(cs.parse(field, hex))
	}

	t := Theme{
		Name:        def.Name,
		Base:        fg("text", def.Text),
		Title:       fg("title", def.Title).Bold(true),
		Placeholder: fg("placeholder", def.Placeholder),

		WallBlocked:    fg("walls.blocked", def.Walls.Blocked),
		WallOpen:       fg("walls.open", def.Walls.Open),
		WallEntrance:   fg("walls.entrance", def.Walls.Entrance).Bold(true),
		WallOrangeOnly: fg("walls.orangeOnly", def.Walls.OrangeOnly),

		Timer:       fg("timer", def.Timer).Bold(true),
		Camera:      fg("camera", def.Camera),
		CrystalBall: fg("crystalBall", def.CrystalBall),
		Escalator:   fg("escalator", def.Escalator),
		ExitArrow:   fg("exitArrow", def.ExitArrow),
		Used:        fg("used", def.Used).Dim(true),
		Unreachable: cs.parse("unreachable", def.Unreachable),
	}
	t.Pawns[tile.PawnGreen] = fg("pawns.green", def.Pawns.Green)
	t.Pawns[tile.PawnOrange] = fg("pawns.orange", def.Pawns.Orange)
	t.Pawns[tile.PawnYellow] = fg("pawns.yellow", def.Pawns.Yellow)
	t.Pawns[tile.PawnPurple] = fg("pawns.purple", def.Pawns.Purple)

	if cs.err != nil {
		return Theme{}, cs.err
	}
	return t, nil
}

// Default loads the theme embedded in the binary.
func Default() (Theme, error) {
	def, err := data.LoadTheme()
	if err != nil {
		return Theme{}, err
	}
	return New(def)
}

// PawnStyle returns the style for p.
func (t *Theme) PawnStyle(p tile.Pawn) tcell.Style {
	if int(p) < len(t.Pawns) {
		return t.Pawns[p]
	}
	return t.Base
}

// WallStyle returns the style a wall character is drawn with.
func (t *Theme) WallStyle(w tile.Wall) tcell.Style {
	switch w.Kind {
	case tile.WallBlocked:
		return t.WallBlocked
	case tile.WallExplore:
		return t.PawnStyle(w.Pawn)
	case tile.WallEntrance:
		return t.WallEntrance
	case tile.WallOrangeOnly:
		return t.WallOrangeOnly
	default:
		return t.WallOpen
	}
}

// CellStyle returns the style a cell character is drawn with. Used items
// share one style regardless of kind.
func (t *Theme) CellStyle(c tile.Cell) tcell.Style {
	if c.IsUsed() {
		return t.Used
	}
	switch c.Kind {
	case tile.CellWarp, tile.CellLoot:
		return t.PawnStyle(c.Pawn)
	case tile.CellFinalExit:
		return t.PawnStyle(c.Pawn).Bold(true)
	case tile.CellTimerFlip:
		return t.Timer
	case tile.CellCamera:
		return t.Camera
	case tile.CellCrystalBall:
		return t.CrystalBall
	default:
		return t.Base
	}
}
