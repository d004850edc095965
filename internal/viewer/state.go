// Package viewer runs the interactive tile viewer: it cycles through a
// tileset, rotates the current tile, toggles item availability and reloads
// the tileset file when it changes.
package viewer

import (
	"fmt"

	"github.com/samdwyer/mmazing/internal/tile"
	"github.com/samdwyer/mmazing/internal/tileset"
)

const numSpinDirections = 4

// State is what the viewer is showing: a tile index into a tileset plus the
// rotation and availability applied on top of it.
type State struct {
	set          tileset.Tileset
	index        int
	leftTurns    int
	availability tile.Availability
}

// NewState starts at index start, wrapped into the tileset.
func NewState(set tileset.Tileset, start int) *State {
	s := &State{set: set, index: start}
	s.wrap()
	return s
}

// wrap keeps index inside the tileset; an empty tileset pins it to 0.
func (s *State) wrap() {
	n := s.set.Len()
	if n == 0 {
		s.index = 0
		return
	}
	s.index = ((s.index % n) + n) % n
}

// Tileset returns the tiles being viewed.
func (s *State) Tileset() tileset.Tileset { return s.set }

// Index returns the current tile index.
func (s *State) Index() int { return s.index }

// LeftTurns returns how many counter-clockwise quarter turns are applied.
func (s *State) LeftTurns() int { return s.leftTurns }

// Availability returns the availability applied to every cell.
func (s *State) Availability() tile.Availability { return s.availability }

// Next moves to the following tile, wrapping to the first.
func (s *State) Next() {
	s.index++
	s.wrap()
}

// Prev moves to the preceding tile, wrapping to the last.
func (s *State) Prev() {
	s.index--
	s.wrap()
}

// First moves to the first tile.
func (s *State) First() { s.index = 0 }

// Last moves to the last tile.
func (s *State) Last() {
	s.index = max(s.set.Len()-1, 0)
}

// RotateLeft adds a counter-clockwise quarter turn.
func (s *State) RotateLeft() {
	s.leftTurns = (s.leftTurns + 1) % numSpinDirections
}

// RotateRight removes a counter-clockwise quarter turn.
func (s *State) RotateRight() {
	s.leftTurns = (s.leftTurns + numSpinDirections - 1) % numSpinDirections
}

// ToggleAvailability flips the availability applied to every cell.
func (s *State) ToggleAvailability() {
	s.availability = s.availability.Toggled()
}

// Replace swaps in a reloaded tileset, keeping the index where possible.
func (s *State) Replace(set tileset.Tileset) {
	s.set = set
	s.wrap()
}

// Current returns the tile at the current index with the availability and
// rotation applied. ok is false for an empty tileset.
func (s *State) Current() (named tile.Named, ok bool) {
	if s.set.Len() == 0 {
		return tile.Named{}, false
	}
	named = s.set.At(s.index)
	named.Tile.SetAllAvailability(s.availability)
	named.Tile = named.Tile.RotatedTimes(s.leftTurns)
	return named, true
}

// Title describes the current view in one line.
func (s *State) Title() string {
	named, ok := s.Current()
	if !ok {
		return "no tile"
	}
	return fmt.Sprintf("TILE: %s (idx=%d/%d) avail=%s left_turns=%d",
		named.Name, s.index, s.set.Len(), s.availability, s.leftTurns)
}
