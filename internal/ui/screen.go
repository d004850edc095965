// Package ui draws tiles on the terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal the viewer owns. It implements Canvas and lets
// other goroutines wake the event loop through Interrupt.
type Screen struct {
	term tcell.Screen
}

// NewScreen opens the controlling terminal.
func NewScreen() (*Screen, error) {
	term, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(term)
}

// Wrap initializes term for tile drawing: black background, no cursor.
// Tests hand in a simulation screen.
func Wrap(term tcell.Screen) (*Screen, error) {
	if err := term.Init(); err != nil {
		return nil, err
	}
	term.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	term.HideCursor()
	term.Clear()
	return &Screen{term: term}, nil
}

// Close restores the terminal. PollEvent returns nil afterwards.
func (s *Screen) Close() { s.term.Fini() }

// PollEvent blocks for the next key, resize or interrupt event.
func (s *Screen) PollEvent() tcell.Event { return s.term.PollEvent() }

// Interrupt queues an *tcell.EventInterrupt carrying data. It never blocks
// and fails when the event queue is full.
func (s *Screen) Interrupt(data any) error {
	return s.term.PostEvent(tcell.NewEventInterrupt(data))
}

func (s *Screen) Clear() { s.term.Clear() }
func (s *Screen) Show()  { s.term.Show() }

func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.term.SetContent(x, y, r, nil, style)
}

// Resize redraws everything after the terminal changed size.
func (s *Screen) Resize() { s.term.Sync() }
