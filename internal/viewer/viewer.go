package viewer

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/mmazing/internal/telemetry"
	"github.com/samdwyer/mmazing/internal/theme"
	"github.com/samdwyer/mmazing/internal/tileset"
	"github.com/samdwyer/mmazing/internal/ui"
)

// command is a viewer action bound to a key.
type command int

const (
	cmdNone command = iota
	cmdQuit
	cmdNext
	cmdPrev
	cmdFirst
	cmdLast
	cmdRotateLeft
	cmdRotateRight
	cmdToggleAvailability
	cmdReload
	cmdPrint
)

// commandFor maps a key press to a command.
func commandFor(key tcell.Key, r rune) command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyRight, tcell.KeyDown:
		return cmdNext
	case tcell.KeyLeft, tcell.KeyUp:
		return cmdPrev
	case tcell.KeyHome:
		return cmdFirst
	case tcell.KeyEnd:
		return cmdLast
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			return cmdQuit
		case '[':
			return cmdRotateLeft
		case ']':
			return cmdRotateRight
		case 'k', 'K', 'u', 'U':
			return cmdToggleAvailability
		case 'r', 'R':
			return cmdReload
		case 'p', 'P':
			return cmdPrint
		}
	}
	return cmdNone
}

// Interrupt payloads posted to the screen from other goroutines.
type (
	fileChanged struct{}
	stopRequest struct{}
)

// Loader reads the tileset being viewed.
type Loader func(ctx context.Context) (tileset.Tileset, error)

// FileLoader loads path, or the embedded sample tileset when path is empty.
func FileLoader(path string) Loader {
	if path == "" {
		return tileset.Embedded
	}
	return func(ctx context.Context) (tileset.Tileset, error) {
		return tileset.Load(ctx, path)
	}
}

// Viewer holds the interactive viewer state.
type Viewer struct {
	cfg      Config
	screen   *ui.Screen
	renderer *ui.Renderer
	load     Loader
	state    *State
	status   string
	running  bool
}

// New creates a viewer drawing on the terminal.
func New(cfg Config) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newViewer(cfg, screen, FileLoader(cfg.TileFile))
}

func newViewer(cfg Config, screen *ui.Screen, load Loader) (*Viewer, error) {
	th, err := theme.Default()
	if err != nil {
		screen.Close()
		return nil, err
	}
	return &Viewer{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, &th),
		load:     load,
		running:  true,
	}, nil
}

// Run loads the tileset and runs the event loop until the user quits or
// ctx is done. The screen is closed on return.
func (v *Viewer) Run(ctx context.Context) error {
	defer v.screen.Close()

	if err := v.init(ctx); err != nil {
		return err
	}

	if v.cfg.Watch && v.cfg.TileFile != "" {
		w, err := tileset.Watch(ctx, v.cfg.TileFile, func() {
			v.post(fileChanged{})
		})
		if err != nil {
			log.WithError(err).WithField("path", v.cfg.TileFile).Warn("not watching tileset")
		} else {
			defer w.Close()
		}
	}

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		select {
		case <-ctx.Done():
			v.post(stopRequest{})
		case <-stop:
		}
	}()

	for v.running {
		v.render()
		v.handleEvent(ctx, v.screen.PollEvent())
	}
	return nil
}

func (v *Viewer) init(ctx context.Context) error {
	ctx, span := telemetry.Tracer("viewer").Start(ctx, "viewer.init")
	defer span.End()

	set, err := v.load(ctx)
	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("load tileset: %w", err)
	}
	v.state = NewState(set, v.cfg.StartIndex)

	span.SetAttributes(
		attribute.String("tileset.source", set.Source),
		attribute.Int("tileset.tiles", set.Len()),
		attribute.Int("viewer.start_index", v.state.Index()),
	)
	log.WithFields(log.Fields{"source": set.Source, "tiles": set.Len()}).Info("tileset loaded")
	return nil
}

func (v *Viewer) post(data any) {
	if err := v.screen.Interrupt(data); err != nil {
		log.WithError(err).Debug("dropped viewer event")
	}
}

func (v *Viewer) render() {
	view := ui.View{Title: v.state.Title(), Status: v.status}
	if named, ok := v.state.Current(); ok {
		view.Tile = named.Tile
	}
	v.renderer.Render(view)
}

// handleEvent processes a single event.
func (v *Viewer) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case nil:
		// The screen was finalized.
		v.running = false
	case *tcell.EventKey:
		v.apply(ctx, commandFor(ev.Key(), ev.Rune()))
	case *tcell.EventResize:
		v.screen.Resize()
	case *tcell.EventInterrupt:
		switch ev.Data().(type) {
		case fileChanged:
			log.Info("tileset changed on disk, reloading")
			v.reload(ctx)
		case stopRequest:
			v.running = false
		}
	}
}

// apply runs cmd against the viewer state.
func (v *Viewer) apply(ctx context.Context, cmd command) {
	switch cmd {
	case cmdQuit:
		v.running = false
	case cmdNext:
		v.state.Next()
	case cmdPrev:
		v.state.Prev()
	case cmdFirst:
		v.state.First()
	case cmdLast:
		v.state.Last()
	case cmdRotateLeft:
		v.state.RotateLeft()
	case cmdRotateRight:
		v.state.RotateRight()
	case cmdToggleAvailability:
		v.state.ToggleAvailability()
		log.WithField("availability", v.state.Availability()).Info("availability toggled")
	case cmdReload:
		log.Info("manually reloading")
		v.reload(ctx)
	case cmdPrint:
		v.printCurrent()
	}
}

// reload re-reads the tileset. On failure the previous tiles stay on screen
// and the error is shown in the status line.
func (v *Viewer) reload(ctx context.Context) {
	ctx, span := telemetry.Tracer("viewer").Start(ctx, "viewer.reload")
	defer span.End()

	set, err := v.load(ctx)
	if err != nil {
		span.RecordError(err)
		log.WithError(err).Error("failed to reload tileset")
		v.status = "reload failed: " + err.Error()
		return
	}
	v.state.Replace(set)
	span.SetAttributes(attribute.Int("tileset.tiles", set.Len()))
	v.status = fmt.Sprintf("reloaded %d tiles", set.Len())
}

// printCurrent writes the current tile to the log; the terminal belongs
// to the viewer.
func (v *Viewer) printCurrent() {
	named, ok := v.state.Current()
	if !ok {
		log.Info("no tile")
		v.status = "no tile"
		return
	}
	log.WithFields(log.Fields{
		"tile":       named.Name,
		"left_turns": v.state.LeftTurns(),
	}).Info("current tile:\n" + named.Tile.Format())
	v.status = "printed " + named.Name + " to the log"
}
