// Package tileset loads named collections of tiles from tileset files and
// watches them for edits.
package tileset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/mmazing/data"
	"github.com/samdwyer/mmazing/internal/telemetry"
	"github.com/samdwyer/mmazing/internal/tile"
)

// Tileset is an ordered list of named tiles.
type Tileset struct {
	// Source names where the tiles came from, usually a file path.
	Source string
	tiles  []tile.Named
}

// New builds a tileset from already parsed tiles.
func New(source string, tiles []tile.Named) Tileset {
	return Tileset{Source: source, tiles: slices.Clone(tiles)}
}

// Len returns the number of tiles.
func (s Tileset) Len() int { return len(s.tiles) }

// At returns the i-th tile. It panics if i is out of range.
func (s Tileset) At(i int) tile.Named { return s.tiles[i] }

// Index returns the position of the first tile called name, or -1.
func (s Tileset) Index(name string) int {
	return slices.IndexFunc(s.tiles, func(n tile.Named) bool { return n.Name == name })
}

// Names returns the tile names in order.
func (s Tileset) Names() []string {
	names := make([]string, len(s.tiles))
	for i, n := range s.tiles {
		names[i] = n.Name
	}
	return names
}

// Tiles returns a copy of the tiles.
func (s Tileset) Tiles() []tile.Named {
	return slices.Clone(s.tiles)
}

// Parse parses tileset text. source is only used for logging and errors.
func Parse(ctx context.Context, source, text string) (Tileset, error) {
	_, span := telemetry.Tracer("tileset").Start(ctx, "tileset.parse")
	defer span.End()

	tiles, err := tile.ParseTileset(text)
	if err != nil {
		span.RecordError(err)
		return Tileset{}, fmt.Errorf("parse %s: %w", source, err)
	}
	span.SetAttributes(attribute.Int("tileset.tiles", len(tiles)))

	seen := make(map[string]int, len(tiles))
	for i, n := range tiles {
		if first, dup := seen[n.Name]; dup {
			log.WithFields(log.Fields{
				"source": source,
				"tile":   n.Name,
				"first":  first,
				"index":  i,
			}).Warn("duplicate tile name")
			continue
		}
		seen[n.Name] = i
	}

	log.WithFields(log.Fields{"source": source, "tiles": len(tiles)}).Debug("parsed tileset")
	return New(source, tiles), nil
}

// Load reads and parses the tileset file at path.
func Load(ctx context.Context, path string) (Tileset, error) {
	ctx, span := telemetry.Tracer("tileset").Start(ctx, "tileset.load")
	defer span.End()
	span.SetAttributes(attribute.String("tileset.path", path))

	content, err := os.ReadFile(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return Tileset{}, fmt.Errorf("read tileset: %w", err)
	}
	span.SetAttributes(attribute.Int("tileset.bytes", len(content)))

	s, err := Parse(ctx, filepath.Base(path), string(content))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse failed")
		return Tileset{}, err
	}
	s.Source = path
	span.SetAttributes(attribute.Int("tileset.tiles", s.Len()))
	return s, nil
}

// Embedded returns the sample tileset compiled into the binary.
func Embedded(ctx context.Context) (Tileset, error) {
	text, err := data.ReadText(data.SampleTileset)
	if err != nil {
		return Tileset{}, err
	}
	return Parse(ctx, data.SampleTileset, text)
}
