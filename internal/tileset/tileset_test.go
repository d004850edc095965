package tileset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/mmazing/internal/tile"
)

const twoTiles = `@first
+-+-+-+-+
|       |
+ + + + +
^       |
+ + + + +
|       |
+ + + + +
|       |
+-+-+-+-+

@second
+-+-+^+-+
|1     t|
+ + + + +
|       |
+ + + + +
|       |
+ + + + +
|       |
+-+-+-+-+
E: 00-33
`

const openTile = `+-+-+-+-+
^       |
+ + + + +
|       |
+ + + + +
|       |
+ + + + +
|       |
+-+-+-+-+
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParse(t *testing.T) {
	s, err := Parse(context.Background(), "inline", twoTiles)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"first", "second"}, s.Names())
	assert.Equal(t, 1, s.Index("second"))
	assert.Equal(t, -1, s.Index("third"))

	second := s.At(1)
	assert.Equal(t, tile.Warp(tile.PawnGreen), second.Tile.Cell(tile.MustCoord(0, 0)))
	assert.Len(t, second.Tile.Escalators(), 1)
}

func TestParseError(t *testing.T) {
	_, err := Parse(context.Background(), "broken.tiles", "@x\n+-+-+-+-+\n")
	require.ErrorIs(t, err, tile.ErrIncompleteTile)
	assert.ErrorContains(t, err, "broken.tiles")
}

func TestParseWarnsOnDuplicateNames(t *testing.T) {
	hook := logtest.NewGlobal()
	defer hook.Reset()

	s, err := Parse(context.Background(), "dup", twoTiles+"\n@first\n"+openTile)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.Index("first"))

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == log.WarnLevel && e.Message == "duplicate tile name" {
			warned = true
			assert.Equal(t, 2, e.Data["index"])
		}
	}
	assert.True(t, warned)
}

func TestTilesIsACopy(t *testing.T) {
	s, err := Parse(context.Background(), "inline", twoTiles)
	require.NoError(t, err)

	tiles := s.Tiles()
	tiles[0].Name = "changed"
	assert.Equal(t, "first", s.At(0).Name)
}

func TestLoad(t *testing.T) {
	path := writeFile(t, t.TempDir(), "set.tiles", twoTiles)

	s, err := Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Source)
	assert.Equal(t, 2, s.Len())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.tiles"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEmbedded(t *testing.T) {
	s, err := Embedded(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1a", "2", "3", "4"}, s.Names())

	for i, l := 0, s.Len(); i < l; i++ {
		n := s.At(i)
		assert.NotZero(t, n.Tile.CountReachable(), "tile %s", n.Name)
	}
}
