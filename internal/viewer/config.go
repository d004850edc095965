package viewer

// Config holds viewer configuration options.
type Config struct {
	// TileFile is the tileset to show. The sample tileset embedded in the
	// binary is used when empty.
	TileFile string

	// StartIndex is the tile shown first. It wraps around the tileset, so
	// -1 starts at the last tile.
	StartIndex int

	// Watch reloads the tileset whenever TileFile changes on disk.
	Watch bool

	// Print writes every tile to stdout instead of starting the viewer.
	Print bool

	// LogFile receives log output while the viewer owns the terminal.
	LogFile string
}
