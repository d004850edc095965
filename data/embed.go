// Package data provides embedded tileutil data and utilities for loading it.
package data

import "embed"

// SampleTileset is the name of the tileset file shipped with the binary.
const SampleTileset = "sample.tiles"

// dataFS embeds the theme and sample tileset at build time.
//
//go:embed theme.json sample.tiles
var dataFS embed.FS

// FS returns the embedded filesystem containing tileutil data.
func FS() embed.FS {
	return dataFS
}
