package theme

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(v)), nil
}

// colorSet parses a batch of named colors, remembering the first failure so
// callers can check a single error after reading every field.
type colorSet struct {
	err error
}

func (s *colorSet) parse(field, hex string) tcell.Color {
	c, err := ParseHexColor(hex)
	if err != nil && s.err == nil {
		s.err = fmt.Errorf("theme color %s: %w", field, err)
	}
	return c
}
