package tile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"
)

// lineReader hands out lines with their 1-based numbers. Lines have no
// length limit and a trailing "\r" is dropped.
type lineReader struct {
	r   *bufio.Reader
	num int
	eof bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (r *lineReader) next() (string, bool, error) {
	if r.eof {
		return "", false, nil
	}
	line, err := r.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, fmt.Errorf("reading line %d: %w", r.num+1, err)
		}
		r.eof = true
		if line == "" {
			return "", false, nil
		}
	}
	r.num++
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}

// skippable lines may appear between tiles: blank lines and # comments.
func skippable(line string) bool {
	return line == "" || line[0] == '#'
}

// cursor walks one line a byte at a time.
type cursor struct {
	line string
	num  int
	pos  int
}

func eat[T any](cur *cursor, tok token[T]) (T, error) {
	var zero T
	if cur.pos >= len(cur.line) {
		return zero, &ParseError{Err: ErrIncompleteLine, Line: cur.num, Text: cur.line}
	}
	c := cur.line[cur.pos]
	cur.pos++

	v, ok := tok.parse(c)
	if !ok {
		return zero, &ParseError{
			Err:     ErrItemParse,
			Line:    cur.num,
			Column:  cur.pos,
			Text:    cur.line,
			Char:    c,
			Token:   tok.name,
			Allowed: tok.allowed,
		}
	}
	return v, nil
}

// wallRow parses "+W+W+W+W+".
func (cur *cursor) wallRow(walls *[GridWidth]Wall) error {
	if _, err := eat(cur, placeholderToken); err != nil {
		return err
	}
	for x := range walls {
		w, err := eat(cur, wallToken)
		if err != nil {
			return err
		}
		walls[x] = w
		if _, err := eat(cur, placeholderToken); err != nil {
			return err
		}
	}
	return nil
}

// cellRow parses "WcWcWcWcW".
func (cur *cursor) cellRow(walls *[GridWidth + 1]Wall, cells *[GridWidth]Cell) error {
	w, err := eat(cur, wallToken)
	if err != nil {
		return err
	}
	walls[0] = w
	for x := range cells {
		if cells[x], err = eat(cur, cellToken); err != nil {
			return err
		}
		if walls[x+1], err = eat(cur, wallToken); err != nil {
			return err
		}
	}
	return nil
}

func (cur *cursor) finish() error {
	if cur.pos < len(cur.line) {
		return &ParseError{Err: ErrRowHasExtra, Line: cur.num, Column: cur.pos + 1, Text: cur.line}
	}
	return nil
}

type parseState uint8

const (
	stateWallRow parseState = iota
	stateCellRow
	stateEscalators
)

func (s parseState) String() string {
	switch s {
	case stateWallRow:
		return "wall-row"
	case stateCellRow:
		return "cell-row"
	default:
		return "escalators"
	}
}

// decodeTile reads one tile body and its optional escalator line.
// Skippable lines are only allowed before the first wall row.
func decodeTile(lines *lineReader) (Tile, error) {
	var t Tile
	state := stateWallRow
	row := 0
	allowSkips := true

	for {
		line, ok, err := lines.next()
		if err != nil {
			return Tile{}, err
		}
		if !ok {
			break
		}

		logger.WithFields(log.Fields{
			"line":  lines.num,
			"text":  line,
			"state": state.String(),
			"row":   row,
		}).Trace("tile line")

		if allowSkips && skippable(line) {
			continue
		}
		allowSkips = false

		cur := &cursor{line: line, num: lines.num}
		switch state {
		case stateWallRow:
			// Guard only: the bottom wall row always moves to stateEscalators.
			if row > GridWidth {
				return Tile{}, &ParseError{Err: ErrWrongNumberOfRows, Line: lines.num, Text: line, Rows: row + 1}
			}
			if err := cur.wallRow(&t.HorzWalls[row]); err != nil {
				return Tile{}, err
			}
			if row == GridWidth {
				state = stateEscalators
			} else {
				state = stateCellRow
			}
		case stateCellRow:
			// Guard only: a cell row always follows a wall row with row < GridWidth.
			if row >= GridWidth {
				return Tile{}, &ParseError{Err: ErrWrongNumberOfRows, Line: lines.num, Text: line, Rows: row + 1}
			}
			if err := cur.cellRow(&t.VertWalls[row], &t.Cells[row]); err != nil {
				return Tile{}, err
			}
			row++
			state = stateWallRow
		case stateEscalators:
			if err := parseEscalators(line, lines.num, &t); err != nil {
				return Tile{}, err
			}
			return t, nil
		}

		if err := cur.finish(); err != nil {
			return Tile{}, err
		}
	}

	if state != stateEscalators {
		return Tile{}, &ParseError{Err: ErrIncompleteTile, Line: lines.num}
	}
	return t, nil
}

// parseEscalators reads "E: x1y1-x2y2, ..." into t. An empty line
// declares no escalators.
func parseEscalators(line string, num int, t *Tile) error {
	invalid := func(reason string, cause error) error {
		return &ParseError{Err: ErrInvalidEscalator, Cause: cause, Line: num, Text: line, Reason: reason}
	}

	if line == "" {
		return nil
	}
	rest, ok := strings.CutPrefix(line, "E:")
	if !ok {
		return invalid("invalid prefix", nil)
	}
	if !utf8.ValidString(rest) {
		return invalid("invalid UTF-8", nil)
	}

	for _, hunk := range strings.Split(rest, ",") {
		h := strings.TrimSpace(hunk)
		if len(h) != 5 || h[2] != '-' {
			return invalid("invalid escalator hunk", nil)
		}

		var digits [4]int
		for i, c := range []byte{h[0], h[1], h[3], h[4]} {
			if c < '0' || c > '9' {
				return invalid("unable to parse digit", nil)
			}
			digits[i] = int(c - '0')
		}

		a, okA := NewCoord(digits[0], digits[1])
		b, okB := NewCoord(digits[2], digits[3])
		if !okA || !okB {
			return invalid("invalid tile coordinates", nil)
		}
		e, err := NewEscalator(a, b)
		if err != nil {
			return invalid("escalator endpoints must differ", err)
		}
		if err := t.AddEscalator(e); err != nil {
			return invalid("exceeded max escalators", err)
		}
	}
	return nil
}

// ParseTile parses a single tile body, optionally followed by an
// escalator line. Lines after the tile are ignored.
func ParseTile(text string) (Tile, error) {
	return decodeTile(newLineReader(strings.NewReader(text)))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tile) UnmarshalText(text []byte) error {
	parsed, err := ParseTile(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Decoder reads a tileset: a sequence of "@name" lines, each followed by a
// tile body.
type Decoder struct {
	lines *lineReader
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{lines: newLineReader(r)}
}

// Next returns the next named tile, or ErrNoMoreTiles at end of input.
func (d *Decoder) Next() (Named, error) {
	for {
		line, ok, err := d.lines.next()
		if err != nil {
			return Named{}, err
		}
		if !ok {
			return Named{}, ErrNoMoreTiles
		}
		if skippable(line) {
			continue
		}

		if line[0] != '@' {
			return Named{}, &ParseError{Err: ErrInvalidNameLeader, Line: d.lines.num, Text: line}
		}
		name := line[1:]
		if !isASCII(name) {
			return Named{}, &ParseError{Err: ErrInvalidTileName, Line: d.lines.num, Text: name}
		}
		logger.WithField("name", name).Debug("parsed tile name")

		t, err := decodeTile(d.lines)
		if err != nil {
			return Named{}, err
		}
		return Named{Name: name, Tile: t}, nil
	}
}

// ParseTileset parses every tile of a tileset. Empty input yields an empty
// tileset.
func ParseTileset(text string) ([]Named, error) {
	logger.Debug("Parsing tileset")

	dec := NewDecoder(strings.NewReader(text))
	tiles := make([]Named, 0)
	for {
		named, err := dec.Next()
		if errors.Is(err, ErrNoMoreTiles) {
			return tiles, nil
		}
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, named)
	}
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
