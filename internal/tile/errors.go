package tile

import (
	"errors"
	"fmt"
)

// Parse failure kinds. A *ParseError always wraps exactly one of these.
var (
	ErrInvalidNameLeader = errors.New("invalid tile name leader")
	ErrInvalidTileName   = errors.New("invalid tile name")
	ErrIncompleteTile    = errors.New("incomplete tile")
	ErrIncompleteLine    = errors.New("incomplete line")
	ErrWrongNumberOfRows = errors.New("wrong number of rows")
	ErrRowHasExtra       = errors.New("row has extra characters")
	ErrItemParse         = errors.New("invalid item")
	ErrInvalidEscalator  = errors.New("invalid escalator")
)

// ErrNoMoreTiles is returned by Decoder.Next once the input is exhausted.
var ErrNoMoreTiles = errors.New("no more tiles found")

// ParseError describes where and why tile notation could not be parsed.
type ParseError struct {
	// Err is the failure kind, one of the Err* values above.
	Err error
	// Cause is an optional underlying error, such as ErrTooManyEscalators.
	Cause error

	Line   int    // 1-based line number
	Column int    // 1-based byte column, 0 when not tied to a column
	Text   string // the offending line

	// Set for ErrItemParse.
	Char    byte
	Token   string
	Allowed string

	// Set for ErrInvalidEscalator.
	Reason string

	// Set for ErrWrongNumberOfRows.
	Rows int
}

func (e *ParseError) Error() string {
	switch e.Err {
	case ErrInvalidNameLeader:
		return fmt.Sprintf("expected tile name leader '@' at line %d, found line %q", e.Line, e.Text)
	case ErrInvalidTileName:
		return fmt.Sprintf("expected ASCII tile name at line %d, found %q", e.Line, e.Text)
	case ErrIncompleteTile:
		return fmt.Sprintf("incomplete tile at line %d", e.Line)
	case ErrIncompleteLine:
		return fmt.Sprintf("unexpected end of line %d: %q", e.Line, e.Text)
	case ErrWrongNumberOfRows:
		return fmt.Sprintf("invalid number of rows at line %d: found %d rows", e.Line, e.Rows)
	case ErrRowHasExtra:
		return fmt.Sprintf("row has extra characters on line %d column %d: %q", e.Line, e.Column, e.Text)
	case ErrItemParse:
		return fmt.Sprintf("failed to parse item %q as %s on line %d column %d: %q; must be in %q",
			string([]byte{e.Char}), e.Token, e.Line, e.Column, e.Text, e.Allowed)
	case ErrInvalidEscalator:
		return fmt.Sprintf("invalid escalator specification on line %d: %q; %s", e.Line, e.Text, e.Reason)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes both the failure kind and the cause to errors.Is.
func (e *ParseError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}
