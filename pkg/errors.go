package exprc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnexpectedEOF     = errors.New("unexpected end of input")
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrUnexpectedLiteral = errors.New("unexpected literal")
)

// nearLimit bounds how much of the remaining input a LexError prints.
const nearLimit = 20

type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// LexError is returned when no lexical rule matches at the cursor. Near holds
// the whole unconsumed input from that point.
type LexError struct {
	Loc  Location
	Near string
}

func (e *LexError) Error() string {
	near := e.Near
	if n := strings.IndexAny(near, "\r\n"); n >= 0 {
		near = near[:n]
	}

	if r := []rune(near); len(r) > nearLimit {
		near = string(r[:nearLimit]) + "..."
	}

	return fmt.Sprintf("%s: unexpected token near %q", e.Loc, near)
}

// ParseError describes a grammar violation. Found is nil when the input ended
// before the expected token.
type ParseError struct {
	Err      error
	Loc      Location
	Expected []TokenType
	Found    *Token
}

func (e *ParseError) Error() string {
	expected := make([]string, 0, len(e.Expected))
	for _, typ := range e.Expected {
		expected = append(expected, typ.String())
	}

	want := strings.Join(expected, " or ")

	switch {
	case errors.Is(e.Err, ErrUnexpectedLiteral):
		if e.Found == nil {
			return fmt.Sprintf("%s: %s: end of input", e.Loc, e.Err)
		}

		return fmt.Sprintf("%s: %s: %s", e.Loc, e.Err, e.Found.Typ)
	case e.Found == nil:
		return fmt.Sprintf("%s: %s, expected: %s", e.Loc, e.Err, want)
	default:
		return fmt.Sprintf("%s: %s: %s, expected: %s", e.Loc, e.Err, e.Found.Value, want)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
