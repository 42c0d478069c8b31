package exprc

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint8

//go:generate stringer -type=TokenType -trimprefix=Token
const (
	TokenNumber TokenType = iota
	TokenString
	TokenSemicolon
	TokenOperator
)

type Token struct {
	Typ   TokenType
	Value string
	Loc   Location
}

// end is the location just past the token.
func (t Token) end() Location {
	loc := t.Loc
	for _, r := range t.Value {
		if r == '\n' {
			loc.Line++
			loc.Column = 1
			continue
		}

		loc.Column++
	}

	return loc
}

// matchFunc reports the length in bytes of the match anchored at the start
// of s, or 0 when the rule does not apply.
type matchFunc func(s string) int

type rule struct {
	typ   TokenType
	skip  bool
	match matchFunc
}

// Rules are tried in order and the first match wins.
var rules = []rule{
	{skip: true, match: lineComment},
	{skip: true, match: blockComment},
	{skip: true, match: whitespace},
	{typ: TokenNumber, match: digits},
	{typ: TokenString, match: quoted},
	{typ: TokenSemicolon, match: oneOf(";")},
	{typ: TokenOperator, match: oneOf("+-*/")},
}

// Scanner is a cursor over an immutable source text. The cursor only moves
// forward.
type Scanner struct {
	src    string
	cursor int
	loc    Location
}

func NewScanner(src string) *Scanner {
	return &Scanner{
		src: src,
		loc: Location{Line: 1, Column: 1},
	}
}

// Next returns the next token, io.EOF once the input is exhausted or a
// *LexError when nothing matches at the cursor.
func (s *Scanner) Next() (Token, error) {
scan:
	for s.cursor < len(s.src) {
		rest := s.src[s.cursor:]

		for _, r := range rules {
			n := r.match(rest)
			if n == 0 {
				continue
			}

			start := s.loc
			s.advance(n)

			if r.skip {
				continue scan
			}

			return Token{
				Typ:   r.typ,
				Value: rest[:n],
				Loc:   start,
			}, nil
		}

		return Token{}, &LexError{Loc: s.loc, Near: rest}
	}

	return Token{}, io.EOF
}

// Tokenize drains a scanner over src.
func Tokenize(src string) ([]Token, error) {
	s := NewScanner(src)

	var tokens []Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		}

		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
	}
}

func (s *Scanner) advance(n int) {
	for _, r := range s.src[s.cursor : s.cursor+n] {
		if r == '\n' {
			s.loc.Line++
			s.loc.Column = 1
			continue
		}

		s.loc.Column++
	}

	s.cursor += n
}

func lineComment(s string) int {
	if !strings.HasPrefix(s, "//") {
		return 0
	}

	if end := strings.IndexAny(s, "\r\n"); end >= 0 {
		return end
	}

	return len(s)
}

func blockComment(s string) int {
	if !strings.HasPrefix(s, "/*") {
		return 0
	}

	end := strings.Index(s[2:], "*/")
	if end < 0 {
		return 0
	}

	return end + 4
}

func whitespace(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !isSpace(r) {
			break
		}

		n += size
	}

	return n
}

// isSpace matches the ECMAScript white space and line terminator set: the
// Unicode White_Space property without U+0085, plus the byte order mark.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}

	return unicode.IsSpace(r)
}

func digits(s string) int {
	n := 0
	for n < len(s) && '0' <= s[n] && s[n] <= '9' {
		n++
	}

	return n
}

// quoted matches a single- or double-quoted string closed by the same quote.
// Escapes are not recognised.
func quoted(s string) int {
	if s == "" || (s[0] != '"' && s[0] != '\'') {
		return 0
	}

	end := strings.IndexByte(s[1:], s[0])
	if end < 0 {
		return 0
	}

	return end + 2
}

func oneOf(chars string) matchFunc {
	return func(s string) int {
		if s != "" && strings.IndexByte(chars, s[0]) >= 0 {
			return 1
		}

		return 0
	}
}
