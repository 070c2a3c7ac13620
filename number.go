package svgoffset

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// scanner is a cursor over path data.
type scanner struct {
	src string
	pos int
}

func newScanner(src string) *scanner {
	return &scanner{src: src}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

// peek returns the rune at the cursor without consuming it.
func (s *scanner) peek() (rune, int) {
	if s.eof() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.src[s.pos:])
}

func (s *scanner) skipWhitespace() {
	for !s.eof() {
		r, w := s.peek()
		if !unicode.IsSpace(r) {
			return
		}
		s.pos += w
	}
}

// skipSeparators consumes any run of whitespace and commas.
func (s *scanner) skipSeparators() {
	for !s.eof() {
		r, w := s.peek()
		if r != ',' && !unicode.IsSpace(r) {
			return
		}
		s.pos += w
	}
}

// atNumber reports whether the cursor sits on something that starts a
// number token.
func (s *scanner) atNumber() bool {
	if s.eof() {
		return false
	}
	c := s.src[s.pos]
	return c == '-' || c == '.' || isDigit(c)
}

// number scans an optionally negative decimal with an optional fraction
// and exponent. Leading whitespace is skipped. On failure the cursor is
// left at the start of the token.
func (s *scanner) number() (float64, error) {
	s.skipWhitespace()
	start := s.pos
	i := s.pos
	if i < len(s.src) && s.src[i] == '-' {
		i++
	}

	var hasDigit, hasDot bool
scan:
	for i < len(s.src) {
		c := s.src[i]
		switch {
		case isDigit(c):
			hasDigit = true
			i++
		case c == '.' && !hasDot:
			hasDot = true
			i++
		case (c == 'e' || c == 'E') && hasDigit:
			j := i + 1
			if j < len(s.src) && (s.src[j] == '+' || s.src[j] == '-') {
				j++
			}
			if j >= len(s.src) || !isDigit(s.src[j]) {
				return 0, fmt.Errorf("%w: exponent without digits at offset %d", ErrInvalidNumber, start)
			}
			for j < len(s.src) && isDigit(s.src[j]) {
				j++
			}
			i = j
			break scan
		default:
			break scan
		}
	}

	if !hasDigit {
		return 0, fmt.Errorf("%w at offset %d", ErrInvalidNumber, start)
	}

	v, err := strconv.ParseFloat(s.src[start:i], 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q out of range at offset %d", ErrInvalidNumber, s.src[start:i], start)
		}
		return 0, fmt.Errorf("%w: %q at offset %d", ErrInvalidNumber, s.src[start:i], start)
	}
	s.pos = i
	return v, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
