package svgoffset

import (
	"fmt"
	"strconv"
	"strings"
)

// PolyLine is an SVG polyline or polygon element: a set of connected line
// segments. Polygons are closed explicitly, polylines by the parser.
type PolyLine struct {
	ID     string `xml:"id,attr"`
	Style  string `xml:"style,attr"`
	Points string `xml:"points,attr"`
	Closed bool   `xml:"-"`
}

// ElementID implements Element
func (l *PolyLine) ElementID() string { return l.ID }

// PathData converts the points list to an M/L path.
func (l *PolyLine) PathData() (string, error) {
	s := newScanner(l.Points)
	var coords []float64
	for {
		s.skipSeparators()
		if s.eof() {
			break
		}
		v, err := s.number()
		if err != nil {
			return "", fmt.Errorf("%w: points of %q: %w", ErrMalformedPath, l.ID, err)
		}
		coords = append(coords, v)
	}
	if len(coords) == 0 {
		return "", ErrEmptyInput
	}
	if len(coords)%2 != 0 {
		return "", fmt.Errorf("%w: points of %q has an odd number of coordinates", ErrMalformedPath, l.ID)
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	var b strings.Builder
	for i := 0; i < len(coords); i += 2 {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(f(coords[i]))
		b.WriteByte(' ')
		b.WriteString(f(coords[i+1]))
	}
	if l.Closed {
		b.WriteString(" Z")
	}
	return b.String(), nil
}
