package svgoffset

import (
	"fmt"
	"strings"
)

// Path is an SVG path element
type Path struct {
	ID    string `xml:"id,attr"`
	D     string `xml:"d,attr"`
	Style string `xml:"style,attr"`
	Fill  string `xml:"fill,attr"`
}

// ElementID implements Element
func (p *Path) ElementID() string { return p.ID }

// PathData implements Element
func (p *Path) PathData() (string, error) { return p.D, nil }

// pathDescriptionParser turns the d attribute grammar into a sequence of
// absolute DrawingInstructions.
//
// Only one sub-path is meaningful downstream: a second M ends the previous
// sub-path with an EndInstruction and the flattener joins every sub-path
// into a single ring.
type pathDescriptionParser struct {
	s              *scanner
	x, y           float64
	startX, startY float64
	open           bool
	instructions   []DrawingInstruction
}

func newPathDParse(d string) *pathDescriptionParser {
	return &pathDescriptionParser{s: newScanner(d)}
}

// ParsePath parses SVG path data made of M, L, H, V, C, Q and Z commands
// (upper case absolute, lower case relative). A sub-path that is still open
// at the end of the input is closed.
func ParsePath(d string) ([]DrawingInstruction, error) {
	if strings.TrimSpace(d) == "" {
		return nil, ErrEmptyInput
	}
	pdp := newPathDParse(d)
	if err := pdp.parse(); err != nil {
		return nil, err
	}
	Logger().Debug("svgoffset: parsed path", "instructions", len(pdp.instructions))
	return pdp.instructions, nil
}

func (pdp *pathDescriptionParser) parse() error {
	for {
		pdp.s.skipSeparators()
		if pdp.s.eof() {
			break
		}
		pos := pdp.s.pos
		r, w := pdp.s.peek()
		if !isCommand(r) {
			return pdp.malformed("unexpected character %q at offset %d", r, pos)
		}
		pdp.s.pos += w
		if err := pdp.parseCommand(r, pos); err != nil {
			return err
		}
	}
	if pdp.open {
		pdp.emit(DrawingInstruction{Kind: CloseInstruction})
		pdp.open = false
	}
	return nil
}

func isCommand(r rune) bool {
	return strings.ContainsRune("MmLlHhVvCcQqZz", r)
}

func (pdp *pathDescriptionParser) parseCommand(cmd rune, pos int) error {
	switch {
	case pdp.open, cmd == 'M', cmd == 'm':
	case cmd == 'Z', cmd == 'z':
		// Nothing left to close.
		return nil
	default:
		return pdp.malformed("%q at offset %d has no current sub-path, expected M", cmd, pos)
	}

	switch cmd {
	case 'M', 'm':
		return pdp.parseMoveTo(cmd)
	case 'L', 'l':
		return pdp.repeat(cmd, pdp.parseLineTo)
	case 'H', 'h':
		return pdp.repeat(cmd, pdp.parseHLineTo)
	case 'V', 'v':
		return pdp.repeat(cmd, pdp.parseVLineTo)
	case 'C', 'c':
		return pdp.repeat(cmd, pdp.parseCurveTo)
	case 'Q', 'q':
		return pdp.repeat(cmd, pdp.parseQuadTo)
	case 'Z', 'z':
		pdp.parseClose()
	}
	return nil
}

// repeat runs fn for the mandatory first coordinate set of cmd and then for
// every further set that follows before the next command letter.
func (pdp *pathDescriptionParser) repeat(cmd rune, fn func(rel bool) error) error {
	rel := cmd >= 'a'
	pdp.s.skipSeparators()
	if err := fn(rel); err != nil {
		return fmt.Errorf("%w: %c command: %w", ErrMalformedPath, cmd, err)
	}
	for {
		pdp.s.skipSeparators()
		if !pdp.s.atNumber() {
			return nil
		}
		if err := fn(rel); err != nil {
			return fmt.Errorf("%w: %c command: %w", ErrMalformedPath, cmd, err)
		}
	}
}

func (pdp *pathDescriptionParser) parseMoveTo(cmd rune) error {
	rel := cmd == 'm'
	pdp.s.skipSeparators()
	t, err := pdp.tuple()
	if err != nil {
		return fmt.Errorf("%w: %c command: %w", ErrMalformedPath, cmd, err)
	}
	if rel {
		t[0] += pdp.x
		t[1] += pdp.y
	}
	if pdp.open {
		pdp.emit(DrawingInstruction{Kind: EndInstruction})
	}
	pdp.emit(DrawingInstruction{Kind: MoveInstruction, T: t})
	pdp.x, pdp.y = t[0], t[1]
	pdp.startX, pdp.startY = t[0], t[1]
	pdp.open = true

	// Extra pairs after a moveto are implicit linetos.
	pdp.s.skipSeparators()
	if !pdp.s.atNumber() {
		return nil
	}
	lineCmd := 'L'
	if rel {
		lineCmd = 'l'
	}
	return pdp.repeat(lineCmd, pdp.parseLineTo)
}

func (pdp *pathDescriptionParser) parseLineTo(rel bool) error {
	t, err := pdp.tuple()
	if err != nil {
		return err
	}
	t = pdp.resolve(t, rel)
	pdp.emit(DrawingInstruction{Kind: LineInstruction, T: t})
	pdp.x, pdp.y = t[0], t[1]
	return nil
}

func (pdp *pathDescriptionParser) parseHLineTo(rel bool) error {
	n, err := pdp.s.number()
	if err != nil {
		return err
	}
	if rel {
		n += pdp.x
	}
	pdp.x = n
	pdp.emit(DrawingInstruction{Kind: LineInstruction, T: Tuple{pdp.x, pdp.y}})
	return nil
}

func (pdp *pathDescriptionParser) parseVLineTo(rel bool) error {
	n, err := pdp.s.number()
	if err != nil {
		return err
	}
	if rel {
		n += pdp.y
	}
	pdp.y = n
	pdp.emit(DrawingInstruction{Kind: LineInstruction, T: Tuple{pdp.x, pdp.y}})
	return nil
}

func (pdp *pathDescriptionParser) parseCurveTo(rel bool) error {
	var tuples [3]Tuple
	for i := range tuples {
		t, err := pdp.tuple()
		if err != nil {
			return err
		}
		tuples[i] = pdp.resolve(t, rel)
	}
	pdp.emit(DrawingInstruction{
		Kind: CubicInstruction,
		C1:   tuples[0],
		C2:   tuples[1],
		T:    tuples[2],
	})
	pdp.x, pdp.y = tuples[2][0], tuples[2][1]
	return nil
}

func (pdp *pathDescriptionParser) parseQuadTo(rel bool) error {
	var tuples [2]Tuple
	for i := range tuples {
		t, err := pdp.tuple()
		if err != nil {
			return err
		}
		tuples[i] = pdp.resolve(t, rel)
	}
	pdp.emit(DrawingInstruction{
		Kind: QuadInstruction,
		C1:   tuples[0],
		T:    tuples[1],
	})
	pdp.x, pdp.y = tuples[1][0], tuples[1][1]
	return nil
}

func (pdp *pathDescriptionParser) parseClose() {
	pdp.emit(DrawingInstruction{Kind: CloseInstruction})
	pdp.open = false
	pdp.x, pdp.y = pdp.startX, pdp.startY
}

// tuple reads an x,y pair. The separator between the two numbers is
// optional when the second one carries its own sign.
func (pdp *pathDescriptionParser) tuple() (Tuple, error) {
	x, err := pdp.s.number()
	if err != nil {
		return Tuple{}, err
	}
	pdp.s.skipSeparators()
	y, err := pdp.s.number()
	if err != nil {
		return Tuple{}, err
	}
	return Tuple{x, y}, nil
}

// resolve makes a coordinate absolute. Relative coordinates are measured
// from the current point at the start of the command segment.
func (pdp *pathDescriptionParser) resolve(t Tuple, rel bool) Tuple {
	if rel {
		return Tuple{pdp.x + t[0], pdp.y + t[1]}
	}
	return t
}

func (pdp *pathDescriptionParser) emit(di DrawingInstruction) {
	pdp.instructions = append(pdp.instructions, di)
}

func (pdp *pathDescriptionParser) malformed(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrMalformedPath}, args...)...)
}
