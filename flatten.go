package svgoffset

import (
	"fmt"

	"github.com/gogpu/gg"
	mt "github.com/rustyoz/Mtransform"
)

// Flattener approximates Bézier segments with straight lines. Both methods
// return the points after the start point, ending with the end point.
type Flattener interface {
	FlattenCubic(p0, c1, c2, p3 Tuple, tolerance float64) []Tuple
	FlattenQuad(p0, c, p2 Tuple, tolerance float64) []Tuple
}

// GGFlattener flattens curves with the recursive subdivision of gg.Path.
//
// Every curve is split at t=0.5 first. gg's flatness metric measures the
// control points against the chord, so a curve whose control points are
// collinear with its ends would otherwise collapse to a single segment.
type GGFlattener struct{}

// FlattenCubic implements Flattener.
func (GGFlattener) FlattenCubic(p0, c1, c2, p3 Tuple, tolerance float64) []Tuple {
	left, right := gg.NewCubicBez(ggPoint(p0), ggPoint(c1), ggPoint(c2), ggPoint(p3)).Subdivide()
	path := gg.NewPath()
	path.MoveTo(p0[0], p0[1])
	path.CubicTo(left.P1.X, left.P1.Y, left.P2.X, left.P2.Y, left.P3.X, left.P3.Y)
	path.CubicTo(right.P1.X, right.P1.Y, right.P2.X, right.P2.Y, right.P3.X, right.P3.Y)
	return fromGGPoints(path.Flatten(tolerance))
}

// FlattenQuad implements Flattener.
func (GGFlattener) FlattenQuad(p0, c, p2 Tuple, tolerance float64) []Tuple {
	left, right := gg.NewQuadBez(ggPoint(p0), ggPoint(c), ggPoint(p2)).Subdivide()
	path := gg.NewPath()
	path.MoveTo(p0[0], p0[1])
	path.QuadraticTo(left.P1.X, left.P1.Y, left.P2.X, left.P2.Y)
	path.QuadraticTo(right.P1.X, right.P1.Y, right.P2.X, right.P2.Y)
	return fromGGPoints(path.Flatten(tolerance))
}

func ggPoint(t Tuple) gg.Point {
	return gg.Pt(t[0], t[1])
}

// fromGGPoints drops the leading moveto point.
func fromGGPoints(pts []gg.Point) []Tuple {
	if len(pts) < 2 {
		return nil
	}
	out := make([]Tuple, 0, len(pts)-1)
	for _, p := range pts[1:] {
		out = append(out, Tuple{p.X, p.Y})
	}
	return out
}

// Flatten converts drawing instructions into a fixed-point ring. Move and
// line targets become one point each, curves are flattened at the
// configured tolerance in source units, and close/end directives add
// nothing. Every sub-path is appended to the same ring.
func Flatten(instructions []DrawingInstruction, opts ...Option) (Ring, error) {
	return flatten(instructions, newConfig(opts))
}

func flatten(instructions []DrawingInstruction, cfg Config) (Ring, error) {
	toFixed := mt.NewTransform()
	toFixed.Scale(cfg.Scale, cfg.Scale)

	ring := make(Ring, 0, len(instructions))
	add := func(t Tuple) {
		x, y := toFixed.Apply(t[0], t[1])
		// Conversion truncates toward zero.
		ring = append(ring, Point{X: int64(x), Y: int64(y)})
	}

	var current Tuple
	for _, di := range instructions {
		switch di.Kind {
		case MoveInstruction, LineInstruction:
			add(di.T)
		case CubicInstruction:
			for _, t := range cfg.Flattener.FlattenCubic(current, di.C1, di.C2, di.T, cfg.FlattenTolerance) {
				add(t)
			}
		case QuadInstruction:
			for _, t := range cfg.Flattener.FlattenQuad(current, di.C1, di.T, cfg.FlattenTolerance) {
				add(t)
			}
		case CloseInstruction, EndInstruction:
			continue
		default:
			return nil, fmt.Errorf("%w: unknown instruction %v", ErrMalformedPath, di.Kind)
		}
		current = di.T
	}

	if len(ring) == 0 {
		return nil, ErrEmptyRing
	}
	return ring, nil
}

// BuildRing parses d, flattens it and normalizes its winding. The result
// is the ring handed to the offsetter.
func BuildRing(d string, opts ...Option) (Ring, error) {
	return buildRing(d, newConfig(opts))
}

func buildRing(d string, cfg Config) (Ring, error) {
	instructions, err := ParsePath(d)
	if err != nil {
		return nil, err
	}
	ring, err := flatten(instructions, cfg)
	if err != nil {
		return nil, err
	}
	reversed := NormalizeWinding(ring)
	Logger().Debug("svgoffset: built ring", "points", len(ring), "reversed", reversed)
	return ring, nil
}

// ValidatePath reports whether d parses and flattens into a non-empty ring.
// It does not check the point count required for offsetting.
func ValidatePath(d string, opts ...Option) bool {
	_, err := BuildRing(d, opts...)
	return err == nil
}
