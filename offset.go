// Package svgoffset grows or shrinks the outline described by SVG path data
// by a signed distance. Path data is parsed, flattened to a fixed-point
// polygon, offset and written back as path data.
package svgoffset

import (
	"errors"
	"fmt"
	"math"
)

// Params describes one offset operation.
type Params struct {
	// Distance is the signed offset in source units: positive inflates,
	// negative deflates.
	Distance     float64
	Join         JoinType
	End          EndType
	MiterLimit   float64
	ArcTolerance float64
	Anchor       Anchor
}

// DefaultParams returns round joins, polygon ends, a miter limit of 2 and an
// arc tolerance of 0.25 with no anchor.
func DefaultParams(distance float64) Params {
	return Params{
		Distance:     distance,
		Join:         JoinRound,
		End:          EndPolygon,
		MiterLimit:   DefaultMiterLimit,
		ArcTolerance: DefaultArcTolerance,
	}
}

// Result is the outcome of Offset.
type Result struct {
	// Input is the path data that was offset.
	Input string
	// Unchanged is set when the distance was below the configured minimum
	// and nothing was computed.
	Unchanged bool
	// Source is the flattened, winding-normalized input ring.
	Source Ring
	// Rings holds every ring returned by the offsetter, translated by the
	// anchor delta. It is empty when the path deflated away.
	Rings RingSet
	// Scale is the fixed-point scale the rings are expressed in.
	Scale float64
}

// Deflated reports whether the offset removed the shape entirely.
func (r *Result) Deflated() bool {
	return !r.Unchanged && len(r.Rings) == 0
}

// First returns the first offset ring, or nil.
func (r *Result) First() Ring {
	if len(r.Rings) == 0 {
		return nil
	}
	return r.Rings[0]
}

// PathData returns the first ring as path data. It returns the input for an
// unchanged result and "" for a deflated one.
func (r *Result) PathData() string {
	if r.Unchanged {
		return r.Input
	}
	return FormatRing(r.First(), r.Scale)
}

// String returns every ring as path data.
func (r *Result) String() string {
	if r.Unchanged {
		return r.Input
	}
	return FormatRings(r.Rings, r.Scale)
}

// Offset parses d, offsets it by p.Distance and returns every resulting
// ring. When p.Anchor pins an axis, the translation computed from the first
// ring is applied to all rings.
func Offset(d string, p Params, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	if math.IsNaN(p.Distance) || math.IsInf(p.Distance, 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, p.Distance)
	}
	if math.Abs(p.Distance) < cfg.MinDistance {
		return &Result{Input: d, Unchanged: true, Scale: cfg.Scale}, nil
	}
	if _, ok := joinNames[p.Join]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownJoinType, int(p.Join))
	}
	if _, ok := endNames[p.End]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEndType, int(p.End))
	}

	ring, err := buildRing(d, cfg)
	if err != nil {
		return nil, err
	}
	if len(ring) < 3 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewPoints, len(ring))
	}

	rings, err := cfg.Offsetter.Offset(OffsetRequest{
		Ring:         ring,
		Delta:        p.Distance * cfg.Scale,
		Join:         p.Join,
		End:          p.End,
		MiterLimit:   p.MiterLimit,
		ArcTolerance: p.ArcTolerance,
	})
	if err != nil {
		if !errors.Is(err, ErrOffsetFailed) {
			err = fmt.Errorf("%w: %w", ErrOffsetFailed, err)
		}
		return nil, err
	}
	Logger().Debug("svgoffset: offset", "distance", p.Distance, "join", p.Join, "end", p.End, "rings", len(rings))

	return &Result{
		Input:  d,
		Source: ring,
		Rings:  pinAnchor(ring, rings, p.Anchor),
		Scale:  cfg.Scale,
	}, nil
}

// OffsetPath offsets d and returns the first resulting ring as path data.
// It returns d unchanged when |distance| is below the minimum distance and
// "" when the shape deflates away. Further rings are dropped; use Offset to
// get all of them.
func OffsetPath(d string, distance float64, join JoinType, end EndType, miterLimit, arcTolerance float64, anchor Anchor, opts ...Option) (string, error) {
	res, err := Offset(d, Params{
		Distance:     distance,
		Join:         join,
		End:          end,
		MiterLimit:   miterLimit,
		ArcTolerance: arcTolerance,
		Anchor:       anchor,
	}, opts...)
	if err != nil {
		return "", err
	}
	if len(res.Rings) > 1 {
		Logger().Warn("svgoffset: offset produced several rings, returning the first", "rings", len(res.Rings))
	}
	return res.PathData(), nil
}

// OffsetPathSimple is OffsetPath with DefaultParams.
func OffsetPathSimple(d string, distance float64, opts ...Option) (string, error) {
	p := DefaultParams(distance)
	return OffsetPath(d, distance, p.Join, p.End, p.MiterLimit, p.ArcTolerance, p.Anchor, opts...)
}
