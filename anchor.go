package svgoffset

import (
	"math"

	mt "github.com/rustyoz/Mtransform"
)

// Anchor pins a point, given as fractions of the bounding box per axis,
// across an offset: the point at those fractions of the source ring's box
// and of the offset ring's box end up at the same absolute position. An
// axis without a fraction is not translated. Fractions are not clamped.
//
// The zero Anchor pins nothing.
type Anchor struct {
	X, Y       float64
	HasX, HasY bool
}

// AnchorAt pins the point at fractions (fx, fy) of the bounding box.
// AnchorAt(0.5, 0.5) keeps the box center in place.
func AnchorAt(fx, fy float64) Anchor {
	return Anchor{X: fx, Y: fy, HasX: true, HasY: true}
}

// AnchorX pins only the horizontal position.
func AnchorX(fx float64) Anchor {
	return Anchor{X: fx, HasX: true}
}

// AnchorY pins only the vertical position.
func AnchorY(fy float64) Anchor {
	return Anchor{Y: fy, HasY: true}
}

// IsZero reports whether the anchor pins neither axis.
func (a Anchor) IsZero() bool {
	return !a.HasX && !a.HasY
}

// Delta returns the translation that moves the anchor point of the offset
// box onto the anchor point of the source box, truncated toward zero and
// saturated to the int64 range. A non-finite difference yields 0.
func (a Anchor) Delta(source, offset BBox) (dx, dy int64) {
	if a.HasX {
		dx = saturate(anchorPos(source.MinX, source.MaxX, a.X) - anchorPos(offset.MinX, offset.MaxX, a.X))
	}
	if a.HasY {
		dy = saturate(anchorPos(source.MinY, source.MaxY, a.Y) - anchorPos(offset.MinY, offset.MaxY, a.Y))
	}
	return dx, dy
}

// saturate truncates v toward zero. NaN maps to 0 and values outside the
// int64 range, infinities included, clamp to its bounds.
func saturate(v float64) int64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

func anchorPos(lo, hi int64, f float64) float64 {
	return float64(lo) + float64(hi-lo)*f
}

// Translate returns a copy of r moved by (dx, dy).
func (r Ring) Translate(dx, dy int64) Ring {
	t := mt.NewTransform()
	t.Translate(float64(dx), float64(dy))
	out := make(Ring, len(r))
	for i, p := range r {
		x, y := t.Apply(float64(p.X), float64(p.Y))
		out[i] = Point{X: saturate(x), Y: saturate(y)}
	}
	return out
}

// pinAnchor translates every ring of rings by the delta computed between
// source and the first ring.
func pinAnchor(source Ring, rings RingSet, a Anchor) RingSet {
	if a.IsZero() || len(rings) == 0 {
		return rings
	}
	dx, dy := a.Delta(source.BoundingBox(), rings[0].BoundingBox())
	Logger().Debug("svgoffset: anchor delta", "dx", dx, "dy", dy)
	if dx == 0 && dy == 0 {
		return rings
	}
	out := make(RingSet, len(rings))
	for i, r := range rings {
		out[i] = r.Translate(dx, dy)
	}
	return out
}
