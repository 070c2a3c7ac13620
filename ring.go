package svgoffset

import (
	"math"
	"slices"
)

// Point is a fixed-point coordinate: source units multiplied by the
// configured scale and truncated toward zero.
type Point struct {
	X, Y int64
}

// Ring is a closed polygon boundary. The closing edge from the last point
// back to the first is implicit; the first point is not repeated.
type Ring []Point

// RingSet is the output of the offsetting step. It may be empty.
type RingSet []Ring

// BBox is an axis-aligned bounding box in fixed-point coordinates.
type BBox struct {
	MinX, MinY, MaxX, MaxY int64
}

// Width returns MaxX-MinX.
func (b BBox) Width() int64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b BBox) Height() int64 { return b.MaxY - b.MinY }

// BoundingBox returns the bounding box of the ring. The box of an empty ring
// has Min values above Max values.
func (r Ring) BoundingBox() BBox {
	b := BBox{
		MinX: math.MaxInt64, MinY: math.MaxInt64,
		MaxX: math.MinInt64, MaxY: math.MinInt64,
	}
	for _, p := range r {
		b.MinX = min(b.MinX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxX = max(b.MaxX, p.X)
		b.MaxY = max(b.MaxY, p.Y)
	}
	return b
}

// SignedArea returns the shoelace sum over consecutive point pairs,
// wrapping from the last point to the first. With the Y axis pointing down
// a positive value means the ring runs clockwise on screen.
func (r Ring) SignedArea() float64 {
	var area float64
	for i := range r {
		j := (i + 1) % len(r)
		area += float64(r[j].X-r[i].X) * float64(r[j].Y+r[i].Y)
	}
	return area
}

// NormalizeWinding reverses r in place when its signed area is strictly
// positive, so that outer contours have the orientation the offsetter
// expects. It reports whether the ring was reversed. Running it again on
// the result never reverses.
func NormalizeWinding(r Ring) bool {
	if r.SignedArea() > 0 {
		slices.Reverse(r)
		return true
	}
	return false
}

// Clone returns a copy of r.
func (r Ring) Clone() Ring {
	return slices.Clone(r)
}
