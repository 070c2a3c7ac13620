package svgoffset

import (
	"fmt"
	"strings"

	clipper "github.com/ctessum/go.clipper"
)

// JoinType selects how offset edges are joined at vertices.
type JoinType int

// Join styles. The ordinals match the exported JavaScript enumeration.
const (
	JoinSquare JoinType = iota
	JoinBevel
	JoinRound
	JoinMiter
)

var joinNames = map[JoinType]string{
	JoinSquare: "square",
	JoinBevel:  "bevel",
	JoinRound:  "round",
	JoinMiter:  "miter",
}

func (j JoinType) String() string {
	if s, ok := joinNames[j]; ok {
		return s
	}
	return fmt.Sprintf("JoinType(%d)", int(j))
}

// ParseJoinType returns the join style named s (case-insensitive).
func ParseJoinType(s string) (JoinType, error) {
	for j, name := range joinNames {
		if strings.EqualFold(s, name) {
			return j, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownJoinType, s)
}

// EndType selects how path ends are treated.
type EndType int

// End styles. The ordinals match the exported JavaScript enumeration.
const (
	EndPolygon EndType = iota
	EndJoined
	EndButt
	EndSquare
	EndRound
)

var endNames = map[EndType]string{
	EndPolygon: "polygon",
	EndJoined:  "joined",
	EndButt:    "butt",
	EndSquare:  "square",
	EndRound:   "round",
}

func (e EndType) String() string {
	if s, ok := endNames[e]; ok {
		return s
	}
	return fmt.Sprintf("EndType(%d)", int(e))
}

// ParseEndType returns the end style named s (case-insensitive).
func ParseEndType(s string) (EndType, error) {
	for e, name := range endNames {
		if strings.EqualFold(s, name) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEndType, s)
}

// OffsetRequest is the input handed to an Offsetter. Delta is already
// scaled to fixed-point units; MiterLimit and ArcTolerance are passed
// through unscaled.
type OffsetRequest struct {
	Ring         Ring
	Delta        float64
	Join         JoinType
	End          EndType
	MiterLimit   float64
	ArcTolerance float64
}

// Offsetter computes the polygons whose boundary lies at a signed distance
// from a ring. It may return an empty set when the ring deflates away.
type Offsetter interface {
	Offset(req OffsetRequest) (RingSet, error)
}

// ClipperOffsetter offsets rings with go.clipper's ClipperOffset.
type ClipperOffsetter struct{}

// clipperJoin maps public join styles to go.clipper's. go.clipper has no
// bevel join; the square join, which cuts the corner perpendicular to its
// bisector, is the closest shape.
var clipperJoin = map[JoinType]clipper.JoinType{
	JoinSquare: clipper.JtSquare,
	JoinBevel:  clipper.JtSquare,
	JoinRound:  clipper.JtRound,
	JoinMiter:  clipper.JtMiter,
}

var clipperEnd = map[EndType]clipper.EndType{
	EndPolygon: clipper.EtClosedPolygon,
	EndJoined:  clipper.EtClosedLine,
	EndButt:    clipper.EtOpenButt,
	EndSquare:  clipper.EtOpenSquare,
	EndRound:   clipper.EtOpenRound,
}

// Offset implements Offsetter. Panics raised by go.clipper, such as
// coordinates outside its allowed range, are returned as errors.
func (ClipperOffsetter) Offset(req OffsetRequest) (rings RingSet, err error) {
	jt, ok := clipperJoin[req.Join]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownJoinType, int(req.Join))
	}
	et, ok := clipperEnd[req.End]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownEndType, int(req.End))
	}

	defer func() {
		if r := recover(); r != nil {
			rings = nil
			err = fmt.Errorf("%w: clipper: %v", ErrOffsetFailed, r)
		}
	}()

	path := toClipperPath(req.Ring)

	co := clipper.NewClipperOffset()
	co.MiterLimit = req.MiterLimit
	co.ArcTolerance = req.ArcTolerance
	co.AddPath(path, jt, et)

	solution := co.Execute(req.Delta)
	rings = make(RingSet, 0, len(solution))
	for _, sp := range solution {
		ring := make(Ring, 0, len(sp))
		for _, ip := range sp {
			ring = append(ring, Point{X: int64(ip.X), Y: int64(ip.Y)})
		}
		rings = append(rings, ring)
	}
	return rings, nil
}

// toClipperPath drops repeated consecutive points, including a last point
// equal to the first. go.clipper compares points by pointer when it strips
// duplicates, so it cannot do this itself.
func toClipperPath(r Ring) clipper.Path {
	path := make(clipper.Path, 0, len(r))
	for i, p := range r {
		if i > 0 && p == r[i-1] {
			continue
		}
		path = append(path, clipper.NewIntPoint(clipper.CInt(p.X), clipper.CInt(p.Y)))
	}
	for len(path) > 1 && *path[0] == *path[len(path)-1] {
		path = path[:len(path)-1]
	}
	return path
}
