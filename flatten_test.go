package svgoffset

import (
	"errors"
	"testing"

	"github.com/cheekybits/is"
)

type recordingFlattener struct {
	tolerances []float64
}

func (f *recordingFlattener) FlattenCubic(p0, c1, c2, p3 Tuple, tolerance float64) []Tuple {
	f.tolerances = append(f.tolerances, tolerance)
	return []Tuple{c1, c2, p3}
}

func (f *recordingFlattener) FlattenQuad(p0, c, p2 Tuple, tolerance float64) []Tuple {
	f.tolerances = append(f.tolerances, tolerance)
	return []Tuple{c, p2}
}

func TestFlattenCollinearCubic(t *testing.T) {
	is := is.New(t)

	ring, err := BuildRing("M 0 0 C 10 10 20 20 30 30 Z")
	is.NoErr(err)
	is.True(len(ring) > 2)
	is.True(ValidatePath("M 0 0 C 10 10 20 20 30 30 Z"))
}

func TestGGFlattenerEndsOnEndPoint(t *testing.T) {
	is := is.New(t)

	var f GGFlattener
	pts := f.FlattenCubic(Tuple{0, 0}, Tuple{0, 50}, Tuple{100, 50}, Tuple{100, 0}, 0.1)
	is.True(len(pts) > 2)
	is.Equal(pts[len(pts)-1], Tuple{100, 0})

	pts = f.FlattenQuad(Tuple{0, 0}, Tuple{50, 50}, Tuple{100, 0}, 0.1)
	is.True(len(pts) > 2)
	is.Equal(pts[len(pts)-1], Tuple{100, 0})
	for _, p := range pts {
		is.True(p != Tuple{0, 0})
	}
}

func TestFlattenScalesAndTruncates(t *testing.T) {
	is := is.New(t)

	instructions, err := ParsePath("M 1.2345 -1.2345 L 2.9999 0.5")
	is.NoErr(err)

	ring, err := Flatten(instructions)
	is.NoErr(err)
	is.Equal(ring, Ring{{1234, -1234}, {2999, 500}})

	ring, err = Flatten(instructions, WithScale(10))
	is.NoErr(err)
	is.Equal(ring, Ring{{12, -12}, {29, 5}})
}

func TestFlattenUsesConfiguredFlattener(t *testing.T) {
	is := is.New(t)

	f := &recordingFlattener{}
	ring, err := BuildRing("M 0 0 C 1 0 2 1 2 2 Q 1 3 0 2 Z", WithFlattener(f), WithFlattenTolerance(0.5), WithScale(1))
	is.NoErr(err)
	is.Equal(f.tolerances, []float64{0.5, 0.5})
	is.Equal(len(ring), 6)
}

func TestFlattenJoinsSubPaths(t *testing.T) {
	is := is.New(t)

	instructions, err := ParsePath("M 0 0 L 1 0 L 1 1 Z M 5 5 L 6 5 L 6 6")
	is.NoErr(err)
	ring, err := Flatten(instructions, WithScale(1))
	is.NoErr(err)
	is.Equal(len(ring), 6)
}

func TestFlattenEmpty(t *testing.T) {
	is := is.New(t)

	_, err := Flatten([]DrawingInstruction{{Kind: CloseInstruction}, {Kind: EndInstruction}})
	is.True(errors.Is(err, ErrEmptyRing))

	_, err = Flatten([]DrawingInstruction{{Kind: InstructionType(42)}})
	is.True(errors.Is(err, ErrMalformedPath))
}

func TestBuildRingNormalizesWinding(t *testing.T) {
	is := is.New(t)

	ring, err := BuildRing("M0 0 L0 10 L10 10 L10 0 Z")
	is.NoErr(err)
	is.True(ring.SignedArea() <= 0)
	is.Equal(ring[0], Point{10000, 0})
}

func TestValidatePath(t *testing.T) {
	is := is.New(t)

	is.True(ValidatePath("M 0 0 L 1 1"))
	is.True(ValidatePath("m 0 0 h 10 v 10 h -10 z"))
	is.True(ValidatePath("M,0,0 L,10,0 L 10 10 Z"))
	is.True(!ValidatePath(""))
	is.True(!ValidatePath("INVALID"))
	is.True(!ValidatePath("M 0 0 A 1 1 0 0 0 5 5"))
	is.True(!ValidatePath("M 0 0 L 1"))
}
