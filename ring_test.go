package svgoffset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 int64) Ring {
	return Ring{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

func TestSignedArea(t *testing.T) {
	r := square(0, 0, 10, 10)
	assert.Equal(t, -200.0, r.SignedArea())

	rev := r.Clone()
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	assert.Equal(t, 200.0, rev.SignedArea())

	assert.Zero(t, Ring{}.SignedArea())
	assert.Zero(t, Ring{{1, 1}}.SignedArea())
}

func TestNormalizeWinding(t *testing.T) {
	r := Ring{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	require.True(t, NormalizeWinding(r))
	assert.Equal(t, Ring{{10, 0}, {10, 10}, {0, 10}, {0, 0}}, r)
	assert.LessOrEqual(t, r.SignedArea(), 0.0)

	// A second pass never reverses.
	before := r.Clone()
	require.False(t, NormalizeWinding(r))
	assert.Equal(t, before, r)
}

func TestNormalizeWindingDegenerate(t *testing.T) {
	line := Ring{{0, 0}, {5, 5}, {10, 10}}
	require.False(t, NormalizeWinding(line))
	assert.Equal(t, Ring{{0, 0}, {5, 5}, {10, 10}}, line)
}

func TestBoundingBox(t *testing.T) {
	b := Ring{{3, -2}, {-7, 4}, {5, 9}}.BoundingBox()
	assert.Equal(t, BBox{MinX: -7, MinY: -2, MaxX: 5, MaxY: 9}, b)
	assert.Equal(t, int64(12), b.Width())
	assert.Equal(t, int64(11), b.Height())
}

func TestRingTranslate(t *testing.T) {
	r := square(0, 0, 10, 10)
	moved := r.Translate(5, -3)
	assert.Equal(t, square(5, -3, 15, 7), moved)
	assert.Equal(t, square(0, 0, 10, 10), r, "source ring is not modified")
}
