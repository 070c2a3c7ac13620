package svgoffset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRing(t *testing.T) {
	r := Ring{{1000, 2000}, {-1500, 0}, {3, 4}}
	assert.Equal(t, "M 1.00 2.00 L -1.50 0.00 L 0.00 0.00 Z", FormatRing(r, 1000))
	assert.Equal(t, "M 10.00 20.00 L -15.00 0.00 L 0.03 0.04 Z", FormatRing(r, 100))
	assert.Equal(t, "M 1.00 1.00 Z", FormatRing(Ring{{1000, 1000}}, 1000))
	assert.Equal(t, "", FormatRing(nil, 1000))
}

func TestFormatRings(t *testing.T) {
	rings := RingSet{
		{{0, 0}, {1000, 0}, {1000, 1000}},
		{},
		{{5000, 5000}, {6000, 5000}, {6000, 6000}},
	}
	assert.Equal(t,
		"M 0.00 0.00 L 1.00 0.00 L 1.00 1.00 Z M 5.00 5.00 L 6.00 5.00 L 6.00 6.00 Z",
		FormatRings(rings, 1000))
	assert.Equal(t, "", FormatRings(nil, 1000))
}

func TestFormatRoundTrip(t *testing.T) {
	ring, err := BuildRing("M 0 0 L 12.25 0 L 12.25 7.5 Z")
	assert.NoError(t, err)

	again, err := BuildRing(FormatRing(ring, DefaultScale))
	assert.NoError(t, err)
	assert.Equal(t, ring, again)
}
