package svgoffset

import (
	"strconv"
	"strings"
)

// FormatRing renders r as path data: "M x y", then "L x y" for each further
// point, then " Z". Coordinates are divided by scale and written with two
// decimals. An empty ring renders as "".
func FormatRing(r Ring, scale float64) string {
	if len(r) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range r {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(p.X, scale))
		b.WriteByte(' ')
		b.WriteString(formatCoord(p.Y, scale))
	}
	b.WriteString(" Z")
	return b.String()
}

// FormatRings renders each non-empty ring with FormatRing and joins the
// results with a single space.
func FormatRings(rings RingSet, scale float64) string {
	parts := make([]string, 0, len(rings))
	for _, r := range rings {
		if len(r) == 0 {
			continue
		}
		parts = append(parts, FormatRing(r, scale))
	}
	return strings.Join(parts, " ")
}

func formatCoord(v int64, scale float64) string {
	return strconv.FormatFloat(float64(v)/scale, 'f', 2, 64)
}
