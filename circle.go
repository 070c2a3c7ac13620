package svgoffset

import (
	"fmt"
	"strconv"
	"strings"
)

// kappa places the control points of a quarter-circle cubic arc.
const kappa = 0.5522847498

// Circle is an SVG circle element
type Circle struct {
	ID     string `xml:"id,attr"`
	Style  string `xml:"style,attr"`
	Cx     string `xml:"cx,attr"`
	Cy     string `xml:"cy,attr"`
	Radius string `xml:"r,attr"`
}

// ElementID implements Element
func (c *Circle) ElementID() string { return c.ID }

// PathData approximates the circle with four cubic arcs, clockwise from the
// rightmost point.
func (c *Circle) PathData() (string, error) {
	cx, err := lengthAttr("cx", c.Cx)
	if err != nil {
		return "", err
	}
	cy, err := lengthAttr("cy", c.Cy)
	if err != nil {
		return "", err
	}
	r, err := lengthAttr("r", c.Radius)
	if err != nil {
		return "", err
	}
	if r <= 0 {
		return "", fmt.Errorf("%w: circle %q has radius %v", ErrEmptyRing, c.ID, r)
	}

	k := kappa * r
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", f(cx+r), f(cy))
	fmt.Fprintf(&b, " C %s %s %s %s %s %s", f(cx+r), f(cy+k), f(cx+k), f(cy+r), f(cx), f(cy+r))
	fmt.Fprintf(&b, " C %s %s %s %s %s %s", f(cx-k), f(cy+r), f(cx-r), f(cy+k), f(cx-r), f(cy))
	fmt.Fprintf(&b, " C %s %s %s %s %s %s", f(cx-r), f(cy-k), f(cx-k), f(cy-r), f(cx), f(cy-r))
	fmt.Fprintf(&b, " C %s %s %s %s %s %s Z", f(cx+k), f(cy-r), f(cx+r), f(cy-k), f(cx+r), f(cy))
	return b.String(), nil
}

// lengthAttr reads a user-unit length. A missing attribute is zero and a
// trailing "px" is ignored.
func lengthAttr(name, v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	if v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: attribute %s=%q", ErrInvalidNumber, name, v)
	}
	return f, nil
}
