package preview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vasalvit/svgoffset"
)

// projection maps fixed-point coordinates onto a dot grid, keeping the
// aspect ratio and centering the drawing.
type projection struct {
	minX, minY int64
	scale      float64
	offX, offY float64
}

func newProjection(box svgoffset.BBox, dotsW, dotsH int) (projection, bool) {
	if box.MinX > box.MaxX || box.MinY > box.MaxY || dotsW < 2 || dotsH < 2 {
		return projection{}, false
	}
	w := float64(max(box.Width(), 1))
	h := float64(max(box.Height(), 1))
	s := min(float64(dotsW-1)/w, float64(dotsH-1)/h)
	return projection{
		minX:  box.MinX,
		minY:  box.MinY,
		scale: s,
		offX:  (float64(dotsW-1) - w*s) / 2,
		offY:  (float64(dotsH-1) - h*s) / 2,
	}, true
}

func (p projection) apply(pt svgoffset.Point) [2]int {
	return [2]int{
		int(math.Round(float64(pt.X-p.minX)*p.scale + p.offX)),
		int(math.Round(float64(pt.Y-p.minY)*p.scale + p.offY)),
	}
}

func (p projection) ring(r svgoffset.Ring) [][2]int {
	out := make([][2]int, len(r))
	for i, pt := range r {
		out[i] = p.apply(pt)
	}
	return out
}

func union(a, b svgoffset.BBox) svgoffset.BBox {
	return svgoffset.BBox{
		MinX: min(a.MinX, b.MinX),
		MinY: min(a.MinY, b.MinY),
		MaxX: max(a.MaxX, b.MaxX),
		MaxY: max(a.MaxY, b.MaxY),
	}
}

// renderRings draws the source ring dimmed and the offset rings highlighted
// on a w x h cell canvas. Both share one projection so their relative
// position is preserved.
func renderRings(source svgoffset.Ring, rings svgoffset.RingSet, w, h int) string {
	box := source.BoundingBox()
	for _, r := range rings {
		box = union(box, r.BoundingBox())
	}

	src := newBrailleBuf(w, h)
	off := newBrailleBuf(w, h)
	if p, ok := newProjection(box, w*2, h*4); ok {
		if len(source) > 0 {
			src.polygon(p.ring(source))
		}
		for _, r := range rings {
			if len(r) > 0 {
				off.polygon(p.ring(r))
			}
		}
	}

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var row strings.Builder
		var run []rune
		var runStyle *lipgloss.Style
		flush := func() {
			if len(run) == 0 {
				return
			}
			if runStyle == nil {
				row.WriteString(string(run))
			} else {
				row.WriteString(runStyle.Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < w; x++ {
			var style *lipgloss.Style
			switch {
			case off.m[y][x] != 0:
				style = &offsetStyle
			case src.m[y][x] != 0:
				style = &dimStyle
			}
			if style != runStyle {
				flush()
				runStyle = style
			}
			src.m[y][x] |= off.m[y][x]
			run = append(run, src.cell(x, y))
		}
		flush()
		lines[y] = row.String()
	}
	return strings.Join(lines, "\n")
}
