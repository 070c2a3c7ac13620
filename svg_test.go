package svgoffset

import (
	"errors"
	"strings"
	"testing"

	"github.com/cheekybits/is"
)

const testSvg = `<?xml version="1.0" encoding="utf-8"?>
<!-- Generator: Adobe Illustrator 15.0.2, SVG Export Plug-In . SVG Version: 6.00 Build 0)  -->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.1//EN" "http://www.w3.org/Graphics/SVG/1.1/DTD/svg11.dtd">
<svg version="1.1" id="Layer_1" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" x="0px" y="0px"
	 width="595.201px" height="841.922px" viewBox="0 0 595.201 841.922" enable-background="new 0 0 595.201 841.922"
	 xml:space="preserve">
<rect x="207" y="53" fill="#009FE3" width="181.667" height="85.333"/>
<text transform="matrix(1 0 0 1 232.3306 107.5952)" fill="#FFFFFF" font-family="'ArialMT'" font-size="31.9752">PODIUM</text>
</svg>`

const shapesSvg = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 300">
<title>shapes</title>
<path id="box" d="M 100 100 L 200 100 L 200 200 L 100 200 Z"/>
<g id="outer" stroke="#000" fill-rule="evenodd">
	<circle id="dot" cx="50" cy="50" r="10"/>
	<g id="inner">
		<polygon id="tri" points="0,0 30,0 15,20"/>
		<desc>ignored</desc>
	</g>
	<polyline id="bad" points="1 2 3"/>
</g>
</svg>`

func TestParse(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(testSvg, "test")
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(len(svg.Shapes()), 0)

	svg, err = ParseSvgFromReader(strings.NewReader(testSvg), "test")
	is.NoErr(err)
	is.NotNil(svg)
	is.Equal(svg.Name, "test")
}

func TestParseShapes(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(shapesSvg, "shapes")
	is.NoErr(err)
	is.Equal(svg.Title, "shapes")
	is.Equal(len(svg.Elements), 1)
	is.Equal(len(svg.Groups), 1)

	outer := svg.Groups[0]
	is.Equal(outer.ID, "outer")
	is.Equal(outer.FillRule, "evenodd")
	is.Equal(len(outer.Groups), 1)
	is.Equal(outer.Groups[0].Parent, outer)

	var ids []string
	for _, e := range svg.Shapes() {
		ids = append(ids, e.ElementID())
	}
	is.Equal(ids, []string{"box", "dot", "bad", "tri"})
}

func TestParseSvgError(t *testing.T) {
	is := is.New(t)

	_, err := ParseSvg("<svg><path d='M 0 0'", "broken")
	is.Err(err)
}

func TestCirclePathData(t *testing.T) {
	is := is.New(t)

	c := &Circle{ID: "c", Cx: "50", Cy: "50px", Radius: "10"}
	d, err := c.PathData()
	is.NoErr(err)

	ring, err := BuildRing(d)
	is.NoErr(err)
	b := ring.BoundingBox()
	is.Equal(b.MinX, int64(40000))
	is.Equal(b.MaxX, int64(60000))
	is.Equal(b.MinY, int64(40000))
	is.Equal(b.MaxY, int64(60000))

	_, err = (&Circle{Radius: "0"}).PathData()
	is.True(errors.Is(err, ErrEmptyRing))

	_, err = (&Circle{Cx: "ten", Radius: "1"}).PathData()
	is.True(errors.Is(err, ErrInvalidNumber))
}

func TestPolyLinePathData(t *testing.T) {
	is := is.New(t)

	d, err := (&PolyLine{Points: "0,0 30,0 15,20", Closed: true}).PathData()
	is.NoErr(err)
	is.Equal(d, "M 0 0 L 30 0 L 15 20 Z")

	d, err = (&PolyLine{Points: "1-2 3.5,4"}).PathData()
	is.NoErr(err)
	is.Equal(d, "M 1 -2 L 3.5 4")

	_, err = (&PolyLine{Points: "1 2 3"}).PathData()
	is.True(errors.Is(err, ErrMalformedPath))

	_, err = (&PolyLine{Points: " "}).PathData()
	is.True(errors.Is(err, ErrEmptyInput))
}

func TestSvgOffset(t *testing.T) {
	is := is.New(t)

	svg, err := ParseSvg(shapesSvg, "shapes")
	is.NoErr(err)

	results := svg.Offset(DefaultParams(5))
	is.Equal(len(results), 4)

	byID := map[string]ElementResult{}
	for _, r := range results {
		byID[r.ID] = r
	}

	is.NoErr(byID["box"].Err)
	box := byID["box"].Result.First().BoundingBox()
	is.Equal(box.MinX, int64(95000))
	is.Equal(box.MaxY, int64(205000))

	is.NoErr(byID["dot"].Err)
	dot := byID["dot"].Result.First().BoundingBox()
	is.True(dot.MinX > 34900 && dot.MinX < 35100)

	is.NoErr(byID["tri"].Err)
	is.NotNil(byID["tri"].Result.First())

	is.True(errors.Is(byID["bad"].Err, ErrMalformedPath))
	is.Nil(byID["bad"].Result)
}
