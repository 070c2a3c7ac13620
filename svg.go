package svgoffset

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Element is an SVG shape that can be expressed as path data.
type Element interface {
	ElementID() string
	PathData() (string, error)
}

// Svg represents an SVG document reduced to the shapes that can be offset.
type Svg struct {
	Title    string
	Name     string
	Groups   []*Group
	Elements []Element
}

// Group represents an SVG group (usually located in a 'g' XML element)
type Group struct {
	ID          string
	Stroke      string
	StrokeWidth string
	Fill        string
	FillRule    string
	Groups      []*Group
	Elements    []Element
	Parent      *Group
}

// newElement returns an empty element for the named XML tag, or nil when
// the tag is not a supported shape.
func newElement(local string) Element {
	switch local {
	case "path":
		return &Path{}
	case "circle":
		return &Circle{}
	case "polyline":
		return &PolyLine{}
	case "polygon":
		return &PolyLine{Closed: true}
	}
	return nil
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (g *Group) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "id":
			g.ID = attr.Value
		case "stroke":
			g.Stroke = attr.Value
		case "stroke-width":
			g.StrokeWidth = attr.Value
		case "fill":
			g.Fill = attr.Value
		case "fill-rule":
			g.FillRule = attr.Value
		}
	}

	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			if tok.Name.Local == "g" {
				child := &Group{Parent: g}
				if err := decoder.DecodeElement(child, &tok); err != nil {
					return fmt.Errorf("error decoding group within group %q: %w", g.ID, err)
				}
				g.Groups = append(g.Groups, child)
				continue
			}
			e := newElement(tok.Name.Local)
			if e == nil {
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}
			if err := decoder.DecodeElement(e, &tok); err != nil {
				return fmt.Errorf("error decoding %s element of group %q: %w", tok.Name.Local, g.ID, err)
			}
			g.Elements = append(g.Elements, e)

		case xml.EndElement:
			return nil
		}
	}
}

// UnmarshalXML implements the encoding.xml.Unmarshaler interface
func (s *Svg) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}

		switch tok := token.(type) {
		case xml.StartElement:
			switch tok.Name.Local {
			case "title":
				if err := decoder.DecodeElement(&s.Title, &tok); err != nil {
					return err
				}
				continue
			case "g":
				g := &Group{}
				if err := decoder.DecodeElement(g, &tok); err != nil {
					return fmt.Errorf("error decoding group element within SVG struct: %w", err)
				}
				s.Groups = append(s.Groups, g)
				continue
			}

			e := newElement(tok.Name.Local)
			if e == nil {
				if err := decoder.Skip(); err != nil {
					return err
				}
				continue
			}
			if err := decoder.DecodeElement(e, &tok); err != nil {
				return fmt.Errorf("error decoding element of SVG struct: %w", err)
			}
			s.Elements = append(s.Elements, e)

		case xml.EndElement:
			if tok.Name.Local == "svg" {
				return nil
			}
		}
	}
}

// ParseSvg parses an SVG string into an SVG struct
func ParseSvg(str string, name string) (*Svg, error) {
	return ParseSvgFromReader(strings.NewReader(str), name)
}

// ParseSvgFromReader parses an SVG struct from an io.Reader
func ParseSvgFromReader(r io.Reader, name string) (*Svg, error) {
	svg := Svg{Name: name}
	if err := xml.NewDecoder(r).Decode(&svg); err != nil {
		return nil, fmt.Errorf("ParseSvg Error: %w", err)
	}
	return &svg, nil
}

// Shapes returns the top-level elements followed by the elements of every
// group, depth first.
func (s *Svg) Shapes() []Element {
	out := append([]Element(nil), s.Elements...)
	for _, g := range s.Groups {
		out = g.appendShapes(out)
	}
	return out
}

func (g *Group) appendShapes(out []Element) []Element {
	out = append(out, g.Elements...)
	for _, child := range g.Groups {
		out = child.appendShapes(out)
	}
	return out
}

// ElementResult is the outcome of offsetting one element of a document.
type ElementResult struct {
	ID     string
	Result *Result
	Err    error
}

// Offset offsets every shape of the document independently. A failing
// shape records its error and does not stop the others.
func (s *Svg) Offset(p Params, opts ...Option) []ElementResult {
	shapes := s.Shapes()
	results := make([]ElementResult, 0, len(shapes))
	for _, e := range shapes {
		er := ElementResult{ID: e.ElementID()}
		d, err := e.PathData()
		if err != nil {
			er.Err = err
		} else {
			er.Result, er.Err = Offset(d, p, opts...)
		}
		if er.Err != nil {
			Logger().Debug("svgoffset: element failed", "id", er.ID, "err", er.Err)
		}
		results = append(results, er)
	}
	return results
}
