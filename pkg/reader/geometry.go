package reader

import (
	"github.com/matzehuels/sbgnconv/pkg/geometry"
	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

// glyphBox converts the top-left bbox of g. Glyphs without a bbox sit at the
// origin with no size.
func glyphBox(g *sbgnml.Glyph) geometry.Bbox {
	if g.Bbox == nil {
		return geometry.Bbox{}
	}
	return geometry.FromTopLeft(g.Bbox.X, g.Bbox.Y, g.Bbox.W, g.Bbox.H)
}

// textLayout places a label on the centre of its own bbox, or on the element
// position when it has none.
func textLayout(l *sbgnml.Label, at geometry.Point, fontSize float64) *sbgn.TextLayout {
	t := &sbgn.TextLayout{
		Text:       l.Text,
		Position:   at,
		FontFamily: sbgn.DefaultFontFamily,
		FontSize:   fontSize,
		FontColor:  sbgn.Black,
	}
	if l.Bbox != nil {
		b := geometry.FromTopLeft(l.Bbox.X, l.Bbox.Y, l.Bbox.W, l.Bbox.H)
		t.Position, t.Width, t.Height = b.Position, b.Width, b.Height
	}
	return t
}

func auxiliaryLabel(text string, at geometry.Point) *sbgn.TextLayout {
	return &sbgn.TextLayout{
		Text:       text,
		Position:   at,
		FontFamily: sbgn.DefaultFontFamily,
		FontSize:   sbgn.AuxiliaryFontSize,
		FontColor:  sbgn.Black,
	}
}

// orientation reads the direction of a tag or terminal.
func orientation(s string) sbgn.Direction {
	switch s {
	case "up":
		return sbgn.DirectionUp
	case "down":
		return sbgn.DirectionDown
	case "left":
		return sbgn.DirectionLeft
	}
	return sbgn.DirectionRight
}

// direction is horizontal when a port lies left or right of the glyph box.
func direction(g *sbgnml.Glyph) sbgn.Direction {
	if g.Bbox == nil {
		return sbgn.DirectionVertical
	}
	for _, p := range g.Ports {
		if p.X < g.Bbox.X || p.X > g.Bbox.X+g.Bbox.W {
			return sbgn.DirectionHorizontal
		}
	}
	return sbgn.DirectionVertical
}

// connectorLengths measures the distance from the glyph box to the ports
// before and after it. A side without a port keeps the default length.
func connectorLengths(g *sbgnml.Glyph) (left, right float64) {
	left, right = sbgn.DefaultConnectorLength, sbgn.DefaultConnectorLength
	if g.Bbox == nil {
		return left, right
	}
	b := g.Bbox
	for _, p := range g.Ports {
		switch {
		case p.X < b.X:
			left = b.X - p.X
		case p.Y < b.Y:
			left = b.Y - p.Y
		case p.X > b.X+b.W:
			right = p.X - b.X - b.W
		case p.Y > b.Y+b.H:
			right = p.Y - b.Y - b.H
		}
	}
	return left, right
}

// processLeftToRight reports whether reactants enter on the left (or top)
// connector. It needs both a consumption and a production to tell.
func processLeftToRight(d sbgn.Direction, consumptions, productions []*sbgnml.Arc) bool {
	if len(consumptions) == 0 || len(productions) == 0 {
		return true
	}
	in, out := consumptions[0].End, productions[0].End
	if in == nil || out == nil {
		return true
	}
	if d == sbgn.DirectionHorizontal {
		return in.X < out.X
	}
	return in.Y < out.Y
}

// operatorLeftToRight reports whether inputs enter on the left (or top)
// connector, judged by the first input.
func operatorLeftToRight(g *sbgnml.Glyph, d sbgn.Direction, inputs []*sbgnml.Arc) bool {
	if len(inputs) == 0 || inputs[0].End == nil || g.Bbox == nil {
		return true
	}
	end := inputs[0].End
	if d == sbgn.DirectionHorizontal {
		return end.X < g.Bbox.X
	}
	return end.Y < g.Bbox.Y
}

func arcPoints(a *sbgnml.Arc) []geometry.Point {
	pts := a.Points()
	out := make([]geometry.Point, len(pts))
	for i, p := range pts {
		out[i] = geometry.Pt(p.X, p.Y)
	}
	return out
}
