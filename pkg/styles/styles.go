// Package styles moves visual attributes between render information blocks
// and layout elements.
//
// Reading produces a [StyleSheet]: the background, the named colors and an
// ordered list of rules, each applying one set of attributes to a set of
// element ids. Writing goes the other way: [Collect] groups elements that
// share the same attribute tuple into buckets and [Synthesize] turns each
// bucket into one style.
package styles

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

// Target says what part of an element a rule styles.
type Target int

const (
	TargetNode Target = iota
	TargetArc
	// TargetLabel styles the label of each listed element.
	TargetLabel
)

func (t Target) String() string {
	switch t {
	case TargetArc:
		return "arc"
	case TargetLabel:
		return "label"
	default:
		return "node"
	}
}

// Attributes are the style properties of one rule. Nil fields are unset.
type Attributes struct {
	Fill        *sbgn.Color
	Stroke      *sbgn.Color
	StrokeWidth *float64

	FontFamily string
	FontSize   *float64
	FontColor  *sbgn.Color
}

func (a Attributes) hasShape() bool {
	return a.Fill != nil || a.Stroke != nil || a.StrokeWidth != nil
}

func (a Attributes) hasFont() bool {
	return a.FontFamily != "" || a.FontSize != nil || a.FontColor != nil
}

// Rule applies Attributes to the Target part of every element in IDs.
type Rule struct {
	IDs    []string
	Target Target
	Attributes
}

// StyleSheet is the decoded render information of a map.
type StyleSheet struct {
	Background *sbgn.Color
	Colors     map[string]sbgn.Color
	Rules      []Rule
}

// Extract decodes ri. isArc tells node ids from arc ids; each style becomes
// up to three rules: one for its nodes, one for its arcs and one for the
// labels of both. Colors that cannot be parsed are left unset and reported
// in the returned error, which never prevents the sheet from being used.
func Extract(ri *sbgnml.RenderInformation, isArc func(id string) bool) (*StyleSheet, error) {
	sheet := &StyleSheet{Colors: make(map[string]sbgn.Color)}
	if ri == nil {
		return sheet, nil
	}
	var errs []error

	if ri.BackgroundColor != "" {
		c, err := sbgn.ParseColor(ri.BackgroundColor)
		if err != nil {
			errs = append(errs, fmt.Errorf("background: %w", err))
		} else {
			sheet.Background = &c
		}
	}
	if ri.ColorDefinitions != nil {
		for _, cd := range ri.ColorDefinitions.Items {
			c, err := sbgn.ParseColor(cd.Value)
			if err != nil {
				errs = append(errs, fmt.Errorf("color definition %s: %w", cd.ID, err))
				continue
			}
			sheet.Colors[cd.ID] = c
		}
	}
	if ri.Styles == nil {
		return sheet, errors.Join(errs...)
	}

	for _, s := range ri.Styles.Items {
		if s.G == nil {
			continue
		}
		attrs, err := sheet.attributes(s.G)
		if err != nil {
			errs = append(errs, fmt.Errorf("style %s: %w", s.ID, err))
		}
		var nodes, arcs []string
		ids := strings.Fields(s.IDList)
		for _, id := range ids {
			if isArc != nil && isArc(id) {
				arcs = append(arcs, id)
			} else {
				nodes = append(nodes, id)
			}
		}
		if attrs.hasShape() {
			shape := Attributes{Fill: attrs.Fill, Stroke: attrs.Stroke, StrokeWidth: attrs.StrokeWidth}
			if len(nodes) > 0 {
				sheet.Rules = append(sheet.Rules, Rule{IDs: nodes, Target: TargetNode, Attributes: shape})
			}
			if len(arcs) > 0 {
				sheet.Rules = append(sheet.Rules, Rule{IDs: arcs, Target: TargetArc, Attributes: shape})
			}
		}
		if attrs.hasFont() && len(ids) > 0 {
			font := Attributes{FontFamily: attrs.FontFamily, FontSize: attrs.FontSize, FontColor: attrs.FontColor}
			sheet.Rules = append(sheet.Rules, Rule{IDs: ids, Target: TargetLabel, Attributes: font})
		}
	}
	return sheet, errors.Join(errs...)
}

// color resolves a color definition id or a literal value.
func (s *StyleSheet) color(v string) (*sbgn.Color, error) {
	if v == "" {
		return nil, nil
	}
	if c, ok := s.Colors[v]; ok {
		return &c, nil
	}
	c, err := sbgn.ParseColor(v)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *StyleSheet) attributes(g *sbgnml.G) (Attributes, error) {
	var errs []error
	a := Attributes{
		StrokeWidth: g.StrokeWidth,
		FontFamily:  g.FontFamily,
		FontSize:    g.FontSize,
	}
	var err error
	if a.Fill, err = s.color(g.Fill); err != nil {
		errs = append(errs, fmt.Errorf("fill: %w", err))
	}
	if a.Stroke, err = s.color(g.Stroke); err != nil {
		errs = append(errs, fmt.Errorf("stroke: %w", err))
	}
	if a.FontColor, err = s.color(g.FontColor); err != nil {
		errs = append(errs, fmt.Errorf("font color: %w", err))
	}
	return a, errors.Join(errs...)
}

// Apply writes the sheet onto l. Rules apply in order, so later rules win.
// Ids that are not in the layout are ignored.
func Apply(sheet *StyleSheet, l *sbgn.Layout) {
	if sheet == nil {
		return
	}
	if sheet.Background != nil {
		bg := *sheet.Background
		l.Fill = &bg
	}
	for _, r := range sheet.Rules {
		for _, id := range r.IDs {
			e, ok := l.Get(id)
			if !ok {
				continue
			}
			r.apply(e)
		}
	}
}

func (r Rule) apply(e *sbgn.LayoutElement) {
	switch r.Target {
	case TargetNode:
		if r.Fill != nil {
			e.Fill = r.Fill
		}
		if r.Stroke != nil {
			e.Stroke = r.Stroke
		}
		if r.StrokeWidth != nil {
			e.StrokeWidth = r.StrokeWidth
		}
	case TargetArc:
		if r.Stroke != nil {
			e.PathStroke = r.Stroke
			e.ArrowheadStroke = r.Stroke
		}
		if r.Fill != nil {
			e.ArrowheadFill = r.Fill
		}
		if r.StrokeWidth != nil {
			e.PathStrokeWidth = r.StrokeWidth
			e.ArrowheadStrokeWidth = r.StrokeWidth
		}
	case TargetLabel:
		if e.Label == nil {
			return
		}
		if r.FontFamily != "" {
			e.Label.FontFamily = r.FontFamily
		}
		if r.FontSize != nil {
			e.Label.FontSize = *r.FontSize
		}
		if r.FontColor != nil {
			e.Label.FontColor = *r.FontColor
		}
	}
}
