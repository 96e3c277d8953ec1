package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sbgnconv/pkg/render"
	"github.com/matzehuels/sbgnconv/pkg/sbgn"
)

// Options configures node-link preview rendering.
type Options struct {
	// Detailed adds the element id and kind to node labels.
	Detailed bool
}

const pointsPerInch = 72.0

// ToDOT converts a map to Graphviz DOT with every node pinned at its
// position. The y axis is flipped because Graphviz grows upwards.
func ToDOT(m *sbgn.Map, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=true;\n")
	fmt.Fprintf(&buf, "  inputscale=%g;\n", pointsPerInch)
	buf.WriteString("  node [fixedsize=true, style=filled, fillcolor=white, fontname=Helvetica, margin=0];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n")
	buf.WriteString("\n")

	height := m.Layout.Bbox().Bottom()
	var nodes, containers []string
	var edges []string

	m.Layout.Walk(func(e, parent *sbgn.LayoutElement) bool {
		switch {
		case e.Kind.IsArc():
			if s := fmtEdge(e, parent); s != "" {
				edges = append(edges, s)
			}
		case e.Kind == sbgn.KindCompartment || e.Kind == sbgn.KindSubmap:
			containers = append(containers, fmtNode(e, height, opts.Detailed))
		default:
			nodes = append(nodes, fmtNode(e, height, opts.Detailed))
		}
		return true
	})

	for _, s := range containers {
		buf.WriteString(s)
	}
	for _, s := range nodes {
		buf.WriteString(s)
	}
	buf.WriteString("\n")
	for _, s := range edges {
		buf.WriteString(s)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtNode(e *sbgn.LayoutElement, height float64, detailed bool) string {
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(e, detailed)),
		fmt.Sprintf("pos=\"%s,%s!\"", ftoa(e.Position.X), ftoa(height-e.Position.Y)),
		fmt.Sprintf("width=%s", ftoa(e.Width/pointsPerInch)),
		fmt.Sprintf("height=%s", ftoa(e.Height/pointsPerInch)),
	}
	attrs = append(attrs, shapeOf(e.Kind)...)
	if e.Label != nil && e.Label.FontSize > 0 {
		attrs = append(attrs, fmt.Sprintf("fontsize=%s", ftoa(e.Label.FontSize)))
	}
	if e.Fill != nil {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", e.Fill.Hexa()))
	}
	if e.Stroke != nil {
		attrs = append(attrs, fmt.Sprintf("color=%q", e.Stroke.Hexa()))
	}
	if e.StrokeWidth != nil {
		attrs = append(attrs, fmt.Sprintf("penwidth=%s", ftoa(*e.StrokeWidth)))
	}
	return fmt.Sprintf("  %q [%s];\n", e.ID, strings.Join(attrs, ", "))
}

func fmtLabel(e *sbgn.LayoutElement, detailed bool) string {
	var text string
	switch {
	case e.Label != nil:
		text = e.Label.Text
	case e.Kind.IsOperator():
		text = operatorText[e.Kind]
	}
	if !detailed {
		return text
	}
	parts := []string{e.ID, e.Kind.String()}
	if text != "" {
		parts = append([]string{text}, parts...)
	}
	return strings.Join(parts, "\n")
}

var operatorText = map[sbgn.Kind]string{
	sbgn.KindAndOperator:         "AND",
	sbgn.KindOrOperator:          "OR",
	sbgn.KindNotOperator:         "NOT",
	sbgn.KindDelayOperator:       "τ",
	sbgn.KindEquivalenceOperator: "≡",
}

func shapeOf(k sbgn.Kind) []string {
	switch {
	case k == sbgn.KindCompartment:
		return []string{"shape=box", "style=\"rounded,filled\"", "penwidth=3"}
	case k == sbgn.KindSubmap:
		return []string{"shape=box"}
	case k == sbgn.KindSimpleChemical, k == sbgn.KindSimpleChemicalMultimer,
		k == sbgn.KindSimpleChemicalSubunit, k == sbgn.KindSimpleChemicalMultimerSubunit:
		return []string{"shape=ellipse"}
	case k == sbgn.KindUnspecifiedEntity, k == sbgn.KindUnspecifiedEntitySubunit:
		return []string{"shape=ellipse"}
	case k == sbgn.KindComplex, k == sbgn.KindComplexMultimer,
		k == sbgn.KindComplexSubunit, k == sbgn.KindComplexMultimerSubunit:
		return []string{"shape=octagon"}
	case k == sbgn.KindEmptySet:
		return []string{"shape=circle", "label=\"∅\""}
	case k == sbgn.KindPerturbingAgent, k == sbgn.KindPhenotype:
		return []string{"shape=hexagon"}
	case k == sbgn.KindStateVariable:
		return []string{"shape=ellipse"}
	case k == sbgn.KindTag, k == sbgn.KindTerminal:
		return []string{"shape=cds"}
	case k.IsProcess():
		return []string{"shape=square"}
	case k.IsOperator():
		return []string{"shape=circle"}
	case k == sbgn.KindMacromolecule, k == sbgn.KindMacromoleculeMultimer,
		k == sbgn.KindMacromoleculeSubunit, k == sbgn.KindMacromoleculeMultimerSubunit,
		k == sbgn.KindNucleicAcidFeature, k == sbgn.KindNucleicAcidFeatureMultimer,
		k == sbgn.KindNucleicAcidFeatureSubunit, k == sbgn.KindNucleicAcidFeatureMultimerSubunit,
		k == sbgn.KindBiologicalActivity:
		return []string{"shape=box", "style=\"rounded,filled\""}
	}
	return []string{"shape=box"}
}

var arrowheads = map[sbgn.Kind]string{
	sbgn.KindProduction:           "normal",
	sbgn.KindModulation:           "odiamond",
	sbgn.KindStimulation:          "empty",
	sbgn.KindCatalysis:            "odot",
	sbgn.KindNecessaryStimulation: "teeempty",
	sbgn.KindInhibition:           "tee",
	sbgn.KindPositiveInfluence:    "empty",
	sbgn.KindNegativeInfluence:    "tee",
	sbgn.KindUnknownInfluence:     "odiamond",
}

// fmtEdge returns the DOT edge of an arc, or "" when an end is missing.
// Participant arcs hang below their process or operator; every kind except
// production points from the element to that owner.
func fmtEdge(e, parent *sbgn.LayoutElement) string {
	var from, to *sbgn.LayoutElement
	if e.Kind.IsModulation() {
		from, to = e.Source, e.Target
	} else {
		from, to = e.Target, parent
		if e.Kind == sbgn.KindProduction {
			from, to = parent, e.Target
		}
	}
	if from == nil || to == nil {
		return ""
	}

	head := arrowheads[e.Kind]
	if head == "" {
		head = "none"
	}
	attrs := []string{fmt.Sprintf("id=%q", e.ID), fmt.Sprintf("arrowhead=%s", head)}
	if e.PathStroke != nil {
		attrs = append(attrs, fmt.Sprintf("color=%q", e.PathStroke.Hexa()))
	}
	if e.PathStrokeWidth != nil {
		attrs = append(attrs, fmt.Sprintf("penwidth=%s", ftoa(*e.PathStrokeWidth)))
	}
	return fmt.Sprintf("  %q -> %q [%s];\n", from.ID, to.ID, strings.Join(attrs, ", "))
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// RenderSVG renders a DOT graph to SVG with the neato engine, which keeps
// pinned node positions.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg tag, which carries fixed
// point units, with one that scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion at the given
// scale.
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
