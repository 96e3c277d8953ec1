package sbgnml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const indentUnit = "  "

// Render writes doc as a pretty printed document of generation v. The five
// vocabularies are bound to the prefixes sbgn, render, rdf, bqbiol and
// bqmodel on the root element. Notes are written verbatim, so their markup
// keeps its literal angle brackets.
func Render(w io.Writer, doc *Sbgn, v Version) error {
	b, err := Marshal(doc, v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Marshal renders doc into memory. See [Render].
func Marshal(doc *Sbgn, v Version) ([]byte, error) {
	if v != Version02 && v != Version03 {
		return nil, fmt.Errorf("unknown SBGN-ML version %d", int(v))
	}
	p := &printer{version: v}
	p.buf.WriteString(xml.Header)
	p.open("sbgn:sbgn", []attr{
		{"xmlns:sbgn", v.Namespace()},
		{"xmlns:render", NamespaceRender},
		{"xmlns:rdf", NamespaceRDF},
		{"xmlns:bqbiol", NamespaceBQBiol},
		{"xmlns:bqmodel", NamespaceBQMod},
	})
	maps := doc.Maps
	if v == Version02 && len(maps) > 1 {
		maps = maps[:1]
	}
	for _, m := range maps {
		p.writeMap(m)
	}
	p.close("sbgn:sbgn")
	return p.buf.Bytes(), nil
}

// WriteFile renders doc to path.
func WriteFile(path string, doc *Sbgn, v Version) error {
	b, err := Marshal(doc, v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

type attr struct {
	name, value string
}

type printer struct {
	buf     bytes.Buffer
	depth   int
	version Version
}

func (p *printer) indent() {
	for i := 0; i < p.depth; i++ {
		p.buf.WriteString(indentUnit)
	}
}

func (p *printer) tag(name string, attrs []attr, selfClose bool) {
	p.indent()
	p.buf.WriteByte('<')
	p.buf.WriteString(name)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		p.buf.WriteByte(' ')
		p.buf.WriteString(a.name)
		p.buf.WriteString(`="`)
		_ = xml.EscapeText(&p.buf, []byte(a.value))
		p.buf.WriteByte('"')
	}
	if selfClose {
		p.buf.WriteString("/>\n")
		return
	}
	p.buf.WriteString(">\n")
	p.depth++
}

func (p *printer) open(name string, attrs []attr) { p.tag(name, attrs, false) }
func (p *printer) leaf(name string, attrs []attr) { p.tag(name, attrs, true) }

func (p *printer) close(name string) {
	p.depth--
	p.indent()
	p.buf.WriteString("</")
	p.buf.WriteString(name)
	p.buf.WriteString(">\n")
}

func ftoa(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func (p *printer) writeMap(m *Map) {
	attrs := []attr{{"language", m.Language}}
	if p.version == Version03 {
		attrs = []attr{{"id", m.ID}, {"language", m.Language}, {"version", m.Version}}
	}
	p.open("sbgn:map", attrs)
	p.writeNotes(m.Notes)
	p.writeExtension(m.Extension)
	p.writeBbox(m.Bbox)
	for _, g := range m.Glyphs {
		p.writeGlyph(g)
	}
	for _, a := range m.Arcs {
		p.writeArc(a)
	}
	p.close("sbgn:map")
}

func (p *printer) writeBbox(b *Bbox) {
	if b == nil {
		return
	}
	p.leaf("sbgn:bbox", []attr{{"x", ftoa(b.X)}, {"y", ftoa(b.Y)}, {"w", ftoa(b.W)}, {"h", ftoa(b.H)}})
}

func (p *printer) writeGlyph(g *Glyph) {
	p.open("sbgn:glyph", []attr{
		{"class", g.Class},
		{"id", g.ID},
		{"compartmentRef", g.CompartmentRef},
		{"orientation", g.Orientation},
	})
	p.writeNotes(g.Notes)
	p.writeExtension(g.Extension)
	if g.Label != nil {
		if g.Label.Bbox != nil {
			p.open("sbgn:label", []attr{{"text", g.Label.Text}})
			p.writeBbox(g.Label.Bbox)
			p.close("sbgn:label")
		} else {
			p.leaf("sbgn:label", []attr{{"text", g.Label.Text}})
		}
	}
	if g.State != nil {
		p.leaf("sbgn:state", []attr{{"value", g.State.Value}, {"variable", g.State.Variable}})
	}
	if g.Entity != nil {
		p.leaf("sbgn:entity", []attr{{"name", g.Entity.Name}})
	}
	p.writeBbox(g.Bbox)
	for _, c := range g.Glyphs {
		p.writeGlyph(c)
	}
	for _, port := range g.Ports {
		p.writePort(port)
	}
	p.close("sbgn:glyph")
}

func (p *printer) writePort(port *Port) {
	p.leaf("sbgn:port", []attr{{"id", port.ID}, {"x", ftoa(port.X)}, {"y", ftoa(port.Y)}})
}

func (p *printer) writeArc(a *Arc) {
	p.open("sbgn:arc", []attr{
		{"class", a.Class},
		{"id", a.ID},
		{"source", a.Source},
		{"target", a.Target},
	})
	p.writeNotes(a.Notes)
	p.writeExtension(a.Extension)
	for _, g := range a.Glyphs {
		p.writeGlyph(g)
	}
	for _, port := range a.Ports {
		p.writePort(port)
	}
	if a.Start != nil {
		p.leaf("sbgn:start", []attr{{"x", ftoa(a.Start.X)}, {"y", ftoa(a.Start.Y)}})
	}
	for _, n := range a.Next {
		p.leaf("sbgn:next", []attr{{"x", ftoa(n.X)}, {"y", ftoa(n.Y)}})
	}
	if a.End != nil {
		p.leaf("sbgn:end", []attr{{"x", ftoa(a.End.X)}, {"y", ftoa(a.End.Y)}})
	}
	p.close("sbgn:arc")
}

func (p *printer) writeNotes(n *Notes) {
	if n == nil || strings.TrimSpace(n.Inner) == "" {
		return
	}
	p.open("sbgn:notes", nil)
	for _, line := range strings.Split(normalizeNotes(n.Inner), "\n") {
		if line != "" {
			p.indent()
			p.buf.WriteString(line)
		}
		p.buf.WriteByte('\n')
	}
	p.close("sbgn:notes")
}

func (p *printer) writeExtension(e *Extension) {
	if e == nil || (e.RenderInformation == nil && e.Annotation == nil) {
		return
	}
	p.open("sbgn:extension", nil)
	p.writeRenderInformation(e.RenderInformation)
	p.writeAnnotation(e.Annotation)
	p.close("sbgn:extension")
}

func (p *printer) writeRenderInformation(ri *RenderInformation) {
	if ri == nil {
		return
	}
	p.open("render:renderInformation", []attr{
		{"id", ri.ID},
		{"program-name", ri.ProgramName},
		{"program-version", ri.ProgramVersion},
		{"background-color", ri.BackgroundColor},
	})
	if ri.ColorDefinitions != nil {
		p.open("render:listOfColorDefinitions", nil)
		for _, cd := range ri.ColorDefinitions.Items {
			p.leaf("render:colorDefinition", []attr{{"id", cd.ID}, {"value", cd.Value}})
		}
		p.close("render:listOfColorDefinitions")
	}
	if ri.Styles != nil {
		p.open("render:listOfStyles", nil)
		for _, s := range ri.Styles.Items {
			p.writeStyle(s)
		}
		p.close("render:listOfStyles")
	}
	p.close("render:renderInformation")
}

func (p *printer) writeStyle(s *Style) {
	attrs := []attr{{"id", s.ID}, {"name", s.Name}, {"idList", s.IDList}}
	if s.G == nil {
		p.leaf("render:style", attrs)
		return
	}
	p.open("render:style", attrs)
	g := s.G
	optional := func(f *float64) string {
		if f == nil {
			return ""
		}
		return ftoa(*f)
	}
	p.leaf("render:g", []attr{
		{"stroke", g.Stroke},
		{"stroke-width", optional(g.StrokeWidth)},
		{"fill", g.Fill},
		{"font-size", optional(g.FontSize)},
		{"font-family", g.FontFamily},
		{"font-color", g.FontColor},
		{"font-style", g.FontStyle},
		{"font-weight", g.FontWeight},
	})
	p.close("render:style")
}

var qualifierPrefixes = map[string]string{
	NamespaceBQBiol: "bqbiol",
	NamespaceBQMod:  "bqmodel",
}

func (p *printer) writeAnnotation(a *Annotation) {
	if a == nil || a.RDF == nil {
		return
	}
	p.open("sbgn:annotation", nil)
	p.open("rdf:RDF", nil)
	for _, d := range a.RDF.Descriptions {
		p.open("rdf:Description", []attr{{"rdf:about", d.About}})
		for _, q := range d.Qualifiers {
			prefix, ok := qualifierPrefixes[q.XMLName.Space]
			if !ok || q.Bag == nil {
				continue
			}
			name := prefix + ":" + q.XMLName.Local
			p.open(name, nil)
			p.open("rdf:Bag", nil)
			for _, li := range q.Bag.Items {
				p.leaf("rdf:li", []attr{{"rdf:resource", li.Resource}})
			}
			p.close("rdf:Bag")
			p.close(name)
		}
		p.close("rdf:Description")
	}
	p.close("rdf:RDF")
	p.close("sbgn:annotation")
}
