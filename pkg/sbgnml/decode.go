package sbgnml

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse decodes a document of either generation. Element names are matched
// by local name, so the same tree serves 0.2 and 0.3.
func Parse(r io.Reader) (*Sbgn, error) {
	var doc Sbgn
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode sbgn: %w", err)
	}
	for _, m := range doc.Maps {
		trimNotes(m)
	}
	return &doc, nil
}

// ParseFile decodes the document at path.
func ParseFile(path string) (*Sbgn, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func trimNotes(m *Map) {
	trim := func(n *Notes) {
		if n != nil {
			n.Inner = normalizeNotes(n.Inner)
		}
	}
	trim(m.Notes)
	var walkGlyph func(g *Glyph)
	walkGlyph = func(g *Glyph) {
		trim(g.Notes)
		for _, c := range g.Glyphs {
			walkGlyph(c)
		}
	}
	for _, g := range m.Glyphs {
		walkGlyph(g)
	}
	for _, a := range m.Arcs {
		trim(a.Notes)
		for _, g := range a.Glyphs {
			walkGlyph(g)
		}
	}
}

// normalizeNotes trims the markup and removes the indentation shared by its
// continuation lines, so a parsed fragment does not depend on how deep the
// printer nested it.
func normalizeNotes(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	var prefix string
	seen := false
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lead := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !seen {
			prefix, seen = lead, true
			continue
		}
		n := 0
		for n < len(prefix) && n < len(lead) && prefix[n] == lead[n] {
			n++
		}
		prefix = prefix[:n]
	}
	for i, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if i > 0 {
			line = strings.TrimPrefix(line, prefix)
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
