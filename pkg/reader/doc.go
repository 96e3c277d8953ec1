// Package reader builds a [sbgn.Map] from an SBGN-ML document.
//
// The reader works in three passes over the parsed document. It first
// indexes every glyph, port and arc by id and records which arcs touch each
// glyph. It then builds model and layout elements, compartments first, then
// the remaining glyphs, then arcs. Whenever an element references another
// one that does not exist yet (an arc endpoint, a compartmentRef) the
// referenced element is built on the spot. Finally it fills the mapping from
// the list of (id, parent id) pairs collected while building, sets the layout
// bounds and applies annotations, notes and render information.
//
// Elements whose class has no construction routine are skipped and logged.
// Unknown languages, dangling references and nesting deeper than
// [Options.MaxDepth] abort the read; a map is either complete or not
// returned at all.
//
// # Usage
//
//	res, err := reader.ReadFile("glycolysis.sbgn", reader.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Map.Model.Len(), "elements")
package reader
