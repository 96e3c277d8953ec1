// Package writer serializes a [sbgn.Map] to SBGN-ML.
//
// The writer walks the layout tree and hands every element to the emitter
// registered for its kind. Nodes become glyphs nested the way their layout
// elements are nested. Processes and operators get two synthesized ports,
// <id>_left_port and <id>_right_port, at the tips of their connectors, and
// the reactant, product and input arcs they own are written as map-level
// arcs attached to those ports. Styles are grouped into buckets of equal
// attributes and written as one render information block per map.
//
// Kinds without an emitter are skipped, logged and reported in [Stats].
//
// # Usage
//
//	res, err := reader.ReadFile("in.sbgn", reader.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	opts := writer.DefaultOptions()
//	opts.Version = sbgnml.Version02
//	if _, err := writer.WriteFile("out.sbgn", res.Map, opts); err != nil {
//	    return err
//	}
package writer
