// Package nodelink previews a map as a node-link diagram.
//
// Unlike a layout engine, the preview keeps the geometry of the document:
// every node is pinned at its centre with its own width and height, and
// Graphviz only routes the edges. Containers are emitted first so that their
// contents are drawn on top.
//
//	dot := nodelink.ToDOT(m, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Processes and operators become small squares and circles, participants
// become edges between the process and the entity pool, and modulations get
// arrowheads that echo their SBGN glyphs (tee for inhibition, open dot for
// catalysis, empty triangle for stimulation).
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] with the neato engine for
// in-process SVG rendering. PDF and PNG conversion requires librsvg
// (rsvg-convert).
package nodelink
