// Package render turns maps into pictures for a quick look at their layout.
//
// The [nodelink] subpackage draws every glyph at its stored position with
// Graphviz and connects them with the map's arcs. [ToPDF] and [ToPNG]
// convert the resulting SVG with the external rsvg-convert tool:
//
//	dot := nodelink.ToDOT(res.Map, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := render.ToPNG(ctx, svg, 2.0)
//
// [nodelink]: github.com/matzehuels/sbgnconv/pkg/render/nodelink
package render
