// Package pkg provides the libraries behind sbgnconv, a converter for
// SBGN-ML maps.
//
// # Overview
//
// A map is held in memory as three parts: a [sbgn] model of typed elements,
// a layout of positioned boxes, and the mapping between them. The packages
// are organized around that representation:
//
//  1. [sbgn] - The in-memory map (model, layout, mapping, kinds)
//  2. [sbgnml] - The SBGN-ML document schema of generations 0.2 and 0.3
//  3. [reader] and [writer] - Conversion between documents and maps
//  4. [io] - Format registry on top of reader and writer
//  5. [pipeline] - Cached convert, inspect and preview runs
//
// # Architecture
//
// The data flow of a conversion:
//
//	SBGN-ML document
//	       ↓
//	  [sbgnml] package (decode, sniff generation)
//	       ↓
//	  [reader] package (classify, build model and layout, resolve refs)
//	       ↓
//	  [sbgn] Map
//	       ↓
//	  [writer] package (glyphs, arcs, render information)
//	       ↓
//	SBGN-ML document (0.2 or 0.3)
//
// # Quick Start
//
//	import (
//	    sbgnio "github.com/matzehuels/sbgnconv/pkg/io"
//	    "github.com/matzehuels/sbgnconv/pkg/reader"
//	    "github.com/matzehuels/sbgnconv/pkg/writer"
//	)
//
//	res, err := sbgnio.ImportFile("glycolysis.sbgn", "", reader.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_, err = sbgnio.ExportFile(res.Map, "glycolysis-03.sbgn", sbgnio.FormatSBGNML03, writer.DefaultOptions())
//
// # Package Guide
//
// [classify] - Maps SBGN-ML glyph and arc classes to element kinds.
//
// [annotations] - RDF annotations with biology and model qualifiers.
//
// [styles] - Render information: color definitions and styles of elements.
//
// [geometry] - Points and rectangles in layout coordinates.
//
// [dump] - Flat map summaries as JSON, YAML or MessagePack.
//
// [render] and [render/nodelink] - Graphviz previews of a map.
//
// [cache] - Result caches (file, Redis, MongoDB) keyed by document hash.
//
// [server] - HTTP conversion service.
//
// [errors] - Coded errors shared by the CLI and the service.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [buildinfo] - Version information set at link time.
//
// [sbgn]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/sbgn
// [sbgnml]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/sbgnml
// [reader]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/reader
// [writer]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/writer
// [io]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/pipeline
// [classify]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/classify
// [annotations]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/annotations
// [styles]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/styles
// [geometry]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/geometry
// [dump]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/dump
// [render]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/cache
// [server]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/server
// [errors]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/sbgnconv/pkg/buildinfo
package pkg
