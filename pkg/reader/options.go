package reader

import "github.com/charmbracelet/log"

// DefaultMaxDepth bounds how deeply glyphs may nest and how long a chain of
// on-demand builds may get.
const DefaultMaxDepth = 256

// Options controls what the reader keeps from the document.
type Options struct {
	WithRenderInformation bool
	WithAnnotations       bool
	WithNotes             bool

	// FromTopLeft extends a fitted layout so that it starts at the origin.
	// It has no effect when the map carries its own bbox.
	FromTopLeft bool

	// MaxDepth defaults to DefaultMaxDepth when zero.
	MaxDepth int

	// Logger receives skipped elements and style warnings. Defaults to
	// log.Default().
	Logger *log.Logger
}

// DefaultOptions keeps everything and reads the layout from the top-left
// corner.
func DefaultOptions() Options {
	return Options{
		WithRenderInformation: true,
		WithAnnotations:       true,
		WithNotes:             true,
		FromTopLeft:           true,
		MaxDepth:              DefaultMaxDepth,
	}
}

func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}
