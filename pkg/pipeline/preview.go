package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/sbgnconv/pkg/cache"
	"github.com/matzehuels/sbgnconv/pkg/observability"
	"github.com/matzehuels/sbgnconv/pkg/reader"
	"github.com/matzehuels/sbgnconv/pkg/render/nodelink"
)

// PreviewResult is a rendered preview.
type PreviewResult struct {
	Data     []byte
	Format   string
	CacheHit bool
}

// ContentType returns the media type of a preview format.
func ContentType(format string) string {
	switch format {
	case FormatDOT:
		return "text/vnd.graphviz"
	case FormatPDF:
		return "application/pdf"
	case FormatPNG:
		return "image/png"
	}
	return "image/svg+xml"
}

// Preview reads doc and draws it in opts.PreviewFormat.
func (r *Runner) Preview(ctx context.Context, doc []byte, opts Options) (*PreviewResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForPreview(); err != nil {
		return nil, invalidOptions(err)
	}

	key := r.Keyer.PreviewKey(cache.Hash(doc), opts.PreviewKeyOpts())
	if data, hit := r.lookup(ctx, key, opts); hit {
		return &PreviewResult{Data: data, Format: opts.PreviewFormat, CacheHit: true}, nil
	}

	ro := reader.DefaultOptions()
	ro.Logger = opts.Logger
	res, err := r.read(ctx, doc, opts, ro)
	if err != nil {
		return nil, err
	}

	observability.Pipeline().OnPreviewStart(ctx, opts.PreviewFormat)
	start := time.Now()
	data, err := Render(ctx, nodelink.ToDOT(res.Map, nodelink.Options{Detailed: opts.Detailed}), opts)
	observability.Pipeline().OnPreviewComplete(ctx, opts.PreviewFormat, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	r.store(ctx, key, data, cache.TTLPreview)
	r.Logger.Debug("rendered preview", "source", opts.Source, "format", opts.PreviewFormat, "bytes", len(data))
	return &PreviewResult{Data: data, Format: opts.PreviewFormat}, nil
}

// Render turns DOT source into the preview format of opts.
func Render(ctx context.Context, dot string, opts Options) ([]byte, error) {
	var data []byte
	var err error
	switch opts.PreviewFormat {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		data, err = nodelink.RenderSVG(ctx, dot)
	case FormatPDF:
		data, err = nodelink.RenderPDF(ctx, dot)
	case FormatPNG:
		data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
	default:
		return nil, fmt.Errorf("unsupported preview format: %s", opts.PreviewFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", opts.PreviewFormat, err)
	}
	return data, nil
}
