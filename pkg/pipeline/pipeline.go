// Package pipeline runs the read → write, read → summarize and
// read → preview chains shared by the CLI and the conversion service.
//
// # Architecture
//
// Every chain starts from the raw document bytes. Their hash, together with
// the options that influence the output, forms the cache key, so a repeated
// request never reaches the reader:
//
//  1. Convert: read the document and write it in another SBGN-ML generation
//  2. Inspect: read the document and encode a [dump.Summary]
//  3. Preview: read the document and draw it with Graphviz
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Convert(ctx, doc, pipeline.Options{To: "sbgnml-0.2"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(res.Document)
//
// Events of every stage are reported to the hooks registered with
// [observability.SetPipelineHooks].
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgnconv/pkg/cache"
	"github.com/matzehuels/sbgnconv/pkg/dump"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	sbgnio "github.com/matzehuels/sbgnconv/pkg/io"
	"github.com/matzehuels/sbgnconv/pkg/reader"
	"github.com/matzehuels/sbgnconv/pkg/writer"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Service
// =============================================================================

const (
	// DefaultTo is the format documents are converted to.
	DefaultTo = sbgnio.FormatSBGNML03

	// DefaultDumpFormat is the encoding of map summaries.
	DefaultDumpFormat = dump.FormatJSON

	// DefaultPreviewFormat is the output of previews.
	DefaultPreviewFormat = FormatSVG

	// DefaultScale is the PNG preview scale.
	DefaultScale = 2.0
)

// Preview formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPDF = "pdf"
	FormatPNG = "png"
)

// PreviewFormats lists the preview outputs in sorted order.
func PreviewFormats() []string {
	return []string{FormatDOT, FormatPDF, FormatPNG, FormatSVG}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures a pipeline run. The zero value converts to the newest
// SBGN-ML generation with styles, annotations and notes.
type Options struct {
	// Read options
	From string `json:"from,omitempty"` // expected input format, empty to accept any

	// Convert options
	To                  string `json:"to,omitempty"`
	NoRenderInformation bool   `json:"no_render,omitempty"`
	NoAnnotations       bool   `json:"no_annotations,omitempty"`
	NoNotes             bool   `json:"no_notes,omitempty"`

	// Inspect options
	DumpFormat string `json:"dump_format,omitempty"`

	// Preview options
	PreviewFormat string  `json:"preview_format,omitempty"`
	Detailed      bool    `json:"detailed,omitempty"`
	Scale         float64 `json:"scale,omitempty"`

	// Refresh bypasses cached results and overwrites them.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Source string      `json:"-"` // file name or request id, for logs and hooks
	Logger *log.Logger `json:"-"`
}

// Stats contains timing and size information of a run.
type Stats struct {
	Elements  int
	Size      int
	ReadTime  time.Duration
	WriteTime time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

func (o *Options) setCommonDefaults() {
	if o.Source == "" {
		o.Source = "document"
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRead checks the expected input format.
func (o *Options) ValidateForRead() error {
	o.setCommonDefaults()
	if o.From == "" {
		return nil
	}
	_, err := sbgnio.Lookup(o.From)
	return err
}

// ValidateForConvert applies convert defaults and checks the formats.
func (o *Options) ValidateForConvert() error {
	if err := o.ValidateForRead(); err != nil {
		return err
	}
	if o.To == "" {
		o.To = DefaultTo
	}
	_, err := sbgnio.Lookup(o.To)
	return err
}

// ValidateForInspect applies inspect defaults and checks the encoding.
func (o *Options) ValidateForInspect() error {
	if err := o.ValidateForRead(); err != nil {
		return err
	}
	if o.DumpFormat == "" {
		o.DumpFormat = DefaultDumpFormat
	}
	return errors.ValidateFormat(o.DumpFormat, dump.Formats())
}

// ValidateForPreview applies preview defaults and checks the format.
func (o *Options) ValidateForPreview() error {
	if err := o.ValidateForRead(); err != nil {
		return err
	}
	if o.PreviewFormat == "" {
		o.PreviewFormat = DefaultPreviewFormat
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	return errors.ValidateFormat(o.PreviewFormat, PreviewFormats())
}

// ReaderOptions returns the reader settings for a conversion. Parts the
// writer would drop are not read either.
func (o *Options) ReaderOptions() reader.Options {
	ro := reader.DefaultOptions()
	ro.WithRenderInformation = !o.NoRenderInformation
	ro.WithAnnotations = !o.NoAnnotations
	ro.WithNotes = !o.NoNotes
	ro.Logger = o.Logger
	return ro
}

// WriterOptions returns the writer settings. The version is decided by the
// target format.
func (o *Options) WriterOptions() writer.Options {
	wo := writer.DefaultOptions()
	wo.WithRenderInformation = !o.NoRenderInformation
	wo.WithAnnotations = !o.NoAnnotations
	wo.WithNotes = !o.NoNotes
	wo.Logger = o.Logger
	return wo
}

// ConvertKeyOpts returns cache key options for converted documents.
func (o *Options) ConvertKeyOpts() cache.ConvertKeyOpts {
	return cache.ConvertKeyOpts{
		Format:                o.To,
		WithRenderInformation: !o.NoRenderInformation,
		WithAnnotations:       !o.NoAnnotations,
		WithNotes:             !o.NoNotes,
	}
}

// PreviewKeyOpts returns cache key options for previews.
func (o *Options) PreviewKeyOpts() cache.PreviewKeyOpts {
	return cache.PreviewKeyOpts{
		Format:   o.PreviewFormat,
		Detailed: o.Detailed,
		Scale:    o.Scale,
	}
}
