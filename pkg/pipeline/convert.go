package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/matzehuels/sbgnconv/pkg/cache"
	sbgnio "github.com/matzehuels/sbgnconv/pkg/io"
	"github.com/matzehuels/sbgnconv/pkg/observability"
	"github.com/matzehuels/sbgnconv/pkg/reader"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
	"github.com/matzehuels/sbgnconv/pkg/writer"
)

// ConvertResult is a converted document.
type ConvertResult struct {
	Document []byte

	// From is the format of the input document.
	From string
	// To is the format of Document.
	To string

	// Read and Write are empty when the result came from the cache.
	Read  reader.Stats
	Write writer.Stats

	Stats    Stats
	CacheHit bool
}

// Convert reads doc and writes it in opts.To.
func (r *Runner) Convert(ctx context.Context, doc []byte, opts Options) (*ConvertResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForConvert(); err != nil {
		return nil, invalidOptions(err)
	}

	key := r.Keyer.ConvertKey(cache.Hash(doc), opts.ConvertKeyOpts())
	if data, hit := r.lookup(ctx, key, opts); hit {
		v, _ := sbgnml.Sniff(bytes.NewReader(doc))
		r.Logger.Debug("converted document from cache", "source", opts.Source, "to", opts.To)
		return &ConvertResult{
			Document: data,
			From:     sbgnio.FormatOf(v),
			To:       opts.To,
			Stats:    Stats{Size: len(data)},
			CacheHit: true,
		}, nil
	}

	res, err := r.read(ctx, doc, opts, opts.ReaderOptions())
	if err != nil {
		return nil, err
	}
	out := &ConvertResult{
		From: sbgnio.FormatOf(res.Version),
		To:   opts.To,
		Read: res.Stats,
	}
	out.Stats.Elements = res.Map.Model.Len()

	observability.Pipeline().OnWriteStart(ctx, opts.To, out.Stats.Elements)
	start := time.Now()
	var buf bytes.Buffer
	out.Write, err = sbgnio.Export(&buf, res.Map, opts.To, opts.WriterOptions())
	out.Stats.WriteTime = time.Since(start)
	observability.Pipeline().OnWriteComplete(ctx, opts.To, buf.Len(), out.Stats.WriteTime, err)
	if err != nil {
		return nil, err
	}

	out.Document = buf.Bytes()
	out.Stats.Size = len(out.Document)
	r.store(ctx, key, out.Document, cache.TTLConvert)

	r.Logger.Info("converted document",
		"source", opts.Source,
		"from", out.From,
		"to", out.To,
		"glyphs", out.Write.Glyphs,
		"arcs", out.Write.Arcs,
		"duration", out.Stats.WriteTime)
	return out, nil
}
