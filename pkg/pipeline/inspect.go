package pipeline

import (
	"bytes"
	"context"

	"github.com/matzehuels/sbgnconv/pkg/cache"
	"github.com/matzehuels/sbgnconv/pkg/dump"
	"github.com/matzehuels/sbgnconv/pkg/reader"
)

// InspectResult is an encoded map summary.
type InspectResult struct {
	Summary  dump.Summary
	Data     []byte
	Format   string
	CacheHit bool
}

// Inspect reads doc with every optional part and summarizes it. The
// convert toggles of opts do not apply.
func (r *Runner) Inspect(ctx context.Context, doc []byte, opts Options) (*InspectResult, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForInspect(); err != nil {
		return nil, invalidOptions(err)
	}

	key := r.Keyer.InspectKey(cache.Hash(doc), opts.DumpFormat)
	if data, hit := r.lookup(ctx, key, opts); hit {
		if s, err := dump.Decode(bytes.NewReader(data), opts.DumpFormat); err == nil {
			return &InspectResult{Summary: s, Data: data, Format: opts.DumpFormat, CacheHit: true}, nil
		}
		// undecodable entry, fall through and overwrite it
	}

	ro := reader.DefaultOptions()
	ro.Logger = opts.Logger
	res, err := r.read(ctx, doc, opts, ro)
	if err != nil {
		return nil, err
	}

	s := dump.FromResult(res)
	var buf bytes.Buffer
	if err := dump.Encode(&buf, s, opts.DumpFormat); err != nil {
		return nil, err
	}
	r.store(ctx, key, buf.Bytes(), cache.TTLInspect)
	return &InspectResult{Summary: s, Data: buf.Bytes(), Format: opts.DumpFormat}, nil
}
