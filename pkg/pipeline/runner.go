package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgnconv/pkg/cache"
	sbgnio "github.com/matzehuels/sbgnconv/pkg/io"
	"github.com/matzehuels/sbgnconv/pkg/observability"
	"github.com/matzehuels/sbgnconv/pkg/reader"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner keeps no per-run state, so several goroutines may share one
// as long as its cache is safe for concurrent use.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Read parses doc into a map.
func (r *Runner) Read(ctx context.Context, doc []byte, opts Options) (*reader.Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateForRead(); err != nil {
		return nil, err
	}
	return r.read(ctx, doc, opts, opts.ReaderOptions())
}

func (r *Runner) read(ctx context.Context, doc []byte, opts Options, ro reader.Options) (*reader.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	observability.Pipeline().OnReadStart(ctx, opts.Source)
	start := time.Now()
	res, err := sbgnio.Import(bytes.NewReader(doc), opts.From, ro)
	elapsed := time.Since(start)

	elements := 0
	if res != nil {
		elements = res.Map.Model.Len()
	}
	observability.Pipeline().OnReadComplete(ctx, opts.Source, elements, elapsed, err)
	if err != nil {
		return nil, err
	}

	r.Logger.Debug("read document",
		"source", opts.Source,
		"version", res.Version,
		"elements", elements,
		"skipped", len(res.Skipped),
		"duration", elapsed)
	return res, nil
}

// lookup returns a cached entry unless the run asks for a refresh.
func (r *Runner) lookup(ctx context.Context, key string, opts Options) ([]byte, bool) {
	if opts.Refresh {
		return nil, false
	}
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil {
		r.Logger.Debug("cache lookup failed", "err", err)
		return nil, false
	}
	return data, hit
}

// store writes a cache entry. Failures only cost a recomputation later.
func (r *Runner) store(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if err := r.Cache.Set(ctx, key, data, ttl); err != nil {
		r.Logger.Debug("cache store failed", "err", err)
	}
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

func invalidOptions(err error) error {
	return fmt.Errorf("invalid options: %w", err)
}
