// Package cache stores conversion results keyed by document content.
//
// Four backends implement [Cache]: [FileCache] for the CLI, [RedisCache] and
// [MongoCache] for the conversion service, and [NullCache] when caching is
// off. Keys come from a [Keyer] so that every backend sees the same layout:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ConvertKey(cache.Hash(doc), cache.ConvertKeyOpts{Format: "sbgnml-0.3"})
//	data, hit, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Entry lifetimes. Results depend only on the document bytes and the
// options in the key, so they stay valid until evicted.
const (
	TTLConvert = 7 * 24 * time.Hour
	TTLInspect = 7 * 24 * time.Hour
	TTLPreview = 24 * time.Hour
)

// Cache is a byte store with per-entry expiry. A miss is not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ConvertKeyOpts are the writer settings a converted document depends on.
type ConvertKeyOpts struct {
	Format                string `json:"format"`
	WithRenderInformation bool   `json:"render"`
	WithAnnotations       bool   `json:"annotations"`
	WithNotes             bool   `json:"notes"`
}

// PreviewKeyOpts are the settings a preview depends on.
type PreviewKeyOpts struct {
	Format   string  `json:"format"`
	Detailed bool    `json:"detailed"`
	Scale    float64 `json:"scale"`
}

// Keyer builds cache keys from a document hash and the options applied to it.
type Keyer interface {
	ConvertKey(docHash string, opts ConvertKeyOpts) string
	InspectKey(docHash, format string) string
	PreviewKey(docHash string, opts PreviewKeyOpts) string
}

// DefaultKeyer prefixes every key with its kind.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ConvertKey returns the key of a converted document.
func (DefaultKeyer) ConvertKey(docHash string, opts ConvertKeyOpts) string {
	return entryKey("convert", docHash, opts)
}

// InspectKey returns the key of a map summary.
func (DefaultKeyer) InspectKey(docHash, format string) string {
	return entryKey("inspect", docHash, format)
}

// PreviewKey returns the key of a rendered preview.
func (DefaultKeyer) PreviewKey(docHash string, opts PreviewKeyOpts) string {
	return entryKey("preview", docHash, opts)
}
