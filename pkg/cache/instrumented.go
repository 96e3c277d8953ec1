package cache

import (
	"context"
	"time"

	"github.com/matzehuels/sbgnconv/pkg/observability"
)

// Instrumented reports hits, misses and writes of the wrapped cache to the
// registered cache hooks. The key type passed to the hooks is the key's kind
// prefix: convert, inspect or preview.
type Instrumented struct {
	Cache
}

// Instrument wraps c.
func Instrument(c Cache) *Instrumented {
	return &Instrumented{Cache: c}
}

// Get retrieves a value and records a hit or miss.
func (i *Instrumented) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, hit, err := i.Cache.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if hit {
		observability.Cache().OnCacheHit(ctx, keyType(key))
	} else {
		observability.Cache().OnCacheMiss(ctx, keyType(key))
	}
	return data, hit, nil
}

// Set stores a value and records the write.
func (i *Instrumented) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := i.Cache.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, keyType(key), len(data))
	return nil
}
