// Package observability lets applications watch conversions without the
// libraries depending on a metrics or tracing backend.
//
// The pipeline, the caches and the HTTP service report events to the hooks
// registered here. Until something is registered every event is dropped.
// [LogHooks] ships with the package and writes events to a charmbracelet
// logger; the CLI installs it when run with --verbose:
//
//	observability.Install(observability.NewLogHooks(logger))
//
// Implementations of a single group can be registered on their own:
//
//	observability.SetCacheHooks(&cacheMetrics{})
package observability

import (
	"context"
	"time"
)

// PipelineHooks receives the stages of a conversion. source is the input
// name given to the pipeline, format a registered format name such as
// "sbgnml-0.3" or a preview format such as "svg".
type PipelineHooks interface {
	OnReadStart(ctx context.Context, source string)
	OnReadComplete(ctx context.Context, source string, elementCount int, duration time.Duration, err error)

	OnWriteStart(ctx context.Context, format string, elementCount int)
	OnWriteComplete(ctx context.Context, format string, size int, duration time.Duration, err error)

	OnPreviewStart(ctx context.Context, format string)
	OnPreviewComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// CacheHooks receives cache lookups and stores. keyType is the kind of
// result: "convert", "inspect" or "preview".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives requests to the conversion service.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
	// OnError is called for requests answered with an error body.
	OnError(ctx context.Context, method, path string, err error)
}

// Hooks covers all event groups.
type Hooks interface {
	PipelineHooks
	CacheHooks
	HTTPHooks
}

// NoopPipelineHooks drops pipeline events. Embed it to implement a subset.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnReadStart(context.Context, string)                                {}
func (NoopPipelineHooks) OnReadComplete(context.Context, string, int, time.Duration, error)  {}
func (NoopPipelineHooks) OnWriteStart(context.Context, string, int)                          {}
func (NoopPipelineHooks) OnWriteComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnPreviewStart(context.Context, string)                             {}
func (NoopPipelineHooks) OnPreviewComplete(context.Context, string, time.Duration, error)    {}

// NoopCacheHooks drops cache events.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks drops HTTP events.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}
