package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks writes every event to a logger at debug level. Failed stages
// and HTTP errors are logged as warnings.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks that log to l, or to log.Default() if l is nil.
func NewLogHooks(l *log.Logger) *LogHooks {
	if l == nil {
		l = log.Default()
	}
	return &LogHooks{logger: l.WithPrefix("event")}
}

func (h *LogHooks) done(stage string, err error, keyvals ...any) {
	if err != nil {
		h.logger.Warn(stage+" failed", append(keyvals, "error", err)...)
		return
	}
	h.logger.Debug(stage+" done", keyvals...)
}

func (h *LogHooks) OnReadStart(_ context.Context, source string) {
	h.logger.Debug("read", "source", source)
}

func (h *LogHooks) OnReadComplete(_ context.Context, source string, elementCount int, d time.Duration, err error) {
	h.done("read", err, "source", source, "elements", elementCount, "took", d)
}

func (h *LogHooks) OnWriteStart(_ context.Context, format string, elementCount int) {
	h.logger.Debug("write", "format", format, "elements", elementCount)
}

func (h *LogHooks) OnWriteComplete(_ context.Context, format string, size int, d time.Duration, err error) {
	h.done("write", err, "format", format, "bytes", size, "took", d)
}

func (h *LogHooks) OnPreviewStart(_ context.Context, format string) {
	h.logger.Debug("preview", "format", format)
}

func (h *LogHooks) OnPreviewComplete(_ context.Context, format string, d time.Duration, err error) {
	h.done("preview", err, "format", format, "took", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, path string, status int, d time.Duration) {
	h.logger.Debug("response", "method", method, "path", path, "status", status, "took", d)
}

func (h *LogHooks) OnError(_ context.Context, method, path string, err error) {
	h.logger.Warn("request failed", "method", method, "path", path, "error", err)
}

var _ Hooks = (*LogHooks)(nil)
