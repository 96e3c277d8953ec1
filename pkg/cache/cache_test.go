package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	sbgnerr "github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit || data != nil {
		t.Errorf("NullCache should never hit, got hit=%v data=%q", hit, data)
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	doc := Hash([]byte("<sbgn/>"))

	c1 := k.ConvertKey(doc, ConvertKeyOpts{Format: "sbgnml-0.3", WithNotes: true})
	c2 := k.ConvertKey(doc, ConvertKeyOpts{Format: "sbgnml-0.3"})
	if c1 == c2 {
		t.Error("different ConvertKeyOpts should produce different keys")
	}
	if c1 != k.ConvertKey(doc, ConvertKeyOpts{Format: "sbgnml-0.3", WithNotes: true}) {
		t.Error("ConvertKey should be deterministic")
	}

	tests := []struct {
		key    string
		prefix string
	}{
		{c1, "convert:"},
		{k.InspectKey(doc, "json"), "inspect:"},
		{k.PreviewKey(doc, PreviewKeyOpts{Format: "svg"}), "preview:"},
	}
	for _, tt := range tests {
		if !strings.HasPrefix(tt.key, tt.prefix) {
			t.Errorf("key %q should start with %q", tt.key, tt.prefix)
		}
	}

	if k.InspectKey(doc, "json") == k.InspectKey(doc, "yaml") {
		t.Error("InspectKey should depend on the format")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "server:")
	doc := Hash([]byte("x"))

	got := scoped.ConvertKey(doc, ConvertKeyOpts{})
	want := "server:" + inner.ConvertKey(doc, ConvertKeyOpts{})
	if got != want {
		t.Errorf("ConvertKey = %q, want %q", got, want)
	}
	if got := scoped.PreviewKey(doc, PreviewKeyOpts{}); !strings.HasPrefix(got, "server:preview:") {
		t.Errorf("PreviewKey should be prefixed: %s", got)
	}

	// nil inner falls back to the default keyer
	if got := NewScopedKeyer(nil, "p:").InspectKey(doc, "json"); got != "p:"+inner.InspectKey(doc, "json") {
		t.Errorf("unexpected key with nil inner: %s", got)
	}
}

func TestKeyType(t *testing.T) {
	k := NewDefaultKeyer()
	tests := []struct {
		key  string
		want string
	}{
		{k.ConvertKey("h", ConvertKeyOpts{}), "convert"},
		{NewScopedKeyer(k, "server:").PreviewKey("h", PreviewKeyOpts{}), "preview"},
		{"nocolon", "unknown"},
	}
	for _, tt := range tests {
		if got := keyType(tt.key); got != tt.want {
			t.Errorf("keyType(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestUnavailable(t *testing.T) {
	if Unavailable("redis", "get", nil) != nil {
		t.Error("Unavailable(nil) should return nil")
	}

	cause := errors.New("connection refused")
	err := Unavailable("redis", "get", cause)
	if !IsUnavailable(err) {
		t.Error("IsUnavailable() = false, want true")
	}
	if !errors.Is(err, cause) {
		t.Error("error should unwrap to its cause")
	}
	if !sbgnerr.Is(err, sbgnerr.ErrCodeNetwork) {
		t.Errorf("code = %q, want NETWORK_ERROR", sbgnerr.GetCode(err))
	}
	if want := "NETWORK_ERROR: redis get: connection refused"; err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if IsUnavailable(cause) {
		t.Error("IsUnavailable() should be false for a plain error")
	}
}

func TestBackoffDo(t *testing.T) {
	ctx := context.Background()
	permanent := errors.New("bad key")
	down := Unavailable("mongodb", "find", errors.New("timeout"))

	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErr   error
	}{
		{"success", 0, nil, 1, nil},
		{"permanent", 1, permanent, 1, permanent},
		{"recovers", 2, down, 3, nil},
		{"exhausted", 5, down, 3, down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			b := Backoff{Attempts: 3, Delay: time.Millisecond}
			err := b.Do(ctx, func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackoffZeroUsesDefault(t *testing.T) {
	if got := (Backoff{}).orDefault(); got != DefaultBackoff {
		t.Errorf("orDefault() = %+v, want %+v", got, DefaultBackoff)
	}
}

func TestBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := DefaultBackoff.Do(ctx, func() error {
		return Unavailable("redis", "set", errors.New("reset"))
	})
	if err != context.Canceled {
		t.Errorf("Do() = %v, want context.Canceled", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if c.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), dir)
	}

	if _, hit, err := c.Get(ctx, "convert:a"); hit || err != nil {
		t.Fatalf("empty cache: hit=%v err=%v", hit, err)
	}

	if err := c.Set(ctx, "convert:a", []byte("<sbgn/>"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "convert:a")
	if err != nil || !hit || string(data) != "<sbgn/>" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}

	if err := c.Delete(ctx, "convert:a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "convert:a"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "convert:a"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("k")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	path := c.path("k")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("corrupt"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("corrupt entry: hit=%v err=%v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}
	if n := c.Len(); n != 3 {
		t.Errorf("Len() = %d, want 3", n)
	}
	if err := c.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n := c.Len(); n != 0 {
		t.Errorf("Len() after Clear = %d, want 0", n)
	}
	entries, err := os.ReadDir(c.Dir())
	if err != nil {
		t.Fatalf("cache dir should exist after Clear: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir has %d entries after Clear", len(entries))
	}
}

type recordingHooks struct {
	observability.NoopCacheHooks
	events []string
}

func (r *recordingHooks) OnCacheHit(_ context.Context, keyType string) {
	r.events = append(r.events, "hit "+keyType)
}

func (r *recordingHooks) OnCacheMiss(_ context.Context, keyType string) {
	r.events = append(r.events, "miss "+keyType)
}

func (r *recordingHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	r.events = append(r.events, "set "+keyType)
}

func TestInstrumented(t *testing.T) {
	rec := &recordingHooks{}
	observability.SetCacheHooks(rec)
	defer observability.Reset()

	ctx := context.Background()
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := Instrument(fc)
	key := NewDefaultKeyer().ConvertKey("h", ConvertKeyOpts{})

	_, _, _ = c.Get(ctx, key)
	_ = c.Set(ctx, key, []byte("x"), 0)
	_, _, _ = c.Get(ctx, key)

	want := []string{"miss convert", "set convert", "hit convert"}
	if strings.Join(rec.events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
}
