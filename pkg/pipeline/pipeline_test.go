package pipeline

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgnconv/pkg/cache"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/observability"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

const doc02 = `<?xml version="1.0" encoding="UTF-8"?>
<sbgn xmlns="http://sbgn.org/libsbgn/0.2">
  <map language="process description">
    <notes>
      <html xmlns="http://www.w3.org/1999/xhtml"><body>test</body></html>
    </notes>
    <glyph class="macromolecule" id="g1">
      <label text="MEK"/>
      <bbox x="10" y="10" w="60" h="40"/>
    </glyph>
    <glyph class="macromolecule" id="g2">
      <label text="ERK"/>
      <bbox x="110" y="10" w="60" h="40"/>
    </glyph>
    <arc class="stimulation" id="a1" source="g1" target="g2">
      <start x="70" y="30"/>
      <end x="110" y="30"/>
    </arc>
  </map>
</sbgn>
`

func quietLogger() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{})
}

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return NewRunner(fc, nil, quietLogger())
}

func TestValidateForConvert(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantTo  string
		wantErr bool
	}{
		{"defaults", Options{}, DefaultTo, false},
		{"explicit", Options{To: "sbgnml-0.2"}, "sbgnml-0.2", false},
		{"alias", Options{To: "sbgnml"}, "sbgnml", false},
		{"bad target", Options{To: "svg"}, "", true},
		{"bad source", Options{From: "sbml"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			err := opts.ValidateForConvert()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateForConvert() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && opts.To != tt.wantTo {
				t.Errorf("To = %q, want %q", opts.To, tt.wantTo)
			}
			if opts.Logger == nil {
				t.Error("Logger should be defaulted")
			}
		})
	}
}

func TestValidateForPreview(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"", false},
		{"dot", false},
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"SVG", true}, // case-sensitive
		{"json", true},
	}
	for _, tt := range tests {
		opts := Options{PreviewFormat: tt.format}
		err := opts.ValidateForPreview()
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateForPreview(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err == nil && opts.Scale != DefaultScale {
			t.Errorf("Scale = %v, want %v", opts.Scale, DefaultScale)
		}
	}
}

func TestValidateForInspect(t *testing.T) {
	opts := Options{}
	if err := opts.ValidateForInspect(); err != nil {
		t.Fatal(err)
	}
	if opts.DumpFormat != DefaultDumpFormat {
		t.Errorf("DumpFormat = %q, want %q", opts.DumpFormat, DefaultDumpFormat)
	}

	bad := Options{DumpFormat: "xml"}
	if err := bad.ValidateForInspect(); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestToggles(t *testing.T) {
	opts := Options{NoRenderInformation: true, NoNotes: true}
	ro, wo := opts.ReaderOptions(), opts.WriterOptions()
	if ro.WithRenderInformation || wo.WithRenderInformation {
		t.Error("render information should be off")
	}
	if ro.WithNotes || wo.WithNotes {
		t.Error("notes should be off")
	}
	if !ro.WithAnnotations || !wo.WithAnnotations {
		t.Error("annotations should stay on")
	}

	k1 := opts.ConvertKeyOpts()
	k2 := (&Options{}).ConvertKeyOpts()
	if k1 == k2 {
		t.Error("toggles should change the convert key")
	}
}

type recordingHooks struct {
	observability.NoopPipelineHooks
	events []string
}

func (h *recordingHooks) OnReadStart(_ context.Context, source string) {
	h.events = append(h.events, "read "+source)
}

func (h *recordingHooks) OnWriteComplete(_ context.Context, format string, size int, _ time.Duration, err error) {
	h.events = append(h.events, "write "+format)
}

func TestConvert(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetPipelineHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	r := newTestRunner(t)
	defer r.Close()

	opts := Options{Source: "test.sbgn"}
	res, err := r.Convert(ctx, []byte(doc02), opts)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if res.CacheHit {
		t.Error("first conversion should miss the cache")
	}
	if res.From != "sbgnml-0.2" || res.To != "sbgnml-0.3" {
		t.Errorf("From/To = %s/%s", res.From, res.To)
	}
	if !strings.Contains(string(res.Document), sbgnml.Namespace03) {
		t.Errorf("converted document lacks 0.3 namespace:\n%s", res.Document)
	}
	if res.Write.Glyphs != 2 || res.Write.Arcs != 1 {
		t.Errorf("Write = %+v, want 2 glyphs and 1 arc", res.Write)
	}
	if res.Stats.Elements != 3 {
		t.Errorf("Elements = %d, want 3", res.Stats.Elements)
	}

	again, err := r.Convert(ctx, []byte(doc02), opts)
	if err != nil {
		t.Fatal(err)
	}
	if !again.CacheHit {
		t.Error("second conversion should hit the cache")
	}
	if !bytes.Equal(again.Document, res.Document) {
		t.Error("cached document differs")
	}
	if again.From != "sbgnml-0.2" {
		t.Errorf("cached From = %q", again.From)
	}

	opts.Refresh = true
	fresh, err := r.Convert(ctx, []byte(doc02), opts)
	if err != nil {
		t.Fatal(err)
	}
	if fresh.CacheHit {
		t.Error("refresh should bypass the cache")
	}

	want := "read test.sbgn,write sbgnml-0.3,read test.sbgn,write sbgnml-0.3"
	if got := strings.Join(hooks.events, ","); got != want {
		t.Errorf("events = %s, want %s", got, want)
	}
}

func TestConvertToggles(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	with, err := r.Convert(ctx, []byte(doc02), Options{})
	if err != nil {
		t.Fatal(err)
	}
	without, err := r.Convert(ctx, []byte(doc02), Options{NoNotes: true})
	if err != nil {
		t.Fatal(err)
	}
	if without.CacheHit {
		t.Error("different toggles must not share a cache entry")
	}
	if !strings.Contains(string(with.Document), "<sbgn:notes>") {
		t.Error("notes missing by default")
	}
	if strings.Contains(string(without.Document), "<sbgn:notes>") {
		t.Error("notes written despite NoNotes")
	}
}

func TestConvertErrors(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	tests := []struct {
		name string
		doc  string
		opts Options
		code errors.Code
	}{
		{"bad target", doc02, Options{To: "png"}, errors.ErrCodeInvalidFormat},
		{"wrong generation", doc02, Options{From: "sbgnml-0.3"}, errors.ErrCodeInvalidFormat},
		{"not sbgn", "<html/>", Options{}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Convert(ctx, []byte(tt.doc), tt.opts)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestConvertCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestRunner(t).Convert(ctx, []byte(doc02), Options{})
	if err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestInspect(t *testing.T) {
	r := newTestRunner(t)
	ctx := context.Background()

	res, err := r.Inspect(ctx, []byte(doc02), Options{DumpFormat: "yaml"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary.Version != "0.2" || len(res.Summary.Elements) != 3 {
		t.Errorf("summary = %+v", res.Summary)
	}
	if !strings.Contains(string(res.Data), "kind: stimulation") {
		t.Errorf("yaml lacks the stimulation:\n%s", res.Data)
	}

	cached, err := r.Inspect(ctx, []byte(doc02), Options{DumpFormat: "yaml"})
	if err != nil {
		t.Fatal(err)
	}
	if !cached.CacheHit {
		t.Error("second inspect should hit the cache")
	}
	if cached.Summary.Counts["macromolecule"] != 2 {
		t.Errorf("cached counts = %v", cached.Summary.Counts)
	}
}

func TestPreviewDOT(t *testing.T) {
	r := newTestRunner(t)
	res, err := r.Preview(context.Background(), []byte(doc02), Options{PreviewFormat: FormatDOT})
	if err != nil {
		t.Fatal(err)
	}
	dot := string(res.Data)
	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("not a DOT graph:\n%s", dot)
	}
	if !strings.Contains(dot, `"g1" -> "g2" [id="a1", arrowhead=empty];`) {
		t.Errorf("stimulation edge missing:\n%s", dot)
	}
}

func TestContentType(t *testing.T) {
	tests := map[string]string{
		FormatDOT: "text/vnd.graphviz",
		FormatSVG: "image/svg+xml",
		FormatPDF: "application/pdf",
		FormatPNG: "image/png",
	}
	for format, want := range tests {
		if got := ContentType(format); got != want {
			t.Errorf("ContentType(%q) = %q, want %q", format, got, want)
		}
	}
}
