package io_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgnconv/pkg/errors"
	sbgnio "github.com/matzehuels/sbgnconv/pkg/io"
	"github.com/matzehuels/sbgnconv/pkg/reader"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
	"github.com/matzehuels/sbgnconv/pkg/writer"
)

const doc02 = `<?xml version="1.0" encoding="UTF-8"?>
<sbgn xmlns="http://sbgn.org/libsbgn/0.2">
  <map language="process description">
    <glyph class="macromolecule" id="g1">
      <label text="MEK"/>
      <bbox x="10" y="10" w="60" h="40"/>
    </glyph>
  </map>
</sbgn>
`

func quiet() *log.Logger {
	return log.NewWithOptions(&bytes.Buffer{}, log.Options{})
}

func readOpts() reader.Options {
	opts := reader.DefaultOptions()
	opts.Logger = quiet()
	return opts
}

func TestFormats(t *testing.T) {
	got := strings.Join(sbgnio.Formats(), ",")
	if got != "sbgnml,sbgnml-0.2,sbgnml-0.3" {
		t.Errorf("Formats() = %s", got)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		version sbgnml.Version
		wantErr bool
	}{
		{"sbgnml", sbgnml.Version03, false},
		{"sbgnml-0.2", sbgnml.Version02, false},
		{"sbgnml-0.3", sbgnml.Version03, false},
		{"", sbgnml.VersionUnknown, true},
		{"sbml", sbgnml.VersionUnknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := sbgnio.Lookup(tt.name)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Fatalf("Lookup(%q) error = %v, want INVALID_FORMAT", tt.name, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q): %v", tt.name, err)
			}
			if f.Version != tt.version {
				t.Errorf("Version = %s, want %s", f.Version, tt.version)
			}
		})
	}
}

func TestFormatOf(t *testing.T) {
	if got := sbgnio.FormatOf(sbgnml.Version02); got != "sbgnml-0.2" {
		t.Errorf("FormatOf(0.2) = %q", got)
	}
	if got := sbgnio.FormatOf(sbgnml.VersionUnknown); got != "" {
		t.Errorf("FormatOf(unknown) = %q", got)
	}
}

func TestImport(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"", false},
		{"sbgnml", false},
		{"sbgnml-0.2", false},
		{"sbgnml-0.3", true},
		{"svg", true},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			res, err := sbgnio.Import(strings.NewReader(doc02), tt.format, readOpts())
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Fatalf("error = %v, want INVALID_FORMAT", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if res.Version != sbgnml.Version02 {
				t.Errorf("Version = %s, want 0.2", res.Version)
			}
			if _, ok := res.Map.Model.Get("g1"); !ok {
				t.Error("g1 not in model")
			}
		})
	}
}

func TestImportFileMissing(t *testing.T) {
	_, err := sbgnio.ImportFile(filepath.Join(t.TempDir(), "nope.sbgn"), "", readOpts())
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestExportConvertsGeneration(t *testing.T) {
	res, err := sbgnio.Import(strings.NewReader(doc02), "", readOpts())
	if err != nil {
		t.Fatal(err)
	}

	opts := writer.DefaultOptions()
	opts.Logger = quiet()
	opts.Version = sbgnml.Version02 // overridden by the format

	path := filepath.Join(t.TempDir(), "out.sbgn")
	if _, err := sbgnio.ExportFile(res.Map, path, "sbgnml", opts); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), sbgnml.Namespace03) {
		t.Errorf("output lacks the 0.3 namespace:\n%s", data)
	}

	back, err := sbgnio.ImportFile(path, "sbgnml-0.3", readOpts())
	if err != nil {
		t.Fatal(err)
	}
	if back.Map.Model.Len() != res.Map.Model.Len() {
		t.Errorf("model size %d after round trip, want %d", back.Map.Model.Len(), res.Map.Model.Len())
	}
}

func TestExportUnknownFormat(t *testing.T) {
	res, err := sbgnio.Import(strings.NewReader(doc02), "", readOpts())
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := sbgnio.Export(&buf, res.Map, "png", writer.DefaultOptions()); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written for an unknown format")
	}
}
