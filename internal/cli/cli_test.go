package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/sbgnconv/pkg/cache"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

const testDoc = `<?xml version="1.0" encoding="UTF-8"?>
<sbgn xmlns="http://sbgn.org/libsbgn/0.2">
  <map language="process description">
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

// run executes the root command with args in an isolated home.
func run(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "cache"))

	c := New(&bytes.Buffer{}, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.sbgn")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	for _, name := range []string{"convert", "check", "inspect", "preview", "serve", "cache", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("--config flag not registered")
	}
}

func TestConvertCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantNS  string
		without string
	}{
		{"default", nil, sbgnml.Namespace03, ""},
		{"to 0.2", []string{"--to", "sbgnml-0.2"}, sbgnml.Namespace02, ""},
		{"no render", []string{"--no-render"}, sbgnml.Namespace03, "renderInformation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := writeDoc(t, testDoc)
			out := filepath.Join(t.TempDir(), "out.sbgn")
			args := append([]string{"convert", in, "-o", out, "--no-cache"}, tt.args...)
			if err := run(t, args...); err != nil {
				t.Fatalf("convert: %v", err)
			}
			got := readFile(t, out)
			if !strings.Contains(got, tt.wantNS) {
				t.Errorf("output lacks namespace %s", tt.wantNS)
			}
			if tt.without != "" && strings.Contains(got, tt.without) {
				t.Errorf("output contains %s", tt.without)
			}
		})
	}
}

func TestConvertCommandConfig(t *testing.T) {
	cfg := writeConfig(t, "[write]\nto = \"sbgnml-0.2\"\n\n[cache]\nbackend = \"none\"\n")
	in := writeDoc(t, testDoc)

	out := filepath.Join(t.TempDir(), "out.sbgn")
	if err := run(t, "--config", cfg, "convert", in, "-o", out); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(readFile(t, out), sbgnml.Namespace02) {
		t.Error("config [write] to was not applied")
	}

	// flags win over the file
	out = filepath.Join(t.TempDir(), "out.sbgn")
	if err := run(t, "--config", cfg, "convert", in, "-o", out, "--to", "sbgnml-0.3"); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(readFile(t, out), sbgnml.Namespace03) {
		t.Error("--to did not override the config")
	}
}

func TestConvertCommandErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode errors.Code
	}{
		{"missing file", []string{"convert", "/does/not/exist.sbgn"}, errors.ErrCodeFileNotFound},
		{"bad format", []string{"convert", "IN", "--to", "sbml"}, errors.ErrCodeInvalidFormat},
		{"not sbgn", []string{"convert", "BAD", "--no-cache"}, errors.ErrCodeInvalidFormat},
		{"missing config", []string{"--config", "/does/not/exist.toml", "check", "IN"}, errors.ErrCodeFileNotFound},
	}

	in := writeDoc(t, testDoc)
	bad := writeDoc(t, "<html/>")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := make([]string, len(tt.args))
			for i, a := range tt.args {
				switch a {
				case "IN":
					a = in
				case "BAD":
					a = bad
				}
				args[i] = a
			}
			err := run(t, args...)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("GetCode() = %q, want %q (%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestCheckCommand(t *testing.T) {
	good := writeDoc(t, testDoc)
	if err := run(t, "check", good); err != nil {
		t.Errorf("check valid document: %v", err)
	}

	bad := writeDoc(t, "<html/>")
	if err := run(t, "check", good, bad); err == nil {
		t.Error("check should fail when a file is not SBGN-ML")
	}
}

func TestInspectCommand(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{"json", `"language": "process description"`},
		{"yaml", "language: process description"},
		{"text", "macromolecule"},
	}

	in := writeDoc(t, testDoc)
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "summary")
			if err := run(t, "inspect", in, "-f", tt.format, "-o", out, "--no-cache"); err != nil {
				t.Fatalf("inspect: %v", err)
			}
			if got := readFile(t, out); !strings.Contains(got, tt.want) {
				t.Errorf("output lacks %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestInspectCommandBadFormat(t *testing.T) {
	in := writeDoc(t, testDoc)
	err := run(t, "inspect", in, "-f", "xml")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestPreviewCommandDOT(t *testing.T) {
	in := writeDoc(t, testDoc)
	out := filepath.Join(t.TempDir(), "map.dot")
	if err := run(t, "preview", in, "-f", "dot", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("preview: %v", err)
	}
	got := readFile(t, out)
	for _, want := range []string{"digraph", `"g1"`, `"g2"`, "MEK"} {
		if !strings.Contains(got, want) {
			t.Errorf("DOT lacks %q", want)
		}
	}
}

func TestPreviewOutput(t *testing.T) {
	tests := []struct {
		output, input, format, want string
	}{
		{"x.svg", "map.sbgn", "svg", "x.svg"},
		{"", "map.sbgn", "svg", ""},
		{"", "dir/map.sbgn", "png", "dir/map.png"},
		{"", "map.xml", "pdf", "map.pdf"},
		{"", "-", "png", ""},
	}
	for _, tt := range tests {
		if got := previewOutput(tt.output, tt.input, tt.format); got != tt.want {
			t.Errorf("previewOutput(%q, %q, %q) = %q, want %q", tt.output, tt.input, tt.format, got, tt.want)
		}
	}
}

func TestCacheClearCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n")
	in := writeDoc(t, testDoc)

	out := filepath.Join(t.TempDir(), "out.sbgn")
	if err := run(t, "--config", cfg, "convert", in, "-o", out); err != nil {
		t.Fatalf("convert: %v", err)
	}
	if countEntries(t, dir) == 0 {
		t.Fatal("convert should have stored a cache entry")
	}

	if err := run(t, "--config", cfg, "cache", "clear"); err != nil {
		t.Fatalf("cache clear: %v", err)
	}
	if n := countEntries(t, dir); n != 0 {
		t.Errorf("countEntries() after clear = %d, want 0", n)
	}
}

func countEntries(t *testing.T, dir string) int {
	t.Helper()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	return fc.Len()
}

func TestCacheInfoCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, "[cache]\ndir = \""+filepath.ToSlash(dir)+"\"\n")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(t.TempDir(), "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "cache"))

	var out bytes.Buffer
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"--config", cfg, "cache", "info"})
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("cache info: %v", err)
	}
	for _, want := range []string{"backend: file", "entries: 0", dir} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output lacks %q:\n%s", want, out.String())
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", t.TempDir())
			var out bytes.Buffer
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetArgs([]string{"completion", shell})
			root.SetOut(&out)
			if err := root.ExecuteContext(context.Background()); err != nil {
				t.Fatalf("completion %s: %v", shell, err)
			}
			if !strings.Contains(out.String(), "sbgnconv") {
				t.Errorf("%s script does not mention sbgnconv", shell)
			}
		})
	}
}
