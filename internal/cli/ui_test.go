package cli

import (
	"bytes"
	"strings"
	"testing"
)

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		name         string
		glyphs, arcs int
		cached       bool
		want, absent []string
	}{
		{"fresh", 3, 2, false, []string{"3 glyphs", "2 arcs", "fresh"}, []string{"cached"}},
		{"cached", 1, 0, true, []string{"1 glyphs", "cached"}, []string{"arcs"}},
		{"preview", 0, 0, true, []string{"cached"}, []string{"glyphs", "arcs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := captureStdout(t)
			printStats(tt.glyphs, tt.arcs, tt.cached)
			out := buf.String()
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q lacks %q", out, w)
				}
			}
			for _, a := range tt.absent {
				if strings.Contains(out, a) {
					t.Errorf("output %q contains %q", out, a)
				}
			}
		})
	}
}

func TestStatusLines(t *testing.T) {
	buf := captureStdout(t)
	printSuccess("Converted %s", "map.sbgn")
	printWarning("skipped %s", "g7")
	printFile("out.sbgn")

	out := buf.String()
	for _, want := range []string{"✓ Converted map.sbgn", "skipped g7", "→", "out.sbgn"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "\n"); n != 3 {
		t.Errorf("got %d lines, want 3", n)
	}
}
