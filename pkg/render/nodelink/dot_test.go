package nodelink

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgnconv/pkg/reader"
)

const processDoc = `<?xml version="1.0" encoding="UTF-8"?>
<sbgn xmlns="http://sbgn.org/libsbgn/0.3">
  <map id="m" language="process description">
    <bbox x="0" y="0" w="200" h="100"/>
    <glyph class="simple chemical" id="s1">
      <label text="ATP"/>
      <bbox x="0" y="0" w="40" h="20"/>
    </glyph>
    <glyph class="macromolecule" id="s2">
      <label text="ADP"/>
      <bbox x="140" y="0" w="60" h="20"/>
    </glyph>
    <glyph class="process" id="p1">
      <bbox x="90" y="0" w="20" h="20"/>
      <port id="p1.1" x="80" y="10"/>
      <port id="p1.2" x="120" y="10"/>
    </glyph>
    <glyph class="macromolecule" id="e1">
      <label text="kinase"/>
      <bbox x="70" y="60" w="60" h="30"/>
    </glyph>
    <arc class="consumption" id="c1" source="s1" target="p1.1">
      <start x="40" y="10"/>
      <end x="80" y="10"/>
    </arc>
    <arc class="production" id="pr1" source="p1.2" target="s2">
      <start x="120" y="10"/>
      <end x="140" y="10"/>
    </arc>
    <arc class="inhibition" id="i1" source="e1" target="p1">
      <start x="100" y="60"/>
      <end x="100" y="20"/>
    </arc>
  </map>
</sbgn>
`

func readMap(t *testing.T) *reader.Result {
	t.Helper()
	opts := reader.DefaultOptions()
	opts.Logger = log.NewWithOptions(&bytes.Buffer{}, log.Options{})
	res, err := reader.Read(strings.NewReader(processDoc), opts)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return res
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(readMap(t).Map, Options{})

	tests := []struct {
		name string
		want string
	}{
		{"pinned chemical", `"s1" [label="ATP", pos="20,90!", width=0.5555555555555556, height=0.2777777777777778, shape=ellipse`},
		{"process", `"p1" [label="", pos="100,90!"`},
		{"consumption", `"s1" -> "p1" [id="c1", arrowhead=none];`},
		{"production", `"p1" -> "s2" [id="pr1", arrowhead=normal];`},
		{"inhibition", `"e1" -> "p1" [id="i1", arrowhead=tee];`},
		{"input scale", "inputscale=72;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(dot, tt.want) {
				t.Errorf("DOT lacks %s\n%s", tt.want, dot)
			}
		})
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(readMap(t).Map, Options{Detailed: true})
	if !strings.Contains(dot, `label="kinase\ne1\nmacromolecule"`) {
		t.Errorf("detailed label missing:\n%s", dot)
	}
	if !strings.Contains(dot, `label="p1\ngeneric process"`) {
		t.Errorf("detailed process label missing:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))
	want := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100.00 50.00" width="100" height="50"><g/></svg>`
	if got != want {
		t.Errorf("normalizeViewBox() = %s, want %s", got, want)
	}

	plain := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(plain); !bytes.Equal(got, plain) {
		t.Errorf("svg without viewBox changed: %s", got)
	}
}
