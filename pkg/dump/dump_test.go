package dump_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/sbgnconv/pkg/dump"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/reader"
)

const doc = `<?xml version="1.0" encoding="UTF-8"?>
<sbgn xmlns="http://sbgn.org/libsbgn/0.3">
  <map id="map1" language="process description">
    <bbox x="0" y="0" w="300" h="200"/>
    <glyph id="cyto" class="compartment">
      <label text="cytosol"/>
      <bbox x="0" y="0" w="300" h="200"/>
    </glyph>
    <glyph id="s1" class="simple chemical" compartmentRef="cyto">
      <extension>
        <annotation>
          <rdf:RDF xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:bqbiol="http://biomodels.net/biology-qualifiers/">
            <rdf:Description rdf:about="#s1">
              <bqbiol:is>
                <rdf:Bag>
                  <rdf:li rdf:resource="urn:miriam:chebi:CHEBI%3A17234"/>
                </rdf:Bag>
              </bqbiol:is>
            </rdf:Description>
          </rdf:RDF>
        </annotation>
      </extension>
      <label text="glucose"/>
      <bbox x="10" y="10" w="40" h="20"/>
    </glyph>
    <glyph id="s2" class="macromolecule">
      <label text="HK"/>
      <bbox x="100" y="10" w="60" h="30"/>
      <glyph id="sv" class="state variable">
        <state value="P" variable="S12"/>
        <bbox x="95" y="5" w="20" h="10"/>
      </glyph>
    </glyph>
    <glyph id="p1" class="process">
      <bbox x="70" y="15" w="10" h="10"/>
      <port id="p1.1" x="60" y="20"/>
      <port id="p1.2" x="90" y="20"/>
    </glyph>
    <glyph id="odd" class="bogus"/>
    <arc id="c1" class="consumption" source="s1" target="p1.1">
      <start x="50" y="20"/>
      <end x="60" y="20"/>
    </arc>
    <arc id="pr1" class="production" source="p1.2" target="s2">
      <start x="90" y="20"/>
      <end x="100" y="20"/>
    </arc>
  </map>
</sbgn>
`

func read(t *testing.T) *reader.Result {
	t.Helper()
	opts := reader.DefaultOptions()
	opts.Logger = log.NewWithOptions(&bytes.Buffer{}, log.Options{})
	res, err := reader.Read(strings.NewReader(doc), opts)
	require.NoError(t, err)
	return res
}

func find(t *testing.T, s dump.Summary, id string) dump.Element {
	t.Helper()
	for _, e := range s.Elements {
		if e.ID == id {
			return e
		}
	}
	t.Fatalf("element %s not in summary", id)
	return dump.Element{}
}

func TestFromResult(t *testing.T) {
	s := dump.FromResult(read(t))

	assert.Equal(t, "map1", s.ID)
	assert.Equal(t, "process description", s.Language)
	assert.Equal(t, "0.3", s.Version)
	assert.Equal(t, dump.Box{X: 0, Y: 0, W: 300, H: 200}, s.Bounds)
	assert.Equal(t, []dump.Skipped{{ID: "odd", Class: "bogus"}}, s.Skipped)
	assert.Len(t, s.Elements, 7)

	glucose := find(t, s, "s1")
	assert.Equal(t, "simple chemical", glucose.Kind)
	assert.Equal(t, "glucose", glucose.Label)
	assert.Equal(t, "cyto", glucose.Compartment)
	assert.Equal(t, &dump.Box{X: 10, Y: 10, W: 40, H: 20}, glucose.Box)
	require.Len(t, glucose.Annotations, 1)
	assert.Equal(t, dump.Annotation{Qualifier: "bqbiol:is", Resource: "urn:miriam:chebi:CHEBI%3A17234"}, glucose.Annotations[0])

	sv := find(t, s, "sv")
	assert.Equal(t, "s2", sv.Parent)
	assert.Equal(t, "P", sv.Value)
	assert.Equal(t, "S12", sv.Variable)

	reactant := find(t, s, "c1")
	assert.Equal(t, "reactant", reactant.Kind)
	assert.Equal(t, "p1", reactant.Parent)
	assert.Equal(t, "s1", reactant.Element)
	assert.Nil(t, reactant.Box, "arcs have no box")

	assert.Equal(t, 1, s.Counts["reactant"])
	assert.Equal(t, 1, s.Counts["product"])
	assert.Equal(t, 1, s.Counts["generic process"])
}

func TestKinds(t *testing.T) {
	s := dump.Summary{Counts: map[string]int{"macromolecule": 3, "product": 1, "reactant": 1, "compartment": 2}}
	assert.Equal(t, []string{"macromolecule", "compartment", "product", "reactant"}, s.Kinds())
}

func TestEncodeDecode(t *testing.T) {
	s := dump.FromResult(read(t))

	for _, format := range dump.Formats() {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, dump.Encode(&buf, s, format))

			got, err := dump.Decode(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, s.ID, got.ID)
			assert.Equal(t, s.Counts, got.Counts)
			assert.Equal(t, s.Elements, got.Elements)
		})
	}
}

func TestEncodeText(t *testing.T) {
	s := dump.FromResult(read(t))

	var js bytes.Buffer
	require.NoError(t, dump.Encode(&js, s, dump.FormatJSON))
	assert.Contains(t, js.String(), `"language": "process description"`)
	assert.Contains(t, js.String(), `"compartment": "cyto"`)

	var ym bytes.Buffer
	require.NoError(t, dump.Encode(&ym, s, dump.FormatYAML))
	assert.Contains(t, ym.String(), "language: process description")
	assert.Contains(t, ym.String(), "  - id: sv\n")
}

func TestUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := dump.Encode(&buf, dump.Summary{}, "xml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))

	_, err = dump.Decode(strings.NewReader("{}"), "toml")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidFormat))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/json", dump.ContentType(dump.FormatJSON))
	assert.Equal(t, "application/yaml", dump.ContentType(dump.FormatYAML))
	assert.Equal(t, "application/msgpack", dump.ContentType(dump.FormatMsgpack))
}
