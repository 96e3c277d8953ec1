package sbgnml_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

func ExampleRender() {
	doc := &sbgnml.Sbgn{Maps: []*sbgnml.Map{{
		Language: "process description",
		Glyphs: []*sbgnml.Glyph{{
			ID:    "g1",
			Class: "macromolecule",
			Label: &sbgnml.Label{Text: "LacI"},
			Bbox:  &sbgnml.Bbox{X: 10, Y: 20, W: 60, H: 30},
		}},
	}}}

	if err := sbgnml.Render(os.Stdout, doc, sbgnml.Version02); err != nil {
		fmt.Println("Error:", err)
	}
	// Output:
	// <?xml version="1.0" encoding="UTF-8"?>
	// <sbgn:sbgn xmlns:sbgn="http://sbgn.org/libsbgn/0.2" xmlns:render="http://www.sbml.org/sbml/level3/version1/render/version1" xmlns:rdf="http://www.w3.org/1999/02/22-rdf-syntax-ns#" xmlns:bqbiol="http://biomodels.net/biology-qualifiers/" xmlns:bqmodel="http://biomodels.net/model-qualifiers/">
	//   <sbgn:map language="process description">
	//     <sbgn:glyph class="macromolecule" id="g1">
	//       <sbgn:label text="LacI"/>
	//       <sbgn:bbox x="10" y="20" w="60" h="30"/>
	//     </sbgn:glyph>
	//   </sbgn:map>
	// </sbgn:sbgn>
}

func ExampleSniff() {
	v, err := sbgnml.Sniff(strings.NewReader(`<sbgn xmlns="http://sbgn.org/libsbgn/0.3"/>`))
	fmt.Println(v, err)
	// Output: 0.3 <nil>
}
