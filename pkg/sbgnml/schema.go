package sbgnml

import "encoding/xml"

// Sbgn is the document root. Generation 0.2 holds exactly one map,
// generation 0.3 may hold several.
type Sbgn struct {
	XMLName xml.Name `xml:"sbgn"`
	Maps    []*Map   `xml:"map"`
}

// FirstMap returns the first map of the document, or nil.
func (s *Sbgn) FirstMap() *Map {
	if s == nil || len(s.Maps) == 0 {
		return nil
	}
	return s.Maps[0]
}

// Map is one diagram.
type Map struct {
	ID       string `xml:"id,attr"`
	Language string `xml:"language,attr"`
	// Version is a combine.specifications URI, 0.3 only.
	Version string `xml:"version,attr"`

	Notes     *Notes     `xml:"notes"`
	Extension *Extension `xml:"extension"`
	Bbox      *Bbox      `xml:"bbox"`
	Glyphs    []*Glyph   `xml:"glyph"`
	Arcs      []*Arc     `xml:"arc"`
}

// Bbox is a box given by its top-left corner.
type Bbox struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
	W float64 `xml:"w,attr"`
	H float64 `xml:"h,attr"`
}

// Point is an arc vertex.
type Point struct {
	X float64 `xml:"x,attr"`
	Y float64 `xml:"y,attr"`
}

// Port is an arc attachment point on a glyph. Arcs may reference a port id
// instead of the glyph id.
type Port struct {
	ID string  `xml:"id,attr"`
	X  float64 `xml:"x,attr"`
	Y  float64 `xml:"y,attr"`
}

// Label is the text drawn on a glyph.
type Label struct {
	Text string `xml:"text,attr"`
	Bbox *Bbox  `xml:"bbox"`
}

// State is the value and variable of a state variable glyph.
type State struct {
	Value    string `xml:"value,attr"`
	Variable string `xml:"variable,attr"`
}

// Entity types an activity flow unit of information.
type Entity struct {
	Name string `xml:"name,attr"`
}

// Glyph is a node of the diagram.
type Glyph struct {
	ID             string `xml:"id,attr"`
	Class          string `xml:"class,attr"`
	CompartmentRef string `xml:"compartmentRef,attr"`
	Orientation    string `xml:"orientation,attr"`

	Notes     *Notes     `xml:"notes"`
	Extension *Extension `xml:"extension"`
	Label     *Label     `xml:"label"`
	State     *State     `xml:"state"`
	Entity    *Entity    `xml:"entity"`
	Bbox      *Bbox      `xml:"bbox"`
	Glyphs    []*Glyph   `xml:"glyph"`
	Ports     []*Port    `xml:"port"`
}

// Arc is an edge of the diagram. Source and Target reference glyph or port
// ids.
type Arc struct {
	ID     string `xml:"id,attr"`
	Class  string `xml:"class,attr"`
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`

	Notes     *Notes     `xml:"notes"`
	Extension *Extension `xml:"extension"`
	Glyphs    []*Glyph   `xml:"glyph"`
	Ports     []*Port    `xml:"port"`
	Start     *Point     `xml:"start"`
	Next      []*Point   `xml:"next"`
	End       *Point     `xml:"end"`
}

// Points returns start, next and end in document order.
func (a *Arc) Points() []Point {
	pts := make([]Point, 0, len(a.Next)+2)
	if a.Start != nil {
		pts = append(pts, *a.Start)
	}
	for _, p := range a.Next {
		pts = append(pts, *p)
	}
	if a.End != nil {
		pts = append(pts, *a.End)
	}
	return pts
}

// Notes carries an XHTML fragment kept as raw markup.
type Notes struct {
	Inner string `xml:",innerxml"`
}

// Extension holds the render information and annotation blocks.
type Extension struct {
	RenderInformation *RenderInformation `xml:"renderInformation"`
	Annotation        *Annotation        `xml:"annotation"`
}

// RenderInformation is the style block of a map.
type RenderInformation struct {
	ID              string `xml:"id,attr"`
	ProgramName     string `xml:"program-name,attr"`
	ProgramVersion  string `xml:"program-version,attr"`
	BackgroundColor string `xml:"background-color,attr"`

	ColorDefinitions *ColorDefinitions `xml:"listOfColorDefinitions"`
	Styles           *Styles           `xml:"listOfStyles"`
}

// ColorDefinitions is the list of named colors.
type ColorDefinitions struct {
	Items []*ColorDefinition `xml:"colorDefinition"`
}

// ColorDefinition names a color value.
type ColorDefinition struct {
	ID    string `xml:"id,attr"`
	Value string `xml:"value,attr"`
}

// Styles is the list of style rules.
type Styles struct {
	Items []*Style `xml:"style"`
}

// Style applies G to every id in the space separated IDList.
type Style struct {
	ID     string `xml:"id,attr"`
	Name   string `xml:"name,attr"`
	IDList string `xml:"idList,attr"`
	G      *G     `xml:"g"`
}

// G holds the style attributes. Colors are either a color definition id or
// a literal hex value.
type G struct {
	Stroke      string   `xml:"stroke,attr"`
	StrokeWidth *float64 `xml:"stroke-width,attr"`
	Fill        string   `xml:"fill,attr"`
	FontSize    *float64 `xml:"font-size,attr"`
	FontFamily  string   `xml:"font-family,attr"`
	FontColor   string   `xml:"font-color,attr"`
	FontStyle   string   `xml:"font-style,attr"`
	FontWeight  string   `xml:"font-weight,attr"`
}

// Annotation wraps an RDF block.
type Annotation struct {
	RDF *RDF `xml:"RDF"`
}

// RDF holds resource descriptions.
type RDF struct {
	Descriptions []*Description `xml:"Description"`
}

// Description lists the qualified resources of the element named by About.
type Description struct {
	About      string       `xml:"about,attr"`
	Qualifiers []*Qualifier `xml:",any"`
}

// Qualifier is one bqbiol or bqmodel element. XMLName.Space tells the two
// vocabularies apart.
type Qualifier struct {
	XMLName xml.Name
	Bag     *Bag `xml:"Bag"`
}

// Bag is an unordered resource container.
type Bag struct {
	Items []*Li `xml:"li"`
}

// Li references one resource.
type Li struct {
	Resource string `xml:"resource,attr"`
}
