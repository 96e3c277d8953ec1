package sbgn

import (
	"slices"

	"github.com/matzehuels/sbgnconv/pkg/geometry"
)

// DefaultConnectorLength is the connector length of processes and operators
// whose document gives no port on that side.
const DefaultConnectorLength = 12.0

// Default label font.
const (
	DefaultFontFamily = "Helvetica"
	DefaultFontSize   = 14.0
	AuxiliaryFontSize = 8.0
)

// Direction is the orientation of processes, operators, tags and terminals.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
	DirectionUp
	DirectionRight
	DirectionDown
	DirectionLeft
)

func (d Direction) String() string {
	switch d {
	case DirectionHorizontal:
		return "horizontal"
	case DirectionUp:
		return "up"
	case DirectionRight:
		return "right"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	default:
		return "vertical"
	}
}

// TextLayout is a positioned label.
type TextLayout struct {
	Text     string
	Position geometry.Point
	// Width and Height are zero when the document gave no label box.
	Width  float64
	Height float64

	FontFamily string
	FontSize   float64
	FontColor  Color
}

// Bbox returns the label box.
func (t *TextLayout) Bbox() geometry.Bbox {
	return geometry.Bbox{Position: t.Position, Width: t.Width, Height: t.Height}
}

// LayoutElement is the visual side of one diagram component. Nodes use
// Position, Width and Height; arcs use Segments, Source and Target.
//
// Style fields are pointers: nil means the document did not set them.
type LayoutElement struct {
	ID   string
	Kind Kind

	Position geometry.Point
	Width    float64
	Height   float64
	Label    *TextLayout

	Direction            Direction
	LeftToRight          bool
	LeftConnectorLength  float64
	RightConnectorLength float64

	Segments []geometry.Segment
	Source   *LayoutElement
	Target   *LayoutElement

	Fill        *Color
	Stroke      *Color
	StrokeWidth *float64

	PathStroke           *Color
	PathStrokeWidth      *float64
	ArrowheadFill        *Color
	ArrowheadStroke      *Color
	ArrowheadStrokeWidth *float64

	Children []*LayoutElement
}

// NewNode returns a node layout element placed by its wire-format bbox.
func NewNode(id string, kind Kind, box geometry.Bbox) *LayoutElement {
	return &LayoutElement{
		ID:       id,
		Kind:     kind,
		Position: box.Position,
		Width:    box.Width,
		Height:   box.Height,
	}
}

// AddChild appends c to the nested layout elements.
func (e *LayoutElement) AddChild(c *LayoutElement) {
	e.Children = append(e.Children, c)
}

// Bbox returns the node box.
func (e *LayoutElement) Bbox() geometry.Bbox {
	return geometry.Bbox{Position: e.Position, Width: e.Width, Height: e.Height}
}

// Points returns the arc vertices in drawing order.
func (e *LayoutElement) Points() []geometry.Point {
	return geometry.Points(e.Segments)
}

// LeftConnectorTip returns the end of the left connector, which is the top
// one for vertical elements.
func (e *LayoutElement) LeftConnectorTip() geometry.Point {
	b := e.Bbox()
	if e.Direction == DirectionHorizontal {
		return geometry.Pt(b.Left()-e.LeftConnectorLength, e.Position.Y)
	}
	return geometry.Pt(e.Position.X, b.Top()-e.LeftConnectorLength)
}

// RightConnectorTip returns the end of the right connector, which is the
// bottom one for vertical elements.
func (e *LayoutElement) RightConnectorTip() geometry.Point {
	b := e.Bbox()
	if e.Direction == DirectionHorizontal {
		return geometry.Pt(b.Right()+e.RightConnectorLength, e.Position.Y)
	}
	return geometry.Pt(e.Position.X, b.Bottom()+e.RightConnectorLength)
}

// Layout is the visual tree of a map, with every element also indexed by id.
type Layout struct {
	Position geometry.Point
	Width    float64
	Height   float64
	Fill     *Color

	index map[string]*LayoutElement
	order []string
	roots []*LayoutElement
}

// NewLayout returns an empty layout.
func NewLayout() *Layout {
	return &Layout{index: make(map[string]*LayoutElement)}
}

// Register indexes e by id without attaching it anywhere.
func (l *Layout) Register(e *LayoutElement) error {
	if e.ID == "" {
		return ErrInvalidID
	}
	if _, ok := l.index[e.ID]; ok {
		return ErrDuplicateID
	}
	l.index[e.ID] = e
	l.order = append(l.order, e.ID)
	return nil
}

// AddRoot attaches a registered element at the top of the tree.
func (l *Layout) AddRoot(e *LayoutElement) {
	l.roots = append(l.roots, e)
}

// Get returns the element with the given id.
func (l *Layout) Get(id string) (*LayoutElement, bool) {
	e, ok := l.index[id]
	return e, ok
}

// Roots returns the top-level elements in insertion order.
func (l *Layout) Roots() []*LayoutElement { return l.roots }

// IDs returns every registered id in registration order.
func (l *Layout) IDs() []string { return slices.Clone(l.order) }

// Len returns the number of registered elements.
func (l *Layout) Len() int { return len(l.index) }

// Bbox returns the layout bounds.
func (l *Layout) Bbox() geometry.Bbox {
	return geometry.Bbox{Position: l.Position, Width: l.Width, Height: l.Height}
}

// Walk visits every element depth-first in tree order. The parent is nil for
// roots. Returning false from fn skips the element's children.
func (l *Layout) Walk(fn func(e, parent *LayoutElement) bool) {
	var visit func(e, parent *LayoutElement)
	visit = func(e, parent *LayoutElement) {
		if !fn(e, parent) {
			return
		}
		for _, c := range e.Children {
			visit(c, e)
		}
	}
	for _, r := range l.roots {
		visit(r, nil)
	}
}

// Fit returns the smallest box containing every node and arc point.
func (l *Layout) Fit() (geometry.Bbox, bool) {
	var boxes []geometry.Bbox
	var points []geometry.Point
	l.Walk(func(e, _ *LayoutElement) bool {
		if e.Kind.IsArc() {
			points = append(points, e.Points()...)
		} else {
			boxes = append(boxes, e.Bbox())
		}
		return true
	})
	return geometry.Fit(boxes, points)
}
