package writer

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgnconv/pkg/annotations"
	"github.com/matzehuels/sbgnconv/pkg/classify"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/geometry"
	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

const maxDepth = 256

// owner is the glyph nested elements are written into.
type owner struct {
	glyph  *sbgnml.Glyph
	layout *sbgn.LayoutElement
	model  *sbgn.ModelElement
}

// emitFunc writes one layout element and its children. It reports false
// when it skipped the element.
type emitFunc func(e *emitter, le *sbgn.LayoutElement, me *sbgn.ModelElement, o *owner, depth int) (bool, error)

type emitter struct {
	m     *sbgn.Map
	opts  Options
	log   *log.Logger
	out   *sbgnml.Map
	table map[sbgn.Kind]emitFunc

	// styled lists the emitted elements in document order.
	styled []*sbgn.LayoutElement
	stats  Stats
}

func newEmitter(m *sbgn.Map, opts Options, out *sbgnml.Map) *emitter {
	return &emitter{
		m:     m,
		opts:  opts,
		log:   opts.logger(),
		out:   out,
		table: emitters(),
	}
}

// emitters returns the emitter of every kind that has a wire-format class.
func emitters() map[sbgn.Kind]emitFunc {
	t := make(map[sbgn.Kind]emitFunc)
	for _, k := range sbgn.Kinds() {
		if _, ok := classify.ClassName(k); !ok {
			continue
		}
		switch {
		case k == sbgn.KindStateVariable:
			t[k] = (*emitter).stateVariable
		case k == sbgn.KindUnitOfInformation:
			t[k] = (*emitter).unitOfInformation
		case k.IsAuxiliaryUnit():
			t[k] = (*emitter).typedUnit
		case k == sbgn.KindTag, k == sbgn.KindTerminal:
			t[k] = (*emitter).reference
		case k.HasConnectors():
			t[k] = (*emitter).connected
		case k == sbgn.KindConsumption, k == sbgn.KindProduction, k == sbgn.KindLogicArc, k == sbgn.KindEquivalenceArc:
			t[k] = (*emitter).participant
		case k.IsModulation():
			t[k] = (*emitter).modulation
		default:
			t[k] = (*emitter).node
		}
	}
	return t
}

func (e *emitter) emit(le *sbgn.LayoutElement, o *owner, depth int) error {
	if depth > maxDepth {
		return errors.New(errors.ErrCodeTooDeep, "layout element %s: nesting deeper than %d", le.ID, maxDepth)
	}
	fn, ok := e.table[le.Kind]
	if !ok {
		e.skip(le, "no emitter for kind")
		return nil
	}
	me, ok := e.m.ModelOf(le)
	if !ok {
		e.skip(le, "no mapped model element")
		return nil
	}
	emitted, err := fn(e, le, me, o, depth)
	if err != nil {
		return err
	}
	if emitted {
		e.styled = append(e.styled, le)
	}
	return nil
}

func (e *emitter) skip(le *sbgn.LayoutElement, reason string) {
	e.stats.Skipped = append(e.stats.Skipped, Skipped{ID: le.ID, Kind: le.Kind, Reason: reason})
	e.log.Warn("skipping layout element", "id", le.ID, "kind", le.Kind, "reason", reason)
}

func (e *emitter) children(le *sbgn.LayoutElement, o *owner, depth int) error {
	for _, c := range le.Children {
		if err := e.emit(c, o, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// attach adds g to its owner, or to the map when there is none.
func (e *emitter) attach(g *sbgnml.Glyph, o *owner) {
	if o == nil {
		e.out.Glyphs = append(e.out.Glyphs, g)
	} else {
		o.glyph.Glyphs = append(o.glyph.Glyphs, g)
	}
	e.stats.Glyphs++
}

func (e *emitter) addArc(a *sbgnml.Arc) {
	e.out.Arcs = append(e.out.Arcs, a)
	e.stats.Arcs++
}

func (e *emitter) decorate(me *sbgn.ModelElement) (*sbgnml.Notes, *sbgnml.Extension) {
	var notes *sbgnml.Notes
	var ext *sbgnml.Extension
	if e.opts.WithNotes && me.Notes != "" {
		notes = &sbgnml.Notes{Inner: me.Notes}
	}
	if e.opts.WithAnnotations {
		if a := annotations.ToExtension(me.Annotations, me.ID); a != nil {
			ext = &sbgnml.Extension{Annotation: a}
		}
	}
	return notes, ext
}

// glyph makes the glyph shared by every node kind.
func (e *emitter) glyph(le *sbgn.LayoutElement, me *sbgn.ModelElement) *sbgnml.Glyph {
	class, _ := classify.ClassName(le.Kind)
	g := &sbgnml.Glyph{ID: le.ID, Class: class, Bbox: boxOf(le.Bbox())}
	switch {
	case le.Label != nil && le.Label.Text != "":
		g.Label = labelOf(le.Label)
	case me.Label != "":
		g.Label = &sbgnml.Label{Text: me.Label}
	}
	g.Notes, g.Extension = e.decorate(me)
	return g
}

func boxOf(b geometry.Bbox) *sbgnml.Bbox {
	tl := b.TopLeft()
	return &sbgnml.Bbox{X: tl.X, Y: tl.Y, W: b.Width, H: b.Height}
}

// labelOf writes the label box only when the label has a size of its own.
func labelOf(t *sbgn.TextLayout) *sbgnml.Label {
	l := &sbgnml.Label{Text: t.Text}
	if t.Width != 0 || t.Height != 0 {
		l.Bbox = boxOf(t.Bbox())
	}
	return l
}

// =============================================================================
// Glyphs
// =============================================================================

func (e *emitter) node(le *sbgn.LayoutElement, me *sbgn.ModelElement, o *owner, depth int) (bool, error) {
	g := e.glyph(le, me)
	if me.Compartment != nil {
		g.CompartmentRef = me.Compartment.ID
	}
	e.attach(g, o)
	return true, e.children(le, &owner{glyph: g, layout: le, model: me}, depth)
}

func (e *emitter) stateVariable(le *sbgn.LayoutElement, me *sbgn.ModelElement, o *owner, depth int) (bool, error) {
	if o == nil {
		e.skip(le, "state variable outside a node")
		return false, nil
	}
	g := e.glyph(le, me)
	g.Label = nil
	g.State = &sbgnml.State{Value: me.Value, Variable: me.Variable}
	e.attach(g, o)
	return true, nil
}

func (e *emitter) unitOfInformation(le *sbgn.LayoutElement, me *sbgn.ModelElement, o *owner, depth int) (bool, error) {
	if o == nil {
		e.skip(le, "unit of information outside a node")
		return false, nil
	}
	g := e.glyph(le, me)
	text := me.Value
	if me.Prefix != "" {
		text = me.Prefix + ":" + me.Value
	}
	if text != "" {
		g.Label = &sbgnml.Label{Text: text}
	}
	e.attach(g, o)
	return true, nil
}

// typedUnit writes an activity flow unit of information with its entity.
func (e *emitter) typedUnit(le *sbgn.LayoutElement, me *sbgn.ModelElement, o *owner, depth int) (bool, error) {
	if o == nil {
		e.skip(le, "unit of information outside a node")
		return false, nil
	}
	g := e.glyph(le, me)
	if name, ok := classify.EntityName(le.Kind); ok {
		g.Entity = &sbgnml.Entity{Name: name}
	}
	e.attach(g, o)
	return true, nil
}

func (e *emitter) reference(le *sbgn.LayoutElement, me *sbgn.ModelElement, o *owner, depth int) (bool, error) {
	g := e.glyph(le, me)
	switch le.Direction {
	case sbgn.DirectionUp, sbgn.DirectionRight, sbgn.DirectionDown, sbgn.DirectionLeft:
		g.Orientation = le.Direction.String()
	}
	e.attach(g, o)
	return true, nil
}

func leftPort(id string) string  { return id + "_left_port" }
func rightPort(id string) string { return id + "_right_port" }

// connected writes a process or operator with a port at each connector tip.
// The arcs it owns are written at map level.
func (e *emitter) connected(le *sbgn.LayoutElement, me *sbgn.ModelElement, o *owner, depth int) (bool, error) {
	g := e.glyph(le, me)
	g.Orientation = sbgn.DirectionVertical.String()
	if le.Direction == sbgn.DirectionHorizontal {
		g.Orientation = sbgn.DirectionHorizontal.String()
	}
	left, right := le.LeftConnectorTip(), le.RightConnectorTip()
	g.Ports = []*sbgnml.Port{
		{ID: leftPort(le.ID), X: left.X, Y: left.Y},
		{ID: rightPort(le.ID), X: right.X, Y: right.Y},
	}
	e.attach(g, o)
	return true, e.children(le, &owner{glyph: g, layout: le, model: me}, depth)
}

// =============================================================================
// Arcs
// =============================================================================

// sides returns the port reactants and inputs attach to, then the port
// products leave from.
func sides(le *sbgn.LayoutElement) (in, out string) {
	if le.LeftToRight {
		return leftPort(le.ID), rightPort(le.ID)
	}
	return rightPort(le.ID), leftPort(le.ID)
}

func setPoints(a *sbgnml.Arc, pts []geometry.Point) {
	if len(pts) == 0 {
		return
	}
	first, last := pts[0], pts[len(pts)-1]
	a.Start = &sbgnml.Point{X: first.X, Y: first.Y}
	a.End = &sbgnml.Point{X: last.X, Y: last.Y}
	for _, p := range pts[1 : len(pts)-1] {
		a.Next = append(a.Next, &sbgnml.Point{X: p.X, Y: p.Y})
	}
}

// participant writes a consumption, production or logic arc. Layout points
// run from the process or operator outwards, so arcs pointing into it are
// reversed.
func (e *emitter) participant(le *sbgn.LayoutElement, me *sbgn.ModelElement, o *owner, depth int) (bool, error) {
	if o == nil || !o.layout.Kind.HasConnectors() {
		e.skip(le, "participant arc outside a process or operator")
		return false, nil
	}
	if me.Element == nil {
		e.skip(le, "participant without element")
		return false, nil
	}
	class, _ := classify.ClassName(le.Kind)
	a := &sbgnml.Arc{ID: le.ID, Class: class}
	in, out := sides(o.layout)
	pts := le.Points()
	if le.Kind == sbgn.KindProduction {
		a.Source, a.Target = out, me.Element.ID
		if me.Kind == sbgn.KindReactant {
			a.Source = in
		}
	} else {
		a.Source, a.Target = me.Element.ID, in
		pts = geometry.Reverse(pts)
	}
	setPoints(a, pts)
	a.Notes, a.Extension = e.decorate(me)
	e.addArc(a)
	return true, nil
}

func (e *emitter) modulation(le *sbgn.LayoutElement, me *sbgn.ModelElement, o *owner, depth int) (bool, error) {
	if me.Source == nil || me.Target == nil {
		e.skip(le, "modulation without source or target")
		return false, nil
	}
	class, _ := classify.ClassName(le.Kind)
	a := &sbgnml.Arc{ID: le.ID, Class: class, Source: me.Source.ID, Target: me.Target.ID}
	setPoints(a, le.Points())
	a.Notes, a.Extension = e.decorate(me)
	e.addArc(a)
	return true, nil
}
