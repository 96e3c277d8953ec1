package reader

import (
	"strings"

	"github.com/matzehuels/sbgnconv/pkg/annotations"
	"github.com/matzehuels/sbgnconv/pkg/classify"
	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/geometry"
	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

// parent is the element a nested element is attached to.
type parent struct {
	node   *node
	model  *sbgn.ModelElement
	layout *sbgn.LayoutElement
	// anonymous is the number of earlier sibling state variables without a
	// variable name.
	anonymous int
}

type buildFunc func(b *builder, n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error)

// constructor returns the construction routine for k, or nil when the reader
// cannot make elements of that kind.
func constructor(k sbgn.Kind) buildFunc {
	switch {
	case k.IsEntityPool(), k == sbgn.KindBiologicalActivity:
		return (*builder).buildEntity
	case k.IsSubunit(), k == sbgn.KindCompartment, k == sbgn.KindSubmap, k == sbgn.KindPhenotype:
		return (*builder).buildCompound
	case k == sbgn.KindStateVariable:
		return (*builder).buildStateVariable
	case k == sbgn.KindUnitOfInformation:
		return (*builder).buildUnitOfInformation
	case k.IsAuxiliaryUnit():
		return (*builder).buildTypedUnit
	case k == sbgn.KindTag, k == sbgn.KindTerminal:
		return (*builder).buildReference
	case k.IsProcess():
		return (*builder).buildProcess
	case k.IsOperator():
		return (*builder).buildOperator
	case k == sbgn.KindConsumption, k == sbgn.KindProduction, k == sbgn.KindLogicArc, k == sbgn.KindEquivalenceArc:
		return (*builder).buildParticipant
	case k.IsModulation():
		return (*builder).buildModulation
	}
	return nil
}

// buildAll builds every top-level element: compartments, other glyphs,
// then arcs.
func (b *builder) buildAll(sm *sbgnml.Map) error {
	var compartments, others []*sbgnml.Glyph
	for _, g := range sm.Glyphs {
		if g.Class == classify.ClassCompartment {
			compartments = append(compartments, g)
		} else {
			others = append(others, g)
		}
	}
	for _, g := range append(compartments, others...) {
		if _, _, err := b.build(b.byID[g.ID], nil, 0); err != nil {
			return err
		}
	}
	for _, a := range sm.Arcs {
		if _, _, err := b.build(b.byID[a.ID], nil, 0); err != nil {
			return err
		}
	}
	// Glyphs on arcs, such as cardinality labels, are never built.
	for _, a := range sm.Arcs {
		for _, g := range a.Glyphs {
			b.skipUnbuilt(g)
		}
	}
	return nil
}

// skipUnbuilt records g and the glyphs inside it as skipped unless they were
// built through a reference.
func (b *builder) skipUnbuilt(g *sbgnml.Glyph) {
	if _, _, ok := b.built(g.ID); ok || b.skip[g.ID] {
		return
	}
	b.skipNode(b.byID[g.ID])
	for _, c := range g.Glyphs {
		b.skipUnbuilt(c)
	}
}

// build makes the pair for n unless it exists. It returns nil elements
// when n is skipped.
func (b *builder) build(n *node, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	if depth > b.opts.maxDepth() {
		return nil, nil, errors.New(errors.ErrCodeTooDeep, "element %s: nesting deeper than %d", n.id(), b.opts.maxDepth()).At(n.id())
	}
	if me, le, ok := b.built(n.id()); ok {
		return me, le, nil
	}
	if b.skip[n.id()] {
		return nil, nil, nil
	}

	k, ok := classify.Classify(b.context(n))
	fn := constructor(k)
	if !ok || fn == nil {
		b.skipNode(n)
		return nil, nil, nil
	}
	return fn(b, n, k, p, depth)
}

func (b *builder) context(n *node) classify.Context {
	c := classify.Context{Class: n.class()}
	if n.parent != nil && n.parent.glyph != nil {
		c.Parent = n.parent.glyph.Class
	}
	if n.glyph != nil && n.glyph.Entity != nil {
		c.Entity = n.glyph.Entity.Name
	}
	if n.arc != nil {
		if t, ok := b.byID[n.arc.Target]; ok {
			c.Target = t.class()
		}
	}
	return c
}

func (b *builder) skipNode(n *node) {
	b.skip[n.id()] = true
	b.skipped = append(b.skipped, Skipped{ID: n.id(), Class: n.class()})
	b.log.Warn("skipping element without construction routine", "id", n.id(), "class", n.class())
}

// add registers a new pair and attaches it to p, or to the top level when p
// is nil. The pair is registered before its children are built so that
// references back to it resolve.
func (b *builder) add(me *sbgn.ModelElement, le *sbgn.LayoutElement, p *parent) error {
	if err := b.m.Model.Register(me); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidID, err, "element %q", me.ID)
	}
	if err := b.m.Layout.Register(le); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidID, err, "layout element %q", le.ID)
	}
	key := sbgn.Key{ID: me.ID}
	if p == nil {
		b.m.Model.AddRoot(me)
		b.m.Layout.AddRoot(le)
	} else {
		p.model.AddChild(me)
		p.layout.AddChild(le)
		key.Parent = p.model.ID
	}
	b.pending = append(b.pending, key)
	return nil
}

// decorate copies annotations and notes onto me.
func (b *builder) decorate(me *sbgn.ModelElement, notes *sbgnml.Notes, ext *sbgnml.Extension) {
	if b.opts.WithAnnotations && ext != nil {
		for _, a := range annotations.FromExtension(ext.Annotation) {
			me.AddAnnotation(a)
		}
	}
	if b.opts.WithNotes && notes != nil {
		me.Notes = notes.Inner
	}
}

// newNode makes the pair shared by every glyph kind.
func (b *builder) newNode(g *sbgnml.Glyph, k sbgn.Kind, fontSize float64) (*sbgn.ModelElement, *sbgn.LayoutElement) {
	me := &sbgn.ModelElement{ID: g.ID, Kind: k}
	le := sbgn.NewNode(g.ID, k, glyphBox(g))
	if g.Label != nil {
		me.Label = g.Label.Text
		le.Label = textLayout(g.Label, le.Position, fontSize)
	}
	b.decorate(me, g.Notes, g.Extension)
	return me, le
}

// children builds the glyphs nested in n under the given pair, numbering
// state variables that have no variable name.
func (b *builder) children(n *node, me *sbgn.ModelElement, le *sbgn.LayoutElement, depth int) error {
	p := &parent{node: n, model: me, layout: le}
	for _, c := range n.glyph.Glyphs {
		if _, _, err := b.build(b.byID[c.ID], p, depth+1); err != nil {
			return err
		}
		if c.Class == classify.ClassStateVariable && (c.State == nil || c.State.Variable == "") {
			p.anonymous++
		}
	}
	return nil
}

// =============================================================================
// Nodes
// =============================================================================

func (b *builder) buildCompound(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	me, le := b.newNode(n.glyph, k, sbgn.DefaultFontSize)
	if err := b.add(me, le, p); err != nil {
		return nil, nil, err
	}
	if err := b.children(n, me, le, depth); err != nil {
		return nil, nil, err
	}
	return me, le, nil
}

// buildEntity handles entity pools and activities, which may sit in a
// compartment.
func (b *builder) buildEntity(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	me, le := b.newNode(n.glyph, k, sbgn.DefaultFontSize)
	if ref := n.glyph.CompartmentRef; ref != "" {
		c, _, err := b.resolve(ref, depth)
		if err != nil {
			return nil, nil, errors.Annotate(err, "glyph %s: compartmentRef", n.id()).At(n.id())
		}
		me.Compartment = c
	}
	if err := b.add(me, le, p); err != nil {
		return nil, nil, err
	}
	if err := b.children(n, me, le, depth); err != nil {
		return nil, nil, err
	}
	return me, le, nil
}

func (b *builder) buildStateVariable(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	if p == nil {
		b.skipNode(n)
		return nil, nil, nil
	}
	g := n.glyph
	me := &sbgn.ModelElement{ID: g.ID, Kind: k}
	le := sbgn.NewNode(g.ID, k, glyphBox(g))
	var text string
	if g.State != nil {
		me.Value = g.State.Value
		me.Variable = g.State.Variable
		text = g.State.Value
		if g.State.Variable != "" {
			text += "@" + g.State.Variable
		}
	}
	if me.Variable == "" {
		order := p.anonymous
		me.Order = &order
	}
	le.Label = auxiliaryLabel(text, le.Position)
	b.decorate(me, g.Notes, g.Extension)
	if err := b.add(me, le, p); err != nil {
		return nil, nil, err
	}
	return me, le, nil
}

func (b *builder) buildUnitOfInformation(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	if p == nil {
		b.skipNode(n)
		return nil, nil, nil
	}
	g := n.glyph
	me := &sbgn.ModelElement{ID: g.ID, Kind: k}
	le := sbgn.NewNode(g.ID, k, glyphBox(g))
	if g.Label != nil {
		parts := strings.Split(g.Label.Text, ":")
		me.Value = parts[len(parts)-1]
		if len(parts) > 1 {
			me.Prefix = parts[0]
		}
		le.Label = auxiliaryLabel(g.Label.Text, le.Position)
	}
	b.decorate(me, g.Notes, g.Extension)
	if err := b.add(me, le, p); err != nil {
		return nil, nil, err
	}
	return me, le, nil
}

// buildTypedUnit handles the units of information of activity flow
// activities.
func (b *builder) buildTypedUnit(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	if p == nil {
		b.skipNode(n)
		return nil, nil, nil
	}
	me, le := b.newNode(n.glyph, k, sbgn.DefaultFontSize)
	if err := b.add(me, le, p); err != nil {
		return nil, nil, err
	}
	return me, le, nil
}

// buildReference handles tags and submap terminals.
func (b *builder) buildReference(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	me, le := b.newNode(n.glyph, k, sbgn.DefaultFontSize)
	le.Direction = orientation(n.glyph.Orientation)
	if err := b.add(me, le, p); err != nil {
		return nil, nil, err
	}
	return me, le, nil
}

func (b *builder) buildProcess(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	g := n.glyph
	consumptions, productions := b.fluxArcs(g.ID)

	me, le := b.newNode(g, k, sbgn.DefaultFontSize)
	me.Reversible = len(consumptions) == 0
	le.Direction = direction(g)
	le.LeftToRight = processLeftToRight(le.Direction, consumptions, productions)
	le.LeftConnectorLength, le.RightConnectorLength = connectorLengths(g)
	if err := b.add(me, le, p); err != nil {
		return nil, nil, err
	}

	self := &parent{node: n, model: me, layout: le}
	for _, a := range append(consumptions, productions...) {
		if _, _, err := b.build(b.byID[a.ID], self, depth+1); err != nil {
			return nil, nil, err
		}
	}
	return me, le, nil
}

func (b *builder) buildOperator(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	g := n.glyph
	inputs := b.logicArcs(n)

	me, le := b.newNode(g, k, sbgn.DefaultFontSize)
	le.Direction = direction(g)
	le.LeftToRight = operatorLeftToRight(g, le.Direction, inputs)
	le.LeftConnectorLength, le.RightConnectorLength = connectorLengths(g)
	if err := b.add(me, le, p); err != nil {
		return nil, nil, err
	}

	self := &parent{node: n, model: me, layout: le}
	for _, a := range inputs {
		if _, _, err := b.build(b.byID[a.ID], self, depth+1); err != nil {
			return nil, nil, err
		}
	}
	return me, le, nil
}

// fluxArcs returns the consumption and production arcs touching a process.
func (b *builder) fluxArcs(id string) (consumptions, productions []*sbgnml.Arc) {
	for _, a := range b.arcsOf[id] {
		switch a.Class {
		case classify.ClassConsumption:
			consumptions = append(consumptions, a)
		case classify.ClassProduction:
			productions = append(productions, a)
		}
	}
	return consumptions, productions
}

// logicArcs returns the logic arcs pointing at an operator.
func (b *builder) logicArcs(op *node) []*sbgnml.Arc {
	var out []*sbgnml.Arc
	for _, a := range b.arcsOf[op.id()] {
		if a.Class == classify.ClassLogicArc && b.byID[a.Target] == op {
			out = append(out, a)
		}
	}
	return out
}

// =============================================================================
// Arcs
// =============================================================================

// buildParticipant makes the reactant, product or operator input drawn by a
// flux or logic arc. Participants belong to their process or operator; when
// reached on their own the owner is built first, which builds them in turn.
func (b *builder) buildParticipant(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	a := n.arc
	if p == nil {
		owner := a.Target
		if k == sbgn.KindProduction {
			owner = a.Source
		}
		if _, _, err := b.resolve(owner, depth); err != nil {
			return nil, nil, err
		}
		if me, le, ok := b.built(a.ID); ok {
			return me, le, nil
		}
		b.skipNode(n)
		return nil, nil, nil
	}

	me := &sbgn.ModelElement{ID: a.ID}
	le := &sbgn.LayoutElement{ID: a.ID, Kind: k}
	points := arcPoints(a)

	// Participant arcs are drawn from the process or operator towards the
	// element, so consumptions and logic arcs are reversed.
	role := a.Source
	switch k {
	case sbgn.KindConsumption:
		me.Kind = sbgn.KindReactant
		points = geometry.Reverse(points)
	case sbgn.KindProduction:
		me.Kind = productionKind(p, a)
		role = a.Target
	case sbgn.KindLogicArc:
		me.Kind = sbgn.KindLogicalOperatorInput
		points = geometry.Reverse(points)
	default:
		me.Kind = sbgn.KindEquivalenceOperatorInput
		points = geometry.Reverse(points)
	}

	rme, rle, err := b.resolve(role, depth)
	if err != nil {
		return nil, nil, errors.Annotate(err, "arc %s", a.ID).At(a.ID)
	}
	me.Element = rme
	le.Target = rle
	le.Segments = geometry.Polyline(points)
	b.decorate(me, a.Notes, a.Extension)

	if err := b.add(me, le, p); err != nil {
		return nil, nil, err
	}
	return me, le, nil
}

// productionKind is Product, except on reversible processes where the side
// of the process the arc leaves from decides.
func productionKind(p *parent, a *sbgnml.Arc) sbgn.Kind {
	if !p.model.Reversible || a.Start == nil || p.node.glyph == nil || p.node.glyph.Bbox == nil {
		return sbgn.KindProduct
	}
	box := p.node.glyph.Bbox
	if p.layout.Direction == sbgn.DirectionHorizontal {
		if a.Start.X > box.X {
			return sbgn.KindProduct
		}
		return sbgn.KindReactant
	}
	if a.Start.Y > box.Y {
		return sbgn.KindProduct
	}
	return sbgn.KindReactant
}

// buildModulation handles modulations and activity flow influences.
func (b *builder) buildModulation(n *node, k sbgn.Kind, p *parent, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	a := n.arc
	sme, sle, err := b.resolve(a.Source, depth)
	if err != nil {
		return nil, nil, errors.Annotate(err, "arc %s: source", a.ID).At(a.ID)
	}
	tme, tle, err := b.resolve(a.Target, depth)
	if err != nil {
		return nil, nil, errors.Annotate(err, "arc %s: target", a.ID).At(a.ID)
	}

	me := &sbgn.ModelElement{ID: a.ID, Kind: k, Source: sme, Target: tme}
	le := &sbgn.LayoutElement{
		ID:       a.ID,
		Kind:     k,
		Source:   sle,
		Target:   tle,
		Segments: geometry.Polyline(arcPoints(a)),
	}
	b.decorate(me, a.Notes, a.Extension)
	if err := b.add(me, le, nil); err != nil {
		return nil, nil, err
	}
	return me, le, nil
}
