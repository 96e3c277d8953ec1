package reader

import (
	"github.com/charmbracelet/log"

	"github.com/matzehuels/sbgnconv/pkg/errors"
	"github.com/matzehuels/sbgnconv/pkg/sbgn"
	"github.com/matzehuels/sbgnconv/pkg/sbgnml"
)

// node is one glyph or arc of the document together with the glyph or arc
// that encloses it.
type node struct {
	glyph  *sbgnml.Glyph
	arc    *sbgnml.Arc
	parent *node
}

func (n *node) id() string {
	if n.arc != nil {
		return n.arc.ID
	}
	return n.glyph.ID
}

func (n *node) class() string {
	if n.arc != nil {
		return n.arc.Class
	}
	return n.glyph.Class
}

// builder holds the per-read tables. It is not safe for concurrent use.
type builder struct {
	m    *sbgn.Map
	opts Options
	log  *log.Logger

	// byID maps glyph, arc and port ids to their node. Port ids map to the
	// glyph or arc owning the port.
	byID map[string]*node
	// arcsOf lists, per glyph id, the arcs having it as source or target.
	arcsOf map[string][]*sbgnml.Arc

	pending []sbgn.Key
	skipped []Skipped
	skip    map[string]bool
}

func newBuilder(m *sbgn.Map, opts Options) *builder {
	return &builder{
		m:      m,
		opts:   opts,
		log:    opts.logger(),
		byID:   make(map[string]*node),
		arcsOf: make(map[string][]*sbgnml.Arc),
		skip:   make(map[string]bool),
	}
}

func (b *builder) index(sm *sbgnml.Map) error {
	var addGlyph func(g *sbgnml.Glyph, parent *node, depth int) error
	addGlyph = func(g *sbgnml.Glyph, parent *node, depth int) error {
		if depth > b.opts.maxDepth() {
			return errors.New(errors.ErrCodeTooDeep, "glyph %s nested deeper than %d", g.ID, b.opts.maxDepth()).At(g.ID)
		}
		n := &node{glyph: g, parent: parent}
		if err := b.addID(g.ID, n); err != nil {
			return err
		}
		for _, p := range g.Ports {
			if err := b.addID(p.ID, n); err != nil {
				return err
			}
		}
		for _, c := range g.Glyphs {
			if err := addGlyph(c, n, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	for _, g := range sm.Glyphs {
		if err := addGlyph(g, nil, 0); err != nil {
			return err
		}
	}
	for _, a := range sm.Arcs {
		n := &node{arc: a}
		if err := b.addID(a.ID, n); err != nil {
			return err
		}
		for _, p := range a.Ports {
			if err := b.addID(p.ID, n); err != nil {
				return err
			}
		}
		for _, g := range a.Glyphs {
			if err := addGlyph(g, n, 1); err != nil {
				return err
			}
		}
	}

	for _, a := range sm.Arcs {
		src, ok := b.byID[a.Source]
		if !ok {
			return errors.New(errors.ErrCodeUnresolvedReference, "arc %s: unknown source %q", a.ID, a.Source).At(a.ID)
		}
		tgt, ok := b.byID[a.Target]
		if !ok {
			return errors.New(errors.ErrCodeUnresolvedReference, "arc %s: unknown target %q", a.ID, a.Target).At(a.ID)
		}
		b.arcsOf[src.id()] = append(b.arcsOf[src.id()], a)
		if tgt.id() != src.id() {
			b.arcsOf[tgt.id()] = append(b.arcsOf[tgt.id()], a)
		}
	}
	return nil
}

func (b *builder) addID(id string, n *node) error {
	if err := errors.ValidateID(id); err != nil {
		return errors.Annotate(err, "%s", n.class()).At(id)
	}
	if _, ok := b.byID[id]; ok {
		return errors.New(errors.ErrCodeInvalidID, "duplicate id %q", id).At(id)
	}
	b.byID[id] = n
	return nil
}

// lookup returns the element with id, or the owner of the port with id.
func (b *builder) lookup(id string) (*node, error) {
	n, ok := b.byID[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnresolvedReference, "unknown element %q", id)
	}
	return n, nil
}

// built returns the pair already made for id, if any.
func (b *builder) built(id string) (*sbgn.ModelElement, *sbgn.LayoutElement, bool) {
	me, ok := b.m.Model.Get(id)
	if !ok {
		return nil, nil, false
	}
	le, ok := b.m.Layout.Get(id)
	return me, le, ok
}

// resolve returns the pair for id, building it first when needed. A nested
// element is built through its topmost enclosing element so that it gets
// the same parent it would have had in document order. Calling resolve twice
// never builds twice.
func (b *builder) resolve(id string, depth int) (*sbgn.ModelElement, *sbgn.LayoutElement, error) {
	n, err := b.lookup(id)
	if err != nil {
		return nil, nil, err
	}
	if me, le, ok := b.built(n.id()); ok {
		return me, le, nil
	}
	top := n
	for top.parent != nil {
		top = top.parent
	}
	if _, _, err := b.build(top, nil, depth+1); err != nil {
		return nil, nil, err
	}
	if me, le, ok := b.built(n.id()); ok {
		return me, le, nil
	}
	return nil, nil, errors.New(errors.ErrCodeUnresolvedReference,
		"element %q of class %q is referenced but could not be built", n.id(), n.class()).At(n.id())
}

// fillMapping turns the pending (id, parent id) pairs into mapping entries.
func (b *builder) fillMapping() error {
	for _, k := range b.pending {
		if _, _, ok := b.built(k.ID); !ok {
			return errors.New(errors.ErrCodeUnresolvedReference, "mapping: no element %q", k.ID)
		}
		if k.Parent != "" {
			if _, ok := b.m.Model.Get(k.Parent); !ok {
				return errors.New(errors.ErrCodeUnresolvedReference, "mapping: no parent %q of %q", k.Parent, k.ID)
			}
		}
		if !b.m.Mapping.Add(k, k.ID) {
			return errors.New(errors.ErrCodeInternal, "mapping: %q recorded twice", k.ID)
		}
	}
	return nil
}
