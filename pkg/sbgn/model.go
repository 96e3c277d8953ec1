package sbgn

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidID is returned by [Model.Register] and [Layout.Register] when
	// the element id is empty. Ids are copied from the document and never
	// synthesized, so an empty id cannot be referenced.
	ErrInvalidID = errors.New("element ID must not be empty")

	// ErrDuplicateID is returned by [Model.Register] and [Layout.Register]
	// when an element with the same id already exists.
	ErrDuplicateID = errors.New("duplicate element ID")
)

// ModelElement is the semantic side of one diagram component.
//
// Which fields are meaningful depends on Kind: Value, Variable and Order for
// state variables, Prefix and Value for units of information, Element for
// reactants, products and operator inputs, Source and Target for modulations,
// Reversible for processes.
type ModelElement struct {
	ID    string
	Kind  Kind
	Label string

	Value    string
	Variable string
	Prefix   string
	// Order is the 0-based position of a state variable among the siblings
	// that have no variable name. Nil when the variable is named.
	Order *int

	Compartment *ModelElement
	Element     *ModelElement
	Source      *ModelElement
	Target      *ModelElement
	Reversible  bool

	// Children are the owned sub-elements in document order: auxiliary
	// units, subunits, terminals, reactants, products and operator inputs.
	Children []*ModelElement

	Annotations []Annotation
	Notes       string
}

// AddChild appends c to the owned sub-elements.
func (e *ModelElement) AddChild(c *ModelElement) {
	e.Children = append(e.Children, c)
}

// AddAnnotation records a, ignoring exact duplicates.
func (e *ModelElement) AddAnnotation(a Annotation) {
	if !slices.Contains(e.Annotations, a) {
		e.Annotations = append(e.Annotations, a)
	}
}

// ChildrenOf returns the owned sub-elements whose kind satisfies keep.
func (e *ModelElement) ChildrenOf(keep func(Kind) bool) []*ModelElement {
	var out []*ModelElement
	for _, c := range e.Children {
		if keep(c.Kind) {
			out = append(out, c)
		}
	}
	return out
}

// StateVariables returns the owned state variables.
func (e *ModelElement) StateVariables() []*ModelElement {
	return e.ChildrenOf(func(k Kind) bool { return k == KindStateVariable })
}

// Reactants returns the owned reactants of a process.
func (e *ModelElement) Reactants() []*ModelElement {
	return e.ChildrenOf(func(k Kind) bool { return k == KindReactant })
}

// Products returns the owned products of a process.
func (e *ModelElement) Products() []*ModelElement {
	return e.ChildrenOf(func(k Kind) bool { return k == KindProduct })
}

// Inputs returns the owned inputs of an operator.
func (e *ModelElement) Inputs() []*ModelElement {
	return e.ChildrenOf(func(k Kind) bool {
		return k == KindLogicalOperatorInput || k == KindEquivalenceOperatorInput
	})
}

// Model is the semantic graph of a map. Every element, nested or not, is
// indexed by id; top-level elements are also kept in insertion order.
type Model struct {
	Annotations []Annotation

	index map[string]*ModelElement
	order []string
	roots []*ModelElement
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{index: make(map[string]*ModelElement)}
}

// Register indexes e by id without attaching it anywhere.
func (m *Model) Register(e *ModelElement) error {
	if e.ID == "" {
		return ErrInvalidID
	}
	if _, ok := m.index[e.ID]; ok {
		return ErrDuplicateID
	}
	m.index[e.ID] = e
	m.order = append(m.order, e.ID)
	return nil
}

// AddRoot marks a registered element as top-level.
func (m *Model) AddRoot(e *ModelElement) {
	m.roots = append(m.roots, e)
}

// Get returns the element with the given id.
func (m *Model) Get(id string) (*ModelElement, bool) {
	e, ok := m.index[id]
	return e, ok
}

// Roots returns the top-level elements in insertion order.
func (m *Model) Roots() []*ModelElement { return m.roots }

// IDs returns every registered id in registration order.
func (m *Model) IDs() []string { return slices.Clone(m.order) }

// Len returns the number of registered elements.
func (m *Model) Len() int { return len(m.index) }

// AddAnnotation records a map-level annotation, ignoring exact duplicates.
func (m *Model) AddAnnotation(a Annotation) {
	if !slices.Contains(m.Annotations, a) {
		m.Annotations = append(m.Annotations, a)
	}
}

// CountByKind tallies registered elements per kind.
func (m *Model) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, e := range m.index {
		counts[e.Kind]++
	}
	return counts
}
