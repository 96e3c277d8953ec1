package sbgn

import "slices"

// Key identifies a model element in the mapping together with the model
// element that structurally owns it. Parent is empty for top-level elements.
type Key struct {
	ID     string
	Parent string
}

// Mapping relates model elements to their layout counterparts.
type Mapping struct {
	toLayout map[Key]string
	toModel  map[string]Key
	order    []Key
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{
		toLayout: make(map[Key]string),
		toModel:  make(map[string]Key),
	}
}

// Add records k -> layoutID. It reports false and leaves the mapping
// unchanged when k is already present.
func (m *Mapping) Add(k Key, layoutID string) bool {
	if _, ok := m.toLayout[k]; ok {
		return false
	}
	m.toLayout[k] = layoutID
	m.toModel[layoutID] = k
	m.order = append(m.order, k)
	return true
}

// Layout returns the layout id mapped from k.
func (m *Mapping) Layout(k Key) (string, bool) {
	id, ok := m.toLayout[k]
	return id, ok
}

// Model returns the key mapped to the given layout id.
func (m *Mapping) Model(layoutID string) (Key, bool) {
	k, ok := m.toModel[layoutID]
	return k, ok
}

// Keys returns every key in insertion order.
func (m *Mapping) Keys() []Key { return slices.Clone(m.order) }

// Len returns the number of entries.
func (m *Mapping) Len() int { return len(m.order) }
