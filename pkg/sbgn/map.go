package sbgn

// Map is a complete diagram: a semantic model, its layout and the mapping
// between them.
type Map struct {
	ID       string
	Language Language
	Model    *Model
	Layout   *Layout
	Mapping  *Mapping
	// Notes is a serialized XHTML fragment.
	Notes string
}

// New returns an empty map in the given language.
func New(lang Language) *Map {
	return &Map{
		Language: lang,
		Model:    NewModel(),
		Layout:   NewLayout(),
		Mapping:  NewMapping(),
	}
}

// ModelOf returns the model element paired with a layout element.
func (m *Map) ModelOf(e *LayoutElement) (*ModelElement, bool) {
	k, ok := m.Mapping.Model(e.ID)
	if !ok {
		return nil, false
	}
	return m.Model.Get(k.ID)
}
