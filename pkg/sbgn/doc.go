// Package sbgn holds the in-memory representation of an SBGN map.
//
// A [Map] pairs a semantic [Model] with a visual [Layout]. The two sides are
// separate trees of [ModelElement] and [LayoutElement] values that share ids,
// and a [Mapping] records which layout element draws which model element,
// keyed by the element id and the id of the model element that owns it.
//
// # Kinds
//
// Every element carries a [Kind] from one closed enumeration. Most kinds
// appear on both sides. Process participants differ: a consumption arc in
// the layout draws a [KindReactant] in the model, and a production arc draws
// a [KindProduct] unless the process is reversible.
//
// # Arenas
//
// Both [Model] and [Layout] index every element by id, nested or not, so
// references between elements (an arc's source, an entity's compartment)
// are plain pointers into the same arena and can be resolved without walking
// the trees.
//
//	m := sbgn.New(sbgn.LanguageProcessDescription)
//	e := &sbgn.ModelElement{ID: "glyph1", Kind: sbgn.KindMacromolecule, Label: "A"}
//	if err := m.Model.Register(e); err != nil {
//	    return err
//	}
//	m.Model.AddRoot(e)
package sbgn
