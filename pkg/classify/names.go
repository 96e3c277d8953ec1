package classify

import "github.com/matzehuels/sbgnconv/pkg/sbgn"

var classNames = buildClassNames()

func buildClassNames() map[sbgn.Kind]string {
	names := make(map[sbgn.Kind]string, len(glyphs)+len(arcs)+len(subunits)+8)
	for class, k := range glyphs {
		names[k] = class
	}
	for class, k := range arcs {
		names[k] = class
	}
	for base, sub := range subunits {
		names[sub] = names[base]
	}
	for _, k := range activityUnits {
		names[k] = ClassUnitOfInformation
	}
	names[sbgn.KindTerminal] = ClassTerminal
	names[sbgn.KindLogicArc] = ClassLogicArc
	names[sbgn.KindEquivalenceArc] = ClassLogicArc
	return names
}

var entityNames = func() map[sbgn.Kind]string {
	names := make(map[sbgn.Kind]string, len(activityUnits))
	for name, k := range activityUnits {
		names[k] = name
	}
	return names
}()

// ClassName returns the wire-format class written for a layout kind. It
// reports false for kinds that have no glyph or arc of their own.
func ClassName(k sbgn.Kind) (string, bool) {
	name, ok := classNames[k]
	return name, ok
}

// EntityName returns the entity name of an activity flow unit of
// information kind.
func EntityName(k sbgn.Kind) (string, bool) {
	name, ok := entityNames[k]
	return name, ok
}
