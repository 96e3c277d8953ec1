// Package classify maps wire-format classes to element kinds.
//
// Classification is a pure lookup: the class of a glyph or arc, together with
// the class of its enclosing glyph, the entity name of a unit of information
// and the class of an arc target, selects exactly one [sbgn.Kind]. Arc kinds
// are layout kinds; the model side of participant arcs is decided by the
// reader, which knows the process they attach to.
package classify

import "github.com/matzehuels/sbgnconv/pkg/sbgn"

// Context is everything a classification may depend on. Parent and Target
// are wire-format classes; Parent is empty at the top level.
type Context struct {
	Class  string
	Parent string
	Entity string
	Target string
}

// Wire-format classes referenced by the rules below.
const (
	ClassComplex            = "complex"
	ClassComplexMultimer    = "complex multimer"
	ClassSubmap             = "submap"
	ClassTag                = "tag"
	ClassTerminal           = "terminal"
	ClassUnitOfInformation  = "unit of information"
	ClassStateVariable      = "state variable"
	ClassBiologicalActivity = "biological activity"
	ClassCompartment        = "compartment"
	ClassLogicArc           = "logic arc"
	ClassConsumption        = "consumption"
	ClassProduction         = "production"
)

var glyphs = map[string]sbgn.Kind{
	"unspecified entity":            sbgn.KindUnspecifiedEntity,
	"macromolecule":                 sbgn.KindMacromolecule,
	"macromolecule multimer":        sbgn.KindMacromoleculeMultimer,
	"simple chemical":               sbgn.KindSimpleChemical,
	"simple chemical multimer":      sbgn.KindSimpleChemicalMultimer,
	"nucleic acid feature":          sbgn.KindNucleicAcidFeature,
	"nucleic acid feature multimer": sbgn.KindNucleicAcidFeatureMultimer,
	ClassComplex:                    sbgn.KindComplex,
	ClassComplexMultimer:            sbgn.KindComplexMultimer,
	"source and sink":               sbgn.KindEmptySet,
	"perturbing agent":              sbgn.KindPerturbingAgent,
	ClassCompartment:                sbgn.KindCompartment,
	ClassSubmap:                     sbgn.KindSubmap,
	ClassTag:                        sbgn.KindTag,
	ClassStateVariable:              sbgn.KindStateVariable,
	ClassUnitOfInformation:          sbgn.KindUnitOfInformation,
	ClassBiologicalActivity:         sbgn.KindBiologicalActivity,
	"phenotype":                     sbgn.KindPhenotype,
	"process":                       sbgn.KindGenericProcess,
	"omitted process":               sbgn.KindOmittedProcess,
	"uncertain process":             sbgn.KindUncertainProcess,
	"association":                   sbgn.KindAssociation,
	"dissociation":                  sbgn.KindDissociation,
	"and":                           sbgn.KindAndOperator,
	"or":                            sbgn.KindOrOperator,
	"not":                           sbgn.KindNotOperator,
	"delay":                         sbgn.KindDelayOperator,
	"equivalence":                   sbgn.KindEquivalenceOperator,
}

var arcs = map[string]sbgn.Kind{
	ClassConsumption:        sbgn.KindConsumption,
	ClassProduction:         sbgn.KindProduction,
	"modulation":            sbgn.KindModulation,
	"stimulation":           sbgn.KindStimulation,
	"catalysis":             sbgn.KindCatalysis,
	"necessary stimulation": sbgn.KindNecessaryStimulation,
	"inhibition":            sbgn.KindInhibition,
	"positive influence":    sbgn.KindPositiveInfluence,
	"negative influence":    sbgn.KindNegativeInfluence,
	"unknown influence":     sbgn.KindUnknownInfluence,
}

// subunits maps an entity pool to the kind it takes inside a complex.
var subunits = map[sbgn.Kind]sbgn.Kind{
	sbgn.KindUnspecifiedEntity:          sbgn.KindUnspecifiedEntitySubunit,
	sbgn.KindMacromolecule:              sbgn.KindMacromoleculeSubunit,
	sbgn.KindMacromoleculeMultimer:      sbgn.KindMacromoleculeMultimerSubunit,
	sbgn.KindSimpleChemical:             sbgn.KindSimpleChemicalSubunit,
	sbgn.KindSimpleChemicalMultimer:     sbgn.KindSimpleChemicalMultimerSubunit,
	sbgn.KindNucleicAcidFeature:         sbgn.KindNucleicAcidFeatureSubunit,
	sbgn.KindNucleicAcidFeatureMultimer: sbgn.KindNucleicAcidFeatureMultimerSubunit,
	sbgn.KindComplex:                    sbgn.KindComplexSubunit,
	sbgn.KindComplexMultimer:            sbgn.KindComplexMultimerSubunit,
}

// activityUnits types a unit of information on a biological activity by its
// entity name.
var activityUnits = map[string]sbgn.Kind{
	"unspecified entity":   sbgn.KindUnspecifiedEntityUnitOfInformation,
	"macromolecule":        sbgn.KindMacromoleculeUnitOfInformation,
	"simple chemical":      sbgn.KindSimpleChemicalUnitOfInformation,
	"nucleic acid feature": sbgn.KindNucleicAcidFeatureUnitOfInformation,
	"complex":              sbgn.KindComplexUnitOfInformation,
	"perturbation":         sbgn.KindPerturbationUnitOfInformation,
}

// logicalTargets are the operator classes whose logic arcs are logical
// operator inputs. Logic arcs into anything else are equivalence inputs.
var logicalTargets = map[string]bool{
	"and":   true,
	"or":    true,
	"not":   true,
	"delay": true,
}

type parented struct {
	class, parent string
}

// nested holds the rules that depend on the enclosing glyph.
var nested = buildNested()

func buildNested() map[parented]sbgn.Kind {
	m := map[parented]sbgn.Kind{
		{ClassTag, ClassSubmap}:      sbgn.KindTerminal,
		{ClassTerminal, ClassSubmap}: sbgn.KindTerminal,
	}
	for class, k := range glyphs {
		sub, ok := subunits[k]
		if !ok {
			continue
		}
		m[parented{class, ClassComplex}] = sub
		m[parented{class, ClassComplexMultimer}] = sub
	}
	return m
}

// Classify returns the kind of the element described by c. It reports false
// when no rule matches; callers skip such elements.
func Classify(c Context) (sbgn.Kind, bool) {
	if c.Class == ClassUnitOfInformation && c.Parent == ClassBiologicalActivity {
		k, ok := activityUnits[c.Entity]
		return k, ok
	}
	if k, ok := nested[parented{c.Class, c.Parent}]; ok {
		return k, true
	}
	if c.Class == ClassLogicArc {
		if logicalTargets[c.Target] {
			return sbgn.KindLogicArc, true
		}
		return sbgn.KindEquivalenceArc, true
	}
	if k, ok := glyphs[c.Class]; ok {
		return k, true
	}
	if k, ok := arcs[c.Class]; ok {
		return k, true
	}
	return sbgn.KindUnknown, false
}

// IsArcClass reports whether class names an arc the reader can build.
func IsArcClass(class string) bool {
	_, ok := arcs[class]
	return ok || class == ClassLogicArc
}
