package sbgn

// Language is the sub-language a map is drawn in. The values match the
// language attribute of the wire format.
type Language string

const (
	LanguageProcessDescription Language = "process description"
	LanguageActivityFlow       Language = "activity flow"
	LanguageEntityRelationship Language = "entity relationship"
)

// Kind is the closed set of element variants a map can hold. Model and layout
// elements share the enumeration; the few variants that only exist on one
// side (reactants and products in the model, consumption and production arcs
// in the layout) are documented below.
type Kind int

const (
	KindUnknown Kind = iota

	// Containers
	KindCompartment
	KindSubmap

	// Entity pools
	KindUnspecifiedEntity
	KindMacromolecule
	KindMacromoleculeMultimer
	KindSimpleChemical
	KindSimpleChemicalMultimer
	KindNucleicAcidFeature
	KindNucleicAcidFeatureMultimer
	KindComplex
	KindComplexMultimer
	KindEmptySet
	KindPerturbingAgent

	// Subunits nested in a complex
	KindUnspecifiedEntitySubunit
	KindMacromoleculeSubunit
	KindMacromoleculeMultimerSubunit
	KindSimpleChemicalSubunit
	KindSimpleChemicalMultimerSubunit
	KindNucleicAcidFeatureSubunit
	KindNucleicAcidFeatureMultimerSubunit
	KindComplexSubunit
	KindComplexMultimerSubunit

	// Auxiliary units
	KindStateVariable
	KindUnitOfInformation

	// Activity flow nodes
	KindBiologicalActivity
	KindUnspecifiedEntityUnitOfInformation
	KindMacromoleculeUnitOfInformation
	KindSimpleChemicalUnitOfInformation
	KindNucleicAcidFeatureUnitOfInformation
	KindComplexUnitOfInformation
	KindPerturbationUnitOfInformation
	KindPhenotype

	// Reference nodes
	KindTag
	KindTerminal

	// Processes
	KindGenericProcess
	KindOmittedProcess
	KindUncertainProcess
	KindAssociation
	KindDissociation

	// Operators
	KindAndOperator
	KindOrOperator
	KindNotOperator
	KindDelayOperator
	KindEquivalenceOperator

	// Model-only participants of processes and operators
	KindReactant
	KindProduct
	KindLogicalOperatorInput
	KindEquivalenceOperatorInput

	// Layout-only arcs drawn for the participants above
	KindConsumption
	KindProduction
	KindLogicArc
	KindEquivalenceArc

	// Modulations and influences, same kind on both sides
	KindModulation
	KindStimulation
	KindCatalysis
	KindNecessaryStimulation
	KindInhibition
	KindPositiveInfluence
	KindNegativeInfluence
	KindUnknownInfluence

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:                             "unknown",
	KindCompartment:                         "compartment",
	KindSubmap:                              "submap",
	KindUnspecifiedEntity:                   "unspecified entity",
	KindMacromolecule:                       "macromolecule",
	KindMacromoleculeMultimer:               "macromolecule multimer",
	KindSimpleChemical:                      "simple chemical",
	KindSimpleChemicalMultimer:              "simple chemical multimer",
	KindNucleicAcidFeature:                  "nucleic acid feature",
	KindNucleicAcidFeatureMultimer:          "nucleic acid feature multimer",
	KindComplex:                             "complex",
	KindComplexMultimer:                     "complex multimer",
	KindEmptySet:                            "empty set",
	KindPerturbingAgent:                     "perturbing agent",
	KindUnspecifiedEntitySubunit:            "unspecified entity subunit",
	KindMacromoleculeSubunit:                "macromolecule subunit",
	KindMacromoleculeMultimerSubunit:        "macromolecule multimer subunit",
	KindSimpleChemicalSubunit:               "simple chemical subunit",
	KindSimpleChemicalMultimerSubunit:       "simple chemical multimer subunit",
	KindNucleicAcidFeatureSubunit:           "nucleic acid feature subunit",
	KindNucleicAcidFeatureMultimerSubunit:   "nucleic acid feature multimer subunit",
	KindComplexSubunit:                      "complex subunit",
	KindComplexMultimerSubunit:              "complex multimer subunit",
	KindStateVariable:                       "state variable",
	KindUnitOfInformation:                   "unit of information",
	KindBiologicalActivity:                  "biological activity",
	KindUnspecifiedEntityUnitOfInformation:  "unspecified entity unit of information",
	KindMacromoleculeUnitOfInformation:      "macromolecule unit of information",
	KindSimpleChemicalUnitOfInformation:     "simple chemical unit of information",
	KindNucleicAcidFeatureUnitOfInformation: "nucleic acid feature unit of information",
	KindComplexUnitOfInformation:            "complex unit of information",
	KindPerturbationUnitOfInformation:       "perturbation unit of information",
	KindPhenotype:                           "phenotype",
	KindTag:                                 "tag",
	KindTerminal:                            "terminal",
	KindGenericProcess:                      "generic process",
	KindOmittedProcess:                      "omitted process",
	KindUncertainProcess:                    "uncertain process",
	KindAssociation:                         "association",
	KindDissociation:                        "dissociation",
	KindAndOperator:                         "and operator",
	KindOrOperator:                          "or operator",
	KindNotOperator:                         "not operator",
	KindDelayOperator:                       "delay operator",
	KindEquivalenceOperator:                 "equivalence operator",
	KindReactant:                            "reactant",
	KindProduct:                             "product",
	KindLogicalOperatorInput:                "logical operator input",
	KindEquivalenceOperatorInput:            "equivalence operator input",
	KindConsumption:                         "consumption",
	KindProduction:                          "production",
	KindLogicArc:                            "logic arc",
	KindEquivalenceArc:                      "equivalence arc",
	KindModulation:                          "modulation",
	KindStimulation:                         "stimulation",
	KindCatalysis:                           "catalysis",
	KindNecessaryStimulation:                "necessary stimulation",
	KindInhibition:                          "inhibition",
	KindPositiveInfluence:                   "positive influence",
	KindNegativeInfluence:                   "negative influence",
	KindUnknownInfluence:                    "unknown influence",
}

// String returns a lower-case human readable name.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every known kind except [KindUnknown], in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindUnknown + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

// IsEntityPool reports whether k is a top-level entity pool.
func (k Kind) IsEntityPool() bool {
	return k >= KindUnspecifiedEntity && k <= KindPerturbingAgent
}

// IsSubunit reports whether k is an entity nested in a complex.
func (k Kind) IsSubunit() bool {
	return k >= KindUnspecifiedEntitySubunit && k <= KindComplexMultimerSubunit
}

// IsAuxiliaryUnit reports whether k decorates another node: state variables
// and all flavours of unit of information.
func (k Kind) IsAuxiliaryUnit() bool {
	switch k {
	case KindStateVariable, KindUnitOfInformation:
		return true
	}
	return k >= KindUnspecifiedEntityUnitOfInformation && k <= KindPerturbationUnitOfInformation
}

// IsProcess reports whether k is a process node with two connectors.
func (k Kind) IsProcess() bool {
	return k >= KindGenericProcess && k <= KindDissociation
}

// IsOperator reports whether k is a logical or equivalence operator.
func (k Kind) IsOperator() bool {
	return k >= KindAndOperator && k <= KindEquivalenceOperator
}

// IsModulation reports whether k is a modulation or influence arc.
func (k Kind) IsModulation() bool {
	return k >= KindModulation && k <= KindUnknownInfluence
}

// IsArc reports whether elements of kind k are drawn as arcs.
func (k Kind) IsArc() bool {
	return (k >= KindConsumption && k <= KindEquivalenceArc) || k.IsModulation()
}

// IsParticipant reports whether k is a model-side participant of a process
// or operator.
func (k Kind) IsParticipant() bool {
	return k >= KindReactant && k <= KindEquivalenceOperatorInput
}

// HasConnectors reports whether nodes of kind k are drawn with a left and a
// right connector that arcs attach to.
func (k Kind) HasConnectors() bool {
	return k.IsProcess() || k.IsOperator()
}
