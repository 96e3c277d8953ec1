package sbgn

// Qualifier is a BioModels.net relation between an element and an external
// resource. Biology qualifiers describe the biological entity, model
// qualifiers describe the map itself.
type Qualifier int

const (
	QualifierUnknown Qualifier = iota

	BQBiolEncodes
	BQBiolHasPart
	BQBiolHasProperty
	BQBiolHasVersion
	BQBiolIs
	BQBiolIsDescribedBy
	BQBiolIsEncodedBy
	BQBiolIsHomologTo
	BQBiolIsPartOf
	BQBiolIsPropertyOf
	BQBiolIsVersionOf
	BQBiolOccursIn
	BQBiolHasTaxon

	BQModelHasInstance
	BQModelIs
	BQModelIsDerivedFrom
	BQModelIsDescribedBy
	BQModelIsInstanceOf

	qualifierCount
)

var qualifierNames = [qualifierCount]string{
	QualifierUnknown:     "unknown",
	BQBiolEncodes:        "bqbiol:encodes",
	BQBiolHasPart:        "bqbiol:hasPart",
	BQBiolHasProperty:    "bqbiol:hasProperty",
	BQBiolHasVersion:     "bqbiol:hasVersion",
	BQBiolIs:             "bqbiol:is",
	BQBiolIsDescribedBy:  "bqbiol:isDescribedBy",
	BQBiolIsEncodedBy:    "bqbiol:isEncodedBy",
	BQBiolIsHomologTo:    "bqbiol:isHomologTo",
	BQBiolIsPartOf:       "bqbiol:isPartOf",
	BQBiolIsPropertyOf:   "bqbiol:isPropertyOf",
	BQBiolIsVersionOf:    "bqbiol:isVersionOf",
	BQBiolOccursIn:       "bqbiol:occursIn",
	BQBiolHasTaxon:       "bqbiol:hasTaxon",
	BQModelHasInstance:   "bqmodel:hasInstance",
	BQModelIs:            "bqmodel:is",
	BQModelIsDerivedFrom: "bqmodel:isDerivedFrom",
	BQModelIsDescribedBy: "bqmodel:isDescribedBy",
	BQModelIsInstanceOf:  "bqmodel:isInstanceOf",
}

// String returns the prefixed element name, e.g. "bqbiol:isVersionOf".
func (q Qualifier) String() string {
	if q < 0 || q >= qualifierCount {
		return "unknown"
	}
	return qualifierNames[q]
}

// IsBiology reports whether q belongs to the biology qualifier vocabulary.
func (q Qualifier) IsBiology() bool { return q >= BQBiolEncodes && q <= BQBiolHasTaxon }

// IsModel reports whether q belongs to the model qualifier vocabulary.
func (q Qualifier) IsModel() bool { return q >= BQModelHasInstance && q <= BQModelIsInstanceOf }

// Qualifiers returns every known qualifier in declaration order.
func Qualifiers() []Qualifier {
	out := make([]Qualifier, 0, qualifierCount-1)
	for q := QualifierUnknown + 1; q < qualifierCount; q++ {
		out = append(out, q)
	}
	return out
}

// Annotation links an element to an external resource, usually an
// identifiers.org URI.
type Annotation struct {
	Qualifier Qualifier
	Resource  string
}
