package classify

import (
	"testing"

	"github.com/matzehuels/sbgnconv/pkg/sbgn"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		ctx    Context
		want   sbgn.Kind
		wantOK bool
	}{
		{"Macromolecule", Context{Class: "macromolecule"}, sbgn.KindMacromolecule, true},
		{"SourceAndSink", Context{Class: "source and sink"}, sbgn.KindEmptySet, true},
		{"Process", Context{Class: "process"}, sbgn.KindGenericProcess, true},
		{"SubunitInComplex", Context{Class: "macromolecule", Parent: "complex"}, sbgn.KindMacromoleculeSubunit, true},
		{"SubunitInMultimer", Context{Class: "simple chemical", Parent: "complex multimer"}, sbgn.KindSimpleChemicalSubunit, true},
		{"NestedComplex", Context{Class: "complex", Parent: "complex"}, sbgn.KindComplexSubunit, true},
		{"MacromoleculeInCompartment", Context{Class: "macromolecule", Parent: "compartment"}, sbgn.KindMacromolecule, true},
		{"TagInSubmap", Context{Class: "tag", Parent: "submap"}, sbgn.KindTerminal, true},
		{"TopLevelTag", Context{Class: "tag"}, sbgn.KindTag, true},
		{"PDUnitOfInformation", Context{Class: "unit of information", Parent: "macromolecule"}, sbgn.KindUnitOfInformation, true},
		{"AFUnitOfInformation", Context{Class: "unit of information", Parent: "biological activity", Entity: "perturbation"}, sbgn.KindPerturbationUnitOfInformation, true},
		{"AFUnitWithoutEntity", Context{Class: "unit of information", Parent: "biological activity"}, sbgn.KindUnknown, false},
		{"AFUnitUnknownEntity", Context{Class: "unit of information", Parent: "biological activity", Entity: "gene"}, sbgn.KindUnknown, false},
		{"LogicArcToAnd", Context{Class: "logic arc", Target: "and"}, sbgn.KindLogicArc, true},
		{"LogicArcToDelay", Context{Class: "logic arc", Target: "delay"}, sbgn.KindLogicArc, true},
		{"LogicArcToEquivalence", Context{Class: "logic arc", Target: "equivalence"}, sbgn.KindEquivalenceArc, true},
		{"Consumption", Context{Class: "consumption"}, sbgn.KindConsumption, true},
		{"Influence", Context{Class: "negative influence"}, sbgn.KindNegativeInfluence, true},
		{"Unknown", Context{Class: "annotation"}, sbgn.KindUnknown, false},
		{"EquivalenceArc", Context{Class: "equivalence arc"}, sbgn.KindUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.ctx)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Classify(%+v) = %v, %v, want %v, %v", tt.ctx, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestClassName(t *testing.T) {
	tests := []struct {
		kind sbgn.Kind
		want string
	}{
		{sbgn.KindEmptySet, "source and sink"},
		{sbgn.KindGenericProcess, "process"},
		{sbgn.KindMacromoleculeSubunit, "macromolecule"},
		{sbgn.KindComplexMultimerSubunit, "complex multimer"},
		{sbgn.KindTerminal, "terminal"},
		{sbgn.KindMacromoleculeUnitOfInformation, "unit of information"},
		{sbgn.KindLogicArc, "logic arc"},
		{sbgn.KindEquivalenceArc, "logic arc"},
		{sbgn.KindNecessaryStimulation, "necessary stimulation"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := ClassName(tt.kind)
			if !ok || got != tt.want {
				t.Errorf("ClassName(%v) = %q, %v, want %q", tt.kind, got, ok, tt.want)
			}
		})
	}

	for _, k := range []sbgn.Kind{sbgn.KindReactant, sbgn.KindProduct, sbgn.KindUnknown} {
		if _, ok := ClassName(k); ok {
			t.Errorf("ClassName(%v) reported true", k)
		}
	}
}

// Every class the reader accepts must be written back under the same name,
// except the ones that only differ by context.
func TestClassNameInvertsClassify(t *testing.T) {
	for class := range glyphs {
		k, _ := Classify(Context{Class: class})
		if got, _ := ClassName(k); got != class {
			t.Errorf("ClassName(Classify(%q)) = %q", class, got)
		}
	}
	for class := range arcs {
		k, _ := Classify(Context{Class: class})
		if got, _ := ClassName(k); got != class {
			t.Errorf("ClassName(Classify(%q)) = %q", class, got)
		}
	}
}

func TestEntityName(t *testing.T) {
	if got, ok := EntityName(sbgn.KindComplexUnitOfInformation); !ok || got != "complex" {
		t.Errorf("EntityName(complex) = %q, %v", got, ok)
	}
	if _, ok := EntityName(sbgn.KindUnitOfInformation); ok {
		t.Error("EntityName(unit of information) reported true")
	}
}
