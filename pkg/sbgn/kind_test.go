package sbgn

import "testing"

func TestKindPredicates(t *testing.T) {
	tests := []struct {
		kind       Kind
		entityPool bool
		subunit    bool
		aux        bool
		process    bool
		op         bool
		arc        bool
		mod        bool
	}{
		{KindMacromolecule, true, false, false, false, false, false, false},
		{KindEmptySet, true, false, false, false, false, false, false},
		{KindComplexSubunit, false, true, false, false, false, false, false},
		{KindStateVariable, false, false, true, false, false, false, false},
		{KindPerturbationUnitOfInformation, false, false, true, false, false, false, false},
		{KindAssociation, false, false, false, true, false, false, false},
		{KindDelayOperator, false, false, false, false, true, false, false},
		{KindConsumption, false, false, false, false, false, true, false},
		{KindNecessaryStimulation, false, false, false, false, false, true, true},
		{KindReactant, false, false, false, false, false, false, false},
		{KindPhenotype, false, false, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsEntityPool(); got != tt.entityPool {
				t.Errorf("IsEntityPool() = %v, want %v", got, tt.entityPool)
			}
			if got := tt.kind.IsSubunit(); got != tt.subunit {
				t.Errorf("IsSubunit() = %v, want %v", got, tt.subunit)
			}
			if got := tt.kind.IsAuxiliaryUnit(); got != tt.aux {
				t.Errorf("IsAuxiliaryUnit() = %v, want %v", got, tt.aux)
			}
			if got := tt.kind.IsProcess(); got != tt.process {
				t.Errorf("IsProcess() = %v, want %v", got, tt.process)
			}
			if got := tt.kind.IsOperator(); got != tt.op {
				t.Errorf("IsOperator() = %v, want %v", got, tt.op)
			}
			if got := tt.kind.IsArc(); got != tt.arc {
				t.Errorf("IsArc() = %v, want %v", got, tt.arc)
			}
			if got := tt.kind.IsModulation(); got != tt.mod {
				t.Errorf("IsModulation() = %v, want %v", got, tt.mod)
			}
		})
	}
}

func TestKindNames(t *testing.T) {
	seen := make(map[string]Kind)
	for _, k := range Kinds() {
		name := k.String()
		if name == "" || name == "unknown" {
			t.Errorf("Kind(%d) has no name", int(k))
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("Kind(%d) and Kind(%d) share name %q", int(prev), int(k), name)
		}
		seen[name] = k
	}
	if Kind(-1).String() != "unknown" || kindCount.String() != "unknown" {
		t.Error("out of range kinds should print as unknown")
	}
}
