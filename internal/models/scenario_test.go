package models

import "testing"

var mappedScenarioTypes = []ScenarioType{
	ScenarioLandlordDispute,
	ScenarioPoliceTrouble,
	ScenarioMoneyRecovery,
	ScenarioHarassment,
	ScenarioPropertyDispute,
	ScenarioEmployment,
}

func TestParseScenarioType(t *testing.T) {
	for _, st := range mappedScenarioTypes {
		got, ok := ParseScenarioType(string(st))
		if !ok {
			t.Errorf("ParseScenarioType(%q) not recognized", st)
		}
		if got != st {
			t.Errorf("ParseScenarioType(%q) = %q", st, got)
		}
	}
	if _, ok := ParseScenarioType("alien_abduction"); ok {
		t.Error("unknown scenario must not parse")
	}
	if _, ok := ParseScenarioType(""); ok {
		t.Error("empty scenario must not parse")
	}
}

func TestScenarioType_Exhaustive(t *testing.T) {
	// Every mapped scenario must carry a non-empty expansion and a specific
	// advisory; every cataloged scenario, mapped or not, must have a titled
	// catalog entry.
	for _, st := range mappedScenarioTypes {
		if st.QueryExpansion() == "" {
			t.Errorf("%s has no query expansion", st)
		}
		if st.Advice() == DefaultScenarioAdvice {
			t.Errorf("%s falls back to the default advisory", st)
		}
	}
	for _, st := range AllScenarioTypes() {
		info := st.Info()
		if info.Title == "" || info.Description == "" {
			t.Errorf("%s has incomplete catalog info: %+v", st, info)
		}
		if info.Type != st {
			t.Errorf("%s catalog entry carries wrong type %q", st, info.Type)
		}
	}
}

func TestScenarioType_CatalogOnly(t *testing.T) {
	// Family law and consumer rights appear in the catalog but have no
	// fixed expansion; analysis treats them like free-text scenarios.
	for _, st := range []ScenarioType{ScenarioFamilyLaw, ScenarioConsumerRights} {
		if _, ok := ParseScenarioType(string(st)); ok {
			t.Errorf("ParseScenarioType(%q) recognized a catalog-only type", st)
		}
		if got := st.QueryExpansion(); got != "" {
			t.Errorf("%s expansion must be empty, got %q", st, got)
		}
		if got := st.Advice(); got != DefaultScenarioAdvice {
			t.Errorf("%s advice must be the default advisory, got %q", st, got)
		}
	}
	if got := ScenarioFamilyLaw.Info().Title; got != "Family Law" {
		t.Errorf("family law title: %q", got)
	}
	if got := ScenarioConsumerRights.Info().Title; got != "Consumer Rights" {
		t.Errorf("consumer rights title: %q", got)
	}
}

func TestScenarioType_PoliceTrouble(t *testing.T) {
	st := ScenarioPoliceTrouble
	if got := st.QueryExpansion(); got != "police rights arrest procedure legal rights" {
		t.Errorf("unexpected expansion: %q", got)
	}
	want := "Stay calm, know your rights. You have the right to remain silent and contact a lawyer."
	if got := st.Advice(); got != want {
		t.Errorf("unexpected advice: %q", got)
	}
}

func TestScenarioType_UnknownAdvice(t *testing.T) {
	if got := ScenarioType("unknown").Advice(); got != DefaultScenarioAdvice {
		t.Errorf("unknown scenario advice: %q", got)
	}
	if got := ScenarioType("unknown").QueryExpansion(); got != "" {
		t.Errorf("unknown scenario expansion must be empty, got %q", got)
	}
}

func TestDocumentTypeFromPath(t *testing.T) {
	tests := []struct {
		path string
		want DocumentType
	}{
		{"", DocTypeGeneral},
		{"data/corpus/constitution_of_india.pdf", DocTypeConstitution},
		{"Constitution.PDF", DocTypeConstitution},
		{"ipc_sections.txt", DocTypeIPC},
		{"crpc_1973.pdf", DocTypeCrPC},
		{"consumer_protection_act.pdf", DocTypeAct},
		{"random_notes.txt", DocTypeAct},
	}
	for _, tt := range tests {
		if got := DocumentTypeFromPath(tt.path); got != tt.want {
			t.Errorf("DocumentTypeFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
