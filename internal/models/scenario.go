package models

// ScenarioType is a closed set of real-life legal situations the assistant
// knows how to expand into retrieval queries. Adding a mapped scenario means
// adding a constant here and extending every switch below; the
// exhaustiveness test keeps the expansion and advice switches in sync.
type ScenarioType string

const (
	ScenarioLandlordDispute ScenarioType = "landlord_dispute"
	ScenarioPoliceTrouble   ScenarioType = "police_trouble"
	ScenarioMoneyRecovery   ScenarioType = "money_recovery"
	ScenarioHarassment      ScenarioType = "harassment"
	ScenarioPropertyDispute ScenarioType = "property_dispute"
	ScenarioEmployment      ScenarioType = "employment"

	// Catalog-only scenarios. Advertised with the rest, but they carry no
	// fixed query expansion or advisory; analysis treats them like any
	// unrecognized type and retrieves on the user's description alone.
	ScenarioFamilyLaw      ScenarioType = "family_law"
	ScenarioConsumerRights ScenarioType = "consumer_rights"
)

// AllScenarioTypes lists every advertised scenario type, in catalog order.
func AllScenarioTypes() []ScenarioType {
	return []ScenarioType{
		ScenarioLandlordDispute,
		ScenarioPoliceTrouble,
		ScenarioMoneyRecovery,
		ScenarioHarassment,
		ScenarioPropertyDispute,
		ScenarioEmployment,
		ScenarioFamilyLaw,
		ScenarioConsumerRights,
	}
}

// ParseScenarioType maps a request string to a ScenarioType with a fixed
// query expansion. Catalog-only types and unrecognized strings return
// ok=false; callers fall back to using the free-text description as the
// retrieval query.
func ParseScenarioType(s string) (ScenarioType, bool) {
	switch ScenarioType(s) {
	case ScenarioLandlordDispute, ScenarioPoliceTrouble, ScenarioMoneyRecovery,
		ScenarioHarassment, ScenarioPropertyDispute, ScenarioEmployment:
		return ScenarioType(s), true
	}
	return "", false
}

// QueryExpansion returns the fixed keyword expansion prepended to the user's
// description before retrieval.
func (t ScenarioType) QueryExpansion() string {
	switch t {
	case ScenarioLandlordDispute:
		return "tenant rights landlord dispute rental law"
	case ScenarioPoliceTrouble:
		return "police rights arrest procedure legal rights"
	case ScenarioMoneyRecovery:
		return "debt recovery civil procedure money lending"
	case ScenarioHarassment:
		return "harassment law women protection legal remedies"
	case ScenarioPropertyDispute:
		return "property dispute civil law land rights"
	case ScenarioEmployment:
		return "labor law employment rights workplace harassment"
	}
	return ""
}

// DefaultScenarioAdvice is appended when the scenario type is unknown.
const DefaultScenarioAdvice = "Seek appropriate legal consultation for your specific situation."

// Advice returns the fixed advisory string appended to every answer for
// this scenario type.
func (t ScenarioType) Advice() string {
	switch t {
	case ScenarioLandlordDispute:
		return "Document all communications with landlord. Know your rights under rent control laws."
	case ScenarioPoliceTrouble:
		return "Stay calm, know your rights. You have the right to remain silent and contact a lawyer."
	case ScenarioMoneyRecovery:
		return "Maintain proper documentation of loans/debts. Consider filing a civil suit if amount is significant."
	case ScenarioHarassment:
		return "Document incidents, file complaints with appropriate authorities, seek legal protection."
	case ScenarioPropertyDispute:
		return "Gather all property documents, consider mediation before litigation."
	case ScenarioEmployment:
		return "Know your rights under labor laws, document workplace issues, approach labor court if needed."
	}
	return DefaultScenarioAdvice
}

// ScenarioInfo describes a scenario for the catalog endpoint.
type ScenarioInfo struct {
	Type        ScenarioType `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
}

// Info returns the catalog entry for this scenario type.
func (t ScenarioType) Info() ScenarioInfo {
	switch t {
	case ScenarioLandlordDispute:
		return ScenarioInfo{t, "Landlord/Tenant Dispute", "Issues with rent, eviction, property maintenance"}
	case ScenarioPoliceTrouble:
		return ScenarioInfo{t, "Police/Legal Trouble", "Arrest, detention, police questioning"}
	case ScenarioMoneyRecovery:
		return ScenarioInfo{t, "Money Recovery", "Debt collection, loan disputes, unpaid dues"}
	case ScenarioHarassment:
		return ScenarioInfo{t, "Harassment Issues", "Workplace, domestic, or cyber harassment"}
	case ScenarioPropertyDispute:
		return ScenarioInfo{t, "Property Disputes", "Land disputes, property ownership issues"}
	case ScenarioEmployment:
		return ScenarioInfo{t, "Employment Issues", "Workplace rights, salary disputes, termination"}
	case ScenarioFamilyLaw:
		return ScenarioInfo{t, "Family Law", "Marriage, divorce, custody, inheritance"}
	case ScenarioConsumerRights:
		return ScenarioInfo{t, "Consumer Rights", "Product defects, service issues, refunds"}
	}
	return ScenarioInfo{t, string(t), ""}
}
