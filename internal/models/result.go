package models

// SearchResult is a single similarity-search hit. Results are ordered by
// ascending distance (descending relevance) and live only for the request.
type SearchResult struct {
	Content   string      `json:"content"`
	Meta      PassageMeta `json:"metadata"`
	Distance  float64     `json:"distance"`
	Relevance float64     `json:"relevance_score"`
}

// Answer is the structured result of one query: the generated response plus
// the sources that grounded it. Confidence is the mean relevance of the
// contributing results, advisory only, never a calibrated probability.
type Answer struct {
	Response        string   `json:"response"`
	Sources         []string `json:"sources"`
	Confidence      float64  `json:"confidence"`
	RelatedSections []string `json:"related_sections"`
	Language        string   `json:"language"`
}

// ScenarioAnswer is an Answer extended with scenario-specific advice.
type ScenarioAnswer struct {
	Answer
	ScenarioAdvice string `json:"scenario_advice"`
}

// DocumentAnalysis is the result of analyzing an uploaded legal document.
// Classification fields come from keyword heuristics, not the model.
type DocumentAnalysis struct {
	Analysis          string `json:"analysis"`
	DocumentType      string `json:"document_type"`
	UrgencyLevel      string `json:"urgency_level"`
	RecommendedAction string `json:"recommended_action"`
}
