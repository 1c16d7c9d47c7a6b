package assistant

import "strings"

// Urgency tiers. There is no low tier: an uploaded legal document always
// warrants at least medium attention.
const (
	UrgencyHigh   = "high"
	UrgencyMedium = "medium"
)

// urgentKeywords mark a document as high urgency when any appears.
var urgentKeywords = []string{"urgent", "immediate", "within", "days", "summons", "notice"}

// IdentifyDocumentType classifies a legal document by keyword presence.
// Checks run in a fixed order; the first match wins.
func IdentifyDocumentType(documentText string) string {
	text := strings.ToLower(documentText)
	switch {
	case containsAny(text, "notice", "legal notice"):
		return "Legal Notice"
	case containsAny(text, "summons", "court", "civil suit"):
		return "Court Summons"
	case containsAny(text, "fir", "police", "complaint"):
		return "Police Complaint/FIR"
	case containsAny(text, "contract", "agreement"):
		return "Legal Agreement"
	default:
		return "Legal Document"
	}
}

// AssessUrgency returns high when any urgency keyword appears in the
// document text, medium otherwise.
func AssessUrgency(documentText string) string {
	text := strings.ToLower(documentText)
	if containsAny(text, urgentKeywords...) {
		return UrgencyHigh
	}
	return UrgencyMedium
}

// SuggestAction derives a recommended action from the generated analysis
// text (not the source document).
func SuggestAction(analysis string) string {
	text := strings.ToLower(analysis)
	switch {
	case containsAny(text, "summons", "court"):
		return "Consult a lawyer immediately and prepare for court appearance"
	case strings.Contains(text, "notice"):
		return "Review the notice carefully and consider legal consultation"
	default:
		return "Review the document and seek legal advice if needed"
	}
}

func containsAny(text string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
