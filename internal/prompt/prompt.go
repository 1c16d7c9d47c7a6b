// Package prompt assembles grounded prompts for the generative model.
package prompt

import (
	"fmt"
	"strings"

	"github.com/nyaysetu/nyaysetu/internal/models"
)

// contextResults is how many search results are quoted in the prompt.
// Confidence is still computed over the full result set; the narrower limit
// here only keeps the prompt short.
const contextResults = 3

// contextContentLimit caps how much of each passage is quoted.
const contextContentLimit = 500

// LanguageInstruction returns the response-language instruction for a
// language code. Hindi and Marathi are supported; any other code silently
// falls through to English (no instruction).
func LanguageInstruction(language string) string {
	switch language {
	case "hi":
		return "Please respond in Hindi (हिंदी में जवाब दें)."
	case "mr":
		return "Please respond in Marathi (मराठीत उत्तर द्या)."
	default:
		return ""
	}
}

// BuildLegalPrompt builds the grounded prompt for a legal question: system
// framing, context from the top results, optional uploaded-document context,
// the verbatim question, and the answer-structure instructions.
func BuildLegalPrompt(query string, results []*models.SearchResult, language, documentContext string) string {
	var b strings.Builder

	b.WriteString("You are NyaySetu, an AI legal assistant specializing in Indian law. ")
	b.WriteString("Your role is to help common citizens understand legal concepts in simple, clear language.\n\n")

	b.WriteString("Context from Indian legal documents:\n")
	b.WriteString(buildContext(results))
	b.WriteString("\n\n")

	if documentContext != "" {
		b.WriteString("The user is asking a question related to the following document:\n")
		b.WriteString("---\n")
		b.WriteString(documentContext)
		b.WriteString("\n---\n")
		b.WriteString("Please use this document as primary context for your answer, if relevant.\n\n")
	}

	b.WriteString("User Question: ")
	b.WriteString(query)
	b.WriteString("\n\n")

	b.WriteString("Instructions:\n")
	b.WriteString("1. Provide a clear, simple explanation that a non-lawyer can understand\n")
	b.WriteString("2. Mention specific laws, articles, or sections that apply\n")
	b.WriteString("3. Give practical advice when appropriate\n")
	b.WriteString("4. Be empathetic and supportive in your tone\n")
	b.WriteString("5. If the query is outside legal domain, politely redirect to legal matters\n")
	if instr := LanguageInstruction(language); instr != "" {
		b.WriteString(instr)
		b.WriteString("\n")
	}

	b.WriteString("\nPlease structure your response with:\n")
	b.WriteString("- Direct answer to the question\n")
	b.WriteString("- Relevant legal provisions\n")
	b.WriteString("- Practical next steps (if applicable)\n")
	b.WriteString("- Where to seek further help\n")

	return b.String()
}

// buildContext formats the top results as Source/Content blocks, quoting at
// most contextContentLimit runes of each passage.
func buildContext(results []*models.SearchResult) string {
	parts := make([]string, 0, contextResults)
	for i, r := range results {
		if i >= contextResults {
			break
		}
		content := r.Content
		if runes := []rune(content); len(runes) > contextContentLimit {
			content = string(runes[:contextContentLimit])
		}
		source := r.Meta.Source
		if source == "" {
			source = "Unknown"
		}
		parts = append(parts, fmt.Sprintf("Source: %s\nContent: %s", source, content))
	}
	return strings.Join(parts, "\n\n")
}

// BuildDocumentAnalysisPrompt builds the prompt for analyzing an uploaded
// legal document. This path does no retrieval; the document is the whole
// context.
func BuildDocumentAnalysisPrompt(documentText, language string) string {
	var b strings.Builder
	b.WriteString("Analyze this legal document and provide a clear, simple explanation")
	if instr := LanguageInstruction(language); instr != "" {
		b.WriteString(". ")
		b.WriteString(instr)
	}
	b.WriteString("\n\nDocument: ")
	b.WriteString(documentText)
	b.WriteString("\n\nPlease provide:\n")
	b.WriteString("1. What type of legal document this is\n")
	b.WriteString("2. Key points in simple language\n")
	b.WriteString("3. What action (if any) is required\n")
	b.WriteString("4. Important dates or deadlines\n")
	b.WriteString("5. Your legal rights in this situation\n\n")
	b.WriteString("Respond in a helpful, non-technical way that a common person can understand.\n")
	return b.String()
}
