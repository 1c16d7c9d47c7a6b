// Package synthesis turns retrieved passages and a generated completion into
// a structured answer.
package synthesis

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"

	"go.uber.org/zap"

	"github.com/nyaysetu/nyaysetu/internal/llm"
	"github.com/nyaysetu/nyaysetu/internal/models"
	"github.com/nyaysetu/nyaysetu/internal/prompt"
)

// Fixed responses. The query path never surfaces an error to the user; these
// stand in whenever retrieval finds nothing or the model call fails.
const (
	NoResultsResponse = "I couldn't find relevant legal information for your query. Please try rephrasing your question."
	FallbackResponse  = "I'm sorry, I encountered an error while processing your query. Please try again."
)

// citationPatterns match legal references in generated text.
var citationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Article \d+`),
	regexp.MustCompile(`(?i)Section \d+[A-Z]*`),
	regexp.MustCompile(`(?i)IPC \d+[A-Z]*`),
	regexp.MustCompile(`(?i)CrPC \d+[A-Z]*`),
}

// Synthesizer invokes the generative model and parses its output.
type Synthesizer struct {
	generator llm.Generator
	logger    *zap.Logger
}

// NewSynthesizer creates a synthesizer backed by the given generator.
func NewSynthesizer(generator llm.Generator, logger *zap.Logger) *Synthesizer {
	return &Synthesizer{generator: generator, logger: logger}
}

// Synthesize answers a query from search results. With no results it
// short-circuits to the fixed no-results answer without invoking the model.
// A model failure is returned as models.ErrSynthesis; the request boundary
// maps it to Fallback so the caller still gets a well-formed answer.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, results []*models.SearchResult, language, documentContext string) (*models.Answer, error) {
	if len(results) == 0 {
		return &models.Answer{
			Response:        NoResultsResponse,
			Sources:         []string{},
			Confidence:      0.0,
			RelatedSections: []string{},
			Language:        language,
		}, nil
	}

	p := prompt.BuildLegalPrompt(query, results, language, documentContext)
	text, err := s.generator.Generate(ctx, p)
	if err != nil {
		s.logger.Error("generative model call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", models.ErrSynthesis, err)
	}

	return &models.Answer{
		Response:        text,
		Sources:         Sources(results),
		Confidence:      Confidence(results),
		RelatedSections: ExtractCitations(text),
		Language:        language,
	}, nil
}

// Fallback is the fixed apologetic answer used when synthesis fails.
func Fallback(language string) *models.Answer {
	return &models.Answer{
		Response:        FallbackResponse,
		Sources:         []string{},
		Confidence:      0.0,
		RelatedSections: []string{},
		Language:        language,
	}
}

// Sources returns the deduplicated source identifiers of the results, in
// first-seen order.
func Sources(results []*models.SearchResult) []string {
	seen := make(map[string]bool, len(results))
	sources := make([]string, 0, len(results))
	for _, r := range results {
		source := r.Meta.Source
		if source == "" {
			source = "Unknown"
		}
		if seen[source] {
			continue
		}
		seen[source] = true
		sources = append(sources, source)
	}
	return sources
}

// Confidence is the mean relevance over all results, clamped to [0,1].
// It is computed over the full result set, not just the passages quoted in
// the prompt: a wider sample for the quality signal, a narrower one for
// prompt brevity.
func Confidence(results []*models.SearchResult) float64 {
	if len(results) == 0 {
		return 0.0
	}
	var sum float64
	for _, r := range results {
		sum += r.Relevance
	}
	mean := sum / float64(len(results))
	return math.Max(0, math.Min(1, mean))
}

// ExtractCitations returns the distinct legal references (Article 21,
// Section 498A, IPC 420, CrPC 154) mentioned in text, matched
// case-insensitively and sorted for stable output.
func ExtractCitations(text string) []string {
	seen := make(map[string]bool)
	citations := make([]string, 0)
	for _, pattern := range citationPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			if seen[m] {
				continue
			}
			seen[m] = true
			citations = append(citations, m)
		}
	}
	sort.Strings(citations)
	return citations
}
