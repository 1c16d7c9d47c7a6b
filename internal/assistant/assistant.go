// Package assistant is the service layer tying retrieval and synthesis into
// the user-facing query, scenario, and document-analysis operations.
package assistant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/nyaysetu/nyaysetu/internal/llm"
	"github.com/nyaysetu/nyaysetu/internal/models"
	"github.com/nyaysetu/nyaysetu/internal/prompt"
	"github.com/nyaysetu/nyaysetu/internal/retrieval"
	"github.com/nyaysetu/nyaysetu/internal/synthesis"
)

// Assistant answers legal questions over the ingested corpus. It is the
// single fail-soft boundary for the query path: every internal error kind is
// mapped to a fixed well-formed answer here, so callers always receive a
// valid response. A canned low-confidence answer beats a crash for a
// user-facing advisory tool, at the cost that a broken model looks like "no
// relevant documents" unless logs are inspected.
type Assistant struct {
	pipeline    *retrieval.Pipeline
	synthesizer *synthesis.Synthesizer
	generator   llm.Generator
	logger      *zap.Logger
}

// New creates an assistant with explicitly injected dependencies. Services
// are constructed once at startup and shared by all requests.
func New(pipeline *retrieval.Pipeline, synthesizer *synthesis.Synthesizer, generator llm.Generator, logger *zap.Logger) *Assistant {
	return &Assistant{
		pipeline:    pipeline,
		synthesizer: synthesizer,
		generator:   generator,
		logger:      logger,
	}
}

// AnswerQuery runs the full query path: embed, retrieve, assemble, generate,
// parse. Retrieval failures degrade to the no-results answer and synthesis
// failures to the fixed apologetic answer; neither propagates.
func (a *Assistant) AnswerQuery(ctx context.Context, query, language, documentContext string) *models.Answer {
	results := a.pipeline.Search(ctx, query, 0)
	answer, err := a.synthesizer.Synthesize(ctx, query, results, language, documentContext)
	if err != nil {
		a.logger.Error("query synthesis failed", zap.String("query", query), zap.Error(err))
		return synthesis.Fallback(language)
	}
	return answer
}

// ExplainArticle answers a question about a constitutional article by
// expanding it into a retrieval query.
func (a *Assistant) ExplainArticle(ctx context.Context, article, language string) *models.Answer {
	query := fmt.Sprintf("Article %s Indian Constitution meaning explanation", article)
	return a.AnswerQuery(ctx, query, language, "")
}

// AnalyzeScenario answers a real-life legal scenario. Known scenario types
// contribute a fixed keyword expansion ahead of the user's description and a
// fixed advisory string after the answer; an unrecognized or catalog-only
// type uses the description itself as the expansion and the default advisory.
func (a *Assistant) AnalyzeScenario(ctx context.Context, scenarioType, description, language string) *models.ScenarioAnswer {
	expansion := description
	advice := models.DefaultScenarioAdvice
	if t, ok := models.ParseScenarioType(scenarioType); ok {
		expansion = t.QueryExpansion()
		advice = t.Advice()
	}
	query := fmt.Sprintf("%s %s", expansion, description)
	answer := a.AnswerQuery(ctx, query, language, "")
	return &models.ScenarioAnswer{
		Answer:         *answer,
		ScenarioAdvice: advice,
	}
}

// AnalyzeDocument explains an uploaded legal document. This path bypasses
// retrieval entirely: the document text is the whole context for one
// generator call. Classification uses fixed keyword heuristics, with the
// recommended action derived from the generated analysis, not the source.
func (a *Assistant) AnalyzeDocument(ctx context.Context, documentText, language string) *models.DocumentAnalysis {
	p := prompt.BuildDocumentAnalysisPrompt(documentText, language)
	analysis, err := a.generator.Generate(ctx, p)
	if err != nil {
		a.logger.Error("document analysis failed", zap.Error(fmt.Errorf("%w: %v", models.ErrSynthesis, err)))
		return &models.DocumentAnalysis{
			Analysis:          "Error analyzing document. Please try again.",
			DocumentType:      "unknown",
			UrgencyLevel:      UrgencyMedium,
			RecommendedAction: "Consult a legal expert",
		}
	}
	return &models.DocumentAnalysis{
		Analysis:          analysis,
		DocumentType:      IdentifyDocumentType(documentText),
		UrgencyLevel:      AssessUrgency(documentText),
		RecommendedAction: SuggestAction(analysis),
	}
}

// Scenarios returns the catalog of known scenario types.
func (a *Assistant) Scenarios() []models.ScenarioInfo {
	types := models.AllScenarioTypes()
	infos := make([]models.ScenarioInfo, len(types))
	for i, t := range types {
		infos[i] = t.Info()
	}
	return infos
}
