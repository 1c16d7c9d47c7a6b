// Package cli provides output formatting for the NyaySetu CLI.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/nyaysetu/nyaysetu/internal/models"
)

// OutputFormat is the format for answer output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// WriteAnswer writes an answer to w in the given format.
func WriteAnswer(w io.Writer, answer *models.Answer, format OutputFormat) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(answer)
	default:
		writeAnswerText(w, answer)
		return nil
	}
}

func writeAnswerText(w io.Writer, answer *models.Answer) {
	fmt.Fprintln(w, answer.Response)
	fmt.Fprintln(w)
	if len(answer.RelatedSections) > 0 {
		fmt.Fprintf(w, "Related provisions: %s\n", strings.Join(answer.RelatedSections, ", "))
	}
	if len(answer.Sources) > 0 {
		fmt.Fprintln(w, "Sources:")
		for _, src := range answer.Sources {
			fmt.Fprintf(w, "  - %s\n", src)
		}
	}
	fmt.Fprintf(w, "Confidence: %.2f\n", answer.Confidence)
}
