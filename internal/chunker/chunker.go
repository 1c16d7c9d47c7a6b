// Package chunker splits document text into overlapping passages for embedding.
package chunker

import "strings"

// separators, in priority order. A chunk ends at the last occurrence of the
// highest-priority separator present in the window; a hard character cut
// happens only when the window contains none of these.
var separators = []string{"\n\n", "\n", ".", "!", "?", ";", ",", " "}

// Chunker splits text into overlapping chunks of at most chunkSize runes.
// Splitting is a pure function of (text, chunkSize, chunkOverlap).
type Chunker struct {
	chunkSize    int
	chunkOverlap int
}

// New creates a chunker. chunkSize must be positive; chunkOverlap must be
// smaller than chunkSize (values outside that are clamped).
func New(chunkSize, chunkOverlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	if chunkOverlap < 0 {
		chunkOverlap = 0
	}
	if chunkOverlap >= chunkSize {
		chunkOverlap = chunkSize / 2
	}
	return &Chunker{chunkSize: chunkSize, chunkOverlap: chunkOverlap}
}

// Chunk splits text into chunks. A text shorter than chunkSize yields exactly
// one chunk equal to the whole text; empty or whitespace-only text yields nil.
// Each chunk after the first starts chunkOverlap runes before the previous
// chunk's end, so content spanning a boundary appears in both chunks.
func (c *Chunker) Chunk(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	runes := []rune(text)
	if len(runes) <= c.chunkSize {
		return []string{text}
	}
	var chunks []string
	start := 0
	for {
		end := start + c.chunkSize
		if end >= len(runes) {
			chunks = append(chunks, string(runes[start:]))
			break
		}
		cut := c.findCut(runes[start:end])
		chunks = append(chunks, string(runes[start:start+cut]))
		next := start + cut - c.chunkOverlap
		if next <= start {
			next = start + cut
		}
		start = next
	}
	return chunks
}

// findCut returns the cut position (rune count) for a full-size window: the
// end of the last occurrence of the highest-priority separator present
// anywhere in the window. Only a window containing no separator at all is
// cut hard at the window edge.
func (c *Chunker) findCut(window []rune) int {
	s := string(window)
	for _, sep := range separators {
		idx := strings.LastIndex(s, sep)
		if idx < 0 {
			continue
		}
		return len([]rune(s[:idx])) + len([]rune(sep))
	}
	return len(window)
}

// Size returns the configured chunk size in runes.
func (c *Chunker) Size() int { return c.chunkSize }

// Overlap returns the configured overlap in runes.
func (c *Chunker) Overlap() int { return c.chunkOverlap }
