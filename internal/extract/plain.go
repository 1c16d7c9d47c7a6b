package extract

import (
	"strings"
	"unicode/utf8"
)

// extractPlain returns the text of a plain corpus file. Bare acts and
// judgments fetched from government portals tend to arrive with CRLF line
// endings and the occasional mis-encoded byte, so line endings are
// normalized to LF and invalid UTF-8 is replaced rather than rejected.
// Uniform newlines matter downstream: the chunker treats a blank line as
// the strongest split point.
func extractPlain(content []byte) (string, error) {
	text := string(content)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return text, nil
}
