package rag

import (
	"fmt"
	"strings"

	"github.com/mwiater/chainsight/internal/util"
)

// BuildContext assembles the bounded textual context from retrieved
// documents. Each document contributes a tagged block; once the character
// budget is spent the remaining documents are dropped. Returns the
// context text and the number of documents that made it in.
func BuildContext(results []ScoredDocument, maxChars int) (string, int) {
	if len(results) == 0 {
		return "", 0
	}
	if maxChars < 0 {
		maxChars = 0
	}

	var b strings.Builder
	used := 0
	remaining := maxChars

	for _, r := range results {
		text := strings.TrimSpace(r.Document.Text)
		if text == "" {
			continue
		}
		if maxChars > 0 {
			if remaining <= 0 {
				break
			}
			if len([]rune(text)) > remaining {
				text = util.TruncateRunes(text, remaining)
			}
		}

		if used > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(fmt.Sprintf("[doc:%s] %s", r.Document.ID, text))
		used++
		if maxChars > 0 {
			remaining -= len([]rune(text))
		}
	}

	return b.String(), used
}
