package rag

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mwiater/chainsight/internal/logging"
	"github.com/mwiater/chainsight/internal/providers"
	"github.com/mwiater/chainsight/internal/util"
)

// templatePrefix introduces a template-mode answer built from the
// top-ranked document.
const templatePrefix = "Closest matching record: "

// templateAnswerMaxRunes bounds how much of the top document a
// template-mode answer surfaces.
const templateAnswerMaxRunes = 500

// Composer turns a query and its retrieved documents into a final answer.
// With a nil generator it always answers in template mode.
type Composer struct {
	generator providers.Generator
	maxChars  int
	timeout   time.Duration
}

// NewComposer builds a Composer. generator may be nil to disable the
// generative path entirely.
func NewComposer(generator providers.Generator, maxChars int, timeout time.Duration) *Composer {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Composer{
		generator: generator,
		maxChars:  maxChars,
		timeout:   timeout,
	}
}

// Compose produces the answer for a query. A generative failure of any
// kind (timeout, transport error, empty output) degrades to template
// mode; it never surfaces to the caller.
func (c *Composer) Compose(ctx context.Context, query string, results []ScoredDocument) Answer {
	if len(results) == 0 {
		return Answer{Text: FallbackAnswer, Mode: ModeTemplate}
	}

	contextText, _ := BuildContext(results, c.maxChars)
	sources := make([]string, len(results))
	for i, r := range results {
		sources[i] = r.Document.ID
	}

	if c.generator != nil {
		genCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()

		text, err := c.generator.Generate(genCtx, buildPrompt(contextText, query))
		if err == nil {
			text = strings.TrimSpace(text)
		}
		if err == nil && text != "" {
			return Answer{Text: text, Mode: ModeAI, SourceIDs: sources, Context: contextText}
		}
		logging.LogEvent("composer: generative answer failed (%v), falling back to template mode", err)
	}

	return Answer{
		Text:      templatePrefix + util.TruncateRunes(strings.TrimSpace(results[0].Document.Text), templateAnswerMaxRunes),
		Mode:      ModeTemplate,
		SourceIDs: sources,
		Context:   contextText,
	}
}

// buildPrompt combines the bounded context and the question into the
// prompt sent to the generative host.
func buildPrompt(contextText, query string) string {
	var b strings.Builder
	b.WriteString("Answer the question using only the supply chain records and policies below.\n\n")
	b.WriteString(contextText)
	b.WriteString("\n\nQuestion: ")
	b.WriteString(query)
	b.WriteString("\n\nProvide a clear, actionable answer in 2-3 sentences:")
	return b.String()
}

// Describe renders a short human-readable summary of an answer's
// provenance for CLI output.
func Describe(a Answer) string {
	if len(a.SourceIDs) == 0 {
		return fmt.Sprintf("mode=%s sources=none", a.Mode)
	}
	return fmt.Sprintf("mode=%s sources=%s", a.Mode, strings.Join(a.SourceIDs, ","))
}
