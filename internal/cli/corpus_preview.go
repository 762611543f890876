// internal/cli/corpus_preview.go
package chainsight

import (
	"fmt"
	"log"
	"strings"

	"github.com/mwiater/chainsight/internal/rag"
	"github.com/spf13/cobra"
)

// corpusPreviewCmd previews retrieval and context assembly for a query.
var corpusPreviewCmd = &cobra.Command{
	Use:   "preview <query>",
	Short: "Preview retrieval and context assembly",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return fmt.Errorf("query is required")
		}

		cfg := GetConfig()
		if cfg == nil {
			return fmt.Errorf("config is nil")
		}

		status := func(format string, args ...any) {
			msg := fmt.Sprintf(format, args...)
			log.Print(msg)
			fmt.Println(msg)
		}

		system, err := newSystem(cfg)
		if err != nil {
			return err
		}

		status("[corpus] Preview query: %s", query)
		status("[corpus] aiMode: %v", cfg.AIMode)
		status("[corpus] documents: %d", system.Index().Len())
		status("[corpus] vocabulary: %d terms", system.Index().VocabSize())
		status("[corpus] topK: %d", cfg.RetrievalTopK())
		status("[corpus] context char limit: %d", cfg.ContextCharLimit())

		results := system.Search(query, cfg.RetrievalTopK())
		status("[corpus] matches: %d", len(results))

		for i, r := range results {
			status("[corpus] match %d score=%.6f doc=%s category=%s", i+1, r.Score, r.Document.ID, r.Document.Category)
			status("[corpus] match %d text: %s", i+1, r.Document.Text)
		}

		contextText, used := rag.BuildContext(results, cfg.ContextCharLimit())
		if contextText != "" {
			status("[corpus] context chars: %d", used)
			status("[corpus] context:\n%s", contextText)
		}

		return nil
	},
}

func init() {
	corpusCmd.AddCommand(corpusPreviewCmd)
}
