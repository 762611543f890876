// internal/cli/corpus_stats.go
package chainsight

import (
	"github.com/mwiater/chainsight/internal/corpus"
	"github.com/spf13/cobra"
)

// corpusStatsCmd summarizes the built corpus and its term index.
var corpusStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show corpus and index statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		system, err := newSystem(GetConfig())
		if err != nil {
			return err
		}

		policies, products := 0, 0
		for _, doc := range system.Documents() {
			switch doc.Category {
			case corpus.CategoryPolicy:
				policies++
			case corpus.CategoryProduct:
				products++
			}
		}

		cmd.Printf("Documents:       %d\n", system.Index().Len())
		cmd.Printf("  Policies:      %d\n", policies)
		cmd.Printf("  Products:      %d\n", products)
		cmd.Printf("Vocabulary:      %d terms\n", system.Index().VocabSize())
		return nil
	},
}

func init() {
	corpusCmd.AddCommand(corpusStatsCmd)
}
