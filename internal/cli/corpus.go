// internal/cli/corpus.go
package chainsight

import "github.com/spf13/cobra"

// corpusCmd groups corpus inspection commands.
var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Corpus utilities",
}

func init() {
	rootCmd.AddCommand(corpusCmd)
}
