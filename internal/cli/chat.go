// internal/cli/chat.go
package chainsight

import (
	"context"

	"github.com/mwiater/chainsight/internal/tui"
	"github.com/spf13/cobra"
)

var startSession = tui.StartSession

// chatCmd represents the 'chat' command.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question session",
	Long:  `The 'chat' command starts an interactive session for asking questions against the supply chain corpus.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		system, err := newSystem(cfg)
		if err != nil {
			return err
		}
		startSession(context.Background(), cfg, system)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
