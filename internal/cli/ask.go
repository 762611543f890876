// internal/cli/ask.go
package chainsight

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/chainsight/internal/rag"
	"github.com/spf13/cobra"
)

// askCmd answers a single question and exits.
var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer one question from the supply chain corpus",
	Long:  `The 'ask' command retrieves the most relevant records and policies for a question and composes a single answer.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.TrimSpace(strings.Join(args, " "))
		if question == "" {
			return fmt.Errorf("question is required")
		}

		cfg := GetConfig()
		system, err := newSystem(cfg)
		if err != nil {
			return err
		}

		answer, err := system.Query(context.Background(), question)
		if err != nil {
			return err
		}

		printAnswer(cmd, question, answer, cfg.Debug)
		return nil
	},
}

// printAnswer renders one composed answer with its provenance line.
func printAnswer(cmd *cobra.Command, question string, answer rag.Answer, debug bool) {
	questionStyle := lipgloss.NewStyle().Bold(true)
	sourceStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	cmd.Printf("%s %s\n", questionStyle.Render("Q:"), question)
	cmd.Printf("%s %s\n", questionStyle.Render("A:"), answer.Text)
	cmd.Println(sourceStyle.Render("   " + rag.Describe(answer)))

	if debug && answer.Context != "" {
		cmd.Println(sourceStyle.Render("\n--- context ---"))
		cmd.Println(answer.Context)
	}
}

func init() {
	rootCmd.AddCommand(askCmd)
}
