// internal/cli/demo.go
package chainsight

import (
	"context"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// demoQuestions is the canned walkthrough shown by the demo command.
var demoQuestions = []string{
	"What is the safety stock policy?",
	"Which suppliers have quality issues?",
	"How should high risk suppliers be handled?",
}

// demoCmd runs a scripted tour: a few questions, one forecast, and the
// risk ranking.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted walkthrough of the system",
	Long:  `The 'demo' command answers a set of canned questions, forecasts demand for the first product, and prints the risk ranking.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		system, err := newSystem(cfg)
		if err != nil {
			return err
		}

		sectionStyle := lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)

		cmd.Println(sectionStyle.Render("Questions"))
		for _, q := range demoQuestions {
			answer, err := system.Query(context.Background(), q)
			if err != nil {
				return err
			}
			printAnswer(cmd, q, answer, cfg.Debug)
			cmd.Println()
		}

		products := system.Dataset().Products()
		if len(products) > 0 {
			cmd.Println(sectionStyle.Render("Forecast"))
			result, err := system.ForecastDemand(products[0].SKU, cfg.ForecastHorizon())
			if err != nil {
				return err
			}
			printForecast(cmd, result)
			cmd.Println()
		}

		cmd.Println(sectionStyle.Render("Risk"))
		ranked, err := system.AnalyzeRisks(5)
		if err != nil {
			return err
		}
		for _, a := range ranked {
			cmd.Printf("%-12s %s  score=%d\n", a.SKU, renderLevel(a.Level), a.Score)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
