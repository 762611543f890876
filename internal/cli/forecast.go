// internal/cli/forecast.go
package chainsight

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mwiater/chainsight/internal/forecast"
	"github.com/spf13/cobra"
)

var forecastDays int

// forecastCmd projects demand for one SKU.
var forecastCmd = &cobra.Command{
	Use:   "forecast <sku>",
	Short: "Forecast demand for a product",
	Long:  `The 'forecast' command projects daily demand for a SKU from its sales history and derives stocking recommendations.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		system, err := newSystem(cfg)
		if err != nil {
			return err
		}

		days := forecastDays
		if !cmd.Flags().Changed("days") {
			days = cfg.ForecastHorizon()
		}

		result, err := system.ForecastDemand(args[0], days)
		if err != nil {
			return err
		}
		printForecast(cmd, result)
		return nil
	},
}

// printForecast renders the forecast summary, a preview of the daily
// predictions, and the stocking recommendations.
func printForecast(cmd *cobra.Command, r forecast.Result) {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	cmd.Println(headerStyle.Render(fmt.Sprintf("Demand forecast for %s (%d days)", r.SKU, len(r.Predictions))))
	cmd.Printf("  Historical avg:  %.1f units/day\n", r.Metrics.HistoricalAvg)
	cmd.Printf("  Forecast avg:    %.1f units/day\n", r.Metrics.ForecastAvg)
	cmd.Printf("  Growth rate:     %+.1f%%\n", r.Metrics.GrowthRatePct)
	cmd.Printf("  Trend:           %s\n", r.Metrics.Trend)
	cmd.Printf("  Confidence:      %.2f\n", r.Metrics.Confidence)

	cmd.Println(headerStyle.Render("Recommendations"))
	cmd.Printf("  Action:          %s\n", r.Recommendations.Action)
	cmd.Printf("  Target stock:    %.0f units\n", r.Recommendations.TargetStock)
	cmd.Printf("  Reorder point:   %.0f units\n", r.Recommendations.ReorderPoint)
	cmd.Printf("  %s\n", dimStyle.Render(r.Recommendations.Rationale))

	cmd.Println(headerStyle.Render("Daily predictions"))
	preview := r.Predictions
	if len(preview) > 7 {
		preview = preview[:7]
	}
	for _, p := range preview {
		cmd.Printf("  day %2d: %7.1f  (%.1f .. %.1f)\n", p.Day, p.Value, p.Lower, p.Upper)
	}
	if len(r.Predictions) > len(preview) {
		cmd.Println(dimStyle.Render(fmt.Sprintf("  ... %d more days", len(r.Predictions)-len(preview))))
	}
}

func init() {
	forecastCmd.Flags().IntVar(&forecastDays, "days", 30, "number of days to forecast")
	rootCmd.AddCommand(forecastCmd)
}
