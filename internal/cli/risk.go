// internal/cli/risk.go
package chainsight

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/chainsight/internal/risk"
	"github.com/spf13/cobra"
)

var riskTop int

var (
	highLevel   = color.New(color.FgRed, color.Bold).SprintFunc()
	mediumLevel = color.New(color.FgYellow).SprintFunc()
	lowLevel    = color.New(color.FgGreen).SprintFunc()
)

// riskCmd ranks products by supply chain risk.
var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Rank products by supply chain risk",
	Long:  `The 'risk' command scores every product against the risk thresholds and lists the riskiest ones with their contributing factors.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		system, err := newSystem(cfg)
		if err != nil {
			return err
		}

		ranked, err := system.AnalyzeRisks(riskTop)
		if err != nil {
			return err
		}

		for _, a := range ranked {
			factors := "none"
			if len(a.Factors) > 0 {
				factors = strings.Join(a.Factors, ", ")
			}
			cmd.Printf("%-12s %s  score=%d  factors: %s\n", a.SKU, renderLevel(a.Level), a.Score, factors)
			cmd.Printf("%-12s action: %s\n", "", a.Action)
		}

		counts := risk.Summary(ranked)
		cmd.Printf("\n%d shown: %d high, %d medium, %d low\n",
			len(ranked), counts[risk.LevelHigh], counts[risk.LevelMedium], counts[risk.LevelLow])
		return nil
	},
}

// renderLevel colors a risk level for terminal output.
func renderLevel(level risk.Level) string {
	padded := fmt.Sprintf("%-6s", level)
	switch level {
	case risk.LevelHigh:
		return highLevel(padded)
	case risk.LevelMedium:
		return mediumLevel(padded)
	default:
		return lowLevel(padded)
	}
}

func init() {
	riskCmd.Flags().IntVar(&riskTop, "top", 10, "number of products to show")
	rootCmd.AddCommand(riskCmd)
}
