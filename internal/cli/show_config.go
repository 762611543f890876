// internal/cli/show_config.go
package chainsight

import (
	"os"

	"github.com/k0kubun/pp"
	"github.com/mwiater/chainsight/internal/appconfig"
	"github.com/spf13/cobra"
)

// showConfigCmd prints the merged configuration, flags overriding the
// JSON config accordingly.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show config settings",
	Long:  `Show config settings ensuring that the JSON config is loaded properly and overridden by flags accordingly.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := GetConfig()
		appconfig.ShowConfig(os.Stdout, cfg)

		if cfg != nil && cfg.Debug {
			pp.Println(cfg)
		}
	},
}

func init() {
	showCmd.AddCommand(showConfigCmd)
}
