// internal/cli/root.go
package chainsight

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mwiater/chainsight/internal/appconfig"
	"github.com/mwiater/chainsight/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile       string
	currentConfig *appconfig.Config
)

var rootCmd = &cobra.Command{
	Use:   "chainsight",
	Short: "chainsight — supply chain intelligence from the terminal",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 1) Load config (file or defaults)
		cfg, err := appconfig.Load(cfgFile)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			// No file: fine, we'll use defaults/flags
			cfg = appconfig.Config{}
		}

		// 2) If user did NOT set a flag, copy the config value into the flag so
		//    both pflags and viper reflect the same, final value.
		configBools := map[string]bool{
			"debug":  cfg.Debug,
			"aiMode": cfg.AIMode,
		}
		for name, val := range configBools {
			if !cmd.Flags().Changed(name) {
				_ = cmd.Flags().Set(name, strconv.FormatBool(val))
			}
		}

		// 3) Materialize the fully merged configuration into currentConfig
		//    (flags > config > defaults). This gives other packages a stable snapshot.
		cfg.Debug = viper.GetBool("debug")
		cfg.AIMode = viper.GetBool("aiMode")
		if cfg.AIMode && cfg.Generate.URL == "" {
			return fmt.Errorf("aiMode requires generate.url in the config file")
		}
		currentConfig = &cfg

		if err := logging.Init(cfg.LogFilePath()); err != nil {
			return fmt.Errorf("initialize logging: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Close()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", appconfig.DefaultConfigPath, "config file (e.g., config/config.json)")

	// Persistent flags available to all commands
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("aiMode", false, "compose answers with the configured generative host")

	// Bind flags to Viper keys (flags override config)
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("aiMode", rootCmd.PersistentFlags().Lookup("aiMode"))
}

// GetConfig returns the loaded application configuration for other packages.
func GetConfig() *appconfig.Config {
	return currentConfig
}

// Helper accessors (reflect merged Viper state)
func DebugEnabled() bool  { return viper.GetBool("debug") }
func AIModeEnabled() bool { return viper.GetBool("aiMode") }
