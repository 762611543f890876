package appconfig

import (
	"fmt"
	"io"
)

// ShowConfig prints the current configuration summary.
func ShowConfig(out io.Writer, cfg *Config) {
	if cfg == nil {
		fmt.Fprintln(out, "No configuration loaded.")
		return
	}

	if cfg.ConfigPath == "" {
		fmt.Fprintln(out, "No config file loaded (using defaults).")
	} else {
		fmt.Fprintf(out, "Config file: %s\n\n", cfg.ConfigPath)
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintf(out, "  Debug:             %v\n", cfg.Debug)
	fmt.Fprintf(out, "  AI Mode:           %v\n", cfg.AIMode)
	fmt.Fprintf(out, "  Data File:         %s\n", cfg.DataFilePath())
	fmt.Fprintf(out, "  Log File:          %s\n", cfg.LogFilePath())
	fmt.Fprintf(out, "  Retrieval Top K:   %d\n", cfg.RetrievalTopK())
	fmt.Fprintf(out, "  Context Limit:     %d chars\n", cfg.ContextCharLimit())
	fmt.Fprintf(out, "  Forecast Horizon:  %d days\n", cfg.ForecastHorizon())
	fmt.Fprintf(out, "  History Window:    %d days\n", cfg.HistoryWindow())
	fmt.Fprintf(out, "  Generate Timeout:  %s\n", cfg.GenerateTimeout())
	if cfg.AIMode {
		fmt.Fprintf(out, "  Generate Host:     %s (%s)\n", cfg.Generate.Name, cfg.Generate.URL)
		fmt.Fprintf(out, "  Generate Model:    %s\n", cfg.Generate.Model)
	}
}
