// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// defaultDataFile is the tabular product file loaded when the config omits one.
	defaultDataFile = "data/supply_chain_data.csv"
	// defaultGenerateTimeout bounds a single generative call.
	defaultGenerateTimeout = 30 * time.Second
	// defaultTopK is the number of documents retrieved per query.
	defaultTopK = 3
	// defaultMaxContextChars bounds the assembled answer context.
	defaultMaxContextChars = 1500
	// defaultForecastDays is the default forecast horizon.
	defaultForecastDays = 30
	// defaultHistoryDays is the demand history window used for forecasting.
	defaultHistoryDays = 90
)

// Config represents the top-level application configuration.
type Config struct {
	DataFile        string `json:"dataFile,omitempty"`
	Debug           bool   `json:"debug"`
	AIMode          bool   `json:"aiMode"`
	TopK            int    `json:"topK,omitempty"`
	MaxContextChars int    `json:"maxContextChars,omitempty"`
	ForecastDays    int    `json:"forecastDays,omitempty"`
	HistoryDays     int    `json:"historyDays,omitempty"`
	TimeoutSeconds  int    `json:"timeout,omitempty"`
	LogFile         string `json:"logFile,omitempty"`
	Generate        Host   `json:"generate"`
	ConfigPath      string `json:"-"`
}

// Host identifies the generative endpoint used when aiMode is enabled.
type Host struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Model string `json:"model"`
}

// DataFilePath returns the tabular data file path, applying the default if unset.
func (c Config) DataFilePath() string {
	if path := strings.TrimSpace(c.DataFile); path != "" {
		return path
	}
	return defaultDataFile
}

// GenerateTimeout returns the timeout for a single generative call,
// falling back to the default if not specified.
func (c Config) GenerateTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultGenerateTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RetrievalTopK returns the number of documents to retrieve per query.
func (c Config) RetrievalTopK() int {
	if c.TopK <= 0 {
		return defaultTopK
	}
	return c.TopK
}

// ContextCharLimit returns the maximum length of the assembled context.
func (c Config) ContextCharLimit() int {
	if c.MaxContextChars <= 0 {
		return defaultMaxContextChars
	}
	return c.MaxContextChars
}

// ForecastHorizon returns the default number of days to forecast.
func (c Config) ForecastHorizon() int {
	if c.ForecastDays <= 0 {
		return defaultForecastDays
	}
	return c.ForecastDays
}

// HistoryWindow returns the number of trailing demand observations used for forecasting.
func (c Config) HistoryWindow() int {
	if c.HistoryDays <= 0 {
		return defaultHistoryDays
	}
	return c.HistoryDays
}

// LogFilePath returns the path to the application log file, applying a default if not set.
func (c Config) LogFilePath() string {
	if path := c.LogFile; strings.TrimSpace(path) != "" {
		return path
	}
	return "chainsight.log"
}

// Load reads the application configuration from the specified path.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultConfigPath
	}

	config, err := loadFromPath(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("no configuration file found at %q: %w", path, os.ErrNotExist)
		}
		return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
	}

	if config.AIMode && strings.TrimSpace(config.Generate.URL) == "" {
		return Config{}, errors.New("config must set generate.url when aiMode is enabled")
	}
	config.ConfigPath = path
	return config, nil
}

// loadFromPath is a helper function that loads the configuration from a specific file path.
func loadFromPath(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := validateSchema(raw); err != nil {
		return Config{}, err
	}

	var config Config
	if err := json.Unmarshal(raw, &config); err != nil {
		return Config{}, err
	}
	if config.TimeoutSeconds <= 0 {
		config.TimeoutSeconds = int(defaultGenerateTimeout.Seconds())
	}

	return config, nil
}
