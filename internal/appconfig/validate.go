// internal/appconfig/validate.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the accepted shape of the configuration file.
// Unknown keys are rejected so that typos surface at load time instead
// of silently falling back to defaults.
const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "dataFile":        {"type": "string"},
    "debug":           {"type": "boolean"},
    "aiMode":          {"type": "boolean"},
    "topK":            {"type": "integer", "minimum": 1},
    "maxContextChars": {"type": "integer", "minimum": 1},
    "forecastDays":    {"type": "integer", "minimum": 1},
    "historyDays":     {"type": "integer", "minimum": 1},
    "timeout":         {"type": "integer", "minimum": 1},
    "logFile":         {"type": "string"},
    "generate": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "name":  {"type": "string"},
        "url":   {"type": "string"},
        "model": {"type": "string"}
      }
    }
  }
}`

// validateSchema checks raw config bytes against the config schema.
func validateSchema(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var issues []string
	for _, desc := range result.Errors() {
		issues = append(issues, desc.String())
	}
	return fmt.Errorf("config failed schema validation: %s", strings.Join(issues, "; "))
}
