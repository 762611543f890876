// internal/cli/system.go
package chainsight

import (
	"fmt"

	"github.com/mwiater/chainsight/internal/appconfig"
	"github.com/mwiater/chainsight/internal/intel"
	"github.com/mwiater/chainsight/internal/providers"
	"github.com/mwiater/chainsight/internal/providers/ollama"
)

// newSystem assembles the intelligence engine from the merged
// configuration. The generative provider is only attached in aiMode;
// otherwise answers stay in template mode.
func newSystem(cfg *appconfig.Config) (*intel.System, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var generator providers.Generator
	if cfg.AIMode {
		generator = ollama.New(cfg)
	}

	system, err := intel.New(*cfg, generator)
	if err != nil {
		return nil, err
	}
	return system, nil
}
