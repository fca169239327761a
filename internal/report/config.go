// ═══════════════════════════════════════════════════════════════════════════════════════════════
// SupraX Harness Configuration
// ═══════════════════════════════════════════════════════════════════════════════════════════════

package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the optional YAML config file cmd/tagesim accepts via --config. Command-line flags
// always win over a loaded Config (see cmd/tagesim/main.go), matching the harness's "flags
// override file" precedence.
type Config struct {
	Trace     string `yaml:"trace"`
	Predictor string `yaml:"predictor"`
	LogLevel  string `yaml:"log_level"`
	Report    string `yaml:"report"`
}

// LoadConfig reads and parses a YAML config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("report: read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("report: parse config %s: %w", path, err)
	}
	return &cfg, nil
}
