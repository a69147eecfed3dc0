package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is probed when no --config flag is given.
const DefaultConfigPath = "stego.yaml"

// Config carries CLI defaults loaded from a YAML file. Explicit flags
// always win over config values.
type Config struct {
	Verbose bool   `yaml:"verbose"`
	Quiet   bool   `yaml:"quiet"`
	NoColor bool   `yaml:"no_color"`
	Format  string `yaml:"format"`
}

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
