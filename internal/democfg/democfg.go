// Package democfg loads and saves the chipdemo configuration file.
package democfg

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Config represents chipdemo's config.yaml.
type Config struct {
	Separator   string   `yaml:"separator"`
	KeepEmpty   bool     `yaml:"keep_empty,omitempty"`
	Frame       bool     `yaml:"frame"`
	Icon        string   `yaml:"icon,omitempty"`
	Placeholder string   `yaml:"placeholder,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// Default returns the configuration used when no file exists yet.
func Default() Config {
	return Config{
		Separator:   ",",
		Frame:       true,
		Placeholder: "type a tag and press enter",
	}
}

// Parse parses config.yaml bytes into a Config. Missing fields fall back to
// defaults so an older or hand-trimmed file keeps working.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing demo config: %w", err)
	}
	if cfg.Separator == "" {
		cfg.Separator = ","
	}
	return cfg, nil
}

// Marshal serializes a Config to YAML bytes.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading demo config: %w", err)
	}
	return Parse(data)
}

// Save writes the config file at path, creating it if needed.
func Save(path string, cfg Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding demo config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing demo config: %w", err)
	}
	return nil
}
