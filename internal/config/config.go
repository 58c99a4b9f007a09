package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gcamargo0/turingo"
)

// DefaultPath is where the CLI looks for its configuration.
const DefaultPath = ".turingo.yaml"

// Config holds CLI-level execution defaults. Flags override it per command.
type Config struct {
	MaxSteps  int    `yaml:"max_steps"`
	TapeLimit int    `yaml:"tape_limit"`
	Quiet     bool   `yaml:"quiet"`
	LogLevel  string `yaml:"log_level"`
	Serve     Serve  `yaml:"serve"`
}

// Serve configures the HTTP server command.
type Serve struct {
	Addr    string `yaml:"addr"`
	Metrics bool   `yaml:"metrics"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		MaxSteps:  turingo.DefaultMaxSteps,
		TapeLimit: turingo.DefaultTapeLimit,
		LogLevel:  "info",
		Serve: Serve{
			Addr: ":8080",
		},
	}
}

// Load reads a YAML configuration file on top of the defaults. A missing
// file is not an error; it means "defaults only".
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if cfg.MaxSteps < 0 {
		return cfg, fmt.Errorf("config %s: max_steps must not be negative", path)
	}
	if cfg.TapeLimit <= 0 {
		return cfg, fmt.Errorf("config %s: tape_limit must be positive", path)
	}
	return cfg, nil
}
