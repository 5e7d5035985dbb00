package internal

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v2"

	"learn.tokenbucket/config"
)

// ConfigFile represents the top-level structure of the configuration file.
type ConfigFile struct {
	Limiters []config.LimiterConfig `yaml:"limiters"`
}

// LoadConfig reads and unmarshals the YAML config. It expects a list of
// limiter declarations under the 'limiters' key.
func LoadConfig(path string) (*ConfigFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	var cfg ConfigFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config file %s: %w", path, err)
	}
	log.Debug().Str("config_path", path).Int("limiters", len(cfg.Limiters)).Msg("Configuration loaded")
	return &cfg, nil
}
