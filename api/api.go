// Package api is the public entry point of the rate limiter library.
// Embedding applications construct limiters directly with NewLimiter or in
// bulk from a YAML config file with NewLimitersFromConfigPath. Mapping
// request sources to limiter instances (registries, idle-key expiry,
// sharding) is the caller's responsibility.
package api

import (
	"fmt"

	"github.com/rs/zerolog/log"

	apiinternal "learn.tokenbucket/api/internal"
	"learn.tokenbucket/internal/tokenbucket"
	"learn.tokenbucket/types"
)

// NewLimiter constructs a limiter for a single key.
func NewLimiter(key string, fillRPM, maxBurst int) (types.Limiter, error) {
	return tokenbucket.NewLimiter(key, fillRPM, maxBurst)
}

// NewLimitersFromConfigPath loads the config file and returns one limiter
// per declared key, keyed by that key.
func NewLimitersFromConfigPath(configPath string) (map[string]types.Limiter, error) {
	log.Info().Str("config_path", configPath).Msg("API: Initializing rate limiters from config")
	cfgFile, err := apiinternal.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	if len(cfgFile.Limiters) == 0 {
		return nil, fmt.Errorf("no limiter configurations found in %s", configPath)
	}

	limiters := make(map[string]types.Limiter, len(cfgFile.Limiters))
	for _, cfg := range cfgFile.Limiters {
		limiter, err := CreateLimiter(cfg)
		if err != nil {
			log.Error().Err(err).Str("limiter_key", cfg.Key).Msg("API: Limiter creation failed")
			return nil, fmt.Errorf("limiter '%s': %w", cfg.Key, err)
		}
		limiters[cfg.Key] = limiter
	}

	log.Info().Int("count", len(limiters)).Msg("API: All rate limiters initialized")
	return limiters, nil
}
