package api

import (
	"fmt"

	"learn.tokenbucket/config"
	"learn.tokenbucket/internal/tokenbucket"
	"learn.tokenbucket/types"
)

// CreateLimiter builds a limiter from a single configuration entry.
func CreateLimiter(cfg config.LimiterConfig) (types.Limiter, error) {
	if cfg.TokenBucketParams == nil {
		return nil, fmt.Errorf("token bucket parameters are missing in config for key '%s'", cfg.Key)
	}
	return tokenbucket.NewLimiter(cfg.Key, cfg.TokenBucketParams.FillRPM, cfg.TokenBucketParams.MaxBurst)
}
