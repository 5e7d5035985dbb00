package config

// LimiterConfig holds the configuration for a single rate limiter instance.
// Key identifies the request source (user, IP, API key) the limiter guards.
type LimiterConfig struct {
	Key string `yaml:"key"`

	TokenBucketParams *TokenBucketConfig `yaml:"token_bucket_params,omitempty"`
}

// TokenBucketConfig holds parameters for the Token Bucket algorithm.
// FillRPM is the refill rate in tokens per minute; MaxBurst is the bucket
// capacity and therefore the number of requests admittable with no wait.
type TokenBucketConfig struct {
	FillRPM  int `yaml:"fill_rpm"`
	MaxBurst int `yaml:"max_burst"`
}
