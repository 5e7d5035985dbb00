// Package types defines common types and errors used throughout the rate limiter.
package types

import "errors"

// ErrInvalidKey is returned when a limiter is constructed with an empty or
// whitespace-only key.
var ErrInvalidKey = errors.New("invalid limiter key")

// ErrInvalidConfig is returned when a limiter or capacity is constructed with
// a negative fill rate or a non-positive max burst.
var ErrInvalidConfig = errors.New("invalid limiter configuration")

// Snapshot is a point-in-time view of a limiter's bucket state, intended for
// diagnostics and debug output. It is not a persistence format.
type Snapshot struct {
	Capacity int `json:"capacity"`
	FillRPM  int `json:"fill_rpm"`
	MaxBurst int `json:"max_burst"`
}

// Limiter is the interface exposed for a single key's rate limiter.
// Implementations must be safe for concurrent use.
type Limiter interface {
	// Consume attempts to admit one request. It returns true if a token was
	// available and deducted, false if the request should be rejected.
	Consume() bool

	// Tokens reports the number of whole tokens currently in the bucket.
	Tokens() int

	// Key returns the identifier this limiter was constructed for.
	Key() string

	// Snapshot returns the current bucket state for diagnostics.
	Snapshot() Snapshot
}
