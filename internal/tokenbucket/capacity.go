// Package tokenbucket implements a per-key token bucket with
// millisecond-granular refill using scaled integer arithmetic.
package tokenbucket

import (
	"fmt"

	"learn.tokenbucket/types"
)

// PrecisionFactor scales the token count so fractional refill progress can
// be tracked per millisecond of elapsed time with integer math only. A rate
// of fillRPM tokens per minute adds exactly fillRPM scaled units per
// millisecond, so no floating point is involved anywhere in the accounting.
const PrecisionFactor = 60_000

// Capacity holds the scaled token count for one bucket. It performs no
// locking of its own: the owning Limiter's mutex must be held around every
// call that reads or mutates the scaled value.
type Capacity struct {
	maxBurst int
	fillRPM  int   // tokens added per minute of elapsed time; 0 means never refill
	scaled   int64 // token count multiplied by PrecisionFactor
}

// NewCapacity creates a full bucket holding maxBurst tokens.
func NewCapacity(maxBurst, fillRPM int) (*Capacity, error) {
	if fillRPM < 0 {
		return nil, fmt.Errorf("%w: fill rate cannot be negative", types.ErrInvalidConfig)
	}
	if maxBurst <= 0 {
		return nil, fmt.Errorf("%w: max burst must be a positive integer", types.ErrInvalidConfig)
	}
	return &Capacity{
		maxBurst: maxBurst,
		fillRPM:  fillRPM,
		scaled:   int64(maxBurst) * PrecisionFactor,
	}, nil
}

// Tokens returns the number of whole tokens currently in the bucket.
func (c *Capacity) Tokens() int {
	return int(c.scaled / PrecisionFactor)
}

// available reports whether at least one whole token is in the bucket.
// The comparison is against a full token's worth, not bare positivity:
// under concurrent accounting the scaled value can sit strictly between
// zero and PrecisionFactor, and treating that residue as available would
// admit more requests than the configured burst.
func (c *Capacity) available() bool {
	return c.scaled >= PrecisionFactor
}

// deductOne removes one token's worth from the bucket, flooring at zero.
// Callers must gate on available first; the floor is only a safety net.
func (c *Capacity) deductOne() {
	c.scaled -= PrecisionFactor
	if c.scaled < 0 {
		c.scaled = 0
	}
}

// addElapsed refills the bucket in proportion to the milliseconds elapsed
// since the last granted request. A negative elapsed value (regressed clock)
// refills nothing, and elapsed time beyond what refills the bucket from
// empty to full is clipped so huge gaps cannot overflow the arithmetic.
func (c *Capacity) addElapsed(milliseconds int64) {
	if milliseconds < 0 {
		milliseconds = 0
	}
	if c.fillRPM > 0 {
		maxFillTime := int64(PrecisionFactor) * int64(c.maxBurst) / int64(c.fillRPM)
		if milliseconds > maxFillTime {
			milliseconds = maxFillTime
		}
	}
	c.scaled += milliseconds * int64(c.fillRPM)
	if ceiling := int64(c.maxBurst) * PrecisionFactor; c.scaled > ceiling {
		c.scaled = ceiling
	}
}
