package tokenbucket

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"learn.tokenbucket/types"
)

// clockBase anchors the millisecond clock. time.Since reads the runtime's
// monotonic clock, so readings never decrease even if the wall clock is
// stepped.
var clockBase = time.Now()

func monotonicMillis() int64 {
	return time.Since(clockBase).Milliseconds()
}

// Limiter is a token bucket bound to a single key. A single mutex guards the
// bucket and the last-request timestamp, so the whole refill → check →
// deduct sequence in Consume runs as one critical section. Safe for
// concurrent use; different keys get independent Limiter instances and need
// no coordination with each other.
type Limiter struct {
	key      string
	fillRPM  int
	maxBurst int

	mu            sync.Mutex
	capacity      *Capacity
	lastRequestMs int64 // zero until the first granted request

	// now is swapped out in tests; Capacity never reads the clock itself.
	now func() int64
}

// NewLimiter creates a limiter for the given key with a full bucket of
// maxBurst tokens refilling at fillRPM tokens per minute.
func NewLimiter(key string, fillRPM, maxBurst int) (*Limiter, error) {
	if strings.TrimSpace(key) == "" {
		return nil, fmt.Errorf("%w: key must be a non-empty string", types.ErrInvalidKey)
	}
	capacity, err := NewCapacity(maxBurst, fillRPM)
	if err != nil {
		return nil, err
	}
	log.Info().Str("limiter_type", "TokenBucket").Str("limiter_key", key).Int("fill_rpm", fillRPM).Int("max_burst", maxBurst).Msg("Limiter: Initialized")
	return &Limiter{
		key:      key,
		fillRPM:  fillRPM,
		maxBurst: maxBurst,
		capacity: capacity,
		now:      monotonicMillis,
	}, nil
}

// Consume attempts to take one token. The bucket is first refilled for the
// time elapsed since the last granted request, then the request is admitted
// iff a whole token is available. The timestamp is only advanced on grants,
// never on denials.
func (l *Limiter) Consume() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.capacity.addElapsed(l.elapsedSince(now))

	if !l.capacity.available() {
		log.Debug().Str("limiter_key", l.key).Int64("now_ms", now).Msg("Limiter: Request denied")
		return false
	}

	l.capacity.deductOne()
	l.lastRequestMs = now
	return true
}

// elapsedSince returns now minus the last granted request time. The result
// can be negative when the clock source moved backwards; addElapsed treats
// that as zero elapsed time rather than draining tokens.
func (l *Limiter) elapsedSince(now int64) int64 {
	return now - l.lastRequestMs
}

// Tokens reports the number of whole tokens currently available.
func (l *Limiter) Tokens() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.capacity.Tokens()
}

// Key returns the identifier this limiter was constructed for.
func (l *Limiter) Key() string {
	return l.key
}

// LastRequestMillis returns the clock reading recorded by the most recent
// granted request, or zero if no request has been granted yet.
func (l *Limiter) LastRequestMillis() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastRequestMs
}

// Snapshot returns the current bucket state for diagnostics.
func (l *Limiter) Snapshot() types.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return types.Snapshot{
		Capacity: l.capacity.Tokens(),
		FillRPM:  l.fillRPM,
		MaxBurst: l.maxBurst,
	}
}

// String renders the snapshot as a JSON record.
func (l *Limiter) String() string {
	b, err := json.Marshal(l.Snapshot())
	if err != nil {
		return ""
	}
	return string(b)
}
