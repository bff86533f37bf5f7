// Package jitter spreads retry delays so that many clients retrying against the
// same dependency do not wake up in lockstep.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter stretches a delay by up to half of itself.
const DefaultJitter = 0.5

// Source draws jittered delays from its own random generator.
type Source struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Source backed by rnd. Pass a seeded generator for reproducible delays.
func New(rnd *rand.Rand) *Source {
	return &Source{rnd: rnd}
}

var defaultSource = New(rand.New(rand.NewSource(time.Now().UnixNano())))

// Duration returns d plus a random fraction of d*factor, so the result lies in
// [d, d*(1+factor)].
func (s *Source) Duration(d time.Duration, factor float64) time.Duration {
	if d <= 0 || factor <= 0 {
		return d
	}
	s.mu.Lock()
	f := s.rnd.Float64()
	s.mu.Unlock()
	return d + time.Duration(f*factor*float64(d))
}

// ExponentialBackoff returns the jittered delay before retry number attempt (zero-based):
// base doubled attempt times and capped at max.
func (s *Source) ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	return s.Duration(capped(base, max, attempt), factor)
}

func capped(base, max time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	if max < base {
		max = base
	}
	// base<<attempt would overflow long before the cap stops mattering
	if attempt >= 62 || base > max>>uint(attempt) {
		return max
	}
	return base << uint(attempt)
}

// Duration jitters d using the process-wide Source.
func Duration(d time.Duration, factor float64) time.Duration {
	return defaultSource.Duration(d, factor)
}

// ExponentialBackoff computes a jittered backoff using the process-wide Source.
func ExponentialBackoff(base, max time.Duration, attempt int, factor float64) time.Duration {
	return defaultSource.ExponentialBackoff(base, max, attempt, factor)
}
