package api

import (
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// attemptLimiter throttles failed login attempts per client key so a local
// brute-force loop gets slowed down instead of free bcrypt oracle calls. The
// limit and window are fixed at construction; a successful login clears the
// client's history.
type attemptLimiter struct {
	limit  int
	window time.Duration

	mu       sync.Mutex
	failures map[string][]time.Time
}

func newAttemptLimiter(limit int, window time.Duration) *attemptLimiter {
	return &attemptLimiter{
		limit:    limit,
		window:   window,
		failures: make(map[string][]time.Time),
	}
}

// blocked reports whether the key has reached the failure limit within the
// window ending at now.
func (limiter *attemptLimiter) blocked(key string, now time.Time) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	return len(limiter.recentLocked(key, now)) >= limiter.limit
}

func (limiter *attemptLimiter) recordFailure(key string, now time.Time) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	limiter.failures[key] = append(limiter.recentLocked(key, now), now)
}

func (limiter *attemptLimiter) reset(key string) {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	delete(limiter.failures, key)
}

// recentLocked drops failures older than the window and returns what is left.
// Callers hold the mutex.
func (limiter *attemptLimiter) recentLocked(key string, now time.Time) []time.Time {
	recorded := limiter.failures[key]
	if len(recorded) == 0 {
		return nil
	}

	threshold := now.Add(-limiter.window)
	recent := recorded[:0:0]
	for _, at := range recorded {
		if at.After(threshold) {
			recent = append(recent, at)
		}
	}

	if len(recent) == 0 {
		delete(limiter.failures, key)
		return nil
	}

	limiter.failures[key] = recent
	return recent
}

func requestLimiterKey(c *fiber.Ctx) string {
	key := strings.TrimSpace(c.IP())
	if key == "" {
		return "unknown"
	}
	return key
}
