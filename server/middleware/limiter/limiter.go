// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"codeberg.org/foodgram/foodgram-web/config"
)

const (
	LimiterExpiryDuration = time.Hour       // How long to keep limiters in memory before cleanup.
	CleanupInterval       = 5 * time.Minute // Interval between limiter cleanup runs.
)

var (
	limiters sync.Map   // In-memory storage for rate limiters, keyed by network.
	timeNow  = time.Now // Wrapper for time.Now, which allows us to mock it in tests.
)

// limiterWrapper holds a rate limiter and additional metadata.
//
// Limiters are associated with an IP network and persist in the limiters sync.Map.
type limiterWrapper struct {
	limiter    *rate.Limiter
	network    string     // Associated network identifier
	lastAccess time.Time  // Last time limiter was accessed
	mu         sync.Mutex // mutex for operations on this limiter
}

// Init resets the limiter state and logs the active limits.
func Init() {
	resetLimiters()

	log.Info().
		Float64("rate", config.Global.Limiter.Rate).
		Int("burst", config.Global.Limiter.Burst).
		Int("ipv4_prefix", config.Global.Limiter.IPv4Prefix).
		Int("ipv6_prefix", config.Global.Limiter.IPv6Prefix).
		Msg("Limiter enabled")
}

// Fini releases the in-memory limiter state on shutdown.
func Fini() {
	count := resetLimiters()

	log.Info().Int("count", count).Msg("Limiter stopped")
}

// resetLimiters removes every limiter and reports how many were removed.
func resetLimiters() int {
	count := 0

	limiters.Range(func(key, _ any) bool {
		limiters.Delete(key)

		count++

		return true
	})

	return count
}

// checkRateLimit attempts to consume 1 token from the limiterWrapper.
//
// Returns true if the request is allowed.
func checkRateLimit(limiter *limiterWrapper) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := timeNow()
	limiter.lastAccess = now

	return limiter.limiter.AllowN(now, 1)
}

// getOrCreateLimiter returns the limiterWrapper for the given network,
// creating one with the configured rate and burst if none exists.
func getOrCreateLimiter(networkStr string) *limiterWrapper {
	if value, ok := limiters.Load(networkStr); ok {
		if limWrapper, ok := value.(*limiterWrapper); ok {
			return limWrapper
		}
	}

	value, _ := limiters.LoadOrStore(networkStr, newLimiterWrapper(
		config.Global.Limiter.Rate,
		config.Global.Limiter.Burst,
		networkStr,
	))

	limWrapper, ok := value.(*limiterWrapper)
	if !ok {
		// Only limiterWrapper values are ever stored.
		panic("limiter: invalid value in limiter map")
	}

	return limWrapper
}

// newLimiterWrapper creates a new limiterWrapper with the given parameters.
func newLimiterWrapper(rateLim float64, burstLim int, network string) *limiterWrapper {
	return &limiterWrapper{
		limiter:    rate.NewLimiter(rate.Limit(rateLim), burstLim),
		network:    network,
		lastAccess: timeNow(),
	}
}

// cleanupExpiredLimiters removes limiters that haven't been accessed for the expiry duration.
func cleanupExpiredLimiters() int {
	now := timeNow()

	var keysToDelete []any

	// Collect keys to delete in a slice to avoid deleting during Range()
	limiters.Range(func(key, value any) bool {
		limWrapper, ok := value.(*limiterWrapper)
		if !ok {
			keysToDelete = append(keysToDelete, key)

			return true
		}

		limWrapper.mu.Lock()
		lastAccess := limWrapper.lastAccess
		limWrapper.mu.Unlock()

		if now.Sub(lastAccess) > LimiterExpiryDuration {
			keysToDelete = append(keysToDelete, key)
		}

		return true
	})

	for _, key := range keysToDelete {
		limiters.Delete(key)
	}

	if len(keysToDelete) > 0 {
		log.Info().Int("count", len(keysToDelete)).
			Msg("Cleaned up expired limiters")
	}

	return len(keysToDelete)
}
