// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

var (
	cleanupMu     sync.Mutex
	lastCleanupAt time.Time
)

// DoCleanup removes expired limiters in the background at most once per
// CleanupInterval. It is called after every evaluated request.
func DoCleanup() {
	now := timeNow()

	cleanupMu.Lock()

	if lastCleanupAt.IsZero() {
		lastCleanupAt = now
		cleanupMu.Unlock()

		return
	}

	if now.Sub(lastCleanupAt) < CleanupInterval {
		cleanupMu.Unlock()

		return
	}

	lastCleanupAt = now
	cleanupMu.Unlock()

	go func() {
		count := cleanupExpiredLimiters()

		log.Debug().Time("start", now).Int("count", count).Dur("dur", time.Since(now)).Msg("limiter cleanup")
	}()
}
