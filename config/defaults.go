// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import "time"

const (
	// Default HTTP cache max age in minutes.
	defaultHTTPCacheMaxAgeMinutes = 5
	// Default HTTP cache stale while revalidate in minutes.
	defaultHTTPCacheStaleWhileRevalidateMinutes = 60

	// Default limiter refill rate, in tokens per second.
	defaultLimiterRate = 2.0
	// Default limiter bucket size.
	defaultLimiterBurst = 120
)

// SetDefaults populates the configuration with default values.
func (cfg *ServerConfig) SetDefaults() {
	// Basic.Host and Basic.Port are filled in by validateListener when no
	// Unix socket is configured.

	cfg.Site.Name = "Фудграм"
	cfg.Site.RawLanguage = "ru"

	cfg.HTTPCache.MaxAge = defaultHTTPCacheMaxAgeMinutes * time.Minute
	cfg.HTTPCache.StaleWhileRevalidate = defaultHTTPCacheStaleWhileRevalidateMinutes * time.Minute

	cfg.Response.Compression = true

	cfg.Instance.RepoURL = "https://codeberg.org/foodgram/foodgram-web"

	cfg.Log.Level = "info"
	cfg.Log.Outputs = []string{"/dev/stderr"}
	cfg.Log.Format = "console"

	cfg.Limiter.Enabled = false
	cfg.Limiter.Rate = defaultLimiterRate
	cfg.Limiter.Burst = defaultLimiterBurst
	cfg.Limiter.IPv4Prefix = 24
	cfg.Limiter.IPv6Prefix = 48
}
