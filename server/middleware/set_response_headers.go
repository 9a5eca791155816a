// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"strings"
	"sync/atomic"

	"codeberg.org/foodgram/foodgram-web/config"
)

var (
	// baseHeaders defines the default headers to be set in responses.
	//
	// Foodgram-Version and Foodgram-Revision are added dynamically in SetResponseHeaders.
	//
	// NOTE: we intentionally don't set CORP or HSTS headers.
	baseHeaders = http.Header{
		"Referrer-Policy":         {"no-referrer"},
		"X-Frame-Options":         {"DENY"},
		"X-Content-Type-Options":  {"nosniff"},
		"Permissions-Policy":      {strings.Join(defaultPermissionsPolicy, ", ")},
		"Content-Security-Policy": {strings.Join(baseCSP, "; ") + ";"},
	}

	// baseCSP defines the CSP directives. Pages are plain HTML and CSS served
	// from this origin, so nothing else is allowed.
	baseCSP = []string{
		"base-uri 'self'",
		"default-src 'self'",
		"style-src 'self'",
		"font-src 'self'",
		"img-src 'self' data:",
		"script-src 'none'",
		"connect-src 'self'",
		"form-action 'self'",
		"frame-ancestors 'none'",
	}

	// defaultPermissionsPolicy defines the default Permissions-Policy header.
	defaultPermissionsPolicy = []string{
		"accelerometer=()",
		"ambient-light-sensor=()",
		"camera=()",
		"display-capture=()",
		"encrypted-media=()",
		"geolocation=()",
		"gyroscope=()",
		"magnetometer=()",
		"microphone=()",
		"midi=()",
		"payment=()",
		"publickey-credentials-get=()",
		"screen-wake-lock=()",
		"sync-xhr=()",
		"usb=()",
		"xr-spatial-tracking=()",
	}
)

// SetResponseHeaders adds default headers to HTTP responses.
//
// Handlers may override Cache-Control; the value set here is the fallback.
func SetResponseHeaders(w http.ResponseWriter, r *http.Request, next http.Handler) {
	headers := w.Header()

	maps.Insert(headers, maps.All(baseHeaders))

	if config.Global.Development.InDevelopment {
		invalidateCacheInDevelopment(headers)
	}

	setCacheControl(headers, r.URL.Path)

	headers.Set("Foodgram-Version", config.BuildVersion)

	if revision := config.Global.Build.Revision(); revision != "" {
		headers.Set("Foodgram-Revision", revision)
	}

	next.ServeHTTP(w, r)
}

// firstDevResponse is set once the first development response cleared the
// browser cache.
var firstDevResponse atomic.Bool

// invalidateCacheInDevelopment asks the browser to clear its cache once per
// process, so stylesheet edits show up after a restart.
func invalidateCacheInDevelopment(headers http.Header) {
	if firstDevResponse.CompareAndSwap(false, true) {
		headers.Set("Clear-Site-Data", `"cache"`)
	}
}

// setCacheControl sets appropriate cache control headers for static assets.
func setCacheControl(headers http.Header, path string) {
	// Default to only storing in the browser cache and forcing revalidation
	cacheDuration := "private, no-cache"

	// Stylesheets get a moderate cache time (1 week)
	if strings.HasPrefix(path, "/css/") {
		cacheDuration = "max-age=604800"
	}

	// Text files (robots.txt) get moderate caching (1 day)
	if strings.HasSuffix(path, ".txt") {
		cacheDuration = "max-age=86400"
	}

	headers.Set("Cache-Control", cacheDuration)
}
