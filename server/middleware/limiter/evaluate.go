// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package limiter

import (
	"errors"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"codeberg.org/foodgram/foodgram-web/config"
	"codeberg.org/foodgram/foodgram-web/server/request_context"
	"codeberg.org/foodgram/foodgram-web/server/routes"
)

// Rate limiting header names.
//
// ref: https://www.ietf.org/archive/id/draft-polli-ratelimit-headers-02.html
const (
	HeaderRateLimitLimit     string = "RateLimit-Limit" // This is intended.
	HeaderRateLimitRemaining string = "RateLimit-Remaining"
	HeaderRateLimitReset     string = "RateLimit-Reset"
)

var errRateLimited = errors.New("rate limit exceeded")

// excludedPaths won't have traffic filtered by the limiter middleware.
var excludedPaths = []string{
	"/css/",
	"/robots.txt",
}

// Evaluate is the entrypoint to the limiter middleware.
//
// Requests for static files are never limited. Requests whose client IP
// cannot be determined are let through.
func Evaluate(w http.ResponseWriter, r *http.Request, next http.Handler) {
	defer DoCleanup()

	if isExcludedPath(r.URL.Path) {
		next.ServeHTTP(w, r)

		return
	}

	clientIP := net.ParseIP(getClientIP(r))
	if clientIP == nil {
		next.ServeHTTP(w, r)

		return
	}

	network := getNetwork(clientIP, config.Global.Limiter.IPv4Prefix, config.Global.Limiter.IPv6Prefix).String()
	limiter := getOrCreateLimiter(network)

	allowed := checkRateLimit(limiter)

	addRateLimitHeaders(w, limiter)

	if !allowed {
		log.Warn().
			Str("ip", clientIP.String()).
			Str("network", network).
			Msg("Request blocked, exceeded rate limit")

		ctx := request_context.FromRequest(r)
		ctx.StatusCode = http.StatusTooManyRequests
		ctx.RequestError = errRateLimited

		if err := routes.ErrorPage(w, r); err != nil {
			log.Err(err).Msg("Failed to render rate limit page")
		}

		return
	}

	next.ServeHTTP(w, r)
}

func isExcludedPath(path string) bool {
	for _, prefix := range excludedPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

// addRateLimitHeaders adds rate limiting information to the response headers.
func addRateLimitHeaders(w http.ResponseWriter, limWrapper *limiterWrapper) {
	limWrapper.mu.Lock()
	defer limWrapper.mu.Unlock()

	limiter := limWrapper.limiter

	// Get current tokens and limit info.
	currentTokens := limiter.TokensAt(timeNow())
	burst := limiter.Burst()
	limit := limiter.Limit()

	// Calculate tokens remaining (can't exceed burst or go below zero).
	remaining := max(0, int(math.Min(float64(burst), currentTokens)))

	// Calculate seconds until full bucket replenishment (if not already full).
	var resetTime int64

	if currentTokens < float64(burst) && limit > 0 {
		tokenDeficit := float64(burst) - currentTokens
		resetTime = int64(math.Ceil(tokenDeficit / float64(limit)))
	}

	resetStr := strconv.FormatInt(resetTime, 10)

	w.Header().Set(HeaderRateLimitLimit, strconv.Itoa(burst))
	w.Header().Set(HeaderRateLimitRemaining, strconv.Itoa(remaining))
	w.Header().Set(HeaderRateLimitReset, resetStr)

	// Add Retry-After header if rate limited (remaining = 0).
	if remaining == 0 {
		w.Header().Set("Retry-After", resetStr)
	}
}
