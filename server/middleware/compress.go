// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"context"
	"net/http"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog/log"
)

// minCompressSize is the smallest response body worth compressing.
const minCompressSize = 512

// compressNextKey carries the rest of the chain through the shared gzip handler.
type compressNextKey struct{}

// Compress returns a middleware that gzip-encodes responses for clients
// that accept it.
func Compress() Middleware {
	wrapper, err := gzhttp.NewWrapper(gzhttp.MinSize(minCompressSize))
	if err != nil {
		// Only reachable with invalid static options above.
		log.Error().Err(err).Msg("Failed to create compression wrapper, serving uncompressed responses")

		return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
			next.ServeHTTP(w, r)
		}
	}

	// The router hands each request a fresh next, so the gzip handler is built
	// once around a dispatcher that looks next up on the request.
	compressed := wrapper(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next, _ := r.Context().Value(compressNextKey{}).(http.Handler)
		next.ServeHTTP(w, r)
	}))

	return func(w http.ResponseWriter, r *http.Request, next http.Handler) {
		compressed.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), compressNextKey{}, next)))
	}
}
