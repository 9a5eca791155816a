// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"codeberg.org/foodgram/foodgram-web/config"
	"codeberg.org/foodgram/foodgram-web/server/middleware"
	"codeberg.org/foodgram/foodgram-web/server/middleware/limiter"
	"codeberg.org/foodgram/foodgram-web/server/middleware/set_request_context"
)

// RegisterMiddleware installs the middleware chain. The first middleware is
// the most outer / first executed one.
func (router *Router) RegisterMiddleware() {
	router.Use(middleware.WithServerTiming)
	router.Use(middleware.NormalizeURL)                // handle trailing slashes
	router.Use(set_request_context.WithRequestContext) // needed for everything else
	router.Use(middleware.SetResponseHeaders)          // all pages need this

	if config.Global.Response.Compression {
		router.Use(middleware.Compress())
	}

	if config.Global.Limiter.Enabled {
		limiter.Init()

		router.Use(limiter.Evaluate)
	}
}
