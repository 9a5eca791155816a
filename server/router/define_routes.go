// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/pprof"
	"runtime/trace"
	"strconv"
	"time"

	"codeberg.org/foodgram/foodgram-web/config"
	"codeberg.org/foodgram/foodgram-web/core/technologies"
	"codeberg.org/foodgram/foodgram-web/server/assets"
	"codeberg.org/foodgram/foodgram-web/server/middleware"
	"codeberg.org/foodgram/foodgram-web/server/routes"
)

// DefineRoutes sets up all the routes for the application using our custom Router.
//
// Middleware is registered separately in (*Router).RegisterMiddleware.
func (router *Router) DefineRoutes() {
	fileServerHandler := middleware.CatchError(fileServer())

	// Serve specific files from the root of the 'assets' subdirectory.
	router.Handle("GET /robots.txt", fileServerHandler)

	// A wildcard rather than a "/css/" subtree, so that ServeMux never
	// redirects "/css" to "/css/" and fights NormalizeURL.
	router.Handle("GET /css/{file}", fileServerHandler)

	router.HandleFunc("GET "+technologies.Path, middleware.CatchError(routes.TechnologiesPage))

	// Index page route
	// /{$} matches only the root path
	router.HandleFunc("GET /{$}", redirectTo(technologies.Path))

	if config.Global.Development.InDevelopment {
		registerDebugRoutes(router)
	}

	// Everything else gets the themed 404 page.
	router.HandleFunc("/", middleware.CatchError(routes.NotFound))
}

// fileServer serves static files from the embedded assets.
func fileServer() func(w http.ResponseWriter, r *http.Request) error {
	staticContentFS, err := fs.Sub(assets.FS, "assets")
	if err != nil {
		panic(fmt.Errorf("failed to create sub-filesystem for embedded 'assets' directory: %w", err))
	}

	fileServer := http.FileServer(http.FS(staticContentFS))

	return func(w http.ResponseWriter, r *http.Request) error {
		// Using a strong ETag for static files embedded via go:embed
		// ref: https://www.rfc-editor.org/rfc/rfc9110#weak.and.strong.validators
		//
		// Since go:embed requires rebuilding when files change, we use a per-instance
		// cache ID to ensure browsers fetch fresh content after any deployment.
		w.Header().Set("ETag", strconv.Quote(config.Global.Instance.FileServerCacheID))
		fileServer.ServeHTTP(w, r)

		return nil
	}
}

var flightRecorder = trace.NewFlightRecorder(trace.FlightRecorderConfig{MinAge: time.Minute})

func registerDebugRoutes(router *Router) {
	if !flightRecorder.Enabled() {
		if err := flightRecorder.Start(); err != nil {
			panic(err)
		}
	}

	router.HandleFunc("GET /debug/pprof/", pprof.Index)
	router.HandleFunc("GET /debug/pprof/cmdline", pprof.Cmdline)
	router.HandleFunc("GET /debug/pprof/profile", pprof.Profile)
	router.HandleFunc("GET /debug/pprof/symbol", pprof.Symbol)
	router.HandleFunc("GET /debug/pprof/trace", pprof.Trace)
	router.HandleFunc("GET /debug/flight", func(w http.ResponseWriter, r *http.Request) {
		_, _ = flightRecorder.WriteTo(w)
	})
}
