// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/foodgram/foodgram-web/config"
	"codeberg.org/foodgram/foodgram-web/server/request_context"
)

func TestTechnologiesPage(t *testing.T) {
	config.Global.HTTPCache.MaxAge = 5 * time.Minute
	config.Global.HTTPCache.StaleWhileRevalidate = time.Hour

	t.Cleanup(func() { config.Global = config.ServerConfig{} })

	r := httptest.NewRequest(http.MethodGet, "/technologies", nil)
	r = r.WithContext(request_context.WithRequestContext(r.Context(), r))
	rr := httptest.NewRecorder()

	require.NoError(t, TechnologiesPage(rr, r))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "public, max-age=300, stale-while-revalidate=3600", rr.Header().Get("Cache-Control"))
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	doc, err := goquery.NewDocumentFromReader(rr.Body)
	require.NoError(t, err)

	assert.Equal(t, "Технологии", doc.Find("h1").Text())
	assert.Equal(t, 7, doc.Find("ul.text-list > li").Length())

	// the current page is marked in the navigation
	current, ok := doc.Find(`nav a[aria-current="page"]`).Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/technologies", current)
}

func TestErrorPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
		wantStatus int
		wantTitle  string
	}{
		{name: "not found", statusCode: http.StatusNotFound, wantStatus: http.StatusNotFound, wantTitle: "Not Found"},
		{name: "rate limited", statusCode: http.StatusTooManyRequests, wantStatus: http.StatusTooManyRequests, wantTitle: "Too Many Requests"},
		{name: "success status is an internal error", statusCode: http.StatusOK, wantStatus: http.StatusInternalServerError, wantTitle: "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/missing", nil)
			r = r.WithContext(request_context.WithRequestContext(r.Context(), r))

			ctx := request_context.FromRequest(r)
			ctx.StatusCode = tt.statusCode
			ctx.RequestError = errors.New("boom")

			rr := httptest.NewRecorder()
			require.NoError(t, ErrorPage(rr, r))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))

			doc, err := goquery.NewDocumentFromReader(rr.Body)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTitle, doc.Find("head title").Text())
		})
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()

	require.NoError(t, NotFound(rr, httptest.NewRequest(http.MethodGet, "/missing", nil)))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Zero(t, rr.Body.Len())
}
