// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"net/http"

	"codeberg.org/foodgram/foodgram-web/assets/views"
	"codeberg.org/foodgram/foodgram-web/server/request_context"
)

// ErrorPage renders the themed error page using the status code and error
// recorded in the request context.
func ErrorPage(w http.ResponseWriter, r *http.Request) error {
	ctx := request_context.FromRequest(r)

	statusCode := ctx.StatusCode
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)

	pageData := views.ErrorData{
		Error:      ctx.RequestError,
		StatusCode: statusCode,
	}

	return views.Error(pageData).Render(r.Context(), w)
}

// NotFound marks the request as unmatched. middleware.CatchError replaces
// the empty response with the themed 404 page.
func NotFound(w http.ResponseWriter, _ *http.Request) error {
	w.WriteHeader(http.StatusNotFound)

	return nil
}
