// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"maps"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog/log"

	"codeberg.org/foodgram/foodgram-web/config"
	"codeberg.org/foodgram/foodgram-web/core/audit"
	"codeberg.org/foodgram/foodgram-web/server/request_context"
	"codeberg.org/foodgram/foodgram-web/server/routes"
)

// CatchError wraps HTTP handlers that return an error, providing centralized error handling,
// response buffering, and request logging.
//
// The handler's output is buffered using an httptest.ResponseRecorder, and any
// error it returns is stored in the request context. After the handler runs:
//   - If the handler returned an error without writing an HTTP error status
//     code (i.e., status < 400), it's treated as an unhandled internal error.
//     The buffered response is discarded, and a 500 error page is rendered.
//   - If the handler wrote a 404 Not Found status, the buffered response is
//     also discarded and replaced with the themed error page.
//   - In all other cases (e.g., a successful response), the buffered response
//     is written to the client.
//
// Finally, the completed request is logged via the audit package.
func CatchError(handler func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := request_context.FromRequest(r)

		span := audit.Span{
			RequestID: ctx.RequestID,
			Method:    r.Method,
			URL:       r.URL.String(),
		}

		r = r.WithContext(span.Begin(r.Context()))

		recorder := httptest.NewRecorder()

		err := handler(recorder, r)

		ctx.RequestError = err

		switch {
		case err != nil && recorder.Code < http.StatusBadRequest,
			err != nil && recorder.Code >= http.StatusInternalServerError:
			ctx.StatusCode = http.StatusInternalServerError
			recorder = renderErrorPage(r)
		case recorder.Code == http.StatusNotFound:
			ctx.StatusCode = http.StatusNotFound
			recorder = renderErrorPage(r)
		default:
			ctx.StatusCode = recorder.Code
		}

		span.End()

		maps.Copy(w.Header(), recorder.Header())
		w.WriteHeader(recorder.Code)

		span.StatusCode = ctx.StatusCode
		span.Size = recorder.Body.Len()
		span.Error = ctx.RequestError

		if _, err := recorder.Body.WriteTo(w); err != nil {
			log.Err(err).Msg("Failed to write response body")
		}

		// Log the application response if not excluded.
		if !config.Global.ShouldSkipServerLogging(r.URL.Path) {
			span.Log()
		}
	}
}

// renderErrorPage renders the themed error page for the status code stored
// in the request context.
func renderErrorPage(r *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()

	if err := routes.ErrorPage(recorder, r); err != nil {
		log.Err(err).
			Str("request_id", request_context.FromRequest(r).RequestID).
			Msg("Failed to render error page")
	}

	return recorder
}
