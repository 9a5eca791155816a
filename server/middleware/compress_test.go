// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompress(t *testing.T) {
	t.Parallel()

	compress := Compress()
	large := strings.Repeat("Технологии ", 200)

	tests := []struct {
		name         string
		body         string
		acceptGzip   bool
		wantEncoding string
	}{
		{name: "large body, gzip accepted", body: large, acceptGzip: true, wantEncoding: "gzip"},
		{name: "large body, gzip not accepted", body: large, acceptGzip: false, wantEncoding: ""},
		{name: "small body", body: "ok", acceptGzip: true, wantEncoding: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				_, _ = io.WriteString(w, tt.body)
			})

			req := httptest.NewRequest(http.MethodGet, "/technologies", nil)
			if tt.acceptGzip {
				req.Header.Set("Accept-Encoding", "gzip")
			}

			rr := httptest.NewRecorder()
			Wrap(compress, next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantEncoding, rr.Header().Get("Content-Encoding"))

			body := rr.Body.String()

			if tt.wantEncoding == "gzip" {
				reader, err := gzip.NewReader(rr.Body)
				require.NoError(t, err)

				decoded, err := io.ReadAll(reader)
				require.NoError(t, err)

				body = string(decoded)
			}

			assert.Equal(t, tt.body, body)
		})
	}
}

// TestCompressPerRequestNext checks that one Compress middleware serves
// whichever handler each request is chained to.
func TestCompressPerRequestNext(t *testing.T) {
	t.Parallel()

	compress := Compress()

	for _, want := range []string{"first", "second", "third"} {
		next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, want)
		})

		rr := httptest.NewRecorder()
		Wrap(compress, next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, want, rr.Body.String())
	}
}
