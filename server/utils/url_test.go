// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils_test

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"

	"codeberg.org/foodgram/foodgram-web/server/utils"
)

func TestParseURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		urlStr   string
		urlType  string
		wantErr  bool
		expected string
	}{
		{"Valid URL", "https://example.com", "Test", false, "https://example.com"},
		{"Valid URL with path", "https://example.com/path", "Test", false, "https://example.com/path"},
		{"Missing scheme", "example.com", "Test", true, ""},
		{"Missing host", "https://", "Test", true, ""},
		{"Trailing slash", "https://example.com/", "Test", false, "https://example.com"},
		{"Path with trailing slash", "https://example.com/path/", "Test", false, "https://example.com/path"},
		{"Empty URL", "", "Test", true, ""},
		{"URL with query params", "https://example.com/path?q=test", "Test", false, "https://example.com/path?q=test"},
		{"URL with fragment", "https://example.com/path#fragment", "Test", false, "https://example.com/path#fragment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := utils.ParseURL(tt.urlStr, tt.urlType)
			if (err != nil) != tt.wantErr {
				t.Errorf("utils.ParseURL() error = %v, wantErr %v", err, tt.wantErr)

				return
			}

			if !tt.wantErr {
				if got.String() != tt.expected {
					t.Errorf("utils.ParseURL() got = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestGetOriginFromRequest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		proto      string
		tls        bool
		expected   string
	}{
		{"Plain HTTP", "203.0.113.7:4000", "", false, "http://foodgram.test"},
		{"Direct TLS", "203.0.113.7:4000", "", true, "https://foodgram.test"},
		{"Forwarded proto from private proxy", "10.0.0.2:4000", "https", false, "https://foodgram.test"},
		{"Forwarded proto from loopback proxy", "127.0.0.1:4000", "https", false, "https://foodgram.test"},
		{"Forwarded proto from public peer is ignored", "203.0.113.7:4000", "https", false, "http://foodgram.test"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "http://foodgram.test/technologies", nil)
			r.RemoteAddr = tt.remoteAddr

			if tt.proto != "" {
				r.Header.Set("X-Forwarded-Proto", tt.proto)
			}

			if tt.tls {
				r.TLS = &tls.ConnectionState{}
			}

			if got := utils.GetOriginFromRequest(r); got != tt.expected {
				t.Errorf("utils.GetOriginFromRequest() = %v, want %v", got, tt.expected)
			}
		})
	}
}
