// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package utils

import (
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// ParseURL parses an absolute URL and strips any trailing slash from its path.
//
// urlType names the URL in error messages.
func ParseURL(urlStr, urlType string) (*url.URL, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s URL: %w", urlType, err)
	}

	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf(
			"%s URL is invalid: %s. Please specify a complete URL with scheme and host, e.g. https://example.com",
			urlType,
			urlStr)
	}

	parsedURL.Path = strings.TrimSuffix(parsedURL.Path, "/")

	return parsedURL, nil
}

// GetOriginFromRequest returns the origin (scheme + host) from an HTTP request.
//
// X-Forwarded-Proto is only trusted when the direct peer is on a private or
// loopback network; otherwise the scheme follows the TLS connection state.
func GetOriginFromRequest(r *http.Request) string {
	scheme := "http"

	if r.TLS != nil {
		scheme = "https"
	} else if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" && fromTrustedPeer(r) {
		scheme = proto
	}

	return scheme + "://" + r.Host
}

// fromTrustedPeer reports whether the direct peer is on a private or loopback network.
func fromTrustedPeer(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return false
	}

	ip := net.ParseIP(host)

	return ip != nil && (ip.IsPrivate() || ip.IsLoopback())
}
