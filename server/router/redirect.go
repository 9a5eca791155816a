// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package router

import (
	"net/http"
)

// redirectTo is a helper function to temporarily redirect requests to
// targetPath, preserving the query string.
//
// Example:   /?utm_source=x   ->   /technologies?utm_source=x
func redirectTo(targetPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		target := targetPath
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}

		http.Redirect(w, r, target, http.StatusFound)
	}
}
