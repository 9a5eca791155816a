// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package routes

import (
	"fmt"
	"net/http"

	"codeberg.org/foodgram/foodgram-web/assets/views"
	"codeberg.org/foodgram/foodgram-web/config"
)

// TechnologiesPage is the handler for the /technologies page.
func TechnologiesPage(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d, stale-while-revalidate=%d",
		int(config.Global.HTTPCache.MaxAge.Seconds()),
		int(config.Global.HTTPCache.StaleWhileRevalidate.Seconds())))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	return views.Technologies().Render(r.Context(), w)
}
