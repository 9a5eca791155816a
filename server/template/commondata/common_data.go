package commondata

import (
	"net/http"

	"codeberg.org/foodgram/foodgram-web/server/utils"
)

// PageCommonData holds request data available to every layout and view.
//
// It is populated once per request and attached to the
// request_context.RequestContext; views read it through fragments.CommonData.
type PageCommonData struct {
	// BaseURL is the origin URL (scheme + host) of the current request.
	BaseURL string

	// CurrentPath is the URL path from request (e.g., "/technologies").
	CurrentPath string

	// FullURL is the complete URL (scheme + host + path) of the request, not including query parameters.
	FullURL string
}

// PopulatePageCommonData fills the PageCommonData struct from the request.
func PopulatePageCommonData(r *http.Request, data *PageCommonData) {
	data.BaseURL = utils.GetOriginFromRequest(r)
	data.CurrentPath = r.URL.Path
	data.FullURL = data.BaseURL + r.URL.Path
}
