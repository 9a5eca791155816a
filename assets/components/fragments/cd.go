package fragments

import (
	"context"

	"codeberg.org/foodgram/foodgram-web/server/request_context"
	"codeberg.org/foodgram/foodgram-web/server/template/commondata"
)

// CommonData returns the per-request page data, or a zero value when ctx
// does not come from a request.
func CommonData(ctx context.Context) commondata.PageCommonData {
	return request_context.FromContext(ctx).CommonData
}
