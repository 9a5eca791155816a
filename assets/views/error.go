// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"codeberg.org/foodgram/foodgram-web/assets/components/fragments"
	"codeberg.org/foodgram/foodgram-web/assets/components/head"
	"codeberg.org/foodgram/foodgram-web/assets/components/layout"
	"codeberg.org/foodgram/foodgram-web/config"
)

// ErrorData is the data used to render the error page.
type ErrorData struct {
	Title      string
	StatusCode int
	Error      error
}

var errorMessages = map[int]string{
	http.StatusNotFound:            "Страница не найдена.",
	http.StatusTooManyRequests:     "Слишком много запросов. Попробуйте позже.",
	http.StatusInternalServerError: "Что-то пошло не так. Попробуйте позже.",
}

// Error renders a themed error page for data.StatusCode.
//
// The underlying error is only shown in development.
func Error(data ErrorData) templ.Component {
	title := data.Title
	if title == "" {
		title = http.StatusText(data.StatusCode)
	}

	message, ok := errorMessages[data.StatusCode]
	if !ok {
		message = http.StatusText(data.StatusCode)
	}

	showDetails := data.Error != nil && config.Global.Development.InDevelopment

	return fragments.With(layout.Main(),
		head.MetaTags(head.Tags{Title: title}),
		fragments.With(layout.Container(),
			layout.Title(strconv.Itoa(data.StatusCode)),
			fragments.Node(h.Div(h.Class("content"),
				h.P(h.Class("text"), g.Text(message)),
				g.If(showDetails, h.Pre(h.Class("error-details"), g.Text(errorText(data.Error)))),
			)),
		),
	)
}

func errorText(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}
