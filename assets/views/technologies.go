// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package views

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"codeberg.org/foodgram/foodgram-web/assets/components/fragments"
	"codeberg.org/foodgram/foodgram-web/assets/components/head"
	"codeberg.org/foodgram/foodgram-web/assets/components/layout"
	"codeberg.org/foodgram/foodgram-web/core/technologies"
)

// Technologies is the page listing the technologies the project is built with.
func Technologies() templ.Component {
	return fragments.With(layout.Main(),
		head.MetaTags(head.Tags{
			Title:       technologies.PageTitle,
			Description: technologies.MetaDescription,
			SocialTitle: technologies.SocialTitle,
		}),
		fragments.With(layout.Container(),
			layout.Title(technologies.Heading),
			fragments.Node(technologiesContent()),
		),
	)
}

func technologiesContent() g.Node {
	return h.Div(h.Class("content"),
		h.Section(
			h.H2(h.Class("subtitle"), g.Text(technologies.Subheading)),
			h.Div(h.Class("text"),
				h.Ul(h.Class("text-list"),
					g.Map(technologies.List(), func(item string) g.Node {
						return h.Li(h.Class("text-item"), g.Text(item))
					}),
				),
			),
		),
	)
}
