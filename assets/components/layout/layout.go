// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package layout provides the page chrome and the layout primitives pages are
composed from.

Main and Container take their content as templ children:

	fragments.With(layout.Main(),
		head.MetaTags(head.Tags{Title: "..."}),
		fragments.With(layout.Container(), layout.Title("...")),
	)
*/
package layout

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/text/language"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"codeberg.org/foodgram/foodgram-web/assets/components/fragments"
	"codeberg.org/foodgram/foodgram-web/assets/components/head"
	"codeberg.org/foodgram/foodgram-web/config"
	"codeberg.org/foodgram/foodgram-web/core/technologies"
)

const (
	defaultSiteName = "Фудграм"
	stylesheetPath  = "/css/main.css"
)

// navLink is an entry in the site header navigation.
type navLink struct {
	Label string
	Path  string
}

var navLinks = []navLink{
	{Label: technologies.Heading, Path: technologies.Path},
}

// Main is the page chrome. It renders a complete HTML document around its
// children: the head with the metadata they declared via head.MetaTags,
// the site header, a <main> element holding the children, and the footer.
func Main() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		currentPath := fragments.CommonData(ctx).CurrentPath

		bodyCtx, collector := head.WithCollector(templ.ClearChildren(ctx))

		var body bytes.Buffer
		if err := children.Render(bodyCtx, &body); err != nil {
			return err
		}

		return document(collector.Tags(), currentPath, body.String()).Render(w)
	})
}

// Container constrains its children to the content width.
func Container() templ.Component {
	return fragments.Wrap(`<div class="container">`, `</div>`)
}

// Title is the top-level heading of a page.
func Title(text string) templ.Component {
	return fragments.Node(h.H1(h.Class("title"), g.Text(text)))
}

func document(tags head.Tags, currentPath, body string) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang(siteLanguage().String()),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.Link(h.Rel("stylesheet"), h.Href(stylesheetPath)),
				tags.Node(),
			),
			h.Body(
				siteHeader(currentPath),
				h.Main(h.Class("main"), g.Raw(body)),
				siteFooter(),
			),
		),
	)
}

func siteHeader(currentPath string) g.Node {
	links := make(g.Group, 0, len(navLinks))

	for _, link := range navLinks {
		class := "nav-link"

		var current g.Node
		if link.Path == currentPath {
			class += " nav-link-active"
			current = g.Attr("aria-current", "page")
		}

		links = append(links, h.A(h.Class(class), h.Href(link.Path), current, g.Text(link.Label)))
	}

	return h.Header(h.Class("header"),
		h.Div(h.Class("container header-inner"),
			h.A(h.Class("brand"), h.Href("/"), g.Text(siteName())),
			h.Nav(h.Class("nav"), links),
		),
	)
}

func siteFooter() g.Node {
	return h.Footer(h.Class("footer"),
		h.Div(h.Class("container footer-inner"),
			h.Span(h.Class("footer-brand"), g.Text(siteName())),
			h.Span(h.Class("footer-version"), g.Text(config.BuildVersion)),
			g.If(config.Global.Instance.RepoURL != "",
				h.A(h.Class("footer-link"), h.Href(config.Global.Instance.RepoURL), g.Text("Исходный код")),
			),
		),
	)
}

func siteName() string {
	if config.Global.Site.Name != "" {
		return config.Global.Site.Name
	}

	return defaultSiteName
}

func siteLanguage() language.Tag {
	if config.Global.Site.Language != language.Und {
		return config.Global.Site.Language
	}

	return language.Russian
}
