// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package head lets a page declare its document-head metadata from anywhere
in its component tree.

A page renders MetaTags where it is convenient. The layout that owns the
<head> element attaches a Collector to the render context with
WithCollector, renders the page body first, and then writes the collected
tags into <head>:

	ctx, collector := head.WithCollector(ctx)
	_ = body.Render(ctx, &buf)
	_ = collector.Tags().Node().Render(w)
*/
package head

import (
	"context"
	"io"
	"sync"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Tags is the set of document-level tags a page can declare.
type Tags struct {
	// Title is the document <title>.
	Title string
	// Description is the <meta name="description"> content.
	Description string
	// SocialTitle is the <meta property="og:title"> content.
	SocialTitle string
}

// Merge returns t overlaid with the non-empty fields of other.
func (t Tags) Merge(other Tags) Tags {
	if other.Title != "" {
		t.Title = other.Title
	}

	if other.Description != "" {
		t.Description = other.Description
	}

	if other.SocialTitle != "" {
		t.SocialTitle = other.SocialTitle
	}

	return t
}

// Node renders the tags as head elements. Empty fields are omitted.
func (t Tags) Node() g.Node {
	var nodes g.Group

	if t.Title != "" {
		nodes = append(nodes, h.TitleEl(g.Text(t.Title)))
	}

	if t.Description != "" {
		nodes = append(nodes, h.Meta(h.Name("description"), h.Content(t.Description)))
	}

	if t.SocialTitle != "" {
		nodes = append(nodes, h.Meta(g.Attr("property", "og:title"), h.Content(t.SocialTitle)))
	}

	return nodes
}

// Collector accumulates the tags declared during one render.
type Collector struct {
	mu   sync.Mutex
	tags Tags
}

// Declare merges tags into the collected set; later non-empty fields win.
func (c *Collector) Declare(tags Tags) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tags = c.tags.Merge(tags)
}

// Tags returns the tags collected so far.
func (c *Collector) Tags() Tags {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tags
}

type collectorKeyType struct{}

var collectorKey = collectorKeyType{}

// WithCollector returns a child context carrying a fresh Collector.
func WithCollector(ctx context.Context) (context.Context, *Collector) {
	c := &Collector{}

	return context.WithValue(ctx, collectorKey, c), c
}

// FromContext returns the Collector attached to ctx, or nil.
func FromContext(ctx context.Context) *Collector {
	c, _ := ctx.Value(collectorKey).(*Collector)

	return c
}

// MetaTags declares document-head tags for the page being rendered.
//
// Inside a layout that collects tags it writes nothing in place. Without a
// collector the tags are written inline instead of being dropped.
func MetaTags(tags Tags) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if c := FromContext(ctx); c != nil {
			c.Declare(tags)

			return nil
		}

		return tags.Node().Render(w)
	})
}
