// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package fragments holds small building blocks shared by layouts and views.
*/
package fragments

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// With renders parent with children as its templ children, the same way a
// `@parent() { ... }` block does in a .templ file.
func With(parent templ.Component, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return parent.Render(templ.WithChildren(ctx, templ.Join(children...)), w)
	})
}

// Node adapts a gomponents node to templ.Component.
func Node(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

// Wrap writes open, then the templ children found in ctx, then close.
//
// The children are rendered with their own children cleared so nested
// layouts do not render themselves recursively.
func Wrap(open, closing string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)

		if _, err := io.WriteString(w, open); err != nil {
			return err
		}

		if err := children.Render(templ.ClearChildren(ctx), w); err != nil {
			return err
		}

		_, err := io.WriteString(w, closing)

		return err
	})
}
