// Package gomp bridges trees and maragu.dev/gomponents.
//
// From embeds gomponents output in a tree as already-safe markup. To turns
// a tree into a gomponents Node so it can be placed inside gomponents
// documents.
//
//	badge, err := gomp.From(html.Span(html.Class("badge"), g.Text("new")))
//	tree := node.Li(node.Text{Value: "Inbox"}, badge)
//
//	page := html.Body(gomp.To(r, tree))
package gomp

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/vango-dev/utemplates/internal/errors"
	"github.com/vango-dev/utemplates/pkg/node"
	"github.com/vango-dev/utemplates/pkg/render"
)

// From renders n and returns the result as SafeText. A nil n yields empty
// SafeText.
func From(n g.Node) (node.SafeText, error) {
	if n == nil {
		return node.SafeText{}, nil
	}
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return node.SafeText{}, errors.New("E303").
			WithDetail("gomponents node failed to render").
			Wrap(err)
	}
	return node.SafeText{Value: b.String()}, nil
}

// FromAll converts every node with From and returns them as a Group.
func FromAll(ns ...g.Node) (node.Group, error) {
	children := make([]node.Node, 0, len(ns))
	for _, n := range ns {
		st, err := From(n)
		if err != nil {
			return node.Group{}, err
		}
		children = append(children, st)
	}
	return node.GroupOf(children...), nil
}

// Component is a gomponents Node backed by a tree.
type Component struct {
	renderer *render.Renderer
	input    any
}

var _ g.Node = Component{}

// To wraps input (anything render.Renderer.Render accepts) as a gomponents
// Node rendered by r. A nil r uses a renderer with no conversions.
func To(r *render.Renderer, input any) Component {
	if r == nil {
		r = render.New()
	}
	return Component{renderer: r, input: input}
}

// Render satisfies gomponents.Node.
func (c Component) Render(w io.Writer) error {
	r := c.renderer
	if r == nil {
		r = render.New()
	}
	return r.RenderTo(w, c.input)
}
