package render

import (
	"io"

	"github.com/vango-dev/utemplates/pkg/node"
)

// DefaultTitle is the title of a Page created without one.
const DefaultTitle = "Untitled"

// Page is an HTML5 document skeleton: doctype, html, head with a title,
// and body.
type Page struct {
	// Title is the page title. Defaults to DefaultTitle.
	Title string

	// Lang is the lang attribute of the html element. Omitted when empty.
	Lang string

	// Head contains nodes placed after the title in the head element.
	Head []node.Node

	// Body contains the body content.
	Body []node.Node
}

// NewPage creates a Page with the given title.
func NewPage(title string) *Page {
	return &Page{Title: title}
}

// AddToHead appends nodes to the head section.
func (p *Page) AddToHead(nodes ...node.Node) *Page {
	p.Head = append(p.Head, nodes...)
	return p
}

// AddToBody appends nodes to the body section.
func (p *Page) AddToBody(nodes ...node.Node) *Page {
	p.Body = append(p.Body, nodes...)
	return p
}

// Node returns the page as a node tree.
func (p *Page) Node() node.Node {
	title := p.Title
	if title == "" {
		title = DefaultTitle
	}

	html := node.Html(
		node.AttrIf(p.Lang != "", node.Lang(p.Lang)),
		node.Head(node.Title(title), p.Head),
		node.Body(p.Body),
	)
	return node.GroupOf(node.HTML5Doctype, html)
}

// RenderPage renders a complete HTML document to the given writer.
func (r *Renderer) RenderPage(w io.Writer, p *Page) error {
	return r.RenderTo(w, p.Node())
}
