// Package render serializes node trees into HTML.
//
// The renderer walks a tree once, depth first:
//
//   - Text values go through the conversion pipeline, are turned into
//     strings and escaped
//   - SafeText values are written verbatim
//   - Tags write their name, their attributes in insertion order and,
//     unless void, their children and a closing tag
//   - Groups write their children with no markup of their own
//
// # Basic Usage
//
//	r := render.New(render.WithPipeline(pipeline))
//	html, err := r.Render(node.Div(node.Class("container"), "Hello & welcome"))
//	// <div class="container">Hello &amp; welcome</div>
//
// Render accepts a node, a slice of nodes, or strings. A bare top-level
// string is treated as markup that is already safe and is not escaped.
//
// # Errors
//
// Invalid tag or attribute names, children on a void element such as
// <br>, and failing conversions abort the render. No partial output is
// returned or written.
//
// # Security
//
// All Text content and attribute values are escaped. SafeText (node.Raw)
// bypasses escaping and must only carry trusted markup.
package render
