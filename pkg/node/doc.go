// Package node provides the markup tree model for utemplates.
//
// A tree is built from four immutable node variants:
//
//   - Text: a leaf value, converted and escaped at render time
//   - SafeText: a leaf emitted verbatim (already valid markup)
//   - Tag: a named element with ordered attributes and children
//   - Group: a transparent list of siblings
//
// The Node interface is sealed; the renderer switches over exactly these
// four types.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1("Title"),
//	    P("Content & more"),
//	    Input(Type("text"), Disabled()),
//	)
//
// Attributes keep insertion order. Setting a key twice keeps the first
// position and the last value.
package node
