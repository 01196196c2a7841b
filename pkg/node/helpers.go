package node

import "fmt"

// Textf creates a formatted text node.
func Textf(format string, args ...any) Text {
	return Text{Value: fmt.Sprintf(format, args...)}
}

// Raw creates an unescaped markup node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) SafeText {
	return SafeText{Value: html}
}

// Fragment groups children without a wrapper element.
// Children follow the same rules as El: strings become Text.
func Fragment(children ...any) Group {
	var g Group
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case Node:
			g.Children = append(g.Children, v)
		case []Node:
			g.Children = append(g.Children, v...)
		case []Tag:
			for _, c := range v {
				g.Children = append(g.Children, c)
			}
		case string:
			g.Children = append(g.Children, Text{Value: v})
		default:
			g.Children = append(g.Children, Text{Value: v})
		}
	}
	return g
}

// GroupOf is a Group from nodes.
func GroupOf(nodes ...Node) Group {
	return Group{Children: nodes}
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, n Node) Node {
	if condition {
		return n
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse Node) Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() Node) Node {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, n Node) Node {
	if !condition {
		return n
	}
	return nil
}

// Range maps a slice to nodes, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) Node) []Node {
	result := make([]Node, 0, len(items))
	for i, item := range items {
		if n := fn(item, i); n != nil {
			result = append(result, n)
		}
	}
	return result
}

// Repeat creates n nodes using the given function.
func Repeat(n int, fn func(i int) Node) []Node {
	if n <= 0 {
		return nil
	}
	result := make([]Node, 0, n)
	for i := 0; i < n; i++ {
		if node := fn(i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Nothing returns nil, useful for conditional rendering.
func Nothing() Node {
	return nil
}

// Either returns first if it's not nil, otherwise second.
func Either(first, second Node) Node {
	if first != nil {
		return first
	}
	return second
}
