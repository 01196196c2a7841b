package render

import "strings"

// Escape escapes text for safe inclusion in HTML content and attribute
// values. It replaces & < > " ' with character references in one
// left-to-right pass, so generated references are never re-escaped.
// Escaping already-escaped text double-encodes '&'. All other bytes,
// including invalid UTF-8, are copied through unchanged.
func Escape(s string) string {
	if strings.IndexAny(s, `&<>"'`) < 0 {
		return s
	}

	var buf strings.Builder
	buf.Grow(len(s) + len(s)/8)

	last := 0
	for i := 0; i < len(s); i++ {
		var ref string
		switch s[i] {
		case '&':
			ref = "&amp;"
		case '<':
			ref = "&lt;"
		case '>':
			ref = "&gt;"
		case '"':
			ref = "&quot;"
		case '\'':
			ref = "&#39;"
		default:
			continue
		}
		buf.WriteString(s[last:i])
		buf.WriteString(ref)
		last = i + 1
	}
	buf.WriteString(s[last:])

	return buf.String()
}
