package render

import (
	"strings"
	"unicode"

	"github.com/vango-dev/utemplates/internal/errors"
	"github.com/vango-dev/utemplates/pkg/node"
)

// SerializeAttributes renders attrs in insertion order. Absent and false
// values are omitted, true renders the bare name, strings render as
// name="escaped". Each attribute is preceded by a single space.
func SerializeAttributes(attrs node.Attrs) (string, error) {
	var b strings.Builder
	if err := writeAttributes(&b, attrs); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeAttributes(b *strings.Builder, attrs node.Attrs) error {
	for _, a := range attrs.Entries() {
		if !validName(a.Key) {
			return errors.New("E301").WithDetail("Attribute name " + quote(a.Key) + " is not a valid token.")
		}
		if s, ok := a.Value.AsString(); ok {
			b.WriteByte(' ')
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(Escape(s))
			b.WriteByte('"')
			continue
		}
		if on, ok := a.Value.AsBool(); ok && on {
			b.WriteByte(' ')
			b.WriteString(a.Key)
		}
	}
	return nil
}

// validName reports whether s can be used as a tag or attribute name.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
		switch r {
		case '<', '>', '"', '\'', '=', '/':
			return false
		}
	}
	return true
}

func quote(s string) string {
	return `"` + s + `"`
}
