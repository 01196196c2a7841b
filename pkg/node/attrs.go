package node

type attrKind uint8

const (
	attrAbsent attrKind = iota
	attrString
	attrBool
)

// AttrValue is one of String, Bool or Absent. The zero value is Absent.
type AttrValue struct {
	kind attrKind
	s    string
	b    bool
}

// String returns a string attribute value.
func String(s string) AttrValue { return AttrValue{kind: attrString, s: s} }

// Bool returns a boolean attribute value. True renders as a bare name,
// false omits the attribute.
func Bool(b bool) AttrValue { return AttrValue{kind: attrBool, b: b} }

// Absent returns a value that omits the attribute.
func Absent() AttrValue { return AttrValue{} }

// IsAbsent reports whether v omits its attribute.
func (v AttrValue) IsAbsent() bool { return v.kind == attrAbsent }

// AsString returns the string value and whether v holds one.
func (v AttrValue) AsString() (string, bool) { return v.s, v.kind == attrString }

// AsBool returns the boolean value and whether v holds one.
func (v AttrValue) AsBool() (bool, bool) { return v.b, v.kind == attrBool }

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value AttrValue
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Attrs is an insertion-ordered attribute mapping with unique keys.
// Setting an existing key replaces its value and keeps its position.
// Attrs values are never mutated in place; Set returns a new mapping.
type Attrs struct {
	entries []Attr
}

// NewAttrs builds an Attrs from attrs in order, last write wins.
// Attributes with an empty key are skipped.
func NewAttrs(attrs ...Attr) Attrs {
	var a Attrs
	for _, at := range attrs {
		a = a.Set(at.Key, at.Value)
	}
	return a
}

// Set returns a copy of a with key set to v.
func (a Attrs) Set(key string, v AttrValue) Attrs {
	if key == "" {
		return a
	}
	entries := make([]Attr, len(a.entries), len(a.entries)+1)
	copy(entries, a.entries)
	for i := range entries {
		if entries[i].Key == key {
			entries[i].Value = v
			return Attrs{entries: entries}
		}
	}
	return Attrs{entries: append(entries, Attr{Key: key, Value: v})}
}

// Get returns the value for key.
func (a Attrs) Get(key string) (AttrValue, bool) {
	for _, e := range a.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return AttrValue{}, false
}

// Len returns the number of keys, including Absent ones.
func (a Attrs) Len() int { return len(a.entries) }

// Entries returns the attributes in insertion order. The slice is a copy.
func (a Attrs) Entries() []Attr {
	out := make([]Attr, len(a.entries))
	copy(out, a.entries)
	return out
}
