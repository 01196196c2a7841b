package node

// Kind is the node variant discriminator.
type Kind uint8

const (
	KindText     Kind = iota // Converted and escaped leaf
	KindSafeText             // Verbatim leaf
	KindTag                  // <div>, <input>, etc.
	KindGroup                // Grouping without wrapper
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindSafeText:
		return "SafeText"
	case KindTag:
		return "Tag"
	case KindGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// Node is an immutable unit of the markup tree. The set of implementations
// is closed: Text, SafeText, Tag and Group. Pointers to them also satisfy
// Node and render as the value they point to; a nil pointer renders nothing.
type Node interface {
	Kind() Kind
	node()
}

// Text is a leaf whose value is converted, stringified and escaped at
// render time.
type Text struct {
	Value any
}

// SafeText is a leaf emitted verbatim. The caller asserts it is valid markup.
type SafeText struct {
	Value string
}

// Tag is a named element with ordered attributes and children.
type Tag struct {
	Name     string
	Attrs    Attrs
	Children []Node
}

// Group bundles siblings without markup of its own.
type Group struct {
	Children []Node
}

func (Text) Kind() Kind     { return KindText }
func (SafeText) Kind() Kind { return KindSafeText }
func (Tag) Kind() Kind      { return KindTag }
func (Group) Kind() Kind    { return KindGroup }

func (Text) node()     {}
func (SafeText) node() {}
func (Tag) node()      {}
func (Group) node()    {}

// IsVoid reports whether t is a void element.
func (t Tag) IsVoid() bool {
	return IsVoidElement(t.Name)
}

// WithAttr returns a copy of t with key set to v.
func (t Tag) WithAttr(key string, v AttrValue) Tag {
	t.Attrs = t.Attrs.Set(key, v)
	return t
}

// WithChildren returns a copy of t with children appended.
func (t Tag) WithChildren(children ...Node) Tag {
	merged := make([]Node, 0, len(t.Children)+len(children))
	merged = append(merged, t.Children...)
	t.Children = append(merged, children...)
	return t
}
