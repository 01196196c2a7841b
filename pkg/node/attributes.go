package node

import (
	"strconv"
	"strings"
)

// attr creates a string Attr with the given key and value.
func attr(key, value string) Attr {
	return Attr{Key: key, Value: String(value)}
}

// flag creates a boolean Attr that renders as a bare name.
func flag(key string) Attr {
	return Attr{Key: key, Value: Bool(true)}
}

// A_ builds an arbitrary attribute. Accepted values are string, bool,
// AttrValue and nil (Absent); other values are formatted with strconv when
// numeric.
func A_(key string, value any) Attr {
	switch v := value.(type) {
	case nil:
		return Attr{Key: key}
	case AttrValue:
		return Attr{Key: key, Value: v}
	case string:
		return attr(key, v)
	case bool:
		return Attr{Key: key, Value: Bool(v)}
	case int:
		return attr(key, strconv.Itoa(v))
	case int64:
		return attr(key, strconv.FormatInt(v, 10))
	case float64:
		return attr(key, strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return Attr{Key: key}
	}
}

// Global attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
// With no classes the attribute is Absent.
func Class(classes ...string) Attr {
	if len(classes) == 0 {
		return Attr{Key: "class"}
	}
	return attr("class", strings.Join(classes, " "))
}

// ClassIf returns the class attribute if condition is true.
func ClassIf(condition bool, class string) Attr {
	if !condition {
		return Attr{}
	}
	return attr("class", class)
}

// Style sets the style attribute.
func Style(style string) Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with Title element).
func TitleAttr(title string) Attr { return attr("title", title) }

// Lang sets the lang attribute.
func Lang(lang string) Attr { return attr("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) Attr { return attr("dir", dir) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", strconv.Itoa(index)) }

// Hidden sets the hidden attribute.
func Hidden() Attr { return flag("hidden") }

// Data creates a data-* attribute.
// Example: Data("id", "123") → data-id="123"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Aria creates an aria-* attribute.
func Aria(key, value string) Attr { return attr("aria-"+key, value) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute. ARIA states are enumerated
// strings, so the value renders as "true" or "false".
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", strconv.FormatBool(hidden)) }

// Link attributes

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Target sets the target attribute.
func Target(target string) Attr { return attr("target", target) }

// Rel sets the rel attribute.
func Rel(rel string) Attr { return attr("rel", rel) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) Attr { return attr("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) Attr { return attr("height", strconv.Itoa(h)) }

// Form attributes

func Name(name string) Attr          { return attr("name", name) }
func Value(value string) Attr        { return attr("value", value) }
func Type(t string) Attr             { return attr("type", t) }
func Placeholder(text string) Attr   { return attr("placeholder", text) }
func For(id string) Attr             { return attr("for", id) }
func Action(url string) Attr         { return attr("action", url) }
func Method(method string) Attr      { return attr("method", method) }
func Autocomplete(value string) Attr { return attr("autocomplete", value) }
func Pattern(pattern string) Attr    { return attr("pattern", pattern) }
func MinLength(n int) Attr           { return attr("minlength", strconv.Itoa(n)) }
func MaxLength(n int) Attr           { return attr("maxlength", strconv.Itoa(n)) }
func Rows(n int) Attr                { return attr("rows", strconv.Itoa(n)) }
func Cols(n int) Attr                { return attr("cols", strconv.Itoa(n)) }
func Colspan(n int) Attr             { return attr("colspan", strconv.Itoa(n)) }
func Rowspan(n int) Attr             { return attr("rowspan", strconv.Itoa(n)) }
func Charset(charset string) Attr    { return attr("charset", charset) }
func Content(content string) Attr    { return attr("content", content) }
func HttpEquiv(value string) Attr    { return attr("http-equiv", value) }

// Boolean attributes

func Disabled() Attr  { return flag("disabled") }
func Readonly() Attr  { return flag("readonly") }
func Required() Attr  { return flag("required") }
func Checked() Attr   { return flag("checked") }
func Selected() Attr  { return flag("selected") }
func Multiple() Attr  { return flag("multiple") }
func Autofocus() Attr { return flag("autofocus") }
func Open() Attr      { return flag("open") }
func Defer_() Attr    { return flag("defer") }
func Async() Attr     { return flag("async") }

// AttrIf returns the attribute if condition is true, an empty Attr otherwise.
func AttrIf(condition bool, a Attr) Attr {
	if condition {
		return a
	}
	return Attr{}
}
