package node

import "strings"

// Doctype returns a <!DOCTYPE decl> declaration.
func Doctype(decl string) SafeText {
	return SafeText{Value: "<!DOCTYPE " + decl + ">"}
}

// Document type declarations.
var (
	HTML5Doctype        = Doctype("html")
	HTML401Strict       = Doctype(`HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"`)
	HTML401Transitional = Doctype(`HTML PUBLIC "-//W3C//DTD HTML 4.01 Transitional//EN" "http://www.w3.org/TR/html4/loose.dtd"`)
	XHTML10Strict       = Doctype(`html PUBLIC "-//W3C//DTD XHTML 1.0 Strict//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd"`)
	XHTML10Transitional = Doctype(`html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd"`)
	XHTML11             = Doctype(`html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd"`)
	HTML32              = Doctype(`HTML PUBLIC "-//W3C//DTD HTML 3.2 Final//EN"`)
)

// Comment returns an HTML comment. Any "--" in text is split so the
// comment cannot be closed early, and a trailing "-" or a leading ">" or
// "->" is padded with a space.
func Comment(text string) SafeText {
	for strings.Contains(text, "--") {
		text = strings.ReplaceAll(text, "--", "- -")
	}
	if strings.HasPrefix(text, ">") || strings.HasPrefix(text, "->") {
		text = " " + text
	}
	if strings.HasSuffix(text, "-") {
		text += " "
	}
	return SafeText{Value: "<!--" + text + "-->"}
}
