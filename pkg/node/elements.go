package node

// voidElements are elements that cannot have children.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// El creates a Tag with the given name and arguments.
// Arguments can be: nil, Attr, []Attr, Attrs, Node, []Node, []Tag, string.
// Strings become Text children; any other value becomes a Text child whose
// value goes through the conversion pipeline at render time.
func El(name string, args ...any) Tag {
	t := Tag{Name: name}
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional children and attributes)
			continue
		case Attr:
			if !v.IsEmpty() {
				t.Attrs = t.Attrs.Set(v.Key, v.Value)
			}
		case []Attr:
			for _, a := range v {
				if !a.IsEmpty() {
					t.Attrs = t.Attrs.Set(a.Key, a.Value)
				}
			}
		case Attrs:
			for _, a := range v.entries {
				t.Attrs = t.Attrs.Set(a.Key, a.Value)
			}
		case Node:
			t.Children = append(t.Children, v)
		case []Node:
			t.Children = append(t.Children, v...)
		case []Tag:
			for _, c := range v {
				t.Children = append(t.Children, c)
			}
		case string:
			t.Children = append(t.Children, Text{Value: v})
		default:
			t.Children = append(t.Children, Text{Value: v})
		}
	}
	return t
}

// Document structure elements

func Html(args ...any) Tag  { return El("html", args...) }
func Head(args ...any) Tag  { return El("head", args...) }
func Body(args ...any) Tag  { return El("body", args...) }
func Title(args ...any) Tag { return El("title", args...) }
func Meta(args ...any) Tag  { return El("meta", args...) }
func Link(args ...any) Tag  { return El("link", args...) }
func Base(args ...any) Tag  { return El("base", args...) }

// Content sectioning elements

func Header(args ...any) Tag  { return El("header", args...) }
func Footer(args ...any) Tag  { return El("footer", args...) }
func Main(args ...any) Tag    { return El("main", args...) }
func Nav(args ...any) Tag     { return El("nav", args...) }
func Section(args ...any) Tag { return El("section", args...) }
func Article(args ...any) Tag { return El("article", args...) }
func Aside(args ...any) Tag   { return El("aside", args...) }
func Address(args ...any) Tag { return El("address", args...) }
func H1(args ...any) Tag      { return El("h1", args...) }
func H2(args ...any) Tag      { return El("h2", args...) }
func H3(args ...any) Tag      { return El("h3", args...) }
func H4(args ...any) Tag      { return El("h4", args...) }
func H5(args ...any) Tag      { return El("h5", args...) }
func H6(args ...any) Tag      { return El("h6", args...) }

// Text content elements

func Div(args ...any) Tag        { return El("div", args...) }
func P(args ...any) Tag          { return El("p", args...) }
func Span(args ...any) Tag       { return El("span", args...) }
func Pre(args ...any) Tag        { return El("pre", args...) }
func Blockquote(args ...any) Tag { return El("blockquote", args...) }
func Ul(args ...any) Tag         { return El("ul", args...) }
func Ol(args ...any) Tag         { return El("ol", args...) }
func Li(args ...any) Tag         { return El("li", args...) }
func Dl(args ...any) Tag         { return El("dl", args...) }
func Dt(args ...any) Tag         { return El("dt", args...) }
func Dd(args ...any) Tag         { return El("dd", args...) }
func Hr(args ...any) Tag         { return El("hr", args...) }
func Figure(args ...any) Tag     { return El("figure", args...) }
func Figcaption(args ...any) Tag { return El("figcaption", args...) }

// Inline text semantics

func A(args ...any) Tag      { return El("a", args...) }
func Strong(args ...any) Tag { return El("strong", args...) }
func Em(args ...any) Tag     { return El("em", args...) }
func B(args ...any) Tag      { return El("b", args...) }
func I(args ...any) Tag      { return El("i", args...) }
func U(args ...any) Tag      { return El("u", args...) }
func S(args ...any) Tag      { return El("s", args...) }
func Small(args ...any) Tag  { return El("small", args...) }
func Mark(args ...any) Tag   { return El("mark", args...) }
func Sub(args ...any) Tag    { return El("sub", args...) }
func Sup(args ...any) Tag    { return El("sup", args...) }
func Code(args ...any) Tag   { return El("code", args...) }
func Kbd(args ...any) Tag    { return El("kbd", args...) }
func Abbr(args ...any) Tag   { return El("abbr", args...) }
func Time_(args ...any) Tag  { return El("time", args...) }
func Cite(args ...any) Tag   { return El("cite", args...) }
func Q(args ...any) Tag      { return El("q", args...) }
func Br(args ...any) Tag     { return El("br", args...) }
func Wbr(args ...any) Tag    { return El("wbr", args...) }

// Embedded content

func Img(args ...any) Tag     { return El("img", args...) }
func Iframe(args ...any) Tag  { return El("iframe", args...) }
func Embed(args ...any) Tag   { return El("embed", args...) }
func Object(args ...any) Tag  { return El("object", args...) }
func Param(args ...any) Tag   { return El("param", args...) }
func Video(args ...any) Tag   { return El("video", args...) }
func Audio(args ...any) Tag   { return El("audio", args...) }
func Source(args ...any) Tag  { return El("source", args...) }
func Track(args ...any) Tag   { return El("track", args...) }
func Picture(args ...any) Tag { return El("picture", args...) }
func Canvas(args ...any) Tag  { return El("canvas", args...) }
func Area(args ...any) Tag    { return El("area", args...) }
func Map_(args ...any) Tag    { return El("map", args...) }

// Table elements

func Table(args ...any) Tag    { return El("table", args...) }
func Caption(args ...any) Tag  { return El("caption", args...) }
func Thead(args ...any) Tag    { return El("thead", args...) }
func Tbody(args ...any) Tag    { return El("tbody", args...) }
func Tfoot(args ...any) Tag    { return El("tfoot", args...) }
func Tr(args ...any) Tag       { return El("tr", args...) }
func Th(args ...any) Tag       { return El("th", args...) }
func Td(args ...any) Tag       { return El("td", args...) }
func Colgroup(args ...any) Tag { return El("colgroup", args...) }
func Col(args ...any) Tag      { return El("col", args...) }

// Form elements

func Form(args ...any) Tag     { return El("form", args...) }
func Label(args ...any) Tag    { return El("label", args...) }
func Input(args ...any) Tag    { return El("input", args...) }
func Button(args ...any) Tag   { return El("button", args...) }
func Select(args ...any) Tag   { return El("select", args...) }
func Option(args ...any) Tag   { return El("option", args...) }
func Optgroup(args ...any) Tag { return El("optgroup", args...) }
func Textarea(args ...any) Tag { return El("textarea", args...) }
func Fieldset(args ...any) Tag { return El("fieldset", args...) }
func Legend(args ...any) Tag   { return El("legend", args...) }
func Output(args ...any) Tag   { return El("output", args...) }
func Progress(args ...any) Tag { return El("progress", args...) }
func Meter(args ...any) Tag    { return El("meter", args...) }

// Interactive, scripting and metadata elements

func Details(args ...any) Tag  { return El("details", args...) }
func Summary(args ...any) Tag  { return El("summary", args...) }
func Dialog(args ...any) Tag   { return El("dialog", args...) }
func Script(args ...any) Tag   { return El("script", args...) }
func Noscript(args ...any) Tag { return El("noscript", args...) }
func StyleEl(args ...any) Tag  { return El("style", args...) }
func Template(args ...any) Tag { return El("template", args...) }
