package html

import "github.com/loom-ui/loom/pkg/vdom"

// createElement builds a snapshot element from the given tag and
// arguments. Arguments can be: nil, vdom.Attr, []vdom.Attr,
// *vdom.Node, []*vdom.Node, string (text shorthand).
func createElement(tag string, args []any) *vdom.Node {
	attrs := make([]vdom.Attr, 0, len(args))
	children := make([]*vdom.Node, 0, len(args))

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			// Ignore nil (allows conditional attributes)
			continue

		case vdom.Attr:
			attrs = append(attrs, v)

		case []vdom.Attr:
			attrs = append(attrs, v...)

		case *vdom.Node:
			if v != nil {
				children = append(children, v)
			}

		case []*vdom.Node:
			for _, child := range v {
				if child != nil {
					children = append(children, child)
				}
			}

		case string:
			// Shorthand for text node
			children = append(children, vdom.Text(v))
		}
	}

	return vdom.Elem(tag, vdom.MergeAttrs(attrs), children...)
}

// Text creates a text node.
func Text(content string) *vdom.Node { return vdom.Text(content) }

// Textf creates a formatted text node.
func Textf(format string, args ...any) *vdom.Node { return vdom.Textf(format, args...) }

// Document structure elements

func Html(args ...any) *vdom.Node  { return createElement("html", args) }
func Head(args ...any) *vdom.Node  { return createElement("head", args) }
func Body(args ...any) *vdom.Node  { return createElement("body", args) }
func Title(args ...any) *vdom.Node { return createElement("title", args) }
func Meta(args ...any) *vdom.Node  { return createElement("meta", args) }
func Link(args ...any) *vdom.Node  { return createElement("link", args) }

// Sectioning elements

func Header(args ...any) *vdom.Node  { return createElement("header", args) }
func Footer(args ...any) *vdom.Node  { return createElement("footer", args) }
func Main(args ...any) *vdom.Node    { return createElement("main", args) }
func Nav(args ...any) *vdom.Node     { return createElement("nav", args) }
func Section(args ...any) *vdom.Node { return createElement("section", args) }
func Article(args ...any) *vdom.Node { return createElement("article", args) }
func Aside(args ...any) *vdom.Node   { return createElement("aside", args) }
func H1(args ...any) *vdom.Node      { return createElement("h1", args) }
func H2(args ...any) *vdom.Node      { return createElement("h2", args) }
func H3(args ...any) *vdom.Node      { return createElement("h3", args) }
func H4(args ...any) *vdom.Node      { return createElement("h4", args) }
func H5(args ...any) *vdom.Node      { return createElement("h5", args) }
func H6(args ...any) *vdom.Node      { return createElement("h6", args) }

// Grouping elements

func Div(args ...any) *vdom.Node        { return createElement("div", args) }
func P(args ...any) *vdom.Node          { return createElement("p", args) }
func Span(args ...any) *vdom.Node       { return createElement("span", args) }
func Pre(args ...any) *vdom.Node        { return createElement("pre", args) }
func Blockquote(args ...any) *vdom.Node { return createElement("blockquote", args) }
func Ul(args ...any) *vdom.Node         { return createElement("ul", args) }
func Ol(args ...any) *vdom.Node         { return createElement("ol", args) }
func Li(args ...any) *vdom.Node         { return createElement("li", args) }
func Dl(args ...any) *vdom.Node         { return createElement("dl", args) }
func Dt(args ...any) *vdom.Node         { return createElement("dt", args) }
func Dd(args ...any) *vdom.Node         { return createElement("dd", args) }
func Hr(args ...any) *vdom.Node         { return createElement("hr", args) }
func Figure(args ...any) *vdom.Node     { return createElement("figure", args) }
func Figcaption(args ...any) *vdom.Node { return createElement("figcaption", args) }

// Text-level elements

func A(args ...any) *vdom.Node      { return createElement("a", args) }
func Strong(args ...any) *vdom.Node { return createElement("strong", args) }
func Em(args ...any) *vdom.Node     { return createElement("em", args) }
func B(args ...any) *vdom.Node      { return createElement("b", args) }
func I(args ...any) *vdom.Node      { return createElement("i", args) }
func Small(args ...any) *vdom.Node  { return createElement("small", args) }
func Mark(args ...any) *vdom.Node   { return createElement("mark", args) }
func Sub(args ...any) *vdom.Node    { return createElement("sub", args) }
func Sup(args ...any) *vdom.Node    { return createElement("sup", args) }
func Code(args ...any) *vdom.Node   { return createElement("code", args) }
func Kbd(args ...any) *vdom.Node    { return createElement("kbd", args) }
func Abbr(args ...any) *vdom.Node   { return createElement("abbr", args) }
func Cite(args ...any) *vdom.Node   { return createElement("cite", args) }
func Q(args ...any) *vdom.Node      { return createElement("q", args) }
func Br(args ...any) *vdom.Node     { return createElement("br", args) }

// Form elements

func Form(args ...any) *vdom.Node     { return createElement("form", args) }
func Input(args ...any) *vdom.Node    { return createElement("input", args) }
func Button(args ...any) *vdom.Node   { return createElement("button", args) }
func Select(args ...any) *vdom.Node   { return createElement("select", args) }
func Option(args ...any) *vdom.Node   { return createElement("option", args) }
func Textarea(args ...any) *vdom.Node { return createElement("textarea", args) }
func Label(args ...any) *vdom.Node    { return createElement("label", args) }
func Fieldset(args ...any) *vdom.Node { return createElement("fieldset", args) }
func Legend(args ...any) *vdom.Node   { return createElement("legend", args) }

// Table elements

func Table(args ...any) *vdom.Node { return createElement("table", args) }
func Thead(args ...any) *vdom.Node { return createElement("thead", args) }
func Tbody(args ...any) *vdom.Node { return createElement("tbody", args) }
func Tfoot(args ...any) *vdom.Node { return createElement("tfoot", args) }
func Tr(args ...any) *vdom.Node    { return createElement("tr", args) }
func Th(args ...any) *vdom.Node    { return createElement("th", args) }
func Td(args ...any) *vdom.Node    { return createElement("td", args) }

// Embedded content

func Img(args ...any) *vdom.Node    { return createElement("img", args) }
func Canvas(args ...any) *vdom.Node { return createElement("canvas", args) }
func Svg(args ...any) *vdom.Node    { return createElement("svg", args) }
