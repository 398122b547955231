package html

import (
	"strconv"
	"strings"

	"github.com/loom-ui/loom/pkg/vdom"
)

// attr creates a plain attribute with the given name and value.
func attr(name, value string) vdom.Attr {
	return vdom.Attr{Name: name, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) vdom.Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) vdom.Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with a
// style element constructor).
func StyleAttr(style string) vdom.Attr { return attr("style", style) }

// TitleAttr sets the title attribute (named to avoid conflict with the
// Title element constructor).
func TitleAttr(title string) vdom.Attr { return attr("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") produces data-id="123".
func Data(key, value string) vdom.Attr { return attr("data-"+key, value) }

// Link and media attributes

// Href sets the href attribute.
func Href(href string) vdom.Attr { return attr("href", href) }

// Src sets the src attribute.
func Src(src string) vdom.Attr { return attr("src", src) }

// Alt sets the alt attribute.
func Alt(alt string) vdom.Attr { return attr("alt", alt) }

// Target sets the target attribute.
func Target(target string) vdom.Attr { return attr("target", target) }

// Form attributes

// Type sets the type attribute.
func Type(t string) vdom.Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(v string) vdom.Attr { return attr("value", v) }

// Name sets the name attribute.
func Name(name string) vdom.Attr { return attr("name", name) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) vdom.Attr { return attr("placeholder", text) }

// For sets the for attribute on a label.
func For(id string) vdom.Attr { return attr("for", id) }

// Disabled sets the disabled attribute.
func Disabled(disabled bool) vdom.Attr { return attr("disabled", strconv.FormatBool(disabled)) }

// Checked sets the checked attribute.
func Checked(checked bool) vdom.Attr { return attr("checked", strconv.FormatBool(checked)) }

// Accessibility attributes

// Role sets the role attribute.
func Role(role string) vdom.Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) vdom.Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) vdom.Attr { return attr("aria-hidden", strconv.FormatBool(hidden)) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) vdom.Attr { return attr("tabindex", strconv.Itoa(index)) }
