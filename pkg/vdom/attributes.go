package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// Identity attributes

// ID sets the id attribute.
func ID(id string) Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) Attr {
	parts := make([]string, 0, len(classes))
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			parts = append(parts, c)
		}
	}
	return attr("class", strings.Join(parts, " "))
}

// StyleAttr sets the style attribute.
func StyleAttr(style string) Attr { return attr("style", style) }

// Data creates a data-* attribute.
// Example: Data("visible", "true") → data-visible="true"
func Data(key, value string) Attr { return attr("data-"+key, value) }

// AttrOf creates an attribute with an arbitrary name, for hx-* and
// similar vendor attributes.
func AttrOf(key string, value any) Attr { return attr(key, value) }

// Accessibility and form attributes

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// Type sets the type attribute.
func Type(t string) Attr { return attr("type", t) }

// Name sets the name attribute.
func Name(name string) Attr { return attr("name", name) }

// Href sets the href attribute.
func Href(url string) Attr { return attr("href", url) }

// Src sets the src attribute.
func Src(url string) Attr { return attr("src", url) }

// Charset sets the charset attribute.
func Charset(cs string) Attr { return attr("charset", cs) }

// Disabled sets the boolean disabled attribute.
func Disabled() Attr { return attr("disabled", true) }

// Hidden sets the boolean hidden attribute.
func Hidden() Attr { return attr("hidden", true) }
