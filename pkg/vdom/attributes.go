package vdom

import "strings"

// attr creates an Attr with the given key and value.
func attr(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}

// ID sets the id property.
func ID(id string) Attr { return attr("id", id) }

// Class sets the className property, joining multiple classes with spaces.
func Class(classes ...string) Attr { return attr("className", strings.Join(classes, " ")) }

// Style sets the style mapping. Entries merge onto the host node's
// style one property at a time.
func Style(style map[string]string) Attr { return attr("style", style) }

// Value sets the value property.
func Value(v string) Attr { return attr("value", v) }

// Placeholder sets the placeholder property.
func Placeholder(p string) Attr { return attr("placeholder", p) }

// Type sets the type property (input elements).
func Type(t string) Attr { return attr("type", t) }

// Name sets the name property.
func Name(n string) Attr { return attr("name", n) }

// Href sets the href property.
func Href(href string) Attr { return attr("href", href) }

// Src sets the src property.
func Src(src string) Attr { return attr("src", src) }

// Checked sets the checked property.
func Checked(checked bool) Attr { return attr("checked", checked) }

// Disabled sets the disabled property.
func Disabled(disabled bool) Attr { return attr("disabled", disabled) }

// Title sets the title property.
func Title(title string) Attr { return attr("title", title) }

// Data creates a data-* attribute.
// Example: Data("id", "123") sets data-id="123".
func Data(key, value string) Attr { return attr("data-"+key, value) }

// Role sets the role attribute.
func Role(role string) Attr { return attr("role", role) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) Attr { return attr("aria-hidden", hidden) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) Attr { return attr("tabindex", index) }
