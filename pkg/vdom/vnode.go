package vdom

import (
	"reflect"
	"strings"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement   Kind = iota // <div>, <button>, etc.
	KindText                  // Plain text node
	KindFragment              // Grouping without wrapper
	KindComponent             // Function component
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// Props holds attributes, event handlers, and the style map.
// Component children are carried under the "children" key.
type Props map[string]any

// ComponentFunc renders a description node from props. The function
// value itself stands in for the component type: two nodes describe
// the same component only when they reference the same function.
type ComponentFunc func(Props) *VNode

// VNode is a description-tree node. Nodes are immutable by convention
// and recreated on every render; the runtime never mutates them.
type VNode struct {
	Kind     Kind
	Tag      string        // Element tag name (e.g., "div")
	Props    Props         // Attributes and event handlers
	Children []*VNode      // Child nodes (elements and fragments)
	Key      string        // Reconciliation key
	Text     string        // For KindText
	Fn       ComponentFunc // For KindComponent
}

// SameType reports whether two nodes describe the same thing for
// reconciliation: same kind, same tag for elements, and the same
// render function for components.
func SameType(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindElement:
		return a.Tag == b.Tag
	case KindComponent:
		return FuncID(a.Fn) == FuncID(b.Fn)
	}
	return true
}

// FuncID returns the identity of a component render function.
func FuncID(fn ComponentFunc) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// EventHandler represents an event handler prop.
type EventHandler struct {
	Event   string // "onclick", "oninput", etc.
	Handler any    // Function to call
}

// IsEventProp reports whether a prop key names an event handler.
func IsEventProp(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "on")
}

// EventName strips the "on" prefix from a handler prop key and
// lower-cases the remainder.
func EventName(key string) string {
	return strings.ToLower(key[2:])
}
