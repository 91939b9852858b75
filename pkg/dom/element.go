package dom

// intrinsicProps are the property names every element exposes as
// settable host properties, mirroring the writable IDL attributes a
// browser element would have. Property writes for other names fall
// back to generic attributes.
var intrinsicProps = map[string]bool{
	"id":          true,
	"className":   true,
	"value":       true,
	"checked":     true,
	"selected":    true,
	"disabled":    true,
	"title":       true,
	"href":        true,
	"src":         true,
	"placeholder": true,
	"type":        true,
	"name":        true,
}

// Element is a host element node.
type Element struct {
	tag      string
	parent   *Element
	children []Node

	attrs    map[string]string
	props    map[string]any
	style    map[string]string
	handlers map[string]Handler
}

// NewElement creates a detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{
		tag:      tag,
		attrs:    make(map[string]string),
		props:    make(map[string]any),
		style:    make(map[string]string),
		handlers: make(map[string]Handler),
	}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Parent returns the element this node is attached to, or nil.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// Attributes

// SetAttribute sets a generic attribute.
func (e *Element) SetAttribute(key, value string) { e.attrs[key] = value }

// Attribute returns a generic attribute and whether it is present.
func (e *Element) Attribute(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

// RemoveAttribute removes a generic attribute. Missing keys are a no-op.
func (e *Element) RemoveAttribute(key string) { delete(e.attrs, key) }

// Intrinsic properties

// HasProperty reports whether key names a settable host property on
// this element: one of the intrinsic property names, or any property
// previously set.
func (e *Element) HasProperty(key string) bool {
	if intrinsicProps[key] {
		return true
	}
	_, ok := e.props[key]
	return ok
}

// SetProperty assigns a host property directly.
func (e *Element) SetProperty(key string, value any) { e.props[key] = value }

// Property returns the current value of a host property.
func (e *Element) Property(key string) any { return e.props[key] }

// Style

// SetStyleProperty merge-assigns one style property.
func (e *Element) SetStyleProperty(key, value string) { e.style[key] = value }

// StyleProperty returns one style property.
func (e *Element) StyleProperty(key string) string { return e.style[key] }

// ClearStyle removes the style attribute entirely.
func (e *Element) ClearStyle() { e.style = make(map[string]string) }

// StyleLen returns the number of set style properties.
func (e *Element) StyleLen() int { return len(e.style) }

// Event handlers

// AddEventListener registers the handler for an event name, replacing
// any previous handler for that name.
func (e *Element) AddEventListener(event string, h Handler) {
	if h == nil {
		return
	}
	e.handlers[event] = h
}

// RemoveEventListener removes the handler for an event name.
func (e *Element) RemoveEventListener(event string) { delete(e.handlers, event) }

// Listens reports whether a handler is registered for the event name.
func (e *Element) Listens(event string) bool {
	_, ok := e.handlers[event]
	return ok
}

// Tree structure

// Children returns the element's children in order. The returned
// slice is a copy; mutating it does not affect the tree.
func (e *Element) Children() []Node {
	out := make([]Node, len(e.children))
	copy(out, e.children)
	return out
}

// ChildCount returns the number of children.
func (e *Element) ChildCount() int { return len(e.children) }

// IndexOf returns the position of n among e's children, or -1.
func (e *Element) IndexOf(n Node) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

// AppendChild attaches n as the last child, detaching it from any
// previous parent first.
func (e *Element) AppendChild(n Node) {
	e.InsertBefore(n, nil)
}

// InsertBefore attaches n immediately before ref, or as the last child
// when ref is nil. The node is detached from any previous parent
// (including e itself) before insertion.
func (e *Element) InsertBefore(n Node, ref Node) {
	if n == nil || n == ref {
		return
	}
	Remove(n)
	idx := len(e.children)
	if ref != nil {
		if i := e.IndexOf(ref); i >= 0 {
			idx = i
		}
	}
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = n
	n.setParent(e)
}

// RemoveChild detaches n from e. Nodes that are not children of e are
// left alone.
func (e *Element) RemoveChild(n Node) {
	i := e.IndexOf(n)
	if i < 0 {
		return
	}
	e.children = append(e.children[:i], e.children[i+1:]...)
	n.setParent(nil)
}

func (e *Element) childAfter(n Node) Node {
	i := e.IndexOf(n)
	if i < 0 || i+1 >= len(e.children) {
		return nil
	}
	return e.children[i+1]
}

// TextContent returns the concatenated data of every text node in the
// subtree, in document order.
func (e *Element) TextContent() string {
	out := ""
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			out += n.Data()
		case *Element:
			out += n.TextContent()
		}
	}
	return out
}
