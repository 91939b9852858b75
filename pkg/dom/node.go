package dom

// Node is a unit of the host tree: either an *Element or a *Text.
type Node interface {
	// Parent returns the element this node is currently attached to,
	// or nil when detached.
	Parent() *Element

	setParent(p *Element)
}

// Text is a host text node with mutable character data.
type Text struct {
	parent *Element
	data   string
}

// NewText creates a detached text node.
func NewText(data string) *Text {
	return &Text{data: data}
}

// Data returns the node's character data.
func (t *Text) Data() string { return t.data }

// SetData replaces the node's character data in place.
func (t *Text) SetData(data string) { t.data = data }

// Parent returns the element this node is attached to, or nil.
func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }

// NextSibling returns the node immediately after n under its parent,
// or nil when n is detached or last.
func NextSibling(n Node) Node {
	if n == nil {
		return nil
	}
	p := n.Parent()
	if p == nil {
		return nil
	}
	return p.childAfter(n)
}

// Remove detaches n from its parent. Detached nodes are left alone.
func Remove(n Node) {
	if n == nil {
		return
	}
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
}
