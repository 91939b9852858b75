package vdom

import "fmt"

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}

// El creates an element node with the given tag.
// Arguments can be: nil, Attr, EventHandler, Props, *VNode, []*VNode,
// string, or a number. Child fragments are flattened in place.
func El(tag string, args ...any) *VNode {
	node := &VNode{
		Kind:  KindElement,
		Tag:   tag,
		Props: make(Props),
	}

	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue

		case Attr:
			if v.Key == "" {
				continue
			}
			if v.Key == "key" {
				node.Key = fmt.Sprintf("%v", v.Value)
				continue
			}
			node.Props[v.Key] = v.Value

		case EventHandler:
			node.Props[v.Event] = v.Handler

		case Props:
			for k, pv := range v {
				if k == "key" {
					node.Key = fmt.Sprintf("%v", pv)
					continue
				}
				node.Props[k] = pv
			}

		default:
			node.Children = appendChild(node.Children, arg)
		}
	}

	return node
}

// Fragment groups children without a wrapper element. Nested keyless
// fragments are flattened into the child sequence.
func Fragment(children ...any) *VNode {
	node := &VNode{Kind: KindFragment}
	for _, c := range children {
		node.Children = appendChild(node.Children, c)
	}
	return node
}

// Component creates a component node for the given render function.
// Normalized children are carried under props["children"], and a
// "key" prop is lifted onto the node.
func Component(fn ComponentFunc, props Props, children ...any) *VNode {
	node := &VNode{
		Kind:  KindComponent,
		Fn:    fn,
		Props: make(Props, len(props)+1),
	}
	for k, v := range props {
		if k == "key" {
			node.Key = fmt.Sprintf("%v", v)
			continue
		}
		node.Props[k] = v
	}
	if len(children) > 0 {
		var kids []*VNode
		for _, c := range children {
			kids = appendChild(kids, c)
		}
		node.Props["children"] = kids
	}
	return node
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *VNode) *VNode {
	if condition {
		return fn()
	}
	return nil
}

// Range maps a slice to nodes, dropping nil results.
func Range[T any](items []T, fn func(item T, index int) *VNode) []*VNode {
	result := make([]*VNode, 0, len(items))
	for i, item := range items {
		if node := fn(item, i); node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Key creates a key attribute for reconciliation.
// The key is converted to a string using fmt.Sprintf.
func Key(key any) Attr {
	return attr("key", fmt.Sprintf("%v", key))
}
