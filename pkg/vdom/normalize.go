package vdom

import (
	"strconv"
	"strings"
)

// Normalize converts a raw description value into a canonical node.
//
// Rules, in order: nil and booleans render nothing. Slices become a
// fragment of the normalized, non-nil mapping of each element, so
// nested slices flatten one level per nesting. Whitespace-only strings
// render nothing; other strings become text nodes. Numbers become text
// nodes carrying their literal string form. A *VNode passes through
// unchanged. Anything else renders nothing.
func Normalize(raw any) *VNode {
	switch v := raw.(type) {
	case nil:
		return nil
	case bool:
		return nil
	case *VNode:
		if v == nil {
			return nil
		}
		return v
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return Text(v)
	case int:
		return Text(strconv.Itoa(v))
	case int32:
		return Text(strconv.FormatInt(int64(v), 10))
	case int64:
		return Text(strconv.FormatInt(v, 10))
	case uint:
		return Text(strconv.FormatUint(uint64(v), 10))
	case uint64:
		return Text(strconv.FormatUint(v, 10))
	case float32:
		return Text(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return Text(strconv.FormatFloat(v, 'f', -1, 64))
	case []*VNode:
		node := &VNode{Kind: KindFragment}
		for _, c := range v {
			if n := Normalize(c); n != nil {
				node.Children = append(node.Children, n)
			}
		}
		return node
	case []any:
		node := &VNode{Kind: KindFragment}
		for _, c := range v {
			if n := Normalize(c); n != nil {
				node.Children = append(node.Children, n)
			}
		}
		return node
	}
	return nil
}

// appendChild appends the normalized form of raw to children.
// Keyless fragment nodes are recursively flattened into the parent
// child sequence; a keyed fragment stays a distinct boundary so its
// key participates in reconciliation.
func appendChild(children []*VNode, raw any) []*VNode {
	n := Normalize(raw)
	if n == nil {
		return children
	}
	if n.Kind == KindFragment && n.Key == "" {
		for _, c := range n.Children {
			children = appendChild(children, c)
		}
		return children
	}
	return append(children, n)
}
