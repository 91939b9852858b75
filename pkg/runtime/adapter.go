package runtime

import (
	"fmt"
	"strconv"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

// asHandler coerces a handler prop value to a host event handler.
func asHandler(v any) dom.Handler {
	switch h := v.(type) {
	case dom.Handler:
		return h
	case func(*dom.Event):
		return h
	case func():
		return func(*dom.Event) { h() }
	}
	return nil
}

// propToString converts a prop value to its attribute string form.
func propToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// styleEntries coerces a style prop value to string pairs.
func styleEntries(v any) map[string]string {
	switch m := v.(type) {
	case map[string]string:
		return m
	case map[string]any:
		out := make(map[string]string, len(m))
		for k, mv := range m {
			out[k] = propToString(mv)
		}
		return out
	}
	return nil
}

// setProp applies one prop to a host element: event-handler
// registration for on* keys, direct assignment for className, merge
// assignment for the style mapping, intrinsic property passthrough
// when the element exposes the key as a settable property, and a
// generic attribute set otherwise.
func (rt *Runtime) setProp(el *dom.Element, key string, value any) {
	switch {
	case vdom.IsEventProp(key):
		if h := asHandler(value); h != nil {
			el.AddEventListener(vdom.EventName(key), h)
		}
	case key == "className":
		el.SetProperty("className", propToString(value))
	case key == "style":
		for k, v := range styleEntries(value) {
			el.SetStyleProperty(k, v)
		}
	case el.HasProperty(key):
		el.SetProperty(key, value)
	default:
		el.SetAttribute(key, propToString(value))
	}
}

// removeProp undoes one prop: handler removal, class clear, style
// attribute removal, intrinsic-property reset to the empty string, or
// attribute removal.
func (rt *Runtime) removeProp(el *dom.Element, key string, old any) {
	switch {
	case vdom.IsEventProp(key):
		el.RemoveEventListener(vdom.EventName(key))
	case key == "className":
		el.SetProperty("className", "")
	case key == "style":
		el.ClearStyle()
	case el.HasProperty(key):
		el.SetProperty(key, "")
	default:
		el.RemoveAttribute(key)
	}
}

// applyProps sets every prop except children on a freshly created
// host element.
func (rt *Runtime) applyProps(el *dom.Element, props vdom.Props) {
	for key, value := range props {
		if key == "children" || key == "key" {
			continue
		}
		rt.setProp(el, key, value)
	}
}

// diffProps updates a host element in place: props present before but
// absent now are removed first, then every prop whose value changed by
// identity is re-applied. The comparison is a shallow per-key
// reference check, so unchanged references are never touched.
func (rt *Runtime) diffProps(el *dom.Element, prev, next vdom.Props) {
	for key, old := range prev {
		if key == "children" || key == "key" {
			continue
		}
		if _, ok := next[key]; !ok {
			rt.removeProp(el, key, old)
			rt.emit(OpRemoveProp, key)
		}
	}
	for key, value := range next {
		if key == "children" || key == "key" {
			continue
		}
		old, had := prev[key]
		if had && vdom.Same(old, value) {
			continue
		}
		if had && vdom.IsEventProp(key) {
			el.RemoveEventListener(vdom.EventName(key))
		}
		rt.setProp(el, key, value)
		rt.emit(OpSetProp, key)
	}
}

// collectHostNodes returns the instance's host footprint: its own node
// for host/text instances, otherwise the concatenation, in child
// order, of each child's collected nodes.
func collectHostNodes(inst *Instance) []dom.Node {
	if inst == nil {
		return nil
	}
	if inst.DOM != nil {
		return []dom.Node{inst.DOM}
	}
	var nodes []dom.Node
	for _, c := range inst.Children {
		nodes = append(nodes, collectHostNodes(c)...)
	}
	return nodes
}
