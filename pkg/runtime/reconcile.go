package runtime

import (
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

// reconcile is the four-way transition over (old instance, new node):
// unmount when the node is gone, mount when no instance exists,
// replace when type or key changed, update otherwise. path is the
// structural identity under which the result lives.
func (rt *Runtime) reconcile(old *Instance, node *vdom.VNode, container *dom.Element, path string) *Instance {
	if node == nil {
		if old != nil {
			rt.unmount(old)
		}
		return nil
	}
	if old == nil {
		return rt.mount(node, container, path)
	}
	if !vdom.SameType(old.Node, node) || old.Key != node.Key {
		rt.unmount(old)
		return rt.mount(node, container, path)
	}
	return rt.update(old, node, container, path)
}

// mount builds a fresh instance subtree for node and attaches its host
// footprint to container. Children of a new host element attach to
// that element before the element itself is inserted, so the container
// sees a single insertion per mounted host subtree root.
func (rt *Runtime) mount(node *vdom.VNode, container *dom.Element, path string) *Instance {
	switch node.Kind {
	case vdom.KindComponent:
		inst := &Instance{Kind: ComponentInstance, Node: node, Key: node.Key, Path: path}
		rendered := rt.renderComponent(node, path)
		if rendered != nil {
			childPath := vdom.ChildPath(path, rendered.Key, 0, rendered.Kind, nil)
			if child := rt.reconcile(nil, rendered, container, childPath); child != nil {
				inst.Children = []*Instance{child}
			}
		}
		return inst

	case vdom.KindText:
		t := dom.NewText(node.Text)
		container.AppendChild(t)
		rt.emit(OpInsert, "#text")
		return &Instance{Kind: TextInstance, DOM: t, Node: node, Path: path}

	case vdom.KindFragment:
		inst := &Instance{Kind: FragmentInstance, Node: node, Key: node.Key, Path: path}
		inst.Children = rt.mountChildren(node.Children, container, path)
		return inst

	case vdom.KindElement:
		el := dom.NewElement(node.Tag)
		rt.applyProps(el, node.Props)
		inst := &Instance{Kind: HostInstance, DOM: el, Node: node, Key: node.Key, Path: path}
		inst.Children = rt.mountChildren(node.Children, el, path)
		container.AppendChild(el)
		rt.emit(OpInsert, node.Tag)
		return inst
	}
	return nil
}

func (rt *Runtime) mountChildren(children []*vdom.VNode, container *dom.Element, parentPath string) []*Instance {
	if len(children) == 0 {
		return nil
	}
	out := make([]*Instance, 0, len(children))
	for i, c := range children {
		if c == nil {
			out = append(out, nil)
			continue
		}
		p := vdom.ChildPath(parentPath, c.Key, i, c.Kind, children)
		out = append(out, rt.reconcile(nil, c, container, p))
	}
	return out
}

// unmount releases hook state depth-first, then detaches the
// instance's host footprint.
func (rt *Runtime) unmount(inst *Instance) {
	if inst == nil {
		return
	}
	rt.cleanup(inst)
	rt.detach(inst)
}

func (rt *Runtime) cleanup(inst *Instance) {
	if inst == nil {
		return
	}
	if inst.Kind == ComponentInstance {
		rt.store.drop(inst.Path)
	}
	for _, c := range inst.Children {
		rt.cleanup(c)
	}
}

// detach removes every host node in the instance's footprint from its
// parent. A node with no parent is tolerated: something else already
// removed it.
func (rt *Runtime) detach(inst *Instance) {
	for _, n := range collectHostNodes(inst) {
		if n.Parent() != nil {
			dom.Remove(n)
			rt.emit(OpRemove, "")
		}
	}
}

// update patches an instance in place for a same-type, same-key node.
func (rt *Runtime) update(old *Instance, node *vdom.VNode, container *dom.Element, path string) *Instance {
	old.Path = path
	switch old.Kind {
	case ComponentInstance:
		rendered := rt.renderComponent(node, path)
		var prev *Instance
		if len(old.Children) > 0 {
			prev = old.Children[0]
		}
		// The prior child's path is reused so nested hook state keeps
		// its identity; a first-time child derives a fresh path.
		var childPath string
		if prev != nil {
			childPath = prev.Path
		} else if rendered != nil {
			childPath = vdom.ChildPath(path, rendered.Key, 0, rendered.Kind, nil)
		}
		child := rt.reconcile(prev, rendered, container, childPath)
		old.Node = node
		if child != nil {
			old.Children = []*Instance{child}
		} else {
			old.Children = nil
		}
		return old

	case TextInstance:
		if old.Node.Text != node.Text {
			old.DOM.(*dom.Text).SetData(node.Text)
			rt.emit(OpSetText, node.Text)
		}
		old.Node = node
		return old

	case HostInstance:
		el := old.DOM.(*dom.Element)
		rt.diffProps(el, old.Node.Props, node.Props)
		old.Children = rt.reconcileChildren(old.Children, node.Children, el, path)
		old.Node = node
		return old

	case FragmentInstance:
		old.Children = rt.reconcileChildren(old.Children, node.Children, container, path)
		old.Node = node
		return old
	}
	return old
}

// renderComponent executes a component function with hooks bound to
// path, marking the path visited for this pass, and normalizes the
// result.
func (rt *Runtime) renderComponent(node *vdom.VNode, path string) *vdom.VNode {
	rt.store.markVisited(path)
	prev := activeRT
	activeRT = rt
	rt.stack = append(rt.stack, path)
	raw := node.Fn(node.Props)
	rt.stack = rt.stack[:len(rt.stack)-1]
	activeRT = prev
	return vdom.Normalize(raw)
}

// reconcileChildren diffs one ordered child list against another
// inside container.
//
// Old children are partitioned into a key map (first instance per
// declared key; later duplicates go unmatched) and per-type groups for
// the unkeyed, in original order. Each new child resolves its match:
// keyed children consume their key-map entry once; unkeyed children
// take the next unconsumed old instance of the same type, scanning
// forward only. A matched keyed child continues under the matched
// instance's existing path; everything else gets a fresh positional
// path, and a matched component whose path changed has its hook
// records migrated before recursing. Unmatched old instances are
// unmounted, and a final reverse pass repositions host nodes against
// a trailing anchor.
func (rt *Runtime) reconcileChildren(olds []*Instance, news []*vdom.VNode, container *dom.Element, parentPath string) []*Instance {
	byKey := make(map[string]*Instance)
	byType := make(map[string][]*Instance)
	for _, old := range olds {
		if old == nil {
			continue
		}
		if old.Key != "" {
			if _, dup := byKey[old.Key]; !dup {
				byKey[old.Key] = old
			}
			continue
		}
		tk := typeKeyOf(old.Node)
		byType[tk] = append(byType[tk], old)
	}

	matched := make(map[*Instance]bool)
	typeCursor := make(map[string]int)

	type resolved struct {
		old  *Instance
		path string
	}
	plan := make([]resolved, len(news))
	for i, child := range news {
		if child == nil {
			continue
		}
		var old *Instance
		if child.Key != "" {
			if m, ok := byKey[child.Key]; ok && !matched[m] {
				old = m
			}
		} else {
			tk := typeKeyOf(child)
			group := byType[tk]
			if j := typeCursor[tk]; j < len(group) {
				old = group[j]
				typeCursor[tk] = j + 1
			}
		}

		var path string
		if old != nil && child.Key != "" {
			path = old.Path
		} else {
			path = vdom.ChildPath(parentPath, child.Key, i, child.Kind, news)
		}
		if old != nil {
			matched[old] = true
		}
		plan[i] = resolved{old: old, path: path}
	}

	// Unmatched old instances go first, so their hook paths are free
	// before a fresh child mounts at the same position.
	for _, old := range olds {
		if old == nil || matched[old] {
			continue
		}
		rt.unmount(old)
	}

	// Migrations next, all of them before any recursion: a matched
	// component shifted to a new position must vacate its old path
	// before another child mounts there. The whole batch moves at once
	// so components exchanging positions keep their own records.
	moves := make(map[string]string)
	for _, p := range plan {
		if p.old != nil && p.old.Kind == ComponentInstance && p.old.Path != p.path {
			moves[p.old.Path] = p.path
			p.old.Path = p.path
		}
	}
	if len(moves) > 0 {
		rt.store.rebind(moves)
	}

	result := make([]*Instance, 0, len(news))
	for i, child := range news {
		if child == nil {
			result = append(result, nil)
			continue
		}
		result = append(result, rt.reconcile(plan[i].old, child, container, plan[i].path))
	}

	rt.reposition(result, container)
	return result
}

// reposition walks the reconciled children in reverse, moving each
// child's host nodes to sit immediately before the running anchor.
// Reverse order means every anchor is already in its final position
// when it is used; nodes already in place are skipped.
func (rt *Runtime) reposition(children []*Instance, container *dom.Element) {
	var anchor dom.Node
	for i := len(children) - 1; i >= 0; i-- {
		nodes := collectHostNodes(children[i])
		for j := len(nodes) - 1; j >= 0; j-- {
			n := nodes[j]
			if n.Parent() == container && dom.NextSibling(n) == anchor {
				anchor = n
				continue
			}
			container.InsertBefore(n, anchor)
			rt.emit(OpMove, "")
			anchor = n
		}
	}
}
