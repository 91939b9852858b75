package runtime

import (
	"strconv"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

// InstanceKind discriminates the four persisted instance shapes.
type InstanceKind uint8

const (
	HostInstance      InstanceKind = iota // owns exactly one host element
	TextInstance                          // owns exactly one host text node
	FragmentInstance                      // owns nothing; footprint is its children's
	ComponentInstance                     // owns nothing; wraps zero-or-one child
)

// String returns the string representation of the InstanceKind.
func (k InstanceKind) String() string {
	switch k {
	case HostInstance:
		return "Host"
	case TextInstance:
		return "Text"
	case FragmentInstance:
		return "Fragment"
	case ComponentInstance:
		return "Component"
	default:
		return "Unknown"
	}
}

// Instance is a mutable runtime node mirroring one description node.
// Instances persist across renders and own host resources; the engine
// and the runtime's root reference are their only owners.
//
// The host-visible footprint of a component or fragment instance is
// exactly the union, in order, of its children's footprints; a host or
// text instance's footprint is its own single host node. A nil entry
// in Children marks a position whose child rendered to nothing.
type Instance struct {
	Kind     InstanceKind
	DOM      dom.Node // only HostInstance/TextInstance
	Node     *vdom.VNode
	Children []*Instance
	Key      string
	Path     string
}

// typeKeyOf groups description nodes by reconciliation type: tag for
// elements, render function identity for components, a fixed marker
// for text and fragments. Unkeyed children match old instances within
// the same group only.
func typeKeyOf(n *vdom.VNode) string {
	switch n.Kind {
	case vdom.KindElement:
		return "e:" + n.Tag
	case vdom.KindComponent:
		return "c:" + strconv.FormatUint(uint64(vdom.FuncID(n.Fn)), 16)
	case vdom.KindText:
		return "#text"
	case vdom.KindFragment:
		return "#fragment"
	default:
		return "#unknown"
	}
}
