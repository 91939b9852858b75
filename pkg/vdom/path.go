package vdom

import "strconv"

// ChildPath derives the structural identity path for a child position
// and appends it to parentPath.
//
// The segment carries a "c" prefix for components and "i" for
// everything else, followed by "k-<key>" when a key is declared or the
// positional index otherwise. When the same key repeats among the
// strictly preceding siblings, a "-<n>" suffix disambiguates the
// duplicate; the scan is local to the supplied sibling list, so path
// uniqueness holds only when the caller supplies the full current
// sibling set.
func ChildPath(parentPath, key string, index int, kind Kind, siblings []*VNode) string {
	prefix := "i"
	if kind == KindComponent {
		prefix = "c"
	}
	if key == "" {
		return parentPath + "." + prefix + strconv.Itoa(index)
	}
	seg := prefix + "k-" + key
	if len(siblings) > 0 {
		dup := 0
		for i := 0; i < index && i < len(siblings); i++ {
			if siblings[i] != nil && siblings[i].Key == key {
				dup++
			}
		}
		if dup > 0 {
			seg += "-" + strconv.Itoa(dup)
		}
	}
	return parentPath + "." + seg
}
