// Package dom implements the in-memory host tree that Loom's runtime
// mutates. It stands in for a presentation platform: elements carry
// attributes, intrinsic properties, a style map, and event handlers;
// text nodes carry mutable character data.
//
// The package exposes exactly the primitives the reconciliation engine
// consumes: create an element or text node, set/remove attributes and
// properties, register event handlers, insert/remove/reposition
// children, and read a node's parent and next sibling. Dispatch walks
// handlers up the ancestor chain so applications can drive state
// updates from synthetic events.
//
// Removal of an already-detached node is a tolerated no-op rather than
// an error; the runtime relies on this when unmounting subtrees whose
// host nodes were already repositioned away.
package dom
