// Package vdom provides the description tree for Loom.
//
// A description tree is an immutable value recreated on every render.
// VNode is the fundamental building block representing host elements,
// text, fragments, and components. Props holds attributes, event
// handlers, and the style map. Attr and EventHandler are used to build
// Props through the element factory functions.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	    OnClick(handler),
//	)
//
// # Normalization
//
// Normalize converts raw description values (strings, numbers,
// booleans, nils, slices) into canonical nodes. Booleans and nils
// render nothing, numbers become text, and slices become fragments.
//
// # Structural paths
//
// ChildPath derives the deterministic identity string for a tree
// position. Paths are the sole identity mechanism of the runtime: hook
// state and cross-render instance matching are both addressed by path.
package vdom
