// Package runtime contains Loom's reconciliation engine and render
// driver.
//
// Attach mounts a description tree (pkg/vdom) into a host container
// (pkg/dom) and returns a Runtime that owns the live instance tree,
// the hook store, and the render scheduler. Reconciliation compares
// the previous instance tree against a newly computed description
// tree, applies minimal host mutations, and keeps per-component hook
// state alive across renders keyed by structural path.
//
// Rendering is synchronous and run-to-completion. The asynchronous
// boundary of a browser microtask is modeled as an explicit deferred
// task queue: state setters coalesce into a single scheduled pass, and
// queued effects run only after the pass that scheduled them has
// committed its host mutations. Flush drains the queue; Attach flushes
// once so the initial render and its effects complete before it
// returns.
package runtime
