package runtime

import (
	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/vdom"
)

// activeRT is the runtime whose render pass is currently executing.
// Rendering is single-threaded and run-to-completion, so a plain
// package variable with save/restore is sufficient.
var activeRT *Runtime

// current returns the active runtime and the path of the component
// currently executing. Hooks called outside a component body panic
// with a coded error; hook misuse inside components (unstable call
// order) is an unchecked caller error.
func current() (*Runtime, string) {
	rt := activeRT
	if rt == nil || len(rt.stack) == 0 {
		panic(errors.New("E020"))
	}
	return rt, rt.stack[len(rt.stack)-1]
}

// State is the stable handle for one state cell. It remains valid
// across renders and may be invoked from outside the rendering
// component (e.g. host event handlers) for as long as the cell's path
// exists in the store; after the component unmounts, Set and Update
// become no-ops.
type State[T any] struct {
	rt   *Runtime
	path string
	slot int
}

// UseState returns the persistent value stored at the current hook
// slot, initializing it to initial on the component's first execution,
// together with the cell's setter handle.
func UseState[T any](initial T) (T, State[T]) {
	return useState(func() T { return initial })
}

// UseStateInit is UseState with lazy initialization: init is invoked
// exactly once, on the first execution at this slot, never on
// subsequent renders.
func UseStateInit[T any](init func() T) (T, State[T]) {
	return useState(init)
}

func useState[T any](init func() T) (T, State[T]) {
	rt, path := current()
	rec, slot, existed := rt.store.next(path)
	if !existed {
		rec.kind = stateHook
		rec.value = init()
	}
	return rec.value.(T), State[T]{rt: rt, path: path, slot: slot}
}

// Get returns the currently stored value, or the zero value when the
// cell's path no longer exists.
func (s State[T]) Get() T {
	var zero T
	recs := s.rt.store.records[s.path]
	if s.slot >= len(recs) {
		return zero
	}
	v, ok := recs[s.slot].value.(T)
	if !ok {
		return zero
	}
	return v
}

// Set stores a new value and schedules a render when the value
// actually changed (identity/primitive equality). Unchanged values are
// a no-op.
func (s State[T]) Set(v T) {
	s.apply(func(T) T { return v })
}

// Update computes the next value from the previous one, then behaves
// like Set.
func (s State[T]) Update(fn func(T) T) {
	s.apply(fn)
}

func (s State[T]) apply(fn func(T) T) {
	recs := s.rt.store.records[s.path]
	if s.slot >= len(recs) {
		return // path swept: the component unmounted
	}
	rec := recs[s.slot]
	old, _ := rec.value.(T)
	next := fn(old)
	if vdom.Same(old, next) {
		return
	}
	rec.value = next
	s.rt.invalidate()
}

// UseEffect records a side effect for the current component.
//
// The effect re-runs when this is the first render of the slot, when
// deps is nil (no dependency list supplied), when the previous render
// supplied no deps, or when the two dependency sequences differ under
// shallow equality. A re-run is queued rather than executed: the
// cleanup returned by the previous run is carried forward unexecuted
// until the queued run fires after the pass commits, at which point
// the old cleanup runs first, then the new effect body, whose returned
// function (if any) becomes the stored cleanup.
func UseEffect(effect func() Cleanup, deps []any) {
	rt, path := current()
	rec, slot, existed := rt.store.next(path)
	if !existed {
		rec.kind = effectHook
	}
	rerun := !existed || deps == nil || !rec.hasDeps || !vdom.ShallowEqual(rec.deps, deps)
	rec.deps = deps
	rec.hasDeps = deps != nil
	if rerun {
		rec.effect = effect
		rt.store.queueEffect(path, slot)
	}
}
