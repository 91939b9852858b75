package runtime

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/loom-ui/loom/internal/errors"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

// RootPath is the structural path of the tree root.
const RootPath = "root"

// Op identifies one kind of host-tree mutation.
type Op string

const (
	OpInsert     Op = "insert"
	OpRemove     Op = "remove"
	OpMove       Op = "move"
	OpSetText    Op = "set-text"
	OpSetProp    Op = "set-prop"
	OpRemoveProp Op = "remove-prop"
)

// Mutation describes one host-tree mutation as the engine applies it.
type Mutation struct {
	Op     Op
	Detail string
}

// Observer receives every mutation in application order.
type Observer func(Mutation)

// Runtime owns one mounted tree: the container, the latest description
// node, the live instance tree, the hook store, and the scheduler.
// All rendering for one runtime is single-threaded and
// run-to-completion; setters may be called from host event handlers
// and coalesce into a single scheduled pass. mu serializes render
// passes against callers on other goroutines: Render, Flush, and
// Unmount hold it, and Read lets such callers walk the trees between
// passes.
type Runtime struct {
	container *dom.Element
	node      *vdom.VNode
	root      *Instance

	mu    sync.Mutex
	store *store
	sched *scheduler
	stack []string

	renderQueued atomic.Bool

	log      *slog.Logger
	tracer   trace.Tracer
	metrics  *metrics
	observer Observer

	mutations uint64
}

// Option configures a Runtime at attach time.
type Option func(*Runtime)

// WithLogger sets the runtime's logger.
func WithLogger(log *slog.Logger) Option {
	return func(rt *Runtime) { rt.log = log }
}

// WithObserver registers a callback invoked for every host mutation.
func WithObserver(fn Observer) Option {
	return func(rt *Runtime) { rt.observer = fn }
}

// WithMetrics registers render and mutation metrics with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(rt *Runtime) { rt.metrics = newMetrics(reg) }
}

// WithTracer sets the tracer used to span render passes.
func WithTracer(tracer trace.Tracer) Option {
	return func(rt *Runtime) { rt.tracer = tracer }
}

var (
	rootsMu sync.Mutex
	roots   = make(map[*dom.Element]*Runtime)
)

// Attach mounts node into container and performs the first render
// synchronously, including its effect flush. A tree previously
// attached to the same container is torn down first. Attach fails fast
// on a nil node or container; no partial mount is attempted.
func Attach(node *vdom.VNode, container *dom.Element, opts ...Option) (*Runtime, error) {
	if node == nil {
		return nil, errors.New("E001")
	}
	if container == nil {
		return nil, errors.New("E002")
	}

	rootsMu.Lock()
	prev := roots[container]
	rootsMu.Unlock()
	if prev != nil {
		prev.Unmount()
	}

	rt := &Runtime{
		container: container,
		node:      node,
		store:     newStore(),
		sched:     &scheduler{},
		log:       slog.Default(),
		tracer:    otel.Tracer("github.com/loom-ui/loom/pkg/runtime"),
	}
	for _, opt := range opts {
		opt(rt)
	}

	rootsMu.Lock()
	roots[container] = rt
	rootsMu.Unlock()

	rt.invalidate()
	rt.Flush()
	return rt, nil
}

// Render replaces the root description node wholesale and re-renders
// synchronously.
func (rt *Runtime) Render(node *vdom.VNode) error {
	if node == nil {
		return errors.New("E001")
	}
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.node = node
	rt.invalidate()
	rt.sched.drain()
	return nil
}

// Flush drains the deferred task queue: scheduled render passes and
// the effect flushes they enqueue, in FIFO order, until the queue is
// empty.
func (rt *Runtime) Flush() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	rt.sched.drain()
}

// Read runs fn while holding the render lock. Callers on other
// goroutines walk the instance and host trees inside fn; no render
// pass commits concurrently.
func (rt *Runtime) Read(fn func()) {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	fn()
}

// Unmount tears the tree down: instance cleanup, host detach, hook
// store reset, and deregistration of the container.
func (rt *Runtime) Unmount() {
	rt.mu.Lock()
	if rt.root != nil {
		rt.unmount(rt.root)
		rt.root = nil
	}
	rt.store.reset()
	rt.node = nil
	rt.mu.Unlock()

	rootsMu.Lock()
	if roots[rt.container] == rt {
		delete(roots, rt.container)
	}
	rootsMu.Unlock()
}

// Container returns the host element the tree is mounted into.
// Concurrent walks of the host tree go through Read.
func (rt *Runtime) Container() *dom.Element { return rt.container }

// Tree returns the current root instance. Inspection only; the engine
// remains the owner, and concurrent walks go through Read.
func (rt *Runtime) Tree() *Instance { return rt.root }

// Mutations returns the total host mutations applied over the
// runtime's lifetime.
func (rt *Runtime) Mutations() uint64 {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	return rt.mutations
}

// invalidate schedules a render pass unless one is already queued.
// Every setter call funnels through here, so N synchronous updates
// collapse into one pass.
func (rt *Runtime) invalidate() {
	if rt.renderQueued.CompareAndSwap(false, true) {
		rt.sched.enqueue(rt.renderPass)
	}
}

// renderPass runs one full reconciliation: cursors reset, engine
// invoked at the root path, unused hook state swept, then the pending
// effects enqueued behind the pass so every host mutation commits
// before any effect body runs.
func (rt *Runtime) renderPass() {
	rt.renderQueued.Store(false)
	if rt.node == nil {
		return
	}

	_, span := rt.tracer.Start(context.Background(), "runtime.render")
	start := time.Now()
	before := rt.mutations

	rt.store.beginPass()
	rt.root = rt.reconcile(rt.root, rt.node, rt.container, RootPath)
	swept := rt.store.sweep()

	applied := rt.mutations - before
	elapsed := time.Since(start)
	span.SetAttributes(
		attribute.Int64("loom.mutations", int64(applied)),
		attribute.Int("loom.swept_paths", len(swept)),
	)
	span.End()

	if rt.metrics != nil {
		rt.metrics.renders.Inc()
		rt.metrics.renderDuration.Observe(elapsed.Seconds())
		rt.metrics.sweptPaths.Add(float64(len(swept)))
	}
	rt.log.Debug("render pass committed",
		"mutations", applied,
		"swept", len(swept),
		"duration", elapsed,
	)

	rt.sched.enqueue(rt.flushEffects)
}

// flushEffects runs the queued effect cells: previous cleanup first,
// then the new body, whose returned function becomes the stored
// cleanup. Entries whose path was swept, or whose run was superseded
// by a later pass, are skipped.
func (rt *Runtime) flushEffects() {
	for _, p := range rt.store.drainPending() {
		recs := rt.store.records[p.path]
		if p.slot >= len(recs) {
			continue
		}
		rec := recs[p.slot]
		if rec.effect == nil {
			continue
		}
		if rec.cleanup != nil {
			rec.cleanup()
			rec.cleanup = nil
		}
		effect := rec.effect
		rec.effect = nil
		if c := effect(); c != nil {
			rec.cleanup = c
		}
		if rt.metrics != nil {
			rt.metrics.effectRuns.Inc()
		}
	}
}

// emit accounts for one applied host mutation.
func (rt *Runtime) emit(op Op, detail string) {
	rt.mutations++
	if rt.metrics != nil {
		rt.metrics.mutations.WithLabelValues(string(op)).Inc()
	}
	if rt.observer != nil {
		rt.observer(Mutation{Op: op, Detail: detail})
	}
}
