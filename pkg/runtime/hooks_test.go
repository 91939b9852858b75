package runtime

import (
	"testing"

	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

func TestUseStatePersistsAcrossRenders(t *testing.T) {
	var setter State[int]
	app := func(vdom.Props) *vdom.VNode {
		n, setN := UseState(10)
		setter = setN
		return vdom.Textf("%d", n)
	}
	rt, container := attach(t, vdom.Component(app, nil))

	if got := container.TextContent(); got != "10" {
		t.Fatalf("initial: %q", got)
	}
	setter.Set(11)
	rt.Flush()
	if got := container.TextContent(); got != "11" {
		t.Errorf("after set: %q", got)
	}
	if setter.Get() != 11 {
		t.Errorf("Get = %d", setter.Get())
	}
}

func TestUseStateInitRunsOnce(t *testing.T) {
	initCalls := 0
	var setter State[int]
	app := func(vdom.Props) *vdom.VNode {
		n, setN := UseStateInit(func() int {
			initCalls++
			return 7
		})
		setter = setN
		return vdom.Textf("%d", n)
	}
	rt, _ := attach(t, vdom.Component(app, nil))

	setter.Set(8)
	rt.Flush()
	setter.Set(9)
	rt.Flush()

	if initCalls != 1 {
		t.Errorf("init ran %d times, want 1", initCalls)
	}
}

func TestSetterNoOpOnUnchangedValue(t *testing.T) {
	renders := 0
	var setter State[int]
	app := func(vdom.Props) *vdom.VNode {
		renders++
		n, setN := UseState(3)
		setter = setN
		return vdom.Textf("%d", n)
	}
	rt, _ := attach(t, vdom.Component(app, nil))

	before := renders
	setter.Set(3)
	rt.Flush()
	if renders != before {
		t.Errorf("unchanged set re-rendered: %d -> %d", before, renders)
	}
}

func TestSettersCoalesceIntoOnePass(t *testing.T) {
	renders := 0
	effectFlushes := 0
	var setter State[int]
	app := func(vdom.Props) *vdom.VNode {
		renders++
		n, setN := UseState(0)
		setter = setN
		UseEffect(func() Cleanup {
			effectFlushes++
			return nil
		}, nil)
		return vdom.Textf("%d", n)
	}
	rt, container := attach(t, vdom.Component(app, nil))

	if renders != 1 || effectFlushes != 1 {
		t.Fatalf("after attach: renders=%d flushes=%d", renders, effectFlushes)
	}

	setter.Set(1)
	setter.Set(2)
	setter.Set(3)
	rt.Flush()

	if renders != 2 {
		t.Errorf("renders = %d, want 2 (three sets coalesce)", renders)
	}
	if effectFlushes != 2 {
		t.Errorf("effect flushes = %d, want 2", effectFlushes)
	}
	if got := container.TextContent(); got != "3" {
		t.Errorf("TextContent = %q", got)
	}
}

func TestUpdaterSeesPreviousValue(t *testing.T) {
	var setter State[int]
	app := func(vdom.Props) *vdom.VNode {
		n, setN := UseState(0)
		setter = setN
		return vdom.Textf("%d", n)
	}
	rt, container := attach(t, vdom.Component(app, nil))

	setter.Update(func(n int) int { return n + 2 })
	setter.Update(func(n int) int { return n * 10 })
	rt.Flush()
	if got := container.TextContent(); got != "20" {
		t.Errorf("TextContent = %q, want 20", got)
	}
}

func TestEffectDependencySemantics(t *testing.T) {
	var runs, cleanups int
	app := func(props vdom.Props) *vdom.VNode {
		dep := props["dep"]
		UseEffect(func() Cleanup {
			runs++
			return func() { cleanups++ }
		}, []any{dep})
		return vdom.Div()
	}

	rt, _ := attach(t, vdom.Component(app, vdom.Props{"dep": 1}))
	if runs != 1 || cleanups != 0 {
		t.Fatalf("after mount: runs=%d cleanups=%d", runs, cleanups)
	}

	if err := rt.Render(vdom.Component(app, vdom.Props{"dep": 1})); err != nil {
		t.Fatal(err)
	}
	if runs != 1 || cleanups != 0 {
		t.Errorf("unchanged deps re-ran: runs=%d cleanups=%d", runs, cleanups)
	}

	if err := rt.Render(vdom.Component(app, vdom.Props{"dep": 2})); err != nil {
		t.Fatal(err)
	}
	if runs != 2 || cleanups != 1 {
		t.Errorf("changed deps: runs=%d cleanups=%d, want 2 and 1", runs, cleanups)
	}
}

func TestEffectWithoutDepsRunsEveryPass(t *testing.T) {
	runs := 0
	var setter State[int]
	app := func(vdom.Props) *vdom.VNode {
		n, setN := UseState(0)
		setter = setN
		UseEffect(func() Cleanup {
			runs++
			return nil
		}, nil)
		return vdom.Textf("%d", n)
	}
	rt, _ := attach(t, vdom.Component(app, nil))

	setter.Set(1)
	rt.Flush()
	setter.Set(2)
	rt.Flush()

	if runs != 3 {
		t.Errorf("runs = %d, want 3", runs)
	}
}

func TestEffectCleanupRunsBeforeNextBody(t *testing.T) {
	var order []string
	app := func(props vdom.Props) *vdom.VNode {
		dep := props["dep"]
		UseEffect(func() Cleanup {
			order = append(order, "run")
			return func() { order = append(order, "clean") }
		}, []any{dep})
		return vdom.Div()
	}

	rt, _ := attach(t, vdom.Component(app, vdom.Props{"dep": 1}))
	if err := rt.Render(vdom.Component(app, vdom.Props{"dep": 2})); err != nil {
		t.Fatal(err)
	}

	want := []string{"run", "clean", "run"}
	if len(order) != len(want) {
		t.Fatalf("order = %v", order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestEffectObservesCommittedTree(t *testing.T) {
	container := dom.NewElement("div")
	var seen string
	var setter State[int]

	app := func(vdom.Props) *vdom.VNode {
		n, setN := UseState(0)
		setter = setN
		UseEffect(func() Cleanup {
			seen = container.TextContent()
			return nil
		}, nil)
		return vdom.Textf("n=%d", n)
	}

	rt, err := Attach(vdom.Component(app, nil), container)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(rt.Unmount)

	if seen != "n=0" {
		t.Errorf("attach-time effect saw %q, want %q", seen, "n=0")
	}

	setter.Set(1)
	rt.Flush()
	if seen != "n=1" {
		t.Errorf("effect saw %q, want %q (mutations commit first)", seen, "n=1")
	}
}

func TestUnmountSweepRunsCleanupOnce(t *testing.T) {
	var cleanups int
	var childSetter State[int]
	child := func(vdom.Props) *vdom.VNode {
		n, setN := UseState(0)
		childSetter = setN
		UseEffect(func() Cleanup {
			return func() { cleanups++ }
		}, []any{})
		return vdom.Textf("child:%d", n)
	}
	parent := func(props vdom.Props) *vdom.VNode {
		show := props["show"].(bool)
		return vdom.Div(vdom.If(show, vdom.Component(child, nil)))
	}

	rt, container := attach(t, vdom.Component(parent, vdom.Props{"show": true}))
	if got := container.TextContent(); got != "child:0" {
		t.Fatalf("initial: %q", got)
	}

	if err := rt.Render(vdom.Component(parent, vdom.Props{"show": false})); err != nil {
		t.Fatal(err)
	}
	if cleanups != 1 {
		t.Errorf("cleanups = %d, want 1", cleanups)
	}
	if got := container.TextContent(); got != "" {
		t.Errorf("after unmount: %q", got)
	}

	// Another pass never re-runs the cleanup.
	if err := rt.Render(vdom.Component(parent, vdom.Props{"show": false})); err != nil {
		t.Fatal(err)
	}
	if cleanups != 1 {
		t.Errorf("cleanups after extra pass = %d, want 1", cleanups)
	}

	// The stale setter is a no-op: its path is gone.
	childSetter.Set(99)
	rt.Flush()
	if childSetter.Get() != 0 {
		t.Errorf("swept state Get = %d, want zero value", childSetter.Get())
	}

	// Remounting starts from fresh state.
	if err := rt.Render(vdom.Component(parent, vdom.Props{"show": true})); err != nil {
		t.Fatal(err)
	}
	if got := container.TextContent(); got != "child:0" {
		t.Errorf("after remount: %q", got)
	}
}

func TestHookOutsideComponentPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("UseState outside a component did not panic")
		}
	}()
	UseState(0)
}

func TestStateFollowsUnkeyedComponentMove(t *testing.T) {
	setters := map[string]State[int]{}
	item := func(props vdom.Props) *vdom.VNode {
		id := props["id"].(string)
		n, setN := UseState(0)
		setters[id] = setN
		return vdom.Li(vdom.Textf("%s:%d", id, n))
	}
	other := func(vdom.Props) *vdom.VNode {
		return vdom.Li("sep")
	}
	list := func(withSep bool) *vdom.VNode {
		kids := []*vdom.VNode{}
		if withSep {
			kids = append(kids, vdom.Component(other, nil))
		}
		kids = append(kids, vdom.Component(item, vdom.Props{"id": "a"}))
		return vdom.Ul(kids)
	}

	rt, container := attach(t, list(false))
	setters["a"].Set(4)
	rt.Flush()

	// Inserting a different component type ahead shifts the unkeyed
	// item to a new position; its hook records migrate with it.
	if err := rt.Render(list(true)); err != nil {
		t.Fatal(err)
	}
	if got := container.TextContent(); got != "sepa:4" {
		t.Errorf("after shift: %q", got)
	}
}

func TestStateSurvivesUnkeyedComponentSwap(t *testing.T) {
	setters := map[string]State[int]{}
	alpha := func(vdom.Props) *vdom.VNode {
		n, setN := UseState(0)
		setters["alpha"] = setN
		return vdom.Li(vdom.Textf("alpha:%d", n))
	}
	beta := func(vdom.Props) *vdom.VNode {
		n, setN := UseState(0)
		setters["beta"] = setN
		return vdom.Li(vdom.Textf("beta:%d", n))
	}
	list := func(fns ...vdom.ComponentFunc) *vdom.VNode {
		return vdom.Ul(vdom.Range(fns, func(fn vdom.ComponentFunc, _ int) *vdom.VNode {
			return vdom.Component(fn, nil)
		}))
	}

	rt, container := attach(t, list(alpha, beta))
	setters["alpha"].Set(1)
	setters["beta"].Set(2)
	rt.Flush()
	if got := container.TextContent(); got != "alpha:1beta:2" {
		t.Fatalf("before swap: %q", got)
	}

	// Both components exchange positional paths in one pass; each must
	// keep its own records rather than read the other's.
	if err := rt.Render(list(beta, alpha)); err != nil {
		t.Fatal(err)
	}
	if got := container.TextContent(); got != "beta:2alpha:1" {
		t.Errorf("after swap: %q", got)
	}
}

func TestUnkeyedSwapWithDistinctHookTypes(t *testing.T) {
	var setName State[string]
	var setCount State[int]
	named := func(vdom.Props) *vdom.VNode {
		name, set := UseState("x")
		setName = set
		return vdom.Li(vdom.Textf("name:%s", name))
	}
	counted := func(vdom.Props) *vdom.VNode {
		n, set := UseState(0)
		setCount = set
		return vdom.Li(vdom.Textf("count:%d", n))
	}
	list := func(fns ...vdom.ComponentFunc) *vdom.VNode {
		return vdom.Ul(vdom.Range(fns, func(fn vdom.ComponentFunc, _ int) *vdom.VNode {
			return vdom.Component(fn, nil)
		}))
	}

	rt, container := attach(t, list(named, counted))
	setName.Set("y")
	setCount.Set(7)
	rt.Flush()

	// Records landing on the wrong path would fail the typed value
	// assertion during the swapped render.
	if err := rt.Render(list(counted, named)); err != nil {
		t.Fatal(err)
	}
	if got := container.TextContent(); got != "count:7name:y" {
		t.Errorf("after swap: %q", got)
	}
}
