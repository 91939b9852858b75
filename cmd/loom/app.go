package main

import (
	"log/slog"

	"github.com/loom-ui/loom/pkg/runtime"
	"github.com/loom-ui/loom/pkg/vdom"
)

// demoApp is the root component served by `loom serve`. Props carry a
// monotonically increasing tick driven from the serve loop.
func demoApp(props vdom.Props) *vdom.VNode {
	tick, _ := props["tick"].(int)
	items := demoItems(tick)

	return vdom.Div(
		vdom.Class("app"),
		vdom.Header(
			vdom.H1("Loom demo"),
			vdom.P(vdom.Textf("tick %d", tick)),
		),
		vdom.Component(counter, vdom.Props{"label": "clicks"}),
		vdom.Ul(
			vdom.Class("items"),
			vdom.Range(items, func(item string, _ int) *vdom.VNode {
				return vdom.Li(vdom.Key(item), item)
			}),
		),
	)
}

// demoItems rotates a fixed list by tick so the keyed reorder path is
// exercised continuously.
func demoItems(tick int) []string {
	base := []string{"alpha", "beta", "gamma", "delta"}
	n := tick % len(base)
	out := make([]string, 0, len(base))
	out = append(out, base[n:]...)
	return append(out, base[:n]...)
}

// counter holds local state that must survive re-renders of the app.
func counter(props vdom.Props) *vdom.VNode {
	label, _ := props["label"].(string)
	count, setCount := runtime.UseState(0)

	runtime.UseEffect(func() runtime.Cleanup {
		slog.Debug("counter changed", "count", count)
		return nil
	}, []any{count})

	return vdom.Div(
		vdom.Class("counter"),
		vdom.Button(
			vdom.OnClick(func() { setCount.Update(func(n int) int { return n + 1 }) }),
			vdom.Textf("%s: %d", label, count),
		),
	)
}
