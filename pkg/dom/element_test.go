package dom

import "testing"

func TestAppendAndRemove(t *testing.T) {
	parent := NewElement("div")
	a := NewText("a")
	b := NewElement("span")

	parent.AppendChild(a)
	parent.AppendChild(b)

	if parent.ChildCount() != 2 {
		t.Fatalf("ChildCount = %d, want 2", parent.ChildCount())
	}
	if a.Parent() != parent || b.Parent() != parent {
		t.Error("children not parented")
	}
	if NextSibling(a) != Node(b) || NextSibling(b) != nil {
		t.Error("sibling order wrong")
	}

	Remove(a)
	if a.Parent() != nil || parent.ChildCount() != 1 {
		t.Error("remove did not detach")
	}
	// Removing a detached node is a no-op.
	Remove(a)
}

func TestInsertBefore(t *testing.T) {
	parent := NewElement("ul")
	a := NewElement("li")
	b := NewElement("li")
	c := NewElement("li")
	parent.AppendChild(a)
	parent.AppendChild(b)

	parent.InsertBefore(c, b)
	if parent.IndexOf(c) != 1 || parent.IndexOf(b) != 2 {
		t.Errorf("order after insert: c=%d b=%d", parent.IndexOf(c), parent.IndexOf(b))
	}

	// Moving an attached node detaches it first.
	parent.InsertBefore(b, a)
	if parent.IndexOf(b) != 0 || parent.ChildCount() != 3 {
		t.Errorf("move produced index %d, count %d", parent.IndexOf(b), parent.ChildCount())
	}

	// Inserting before itself is a no-op.
	before := parent.Children()
	parent.InsertBefore(a, a)
	after := parent.Children()
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("self-insert reordered children")
		}
	}

	// nil ref appends.
	d := NewElement("li")
	parent.InsertBefore(d, nil)
	if parent.IndexOf(d) != parent.ChildCount()-1 {
		t.Error("nil ref did not append")
	}
}

func TestReparenting(t *testing.T) {
	p1 := NewElement("div")
	p2 := NewElement("div")
	n := NewText("x")

	p1.AppendChild(n)
	p2.AppendChild(n)

	if n.Parent() != p2 || p1.ChildCount() != 0 {
		t.Error("append did not reparent")
	}
	// RemoveChild on a non-child is a no-op.
	p1.RemoveChild(n)
	if n.Parent() != p2 {
		t.Error("foreign RemoveChild detached node")
	}
}

func TestProperties(t *testing.T) {
	e := NewElement("input")
	if !e.HasProperty("value") || !e.HasProperty("checked") {
		t.Error("intrinsic properties missing")
	}
	if e.HasProperty("custom") {
		t.Error("unknown property reported present")
	}
	e.SetProperty("custom", 1)
	if !e.HasProperty("custom") {
		t.Error("set property not reported present")
	}
	e.SetProperty("value", "abc")
	if e.Property("value") != "abc" {
		t.Errorf("Property(value) = %v", e.Property("value"))
	}
}

func TestEventDispatchBubbles(t *testing.T) {
	outer := NewElement("div")
	inner := NewElement("button")
	outer.AppendChild(inner)

	var order []string
	inner.AddEventListener("click", func(*Event) { order = append(order, "inner") })
	outer.AddEventListener("click", func(*Event) { order = append(order, "outer") })

	inner.Dispatch(NewEvent("click"))
	if len(order) != 2 || order[0] != "inner" || order[1] != "outer" {
		t.Fatalf("bubble order = %v", order)
	}

	order = nil
	inner.AddEventListener("click", func(ev *Event) {
		order = append(order, "inner")
		ev.StopPropagation()
	})
	inner.Dispatch(NewEvent("click"))
	if len(order) != 1 {
		t.Fatalf("propagation not stopped: %v", order)
	}
}

func TestListenerReplaceSemantics(t *testing.T) {
	e := NewElement("button")
	calls := 0
	e.AddEventListener("click", func(*Event) { calls++ })
	e.AddEventListener("click", func(*Event) { calls += 10 })
	e.Dispatch(NewEvent("click"))
	if calls != 10 {
		t.Errorf("calls = %d, want 10 (replacement semantics)", calls)
	}
	e.RemoveEventListener("click")
	if e.Listens("click") {
		t.Error("listener survived removal")
	}
}

func TestOuterHTML(t *testing.T) {
	e := NewElement("div")
	e.SetProperty("className", "box")
	e.SetAttribute("data-x", "1")
	e.SetStyleProperty("color", "red")
	e.AppendChild(NewText("a <b>"))

	span := NewElement("span")
	span.SetProperty("disabled", true)
	e.AppendChild(span)

	want := `<div class="box" data-x="1" style="color:red">a &lt;b&gt;<span disabled></span></div>`
	if got := e.OuterHTML(); got != want {
		t.Errorf("OuterHTML =\n  %s\nwant\n  %s", got, want)
	}
}

func TestTextContent(t *testing.T) {
	e := NewElement("div")
	e.AppendChild(NewText("a"))
	inner := NewElement("span")
	inner.AppendChild(NewText("b"))
	e.AppendChild(inner)
	e.AppendChild(NewText("c"))
	if got := e.TextContent(); got != "abc" {
		t.Errorf("TextContent = %q", got)
	}
}
