package dom

// Handler is a host event callback.
type Handler func(*Event)

// Event is a synthetic host event.
type Event struct {
	Type   string
	Target Node

	// Value carries the input payload for input/change events.
	Value string

	stopped bool
}

// NewEvent creates an event of the given type.
func NewEvent(typ string) *Event {
	return &Event{Type: typ}
}

// StopPropagation prevents the event from bubbling further.
func (ev *Event) StopPropagation() { ev.stopped = true }

// Dispatch delivers the event to e's handler for the event type, then
// bubbles it up the ancestor chain until stopped or the root is
// reached. Target is set to e when unset.
func (e *Element) Dispatch(ev *Event) {
	if ev == nil {
		return
	}
	if ev.Target == nil {
		ev.Target = e
	}
	for cur := e; cur != nil && !ev.stopped; cur = cur.parent {
		if h, ok := cur.handlers[ev.Type]; ok {
			h(ev)
		}
	}
}
