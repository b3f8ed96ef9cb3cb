package ecs

// Event is a world event payload, drained by the host once per frame.
type Event struct {
	Type string
	Data any
}

const (
	// EventQuit asks the host to shut the game down.
	EventQuit = "quit"
	// EventCaptureChanged reports a cursor capture flip; Data is the new
	// captured state as a bool.
	EventCaptureChanged = "capture_changed"
)

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
