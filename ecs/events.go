package ecs

// Events is a simple FIFO queue of T. Producers Push during a tick, the
// consuming system Drains once per tick.
type Events[T any] struct {
	items []T
}

// Push adds an event.
func (q *Events[T]) Push(evt T) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *Events[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *Events[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
