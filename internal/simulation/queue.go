package simulation

// Queue is a FIFO queue. The zero value is an empty queue.
type Queue[T any] struct {
	items []T
	head  int
}

// Enqueue appends an item at the tail.
func (q *Queue[T]) Enqueue(item T) {
	q.items = append(q.items, item)
}

// Dequeue removes and returns the item at the front. The boolean is false
// when the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	var zero T
	if q.head >= len(q.items) {
		return zero, false
	}

	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++

	// Reclaim the consumed prefix once it dominates the backing array.
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append([]T(nil), q.items[q.head:]...)
		q.head = 0
	}

	return item, true
}

// Size returns the number of queued items.
func (q *Queue[T]) Size() int {
	return len(q.items) - q.head
}

// Items returns a copy of the queued items in FIFO order.
func (q *Queue[T]) Items() []T {
	out := make([]T, q.Size())
	copy(out, q.items[q.head:])
	return out
}

// Clear empties the queue.
func (q *Queue[T]) Clear() {
	q.items = nil
	q.head = 0
}
