// Package frontier provides the priority structure shared by the grid searches:
// a binary min-heap ordered by accumulated cost with FIFO tie-breaking.
//
// Complexity:
//
//   - Push: O(log N)
//   - Pop:  O(log N)
//   - Peek: O(1)
//
// The queue follows the "lazy decrease-key" pattern: callers push a fresh
// entry whenever they improve a cost and discard stale entries when popped.
package frontier

import "container/heap"

// entry is one pending item in the heap.
type entry[T any] struct {
	item T
	cost int64
	seq  uint64 // insertion order, breaks cost ties
}

// entries implements heap.Interface ordered by (cost, seq) ascending.
type entries[T any] []entry[T]

// Len returns the number of items in the heap.
func (e entries[T]) Len() int { return len(e) }

// Less orders by cost, then by insertion order.
func (e entries[T]) Less(i, j int) bool {
	if e[i].cost != e[j].cost {
		return e[i].cost < e[j].cost
	}
	return e[i].seq < e[j].seq
}

// Swap swaps two elements in the heap.
func (e entries[T]) Swap(i, j int) { e[i], e[j] = e[j], e[i] }

// Push is called by heap.Push; x must be an entry[T].
func (e *entries[T]) Push(x any) { *e = append(*e, x.(entry[T])) }

// Pop is called by heap.Pop and removes the last element.
func (e *entries[T]) Pop() any {
	old := *e
	n := len(old)
	it := old[n-1]
	var zero entry[T]
	old[n-1] = zero // drop reference for GC
	*e = old[:n-1]

	return it
}

// Queue is a min-priority queue of T keyed by int64 cost.
// Among equal costs, items pop in the order they were pushed.
// The zero value is ready to use. A Queue is not safe for concurrent use;
// each search owns its own.
type Queue[T any] struct {
	h   entries[T]
	seq uint64
}

// New returns an empty Queue with room for capacity items.
func New[T any](capacity int) *Queue[T] {
	return &Queue[T]{h: make(entries[T], 0, capacity)}
}

// Push inserts item with the given cost.
func (q *Queue[T]) Push(item T, cost int64) {
	heap.Push(&q.h, entry[T]{item: item, cost: cost, seq: q.seq})
	q.seq++
}

// Pop removes and returns the lowest-cost item.
// ok is false when the queue is empty.
func (q *Queue[T]) Pop() (item T, cost int64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	e := heap.Pop(&q.h).(entry[T])
	return e.item, e.cost, true
}

// Peek returns the lowest-cost item without removing it.
func (q *Queue[T]) Peek() (item T, cost int64, ok bool) {
	if len(q.h) == 0 {
		return item, 0, false
	}
	return q.h[0].item, q.h[0].cost, true
}

// Len returns the number of pending items, stale ones included.
func (q *Queue[T]) Len() int { return len(q.h) }

// Reset empties the queue, keeping its backing storage.
func (q *Queue[T]) Reset() {
	clear(q.h)
	q.h = q.h[:0]
	q.seq = 0
}
