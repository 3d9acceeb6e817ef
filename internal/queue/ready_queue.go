// Package queue provides the ready queues shared by the workload generator
// and a scheduler worker.
package queue

import (
	"container/heap"
	"context"
	"sync"
)

// Less reports whether a must leave the queue before b. Elements that do not
// order against each other leave in insertion order.
type Less[T any] func(a, b T) bool

type entry[T any] struct {
	value T
	seq   uint64
}

type entries[T any] struct {
	items []entry[T]
	less  Less[T]
}

func (e *entries[T]) Len() int { return len(e.items) }

func (e *entries[T]) Less(i, j int) bool {
	a, b := e.items[i], e.items[j]
	if e.less != nil {
		if e.less(a.value, b.value) {
			return true
		}
		if e.less(b.value, a.value) {
			return false
		}
	}
	return a.seq < b.seq
}

func (e *entries[T]) Swap(i, j int) { e.items[i], e.items[j] = e.items[j], e.items[i] }

func (e *entries[T]) Push(x any) { e.items = append(e.items, x.(entry[T])) }

func (e *entries[T]) Pop() any {
	old := e.items
	n := len(old)
	item := old[n-1]
	old[n-1] = entry[T]{}
	e.items = old[:n-1]
	return item
}

// ReadyQueue is a mutex guarded queue whose ordering is fixed at
// construction. Pop blocks until an element is pushed or ctx is done.
type ReadyQueue[T any] struct {
	mu      sync.Mutex
	entries entries[T]
	seq     uint64
	notify  chan struct{}
}

// New returns a queue ordered by less, falling back to insertion order.
func New[T any](less Less[T]) *ReadyQueue[T] {
	return &ReadyQueue[T]{
		entries: entries[T]{less: less},
		notify:  make(chan struct{}, 1),
	}
}

// NewFIFO returns a queue ordered purely by insertion.
func NewFIFO[T any]() *ReadyQueue[T] {
	return New[T](nil)
}

func (q *ReadyQueue[T]) Push(v T) {
	q.mu.Lock()
	heap.Push(&q.entries, entry[T]{value: v, seq: q.seq})
	q.seq++
	q.mu.Unlock()

	q.signal()
}

// TryPop removes the head of the queue without blocking.
func (q *ReadyQueue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	if q.entries.Len() == 0 {
		q.mu.Unlock()
		var zero T
		return zero, false
	}
	e := heap.Pop(&q.entries).(entry[T])
	remaining := q.entries.Len()
	q.mu.Unlock()

	// another waiter may have missed the signal consumed by this pop
	if remaining > 0 {
		q.signal()
	}
	return e.value, true
}

func (q *ReadyQueue[T]) Pop(ctx context.Context) (T, error) {
	for {
		if v, ok := q.TryPop(); ok {
			return v, nil
		}
		select {
		case <-q.notify:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func (q *ReadyQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.entries.Len()
}

// Drain empties the queue and returns the removed elements in pop order.
func (q *ReadyQueue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]T, 0, q.entries.Len())
	for q.entries.Len() > 0 {
		out = append(out, heap.Pop(&q.entries).(entry[T]).value)
	}
	return out
}

func (q *ReadyQueue[T]) signal() {
	select {
	case q.notify <- struct{}{}:
	default:
	}
}
