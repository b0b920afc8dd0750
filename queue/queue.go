// Package queue provides containers that are traversed by removing
// elements: a LIFO [Stack], a FIFO [Queue] and a max-first [Priority] heap.
//
// All three expose Empty, Pop, Clone and either Top or Front, which is the
// shape the debug printer drains: it clones the container and pops the clone
// until it is empty, so printing never disturbs the original.
//
// Peeking an empty container returns the zero value of T.
package queue

import (
	"cmp"
	"container/heap"
	"slices"
)

// Stack is a last-in, first-out container.
type Stack[T any] struct {
	items []T
}

// NewStack returns a stack holding items, the last one on top.
func NewStack[T any](items ...T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Top returns the most recently pushed element.
func (s *Stack[T]) Top() T {
	var zero T
	if len(s.items) == 0 {
		return zero
	}
	return s.items[len(s.items)-1]
}

// Pop removes and returns the top element. It reports false when the stack
// is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	n := len(s.items) - 1
	v := s.items[n]
	s.items[n] = zero
	s.items = s.items[:n]
	return v, true
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }

// Empty reports whether the stack has no elements.
func (s *Stack[T]) Empty() bool { return len(s.items) == 0 }

// Clone returns an independent copy of the stack.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{items: slices.Clone(s.items)}
}

// Queue is a first-in, first-out container.
type Queue[T any] struct {
	items []T
}

// NewQueue returns a queue holding items, the first one at the front.
func NewQueue[T any](items ...T) *Queue[T] {
	return &Queue[T]{items: slices.Clone(items)}
}

// Push appends v at the back of the queue.
func (q *Queue[T]) Push(v T) { q.items = append(q.items, v) }

// Front returns the oldest element.
func (q *Queue[T]) Front() T {
	var zero T
	if len(q.items) == 0 {
		return zero
	}
	return q.items[0]
}

// Back returns the newest element.
func (q *Queue[T]) Back() T {
	var zero T
	if len(q.items) == 0 {
		return zero
	}
	return q.items[len(q.items)-1]
}

// Pop removes and returns the front element. It reports false when the
// queue is empty.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return v, true
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return len(q.items) }

// Empty reports whether the queue has no elements.
func (q *Queue[T]) Empty() bool { return len(q.items) == 0 }

// Clone returns an independent copy of the queue.
func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{items: slices.Clone(q.items)}
}

// Priority is a binary heap whose top is its greatest element under the
// comparison it was built with. Build one with [NewPriority] or
// [NewPriorityFunc]. The zero value is an empty queue with no comparison:
// elements pushed onto it come out in no particular order.
type Priority[T any] struct {
	h *prioHeap[T]
}

// NewPriority returns a max-first priority queue of ordered values.
func NewPriority[T cmp.Ordered](items ...T) *Priority[T] {
	return NewPriorityFunc(cmp.Compare[T], items...)
}

// NewPriorityFunc returns a priority queue ordered by compare; the element
// comparing greatest is on top.
func NewPriorityFunc[T any](compare func(a, b T) int, items ...T) *Priority[T] {
	h := &prioHeap[T]{items: slices.Clone(items), compare: compare}
	heap.Init(h)
	return &Priority[T]{h: h}
}

// Push inserts v.
func (p *Priority[T]) Push(v T) {
	if p.h == nil {
		p.h = &prioHeap[T]{compare: func(T, T) int { return 0 }}
	}
	heap.Push(p.h, v)
}

// Top returns the greatest element.
func (p *Priority[T]) Top() T {
	var zero T
	if p.Empty() {
		return zero
	}
	return p.h.items[0]
}

// Pop removes and returns the greatest element. It reports false when the
// queue is empty.
func (p *Priority[T]) Pop() (T, bool) {
	var zero T
	if p.Empty() {
		return zero, false
	}
	return heap.Pop(p.h).(T), true
}

// Len returns the number of elements.
func (p *Priority[T]) Len() int {
	if p.h == nil {
		return 0
	}
	return p.h.Len()
}

// Empty reports whether the queue has no elements.
func (p *Priority[T]) Empty() bool { return p.Len() == 0 }

// Clone returns an independent copy of the queue.
func (p *Priority[T]) Clone() *Priority[T] {
	if p.h == nil {
		return &Priority[T]{}
	}
	return &Priority[T]{h: &prioHeap[T]{items: slices.Clone(p.h.items), compare: p.h.compare}}
}

type prioHeap[T any] struct {
	items   []T
	compare func(a, b T) int
}

func (h *prioHeap[T]) Len() int           { return len(h.items) }
func (h *prioHeap[T]) Less(i, j int) bool { return h.compare(h.items[i], h.items[j]) > 0 }
func (h *prioHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *prioHeap[T]) Push(x any)         { h.items = append(h.items, x.(T)) }

func (h *prioHeap[T]) Pop() any {
	var zero T
	n := len(h.items) - 1
	v := h.items[n]
	h.items[n] = zero
	h.items = h.items[:n]
	return v
}
