package utils

import (
	"iter"
)

// CircularQueue is a fixed capacity queue that overwrites its oldest element once full.
type CircularQueue[T any] struct {
	items []T
	head  int
	size  int
}

// NewCircularQueue returns an empty queue able to hold capacity elements.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Get returns the element at logical position index (0 = oldest). The boolean is false if index is
// out of range.
func (q *CircularQueue[T]) Get(index int) (item T, ok bool) {
	if index < 0 || index >= q.size {
		return item, false
	}
	return q.items[(q.head+index)%len(q.items)], true
}

// Last returns the newest element. The boolean is false if the queue is empty.
func (q *CircularQueue[T]) Last() (T, bool) {
	return q.Get(q.size - 1)
}

// Iter iterates the elements from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Len returns the amount of elements in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum number of items the queue can hold.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

// Pop removes and returns the oldest element. The boolean ok is false if the
// queue is empty.
func (q *CircularQueue[T]) Pop() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	item = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return item, true
}

// Append appends an item, dropping the oldest element if the queue is full. Appending to a queue
// with no capacity is a no-op.
func (q *CircularQueue[T]) Append(item T) {
	if len(q.items) == 0 {
		return
	}
	if q.size == len(q.items) {
		q.items[q.head] = item
		q.head = (q.head + 1) % len(q.items)
		return
	}
	q.items[(q.head+q.size)%len(q.items)] = item
	q.size++
}
