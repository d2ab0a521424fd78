// SPDX-License-Identifier: MIT

// Package queue provides a generic FIFO queue backed by a singly linked chain
// with head and tail pointers.
//
// Offer, Poll and Peek are O(1). Poll and Peek on an empty queue return ErrEmpty.
// A Queue is not safe for concurrent use.
package queue

import "errors"

// ErrEmpty indicates Poll or Peek on a queue with no elements.
var ErrEmpty = errors.New("queue: queue is empty")

type node[T any] struct {
	value T
	next  *node[T]
}

// Queue is a first-in first-out container.
// The zero value is an empty queue ready to use.
type Queue[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New returns an empty queue.
func New[T any]() *Queue[T] { return &Queue[T]{} }

// Offer appends v at the back.
func (q *Queue[T]) Offer(v T) {
	n := &node[T]{value: v}
	if q.tail == nil {
		q.head = n
	} else {
		q.tail.next = n
	}
	q.tail = n
	q.size++
}

// Poll removes and returns the earliest offered value.
func (q *Queue[T]) Poll() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := q.head
	q.head = n.next
	if q.head == nil {
		q.tail = nil
	}
	n.next = nil
	q.size--

	return n.value, nil
}

// Peek returns the front value without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.head == nil {
		var zero T
		return zero, ErrEmpty
	}

	return q.head.value, nil
}

// Len returns the number of queued values.
func (q *Queue[T]) Len() int { return q.size }

// IsEmpty reports whether the queue has no values.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// Clear drops every value.
func (q *Queue[T]) Clear() {
	q.head, q.tail, q.size = nil, nil, 0
}

// Values returns a snapshot, front first.
func (q *Queue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for n := q.head; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
