// SPDX-License-Identifier: MIT

package list

import (
	"fmt"
	"iter"
)

// Doubly is a linked list with forward and backward links.
// Each node is owned by the forward chain; prev is used for traversal only.
type Doubly[T any] struct {
	head *doublyNode[T]
	tail *doublyNode[T]
	size int
	eq   Equal[T]
}

// NewDoubly returns an empty Doubly list comparing elements with ==.
func NewDoubly[T comparable]() *Doubly[T] {
	return &Doubly[T]{eq: eqComparable[T]}
}

// NewDoublyFunc returns an empty Doubly list comparing elements with eq.
// Panics if eq is nil.
func NewDoublyFunc[T any](eq Equal[T]) *Doubly[T] {
	if eq == nil {
		panic("list: nil equality predicate")
	}

	return &Doubly[T]{eq: eq}
}

// Add appends v at the tail. Complexity: O(1).
func (l *Doubly[T]) Add(v T) {
	n := &doublyNode[T]{value: v, prev: l.tail}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// AddFirst prepends v at the head. Complexity: O(1).
func (l *Doubly[T]) AddFirst(v T) {
	n := &doublyNode[T]{value: v, next: l.head}
	if l.head == nil {
		l.tail = n
	} else {
		l.head.prev = n
	}
	l.head = n
	l.size++
}

// InsertAt links v so that it ends up at index i, shifting later elements
// back by one. i == Len() appends. Returns ErrIndexOutOfRange unless
// 0 <= i <= Len().
// Complexity: O(min(i, n-i)).
func (l *Doubly[T]) InsertAt(i int, v T) error {
	switch {
	case i == l.size:
		l.Add(v)
		return nil
	case i == 0:
		l.AddFirst(v)
		return nil
	}
	at, err := l.nodeAt(i)
	if err != nil {
		return err
	}
	n := &doublyNode[T]{value: v, prev: at.prev, next: at}
	at.prev.next = n
	at.prev = n
	l.size++

	return nil
}

// First returns the head element, or ErrEmpty.
func (l *Doubly[T]) First() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}

	return l.head.value, nil
}

// Last returns the tail element, or ErrEmpty.
func (l *Doubly[T]) Last() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}

	return l.tail.value, nil
}

// RemoveFirst unlinks and returns the head element, or ErrEmpty. Complexity: O(1).
func (l *Doubly[T]) RemoveFirst() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := l.head
	l.unlink(n)

	return n.value, nil
}

// RemoveLast unlinks and returns the tail element, or ErrEmpty. Complexity: O(1).
func (l *Doubly[T]) RemoveLast() (T, error) {
	if l.tail == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := l.tail
	l.unlink(n)

	return n.value, nil
}

// Get returns the element at index i, walking from whichever end is closer.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(min(i, n-i)).
func (l *Doubly[T]) Get(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return n.value, nil
}

// Remove unlinks the first element equal to v, or returns ErrNotFound.
// Complexity: O(n).
func (l *Doubly[T]) Remove(v T) error {
	for cur := l.head; cur != nil; cur = cur.next {
		if l.eq(cur.value, v) {
			l.unlink(cur)
			return nil
		}
	}

	return ErrNotFound
}

// RemoveAt unlinks and returns the element at index i.
func (l *Doubly[T]) RemoveAt(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}
	l.unlink(n)

	return n.value, nil
}

// IndexOf returns the position of the first element equal to v, or -1.
func (l *Doubly[T]) IndexOf(v T) int {
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if l.eq(cur.value, v) {
			return i
		}
		i++
	}

	return -1
}

// Contains reports whether an element equal to v is present.
func (l *Doubly[T]) Contains(v T) bool { return l.IndexOf(v) >= 0 }

// Find returns the first element satisfying pred.
func (l *Doubly[T]) Find(pred func(T) bool) (T, bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if pred(cur.value) {
			return cur.value, true
		}
	}
	var zero T

	return zero, false
}

// Len returns the number of elements. Complexity: O(1).
func (l *Doubly[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *Doubly[T]) IsEmpty() bool { return l.size == 0 }

// Clear drops every element.
func (l *Doubly[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}

// All yields (index, value) pairs head→tail.
func (l *Doubly[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(i, cur.value) {
				return
			}
			i++
		}
	}
}

// Backward yields (index, value) pairs tail→head following prev links.
func (l *Doubly[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := l.size - 1
		for cur := l.tail; cur != nil; cur = cur.prev {
			if !yield(i, cur.value) {
				return
			}
			i--
		}
	}
}

// Values returns a snapshot of the elements head→tail.
func (l *Doubly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

func (l *Doubly[T]) nodeAt(i int) (*doublyNode[T], error) {
	if i < 0 || i >= l.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, l.size)
	}
	if i < l.size/2 {
		cur := l.head
		for k := 0; k < i; k++ {
			cur = cur.next
		}
		return cur, nil
	}
	cur := l.tail
	for k := l.size - 1; k > i; k-- {
		cur = cur.prev
	}

	return cur, nil
}

func (l *Doubly[T]) unlink(n *doublyNode[T]) {
	if n.prev == nil {
		l.head = n.next
	} else {
		n.prev.next = n.next
	}
	if n.next == nil {
		l.tail = n.prev
	} else {
		n.next.prev = n.prev
	}
	n.next, n.prev = nil, nil
	l.size--
}
