// SPDX-License-Identifier: MIT

package list

import (
	"fmt"
	"iter"
)

// Singly is a forward-linked list of values of type T.
// The zero value is not usable; construct with New or NewFunc.
type Singly[T any] struct {
	head *singlyNode[T]
	tail *singlyNode[T]
	size int
	eq   Equal[T]
}

// New returns an empty Singly list comparing elements with ==.
func New[T comparable]() *Singly[T] {
	return &Singly[T]{eq: eqComparable[T]}
}

// NewFunc returns an empty Singly list comparing elements with eq.
// Panics if eq is nil.
func NewFunc[T any](eq Equal[T]) *Singly[T] {
	if eq == nil {
		panic("list: nil equality predicate")
	}

	return &Singly[T]{eq: eq}
}

// Add appends v at the tail.
// Complexity: O(1).
func (l *Singly[T]) Add(v T) {
	n := &singlyNode[T]{value: v}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

// Get returns the element at index i.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(i).
func (l *Singly[T]) Get(i int) (T, error) {
	n, err := l.nodeAt(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return n.value, nil
}

// Remove unlinks the first element equal to v.
// Returns ErrNotFound if no element matches.
// Complexity: O(n).
func (l *Singly[T]) Remove(v T) error {
	var prev *singlyNode[T]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if l.eq(cur.value, v) {
			l.unlink(prev, cur)
			return nil
		}
	}

	return ErrNotFound
}

// RemoveAt unlinks and returns the element at index i.
// Returns ErrIndexOutOfRange unless 0 <= i < Len().
// Complexity: O(i).
func (l *Singly[T]) RemoveAt(i int) (T, error) {
	var zero T
	if i < 0 || i >= l.size {
		return zero, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, l.size)
	}
	var prev *singlyNode[T]
	cur := l.head
	for k := 0; k < i; k++ {
		prev, cur = cur, cur.next
	}
	l.unlink(prev, cur)

	return cur.value, nil
}

// IndexOf returns the position of the first element equal to v, or -1.
// Complexity: O(n).
func (l *Singly[T]) IndexOf(v T) int {
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
func (l *Singly[T]) Contains(v T) bool { return l.IndexOf(v) >= 0 }

// Find returns the first element satisfying pred.
// Complexity: O(n).
func (l *Singly[T]) Find(pred func(T) bool) (T, bool) {
	for cur := l.head; cur != nil; cur = cur.next {
		if pred(cur.value) {
			return cur.value, true
		}
	}
	var zero T

	return zero, false
}

// Len returns the number of elements. Complexity: O(1).
func (l *Singly[T]) Len() int { return l.size }

// IsEmpty reports whether the list holds no elements.
func (l *Singly[T]) IsEmpty() bool { return l.size == 0 }

// Clear drops every element.
func (l *Singly[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}

// All yields (index, value) pairs head→tail.
// The list must not be modified during iteration.
func (l *Singly[T]) All() iter.Seq2[int, T] {
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

// Values returns a snapshot of the elements in insertion order.
func (l *Singly[T]) Values() []T {
	out := make([]T, 0, l.size)
	for cur := l.head; cur != nil; cur = cur.next {
		out = append(out, cur.value)
	}

	return out
}

// nodeAt walks to index i.
func (l *Singly[T]) nodeAt(i int) (*singlyNode[T], error) {
	if i < 0 || i >= l.size {
		return nil, fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, l.size)
	}
	cur := l.head
	for k := 0; k < i; k++ {
		cur = cur.next
	}

	return cur, nil
}

// unlink removes cur, whose predecessor is prev (nil when cur is the head).
func (l *Singly[T]) unlink(prev, cur *singlyNode[T]) {
	if prev == nil {
		l.head = cur.next
	} else {
		prev.next = cur.next
	}
	if cur == l.tail {
		l.tail = prev
	}
	cur.next = nil
	l.size--
}
