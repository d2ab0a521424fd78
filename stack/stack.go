// SPDX-License-Identifier: MIT

// Package stack provides a generic LIFO stack backed by a singly linked chain.
//
// Push, Pop and Peek are O(1). Pop and Peek on an empty stack return ErrEmpty.
// A Stack is not safe for concurrent use.
package stack

import "errors"

// ErrEmpty indicates Pop or Peek on a stack with no elements.
var ErrEmpty = errors.New("stack: stack is empty")

type node[T any] struct {
	value T
	next  *node[T]
}

// Stack is a last-in first-out container.
// The zero value is an empty stack ready to use.
type Stack[T any] struct {
	top  *node[T]
	size int
}

// New returns an empty stack.
func New[T any]() *Stack[T] { return &Stack[T]{} }

// Push places v on top.
func (s *Stack[T]) Push(v T) {
	s.top = &node[T]{value: v, next: s.top}
	s.size++
}

// Pop removes and returns the most recently pushed value.
func (s *Stack[T]) Pop() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}
	n := s.top
	s.top = n.next
	n.next = nil
	s.size--

	return n.value, nil
}

// Peek returns the top value without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.top == nil {
		var zero T
		return zero, ErrEmpty
	}

	return s.top.value, nil
}

// Len returns the number of stacked values.
func (s *Stack[T]) Len() int { return s.size }

// IsEmpty reports whether the stack has no values.
func (s *Stack[T]) IsEmpty() bool { return s.size == 0 }

// Clear drops every value.
func (s *Stack[T]) Clear() {
	s.top, s.size = nil, 0
}

// Values returns a snapshot, top first.
func (s *Stack[T]) Values() []T {
	out := make([]T, 0, s.size)
	for n := s.top; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
