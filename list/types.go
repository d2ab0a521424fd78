// SPDX-License-Identifier: MIT

package list

import "errors"

// Sentinel errors returned by list operations.
var (
	// ErrIndexOutOfRange indicates a positional access outside [0, Len()).
	ErrIndexOutOfRange = errors.New("list: index out of range")

	// ErrNotFound indicates that Remove did not find the value.
	ErrNotFound = errors.New("list: value not found")

	// ErrEmpty indicates an end access on a list with no elements.
	ErrEmpty = errors.New("list: list is empty")
)

// Equal reports whether two values are the same element.
type Equal[T any] func(a, b T) bool

// singlyNode is one link of a Singly chain.
type singlyNode[T any] struct {
	value T
	next  *singlyNode[T]
}

// doublyNode is one link of a Doubly chain; prev is a back reference only.
type doublyNode[T any] struct {
	value T
	next  *doublyNode[T]
	prev  *doublyNode[T]
}

// eqComparable is the default predicate for comparable element types.
func eqComparable[T comparable](a, b T) bool { return a == b }
