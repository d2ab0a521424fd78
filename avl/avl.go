// SPDX-License-Identifier: MIT

// Package avl implements a generic self-balancing binary search tree (AVL tree).
//
// Ordering is defined by a comparison function supplied at construction time:
// cmp(a, b) < 0 when a sorts before b, 0 when they share a key, > 0 otherwise.
// Keys are unique; inserting an equal key fails with ErrDuplicateKey.
//
// Invariants (hold after every exported call):
//
//   - BST order: left subtree < node < right subtree, strictly.
//   - Balance:   |height(left) − height(right)| ≤ 1 at every node.
//   - Height:    O(log n); Len() is maintained incrementally.
//
// Complexity:
//
//   - Insert, Search, Delete, Contains: O(log n).
//   - Len, Height: O(1).
//   - All, Values: O(n).
//
// A Tree is not safe for concurrent use.
package avl

import (
	"errors"
	"iter"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by Tree operations.
var (
	// ErrDuplicateKey indicates Insert of a key already present.
	ErrDuplicateKey = errors.New("avl: duplicate key")

	// ErrNotFound indicates Search or Delete of a key not present.
	ErrNotFound = errors.New("avl: key not found")
)

// Compare is a total order over T.
type Compare[T any] func(a, b T) int

type node[T any] struct {
	value       T
	left, right *node[T]
	height      int // leaf == 1
}

// Tree is an AVL tree of T ordered by cmp.
type Tree[T any] struct {
	root *node[T]
	size int
	cmp  Compare[T]
}

// New returns an empty tree ordered by cmp. Panics if cmp is nil.
func New[T any](cmp Compare[T]) *Tree[T] {
	if cmp == nil {
		panic("avl: nil compare function")
	}

	return &Tree[T]{cmp: cmp}
}

// NewOrdered returns an empty tree using the natural order of T.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// Insert adds v. If a value with the same key exists, the tree is left
// untouched and ErrDuplicateKey is returned.
func (t *Tree[T]) Insert(v T) error {
	root, err := t.insert(t.root, v)
	if err != nil {
		return err
	}
	t.root = root
	t.size++

	return nil
}

// Search returns the stored value whose key equals probe's key.
func (t *Tree[T]) Search(probe T) (T, error) {
	n := t.root
	for n != nil {
		c := t.cmp(probe, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n.value, nil
		}
	}
	var zero T

	return zero, ErrNotFound
}

// Contains reports whether probe's key is present.
func (t *Tree[T]) Contains(probe T) bool {
	_, err := t.Search(probe)
	return err == nil
}

// Delete removes the value whose key equals probe's key and rebalances.
// Returns ErrNotFound if the key is absent; the tree is then unchanged.
func (t *Tree[T]) Delete(probe T) error {
	root, err := t.delete(t.root, probe)
	if err != nil {
		return err
	}
	t.root = root
	t.size--

	return nil
}

// Min returns the smallest value, or false on an empty tree.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}

	return minNode(t.root).value, true
}

// Max returns the largest value, or false on an empty tree.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	n := t.root
	for n.right != nil {
		n = n.right
	}

	return n.value, true
}

// Len returns the number of stored values.
func (t *Tree[T]) Len() int { return t.size }

// Height returns the height of the tree (0 when empty).
func (t *Tree[T]) Height() int { return height(t.root) }

// Clear drops every value.
func (t *Tree[T]) Clear() {
	t.root, t.size = nil, 0
}

// All yields values in ascending key order. The tree must not be modified
// during iteration.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		walk(t.root, yield)
	}
}

// Values returns the stored values in ascending key order.
func (t *Tree[T]) Values() []T {
	out := make([]T, 0, t.size)
	walk(t.root, func(v T) bool {
		out = append(out, v)
		return true
	})

	return out
}

func (t *Tree[T]) insert(n *node[T], v T) (*node[T], error) {
	if n == nil {
		return &node[T]{value: v, height: 1}, nil
	}
	c := t.cmp(v, n.value)
	switch {
	case c < 0:
		left, err := t.insert(n.left, v)
		if err != nil {
			return n, err
		}
		n.left = left
	case c > 0:
		right, err := t.insert(n.right, v)
		if err != nil {
			return n, err
		}
		n.right = right
	default:
		return n, ErrDuplicateKey
	}

	return rebalance(n), nil
}

func (t *Tree[T]) delete(n *node[T], probe T) (*node[T], error) {
	if n == nil {
		return nil, ErrNotFound
	}
	c := t.cmp(probe, n.value)
	switch {
	case c < 0:
		left, err := t.delete(n.left, probe)
		if err != nil {
			return n, err
		}
		n.left = left
	case c > 0:
		right, err := t.delete(n.right, probe)
		if err != nil {
			return n, err
		}
		n.right = right
	default:
		if n.left == nil {
			return n.right, nil
		}
		if n.right == nil {
			return n.left, nil
		}
		// two children: replace with the in-order successor
		succ := minNode(n.right)
		n.value = succ.value
		n.right = deleteMin(n.right)
	}

	return rebalance(n), nil
}

// deleteMin unlinks the leftmost node of n's subtree.
func deleteMin[T any](n *node[T]) *node[T] {
	if n.left == nil {
		return n.right
	}
	n.left = deleteMin(n.left)

	return rebalance(n)
}

func minNode[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func walk[T any](n *node[T], yield func(T) bool) bool {
	if n == nil {
		return true
	}

	return walk(n.left, yield) && yield(n.value) && walk(n.right, yield)
}
