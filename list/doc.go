// SPDX-License-Identifier: MIT

// Package list provides generic singly and doubly linked lists.
//
// What
//
//   - Singly[T]: forward-linked chain with head and tail pointers.
//     Append is O(1); positional access, search and removal are O(n).
//   - Doubly[T]: adds a back link per node, so both ends support O(1)
//     insertion and removal and the list can be walked tail→head.
//
// Equality
//
//	Remove, IndexOf and Contains compare values with the list's equality
//	predicate. New[T comparable]() uses ==; NewFunc[T any](eq) and
//	NewDoublyFunc[T any](eq) accept any predicate (e.g. compare by key).
//
// Invariants
//
//   - Len() equals the number of nodes reachable from the head
//     (and from the tail via prev links for Doubly).
//   - head and tail are nil exactly when Len() == 0.
//
// Errors (sentinel):
//
//   - ErrIndexOutOfRange – index outside [0, Len()).
//   - ErrNotFound        – value absent on Remove.
//   - ErrEmpty           – First/Last/RemoveFirst/RemoveLast on an empty list.
//
// Thread safety:
//
//	Lists are not safe for concurrent use. Owners synchronize externally.
package list
