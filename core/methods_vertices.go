// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex registration & lookup: AddVertex/IndexOf/Code/HasVertex/Codes/VertexCount.
// Determinism:
//   - Indices are dense and assigned in registration order, starting at 0.
//   - Codes() returns codes in index order.

package core

import "fmt"

// AddVertex registers code and returns its index.
//
// Steps:
//  1. Reject empty codes (ErrEmptyVertexCode).
//  2. If code is already registered, return its existing index (idempotent).
//  3. Reject when every slot is taken (ErrCapacityExceeded).
//  4. Assign the next dense index and allocate an empty adjacency slot.
//
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(code string) (int, error) {
	if code == "" {
		return -1, ErrEmptyVertexCode
	}
	if i, ok := g.index[code]; ok {
		return i, nil
	}
	if len(g.codes) >= g.capacity {
		return -1, fmt.Errorf("%w: %d slots, cannot add %q", ErrCapacityExceeded, g.capacity, code)
	}
	i := len(g.codes)
	g.codes = append(g.codes, code)
	g.adj = append(g.adj, nil)
	g.index[code] = i

	return i, nil
}

// IndexOf resolves a code to its index. Returns ErrVertexNotFound when code
// was never registered.
// Complexity: O(1).
func (g *Graph) IndexOf(code string) (int, error) {
	i, ok := g.index[code]
	if !ok {
		return -1, fmt.Errorf("%w: %q", ErrVertexNotFound, code)
	}

	return i, nil
}

// Code returns the code registered at index i.
func (g *Graph) Code(i int) (string, error) {
	if !g.valid(i) {
		return "", fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}

	return g.codes[i], nil
}

// HasVertex reports whether code is registered.
func (g *Graph) HasVertex(code string) bool {
	_, ok := g.index[code]
	return ok
}

// Codes returns all registered codes in index order.
// Complexity: O(V).
func (g *Graph) Codes() []string {
	out := make([]string, len(g.codes))
	copy(out, g.codes)

	return out
}

// VertexCount returns the number of registered vertices.
func (g *Graph) VertexCount() int { return len(g.codes) }

// valid reports whether i is an assigned index.
func (g *Graph) valid(i int) bool { return i >= 0 && i < len(g.codes) }
