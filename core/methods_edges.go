// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion & queries: AddEdge/HasEdge/Neighbors/Edges/EdgeCount.
// Determinism:
//   - Neighbors(i) lists edges in insertion order.
//   - Edges() lists edges by source index, then insertion order.
// Failure atomicity:
//   - A rejected AddEdge leaves adjacency untouched.

package core

import "fmt"

// AddEdge appends the directed edge from → to with the given weight.
//
// Steps:
//  1. Validate both indices were assigned (ErrIndexOutOfRange).
//  2. Validate weight ≥ 0 (ErrNegativeWeight).
//  3. Loop constraint (ErrLoopNotAllowed).
//  4. Multi-edge constraint (ErrMultiEdgeNotAllowed).
//  5. Append Edge to adj[from].
//
// Errors from steps 1–2 wrap ErrInvalidArgument as well as the cause.
// Complexity: O(1) amortized; O(deg(from)) when multi-edges are disabled.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	// 1) Index validation
	if !g.valid(from) || !g.valid(to) {
		return fmt.Errorf("%w: %w: edge %d→%d with %d vertices",
			ErrInvalidArgument, ErrIndexOutOfRange, from, to, len(g.codes))
	}
	// 2) Weight constraint
	if weight < 0 {
		return fmt.Errorf("%w: %w: edge %s→%s weight=%d",
			ErrInvalidArgument, ErrNegativeWeight, g.codes[from], g.codes[to], weight)
	}
	// 3) Loop constraint
	if from == to && !g.allowLoops {
		return fmt.Errorf("%w: %s", ErrLoopNotAllowed, g.codes[from])
	}
	// 4) Multi-edge existence check
	if !g.allowMulti && g.hasEdge(from, to) {
		return fmt.Errorf("%w: %s→%s", ErrMultiEdgeNotAllowed, g.codes[from], g.codes[to])
	}
	// 5) Store
	g.adj[from] = append(g.adj[from], Edge{From: from, To: to, Weight: weight})
	g.edges++

	return nil
}

// HasEdge reports whether at least one edge from → to exists.
// Invalid indices report false.
func (g *Graph) HasEdge(from, to int) bool {
	if !g.valid(from) || !g.valid(to) {
		return false
	}

	return g.hasEdge(from, to)
}

// Neighbors returns a copy of the outgoing edges of vertex i.
func (g *Graph) Neighbors(i int) ([]Edge, error) {
	if !g.valid(i) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	out := make([]Edge, len(g.adj[i]))
	copy(out, g.adj[i])

	return out, nil
}

// Edges returns a flat copy of every edge, grouped by source index.
// This is the edge list handed to the shortest-path engine.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, es := range g.adj {
		out = append(out, es...)
	}

	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int { return g.edges }

func (g *Graph) hasEdge(from, to int) bool {
	for _, e := range g.adj[from] {
		if e.To == to {
			return true
		}
	}

	return false
}
