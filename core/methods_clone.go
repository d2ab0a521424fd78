// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// Determinism:
//   - Clone keeps every code at the same index and every adjacency slice in order.

package core

// Clone returns a deep copy of the Graph: configuration, codes and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	opts := []GraphOption{WithCapacity(g.capacity)}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if g.allowMulti {
		opts = append(opts, WithMultiEdges())
	}
	clone := NewGraph(opts...)
	clone.codes = append(clone.codes, g.codes...)
	for code, i := range g.index {
		clone.index[code] = i
	}
	for _, es := range g.adj {
		var cp []Edge
		if len(es) > 0 {
			cp = make([]Edge, len(es))
			copy(cp, es)
		}
		clone.adj = append(clone.adj, cp)
	}
	clone.edges = g.edges

	return clone
}

// ClearEdges removes every edge but keeps vertices and their indices.
func (g *Graph) ClearEdges() {
	for i := range g.adj {
		g.adj[i] = nil
	}
	g.edges = 0
}
