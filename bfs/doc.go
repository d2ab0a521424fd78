// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph, returning
// fewest-edges depths, parent links and visit order.
//
// What
//
//   - Explore vertices in non-decreasing edge count from a start index.
//   - Returns a BFSResult containing:
//   - Order:  visit sequence
//   - Depth:  per-index distance in edges (-1 when not reached)
//   - Parent: per-index predecessor in the BFS tree (-1 for the start)
//   - OnVisit hook may abort the search with an error.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Follows edges in their stored direction only.
//
// Why
//
//	The route network answers "fewest legs" queries with BFS, where every
//	flight counts as one hop regardless of its cost.
//
// Determinism
//
//	core.Graph.Neighbors returns edges in insertion order and BFS enqueues
//	them in that order, so the visit sequence is reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the frontier queue, Depth and Parent.
//
// Usage
//
//	res, err := bfs.BFS(g, start,
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithOnVisit(func(v, depth int) error { return nil }),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start index is not assigned.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNoPath               from PathTo for unreached vertices.
//   - Wrapped user-supplied hook errors from OnVisit; ctx.Err() on cancellation.
package bfs
