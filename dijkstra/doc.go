// SPDX-License-Identifier: MIT

// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// over integer-indexed graphs with non-negative integer edge weights.
//
// Overview:
//
//   - ShortestPaths(vertexCount, edges, source) returns a *Result: one entry per
//     vertex index holding either a finite distance or "unreachable".
//   - Dijkstra(g, source) is a facade over a *core.Graph; it hands
//     g.VertexCount() and g.Edges() to ShortestPaths.
//   - A min-heap keyed by tentative distance always expands the next-closest vertex.
//
// Lazy decrease-key:
//
//	When a shorter distance to v is found, a new (distance, v) pair is pushed.
//	The outdated pair stays in the heap; when popped, its distance is compared
//	with the best known distance for v and the stale entry is skipped.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E)
//
// Unreachable vertices:
//
//	Result.Reachable(v) is false and Result.Distance(v) returns (0, false).
//	There is no finite sentinel that could be confused with a real distance.
//
// Numeric semantics:
//
//	Weights and distances are int64. Overflow is not guarded: callers must
//	bound weights so accumulated path lengths fit.
//
// Error handling (sentinel errors):
//
//   - ErrBadVertexCount:   vertexCount < 0.
//   - ErrSourceOutOfRange: source outside [0, vertexCount) when vertexCount > 0.
//   - ErrEdgeOutOfRange:   an edge endpoint outside [0, vertexCount).
//   - ErrNegativeWeight:   any edge with weight < 0 (O(E) pre-scan, before any work).
//   - ErrNilGraph:         Dijkstra called with a nil graph.
//   - ErrBadMaxDistance / ErrBadInfThreshold: panics raised by the option constructors.
//
// Options:
//
//   - WithMaxDistance(x):       vertices farther than x are reported unreachable.
//   - WithInfEdgeThreshold(t):  edges with weight ≥ t are skipped.
//
// Thread safety:
//
//	The engine keeps all state per call and never mutates its inputs.
//	Callers must not mutate the graph while a query runs.
package dijkstra
