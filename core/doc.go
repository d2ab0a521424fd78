// SPDX-License-Identifier: MIT

// Package core provides the weighted directed Graph that route-style managers
// build and the dijkstra engine queries.
//
// The Graph G = (V,E) is a fixed-capacity array of vertex slots:
//
//   - Every vertex is identified by a unique, stable string code (e.g. an
//     airport's IATA code) mapped to a dense integer index in [0, VertexCount()).
//   - The code → index mapping is injective and never reused: once "JFK" is
//     assigned index 3, index 3 means "JFK" for the life of the graph.
//   - Each slot owns an adjacency slice of Edge{From, To, Weight} values kept
//     in insertion order.
//
// Configuration Options (GraphOption):
//
//	– WithCapacity(n)
//	    Number of vertex slots (default DefaultCapacity). AddVertex beyond it
//	    returns ErrCapacityExceeded.
//
//	– WithLoops()
//	    Permits self-loops (from == to); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithMultiEdges()
//	    Allows parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(from,to) → ErrMultiEdgeNotAllowed.
//
// Direction:
//
//	Edges are directed. A two-way route is two AddEdge calls, one per
//	direction; this is the caller's responsibility, not the graph's.
//
// Errors:
//
//	ErrEmptyVertexCode     - vertex code is the empty string.
//	ErrVertexNotFound      - IndexOf on an unregistered code.
//	ErrCapacityExceeded    - every vertex slot is in use.
//	ErrInvalidArgument     - classification for the two errors below.
//	ErrIndexOutOfRange     - AddEdge/Neighbors/Code with an unregistered index.
//	ErrNegativeWeight      - AddEdge with weight < 0.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
//
// AddEdge failures wrap both ErrInvalidArgument and the specific cause, so
// errors.Is matches either.
//
// Thread safety:
//
//	Graph performs no locking. Concurrent use requires an external lock held
//	by the owner (see airline.RouteNetwork).
//
// Complexity:
//
//	AddVertex, IndexOf, Code, AddEdge (without multi-edge check): O(1) amortized.
//	AddEdge with multi-edge check, HasEdge: O(deg(from)).
//	Edges, Clone: O(V + E).
package core
