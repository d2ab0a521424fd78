// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search (single-source and forest) on a
// core.Graph, walking directed edges by vertex index.
//
// What:
//
//   - DFS(g, start, opts...) explores as far as possible along each branch
//     before backtracking. Supports:
//   - Pre-order (OnVisit) and post-order (OnExit) hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Edge filtering with a SkippedEdges diagnostic
//   - Forest traversal via WithFullTraversal
//
// Why:
//   - Answer "which airports can be reached at all from here" in O(V+E)
//   - Provide pre- and post-order sequences for further analysis
//
// Implementation:
//
//	The walk keeps an explicit stack.Stack of frames (vertex, edge cursor)
//	instead of recursing.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of hooks and filters
//   - Memory: O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start index is not assigned
//   - context.Canceled        DFS canceled via context
//   - hook errors             wrapped from OnVisit or OnExit
package dfs
