// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/skyroute/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start index is not assigned
	// in the graph.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, start, opts...).
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
// Complexity remains O(V+E) when filters and hooks are O(1).
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is discovered (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(v, depth int) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order).
	OnExit func(v int) error

	// MaxDepth, if non-negative, limits the walk to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FilterEdge, if non-nil, is called for each outgoing edge before
	// descending. Return false to skip it.
	FilterEdge func(e core.Edge) bool

	// FullTraversal restarts the walk from every unvisited vertex in index
	// order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions with a background context, no hooks,
// no depth limit and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth. Negative values disable the limit.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFilterEdge skips every outgoing edge for which fn returns false.
// Skipped edges are counted in DFSResult.SkippedEdges.
func WithFilterEdge(fn func(e core.Edge) bool) Option {
	return func(o *DFSOptions) {
		o.FilterEdge = fn
	}
}

// WithFullTraversal enables forest traversal over every vertex.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
// Slices are indexed by vertex index.
type DFSResult struct {
	// Order records vertices in discovery sequence (pre-order).
	Order []int

	// PostOrder records vertices in the sequence they finished.
	PostOrder []int

	// Depth is the tree depth of each vertex, -1 when not visited.
	Depth []int

	// Parent is the tree predecessor of each vertex, -1 for roots and
	// unvisited vertices.
	Parent []int

	// Visited flags which vertices were reached.
	Visited []bool

	// SkippedEdges counts edges rejected by FilterEdge.
	SkippedEdges int
}

// Reached returns the indices of all visited vertices in ascending order.
func (r *DFSResult) Reached() []int {
	out := make([]int, 0, len(r.Order))
	for v, ok := range r.Visited {
		if ok {
			out = append(out, v)
		}
	}

	return out
}
