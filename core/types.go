// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexCode indicates that the provided vertex code is empty.
	ErrEmptyVertexCode = errors.New("core: vertex code is empty")

	// ErrVertexNotFound indicates a lookup of a code that was never registered.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrCapacityExceeded indicates AddVertex on a graph whose slots are all used.
	ErrCapacityExceeded = errors.New("core: vertex capacity exceeded")

	// ErrInvalidArgument classifies structural violations rejected by AddEdge.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrIndexOutOfRange indicates a vertex index that was never assigned.
	ErrIndexOutOfRange = errors.New("core: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// DefaultCapacity is the number of vertex slots when WithCapacity is not given.
const DefaultCapacity = 256

// Edge is one directed adjacency entry From → To with a non-negative Weight.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity sets the number of vertex slots. Values < 1 are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capacity = n
		}
	}
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithMultiEdges permits parallel edges between the same vertices.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is a fixed-capacity weighted directed graph over string-coded vertices.
//
// codes[i] is the code of vertex i; index maps code → i; adj[i] holds the
// outgoing edges of vertex i. len(codes) == len(adj) == VertexCount().
type Graph struct {
	// Configuration flags
	capacity   int
	allowLoops bool
	allowMulti bool

	// Storage
	codes []string
	index map[string]int
	adj   [][]Edge
	edges int
}

// NewGraph creates an empty Graph with the given options.
// By default: DefaultCapacity slots, no loops, no multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(g)
	}
	g.codes = make([]string, 0, g.capacity)
	g.index = make(map[string]int, g.capacity)
	g.adj = make([][]Edge, 0, g.capacity)

	return g
}

// Capacity returns the number of vertex slots.
func (g *Graph) Capacity() int { return g.capacity }

// Looped reports whether self-loops are permitted.
func (g *Graph) Looped() bool { return g.allowLoops }

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.allowMulti }
