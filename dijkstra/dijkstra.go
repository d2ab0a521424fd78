// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/skyroute/core"
)

// ShortestPaths computes shortest distances from source to every vertex in
// [0, vertexCount) over the given directed edges.
//
// Preconditions and validation (in order):
//  1. vertexCount must be ≥ 0 (ErrBadVertexCount).
//  2. vertexCount == 0 yields an empty Result, regardless of source.
//  3. source must be in [0, vertexCount) (ErrSourceOutOfRange).
//  4. Every edge endpoint must be in range (ErrEdgeOutOfRange).
//  5. No edge can have negative weight (ErrNegativeWeight).
//
// Unreachable vertices are reported through Result.Reachable, never as an error.
// The edges slice is read only; repeated calls with the same input return
// identical results.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(vertexCount int, edges []core.Edge, source int, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if vertexCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, vertexCount)
	}
	if vertexCount == 0 {
		return &Result{source: source}, nil
	}
	if source < 0 || source >= vertexCount {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, vertexCount)
	}

	// 3) Pre-scan edges and bucket them by source index. Fail fast.
	adj := make([][]core.Edge, vertexCount)
	for _, e := range edges {
		if e.From < 0 || e.From >= vertexCount || e.To < 0 || e.To >= vertexCount {
			return nil, fmt.Errorf("%w: edge %d→%d with %d vertices", ErrEdgeOutOfRange, e.From, e.To, vertexCount)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		adj[e.From] = append(adj[e.From], e)
	}

	// 4) Run
	r := &runner{
		options: cfg,
		adj:     adj,
		dist:    make([]int64, vertexCount),
		prev:    make([]int, vertexCount),
		done:    make([]bool, vertexCount),
		pq:      make(nodePQ, 0, vertexCount),
	}
	r.init(source)
	r.process()

	// 5) Materialize the distance vector
	res := &Result{
		source:  source,
		dist:    r.dist,
		reached: make([]bool, vertexCount),
		prev:    r.prev,
	}
	for v, d := range r.dist {
		if d != math.MaxInt64 {
			res.reached[v] = true
		} else {
			res.dist[v] = 0
		}
	}

	return res, nil
}

// Dijkstra runs ShortestPaths over g's registered vertices and edges.
func Dijkstra(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return ShortestPaths(g.VertexCount(), g.Edges(), source, opts...)
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options
	adj     [][]core.Edge // outgoing edges per vertex; read-only here
	dist    []int64       // best-known distance; math.MaxInt64 = not yet reached
	prev    []int         // predecessor on the best-known path, -1 if none
	done    []bool        // distance finalized
	pq      nodePQ        // min-heap with lazy decrease-key
}

// init sets every distance to +∞ except the source and seeds the heap.
func (r *runner) init(source int) {
	for v := range r.dist {
		r.dist[v] = math.MaxInt64
		r.prev[v] = -1
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: source, dist: 0})
}

// process is the core loop. It repeatedly extracts the vertex with the
// minimum tentative distance and relaxes its outgoing edges.
//
// Loop invariant: a vertex popped with dist == r.dist[id] is final.
// Termination: the heap empties, or its minimum exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)

		// Stale entry: a shorter distance was already recorded for this vertex.
		if item.dist > r.dist[item.id] || r.done[item.id] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.done[item.id] = true
		r.relax(item.id)
	}
}

// relax tries to improve every neighbor of u through u.
func (r *runner) relax(u int) {
	for _, e := range r.adj[u] {
		// Impassable edge
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
