// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/queue"
)

// queueItem represents a vertex in the BFS frontier.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates the state for one BFS run.
type walker struct {
	graph    *core.Graph
	opts     BFSOptions
	ctx      context.Context
	frontier *queue.Queue[queueItem]
	res      *BFSResult
}

// BFS performs a breadth-first traversal on graph g from start.
// Edge weights are ignored: depth counts edges.
//
// Returns ErrGraphNil, ErrOptionViolation, ErrStartVertexNotFound,
// a wrapped OnVisit error, or ctx.Err() on cancellation.
//
// Complexity: O(V + E).
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	// 1) Validate graph
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2) Build options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	// 3) Validate start
	if _, err := g.Code(start); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, err)
	}

	n := g.VertexCount()
	w := &walker{
		graph:    g,
		opts:     o,
		ctx:      o.Ctx,
		frontier: queue.New[queueItem](),
		res: &BFSResult{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = -1
		w.res.Parent[i] = -1
	}

	// 4) Seed and run
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks v discovered at depth d and appends it to the frontier.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.frontier.Offer(queueItem{v: v, depth: d})
}

// loop processes the frontier until it is empty, canceled, or an error occurs.
func (w *walker) loop() error {
	for !w.frontier.IsEmpty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, err := w.frontier.Poll()
		if err != nil {
			return err
		}
		w.res.Order = append(w.res.Order, item.v)
		if err = w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		if err = w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors discovers unvisited neighbors within the depth limit.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	edges, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.v, err)
	}
	for _, e := range edges {
		if w.res.Depth[e.To] < 0 {
			w.enqueue(e.To, nextDepth, item.v)
		}
	}

	return nil
}
