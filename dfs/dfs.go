// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/stack"
)

// frame is one entry of the explicit DFS stack: a vertex and the position of
// the next outgoing edge to examine.
type frame struct {
	v     int
	depth int
	edges []core.Edge
	next  int
}

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph *core.Graph
	opts  DFSOptions
	res   *DFSResult
	path  *stack.Stack[*frame]
}

// DFS performs depth-first search on graph g from start. With
// WithFullTraversal every component is covered and start only picks the first
// root. Neighbors are explored in insertion order.
//
// The walk is iterative, so deep graphs cannot overflow the goroutine stack.
// On abort the partially filled result is returned together with the error.
func DFS(g *core.Graph, start int, opts ...Option) (*DFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if _, err := g.Code(start); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStartVertexNotFound, err)
	}

	n := g.VertexCount()
	res := &DFSResult{
		Order:     make([]int, 0, n),
		PostOrder: make([]int, 0, n),
		Depth:     make([]int, n),
		Parent:    make([]int, n),
		Visited:   make([]bool, n),
	}
	for i := 0; i < n; i++ {
		res.Depth[i] = -1
		res.Parent[i] = -1
	}

	w := &dfsWalker{graph: g, opts: o, res: res, path: stack.New[*frame]()}
	if err := w.traverse(start); err != nil {
		return res, err
	}
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if res.Visited[v] {
				continue
			}
			if err := w.traverse(v); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

// traverse walks one tree rooted at root.
func (w *dfsWalker) traverse(root int) error {
	if err := w.discover(root, -1, 0); err != nil {
		return err
	}

	for !w.path.IsEmpty() {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top, _ := w.path.Peek()
		if top.next == len(top.edges) {
			_, _ = w.path.Pop()
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.v); err != nil {
					return fmt.Errorf("dfs: OnExit error at %d: %w", top.v, err)
				}
			}
			w.res.PostOrder = append(w.res.PostOrder, top.v)

			continue
		}

		e := top.edges[top.next]
		top.next++
		if w.res.Visited[e.To] {
			continue
		}
		if w.opts.FilterEdge != nil && !w.opts.FilterEdge(e) {
			w.res.SkippedEdges++
			continue
		}
		if err := w.discover(e.To, top.v, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// discover marks v visited, runs the pre-order hook and pushes its frame.
// Beyond MaxDepth the frame carries no edges, so v finishes immediately.
func (w *dfsWalker) discover(v, parent, depth int) error {
	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Parent[v] = parent
	w.res.Order = append(w.res.Order, v)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %d: %w", v, err)
		}
	}

	f := &frame{v: v, depth: depth}
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		edges, err := w.graph.Neighbors(v)
		if err != nil {
			return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
		}
		f.edges = edges
	}
	w.path.Push(f)

	return nil
}
