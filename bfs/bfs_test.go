// SPDX-License-Identifier: MIT

package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/skyroute/bfs"
	"github.com/katalvlaran/skyroute/core"
)

// chain builds a directed graph from "from→to" pairs, registering vertices
// in first-seen order. Weights are irrelevant to BFS and set to 1.
func chain(t *testing.T, pairs ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range pairs {
		u, err := g.AddVertex(p[0])
		if err != nil {
			t.Fatal(err)
		}
		v, err := g.AddVertex(p[1])
		if err != nil {
			t.Fatal(err)
		}
		if err = g.AddEdge(u, v, 1); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 0); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	_, _ = g.AddVertex("A")
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_FewestEdges: A→B→C→D plus a shortcut A→D.
func TestBFS_FewestEdges(t *testing.T) {
	g := chain(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"}, [2]string{"A", "D"})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	path, err := res.PathTo(3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("PathTo(D) = %v; want %v", path, want)
	}
}

// TestBFS_DirectionAndUnreached ensures edges are not walked backwards.
func TestBFS_DirectionAndUnreached(t *testing.T) {
	g := chain(t, [2]string{"A", "B"}, [2]string{"C", "B"})
	res, err := bfs.BFS(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Order) != 1 {
		t.Errorf("Order = %v; want only the start", res.Order)
	}
	if res.Reached(0) || res.Reached(2) {
		t.Errorf("A and C must not be reached from B")
	}
	if _, err = res.PathTo(0); !errors.Is(err, bfs.ErrNoPath) {
		t.Errorf("PathTo(A): want ErrNoPath, got %v", err)
	}
}

func TestBFS_MaxDepthAndHooks(t *testing.T) {
	g := chain(t, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"C", "D"})
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached(3) {
		t.Errorf("D is 3 hops away and must be beyond MaxDepth=2")
	}

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(v, depth int) error {
		if v == 2 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want wrapped hook error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err = bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
