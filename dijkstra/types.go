// SPDX-License-Identifier: MIT

// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrBadVertexCount indicates a negative vertex count.
	ErrBadVertexCount = errors.New("dijkstra: vertex count is negative")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates a source index outside [0, vertexCount).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrEdgeOutOfRange indicates an edge endpoint outside [0, vertexCount).
	ErrEdgeOutOfRange = errors.New("dijkstra: edge endpoint out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat all edges (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – vertices whose distance would exceed this are left unreachable.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable obstacles.
//
//	Must be > 0. Default is math.MaxInt64 (no obstacles).
type Options struct {
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold above which edges are non-traversable
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance sets a maximum distance threshold.
// Panics with ErrBadMaxDistance on a negative value.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// non-traversable. Panics with ErrBadInfThreshold on zero or negative values.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct with no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}

// Result is the distance vector of one query: an entry per vertex index,
// either a finite non-negative distance or unreachable.
//
// A Result is owned by the caller; the engine never touches it again.
type Result struct {
	source  int
	dist    []int64
	reached []bool
	prev    []int // -1 for the source and unreachable vertices
}

// Source returns the source index of the query.
func (r *Result) Source() int { return r.source }

// Len returns the number of entries (the vertex count of the query).
func (r *Result) Len() int { return len(r.dist) }

// Reachable reports whether v has a finite distance from the source.
// Out-of-range indices report false.
func (r *Result) Reachable(v int) bool {
	return v >= 0 && v < len(r.reached) && r.reached[v]
}

// Distance returns the shortest distance to v and true, or (0, false) when v
// is unreachable or out of range.
func (r *Result) Distance(v int) (int64, bool) {
	if !r.Reachable(v) {
		return 0, false
	}

	return r.dist[v], true
}

// Path returns the vertex indices of one shortest path source → v,
// or false when v is unreachable.
func (r *Result) Path(v int) ([]int, bool) {
	if !r.Reachable(v) {
		return nil, false
	}
	var rev []int
	for cur := v; cur != -1; cur = r.prev[cur] {
		rev = append(rev, cur)
	}
	path := make([]int, len(rev))
	for i, u := range rev {
		path[len(rev)-1-i] = u
	}

	return path, true
}

// Distances returns a copy of the raw vector, with ok[v] == false marking
// unreachable entries (whose dist[v] is meaningless).
func (r *Result) Distances() (dist []int64, ok []bool) {
	dist = make([]int64, len(r.dist))
	ok = make([]bool, len(r.reached))
	copy(dist, r.dist)
	copy(ok, r.reached)

	return dist, ok
}
