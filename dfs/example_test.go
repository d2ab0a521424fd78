// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dfs"
)

// ExampleDFS lists every airport reachable from LHR.
func ExampleDFS() {
	g := core.NewGraph()
	for _, c := range []string{"LHR", "JFK", "LAX", "NRT"} {
		_, _ = g.AddVertex(c)
	}
	_ = g.AddEdge(0, 1, 5540) // LHR→JFK
	_ = g.AddEdge(1, 2, 3970) // JFK→LAX
	_ = g.AddEdge(3, 0, 9560) // NRT→LHR

	res, _ := dfs.DFS(g, 0)
	for _, v := range res.Order {
		code, _ := g.Code(v)
		fmt.Println(code)
	}
	// Output:
	// LHR
	// JFK
	// LAX
}
