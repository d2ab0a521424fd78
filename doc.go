// SPDX-License-Identifier: MIT

// Package skyroute is a small airline toolkit: hand-built generic containers,
// a weighted directed graph of airports and a shortest-path engine, plus the
// managers and tooling that put them to work.
//
// What is inside?
//
//	Containers:
//		list/      singly and doubly linked lists
//		stack/     LIFO stack
//		queue/     FIFO queue
//		avl/       self-balancing binary search tree with unique keys
//	Graph:
//		core/      fixed-capacity weighted directed graph, codes mapped to indices
//		dijkstra/  single-source shortest paths with lazy decrease-key
//		bfs/       fewest-edges traversal over a queue.Queue frontier
//		dfs/       iterative depth-first traversal over a stack.Stack
//	Domain:
//		airline/   airport and passenger directories, route network, fleet,
//		           departures board; each manager guards its containers
//		loader/    YAML and HCL network files
//		cmd/skyroute  command-line itinerary queries
//
// Concurrency:
//
//	The container and graph packages do not lock. The airline managers own
//	their containers exclusively and serialize access with sync.RWMutex.
//
// Quick start:
//
//	net := airline.NewRouteNetwork()
//	_ = net.AddAirport("SEA")
//	_ = net.AddAirport("ATL")
//	_ = net.AddRoute("SEA", "ATL", 310)
//	it, err := net.Cheapest("SEA", "ATL")
package skyroute
