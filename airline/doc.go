// SPDX-License-Identifier: MIT

// Package airline holds the domain managers built on the skyroute toolkit.
//
// Each manager owns its containers exclusively and guards them with a
// sync.RWMutex, so managers are safe for concurrent use even though the
// underlying list, stack, queue, avl and core packages are not:
//
//   - AirportDirectory:   AVL tree of Airport keyed by code.
//   - PassengerDirectory: AVL tree of Passenger keyed by ID.
//   - RouteNetwork:       core.Graph of airports and priced routes, queried
//     through dijkstra (cheapest), bfs (fewest legs) and dfs (reachability).
//   - Fleet:              singly linked list of airplanes, a boarding queue
//     per airplane and a stack of completed flights.
//   - DeparturesBoard:    doubly linked list of scheduled flights.
//
// Managers log through an injected zerolog.Logger (silent by default) and
// return wrapped errors; NotFound-style lookups can be matched with errors.Is.
package airline
