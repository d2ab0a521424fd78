// SPDX-License-Identifier: MIT

package airline

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/emicklei/dot"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/skyroute/bfs"
	"github.com/katalvlaran/skyroute/core"
	"github.com/katalvlaran/skyroute/dfs"
	"github.com/katalvlaran/skyroute/dijkstra"
)

// Route is one directed priced connection between two airports.
type Route struct {
	From string
	To   string
	Cost int64
}

// Itinerary is the answer to a route query: the airport codes visited in
// order, the summed cost of the legs and the number of legs.
type Itinerary struct {
	Codes []string
	Cost  int64
	Legs  int
}

// RouteNetwork is the route manager: it owns the weighted directed graph of
// airports and answers route queries through the traversal packages.
type RouteNetwork struct {
	mu  sync.RWMutex
	g   *core.Graph
	log zerolog.Logger
}

// NewRouteNetwork returns an empty network. WithCapacity bounds the number
// of airports.
func NewRouteNetwork(opts ...Option) *RouteNetwork {
	s := applyOptions(opts)

	return &RouteNetwork{
		g:   core.NewGraph(core.WithCapacity(s.capacity)),
		log: s.logger.With().Str("manager", "routes").Logger(),
	}
}

// AddAirport registers code as a vertex. Registering the same code twice is
// a no-op.
func (n *RouteNetwork) AddAirport(code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	i, err := n.g.AddVertex(code)
	if err != nil {
		return fmt.Errorf("airline: add airport %q: %w", code, err)
	}
	n.log.Debug().Str("code", code).Int("index", i).Msg("airport added")

	return nil
}

// AddRoute inserts the directed route from → to with the given cost. Both
// airports must already be registered.
func (n *RouteNetwork) AddRoute(from, to string, cost int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	u, v, err := n.resolve(from, to)
	if err != nil {
		return err
	}
	if err = n.g.AddEdge(u, v, cost); err != nil {
		return fmt.Errorf("airline: add route %s→%s: %w", from, to, err)
	}
	n.log.Debug().Str("from", from).Str("to", to).Int64("cost", cost).Msg("route added")

	return nil
}

// AddGreatCircleRoute inserts a → b priced at the great-circle distance
// between the two airports in whole kilometres, and returns that cost.
func (n *RouteNetwork) AddGreatCircleRoute(a, b Airport) (int64, error) {
	cost := GreatCircleKm(a.Location, b.Location)

	return cost, n.AddRoute(a.Code, b.Code, cost)
}

// GreatCircleKm returns the haversine distance between two (lon, lat)
// points rounded to the nearest kilometre.
func GreatCircleKm(a, b orb.Point) int64 {
	return int64(math.Round(geo.DistanceHaversine(a, b) / 1000))
}

// Cheapest returns the minimum-cost itinerary from → to. ErrNoRoute is
// returned when to cannot be reached.
func (n *RouteNetwork) Cheapest(from, to string) (it Itinerary, err error) {
	start := time.Now()
	defer func() { observe("cheapest", start, err) }()

	n.mu.RLock()
	defer n.mu.RUnlock()

	u, v, err := n.resolve(from, to)
	if err != nil {
		return Itinerary{}, err
	}
	res, err := dijkstra.ShortestPaths(n.g.VertexCount(), n.g.Edges(), u)
	if err != nil {
		return Itinerary{}, fmt.Errorf("airline: cheapest %s→%s: %w", from, to, err)
	}
	cost, ok := res.Distance(v)
	if !ok {
		return Itinerary{}, fmt.Errorf("%w: %s→%s", ErrNoRoute, from, to)
	}
	path, _ := res.Path(v)
	it = Itinerary{Codes: n.codes(path), Cost: cost, Legs: len(path) - 1}
	routeLegs.Observe(float64(it.Legs))
	n.log.Info().Str("from", from).Str("to", to).Int64("cost", cost).Int("legs", it.Legs).Msg("cheapest route")

	return it, nil
}

// FewestLegs returns an itinerary from → to with the fewest legs. Cost is
// the sum of the chosen legs, which need not be the cheapest.
func (n *RouteNetwork) FewestLegs(from, to string) (it Itinerary, err error) {
	start := time.Now()
	defer func() { observe("legs", start, err) }()

	n.mu.RLock()
	defer n.mu.RUnlock()

	u, v, err := n.resolve(from, to)
	if err != nil {
		return Itinerary{}, err
	}
	res, err := bfs.BFS(n.g, u)
	if err != nil {
		return Itinerary{}, fmt.Errorf("airline: fewest legs %s→%s: %w", from, to, err)
	}
	path, err := res.PathTo(v)
	if errors.Is(err, bfs.ErrNoPath) {
		return Itinerary{}, fmt.Errorf("%w: %s→%s", ErrNoRoute, from, to)
	}
	if err != nil {
		return Itinerary{}, err
	}

	it = Itinerary{Codes: n.codes(path), Legs: len(path) - 1}
	for i := 1; i < len(path); i++ {
		it.Cost += n.legCost(path[i-1], path[i])
	}
	routeLegs.Observe(float64(it.Legs))

	return it, nil
}

// Reachable returns the codes of every airport reachable from from, in
// depth-first discovery order and including from itself.
func (n *RouteNetwork) Reachable(from string) (codes []string, err error) {
	start := time.Now()
	defer func() { observe("reachable", start, err) }()

	n.mu.RLock()
	defer n.mu.RUnlock()

	u, err := n.g.IndexOf(from)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, from)
	}
	res, err := dfs.DFS(n.g, u)
	if err != nil {
		return nil, fmt.Errorf("airline: reachable from %s: %w", from, err)
	}

	return n.codes(res.Order), nil
}

// Airports returns every registered code in registration order.
func (n *RouteNetwork) Airports() []string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.g.Codes()
}

// Routes returns every route grouped by origin in registration order.
func (n *RouteNetwork) Routes() []Route {
	n.mu.RLock()
	defer n.mu.RUnlock()

	edges := n.g.Edges()
	out := make([]Route, len(edges))
	for i, e := range edges {
		from, _ := n.g.Code(e.From)
		to, _ := n.g.Code(e.To)
		out[i] = Route{From: from, To: to, Cost: e.Weight}
	}

	return out
}

// Dot renders the network in Graphviz dot notation, one node per airport
// and one edge per route labelled with its cost.
func (n *RouteNetwork) Dot() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	dg := dot.NewGraph(dot.Directed)
	nodes := make([]dot.Node, n.g.VertexCount())
	for i, code := range n.g.Codes() {
		nodes[i] = dg.Node(code)
	}
	for _, e := range n.g.Edges() {
		dg.Edge(nodes[e.From], nodes[e.To], strconv.FormatInt(e.Weight, 10))
	}

	return dg.String()
}

// resolve maps both codes to vertex indices. Callers hold n.mu.
func (n *RouteNetwork) resolve(from, to string) (int, int, error) {
	u, err := n.g.IndexOf(from)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownAirport, from)
	}
	v, err := n.g.IndexOf(to)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrUnknownAirport, to)
	}

	return u, v, nil
}

// codes maps indices back to airport codes. Callers hold n.mu.
func (n *RouteNetwork) codes(path []int) []string {
	out := make([]string, len(path))
	for i, v := range path {
		out[i], _ = n.g.Code(v)
	}

	return out
}

// legCost returns the cheapest u→v edge weight. Callers hold n.mu.
func (n *RouteNetwork) legCost(u, v int) int64 {
	best := int64(-1)
	edges, _ := n.g.Neighbors(u)
	for _, e := range edges {
		if e.To == v && (best < 0 || e.Weight < best) {
			best = e.Weight
		}
	}

	return best
}

func isNoRoute(err error) bool { return errors.Is(err, ErrNoRoute) }
