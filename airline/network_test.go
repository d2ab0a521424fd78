// SPDX-License-Identifier: MIT

package airline_test

import (
	"testing"

	"github.com/go-test/deep"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/skyroute/airline"
	"github.com/katalvlaran/skyroute/core"
)

type NetworkSuite struct {
	suite.Suite
	net *airline.RouteNetwork
}

// SetupTest builds A→B(1), B→C(2), A→C(10), C→D(1) plus an isolated E.
func (s *NetworkSuite) SetupTest() {
	s.net = airline.NewRouteNetwork()
	for _, c := range []string{"A", "B", "C", "D", "E"} {
		s.Require().NoError(s.net.AddAirport(c))
	}
	s.Require().NoError(s.net.AddRoute("A", "B", 1))
	s.Require().NoError(s.net.AddRoute("B", "C", 2))
	s.Require().NoError(s.net.AddRoute("A", "C", 10))
	s.Require().NoError(s.net.AddRoute("C", "D", 1))
}

func (s *NetworkSuite) TestCheapestPrefersTwoHops() {
	it, err := s.net.Cheapest("A", "D")
	s.Require().NoError(err)
	want := airline.Itinerary{Codes: []string{"A", "B", "C", "D"}, Cost: 4, Legs: 3}
	if diff := deep.Equal(it, want); diff != nil {
		s.T().Errorf("itinerary: %v", diff)
	}
}

func (s *NetworkSuite) TestCheapestToSelf() {
	it, err := s.net.Cheapest("B", "B")
	s.Require().NoError(err)
	s.Equal(int64(0), it.Cost)
	s.Equal(0, it.Legs)
	s.Equal([]string{"B"}, it.Codes)
}

func (s *NetworkSuite) TestNoRoute() {
	_, err := s.net.Cheapest("D", "A")
	s.ErrorIs(err, airline.ErrNoRoute)
	_, err = s.net.Cheapest("A", "E")
	s.ErrorIs(err, airline.ErrNoRoute)
	_, err = s.net.FewestLegs("E", "A")
	s.ErrorIs(err, airline.ErrNoRoute)
}

func (s *NetworkSuite) TestUnknownAirport() {
	_, err := s.net.Cheapest("A", "ZZZ")
	s.ErrorIs(err, airline.ErrUnknownAirport)
	_, err = s.net.Reachable("ZZZ")
	s.ErrorIs(err, airline.ErrUnknownAirport)
	s.ErrorIs(s.net.AddRoute("ZZZ", "A", 1), airline.ErrUnknownAirport)
}

func (s *NetworkSuite) TestAddRouteRejectsNegativeCost() {
	err := s.net.AddRoute("D", "E", -1)
	s.ErrorIs(err, core.ErrInvalidArgument)
	s.ErrorIs(err, core.ErrNegativeWeight)
	s.Len(s.net.Routes(), 4)
}

func (s *NetworkSuite) TestFewestLegsTakesDirectFlight() {
	it, err := s.net.FewestLegs("A", "C")
	s.Require().NoError(err)
	s.Equal([]string{"A", "C"}, it.Codes)
	s.Equal(int64(10), it.Cost)
	s.Equal(1, it.Legs)
}

func (s *NetworkSuite) TestReachable() {
	codes, err := s.net.Reachable("A")
	s.Require().NoError(err)
	s.ElementsMatch([]string{"A", "B", "C", "D"}, codes)
	s.Equal("A", codes[0])

	codes, err = s.net.Reachable("E")
	s.Require().NoError(err)
	s.Equal([]string{"E"}, codes)
}

func (s *NetworkSuite) TestListingAndDot() {
	s.Equal([]string{"A", "B", "C", "D", "E"}, s.net.Airports())
	s.Equal([]airline.Route{
		{From: "A", To: "B", Cost: 1},
		{From: "A", To: "C", Cost: 10},
		{From: "B", To: "C", Cost: 2},
		{From: "C", To: "D", Cost: 1},
	}, s.net.Routes())

	out := s.net.Dot()
	s.Contains(out, "digraph")
	s.Contains(out, `label="10"`)
}

func (s *NetworkSuite) TestCapacity() {
	small := airline.NewRouteNetwork(airline.WithCapacity(1))
	s.Require().NoError(small.AddAirport("A"))
	s.ErrorIs(small.AddAirport("B"), core.ErrCapacityExceeded)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func TestGreatCircleRoute(t *testing.T) {
	lhr := airline.Airport{Code: "LHR", Location: orb.Point{-0.4543, 51.4700}}
	jfk := airline.Airport{Code: "JFK", Location: orb.Point{-73.7781, 40.6413}}

	km := airline.GreatCircleKm(lhr.Location, jfk.Location)
	if km < 5500 || km > 5600 {
		t.Fatalf("LHR→JFK = %d km, want about 5550", km)
	}

	net := airline.NewRouteNetwork()
	for _, a := range []airline.Airport{lhr, jfk} {
		if err := net.AddAirport(a.Code); err != nil {
			t.Fatal(err)
		}
	}
	cost, err := net.AddGreatCircleRoute(lhr, jfk)
	if err != nil {
		t.Fatal(err)
	}
	if cost != km {
		t.Errorf("route cost %d != %d", cost, km)
	}
	it, err := net.Cheapest("LHR", "JFK")
	if err != nil {
		t.Fatal(err)
	}
	if it.Cost != km {
		t.Errorf("cheapest cost %d != %d", it.Cost, km)
	}
}
