// SPDX-License-Identifier: MIT

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/skyroute/core"
)

// Common vertex codes used across core tests.
const (
	CodeA = "A"
	CodeB = "B"
	CodeC = "C"
	CodeD = "D"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

// mustVertex registers code and fails the test on error.
func (s *GraphSuite) mustVertex(code string) int {
	i, err := s.g.AddVertex(code)
	s.Require().NoError(err)

	return i
}

func (s *GraphSuite) TestAddVertexAssignsDenseStableIndices() {
	require := require.New(s.T())
	for want, code := range []string{CodeA, CodeB, CodeC} {
		require.Equal(want, s.mustVertex(code))
	}

	// Idempotence: re-registering returns the first index.
	i, err := s.g.AddVertex(CodeB)
	require.NoError(err)
	require.Equal(1, i)
	require.Equal(3, s.g.VertexCount())

	for want, code := range []string{CodeA, CodeB, CodeC} {
		got, err := s.g.IndexOf(code)
		require.NoError(err)
		require.Equal(want, got)
		back, err := s.g.Code(got)
		require.NoError(err)
		require.Equal(code, back)
	}
	require.Equal([]string{CodeA, CodeB, CodeC}, s.g.Codes())
}

func (s *GraphSuite) TestLookupErrors() {
	require := require.New(s.T())
	_, err := s.g.AddVertex("")
	require.ErrorIs(err, core.ErrEmptyVertexCode)

	_, err = s.g.IndexOf("ZZZ")
	require.ErrorIs(err, core.ErrVertexNotFound)
	require.False(s.g.HasVertex("ZZZ"))

	_, err = s.g.Code(0)
	require.ErrorIs(err, core.ErrIndexOutOfRange)
	_, err = s.g.Neighbors(-1)
	require.ErrorIs(err, core.ErrIndexOutOfRange)
}

func (s *GraphSuite) TestCapacity() {
	require := require.New(s.T())
	g := core.NewGraph(core.WithCapacity(2))
	require.Equal(2, g.Capacity())
	_, err := g.AddVertex(CodeA)
	require.NoError(err)
	_, err = g.AddVertex(CodeB)
	require.NoError(err)
	_, err = g.AddVertex(CodeC)
	require.ErrorIs(err, core.ErrCapacityExceeded)

	// a registered code is still idempotent when full
	i, err := g.AddVertex(CodeA)
	require.NoError(err)
	require.Equal(0, i)

	require.Equal(core.DefaultCapacity, core.NewGraph(core.WithCapacity(0)).Capacity())
}

func (s *GraphSuite) TestAddEdgeIsDirected() {
	require := require.New(s.T())
	a, b := s.mustVertex(CodeA), s.mustVertex(CodeB)
	require.NoError(s.g.AddEdge(a, b, 7))

	require.True(s.g.HasEdge(a, b))
	require.False(s.g.HasEdge(b, a), "graph must not mirror edges")
	require.Equal(1, s.g.EdgeCount())

	nb, err := s.g.Neighbors(a)
	require.NoError(err)
	require.Equal([]core.Edge{{From: a, To: b, Weight: 7}}, nb)

	// Neighbors returns a copy
	nb[0].Weight = 99
	again, _ := s.g.Neighbors(a)
	require.Equal(int64(7), again[0].Weight)
}

// TestAddEdgeRejectsInvalidArguments checks both the classification and the
// cause, and that adjacency is untouched.
func (s *GraphSuite) TestAddEdgeRejectsInvalidArguments() {
	require := require.New(s.T())
	a, b := s.mustVertex(CodeA), s.mustVertex(CodeB)

	cases := []struct {
		name     string
		from, to int
		weight   int64
		cause    error
	}{
		{"unassigned destination", a, 2, 1, core.ErrIndexOutOfRange},
		{"negative source", -1, b, 1, core.ErrIndexOutOfRange},
		{"negative weight", a, b, -3, core.ErrNegativeWeight},
	}
	for _, tc := range cases {
		err := s.g.AddEdge(tc.from, tc.to, tc.weight)
		require.ErrorIs(err, core.ErrInvalidArgument, tc.name)
		require.ErrorIs(err, tc.cause, tc.name)
	}
	require.Equal(0, s.g.EdgeCount())
	require.Empty(s.g.Edges())
}

func (s *GraphSuite) TestLoopAndMultiEdgePolicies() {
	require := require.New(s.T())
	a, b := s.mustVertex(CodeA), s.mustVertex(CodeB)

	err := s.g.AddEdge(a, a, 1)
	require.ErrorIs(err, core.ErrLoopNotAllowed)
	require.False(errors.Is(err, core.ErrInvalidArgument))

	require.NoError(s.g.AddEdge(a, b, 1))
	require.ErrorIs(s.g.AddEdge(a, b, 2), core.ErrMultiEdgeNotAllowed)

	mg := core.NewGraph(core.WithLoops(), core.WithMultiEdges())
	require.True(mg.Looped())
	require.True(mg.Multigraph())
	x, _ := mg.AddVertex("X")
	y, _ := mg.AddVertex("Y")
	require.NoError(mg.AddEdge(x, x, 0))
	require.NoError(mg.AddEdge(x, y, 1))
	require.NoError(mg.AddEdge(x, y, 2))
	require.Equal(3, mg.EdgeCount())
}

func (s *GraphSuite) TestEdgesGroupedBySource() {
	require := require.New(s.T())
	a, b, c := s.mustVertex(CodeA), s.mustVertex(CodeB), s.mustVertex(CodeC)
	require.NoError(s.g.AddEdge(c, a, 3))
	require.NoError(s.g.AddEdge(a, c, 2))
	require.NoError(s.g.AddEdge(a, b, 1))

	require.Equal([]core.Edge{
		{From: a, To: c, Weight: 2},
		{From: a, To: b, Weight: 1},
		{From: c, To: a, Weight: 3},
	}, s.g.Edges())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	a, b := s.mustVertex(CodeA), s.mustVertex(CodeB)
	require.NoError(s.g.AddEdge(a, b, 4))

	clone := s.g.Clone()
	require.Equal(s.g.Edges(), clone.Edges())
	require.Equal(s.g.Codes(), clone.Codes())

	d, err := clone.AddVertex(CodeD)
	require.NoError(err)
	require.NoError(clone.AddEdge(b, d, 1))
	require.False(s.g.HasVertex(CodeD))
	require.Equal(1, s.g.EdgeCount())

	s.g.ClearEdges()
	require.Equal(0, s.g.EdgeCount())
	require.Equal(2, s.g.VertexCount(), "ClearEdges keeps vertices")
	require.Equal(2, clone.EdgeCount())
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
