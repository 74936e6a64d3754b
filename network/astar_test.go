// SPDX-License-Identifier: MIT

package network_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/network"
)

// link adds a directed edge in both directions.
func link(t require.TestingT, n *network.Network, a, b network.Coordinate) {
	require.NoError(t, n.AddNeighbour(a, b))
	require.NoError(t, n.AddNeighbour(b, a))
}

// buildGrid creates a w×h 4-connected network, skipping cells where open returns false.
func buildGrid(t require.TestingT, w, h int, open func(x, y int) bool) *network.Network {
	n := network.New()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if open(x, y) {
				n.AddNode(x, y)
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !open(x, y) {
				continue
			}
			if x+1 < w && open(x+1, y) {
				link(t, n, c(x, y), c(x+1, y))
			}
			if y+1 < h && open(x, y+1) {
				link(t, n, c(x, y), c(x, y+1))
			}
		}
	}

	return n
}

// pathCost sums Distance over consecutive pairs and checks every hop is an edge.
func pathCost(t require.TestingT, n *network.Network, path []network.Coordinate) int {
	total := 0
	for i := 0; i+1 < len(path); i++ {
		// path is target-first, so the edge runs path[i+1] → path[i]
		require.Contains(t, n.Neighbours(path[i+1]), path[i], "missing edge %v→%v", path[i+1], path[i])
		total += network.Distance(path[i+1], path[i])
	}

	return total
}

// bruteForce returns the minimum Distance-sum cost from start to target by
// repeated relaxation, or -1 when unreachable.
func bruteForce(n *network.Network, start, target network.Coordinate) int {
	best := map[network.Coordinate]int{start: 0}
	for changed := true; changed; {
		changed = false
		for _, u := range n.Nodes() {
			du, ok := best[u]
			if !ok {
				continue
			}
			for _, v := range n.Neighbours(u) {
				if !n.IsValidNode(v) {
					continue
				}
				if dv, ok := best[v]; !ok || du+network.Distance(u, v) < dv {
					best[v] = du + network.Distance(u, v)
					changed = true
				}
			}
		}
	}
	if d, ok := best[target]; ok {
		return d
	}

	return -1
}

// recordingObserver keeps the last summary it saw.
type recordingObserver struct {
	calls    int
	outcome  network.Outcome
	expanded int
}

func (r *recordingObserver) ObserveSearch(o network.Outcome, expanded int, _ time.Duration) {
	r.calls++
	r.outcome = o
	r.expanded = expanded
}

// AStarSuite groups A* behaviour tests.
type AStarSuite struct {
	suite.Suite
	chain *network.Network
}

func (s *AStarSuite) SetupTest() {
	s.chain = network.New()
	s.chain.AddNode(0, 0)
	s.chain.AddNode(0, 1)
	s.chain.AddNode(0, 2)
	link(s.T(), s.chain, c(0, 0), c(0, 1))
	link(s.T(), s.chain, c(0, 1), c(0, 2))
}

func (s *AStarSuite) TestChain_TargetFirst() {
	path, err := s.chain.PathfindAStar(c(0, 0), c(0, 2))
	s.Require().NoError(err)
	s.Require().Equal([]network.Coordinate{c(0, 2), c(0, 1), c(0, 0)}, path)

	res, err := s.chain.Search(c(0, 0), c(0, 2))
	s.Require().NoError(err)
	s.Equal(network.OutcomeFound, res.Outcome)
	s.Equal(2, res.Cost)
	s.Equal(path, res.Path)
}

func (s *AStarSuite) TestStartEqualsTarget() {
	path, err := s.chain.PathfindAStar(c(0, 1), c(0, 1))
	s.Require().NoError(err)
	s.Equal([]network.Coordinate{c(0, 1)}, path)

	res, err := s.chain.Search(c(0, 1), c(0, 1))
	s.Require().NoError(err)
	s.Equal(0, res.Cost)
	s.Equal(1, res.Expanded)
}

func (s *AStarSuite) TestInvalidEndpoints_EmptyPath() {
	logger, buf := captureLogger()
	n := network.New(network.WithLogger(logger))
	n.AddNode(0, 0)

	cases := []struct {
		name          string
		start, target network.Coordinate
		msg           string
	}{
		{"BadStart", c(9, 9), c(0, 0), "path start not accessible"},
		{"BadTarget", c(0, 0), c(9, 9), "path target not accessible"},
		{"BothBad", c(8, 8), c(9, 9), "path start not accessible"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			buf.Reset()
			path, err := n.PathfindAStar(tc.start, tc.target)
			s.Require().NoError(err)
			s.Require().NotNil(path)
			s.Empty(path)
			s.Contains(buf.String(), tc.msg)

			res, err := n.Search(tc.start, tc.target)
			s.Require().NoError(err)
			s.Equal(network.OutcomeInvalidEndpoint, res.Outcome)
		})
	}
}

func (s *AStarSuite) TestIsolatedTarget_NoRoute() {
	s.chain.AddNode(5, 5)

	path, err := s.chain.PathfindAStar(c(0, 0), c(5, 5))
	s.Require().ErrorIs(err, network.ErrNoPath)
	s.Nil(path)

	res, err := s.chain.Search(c(0, 0), c(5, 5))
	s.Require().ErrorIs(err, network.ErrNoPath)
	s.Equal(network.OutcomeNoRoute, res.Outcome)
	s.Equal(3, res.Expanded)
}

func (s *AStarSuite) TestDirectedEdgesOnly() {
	n := network.New()
	n.AddNode(0, 0)
	n.AddNode(1, 0)
	s.Require().NoError(n.AddNeighbour(c(0, 0), c(1, 0)))

	_, err := n.PathfindAStar(c(0, 0), c(1, 0))
	s.NoError(err)
	_, err = n.PathfindAStar(c(1, 0), c(0, 0))
	s.ErrorIs(err, network.ErrNoPath)
}

func (s *AStarSuite) TestDanglingNeighbourSkipped() {
	logger, buf := captureLogger()
	n := network.New(network.WithLogger(logger))
	n.AddNode(0, 0)
	n.AddNode(0, 1)
	n.AddNode(3, 3)
	s.Require().NoError(n.AddNeighbour(c(0, 0), c(1, 0))) // (1,0) is not a node
	link(s.T(), n, c(0, 0), c(0, 1))

	path, err := n.PathfindAStar(c(0, 0), c(0, 1))
	s.Require().NoError(err)
	s.Equal([]network.Coordinate{c(0, 1), c(0, 0)}, path)

	_, err = n.PathfindAStar(c(0, 0), c(3, 3))
	s.ErrorIs(err, network.ErrNoPath)
	s.NotContains(buf.String(), "node weight missing")
}

func (s *AStarSuite) TestMaxCost() {
	_, err := s.chain.Search(c(0, 0), c(0, 2), network.WithMaxCost(1))
	s.ErrorIs(err, network.ErrNoPath)

	res, err := s.chain.Search(c(0, 0), c(0, 2), network.WithMaxCost(2))
	s.Require().NoError(err)
	s.Equal(2, res.Cost)

	_, err = s.chain.Search(c(0, 0), c(0, 2), network.WithMaxCost(-1))
	s.ErrorIs(err, network.ErrOptionViolation)
}

func (s *AStarSuite) TestHooks() {
	var order []network.Coordinate
	obs := &recordingObserver{}
	res, err := s.chain.Search(c(0, 0), c(0, 2),
		network.WithOnExpand(func(at network.Coordinate, _ int) { order = append(order, at) }),
		network.WithObserver(obs),
	)
	s.Require().NoError(err)
	s.Equal([]network.Coordinate{c(0, 0), c(0, 1), c(0, 2)}, order)
	s.Equal(1, obs.calls)
	s.Equal(network.OutcomeFound, obs.outcome)
	s.Equal(res.Expanded, obs.expanded)

	_, _ = s.chain.Search(c(0, 0), c(7, 7), network.WithObserver(obs))
	s.Equal(2, obs.calls)
	s.Equal(network.OutcomeInvalidEndpoint, obs.outcome)
}

// TestWeightsSteerExpansion: weights change the expansion order, not the cost.
func (s *AStarSuite) TestWeightsSteerExpansion() {
	// 3×2 grid, two equal-length routes from (0,0) to (2,1).
	n := buildGrid(s.T(), 3, 2, func(int, int) bool { return true })
	n.SetWeight(c(1, 0), 50)

	res, err := n.Search(c(0, 0), c(2, 1))
	s.Require().NoError(err)
	s.Equal(pathCost(s.T(), n, res.Path), res.Cost)
	s.NotContains(res.Path, c(1, 0))
}

func (s *AStarSuite) TestStraightCorridorIsOptimal() {
	n := buildGrid(s.T(), 8, 1, func(int, int) bool { return true })
	res, err := n.Search(c(0, 0), c(7, 0))
	s.Require().NoError(err)
	s.Len(res.Path, 8)
	s.Equal(7, res.Cost)
	s.Equal(bruteForce(n, c(0, 0), c(7, 0)), res.Cost)
}

func TestAStarSuite(t *testing.T) {
	suite.Run(t, new(AStarSuite))
}

// TestRandomGrids_PathConsistency checks, on random small grids, that found paths are
// real edge sequences whose Distance sum equals the reported cost, that reachability
// agrees with a brute-force reference, and that the cost is never below the optimum.
func TestRandomGrids_PathConsistency(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for round := 0; round < 100; round++ {
		w, h := 2+rng.Intn(6), 2+rng.Intn(6)
		walls := make(map[[2]int]bool)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				walls[[2]int{x, y}] = rng.Intn(4) == 0
			}
		}
		walls[[2]int{0, 0}] = false
		walls[[2]int{w - 1, h - 1}] = false
		n := buildGrid(t, w, h, func(x, y int) bool { return !walls[[2]int{x, y}] })
		for _, node := range n.Nodes() {
			n.SetWeight(node, 1+rng.Intn(3))
		}

		start, target := c(0, 0), c(w-1, h-1)
		want := bruteForce(n, start, target)
		res, err := n.Search(start, target)
		if want < 0 {
			require.ErrorIs(t, err, network.ErrNoPath, "round %d", round)
			require.Nil(t, res.Path)
			continue
		}
		require.NoError(t, err, "round %d", round)
		require.Equal(t, target, res.Path[0])
		require.Equal(t, start, res.Path[len(res.Path)-1])
		require.Equal(t, res.Cost, pathCost(t, n, res.Path), "round %d", round)
		require.GreaterOrEqual(t, res.Cost, want, "round %d", round)
	}
}
