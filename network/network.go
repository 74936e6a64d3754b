// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"log/slog"
	"sort"
)

// Network is a directed graph of grid coordinates with per-node weights.
// Every key of adjacency is a valid node; neighbour lists may reference
// coordinates that are not nodes, which search treats as unreachable.
type Network struct {
	adjacency     map[Coordinate][]Coordinate
	weights       map[Coordinate]int
	defaultWeight int
	log           *slog.Logger
}

// New returns an empty Network configured by opts.
func New(opts ...Option) *Network {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Network{
		adjacency:     make(map[Coordinate][]Coordinate),
		weights:       make(map[Coordinate]int),
		defaultWeight: cfg.DefaultWeight,
		log:           cfg.Logger,
	}
}

// AddNode creates node (x, y) with an empty neighbour list. The first value of
// weight is used when given, otherwise the configured default weight.
// Re-adding an existing node resets its neighbours and weight.
func (n *Network) AddNode(x, y int, weight ...int) {
	w := n.defaultWeight
	if len(weight) > 0 {
		w = weight[0]
	}
	n.AddNodeAt(Coordinate{X: x, Y: y}, w)
}

// AddNodeAt creates node c with the given weight, resetting any existing entry.
func (n *Network) AddNodeAt(c Coordinate, weight int) {
	n.adjacency[c] = []Coordinate{}
	n.weights[c] = weight
}

// AddNeighbour appends a directed edge node→neighbour.
// Returns ErrNodeNotFound if node is not in the network; neighbour need not be.
func (n *Network) AddNeighbour(node, neighbour Coordinate) error {
	list, ok := n.adjacency[node]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNodeNotFound, node)
	}
	n.adjacency[node] = append(list, neighbour)

	return nil
}

// GetNode returns the neighbour list of c and whether c is a node.
func (n *Network) GetNode(c Coordinate) ([]Coordinate, bool) {
	list, ok := n.adjacency[c]
	return list, ok
}

// Neighbours returns the neighbour list of c, or nil if c is not a node.
func (n *Network) Neighbours(c Coordinate) []Coordinate {
	return n.adjacency[c]
}

// IsValidNode reports whether c is a node.
func (n *Network) IsValidNode(c Coordinate) bool {
	_, ok := n.adjacency[c]
	return ok
}

// Weight returns the weight of c, or 0 with a logged warning if c has none.
func (n *Network) Weight(c Coordinate) int {
	if w, ok := n.weights[c]; ok {
		return w
	}
	n.log.Warn("node weight missing, defaulting to 0", slog.String("node", c.String()))

	return 0
}

// SetWeight stores the weight of c. It does not create the node.
func (n *Network) SetWeight(c Coordinate, w int) {
	n.weights[c] = w
}

// Count returns the number of nodes.
func (n *Network) Count() int { return len(n.adjacency) }

// Nodes returns all node coordinates sorted by Y, then X.
func (n *Network) Nodes() []Coordinate {
	out := make([]Coordinate, 0, len(n.adjacency))
	for c := range n.adjacency {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})

	return out
}

// Clear removes every node, edge and weight.
func (n *Network) Clear() {
	n.adjacency = make(map[Coordinate][]Coordinate)
	n.weights = make(map[Coordinate]int)
}

// Distance is the edge cost and heuristic between a and b:
// (dx + dy) + |dx - dy| / 2 with integer division.
func Distance(a, b Coordinate) int {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	stability := abs(dx - dy)

	return (dx + dy) + stability/2
}

// Distance is the package-level Distance, kept as a method for callers holding a Network.
func (n *Network) Distance(a, b Coordinate) int { return Distance(a, b) }

// Score estimates the cost through node towards target: Distance(node, target) + Weight(node).
func (n *Network) Score(node, target Coordinate) int {
	return Distance(node, target) + n.Weight(node)
}

// Reverse returns a copy of path in the opposite order, turning a
// target-first result into a start-first one.
func Reverse(path []Coordinate) []Coordinate {
	if path == nil {
		return nil
	}
	out := make([]Coordinate, len(path))
	for i, c := range path {
		out[len(path)-1-i] = c
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
