// SPDX-License-Identifier: MIT

package gridgraph

import (
	"github.com/katalvlaran/gridpath/network"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}

	return &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		LandThreshold: opts.LandThreshold,
		weightFromVal: opts.WeightFromValue,
	}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Traversable reports whether (x,y) is in bounds and at or above LandThreshold.
func (gg *GridGraph) Traversable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// ToNetwork builds a network.Network from the grid.
// All nodes are added before any edge, then each node links to its traversable
// neighbours in N, E, S, W order. opts are passed to network.New.
func (gg *GridGraph) ToNetwork(opts ...network.Option) *network.Network {
	n := network.New(opts...)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Traversable(x, y) {
				continue
			}
			if gg.weightFromVal {
				n.AddNode(x, y, gg.CellValues[y][x])
			} else {
				n.AddNode(x, y)
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Traversable(x, y) {
				continue
			}
			from := network.Coordinate{X: x, Y: y}
			for _, d := range offsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Traversable(nx, ny) {
					continue
				}
				_ = n.AddNeighbour(from, network.Coordinate{X: nx, Y: ny})
			}
		}
	}

	return n
}

// index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}
