// SPDX-License-Identifier: MIT

package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates an unknown character in an ASCII map.
	ErrBadCell = errors.New("gridgraph: unknown map character")
)

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered traversable.
	LandThreshold int
	// WeightFromValue uses the cell value as the node weight.
	WeightFromValue bool
}

// DefaultGridOptions returns LandThreshold=1 and WeightFromValue=true.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold:   1,
		WeightFromValue: true,
	}
}

// GridGraph is an immutable rectangular grid. CellValues[y][x] holds the input value.
type GridGraph struct {
	Width, Height int
	CellValues    [][]int
	LandThreshold int
	weightFromVal bool
}

// offsets lists the 4-neighbour steps in N, E, S, W order.
var offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
