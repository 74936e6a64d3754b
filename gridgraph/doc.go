// SPDX-License-Identifier: MIT

// Package gridgraph turns a rectangular grid of integer cell values into a
// network.Network ready for A*.
//
// What:
//
//   - Cells with value ≥ LandThreshold are traversable nodes; the rest are walls
//     and are never added to the network.
//   - Every node links to its in-bounds traversable neighbours in N, E, S, W order,
//     so each edge appears in both directions.
//   - With WeightFromValue the cell value becomes the node weight; otherwise the
//     network's default weight applies.
//   - ParseASCII reads a text map: '#' wall, '.' open, '1'..'9' weighted cells.
//   - ConnectedComponents groups traversable cells into 4-connected islands.
//
// Complexity:
//
//   - NewGridGraph:        O(W×H) time and memory (deep copy).
//   - ToNetwork:           O(W×H×4).
//   - ConnectedComponents: O(W×H×4) time, O(W×H) memory.
//
// Errors:
//
//   - ErrEmptyGrid:       input grid has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrBadCell:         ParseASCII met an unknown character.
package gridgraph
