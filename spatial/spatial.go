// SPDX-License-Identifier: MIT

// Package spatial snaps continuous positions onto the nodes of a network.Network.
//
// Each node occupies the unit square centred on its coordinate, stored in an
// R-tree, so a position inside a cell snaps to that cell and a position over a
// wall snaps to the closest traversable cell.
//
// The index is a snapshot: rebuild it after adding or removing nodes.
package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/gridpath/network"
)

// cellHalf is half the side of the square a node occupies.
const cellHalf = 0.5

// cell is the R-tree entry for one node.
type cell struct {
	at   network.Coordinate
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (c *cell) Bounds() rtreego.Rect { return c.bbox }

// Index answers nearest-node queries over a fixed set of coordinates.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex indexes every node of n.
func NewIndex(n *network.Network) *Index {
	tree := rtreego.NewTree(2, 25, 50) // 2D, min 25, max 50 entries per node
	for _, at := range n.Nodes() {
		tree.Insert(&cell{
			at:   at,
			bbox: rtreego.Point{float64(at.X), float64(at.Y)}.ToRect(cellHalf),
		})
	}

	return &Index{tree: tree}
}

// Len returns the number of indexed nodes.
func (ix *Index) Len() int { return ix.tree.Size() }

// Nearest returns the node whose cell is closest to (x, y).
// ok is false when the index is empty.
func (ix *Index) Nearest(x, y float64) (at network.Coordinate, ok bool) {
	if ix.tree.Size() == 0 {
		return network.Coordinate{}, false
	}
	hit := ix.tree.NearestNeighbor(rtreego.Point{x, y})
	if hit == nil {
		return network.Coordinate{}, false
	}

	return hit.(*cell).at, true
}

// NearestK returns up to k nodes ordered by increasing distance from (x, y).
func (ix *Index) NearestK(k int, x, y float64) []network.Coordinate {
	if k <= 0 {
		return nil
	}
	hits := ix.tree.NearestNeighbors(k, rtreego.Point{x, y})
	out := make([]network.Coordinate, 0, len(hits))
	for _, h := range hits {
		if h == nil {
			continue
		}
		out = append(out, h.(*cell).at)
	}

	return out
}

// Within returns every node whose cell intersects the axis-aligned box
// [minX, maxX] × [minY, maxY].
func (ix *Index) Within(minX, minY, maxX, maxY float64) []network.Coordinate {
	box, err := rtreego.NewRect(
		rtreego.Point{minX, minY},
		[]float64{max(maxX-minX, 1e-9), max(maxY-minY, 1e-9)},
	)
	if err != nil {
		return nil
	}
	hits := ix.tree.SearchIntersect(box)
	out := make([]network.Coordinate, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(*cell).at)
	}

	return out
}
