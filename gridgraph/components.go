// SPDX-License-Identifier: MIT

package gridgraph

import "github.com/katalvlaran/gridpath/network"

// ConnectedComponents finds all 4-connected regions of traversable cells.
// Components are returned in row-major order of their first cell; cells within a
// component are in BFS order from that cell.
//
// Two cells share a component exactly when ToNetwork links them by some path,
// so this is a cheap reachability pre-check before a search.
//
// Time:   O(W·H·4).
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]network.Coordinate {
	seen := make([]bool, gg.Width*gg.Height)
	var comps [][]network.Coordinate

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Traversable(x, y) || seen[gg.index(x, y)] {
				continue
			}
			seen[gg.index(x, y)] = true
			queue := []network.Coordinate{{X: x, Y: y}}

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range offsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !gg.Traversable(vx, vy) || seen[gg.index(vx, vy)] {
						continue
					}
					seen[gg.index(vx, vy)] = true
					queue = append(queue, network.Coordinate{X: vx, Y: vy})
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
