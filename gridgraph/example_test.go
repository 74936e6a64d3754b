// SPDX-License-Identifier: MIT

package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/network"
)

// ExampleGridGraph_ToNetwork loads a small ASCII map and finds a route around a wall.
//
//	. . .
//	# # .
//	. . .
func ExampleGridGraph_ToNetwork() {
	values, _ := gridgraph.ParseASCII(strings.NewReader("...\n##.\n...\n"))
	gg, _ := gridgraph.NewGridGraph(values, gridgraph.DefaultGridOptions())
	n := gg.ToNetwork()

	path, _ := n.PathfindAStar(network.Coordinate{X: 0, Y: 0}, network.Coordinate{X: 0, Y: 2})
	fmt.Println(network.Reverse(path))
	// Output: [(0,0) (1,0) (2,0) (2,1) (2,2) (1,2) (0,2)]
}

// ExampleGridGraph_ConnectedComponents lists 4-connected islands. Cell values only
// matter against LandThreshold, so the 1 and 3 cells on the left form one island.
func ExampleGridGraph_ConnectedComponents() {
	gg, _ := gridgraph.NewGridGraph([][]int{
		{0, 1, 1, 0, 2},
		{1, 1, 0, 2, 2},
		{3, 0, 2, 2, 0},
	}, gridgraph.DefaultGridOptions())

	for i, comp := range gg.ConnectedComponents() {
		fmt.Printf("component %d: %v\n", i, comp)
	}
	// Output:
	// component 0: [(1,0) (2,0) (1,1) (0,1) (0,2)]
	// component 1: [(4,0) (4,1) (3,1) (3,2) (2,2)]
}
