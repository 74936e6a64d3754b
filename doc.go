// SPDX-License-Identifier: MIT

// Package gridpath finds routes across 2D integer grids with A*.
//
// 🚀 What is gridpath?
//
//	A small pathfinding toolkit built around a NodeNetwork of grid cells:
//		• pq:        bounded, generic min-priority queue with in-place priority updates
//		• network:   nodes, weights, neighbour links and the A* search itself
//		• gridgraph: rectangular grids and ASCII maps turned into networks
//		• spatial:   R-tree snapping of arbitrary points onto network cells
//		• geo:       routes as orb geometries and GeoJSON features
//		• metrics:   Prometheus counters and histograms per search
//
// Every search ends in one of three outcomes:
//
//	found             target-first path, nil error
//	invalid endpoint  empty path, nil error, warning logged
//	no route          nil path, network.ErrNoPath
//
// Quick ASCII example:
//
//	. . # .
//	. . # .
//	. . . .
//
// A route from (0,0) to (3,0) must go around the wall through row 2.
//
//	go run ./cmd/gridpath -map maze.txt -from 0,0 -to 3,0
package gridpath
