// SPDX-License-Identifier: MIT

// Package network holds a sparse weighted grid graph and finds lowest-cost
// paths on it with A*.
//
// Overview:
//
//   - A Coordinate (x, y) is the node identity; there is no separate node ID.
//   - Edges are directed. A 4-neighbour grid is modelled by adding both directions,
//     which is the job of the grid adapter (see gridgraph.ToNetwork).
//   - Every node has an integer weight, WithDefaultWeight(1) unless given explicitly.
//
// Cost model:
//
//	Distance(a, b) = (dx + dy) + |dx - dy| / 2      (integer division)
//	Score(n, t)    = Distance(n, t) + Weight(n)
//
// Distance is both the edge cost between neighbours and the heuristic part of Score,
// so a single step between 4-neighbours costs 1 + 1/2 = 1 with integer division.
//
// Search outcomes:
//
//   - OutcomeInvalidEndpoint: start or target is not a node. The path is an empty,
//     non-nil slice and the error is nil; a warning is logged.
//   - OutcomeNoRoute: the open set was exhausted. The path is nil and the error is ErrNoPath.
//   - OutcomeFound: the path is ordered target-first and Result.Cost is gScore[target].
//
// The open set is a pq.Queue sized to Count() at the start of every call, holding one
// element per coordinate so pending nodes get a decrease-key instead of a duplicate entry.
//
// Thread safety:
//
//   - A Network has no internal locking. Do not mutate it while a search is running,
//     and synchronize externally if searches share a Network with writers.
//
// Complexity:
//
//   - Search: O((V + E) log V) time, O(V) extra space for gScore, cameFrom and the open set.
package network
