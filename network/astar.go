// SPDX-License-Identifier: MIT

package network

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/gridpath/pq"
)

// PathfindAStar returns a lowest-cost path from start to target, ordered target-first.
//
// Returns:
//   - an empty, non-nil slice and nil error if start or target is not a node;
//   - nil and ErrNoPath if target cannot be reached;
//   - the path and nil error otherwise.
//
// Use Reverse for a start-first path, or Search for cost and expansion details.
func (n *Network) PathfindAStar(start, target Coordinate) ([]Coordinate, error) {
	res, err := n.Search(start, target)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search runs A* from start to target and reports the full Result.
//
// Steps:
//  1. Reject unknown endpoints with OutcomeInvalidEndpoint (logged, nil error).
//  2. Seed gScore[start]=0 and the open set with fScore[start]=Score(start, target).
//  3. Pop the lowest fScore; stop on target, otherwise relax each neighbour that is a node.
//  4. An exhausted open set yields OutcomeNoRoute and ErrNoPath.
//
// Complexity: O((V + E) log V) time, O(V) space.
func (n *Network) Search(start, target Coordinate, opts ...SearchOption) (Result, error) {
	cfg := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	began := time.Now()
	res, err := n.search(start, target, cfg)
	if cfg.Observer != nil {
		cfg.Observer.ObserveSearch(res.Outcome, res.Expanded, time.Since(began))
	}

	return res, err
}

func (n *Network) search(start, target Coordinate, cfg SearchOptions) (Result, error) {
	if !n.IsValidNode(start) {
		n.log.Warn("path start not accessible", slog.String("node", start.String()))
		return Result{Path: []Coordinate{}, Outcome: OutcomeInvalidEndpoint}, nil
	}
	if !n.IsValidNode(target) {
		n.log.Warn("path target not accessible", slog.String("node", target.String()))
		return Result{Path: []Coordinate{}, Outcome: OutcomeInvalidEndpoint}, nil
	}

	open, err := pq.New[Coordinate](n.Count())
	if err != nil {
		return Result{}, err
	}
	r := &runner{
		net:      n,
		target:   target,
		options:  cfg,
		open:     open,
		pending:  make(map[Coordinate]*pq.Element[Coordinate]),
		cameFrom: make(map[Coordinate]Coordinate),
		gScore:   map[Coordinate]int{start: 0},
		fScore:   make(map[Coordinate]int),
	}
	r.fScore[start] = n.Score(start, target)
	if err = r.push(start, r.fScore[start]); err != nil {
		return Result{}, err
	}

	return r.process()
}

// runner holds the scratch state of one Search call.
type runner struct {
	net     *Network
	target  Coordinate
	options SearchOptions

	open     *pq.Queue[Coordinate]
	pending  map[Coordinate]*pq.Element[Coordinate] // one element per coordinate ever queued
	cameFrom map[Coordinate]Coordinate
	gScore   map[Coordinate]int
	fScore   map[Coordinate]int
	expanded int
}

// process is the main A* loop.
func (r *runner) process() (Result, error) {
	for r.open.Len() > 0 {
		e, err := r.open.Dequeue()
		if err != nil {
			return Result{}, err
		}
		current := e.Value()
		r.expanded++
		r.options.OnExpand(current, r.gScore[current])

		if current == r.target {
			path, cost := r.makePath()
			return Result{
				Path:     path,
				Cost:     cost,
				Expanded: r.expanded,
				Outcome:  OutcomeFound,
			}, nil
		}

		// relax only queues nodes; the lookup still treats a missing entry as a dead end.
		neighbours, ok := r.net.GetNode(current)
		if !ok {
			continue
		}
		if err = r.relax(current, neighbours); err != nil {
			return Result{}, err
		}
	}

	return Result{Expanded: r.expanded, Outcome: OutcomeNoRoute}, ErrNoPath
}

// relax improves gScore for every neighbour of current reachable at a lower cost.
// Neighbours that are not nodes are skipped.
func (r *runner) relax(current Coordinate, neighbours []Coordinate) error {
	for _, nb := range neighbours {
		if !r.net.IsValidNode(nb) {
			continue
		}

		tempG := r.gScore[current] + Distance(current, nb)
		if r.options.MaxCost > 0 && int64(tempG) > r.options.MaxCost {
			continue
		}
		if known, ok := r.gScore[nb]; ok && tempG >= known {
			continue
		}

		r.cameFrom[nb] = current
		r.gScore[nb] = tempG
		r.fScore[nb] = tempG + r.net.Score(nb, r.target)

		if err := r.push(nb, r.fScore[nb]); err != nil {
			return err
		}
	}

	return nil
}

// push enqueues c with priority f, or lowers its priority if it is already pending.
func (r *runner) push(c Coordinate, f int) error {
	e, seen := r.pending[c]
	if !seen {
		e = pq.NewElement(c)
		r.pending[c] = e
	}
	if r.open.Contains(e) {
		return r.open.UpdatePriority(e, float64(f))
	}
	if err := r.open.Enqueue(e, float64(f)); err != nil {
		return fmt.Errorf("network: open set for %d nodes: %w", r.net.Count(), err)
	}

	return nil
}

// makePath walks cameFrom back from the target, producing a target-first path
// and its accumulated Distance. A predecessor reopened after the target was
// relaxed can make this less than gScore[target].
func (r *runner) makePath() ([]Coordinate, int) {
	current := r.target
	path := []Coordinate{current}
	cost := 0
	for {
		prev, ok := r.cameFrom[current]
		if !ok {
			break
		}
		cost += Distance(prev, current)
		path = append(path, prev)
		current = prev
	}

	return path, cost
}
