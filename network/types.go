// SPDX-License-Identifier: MIT

package network

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Sentinel errors for network operations.
var (
	// ErrNodeNotFound indicates an edge was added from a coordinate that is not a node.
	ErrNodeNotFound = errors.New("network: node not found")

	// ErrNoPath indicates the open set was exhausted without reaching the target.
	ErrNoPath = errors.New("network: no path between start and target")

	// ErrOptionViolation indicates an invalid SearchOption.
	ErrOptionViolation = errors.New("network: invalid search option")
)

// Coordinate identifies a grid cell and is the identity of a node.
type Coordinate struct {
	X, Y int
}

// String formats c as "(x,y)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Outcome classifies how a search ended.
type Outcome int

const (
	// OutcomeFound means a path to the target was reconstructed.
	OutcomeFound Outcome = iota
	// OutcomeInvalidEndpoint means start or target is not a node.
	OutcomeInvalidEndpoint
	// OutcomeNoRoute means every reachable node was expanded without meeting the target.
	OutcomeNoRoute
)

// String returns a lower-case label, also used as a metrics label value.
func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeInvalidEndpoint:
		return "invalid_endpoint"
	case OutcomeNoRoute:
		return "no_route"
	default:
		return "unknown"
	}
}

// Result is the outcome of a single Search call.
type Result struct {
	Path     []Coordinate // target-first; empty for invalid endpoints, nil for no route
	Cost     int          // accumulated Distance along Path
	Expanded int          // number of nodes popped from the open set
	Outcome  Outcome
}

// Options configures a Network at construction.
type Options struct {
	// DefaultWeight is assigned by AddNode when no weight is given.
	DefaultWeight int
	// Logger receives diagnostics (missing endpoints, missing weights).
	Logger *slog.Logger
}

// Option configures a Network.
type Option func(*Options)

// DefaultOptions returns DefaultWeight=1 and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		DefaultWeight: 1,
		Logger:        slog.New(discardHandler{}),
	}
}

// WithDefaultWeight sets the weight AddNode uses when none is given.
func WithDefaultWeight(w int) Option {
	return func(o *Options) { o.DefaultWeight = w }
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Observer is notified once per Search with the outcome, the expansion count and
// the wall time spent.
type Observer interface {
	ObserveSearch(outcome Outcome, expanded int, elapsed time.Duration)
}

// SearchOptions tunes a single Search call.
type SearchOptions struct {
	// MaxCost, if > 0, stops relaxing neighbours whose gScore would exceed it.
	MaxCost int64
	// OnExpand is called with each expanded coordinate and its gScore.
	OnExpand func(c Coordinate, g int)
	// Observer, if set, receives the search summary.
	Observer Observer

	err error
}

// SearchOption configures a Search call.
type SearchOption func(*SearchOptions)

// DefaultSearchOptions returns no cost cap, a no-op OnExpand and no observer.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		OnExpand: func(Coordinate, int) {},
	}
}

// WithMaxCost caps the gScore of relaxed neighbours.
//
//	c > 0:  cap at c
//	c == 0: no cap
//	c < 0:  ErrOptionViolation
func WithMaxCost(c int64) SearchOption {
	return func(o *SearchOptions) {
		if c < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, c)
			return
		}
		o.MaxCost = c
	}
}

// WithOnExpand registers a hook run for every expanded node.
func WithOnExpand(fn func(c Coordinate, g int)) SearchOption {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithObserver registers an Observer for the search summary.
func WithObserver(obs Observer) SearchOption {
	return func(o *SearchOptions) { o.Observer = obs }
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (d discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discardHandler) WithGroup(string) slog.Handler           { return d }
