// SPDX-License-Identifier: MIT

// Package metrics records search summaries as Prometheus metrics.
//
// A Collector implements network.Observer; pass it to Search with
// network.WithObserver. Metrics:
//
//	gridpath_searches_total{outcome}         counter
//	gridpath_search_expanded_nodes           histogram
//	gridpath_search_duration_seconds         histogram
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/network"
)

// Collector holds the search metrics.
type Collector struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	duration prometheus.Histogram
}

var _ network.Observer = (*Collector)(nil)

// NewCollector creates the metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridpath_searches_total",
			Help: "Total A* searches by outcome",
		}, []string{"outcome"}),
		expanded: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_expanded_nodes",
			Help:    "Nodes popped from the open set per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Search wall time",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		}),
	}
	if reg == nil {
		return c, nil
	}
	for _, m := range []prometheus.Collector{c.searches, c.expanded, c.duration} {
		if err := reg.Register(m); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// ObserveSearch implements network.Observer.
func (c *Collector) ObserveSearch(outcome network.Outcome, expanded int, elapsed time.Duration) {
	c.searches.WithLabelValues(outcome.String()).Inc()
	if outcome == network.OutcomeInvalidEndpoint {
		return
	}
	c.expanded.Observe(float64(expanded))
	c.duration.Observe(elapsed.Seconds())
}
