package vfmetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/vfmatch/argraph"
	"github.com/katalvlaran/vfmatch/vf"
)

// Collector owns the search metrics. Create one per registry with New;
// all fields are registered there and safe for concurrent searches.
type Collector struct {
	PairsTried     prometheus.Counter
	PairsFeasible  prometheus.Counter
	Matchings      prometheus.Counter
	SearchDuration prometheus.Histogram
}

// New registers the search metrics with reg and returns their Collector.
func New(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		PairsTried: f.NewCounter(prometheus.CounterOpts{
			Name: "vfmatch_pairs_tried_total",
			Help: "Total number of candidate pairs enumerated by the search.",
		}),
		PairsFeasible: f.NewCounter(prometheus.CounterOpts{
			Name: "vfmatch_pairs_feasible_total",
			Help: "Total number of candidate pairs that passed the feasibility test.",
		}),
		Matchings: f.NewCounter(prometheus.CounterOpts{
			Name: "vfmatch_matchings_found_total",
			Help: "Total number of complete matchings reported.",
		}),
		SearchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "vfmatch_search_duration_seconds",
			Help:    "Wall-clock duration of complete Match calls.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// MatchOptions returns the vf options that feed this Collector from a
// Match call.
func (c *Collector) MatchOptions() []vf.MatchOption {
	return []vf.MatchOption{
		vf.WithOnPair(func(_, _ argraph.NodeID, feasible bool) {
			c.PairsTried.Inc()
			if feasible {
				c.PairsFeasible.Inc()
			}
		}),
		vf.WithOnMatch(func([]vf.Pair) error {
			c.Matchings.Inc()

			return nil
		}),
	}
}

// ObserveSearch records the wall-clock duration of one Match call.
func (c *Collector) ObserveSearch(d time.Duration) {
	c.SearchDuration.Observe(d.Seconds())
}
