// Package vfmetrics exposes Prometheus collectors for VF search
// instrumentation and adapts them onto the vf.Match hook options.
//
// A Collector owns four metrics — candidate pairs tried, pairs that passed
// feasibility, complete matchings found, and a search-duration histogram —
// registered on the registry handed to New.
//
// Typical wiring:
//
//	col := vfmetrics.New(prometheus.DefaultRegisterer)
//	start := time.Now()
//	res, err := vf.Match(s, col.MatchOptions()...)
//	col.ObserveSearch(time.Since(start))
//
// MatchOptions registers OnPair and OnMatch hooks; vf keeps a single hook
// of each kind, so a later WithOnPair/WithOnMatch in the same Match call
// replaces the collector's.
//
// The counters are safe for concurrent searches sharing one Collector.
package vfmetrics
