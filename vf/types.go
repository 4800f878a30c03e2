// Package vf defines the policies, options, sentinel errors and result
// types for VF matching-state manipulation and enumeration.
package vf

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/vfmatch/argraph"
)

// Terminal-set membership flags, one byte per node and side.
const (
	flagCore    byte = 0x01 // node is in the partial mapping
	flagTermIn  byte = 0x02 // node has an edge into a mapped node
	flagTermOut byte = 0x04 // node has an edge from a mapped node
)

// Sentinel errors for state construction and enumeration.
var (
	// ErrNilGraph is returned when New receives a nil graph.
	ErrNilGraph = errors.New("vf: graph is nil")

	// ErrNilState is returned when Match receives a nil state.
	ErrNilState = errors.New("vf: state is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("vf: invalid option supplied")

	// ErrStopMatch stops enumeration cleanly when returned from an OnMatch
	// hook; Match swallows it and reports the matchings found so far.
	ErrStopMatch = errors.New("vf: stop matching")
)

// Pair is one correspondence of the mapping: the G1 node matched to G2.
type Pair struct {
	G1 argraph.NodeID
	G2 argraph.NodeID
}

// Policy selects the terminal predicates of a State.
//
//   - Isomorphism (default) — the goal is a complete bijection; a state is
//     dead as soon as the node counts or terminal-set sizes differ.
//   - SubgraphIsomorphism — the goal maps all of G1 into G2; the dead test
//     and the look-ahead cut relax to ≤ comparisons accordingly.
type Policy int

const (
	// Isomorphism requires |M| = n1 = n2 at the goal.
	Isomorphism Policy = iota

	// SubgraphIsomorphism requires only |M| = n1 at the goal.
	SubgraphIsomorphism
)

// Option configures a State at construction.
type Option func(*options)

type options struct {
	policy Policy
	err    error
}

func defaultOptions() options {
	return options{policy: Isomorphism}
}

// WithPolicy selects the terminal predicates; an unknown Policy value is
// surfaced as ErrOptionViolation by New.
func WithPolicy(p Policy) Option {
	return func(o *options) {
		if p != Isomorphism && p != SubgraphIsomorphism {
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, p)
			return
		}
		o.policy = p
	}
}

// MatchOption configures the Match driver via functional arguments.
type MatchOption func(*matchOptions)

type matchOptions struct {
	ctx        context.Context
	maxMatches int
	onMatch    func(pairs []Pair) error
	onPair     func(n1, n2 argraph.NodeID, feasible bool)
	err        error
}

func defaultMatchOptions() matchOptions {
	return matchOptions{ctx: context.Background()}
}

// WithContext sets a context for cooperative cancellation; Match checks it
// between candidate enumerations.
func WithContext(ctx context.Context) MatchOption {
	return func(o *matchOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithMaxMatches stops the search after k complete matchings.
//
//	k > 0: stop after k matchings
//	k == 0: explicit no limit
//	k < 0: invalid option → ErrOptionViolation
func WithMaxMatches(k int) MatchOption {
	return func(o *matchOptions) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxMatches cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.maxMatches = k
	}
}

// WithOnMatch registers a callback invoked with each complete matching,
// ascending in the G1 node. Returning ErrStopMatch ends the search cleanly;
// any other error aborts Match and is propagated.
func WithOnMatch(fn func(pairs []Pair) error) MatchOption {
	return func(o *matchOptions) {
		if fn != nil {
			o.onMatch = fn
		}
	}
}

// WithOnPair registers a callback invoked for every candidate pair tried,
// with the outcome of its feasibility test.
func WithOnPair(fn func(n1, n2 argraph.NodeID, feasible bool)) MatchOption {
	return func(o *matchOptions) {
		if fn != nil {
			o.onPair = fn
		}
	}
}

// MatchResult holds the outcome of an enumeration:
//   - Matchings: every complete matching found, each ascending in the G1 node.
//   - StatesVisited: states entered, including the root.
//   - PairsTried / PairsFeasible: candidate pairs enumerated and the subset
//     that passed the feasibility test.
type MatchResult struct {
	Matchings     [][]Pair
	StatesVisited int
	PairsTried    int
	PairsFeasible int
}
