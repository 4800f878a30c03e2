package vf

import (
	"errors"

	"github.com/katalvlaran/vfmatch/argraph"
)

// Match enumerates every matching reachable from s by depth-first search,
// applying any number of functional MatchOptions.
//
// Each recursion level asks the state for candidate pairs, tests
// feasibility, extends a Clone and descends; the original state is the
// backtrack checkpoint and is left untouched. Cancellation is cooperative:
// the context is checked once per state entered.
//
// Returns ErrNilState, ErrOptionViolation for bad options, the context
// error on cancellation, or any error propagated from an OnMatch hook
// (except ErrStopMatch, which ends the search cleanly).
func Match[N, E any](s *State[N, E], opts ...MatchOption) (*MatchResult, error) {
	if s == nil {
		return nil, ErrNilState
	}
	o := defaultMatchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &MatchResult{}
	err := match(s, &o, res)
	if errors.Is(err, ErrStopMatch) {
		err = nil
	}

	return res, err
}

// match is one level of the recursive descent.
func match[N, E any](s *State[N, E], o *matchOptions, res *MatchResult) error {
	select {
	case <-o.ctx.Done():
		return o.ctx.Err()
	default:
	}

	res.StatesVisited++
	if s.IsGoal() {
		pairs := s.CoreSet()
		res.Matchings = append(res.Matchings, pairs)
		if o.onMatch != nil {
			if err := o.onMatch(pairs); err != nil {
				return err
			}
		}
		if o.maxMatches > 0 && len(res.Matchings) >= o.maxMatches {
			return ErrStopMatch
		}

		return nil
	}
	if s.IsDead() {
		return nil
	}

	prev1, prev2 := argraph.NullNode, argraph.NullNode
	for {
		n1, n2, ok := s.NextPair(prev1, prev2)
		if !ok {
			return nil
		}
		res.PairsTried++
		feasible := s.IsFeasiblePair(n1, n2)
		if o.onPair != nil {
			o.onPair(n1, n2, feasible)
		}
		if feasible {
			res.PairsFeasible++
			next := s.Clone()
			next.AddPair(n1, n2)
			if err := match(next, o, res); err != nil {
				return err
			}
		}
		prev1, prev2 = n1, n2
	}
}
