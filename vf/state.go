package vf

import (
	"github.com/katalvlaran/vfmatch/argraph"
)

// State is one node of the VF search space: a partial injective mapping
// M ⊆ V(G1)×V(G2) together with the terminal sets used for candidate
// selection and the look-ahead cut.
//
// A State holds non-owning references to its two graphs and O(n1+n2)
// bookkeeping of its own. AddPair is destructive; callers that need to
// backtrack must Clone first. A State is exclusive to one goroutine;
// the shared graphs are read-only and need no locking.
type State[N, E any] struct {
	g1, g2 *argraph.Graph[N, E]
	n1, n2 int
	policy Policy

	coreLen  int
	t1inLen  int
	t1outLen int
	t2inLen  int
	t2outLen int

	core1  []argraph.NodeID // G1 node → matched G2 node, or NullNode
	core2  []argraph.NodeID // G2 node → matched G1 node, or NullNode
	flags1 []byte
	flags2 []byte
}

// New creates the empty matching state for the pair (g1, g2).
// Returns ErrNilGraph for a nil graph and ErrOptionViolation for a bad
// Option. Complexity: O(n1+n2).
func New[N, E any](g1, g2 *argraph.Graph[N, E], opts ...Option) (*State[N, E], error) {
	if g1 == nil || g2 == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n1, n2 := g1.NodeCount(), g2.NodeCount()
	s := &State[N, E]{
		g1: g1, g2: g2,
		n1: n1, n2: n2,
		policy: o.policy,
		core1:  make([]argraph.NodeID, n1),
		core2:  make([]argraph.NodeID, n2),
		flags1: make([]byte, n1),
		flags2: make([]byte, n2),
	}
	for i := range s.core1 {
		s.core1[i] = argraph.NullNode
	}
	for i := range s.core2 {
		s.core2[i] = argraph.NullNode
	}

	return s, nil
}

// Graph1 returns the pattern graph of the state.
func (s *State[N, E]) Graph1() *argraph.Graph[N, E] { return s.g1 }

// Graph2 returns the target graph of the state.
func (s *State[N, E]) Graph2() *argraph.Graph[N, E] { return s.g2 }

// CoreLen reports the size of the partial mapping.
func (s *State[N, E]) CoreLen() int { return s.coreLen }

// IsGoal reports whether the mapping is complete under the state's Policy:
// all of G1 and G2 for Isomorphism, all of G1 for SubgraphIsomorphism.
func (s *State[N, E]) IsGoal() bool {
	if s.policy == SubgraphIsomorphism {
		return s.coreLen == s.n1
	}
	return s.coreLen == s.n1 && s.coreLen == s.n2
}

// IsDead reports whether no extension of the mapping can ever reach a goal.
// For Isomorphism any size mismatch, of the graphs or of the paired
// terminal sets, is fatal; for SubgraphIsomorphism only G1 exceeding G2.
func (s *State[N, E]) IsDead() bool {
	if s.policy == SubgraphIsomorphism {
		return s.n1 > s.n2 ||
			s.t1outLen > s.t2outLen ||
			s.t1inLen > s.t2inLen
	}
	return s.n1 != s.n2 ||
		s.t1outLen != s.t2outLen ||
		s.t1inLen != s.t2inLen
}

// NextPair yields the next candidate pair to try after (prev1, prev2),
// both NullNode to start the enumeration. The candidate sets are chosen by
// terminal-set priority: both out-terminal sets when non-empty, else both
// in-terminal sets, else the unmapped remainder of each graph. The G1
// candidate is the first qualifying node at or after prev1 and stays fixed
// while prev2 advances through G2, which is what lets a caller sweep every
// G2 partner of one G1 node before moving on.
//
// Reports false when the current sets are exhausted; the caller must then
// backtrack.
func (s *State[N, E]) NextPair(prev1, prev2 argraph.NodeID) (argraph.NodeID, argraph.NodeID, bool) {
	n1 := int(prev1)
	if prev1 == argraph.NullNode {
		n1 = 0
	}
	n2 := int(prev2)
	if prev2 == argraph.NullNode {
		n2 = 0
	} else {
		n2++
	}

	switch {
	case s.t1outLen > 0 && s.t2outLen > 0:
		for n1 < s.n1 && s.flags1[n1]&(flagCore|flagTermOut) != flagTermOut {
			n1++
			n2 = 0
		}
		for n2 < s.n2 && s.flags2[n2]&(flagCore|flagTermOut) != flagTermOut {
			n2++
		}
	case s.t1inLen > 0 && s.t2inLen > 0:
		for n1 < s.n1 && s.flags1[n1]&(flagCore|flagTermIn) != flagTermIn {
			n1++
			n2 = 0
		}
		for n2 < s.n2 && s.flags2[n2]&(flagCore|flagTermIn) != flagTermIn {
			n2++
		}
	default:
		for n1 < s.n1 && s.flags1[n1]&flagCore != 0 {
			n1++
			n2 = 0
		}
		for n2 < s.n2 && s.flags2[n2]&flagCore != 0 {
			n2++
		}
	}

	if n1 < s.n1 && n2 < s.n2 {
		return argraph.NodeID(n1), argraph.NodeID(n2), true
	}

	return argraph.NullNode, argraph.NullNode, false
}

// AddPair extends the mapping with (n1, n2). The pair must have passed
// IsFeasiblePair. Effects, in order: the pair leaves its terminal sets and
// enters the core; then every unmapped neighbor of n1 and n2 is promoted
// into the matching terminal set of its side. Destructive; Clone first to
// checkpoint. Complexity: O(deg(n1)+deg(n2)).
func (s *State[N, E]) AddPair(n1, n2 argraph.NodeID) {
	s.coreLen++
	if s.flags1[n1]&flagTermIn != 0 {
		s.t1inLen--
	}
	if s.flags1[n1]&flagTermOut != 0 {
		s.t1outLen--
	}
	if s.flags2[n2]&flagTermIn != 0 {
		s.t2inLen--
	}
	if s.flags2[n2]&flagTermOut != 0 {
		s.t2outLen--
	}
	s.core1[n1] = n2
	s.core2[n2] = n1
	s.flags1[n1] |= flagCore
	s.flags2[n2] |= flagCore

	for i, d := 0, s.g1.InDegree(n1); i < d; i++ {
		u := s.g1.InNeighbor(n1, i)
		if s.flags1[u]&(flagCore|flagTermIn) == 0 {
			s.flags1[u] |= flagTermIn
			s.t1inLen++
		}
	}
	for i, d := 0, s.g1.OutDegree(n1); i < d; i++ {
		u := s.g1.OutNeighbor(n1, i)
		if s.flags1[u]&(flagCore|flagTermOut) == 0 {
			s.flags1[u] |= flagTermOut
			s.t1outLen++
		}
	}
	for i, d := 0, s.g2.InDegree(n2); i < d; i++ {
		v := s.g2.InNeighbor(n2, i)
		if s.flags2[v]&(flagCore|flagTermIn) == 0 {
			s.flags2[v] |= flagTermIn
			s.t2inLen++
		}
	}
	for i, d := 0, s.g2.OutDegree(n2); i < d; i++ {
		v := s.g2.OutNeighbor(n2, i)
		if s.flags2[v]&(flagCore|flagTermOut) == 0 {
			s.flags2[v] |= flagTermOut
			s.t2outLen++
		}
	}
}

// CoreSet returns the current mapping as pairs, ascending in the G1 node.
// Complexity: O(n1).
func (s *State[N, E]) CoreSet() []Pair {
	pairs := make([]Pair, 0, s.coreLen)
	for u := 0; u < s.n1; u++ {
		if v := s.core1[u]; v != argraph.NullNode {
			pairs = append(pairs, Pair{G1: argraph.NodeID(u), G2: v})
		}
	}

	return pairs
}

// Clone returns a state that shares the graphs but owns independent copies
// of the mapping and flag arrays; mutations to the clone leave the original
// untouched. This is the checkpoint mechanism for backtracking.
// Complexity: O(n1+n2).
func (s *State[N, E]) Clone() *State[N, E] {
	c := *s
	c.core1 = make([]argraph.NodeID, len(s.core1))
	copy(c.core1, s.core1)
	c.core2 = make([]argraph.NodeID, len(s.core2))
	copy(c.core2, s.core2)
	c.flags1 = make([]byte, len(s.flags1))
	copy(c.flags1, s.flags1)
	c.flags2 = make([]byte, len(s.flags2))
	copy(c.flags2, s.flags2)

	return &c
}
