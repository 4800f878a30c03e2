// Package vf implements the VF state-space search for (sub)graph
// isomorphism between two Attributed Relational Graphs.
//
// The central type is State: a partial injective mapping M ⊆ V(G1)×V(G2)
// together with four terminal sets — the unmapped nodes adjacent to M via
// in-edges (T1in, T2in) or out-edges (T1out, T2out) — whose sizes drive
// both candidate selection and pruning. A driver grows M one pair at a
// time:
//
//	s, _ := vf.New(g1, g2)
//	n1, n2, ok := s.NextPair(argraph.NullNode, argraph.NullNode)
//	if ok && s.IsFeasiblePair(n1, n2) {
//	    next := s.Clone()
//	    next.AddPair(n1, n2)
//	    // descend with next; s remains the backtrack point
//	}
//
// The feasibility predicate combines three checks: caller-supplied
// attribute compatibility (through the graphs' Comparator hooks), edge
// consistency between the candidate pair and the already-mapped
// neighborhood, and the VF look-ahead rule comparing terminal-set
// cardinalities around the candidates. Together they guarantee that every
// complete mapping reached through AddPair is a valid isomorphism honoring
// node and edge compatibility.
//
// Match wraps the descent into a ready-made recursive driver with hooks,
// a match limit and context cancellation:
//
//	res, err := vf.Match(s, vf.WithMaxMatches(1))
//
// Policies:
//
//	Isomorphism         – complete bijection G1 ↔ G2 (default)
//	SubgraphIsomorphism – injective embedding of all of G1 into G2
//
// Concurrency: a State belongs to one goroutine. Independent workers can
// search concurrently by giving each its own Clone; the graphs are
// immutable and shared without locking.
//
// Errors:
//
//	ErrNilGraph        – New received a nil graph
//	ErrNilState        – Match received a nil state
//	ErrOptionViolation – invalid Option or MatchOption
//	ErrStopMatch       – clean stop, usable from OnMatch hooks
package vf
