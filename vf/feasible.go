package vf

import "github.com/katalvlaran/vfmatch/argraph"

// IsFeasiblePair decides whether the candidate (n1, n2) may extend the
// mapping. All of the following must hold:
//
//  1. The node attributes are compatible under g1's node Comparator,
//     side-1 attribute first.
//  2. Edge consistency on the mapped neighborhood, in four passes: every
//     edge between n1 and a mapped G1 node must have a counterpart edge in
//     G2 with a compatible attribute, and symmetrically for n2 against G1.
//  3. The VF look-ahead cut: among the unmapped neighbors, the per-side
//     counts of term-in, term-out and brand-new nodes must agree, counted
//     separately over predecessors and successors. Under the
//     SubgraphIsomorphism policy the side-1 counts may not exceed side-2.
//
// Complexity: O((deg(n1)+deg(n2))·log d) for the counterpart lookups.
func (s *State[N, E]) IsFeasiblePair(n1, n2 argraph.NodeID) bool {
	if !s.g1.CompatibleNode(s.g1.NodeAttr(n1), s.g2.NodeAttr(n2)) {
		return false
	}

	// Counters over unmapped neighbors: [0] predecessors, [1] successors.
	var termIn1, termOut1, new1 [2]int
	var termIn2, termOut2, new2 [2]int

	// Predecessors of n1: each mapped source must map to a predecessor of n2.
	for i, d := 0, s.g1.InDegree(n1); i < d; i++ {
		u, attr1 := s.g1.InEdge(n1, i)
		if s.flags1[u]&flagCore != 0 {
			attr2, ok := s.g2.EdgeAttr(s.core1[u], n2)
			if !ok || !s.g1.CompatibleEdge(attr1, attr2) {
				return false
			}
		} else {
			f := s.flags1[u]
			if f&flagTermIn != 0 {
				termIn1[0]++
			}
			if f&flagTermOut != 0 {
				termOut1[0]++
			}
			if f == 0 {
				new1[0]++
			}
		}
	}

	// Successors of n1: each mapped target must be reached from n2.
	for i, d := 0, s.g1.OutDegree(n1); i < d; i++ {
		u, attr1 := s.g1.OutEdge(n1, i)
		if s.flags1[u]&flagCore != 0 {
			attr2, ok := s.g2.EdgeAttr(n2, s.core1[u])
			if !ok || !s.g1.CompatibleEdge(attr1, attr2) {
				return false
			}
		} else {
			f := s.flags1[u]
			if f&flagTermIn != 0 {
				termIn1[1]++
			}
			if f&flagTermOut != 0 {
				termOut1[1]++
			}
			if f == 0 {
				new1[1]++
			}
		}
	}

	// Predecessors of n2: each mapped source must map back to a predecessor of n1.
	for i, d := 0, s.g2.InDegree(n2); i < d; i++ {
		v, attr2 := s.g2.InEdge(n2, i)
		if s.flags2[v]&flagCore != 0 {
			attr1, ok := s.g1.EdgeAttr(s.core2[v], n1)
			if !ok || !s.g1.CompatibleEdge(attr1, attr2) {
				return false
			}
		} else {
			f := s.flags2[v]
			if f&flagTermIn != 0 {
				termIn2[0]++
			}
			if f&flagTermOut != 0 {
				termOut2[0]++
			}
			if f == 0 {
				new2[0]++
			}
		}
	}

	// Successors of n2: each mapped target must be reached from n1.
	for i, d := 0, s.g2.OutDegree(n2); i < d; i++ {
		v, attr2 := s.g2.OutEdge(n2, i)
		if s.flags2[v]&flagCore != 0 {
			attr1, ok := s.g1.EdgeAttr(n1, s.core2[v])
			if !ok || !s.g1.CompatibleEdge(attr1, attr2) {
				return false
			}
		} else {
			f := s.flags2[v]
			if f&flagTermIn != 0 {
				termIn2[1]++
			}
			if f&flagTermOut != 0 {
				termOut2[1]++
			}
			if f == 0 {
				new2[1]++
			}
		}
	}

	if s.policy == SubgraphIsomorphism {
		return termIn1[0] <= termIn2[0] && termIn1[1] <= termIn2[1] &&
			termOut1[0] <= termOut2[0] && termOut1[1] <= termOut2[1] &&
			new1[0] <= new2[0] && new1[1] <= new2[1]
	}

	return termIn1 == termIn2 && termOut1 == termOut2 && new1 == new2
}
