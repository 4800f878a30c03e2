package vf

import (
	"testing"

	"github.com/katalvlaran/vfmatch/argedit"
	"github.com/katalvlaran/vfmatch/argraph"
)

// checkInvariants asserts the structural invariants that must hold for a
// State after any transition: mutual core consistency, flag/population
// agreement, and terminal counters matching their bit populations over
// non-core nodes.
func checkInvariants[N, E any](t *testing.T, s *State[N, E]) {
	t.Helper()

	for u, v := range s.core1 {
		if v == argraph.NullNode {
			if s.flags1[u]&flagCore != 0 {
				t.Fatalf("node %d side 1: core flag set without mapping", u)
			}
			continue
		}
		if s.flags1[u]&flagCore == 0 {
			t.Fatalf("node %d side 1: mapped without core flag", u)
		}
		if s.core2[v] != argraph.NodeID(u) {
			t.Fatalf("core_1[%d]=%d but core_2[%d]=%d", u, v, v, s.core2[v])
		}
	}
	for v, u := range s.core2 {
		if u == argraph.NullNode {
			if s.flags2[v]&flagCore != 0 {
				t.Fatalf("node %d side 2: core flag set without mapping", v)
			}
			continue
		}
		if s.flags2[v]&flagCore == 0 {
			t.Fatalf("node %d side 2: mapped without core flag", v)
		}
		if s.core1[u] != argraph.NodeID(v) {
			t.Fatalf("core_2[%d]=%d but core_1[%d]=%d", v, u, u, s.core1[u])
		}
	}

	pop := func(flags []byte, want byte) int {
		n := 0
		for _, f := range flags {
			if f&flagCore != 0 {
				continue // terminal counters cover non-core nodes only
			}
			if f&want != 0 {
				n++
			}
		}
		return n
	}
	core1 := 0
	for _, f := range s.flags1 {
		if f&flagCore != 0 {
			core1++
		}
	}
	core2 := 0
	for _, f := range s.flags2 {
		if f&flagCore != 0 {
			core2++
		}
	}
	if s.coreLen != core1 || s.coreLen != core2 {
		t.Fatalf("coreLen=%d, flag populations %d/%d", s.coreLen, core1, core2)
	}
	if got := pop(s.flags1, flagTermIn); got != s.t1inLen {
		t.Fatalf("t1inLen=%d, population %d", s.t1inLen, got)
	}
	if got := pop(s.flags1, flagTermOut); got != s.t1outLen {
		t.Fatalf("t1outLen=%d, population %d", s.t1outLen, got)
	}
	if got := pop(s.flags2, flagTermIn); got != s.t2inLen {
		t.Fatalf("t2inLen=%d, population %d", s.t2inLen, got)
	}
	if got := pop(s.flags2, flagTermOut); got != s.t2outLen {
		t.Fatalf("t2outLen=%d, population %d", s.t2outLen, got)
	}
	if s.IsGoal() && s.IsDead() {
		t.Fatal("state is Goal and Dead simultaneously")
	}
}

func cycle(t *testing.T, n int) *argraph.Graph[struct{}, struct{}] {
	t.Helper()
	ed := argedit.New[struct{}, struct{}]()
	for i := 0; i < n; i++ {
		ed.MustInsertNode(struct{}{})
	}
	for i := 0; i < n; i++ {
		if err := ed.InsertEdge(argraph.NodeID(i), argraph.NodeID((i+1)%n), struct{}{}); err != nil {
			t.Fatal(err)
		}
	}
	g, err := ed.Build()
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// TestInvariants_FullSearch checks every invariant after every transition
// of an exhaustive search over two triangles.
func TestInvariants_FullSearch(t *testing.T) {
	g1, g2 := cycle(t, 3), cycle(t, 3)
	s, err := New(g1, g2)
	if err != nil {
		t.Fatal(err)
	}
	checkInvariants(t, s)

	goals := 0
	var explore func(s *State[struct{}, struct{}])
	explore = func(s *State[struct{}, struct{}]) {
		checkInvariants(t, s)
		if s.IsGoal() {
			goals++
			return
		}
		if s.IsDead() {
			return
		}
		prev1, prev2 := argraph.NullNode, argraph.NullNode
		for {
			n1, n2, ok := s.NextPair(prev1, prev2)
			if !ok {
				return
			}
			if s.IsFeasiblePair(n1, n2) {
				next := s.Clone()
				next.AddPair(n1, n2)
				explore(next)
				checkInvariants(t, s) // the parent must be untouched
			}
			prev1, prev2 = n1, n2
		}
	}
	explore(s)

	if goals != 3 {
		t.Fatalf("triangle rotations: got %d goals; want 3", goals)
	}
}

// TestAddPair_TerminalBookkeeping pins the counter updates of one extension.
func TestAddPair_TerminalBookkeeping(t *testing.T) {
	g1, g2 := cycle(t, 3), cycle(t, 3)
	s, err := New(g1, g2)
	if err != nil {
		t.Fatal(err)
	}

	s.AddPair(0, 0)
	checkInvariants(t, s)
	// In a 3-cycle, node 0 has in-neighbor 2 and out-neighbor 1.
	if s.t1inLen != 1 || s.t1outLen != 1 || s.t2inLen != 1 || s.t2outLen != 1 {
		t.Fatalf("terminal sizes after (0,0): %d/%d/%d/%d; want 1/1/1/1",
			s.t1inLen, s.t1outLen, s.t2inLen, s.t2outLen)
	}
	if s.flags1[2]&flagTermIn == 0 || s.flags1[1]&flagTermOut == 0 {
		t.Fatal("neighbors of 0 not promoted into terminal sets")
	}

	s.AddPair(1, 1)
	checkInvariants(t, s)
	// Node 1 leaves T1out; node 2 is now in both T-in (edge 2→0) and
	// T-out (edge 1→2).
	if s.t1outLen != 1 || s.t1inLen != 1 {
		t.Fatalf("terminal sizes after (1,1): t1in=%d t1out=%d; want 1/1", s.t1inLen, s.t1outLen)
	}
	if s.flags1[2]&flagTermOut == 0 {
		t.Fatal("node 2 should have joined T1out")
	}

	s.AddPair(2, 2)
	checkInvariants(t, s)
	if !s.IsGoal() || s.CoreLen() != 3 {
		t.Fatalf("complete triangle mapping: goal=%v coreLen=%d", s.IsGoal(), s.CoreLen())
	}
	if s.t1inLen != 0 || s.t1outLen != 0 || s.t2inLen != 0 || s.t2outLen != 0 {
		t.Fatal("terminal counters must drain at the goal")
	}
}
