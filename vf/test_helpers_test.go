package vf_test

import (
	"testing"

	"github.com/katalvlaran/vfmatch/argedit"
	"github.com/katalvlaran/vfmatch/argraph"
	"github.com/katalvlaran/vfmatch/vf"
)

// newEditor returns an editor pre-filled with n blank-labeled nodes.
func newEditor(t *testing.T, n int) *argedit.Editor[string, string] {
	t.Helper()
	ed := argedit.New[string, string]()
	for i := 0; i < n; i++ {
		ed.MustInsertNode("")
	}

	return ed
}

// buildGraph assembles a labeled graph from node labels and (from, to) pairs.
func buildGraph(t *testing.T, labels []string, edges [][2]int) *argraph.Graph[string, string] {
	t.Helper()
	ed := argedit.New[string, string]()
	for _, l := range labels {
		ed.MustInsertNode(l)
	}
	for _, e := range edges {
		if err := ed.InsertEdge(argraph.NodeID(e[0]), argraph.NodeID(e[1]), ""); err != nil {
			t.Fatal(err)
		}
	}
	g, err := ed.Build()
	if err != nil {
		t.Fatal(err)
	}

	return g
}

// directedCycle builds an unlabeled n-cycle 0→1→…→0 as a labeled graph
// with empty labels so the same helpers serve attribute tests.
func directedCycle(t *testing.T, n int) *argraph.Graph[string, string] {
	t.Helper()
	labels := make([]string, n)
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}

	return buildGraph(t, labels, edges)
}

// verifyIsomorphism fails the test unless pairs is an injective mapping
// that preserves edges in both directions with compatible attributes:
// the "feasibility necessity" law.
func verifyIsomorphism(t *testing.T, g1, g2 *argraph.Graph[string, string], pairs []vf.Pair) {
	t.Helper()
	if len(pairs) != g1.NodeCount() {
		t.Fatalf("matching covers %d of %d nodes", len(pairs), g1.NodeCount())
	}
	fwd := make(map[argraph.NodeID]argraph.NodeID, len(pairs))
	seen := make(map[argraph.NodeID]bool, len(pairs))
	for _, p := range pairs {
		if seen[p.G2] {
			t.Fatalf("matching is not injective at G2 node %d", p.G2)
		}
		seen[p.G2] = true
		fwd[p.G1] = p.G2
		if !g1.CompatibleNode(g1.NodeAttr(p.G1), g2.NodeAttr(p.G2)) {
			t.Fatalf("incompatible node pair (%d,%d)", p.G1, p.G2)
		}
	}
	for _, p := range pairs {
		g1.VisitOutEdges(p.G1, func(from, to argraph.NodeID, attr string) {
			if _, mapped := fwd[to]; !mapped {
				return
			}
			a2, ok := g2.EdgeAttr(fwd[from], fwd[to])
			if !ok {
				t.Fatalf("edge %d→%d has no image %d→%d", from, to, fwd[from], fwd[to])
			}
			if !g1.CompatibleEdge(attr, a2) {
				t.Fatalf("edge %d→%d maps to incompatible attribute", from, to)
			}
		})
	}
	// Reverse direction: every G2 edge between mapped nodes must pull back.
	rev := make(map[argraph.NodeID]argraph.NodeID, len(pairs))
	for _, p := range pairs {
		rev[p.G2] = p.G1
	}
	for _, p := range pairs {
		g2.VisitOutEdges(p.G2, func(from, to argraph.NodeID, _ string) {
			if _, mapped := rev[to]; !mapped {
				return
			}
			if !g1.HasEdge(rev[from], rev[to]) {
				t.Fatalf("G2 edge %d→%d has no preimage", from, to)
			}
		})
	}
}
