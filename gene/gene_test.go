package gene_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/vfmatch/argraph"
	"github.com/katalvlaran/vfmatch/gene"
	"github.com/katalvlaran/vfmatch/vf"
)

// TestPair_Shape checks node and edge counts and the absence of self-loops.
func TestPair_Shape(t *testing.T) {
	g1, g2, perm, err := gene.Pair(20, 50, gene.WithRand(rand.New(rand.NewSource(9))))
	if err != nil {
		t.Fatal(err)
	}
	if g1.NodeCount() != 20 || g2.NodeCount() != 20 {
		t.Fatalf("node counts = (%d,%d); want (20,20)", g1.NodeCount(), g2.NodeCount())
	}
	if g1.EdgeCount() != 50 || g2.EdgeCount() != 50 {
		t.Fatalf("edge counts = (%d,%d); want (50,50)", g1.EdgeCount(), g2.EdgeCount())
	}
	if len(perm) != 20 {
		t.Fatalf("perm length = %d; want 20", len(perm))
	}
	for u := argraph.NodeID(0); u < 20; u++ {
		if g1.HasEdge(u, u) || g2.HasEdge(u, u) {
			t.Fatalf("self-loop at %d", u)
		}
	}
}

// TestPair_PermutationIsIsomorphism checks the ground truth: perm maps
// every g1 edge onto a g2 edge and accounts for all of them.
func TestPair_PermutationIsIsomorphism(t *testing.T) {
	g1, g2, perm, err := gene.Pair(30, 80, gene.WithRand(rand.New(rand.NewSource(4))))
	if err != nil {
		t.Fatal(err)
	}
	mapped := 0
	for u := 0; u < g1.NodeCount(); u++ {
		id := argraph.NodeID(u)
		for i := 0; i < g1.OutDegree(id); i++ {
			v := g1.OutNeighbor(id, i)
			if !g2.HasEdge(perm[id], perm[v]) {
				t.Fatalf("edge %d→%d has no image %d→%d", id, v, perm[id], perm[v])
			}
			mapped++
		}
	}
	if mapped != g2.EdgeCount() {
		t.Fatalf("mapped %d edges of %d", mapped, g2.EdgeCount())
	}
}

// TestPair_MatcherFindsIsomorphism closes the loop: the VF search finds at
// least one isomorphism between the generated pair, and it is the search
// that proves it, not the hidden permutation.
func TestPair_MatcherFindsIsomorphism(t *testing.T) {
	g1, g2, _, err := gene.Pair(12, 24, gene.WithRand(rand.New(rand.NewSource(2))))
	if err != nil {
		t.Fatal(err)
	}
	s, err := vf.New(g1, g2)
	if err != nil {
		t.Fatal(err)
	}
	res, err := vf.Match(s, vf.WithMaxMatches(1))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Matchings) != 1 {
		t.Fatal("no isomorphism found between generated pair")
	}
}

// TestPair_Deterministic repeats generation with equal seeds.
func TestPair_Deterministic(t *testing.T) {
	build := func() (*argraph.Graph[struct{}, struct{}], []argraph.NodeID) {
		g1, _, perm, err := gene.Pair(15, 40, gene.WithRand(rand.New(rand.NewSource(77))))
		if err != nil {
			t.Fatal(err)
		}
		return g1, perm
	}
	a, permA := build()
	b, permB := build()
	for i := range permA {
		if permA[i] != permB[i] {
			t.Fatal("permutation differs across equal seeds")
		}
	}
	for u := 0; u < a.NodeCount(); u++ {
		id := argraph.NodeID(u)
		if a.OutDegree(id) != b.OutDegree(id) {
			t.Fatal("adjacency differs across equal seeds")
		}
		for i := 0; i < a.OutDegree(id); i++ {
			if a.OutNeighbor(id, i) != b.OutNeighbor(id, i) {
				t.Fatal("adjacency differs across equal seeds")
			}
		}
	}
}

// TestPair_Connected checks weak connectivity of the default generation.
func TestPair_Connected(t *testing.T) {
	g, _, _, err := gene.Pair(25, 24, gene.WithRand(rand.New(rand.NewSource(6))))
	if err != nil {
		t.Fatal(err)
	}
	// Union-find over the undirected skeleton.
	parent := make([]int, g.NodeCount())
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	for u := 0; u < g.NodeCount(); u++ {
		id := argraph.NodeID(u)
		for i := 0; i < g.OutDegree(id); i++ {
			parent[find(u)] = find(int(g.OutNeighbor(id, i)))
		}
	}
	root := find(0)
	for u := 1; u < g.NodeCount(); u++ {
		if find(u) != root {
			t.Fatalf("node %d disconnected", u)
		}
	}
}

// TestPair_Errors covers the parameter envelope.
func TestPair_Errors(t *testing.T) {
	if _, _, _, err := gene.Pair(-1, 0); !errors.Is(err, gene.ErrNodeCount) {
		t.Errorf("negative nodes: want ErrNodeCount, got %v", err)
	}
	if _, _, _, err := gene.Pair(65535, 0); !errors.Is(err, gene.ErrNodeCount) {
		t.Errorf("65535 nodes: want ErrNodeCount, got %v", err)
	}
	if _, _, _, err := gene.Pair(3, 7); !errors.Is(err, gene.ErrEdgeCount) {
		t.Errorf("too many edges: want ErrEdgeCount, got %v", err)
	}
	if _, _, _, err := gene.Pair(5, 2); !errors.Is(err, gene.ErrEdgeCount) {
		t.Errorf("too few edges for connectivity: want ErrEdgeCount, got %v", err)
	}
	if _, _, _, err := gene.Pair(5, 2, gene.WithConnected(false)); err != nil {
		t.Errorf("sparse unconnected pair: unexpected error %v", err)
	}
	if _, _, _, err := gene.Pair(0, 0); err != nil {
		t.Errorf("empty pair: unexpected error %v", err)
	}
}
