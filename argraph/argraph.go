package argraph

import (
	"fmt"
	"sort"
)

// adjacency holds one direction of a node's edges: targets in strictly
// increasing id order, with the parallel eid slice indexing the graph's
// flat edge-attribute store. The out-entry and in-entry of a single edge
// share an eid, so both views always observe the same attribute.
type adjacency struct {
	nbr []NodeID
	eid []uint32
}

// Graph is an immutable Attributed Relational Graph.
//
// Structure is frozen at Build time; only the node and edge attributes may
// be replaced afterwards (SetNodeAttr, SetEdgeAttr). Adjacency is stored
// per node in both directions, sorted by neighbor id, so edge existence is
// a binary search over the out-list: O(log deg⁺(u)).
//
// A built Graph is safe for concurrent readers. The attribute mutators and
// Destroy are not synchronized; callers that mutate must serialize.
type Graph[N, E any] struct {
	n         int
	nodeAttrs []N
	edgeAttrs []E // flat edge store, one slot per directed edge
	out       []adjacency
	in        []adjacency

	nodeDestroyer  Destroyer[N]
	edgeDestroyer  Destroyer[E]
	nodeComparator Comparator[N]
	edgeComparator Comparator[E]

	destroyed bool
}

// Build constructs a Graph by pulling nodes and out-edges from loader.
//
// Construction proceeds in two phases: out-adjacency is ingested and sorted
// per node (attributes permuted in lockstep), then in-adjacency is derived
// by walking sources in increasing order, which yields in-lists that are
// already sorted.
//
// Returns ErrNilLoader, ErrTooManyNodes for node counts of 65535 or more,
// or ErrInconsistentGraph when the loader reports negative counts,
// out-of-range targets, duplicate edges, or mismatched in-degrees.
//
// Complexity: O(n + Σ deg⁺(u)·log deg⁺(u)).
func Build[N, E any](loader Loader[N, E]) (*Graph[N, E], error) {
	if loader == nil {
		return nil, ErrNilLoader
	}
	n := loader.NodeCount()
	if n < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrInconsistentGraph, n)
	}
	if n >= MaxNodeCount {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyNodes, n)
	}

	g := &Graph[N, E]{
		n:         n,
		nodeAttrs: make([]N, n),
		out:       make([]adjacency, n),
		in:        make([]adjacency, n),
	}
	for u := 0; u < n; u++ {
		g.nodeAttrs[u] = loader.NodeAttr(NodeID(u))
	}

	// Phase 1: ingest out-adjacency, counting provisional in-degrees.
	inCount := make([]int, n)
	for u := 0; u < n; u++ {
		k := loader.OutEdgeCount(NodeID(u))
		if k < 0 {
			return nil, fmt.Errorf("%w: negative out-degree %d at node %d", ErrInconsistentGraph, k, u)
		}
		a := adjacency{nbr: make([]NodeID, k), eid: make([]uint32, k)}
		for i := 0; i < k; i++ {
			v, attr := loader.OutEdge(NodeID(u), i)
			if int(v) >= n {
				return nil, fmt.Errorf("%w: edge %d→%d targets a node outside 0..%d", ErrInconsistentGraph, u, v, n-1)
			}
			a.nbr[i] = v
			a.eid[i] = uint32(len(g.edgeAttrs))
			g.edgeAttrs = append(g.edgeAttrs, attr)
			inCount[v]++
		}
		sort.Sort(byNeighbor(a))
		for i := 1; i < k; i++ {
			if a.nbr[i] == a.nbr[i-1] {
				return nil, fmt.Errorf("%w: duplicate edge %d→%d", ErrInconsistentGraph, u, a.nbr[i])
			}
		}
		g.out[u] = a
	}

	// Phase 2: derive in-adjacency. Sources are visited in increasing
	// order, so every in-list comes out sorted without a second sort.
	for v := 0; v < n; v++ {
		g.in[v] = adjacency{
			nbr: make([]NodeID, 0, inCount[v]),
			eid: make([]uint32, 0, inCount[v]),
		}
	}
	for u := 0; u < n; u++ {
		a := g.out[u]
		for i, v := range a.nbr {
			g.in[v].nbr = append(g.in[v].nbr, NodeID(u))
			g.in[v].eid = append(g.in[v].eid, a.eid[i])
		}
	}
	for v := 0; v < n; v++ {
		if len(g.in[v].nbr) != inCount[v] {
			return nil, fmt.Errorf("%w: in-list fill mismatch at node %d", ErrInconsistentGraph, v)
		}
	}

	return g, nil
}

// byNeighbor sorts an adjacency by target id, permuting eids in lockstep.
type byNeighbor adjacency

func (a byNeighbor) Len() int           { return len(a.nbr) }
func (a byNeighbor) Less(i, j int) bool { return a.nbr[i] < a.nbr[j] }
func (a byNeighbor) Swap(i, j int) {
	a.nbr[i], a.nbr[j] = a.nbr[j], a.nbr[i]
	a.eid[i], a.eid[j] = a.eid[j], a.eid[i]
}
