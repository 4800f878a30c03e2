// Package gene generates random pairs of isomorphic Attributed Relational
// Graphs, the standard workload for exercising and benchmarking a matcher.
//
// Pair draws a simple directed graph with the requested node and edge
// counts, then relabels it under a hidden random permutation to produce a
// second, isomorphic graph. The permutation is returned as ground truth:
// a search over the pair must find at least one isomorphism, and tests can
// check reported mappings edge-by-edge against it.
//
//	g1, g2, perm, err := gene.Pair(100, 300,
//	    gene.WithRand(rand.New(rand.NewSource(42))))
//
// Generation properties:
//
//   - Simple: no self-loops, no duplicate edges.
//   - Weakly connected by default (WithConnected(false) disables this);
//     connectivity spends nodes-1 of the edge budget on a random tree
//     before the remaining edges are sprinkled uniformly.
//   - Deterministic for a given rand source; the unseeded default uses a
//     fixed seed so repeated runs reproduce.
//
// Errors:
//
//	ErrNodeCount – node count below 0 or above 65534
//	ErrEdgeCount – edge count unrealizable for the node count
package gene
