// Package argraph defines the NodeID type, the Loader contract,
// and the sentinel errors shared by ARG construction and access.
package argraph

import "errors"

// NodeID identifies a node within its Graph.
// Node ids in a graph of n nodes are exactly 0…n-1.
type NodeID uint16

// NullNode is the sentinel NodeID meaning "no node".
const NullNode NodeID = 0xFFFF

// MaxNodeCount is the exclusive upper bound on the node count of a Graph;
// NullNode must remain free as a sentinel, so at most 65534 nodes fit.
const MaxNodeCount = int(NullNode)

// Sentinel errors for ARG construction and mutation.
var (
	// ErrNilLoader indicates Build was handed a nil Loader.
	ErrNilLoader = errors.New("argraph: loader is nil")

	// ErrTooManyNodes indicates a loader reported a node count of 65535 or more.
	ErrTooManyNodes = errors.New("argraph: node count exceeds 65534")

	// ErrInconsistentGraph indicates the loader described a malformed graph
	// (negative counts, out-of-range edge targets, duplicate edges, or an
	// in-list fill mismatch).
	ErrInconsistentGraph = errors.New("argraph: loader described an inconsistent graph")

	// ErrUnknownEdge indicates SetEdgeAttr referenced a non-existent edge.
	ErrUnknownEdge = errors.New("argraph: edge does not exist")
)

// Loader is the pull-interface Build consumes to ingest a graph.
//
// Build queries NodeCount once, NodeAttr for each node, and the out-edges
// of every node via OutEdgeCount/OutEdge. No ordering requirement is
// imposed on the reported out-edges; Build sorts them by target id.
// NodeCount must be below MaxNodeCount.
type Loader[N, E any] interface {
	// NodeCount reports the number of nodes in the graph.
	NodeCount() int

	// NodeAttr returns the attribute of node u, 0 ≤ u < NodeCount.
	NodeAttr(u NodeID) N

	// OutEdgeCount reports the number of edges leaving node u.
	OutEdgeCount(u NodeID) int

	// OutEdge returns the target and attribute of the i-th edge
	// leaving node u, 0 ≤ i < OutEdgeCount(u).
	OutEdge(u NodeID, i int) (NodeID, E)
}
