// Package argedit provides an in-memory editable graph that implements
// argraph.Loader, so it can be assembled incrementally and then frozen
// into an immutable ARG with argraph.Build.
package argedit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/vfmatch/argraph"
)

// Sentinel errors for editor operations.
var (
	// ErrTooManyNodes indicates InsertNode would exceed 65534 nodes.
	ErrTooManyNodes = errors.New("argedit: node count exceeds 65534")

	// ErrNodeRange indicates an operation referenced a node id outside 0..n-1.
	ErrNodeRange = errors.New("argedit: node id out of range")

	// ErrDuplicateEdge indicates InsertEdge on an already-present edge.
	ErrDuplicateEdge = errors.New("argedit: edge already exists")

	// ErrUnknownEdge indicates DeleteEdge on a non-existent edge.
	ErrUnknownEdge = errors.New("argedit: edge does not exist")
)

// row is one node's out-edges in insertion order.
type row[E any] struct {
	targets []argraph.NodeID
	attrs   []E
}

// Editor is a mutable directed attributed graph. Node ids are dense:
// InsertNode assigns n, and DeleteNode renumbers every id above the removed
// one down by one, the way the frozen representation expects them.
//
// The zero Editor is not ready; use New.
type Editor[N, E any] struct {
	nodes []N
	out   []row[E]
	edges int
}

// New returns an empty Editor.
func New[N, E any]() *Editor[N, E] {
	return &Editor[N, E]{}
}

// NodeCount reports the number of nodes. Part of argraph.Loader.
func (ed *Editor[N, E]) NodeCount() int { return len(ed.nodes) }

// EdgeCount reports the number of edges.
func (ed *Editor[N, E]) EdgeCount() int { return ed.edges }

// NodeAttr returns the attribute of node u. Part of argraph.Loader.
func (ed *Editor[N, E]) NodeAttr(u argraph.NodeID) N { return ed.nodes[u] }

// OutEdgeCount reports the out-degree of node u. Part of argraph.Loader.
func (ed *Editor[N, E]) OutEdgeCount(u argraph.NodeID) int { return len(ed.out[u].targets) }

// OutEdge returns the i-th out-edge of u in insertion order.
// Part of argraph.Loader; argraph.Build sorts, so order carries no meaning.
func (ed *Editor[N, E]) OutEdge(u argraph.NodeID, i int) (argraph.NodeID, E) {
	r := ed.out[u]
	return r.targets[i], r.attrs[i]
}

// InsertNode appends a node with the given attribute and returns its id.
// Returns ErrTooManyNodes once 65534 nodes exist.
func (ed *Editor[N, E]) InsertNode(attr N) (argraph.NodeID, error) {
	if len(ed.nodes) >= argraph.MaxNodeCount-1 {
		return argraph.NullNode, ErrTooManyNodes
	}
	id := argraph.NodeID(len(ed.nodes))
	ed.nodes = append(ed.nodes, attr)
	ed.out = append(ed.out, row[E]{})

	return id, nil
}

// MustInsertNode is InsertNode for fixtures and examples; it panics on error.
func (ed *Editor[N, E]) MustInsertNode(attr N) argraph.NodeID {
	id, err := ed.InsertNode(attr)
	if err != nil {
		panic(err)
	}

	return id
}

// InsertEdge adds the directed edge u→v with the given attribute.
// Returns ErrNodeRange for an endpoint outside 0..n-1 and ErrDuplicateEdge
// when the edge is already present. Self-loops are permitted.
func (ed *Editor[N, E]) InsertEdge(u, v argraph.NodeID, attr E) error {
	if int(u) >= len(ed.nodes) || int(v) >= len(ed.nodes) {
		return fmt.Errorf("%w: %d→%d with %d nodes", ErrNodeRange, u, v, len(ed.nodes))
	}
	if ed.HasEdge(u, v) {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, u, v)
	}
	r := &ed.out[u]
	r.targets = append(r.targets, v)
	r.attrs = append(r.attrs, attr)
	ed.edges++

	return nil
}

// HasEdge reports whether the edge u→v is present.
// Complexity: O(deg⁺(u)); the editor keeps insertion order, not sorted order.
func (ed *Editor[N, E]) HasEdge(u, v argraph.NodeID) bool {
	if int(u) >= len(ed.nodes) {
		return false
	}
	for _, t := range ed.out[u].targets {
		if t == v {
			return true
		}
	}

	return false
}

// DeleteEdge removes the edge u→v. Returns ErrNodeRange or ErrUnknownEdge.
func (ed *Editor[N, E]) DeleteEdge(u, v argraph.NodeID) error {
	if int(u) >= len(ed.nodes) || int(v) >= len(ed.nodes) {
		return fmt.Errorf("%w: %d→%d with %d nodes", ErrNodeRange, u, v, len(ed.nodes))
	}
	r := &ed.out[u]
	for i, t := range r.targets {
		if t == v {
			r.targets = append(r.targets[:i], r.targets[i+1:]...)
			r.attrs = append(r.attrs[:i], r.attrs[i+1:]...)
			ed.edges--

			return nil
		}
	}

	return fmt.Errorf("%w: %d→%d", ErrUnknownEdge, u, v)
}

// DeleteNode removes node u together with every incident edge, then
// renumbers all ids above u down by one so the id space stays dense.
// Returns ErrNodeRange for an id outside 0..n-1.
// Complexity: O(V+E).
func (ed *Editor[N, E]) DeleteNode(u argraph.NodeID) error {
	if int(u) >= len(ed.nodes) {
		return fmt.Errorf("%w: %d with %d nodes", ErrNodeRange, u, len(ed.nodes))
	}
	ed.edges -= len(ed.out[u].targets)
	ed.nodes = append(ed.nodes[:u], ed.nodes[u+1:]...)
	ed.out = append(ed.out[:u], ed.out[u+1:]...)
	for i := range ed.out {
		r := &ed.out[i]
		kept := 0
		for j, t := range r.targets {
			if t == u {
				ed.edges--
				continue
			}
			if t > u {
				t--
			}
			r.targets[kept] = t
			r.attrs[kept] = r.attrs[j]
			kept++
		}
		r.targets = r.targets[:kept]
		r.attrs = r.attrs[:kept]
	}

	return nil
}

// Build freezes the editor's current contents into an immutable ARG.
// Shorthand for argraph.Build(ed); the editor stays usable afterwards.
func (ed *Editor[N, E]) Build() (*argraph.Graph[N, E], error) {
	return argraph.Build[N, E](ed)
}
