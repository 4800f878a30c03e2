// Package argraph provides an immutable Attributed Relational Graph (ARG):
// a directed graph whose nodes and edges carry opaque, caller-typed
// attributes, represented for fast matching rather than editing.
//
// An ARG is built exactly once from a Loader — anything that can report a
// node count, node attributes and per-node out-edges — and is structurally
// frozen from then on. That freeze is what buys the representation its
// matching-friendly properties:
//
//   - Per-node out- and in-adjacency, each sorted by neighbor id, so edge
//     existence and attribute lookup is a binary search: O(log deg⁺(u)).
//   - A flat edge-attribute store indexed by edge id; the out-entry at the
//     source and the in-entry at the target of one edge share a single
//     store slot, so the two views can never disagree and teardown walks
//     each attribute exactly once.
//   - No locks: a built Graph is safe for any number of concurrent readers.
//
// Attribute semantics are entirely caller-supplied through two capability
// hooks per attribute kind (hooks.go):
//
//   - Destroyer — releases one attribute during Destroy; absent means the
//     graph does not own its attributes.
//   - Comparator — decides attribute compatibility during matching; absent
//     means any two attributes are compatible (structural-only matching).
//
// DestroyerFunc and ComparatorFunc adapt plain functions to the hook
// interfaces for callers without richer types.
//
// Construction:
//
//	ed := argedit.New[string, int]()
//	a := ed.MustInsertNode("A")
//	b := ed.MustInsertNode("B")
//	_ = ed.InsertEdge(a, b, 7)
//	g, err := argraph.Build[string, int](ed)
//
// Errors:
//
//	ErrNilLoader         – Build received a nil Loader.
//	ErrTooManyNodes      – loader reported 65535 nodes or more.
//	ErrInconsistentGraph – loader described a malformed graph.
//	ErrUnknownEdge       – SetEdgeAttr on a non-existent edge.
//
// Out-of-range NodeIDs on accessors are programmer errors and panic, the
// same way an out-of-range slice index does.
package argraph
