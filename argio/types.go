// Package argio defines the sentinel errors and document types shared by
// the graph readers and writers.
package argio

import (
	"errors"

	"github.com/katalvlaran/vfmatch/argraph"
)

// Sentinel errors for graph (de)serialization.
var (
	// ErrBadHeader indicates the stream does not start with a readable
	// node count.
	ErrBadHeader = errors.New("argio: unreadable graph header")

	// ErrTruncated indicates the stream ended before the adjacency it
	// promised was complete.
	ErrTruncated = errors.New("argio: truncated graph stream")

	// ErrBadDocument indicates a YAML document with duplicate or empty node
	// ids, edges referencing unknown nodes, or a node-count mismatch on write.
	ErrBadDocument = errors.New("argio: malformed graph document")
)

// adjDoc is an in-memory unattributed adjacency, the Loader behind the
// binary and text readers.
type adjDoc struct {
	out [][]argraph.NodeID
}

func (d *adjDoc) NodeCount() int                   { return len(d.out) }
func (d *adjDoc) NodeAttr(argraph.NodeID) struct{} { return struct{}{} }
func (d *adjDoc) OutEdgeCount(u argraph.NodeID) int {
	return len(d.out[u])
}
func (d *adjDoc) OutEdge(u argraph.NodeID, i int) (argraph.NodeID, struct{}) {
	return d.out[u][i], struct{}{}
}
