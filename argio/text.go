package argio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/vfmatch/argraph"
)

// The text format mirrors the binary one in whitespace-separated decimal:
// the node count, then per node its out-degree followed by the target ids.
// Line breaks are insignificant; WriteText emits one node per line.

// ReadText decodes an unattributed graph from the text format and freezes
// it with argraph.Build.
//
// Returns ErrBadHeader when the node count cannot be parsed, ErrTruncated
// when the stream ends mid-adjacency, and any argraph.Build error for a
// malformed adjacency.
func ReadText(r io.Reader) (*argraph.Graph[struct{}, struct{}], error) {
	br := bufio.NewReader(r)
	var n int
	if _, err := fmt.Fscan(br, &n); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrBadHeader, n)
	}

	doc := &adjDoc{out: make([][]argraph.NodeID, n)}
	for u := 0; u < n; u++ {
		var k int
		if _, err := fmt.Fscan(br, &k); err != nil {
			return nil, fmt.Errorf("%w: out-degree of node %d: %v", ErrTruncated, u, err)
		}
		if k < 0 {
			return nil, fmt.Errorf("%w: negative out-degree %d at node %d", ErrTruncated, k, u)
		}
		targets := make([]argraph.NodeID, k)
		for i := 0; i < k; i++ {
			var v int
			if _, err := fmt.Fscan(br, &v); err != nil {
				return nil, fmt.Errorf("%w: edge %d of node %d: %v", ErrTruncated, i, u, err)
			}
			if v < 0 || v >= int(argraph.NullNode) {
				return nil, fmt.Errorf("%w: edge target %d at node %d", argraph.ErrInconsistentGraph, v, u)
			}
			targets[i] = argraph.NodeID(v)
		}
		doc.out[u] = targets
	}

	return argraph.Build[struct{}, struct{}](doc)
}

// WriteText encodes g in the text format, one node per line.
func WriteText(w io.Writer, g *argraph.Graph[struct{}, struct{}]) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, g.NodeCount()); err != nil {
		return err
	}
	for u := 0; u < g.NodeCount(); u++ {
		id := argraph.NodeID(u)
		if _, err := fmt.Fprint(bw, g.OutDegree(id)); err != nil {
			return err
		}
		for i := 0; i < g.OutDegree(id); i++ {
			if _, err := fmt.Fprintf(bw, " %d", g.OutNeighbor(id, i)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}

	return bw.Flush()
}
