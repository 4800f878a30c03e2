package argio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/vfmatch/argraph"
)

// The binary format is a flat sequence of little-endian 16-bit words:
// the node count n, then for each node u in 0..n-1 its out-degree k_u
// followed by the k_u target ids. Attributes are not represented.

// ReadBinary decodes an unattributed graph from the word-based binary
// format and freezes it with argraph.Build.
//
// Returns ErrBadHeader when the node count cannot be read, ErrTruncated
// when the stream ends mid-adjacency, and any argraph.Build error for a
// malformed adjacency (out-of-range targets, duplicate edges, 65535 nodes).
func ReadBinary(r io.Reader) (*argraph.Graph[struct{}, struct{}], error) {
	br := bufio.NewReader(r)
	n, err := readWord(br)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}

	doc := &adjDoc{out: make([][]argraph.NodeID, n)}
	for u := 0; u < int(n); u++ {
		k, err := readWord(br)
		if err != nil {
			return nil, fmt.Errorf("%w: out-degree of node %d: %v", ErrTruncated, u, err)
		}
		targets := make([]argraph.NodeID, k)
		for i := 0; i < int(k); i++ {
			v, err := readWord(br)
			if err != nil {
				return nil, fmt.Errorf("%w: edge %d of node %d: %v", ErrTruncated, i, u, err)
			}
			targets[i] = argraph.NodeID(v)
		}
		doc.out[u] = targets
	}

	return argraph.Build[struct{}, struct{}](doc)
}

// WriteBinary encodes g in the word-based binary format.
func WriteBinary(w io.Writer, g *argraph.Graph[struct{}, struct{}]) error {
	bw := bufio.NewWriter(w)
	if err := writeWord(bw, uint16(g.NodeCount())); err != nil {
		return err
	}
	for u := 0; u < g.NodeCount(); u++ {
		id := argraph.NodeID(u)
		if err := writeWord(bw, uint16(g.OutDegree(id))); err != nil {
			return err
		}
		for i := 0; i < g.OutDegree(id); i++ {
			if err := writeWord(bw, uint16(g.OutNeighbor(id, i))); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

func readWord(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(buf[:]), nil
}

func writeWord(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])

	return err
}
