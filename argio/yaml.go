package argio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/vfmatch/argraph"
)

// Document is the YAML shape of a labeled graph:
//
//	nodes:
//	  - id: a
//	    label: X
//	edges:
//	  - from: a
//	    to: b
//	    label: knows
//
// Node ids are names local to the document; the frozen graph numbers nodes
// by their order of appearance under "nodes".
type Document struct {
	Nodes []NodeSpec `yaml:"nodes"`
	Edges []EdgeSpec `yaml:"edges"`
}

// NodeSpec declares one node: a document-unique ID and an attribute Label.
type NodeSpec struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label,omitempty"`
}

// EdgeSpec declares one directed edge between two node IDs, with an
// attribute Label.
type EdgeSpec struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label string `yaml:"label,omitempty"`
}

// docLoader feeds a validated Document into argraph.Build.
type docLoader struct {
	labels []string
	out    [][]argraph.NodeID
	attrs  [][]string
}

func (d *docLoader) NodeCount() int                    { return len(d.labels) }
func (d *docLoader) NodeAttr(u argraph.NodeID) string  { return d.labels[u] }
func (d *docLoader) OutEdgeCount(u argraph.NodeID) int { return len(d.out[u]) }
func (d *docLoader) OutEdge(u argraph.NodeID, i int) (argraph.NodeID, string) {
	return d.out[u][i], d.attrs[u][i]
}

// Loader validates the document and returns the argraph.Loader describing
// it. Returns ErrBadDocument for empty or duplicate node ids and for edges
// referencing unknown nodes.
func (d *Document) Loader() (argraph.Loader[string, string], error) {
	index := make(map[string]argraph.NodeID, len(d.Nodes))
	ld := &docLoader{
		labels: make([]string, len(d.Nodes)),
		out:    make([][]argraph.NodeID, len(d.Nodes)),
		attrs:  make([][]string, len(d.Nodes)),
	}
	for i, ns := range d.Nodes {
		if ns.ID == "" {
			return nil, fmt.Errorf("%w: node %d has an empty id", ErrBadDocument, i)
		}
		if _, dup := index[ns.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate node id %q", ErrBadDocument, ns.ID)
		}
		index[ns.ID] = argraph.NodeID(i)
		ld.labels[i] = ns.Label
	}
	for _, es := range d.Edges {
		from, ok := index[es.From]
		if !ok {
			return nil, fmt.Errorf("%w: edge references unknown node %q", ErrBadDocument, es.From)
		}
		to, ok := index[es.To]
		if !ok {
			return nil, fmt.Errorf("%w: edge references unknown node %q", ErrBadDocument, es.To)
		}
		ld.out[from] = append(ld.out[from], to)
		ld.attrs[from] = append(ld.attrs[from], es.Label)
	}

	return ld, nil
}

// ReadYAML decodes a Document from r and freezes it into a labeled graph.
// The second result maps each NodeID back to the document's node id.
//
// Returns ErrBadDocument for an unparsable or malformed document and any
// argraph.Build error for a malformed adjacency (e.g. duplicate edges).
func ReadYAML(r io.Reader) (*argraph.Graph[string, string], []string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	var doc Document
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}
	ld, err := doc.Loader()
	if err != nil {
		return nil, nil, err
	}
	g, err := argraph.Build[string, string](ld)
	if err != nil {
		return nil, nil, err
	}
	names := make([]string, len(doc.Nodes))
	for i, ns := range doc.Nodes {
		names[i] = ns.ID
	}

	return g, names, nil
}

// WriteYAML encodes g as a Document. The ids slice names each node and
// must have one entry per node; a nil slice auto-names nodes n0, n1, ….
// Returns ErrBadDocument on a length mismatch.
func WriteYAML(w io.Writer, g *argraph.Graph[string, string], ids []string) error {
	if ids == nil {
		ids = make([]string, g.NodeCount())
		for i := range ids {
			ids[i] = fmt.Sprintf("n%d", i)
		}
	}
	if len(ids) != g.NodeCount() {
		return fmt.Errorf("%w: %d ids for %d nodes", ErrBadDocument, len(ids), g.NodeCount())
	}

	doc := Document{Nodes: make([]NodeSpec, g.NodeCount())}
	for u := 0; u < g.NodeCount(); u++ {
		id := argraph.NodeID(u)
		doc.Nodes[u] = NodeSpec{ID: ids[u], Label: g.NodeAttr(id)}
		g.VisitOutEdges(id, func(from, to argraph.NodeID, attr string) {
			doc.Edges = append(doc.Edges, EdgeSpec{From: ids[from], To: ids[to], Label: attr})
		})
	}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return err
	}
	_, err = w.Write(data)

	return err
}
