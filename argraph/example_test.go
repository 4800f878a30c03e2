package argraph_test

import (
	"fmt"

	"github.com/katalvlaran/vfmatch/argedit"
	"github.com/katalvlaran/vfmatch/argraph"
)

// ExampleBuild assembles a small labeled graph with argedit, freezes it,
// and queries edges through the binary-search lookup.
func ExampleBuild() {
	ed := argedit.New[string, int]()
	a := ed.MustInsertNode("A")
	b := ed.MustInsertNode("B")
	c := ed.MustInsertNode("C")
	_ = ed.InsertEdge(a, b, 10)
	_ = ed.InsertEdge(b, c, 20)
	_ = ed.InsertEdge(c, a, 30)

	g, err := argraph.Build[string, int](ed)
	if err != nil {
		fmt.Println("build failed:", err)
		return
	}

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	fmt.Println("A→B:", g.HasEdge(a, b))
	fmt.Println("B→A:", g.HasEdge(b, a))
	w, _ := g.EdgeAttr(b, c)
	fmt.Println("weight of B→C:", w)
	// Output:
	// nodes: 3 edges: 3
	// A→B: true
	// B→A: false
	// weight of B→C: 20
}

// ExampleGraph_VisitOutEdges walks the out-star of one node in target order.
func ExampleGraph_VisitOutEdges() {
	ed := argedit.New[string, string]()
	hub := ed.MustInsertNode("hub")
	x := ed.MustInsertNode("x")
	y := ed.MustInsertNode("y")
	_ = ed.InsertEdge(hub, y, "to-y")
	_ = ed.InsertEdge(hub, x, "to-x")

	g, _ := argraph.Build[string, string](ed)
	g.VisitOutEdges(hub, func(from, to argraph.NodeID, attr string) {
		fmt.Printf("%d→%d %s\n", from, to, attr)
	})
	// Output:
	// 0→1 to-x
	// 0→2 to-y
}
