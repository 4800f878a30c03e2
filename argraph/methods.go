package argraph

import "fmt"

// NodeCount reports the number of nodes.
// Complexity: O(1)
func (g *Graph[N, E]) NodeCount() int { return g.n }

// EdgeCount reports the total number of directed edges.
// Complexity: O(1)
func (g *Graph[N, E]) EdgeCount() int { return len(g.edgeAttrs) }

// NodeAttr returns the attribute of node u.
// Panics if u is outside 0..NodeCount()-1 (caller bug).
// Complexity: O(1)
func (g *Graph[N, E]) NodeAttr(u NodeID) N { return g.nodeAttrs[u] }

// SetNodeAttr replaces the attribute of node u. With destroyOld the previous
// attribute is released through the node Destroyer first; without it the
// previous attribute becomes the caller's responsibility.
func (g *Graph[N, E]) SetNodeAttr(u NodeID, attr N, destroyOld bool) {
	if destroyOld && g.nodeDestroyer != nil {
		g.nodeDestroyer.Destroy(g.nodeAttrs[u])
	}
	g.nodeAttrs[u] = attr
}

// InDegree reports the number of edges entering node u.
// Complexity: O(1)
func (g *Graph[N, E]) InDegree(u NodeID) int { return len(g.in[u].nbr) }

// OutDegree reports the number of edges leaving node u.
// Complexity: O(1)
func (g *Graph[N, E]) OutDegree(u NodeID) int { return len(g.out[u].nbr) }

// Degree reports the number of edges touching node u, in both directions.
// Complexity: O(1)
func (g *Graph[N, E]) Degree(u NodeID) int { return len(g.in[u].nbr) + len(g.out[u].nbr) }

// InEdge returns the source and attribute of the i-th edge entering u,
// 0 ≤ i < InDegree(u). Sources appear in strictly increasing id order.
// Complexity: O(1)
func (g *Graph[N, E]) InEdge(u NodeID, i int) (NodeID, E) {
	a := g.in[u]
	return a.nbr[i], g.edgeAttrs[a.eid[i]]
}

// OutEdge returns the target and attribute of the i-th edge leaving u,
// 0 ≤ i < OutDegree(u). Targets appear in strictly increasing id order.
// Complexity: O(1)
func (g *Graph[N, E]) OutEdge(u NodeID, i int) (NodeID, E) {
	a := g.out[u]
	return a.nbr[i], g.edgeAttrs[a.eid[i]]
}

// InNeighbor returns the source of the i-th edge entering u.
// Complexity: O(1)
func (g *Graph[N, E]) InNeighbor(u NodeID, i int) NodeID { return g.in[u].nbr[i] }

// OutNeighbor returns the target of the i-th edge leaving u.
// Complexity: O(1)
func (g *Graph[N, E]) OutNeighbor(u NodeID, i int) NodeID { return g.out[u].nbr[i] }

// HasEdge reports whether the edge u→v exists.
// Complexity: O(log deg⁺(u))
func (g *Graph[N, E]) HasEdge(u, v NodeID) bool {
	_, ok := g.edgeIndex(u, v)
	return ok
}

// EdgeAttr returns the attribute of the edge u→v and whether it exists.
// Complexity: O(log deg⁺(u))
func (g *Graph[N, E]) EdgeAttr(u, v NodeID) (E, bool) {
	if c, ok := g.edgeIndex(u, v); ok {
		return g.edgeAttrs[g.out[u].eid[c]], true
	}
	var zero E
	return zero, false
}

// SetEdgeAttr replaces the attribute of the edge u→v. The attribute lives in
// a single store slot shared by the out-entry at u and the in-entry at v, so
// both adjacency views observe the replacement. With destroyOld the previous
// attribute is released through the edge Destroyer first.
//
// Returns ErrUnknownEdge, leaving the graph untouched, if the edge is absent.
// Complexity: O(log deg⁺(u))
func (g *Graph[N, E]) SetEdgeAttr(u, v NodeID, attr E, destroyOld bool) error {
	c, ok := g.edgeIndex(u, v)
	if !ok {
		return fmt.Errorf("%w: %d→%d", ErrUnknownEdge, u, v)
	}
	id := g.out[u].eid[c]
	if destroyOld && g.edgeDestroyer != nil {
		g.edgeDestroyer.Destroy(g.edgeAttrs[id])
	}
	g.edgeAttrs[id] = attr
	return nil
}

// edgeIndex binary-searches u's out-list for v and returns its position.
func (g *Graph[N, E]) edgeIndex(u, v NodeID) (int, bool) {
	id := g.out[u].nbr
	a, b := 0, len(id)
	for a < b {
		c := int(uint(a+b) >> 1)
		switch {
		case id[c] < v:
			a = c + 1
		case id[c] > v:
			b = c
		default:
			return c, true
		}
	}
	return 0, false
}

// SetNodeDestroyer installs the Destroyer invoked once per node attribute
// during Destroy, replacing any previous one. A nil Destroyer means node
// attributes are not owned by the graph.
func (g *Graph[N, E]) SetNodeDestroyer(d Destroyer[N]) { g.nodeDestroyer = d }

// SetEdgeDestroyer installs the Destroyer invoked once per edge attribute
// during Destroy, replacing any previous one.
func (g *Graph[N, E]) SetEdgeDestroyer(d Destroyer[E]) { g.edgeDestroyer = d }

// SetNodeComparator installs the Comparator consulted by CompatibleNode,
// replacing any previous one. A nil Comparator accepts every pairing.
func (g *Graph[N, E]) SetNodeComparator(c Comparator[N]) { g.nodeComparator = c }

// SetEdgeComparator installs the Comparator consulted by CompatibleEdge,
// replacing any previous one.
func (g *Graph[N, E]) SetEdgeComparator(c Comparator[E]) { g.edgeComparator = c }

// CompatibleNode reports whether two node attributes are compatible under
// the installed node Comparator; with none installed it reports true.
func (g *Graph[N, E]) CompatibleNode(a, b N) bool {
	if g.nodeComparator == nil {
		return true
	}
	return g.nodeComparator.Compatible(a, b)
}

// CompatibleEdge reports whether two edge attributes are compatible under
// the installed edge Comparator; with none installed it reports true.
func (g *Graph[N, E]) CompatibleEdge(a, b E) bool {
	if g.edgeComparator == nil {
		return true
	}
	return g.edgeComparator.Compatible(a, b)
}

// VisitInEdges applies visit to every edge entering u, in increasing
// source order. The callback receives (source, u, attribute).
func (g *Graph[N, E]) VisitInEdges(u NodeID, visit func(from, to NodeID, attr E)) {
	a := g.in[u]
	for i, src := range a.nbr {
		visit(src, u, g.edgeAttrs[a.eid[i]])
	}
}

// VisitOutEdges applies visit to every edge leaving u, in increasing
// target order. The callback receives (u, target, attribute).
func (g *Graph[N, E]) VisitOutEdges(u NodeID, visit func(from, to NodeID, attr E)) {
	a := g.out[u]
	for i, dst := range a.nbr {
		visit(u, dst, g.edgeAttrs[a.eid[i]])
	}
}

// VisitEdges applies visit to every edge touching u: first the entering
// edges, then the leaving ones.
func (g *Graph[N, E]) VisitEdges(u NodeID, visit func(from, to NodeID, attr E)) {
	g.VisitInEdges(u, visit)
	g.VisitOutEdges(u, visit)
}

// Destroy releases every owned attribute: each edge attribute exactly once
// through the flat edge store, then each node attribute. A second call is
// a no-op. The graph must not be used after Destroy.
func (g *Graph[N, E]) Destroy() {
	if g.destroyed {
		return
	}
	g.destroyed = true
	if g.edgeDestroyer != nil {
		for _, attr := range g.edgeAttrs {
			g.edgeDestroyer.Destroy(attr)
		}
	}
	if g.nodeDestroyer != nil {
		for _, attr := range g.nodeAttrs {
			g.nodeDestroyer.Destroy(attr)
		}
	}
}
