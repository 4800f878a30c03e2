package gene

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/vfmatch/argedit"
	"github.com/katalvlaran/vfmatch/argraph"
)

// Sentinel errors for generation parameters.
var (
	// ErrNodeCount indicates a node count below 0 or above 65534.
	ErrNodeCount = errors.New("gene: node count out of range")

	// ErrEdgeCount indicates an edge count that cannot be realized: negative,
	// above nodes·(nodes-1), or too small to keep the graph connected.
	ErrEdgeCount = errors.New("gene: edge count out of range")
)

// Option configures generation via functional arguments.
type Option func(*options)

type options struct {
	rng       *rand.Rand
	connected bool
}

func defaultOptions() options {
	return options{
		// A fixed seed keeps unseeded generation reproducible; pass WithRand
		// to vary the output.
		rng:       rand.New(rand.NewSource(1)),
		connected: true,
	}
}

// WithRand supplies the random source. The source is consumed; callers who
// need reproducibility should seed it themselves.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithConnected controls whether the generated graph is forced to be
// weakly connected (the default). Connectivity consumes nodes-1 of the
// edge budget up front.
func WithConnected(connected bool) Option {
	return func(o *options) { o.connected = connected }
}

// Pair generates a random simple directed graph with the given node and
// edge counts, plus a second graph isomorphic to it under a random hidden
// permutation. The permutation is returned so tests can verify reported
// matchings against the ground truth. Self-loops are never generated.
//
// Returns ErrNodeCount or ErrEdgeCount for unrealizable parameters.
// Complexity: O(n + m) expected for sparse graphs.
func Pair(nodes, edges int, opts ...Option) (g1, g2 *argraph.Graph[struct{}, struct{}], perm []argraph.NodeID, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if nodes < 0 || nodes >= argraph.MaxNodeCount {
		return nil, nil, nil, fmt.Errorf("%w: %d", ErrNodeCount, nodes)
	}
	maxEdges := nodes * (nodes - 1)
	if edges < 0 || edges > maxEdges {
		return nil, nil, nil, fmt.Errorf("%w: %d with %d nodes", ErrEdgeCount, edges, nodes)
	}
	if o.connected && nodes > 1 && edges < nodes-1 {
		return nil, nil, nil, fmt.Errorf("%w: %d edges cannot connect %d nodes", ErrEdgeCount, edges, nodes)
	}

	// Pick the edge set. Keys are from·2^16 + to, so membership is one map
	// probe.
	set := make(map[uint32]struct{}, edges)
	list := make([][2]argraph.NodeID, 0, edges)
	add := func(u, v argraph.NodeID) bool {
		key := uint32(u)<<16 | uint32(v)
		if _, dup := set[key]; dup {
			return false
		}
		set[key] = struct{}{}
		list = append(list, [2]argraph.NodeID{u, v})

		return true
	}
	if o.connected {
		// Attach each node to a random earlier one in a random direction,
		// which makes the underlying undirected graph a connected tree.
		for i := 1; i < nodes; i++ {
			j := o.rng.Intn(i)
			u, v := argraph.NodeID(j), argraph.NodeID(i)
			if o.rng.Intn(2) == 0 {
				u, v = v, u
			}
			add(u, v)
		}
	}
	for len(list) < edges {
		u := argraph.NodeID(o.rng.Intn(nodes))
		v := argraph.NodeID(o.rng.Intn(nodes))
		if u == v {
			continue
		}
		add(u, v)
	}

	// Hidden isomorphism: node i of g1 appears as perm[i] in g2.
	perm = make([]argraph.NodeID, nodes)
	for i, p := range o.rng.Perm(nodes) {
		perm[i] = argraph.NodeID(p)
	}

	ed1 := argedit.New[struct{}, struct{}]()
	ed2 := argedit.New[struct{}, struct{}]()
	for i := 0; i < nodes; i++ {
		ed1.MustInsertNode(struct{}{})
		ed2.MustInsertNode(struct{}{})
	}
	for _, e := range list {
		if err = ed1.InsertEdge(e[0], e[1], struct{}{}); err != nil {
			return nil, nil, nil, err
		}
		if err = ed2.InsertEdge(perm[e[0]], perm[e[1]], struct{}{}); err != nil {
			return nil, nil, nil, err
		}
	}

	if g1, err = ed1.Build(); err != nil {
		return nil, nil, nil, err
	}
	if g2, err = ed2.Build(); err != nil {
		return nil, nil, nil, err
	}

	return g1, g2, perm, nil
}
