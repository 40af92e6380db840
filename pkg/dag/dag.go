package dag

import (
	"errors"
	"maps"
	"slices"
)

var (
	// ErrInvalidNodeID rejects AddNode calls with an empty ID.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID rejects AddNode calls reusing an existing ID.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode rejects edges whose From endpoint is absent.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode rejects edges whose To endpoint is absent.
	ErrUnknownTargetNode = errors.New("unknown target node")

	// ErrInvalidEdgeEndpoint reports an edge pointing at a node that has
	// disappeared. Validate returns it only on internal corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")

	// ErrRankOrder reports an edge whose target does not sit strictly
	// below its source once ranks are assigned.
	ErrRankOrder = errors.New("edges must descend the rank order")

	// ErrGraphHasCycle reports a directed cycle.
	ErrGraphHasCycle = errors.New("graph contains a cycle")
)

// Node is a vertex with a rank assignment. Rank 0 is the top layer and
// ranks grow downward. IDs come from the ingested code graph and must be
// unique within one DAG.
type Node struct {
	ID   string
	Rank int
}

// Edge is a directed connection. Once layering has run, To must rank
// strictly below From; Validate enforces that, AddEdge does not.
type Edge struct {
	From string
	To   string
}

// DAG holds one container's induced subgraph during hierarchical
// placement. The layout pass loads members into a fresh DAG, ranks and
// orders them, reads the result back out, and drops the whole thing.
// Nothing is retained between containers.
//
// Use New; the zero value has nil indexes. A DAG is not safe for
// concurrent use.
type DAG struct {
	nodes  map[string]*Node
	edges  []Edge
	succ   map[string][]string
	pred   map[string][]string
	byRank map[int][]*Node
}

// New returns an empty DAG ready for AddNode and AddEdge.
func New() *DAG {
	return &DAG{
		nodes:  make(map[string]*Node),
		succ:   make(map[string][]string),
		pred:   make(map[string][]string),
		byRank: make(map[int][]*Node),
	}
}

// AddNode inserts a copy of n and indexes it under n.Rank. It returns
// ErrInvalidNodeID for an empty ID and ErrDuplicateNodeID when the ID
// is already present, at any rank.
func (d *DAG) AddNode(n Node) error {
	switch {
	case n.ID == "":
		return ErrInvalidNodeID
	case d.nodes[n.ID] != nil:
		return ErrDuplicateNodeID
	}
	node := &n
	d.nodes[n.ID] = node
	d.byRank[n.Rank] = append(d.byRank[n.Rank], node)
	return nil
}

// AddEdge connects two existing nodes. Both endpoints must have been
// added first; parallel edges between the same pair are allowed. Rank
// order is not checked here since edges are normally added before
// layering runs.
func (d *DAG) AddEdge(e Edge) error {
	if d.nodes[e.From] == nil {
		return ErrUnknownSourceNode
	}
	if d.nodes[e.To] == nil {
		return ErrUnknownTargetNode
	}
	d.edges = append(d.edges, e)
	d.succ[e.From] = append(d.succ[e.From], e.To)
	d.pred[e.To] = append(d.pred[e.To], e.From)
	return nil
}

// RemoveEdge deletes every from→to edge, including parallel copies.
// Removing an edge that does not exist is a no-op.
func (d *DAG) RemoveEdge(from, to string) {
	d.edges = slices.DeleteFunc(d.edges, func(e Edge) bool { return e.From == from && e.To == to })
	d.succ[from] = slices.DeleteFunc(d.succ[from], func(id string) bool { return id == to })
	d.pred[to] = slices.DeleteFunc(d.pred[to], func(id string) bool { return id == from })
}

// SetRanks applies computed rank assignments and rebuilds the rank
// index. Nodes missing from the map keep their current rank. Layering
// calls this once with the depths it derived.
func (d *DAG) SetRanks(ranks map[string]int) {
	d.byRank = make(map[int][]*Node)
	for _, n := range d.nodes {
		if r, ok := ranks[n.ID]; ok {
			n.Rank = r
		}
		d.byRank[n.Rank] = append(d.byRank[n.Rank], n)
	}
}

// Nodes returns the live node pointers in unspecified order. Mutating
// a returned node mutates the graph.
func (d *DAG) Nodes() []*Node {
	return slices.Collect(maps.Values(d.nodes))
}

// Edges returns a copy of the edge list in insertion order.
func (d *DAG) Edges() []Edge { return slices.Clone(d.edges) }

// NodeCount reports the number of nodes.
func (d *DAG) NodeCount() int { return len(d.nodes) }

// EdgeCount reports the number of edges, counting parallel edges.
func (d *DAG) EdgeCount() int { return len(d.edges) }

// Node looks up a node by ID. The pointer is live, as with Nodes.
func (d *DAG) Node(id string) (*Node, bool) {
	n, ok := d.nodes[id]
	return n, ok
}

// Children returns the targets of the node's outgoing edges, nil when
// there are none. Treat the slice as read-only.
func (d *DAG) Children(id string) []string { return d.succ[id] }

// Parents returns the sources of the node's incoming edges, nil when
// there are none. Treat the slice as read-only.
func (d *DAG) Parents(id string) []string { return d.pred[id] }

// OutDegree reports how many edges leave the node, 0 if unknown.
func (d *DAG) OutDegree(id string) int { return len(d.succ[id]) }

// InDegree reports how many edges enter the node, 0 if unknown.
func (d *DAG) InDegree(id string) int { return len(d.pred[id]) }

// NodesInRank returns the nodes indexed under rank in the order they
// were indexed, nil for an empty rank.
func (d *DAG) NodesInRank(rank int) []*Node { return d.byRank[rank] }

// RankCount reports how many distinct ranks hold at least one node.
// Ranks need not be consecutive.
func (d *DAG) RankCount() int { return len(d.byRank) }

// RankIDs returns the occupied rank indices in ascending order.
func (d *DAG) RankIDs() []int {
	return slices.Sorted(maps.Keys(d.byRank))
}

// MaxRank returns the highest occupied rank, 0 for an empty graph.
func (d *DAG) MaxRank() int {
	top := 0
	for r := range d.byRank {
		if r > top {
			top = r
		}
	}
	return top
}

// Sources returns the nodes with no incoming edges, in unspecified
// order. Every non-empty acyclic graph has at least one.
func (d *DAG) Sources() []*Node {
	var out []*Node
	for id, n := range d.nodes {
		if d.InDegree(id) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Sinks returns the nodes with no outgoing edges, in unspecified order.
func (d *DAG) Sinks() []*Node {
	var out []*Node
	for id, n := range d.nodes {
		if d.OutDegree(id) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Validate checks that every edge joins existing nodes at strictly
// descending ranks and that no directed cycle exists. Call it after
// layering; before ranks are assigned the order check has no meaning.
// Returns ErrInvalidEdgeEndpoint, ErrRankOrder, or ErrGraphHasCycle.
func (d *DAG) Validate() error {
	if err := d.checkEdges(); err != nil {
		return err
	}
	return d.checkAcyclic()
}

func (d *DAG) checkEdges() error {
	for _, e := range d.edges {
		src := d.nodes[e.From]
		dst := d.nodes[e.To]
		if src == nil || dst == nil {
			return ErrInvalidEdgeEndpoint
		}
		if dst.Rank <= src.Rank {
			return ErrRankOrder
		}
	}
	return nil
}

// checkAcyclic runs a depth-first search keeping the current path in
// onPath. Seeing an onPath node again means a back edge, hence a cycle.
func (d *DAG) checkAcyclic() error {
	onPath := make(map[string]bool, len(d.nodes))
	done := make(map[string]bool, len(d.nodes))

	var visit func(id string) bool
	visit = func(id string) bool {
		onPath[id] = true
		for _, next := range d.succ[id] {
			if onPath[next] {
				return false
			}
			if !done[next] && !visit(next) {
				return false
			}
		}
		onPath[id] = false
		done[id] = true
		return true
	}

	for id := range d.nodes {
		if !done[id] && !visit(id) {
			return ErrGraphHasCycle
		}
	}
	return nil
}

// PosMap maps each ID to its index in ids. Orderings are converted to
// position maps like this before crossing counts, which need O(1)
// position lookups.
func PosMap(ids []string) map[string]int {
	m := make(map[string]int, len(ids))
	for i, id := range ids {
		m[id] = i
	}
	return m
}

// NodeIDs returns the IDs of nodes in the same order.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}
