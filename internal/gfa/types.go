package gfa

// OrientedNode is one occurrence of a segment inside a path or walk.
// Forward is true for `+` (paths) and `>` (walks) occurrences.
type OrientedNode struct {
	ID      string
	Forward bool
}

// EdgeKind distinguishes contiguous links from discontiguous jumps.
type EdgeKind int

const (
	LinkEdge EdgeKind = iota
	JumpEdge
)

func (k EdgeKind) String() string {
	if k == JumpEdge {
		return "jump"
	}
	return "link"
}

// Edge joins two oriented segment occurrences. The file format does not
// distinguish which endpoint a traversal entered from, so retention tests
// must go through Canonical rather than comparing From/To directly.
type Edge struct {
	From OrientedNode
	To   OrientedNode
}

// Canonical returns the edge with its endpoints in a fixed order, so that
// an edge and its reversal map to the same set key.
func (e Edge) Canonical() Edge {
	if orientedLess(e.To, e.From) {
		return Edge{From: e.To, To: e.From}
	}
	return e
}

func orientedLess(a, b OrientedNode) bool {
	if a.ID != b.ID {
		return a.ID < b.ID
	}
	return !a.Forward && b.Forward
}

// Decoded is the per-record output of the path/walk decoder: the oriented
// nodes a record visits in order, and the edges it traverses by kind.
type Decoded struct {
	Nodes []OrientedNode
	Links []Edge
	Jumps []Edge
}

// KeepSet is everything the retained paths and walks license keeping.
// Nodes is keyed by segment id only; orientation never affects segment
// retention. Links and Jumps are keyed by canonical edges.
type KeepSet struct {
	Nodes map[string]bool
	Links map[Edge]bool
	Jumps map[Edge]bool
}

func NewKeepSet() *KeepSet {
	return &KeepSet{
		Nodes: make(map[string]bool),
		Links: make(map[Edge]bool),
		Jumps: make(map[Edge]bool),
	}
}

// Add folds one decoded record into the set.
func (ks *KeepSet) Add(d Decoded) {
	for _, node := range d.Nodes {
		ks.Nodes[node.ID] = true
	}
	for _, edge := range d.Links {
		ks.Links[edge.Canonical()] = true
	}
	for _, edge := range d.Jumps {
		ks.Jumps[edge.Canonical()] = true
	}
}

// Merge unions other into ks. Union is associative and commutative with
// the empty set as identity, so partial sets built on separate workers can
// be merged in any order without changing the result.
func (ks *KeepSet) Merge(other *KeepSet) {
	for id := range other.Nodes {
		ks.Nodes[id] = true
	}
	for edge := range other.Links {
		ks.Links[edge] = true
	}
	for edge := range other.Jumps {
		ks.Jumps[edge] = true
	}
}

// HasNode reports whether a segment id is referenced by any retained
// path or walk.
func (ks *KeepSet) HasNode(id string) bool {
	return ks.Nodes[id]
}

// HasLink reports link membership in either endpoint order.
func (ks *KeepSet) HasLink(e Edge) bool {
	return ks.Links[e.Canonical()]
}

// HasJump reports jump membership in either endpoint order.
func (ks *KeepSet) HasJump(e Edge) bool {
	return ks.Jumps[e.Canonical()]
}
