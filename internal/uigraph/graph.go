package uigraph

// UINode is one widget occurrence inside a class body.
type UINode struct {
	ID    string `json:"id"`    // unique within one class, e.g. "vbox#1"
	Type  string `json:"type"`  // vocabulary name of the constructing call
	Label string `json:"label"` // identifying label, first literal arg or the ID
}

// Edge is a directed containment relationship: the child widget is added
// inside the parent container.
type Edge struct {
	From string `json:"from"` // parent node ID
	To   string `json:"to"`   // child node ID
}

// Digraph is the per-class widget containment graph. Containment is
// tree-shaped per subtree, but the digraph form keeps traversal order and
// multiple independent roots explicit.
type Digraph struct {
	Nodes map[string]*UINode `json:"nodes"`
	Edges []Edge             `json:"edges"`
	Roots []string           `json:"roots"` // node IDs in declaration order
}

// NewDigraph creates an empty containment graph.
func NewDigraph() *Digraph {
	return &Digraph{
		Nodes: make(map[string]*UINode),
		Edges: []Edge{},
		Roots: []string{},
	}
}

// AddNode inserts a widget node. Nodes with no parent become roots.
func (g *Digraph) AddNode(n *UINode, parentID string) {
	g.Nodes[n.ID] = n
	if parentID == "" {
		g.Roots = append(g.Roots, n.ID)
		return
	}
	g.Edges = append(g.Edges, Edge{From: parentID, To: n.ID})
}

// Children returns the IDs contained by parentID, in insertion order.
func (g *Digraph) Children(parentID string) []string {
	var out []string
	for _, e := range g.Edges {
		if e.From == parentID {
			out = append(out, e.To)
		}
	}
	return out
}

// Indegree counts incoming containment edges for id. Roots have zero, every
// other node exactly one.
func (g *Digraph) Indegree(id string) int {
	count := 0
	for _, e := range g.Edges {
		if e.To == id {
			count++
		}
	}
	return count
}

// IsRoot reports whether id is a declared root.
func (g *Digraph) IsRoot(id string) bool {
	for _, r := range g.Roots {
		if r == id {
			return true
		}
	}
	return false
}

// Size returns the node count.
func (g *Digraph) Size() int {
	return len(g.Nodes)
}
