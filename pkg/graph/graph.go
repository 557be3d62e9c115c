package graph

import "errors"

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty. All nodes must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with
	// the same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownSourceNode is returned by [Graph.AddEdge] when the From
	// node does not exist.
	ErrUnknownSourceNode = errors.New("unknown source node")

	// ErrUnknownTargetNode is returned by [Graph.AddEdge] when the To
	// node does not exist.
	ErrUnknownTargetNode = errors.New("unknown target node")
)

// Node represents a vertex in the graph.
type Node struct {
	ID string
}

// Edge represents a connection between two nodes. Every edge carries a
// stable integer ID assigned at insertion; drawing attributes (bend
// points, weights) are keyed by it, so multi-edges between the same
// endpoints keep distinct geometry.
type Edge struct {
	ID   int
	From string
	To   string
}

// Graph is the topology owned by the caller. Layout algorithms never
// mutate it; they only read it and mutate the attached [Drawing].
//
// Node and edge enumeration is deterministic: Nodes and Edges return
// elements in insertion order. Graph is not safe for concurrent use
// without external synchronization.
type Graph struct {
	nodes map[string]*Node
	order []*Node
	edges []*Edge
	adj   map[string][]string // undirected neighbor lists
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		adj:   make(map[string][]string),
	}
}

// AddNode adds a node with the given ID.
// Returns ErrInvalidNodeID for an empty ID or ErrDuplicateNodeID if the
// ID is already in use.
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[id]; exists {
		return ErrDuplicateNodeID
	}
	n := &Node{ID: id}
	g.nodes[id] = n
	g.order = append(g.order, n)
	return nil
}

// AddEdge adds an edge between two existing nodes and returns it.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if an endpoint
// is missing. Self-loops and multi-edges are allowed.
func (g *Graph) AddEdge(from, to string) (*Edge, error) {
	if _, ok := g.nodes[from]; !ok {
		return nil, ErrUnknownSourceNode
	}
	if _, ok := g.nodes[to]; !ok {
		return nil, ErrUnknownTargetNode
	}
	e := &Edge{ID: len(g.edges), From: from, To: to}
	g.edges = append(g.edges, e)
	g.adj[from] = append(g.adj[from], to)
	if from != to {
		g.adj[to] = append(g.adj[to], from)
	}
	return e, nil
}

// Node returns the node with the given ID and true, or nil and false.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Edge returns the edge with the given ID and true, or nil and false.
func (g *Graph) Edge(id int) (*Edge, bool) {
	if id < 0 || id >= len(g.edges) {
		return nil, false
	}
	return g.edges[id], true
}

// Nodes returns all nodes in insertion order.
// The returned slice must not be modified.
func (g *Graph) Nodes() []*Node { return g.order }

// Edges returns all edges in insertion order.
// The returned slice must not be modified.
func (g *Graph) Edges() []*Edge { return g.edges }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Neighbors returns the IDs of nodes adjacent to id, ignoring edge
// direction. The returned slice must not be modified.
func (g *Graph) Neighbors(id string) []string { return g.adj[id] }
