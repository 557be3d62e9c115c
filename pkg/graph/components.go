package graph

// Components is a read-only grouping of a graph's nodes and edges into
// numbered connected components. Every node and edge belongs to exactly
// one component, and each component has at least one node.
//
// Component numbering is deterministic: components are numbered in the
// order their first node was inserted into the graph, and the node and
// edge lists of each component preserve graph insertion order.
type Components struct {
	count      int
	nodeGroups [][]*Node
	edgeGroups [][]*Edge
	byNode     map[string]int
}

// SplitComponents partitions g into its connected components using
// breadth-first search over the undirected neighbor lists.
func SplitComponents(g *Graph) *Components {
	c := &Components{byNode: make(map[string]int, g.NodeCount())}

	for _, v := range g.Nodes() {
		if _, seen := c.byNode[v.ID]; seen {
			continue
		}
		idx := c.count
		c.count++
		c.byNode[v.ID] = idx
		queue := []string{v.ID}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			for _, w := range g.Neighbors(id) {
				if _, seen := c.byNode[w]; !seen {
					c.byNode[w] = idx
					queue = append(queue, w)
				}
			}
		}
	}

	c.nodeGroups = make([][]*Node, c.count)
	c.edgeGroups = make([][]*Edge, c.count)
	for _, v := range g.Nodes() {
		idx := c.byNode[v.ID]
		c.nodeGroups[idx] = append(c.nodeGroups[idx], v)
	}
	for _, e := range g.Edges() {
		idx := c.byNode[e.From]
		c.edgeGroups[idx] = append(c.edgeGroups[idx], e)
	}
	return c
}

// Count returns the number of connected components.
func (c *Components) Count() int { return c.count }

// Nodes returns the nodes of component i in graph insertion order.
func (c *Components) Nodes(i int) []*Node { return c.nodeGroups[i] }

// Edges returns the edges of component i in graph insertion order.
func (c *Components) Edges(i int) []*Edge { return c.edgeGroups[i] }

// ComponentOf returns the component index of the node with the given
// ID and true, or 0 and false for an unknown node.
func (c *Components) ComponentOf(id string) (int, bool) {
	idx, ok := c.byNode[id]
	return idx, ok
}
