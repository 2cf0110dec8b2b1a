package dag

// Graph is a collection of nodes and their dependencies. Nodes remember the
// order in which they were added; Order uses it to break ties.
type Graph struct {
	// nodes stores all nodes in the graph, keyed by their unique ID.
	nodes map[string]*node
	// ids lists node IDs in insertion order.
	ids []string
}

// node is un-exported to enforce interaction with the graph via string IDs.
type node struct {
	id  string
	pos int
	// deps holds the set of nodes that this node depends on (predecessors).
	deps map[string]*node
	// dependents holds the set of nodes that depend on this node (successors).
	dependents map[string]*node
}
