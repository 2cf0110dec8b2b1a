package dag

import (
	"fmt"
	"sort"
)

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*node),
	}
}

// AddNode adds a new node with the given ID to the graph. If a node with
// the same ID already exists, the function does nothing.
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &node{
		id:         id,
		pos:        len(g.ids),
		deps:       make(map[string]*node),
		dependents: make(map[string]*node),
	}
	g.ids = append(g.ids, id)
}

// AddEdge creates a directed edge from the `fromID` node to the `toID` node.
// This signifies that `toID` has a dependency on `fromID`. An error is returned
// if either node does not exist or if the edge would create a self-reference.
func (g *Graph) AddEdge(fromID, toID string) error {
	if fromID == toID {
		return fmt.Errorf("self-referential edge not allowed: %s -> %s", fromID, fromID)
	}

	fromNode, ok := g.nodes[fromID]
	if !ok {
		return fmt.Errorf("source node not found: %s", fromID)
	}
	toNode, ok := g.nodes[toID]
	if !ok {
		return fmt.Errorf("destination node not found: %s", toID)
	}

	toNode.deps[fromID] = fromNode
	fromNode.dependents[toID] = toNode
	return nil
}

// Dependencies returns the sorted IDs the given node depends on.
func (g *Graph) Dependencies(id string) ([]string, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node not found: %s", id)
	}
	deps := make([]string, 0, len(n.deps))
	for depID := range n.deps {
		deps = append(deps, depID)
	}
	sort.Strings(deps)
	return deps, nil
}

// DetectCycles checks the graph for any cycles. It returns a non-nil error
// naming the first node, in insertion order, found on a cycle.
func (g *Graph) DetectCycles() error {
	// Depth-first search with a permanent set (fully visited) and a temporary
	// set (on the current recursion stack).
	permanent := make(map[string]bool)
	temporary := make(map[string]bool)

	var visit func(n *node) error
	visit = func(n *node) error {
		if permanent[n.id] {
			return nil
		}
		if temporary[n.id] {
			return fmt.Errorf("cycle detected involving node '%s'", n.id)
		}
		temporary[n.id] = true
		for _, dependent := range sortedNodes(n.dependents) {
			if err := visit(dependent); err != nil {
				return err
			}
		}
		delete(temporary, n.id)
		permanent[n.id] = true
		return nil
	}

	for _, id := range g.ids {
		if err := visit(g.nodes[id]); err != nil {
			return err
		}
	}
	return nil
}

// Order returns all node IDs so that every node follows its dependencies.
// Among nodes that are ready at the same time, the one added first wins.
func (g *Graph) Order() ([]string, error) {
	if err := g.DetectCycles(); err != nil {
		return nil, err
	}

	pending := make(map[string]int, len(g.nodes))
	for id, n := range g.nodes {
		pending[id] = len(n.deps)
	}
	done := make(map[string]bool, len(g.nodes))

	order := make([]string, 0, len(g.ids))
	for len(order) < len(g.ids) {
		for _, id := range g.ids {
			if done[id] || pending[id] > 0 {
				continue
			}
			done[id] = true
			order = append(order, id)
			for depID := range g.nodes[id].dependents {
				pending[depID]--
			}
			// Restart so earlier nodes unblocked by id take precedence.
			break
		}
	}
	return order, nil
}

// sortedNodes returns the nodes of set ordered by insertion.
func sortedNodes(set map[string]*node) []*node {
	out := make([]*node, 0, len(set))
	for _, n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].pos < out[j].pos })
	return out
}
