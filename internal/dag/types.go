package dag

import "sync"

// Graph is a collection of nodes and their dependencies, representing a DAG.
// All operations on the graph are concurrency-safe. Every listing comes out
// in the order nodes were added.
type Graph struct {
	// mutex protects nodes and order.
	mutex sync.RWMutex
	nodes map[string]*node
	order []*node
}

// node is un-exported so the graph is only ever manipulated through IDs.
type node struct {
	id string
	// seq is the position at which the node was added.
	seq int
	// deps holds the nodes this node depends on (predecessors).
	deps map[string]*node
	// dependents holds the nodes that depend on this node (successors).
	dependents map[string]*node
}
