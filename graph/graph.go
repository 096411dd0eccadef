// Package graph provides the fundamental in-memory weighted undirected Graph.
//
// It offers thread-safe methods to mutate and query nodes and edges.
// All mutations acquire a write lock; queries acquire a read lock, so a
// finished instance may be shared read-only across concurrent solver runs.
//
// Nodes carry an integer identity plus optional 2D coordinates used only by
// external visualization and by the instance generators; the routing
// algorithms ignore positions entirely.
//
// Invariant: the graph is undirected. Every edge (u,v,w) is mirrored in both
// adjacency lists with the same weight, and AddEdge/RemoveEdge maintain the
// two sides in lock-step.
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrNegativeWeight - negative edge weight supplied to AddEdge.
package graph

import (
	"errors"
	"sort"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrNegativeWeight indicates a negative weight was supplied to AddEdge.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
)

// DefaultName is used when a Graph is created without an explicit name.
const DefaultName = "Untitled Graph"

// Node represents a single graph node.
//
// ID uniquely identifies the node within its Graph. X and Y are layout
// coordinates for visualization and generation; they carry no routing
// semantics.
type Node struct {
	// ID is the unique identifier for this node.
	ID int64

	// X, Y are the 2D layout coordinates of the node.
	X, Y float64
}

// Neighbor is one entry of a node's adjacency list: the adjacent node's ID
// and the weight of the connecting undirected edge.
type Neighbor struct {
	// ID is the adjacent node's identifier.
	ID int64

	// Weight is the non-negative weight of the connecting edge.
	Weight int64
}

// Graph is a named, weighted, undirected graph backed by adjacency lists.
//
// The zero value is not usable; construct instances with New.
type Graph struct {
	mu sync.RWMutex

	name  string
	nodes map[int64]*Node
	adj   map[int64][]Neighbor
}

// New returns an empty Graph with the given name.
// An empty name falls back to DefaultName.
func New(name string) *Graph {
	if name == "" {
		name = DefaultName
	}

	return &Graph{
		name:  name,
		nodes: make(map[int64]*Node),
		adj:   make(map[int64][]Neighbor),
	}
}

// Name returns the graph's display name.
// Thread-safe: acquires a read lock.
func (g *Graph) Name() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.name
}

// SetName replaces the graph's display name.
// Thread-safe: acquires a write lock.
func (g *Graph) SetName(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.name = name
}

// AddNode inserts a node with the given ID and position if absent.
// If the node already exists, its position is updated only when a non-zero
// position is supplied; the identity is never changed.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (g *Graph) AddNode(id int64, x, y float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id, x, y)
}

// addNodeLocked is the lock-free body of AddNode, shared with AddEdge's
// auto-creation path. Caller must hold the write lock.
func (g *Graph) addNodeLocked(id int64, x, y float64) {
	if n, exists := g.nodes[id]; exists {
		if x != 0 || y != 0 {
			n.X, n.Y = x, y
		}

		return
	}

	g.nodes[id] = &Node{ID: id, X: x, Y: y}
	g.adj[id] = nil
}

// AddEdge creates the undirected edge from—to with the specified weight.
// Absent endpoints are auto-added at the origin. Re-adding an existing edge
// replaces its weight on both sides. Self-loops are stored once.
// Thread-safe: acquires a write lock.
//
// Returns ErrNegativeWeight if weight < 0; otherwise always succeeds.
//
// Complexity: O(deg(from) + deg(to))
func (g *Graph) AddEdge(from, to int64, weight int64) error {
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// Ensure both endpoints exist before touching adjacency.
	g.addNodeLocked(from, 0, 0)
	g.addNodeLocked(to, 0, 0)

	if g.setWeightLocked(from, to, weight) {
		// Existing edge: mirror the weight update and stop.
		if from != to {
			g.setWeightLocked(to, from, weight)
		}

		return nil
	}

	g.adj[from] = append(g.adj[from], Neighbor{ID: to, Weight: weight})
	if from != to {
		g.adj[to] = append(g.adj[to], Neighbor{ID: from, Weight: weight})
	}

	return nil
}

// setWeightLocked updates the weight of the from→to adjacency entry in place
// and reports whether such an entry existed. Caller must hold the write lock.
func (g *Graph) setWeightLocked(from, to int64, weight int64) bool {
	nbrs := g.adj[from]
	for i := range nbrs {
		if nbrs[i].ID == to {
			nbrs[i].Weight = weight

			return true
		}
	}

	return false
}

// RemoveEdge deletes the undirected edge from—to from both adjacency lists.
// If the edge is not present, this is a no-op. Endpoints are kept.
// Thread-safe: acquires a write lock.
//
// Complexity: O(deg(from) + deg(to))
func (g *Graph) RemoveEdge(from, to int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.adj[from] = dropNeighbor(g.adj[from], to)
	if from != to {
		g.adj[to] = dropNeighbor(g.adj[to], from)
	}
}

// dropNeighbor removes the first entry with the given ID, preserving the
// insertion order of the remaining entries.
func dropNeighbor(nbrs []Neighbor, id int64) []Neighbor {
	for i := range nbrs {
		if nbrs[i].ID == id {
			return append(nbrs[:i], nbrs[i+1:]...)
		}
	}

	return nbrs
}

// HasNode reports whether the graph contains a node with the given ID.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) HasNode(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given ID (by value).
// Returns ErrNodeNotFound if no such node exists.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) Node(id int64) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// SetNodePosition moves the node with the given ID to (x, y), creating the
// node if it does not exist yet.
// Thread-safe: acquires a write lock.
func (g *Graph) SetNodePosition(id int64, x, y float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if n, ok := g.nodes[id]; ok {
		n.X, n.Y = x, y

		return
	}

	g.nodes[id] = &Node{ID: id, X: x, Y: y}
	g.adj[id] = nil
}

// HasEdge reports whether the undirected edge from—to exists.
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg(from))
func (g *Graph) HasEdge(from, to int64) bool {
	_, err := g.EdgeWeight(from, to)

	return err == nil
}

// EdgeWeight returns the weight of the undirected edge from—to.
// Returns ErrEdgeNotFound if the edge does not exist.
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg(from))
func (g *Graph) EdgeWeight(from, to int64) (int64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, nb := range g.adj[from] {
		if nb.ID == to {
			return nb.Weight, nil
		}
	}

	return 0, ErrEdgeNotFound
}

// Neighbors returns a copy of the adjacency list of the given node, in edge
// insertion order. Returns ErrNodeNotFound if the node does not exist.
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg(id))
func (g *Graph) Neighbors(id int64) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[id]; !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]Neighbor, len(g.adj[id]))
	copy(out, g.adj[id])

	return out, nil
}

// Nodes returns all nodes sorted by ID ascending.
// The deterministic order makes downstream algorithms and serialization
// reproducible regardless of map iteration order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V log V)
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, *n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodeCount returns the number of nodes.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of undirected edges.
// Each mirrored adjacency pair is counted once; self-loops count once.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V + E)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var half, loops int
	for id, nbrs := range g.adj {
		for _, nb := range nbrs {
			if nb.ID == id {
				loops++
			} else {
				half++
			}
		}
	}

	return half/2 + loops
}

// IsEmpty reports whether the graph has no nodes.
// Thread-safe: acquires a read lock.
func (g *Graph) IsEmpty() bool {
	return g.NodeCount() == 0
}

// Clear removes all nodes and edges, keeping the name.
// Thread-safe: acquires a write lock.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes = make(map[int64]*Node)
	g.adj = make(map[int64][]Neighbor)
}
