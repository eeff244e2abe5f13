// Package graph provides the model-graph stores the resolver walks: an
// arena-backed in-memory graph, a hot-swappable wrapper, and a SQLite
// loader for prebuilt graphs.
package graph

import (
	"errors"
	"sync"

	"github.com/RoaringBitmap/roaring"
	"github.com/agentic-research/wayfind/api"
)

var ErrNotFound = errors.New("node not found")

// Source provides the root of a model graph.
type Source interface {
	Root() api.Resource
}

// NodeID indexes a node in a MemoryGraph's arena.
type NodeID int32

// InvalidID marks a missing parent link.
const InvalidID NodeID = -1

// nodeData is the arena record for one node. Parent and child edges are
// arena indices, never pointers: the arena owns every node, and the
// parent link a Resource handle exposes is a lookup, not an ownership
// edge, so no reference cycles exist and concurrent read traversal needs
// no per-node synchronization.
type nodeData struct {
	name     string
	parent   NodeID
	children map[string]NodeID // nil for leaves
}

// MemoryGraph is an arena-backed in-memory model graph. Nodes live in a
// flat slice; resources handed out to the resolver are lightweight
// handles pairing the graph with an arena index.
//
// Mutation (AddNode/AddLeaf) and reads may be interleaved; a single
// RWMutex guards the arena. The traversal engine itself only reads.
type MemoryGraph struct {
	mu    sync.RWMutex
	nodes []nodeData

	// Roaring bitmap index: decoded name → set of arena IDs. Enables
	// FindByName without a full arena scan.
	byName map[string]*roaring.Bitmap
}

// NewMemoryGraph creates a graph holding only the root node. The root's
// name is the empty string and it has no parent.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		nodes:  []nodeData{{name: "", parent: InvalidID, children: map[string]NodeID{}}},
		byName: make(map[string]*roaring.Bitmap),
	}
}

// Root implements Source.
func (g *MemoryGraph) Root() api.Resource {
	return container{node{g: g, id: 0}}
}

// AddNode adds an inner node (child lookup capable) under parent.
func (g *MemoryGraph) AddNode(parent api.Resource, name string) (api.Resource, error) {
	id, err := g.add(parent, name, false)
	if err != nil {
		return nil, err
	}
	return container{node{g: g, id: id}}, nil
}

// AddLeaf adds a leaf node under parent. Leaves do not implement
// ChildLookup, so traversal always stops at them.
func (g *MemoryGraph) AddLeaf(parent api.Resource, name string) (api.Resource, error) {
	id, err := g.add(parent, name, true)
	if err != nil {
		return nil, err
	}
	return node{g: g, id: id}, nil
}

func (g *MemoryGraph) add(parent api.Resource, name string, leaf bool) (NodeID, error) {
	pid, ok := g.idOf(parent)
	if !ok {
		return InvalidID, errors.New("parent does not belong to this graph")
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	pdata := &g.nodes[pid]
	if pdata.children == nil {
		return InvalidID, errors.New("parent is a leaf")
	}
	if _, exists := pdata.children[name]; exists {
		return InvalidID, errors.New("duplicate child name " + name)
	}

	id := NodeID(len(g.nodes))
	data := nodeData{name: name, parent: pid}
	if !leaf {
		data.children = map[string]NodeID{}
	}
	g.nodes = append(g.nodes, data)
	pdata.children[name] = id

	bm, exists := g.byName[name]
	if !exists {
		bm = roaring.New()
		g.byName[name] = bm
	}
	bm.Add(uint32(id))

	return id, nil
}

// FindByName returns every node addressed by the given decoded name,
// anywhere in the graph, in arena (insertion) order.
func (g *MemoryGraph) FindByName(name string) []api.Resource {
	g.mu.RLock()
	defer g.mu.RUnlock()

	bm, ok := g.byName[name]
	if !ok {
		return nil
	}
	var found []api.Resource
	it := bm.Iterator()
	for it.HasNext() {
		found = append(found, g.resource(NodeID(it.Next())))
	}
	return found
}

// Len returns the number of nodes in the arena, root included.
func (g *MemoryGraph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Visit calls fn for every node in arena order, which guarantees parents
// before children. Used by the SQLite writer to dump a graph.
func (g *MemoryGraph) Visit(fn func(id, parent NodeID, name string, leaf bool)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for i := range g.nodes {
		n := &g.nodes[i]
		fn(NodeID(i), n.parent, n.name, n.children == nil)
	}
}

// resource wraps an arena index in the right handle type. Must be called
// with g.mu held (read or write).
func (g *MemoryGraph) resource(id NodeID) api.Resource {
	if g.nodes[id].children == nil {
		return node{g: g, id: id}
	}
	return container{node{g: g, id: id}}
}

// idOf recovers the arena index behind a handle. The handle must have
// been issued by this graph; an index from another arena would silently
// address the wrong node.
func (g *MemoryGraph) idOf(r api.Resource) (NodeID, bool) {
	switch h := r.(type) {
	case container:
		if h.g == g {
			return h.id, true
		}
	case node:
		if h.g == g {
			return h.id, true
		}
	}
	return InvalidID, false
}

// node is a handle to a leaf: it is location-aware but has no child
// lookup capability.
type node struct {
	g  *MemoryGraph
	id NodeID
}

func (n node) Name() string {
	n.g.mu.RLock()
	defer n.g.mu.RUnlock()
	return n.g.nodes[n.id].name
}

func (n node) Parent() api.Resource {
	n.g.mu.RLock()
	defer n.g.mu.RUnlock()
	pid := n.g.nodes[n.id].parent
	if pid == InvalidID {
		return nil
	}
	return n.g.resource(pid)
}

// container is a handle to an inner node; it adds the child lookup
// capability on top of node.
type container struct {
	node
}

func (c container) Child(name string) (api.Resource, bool) {
	c.g.mu.RLock()
	defer c.g.mu.RUnlock()
	id, ok := c.g.nodes[c.id].children[name]
	if !ok {
		return nil, false
	}
	return c.g.resource(id), true
}
