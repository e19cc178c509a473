package graph

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps. Thread-safe via sync.RWMutex.
type MemStore struct {
	mu    sync.RWMutex
	nodes map[string]ExonNode
	order []string               // node ids in insertion order
	succ  map[string][]string    // source id -> target ids
	kinds map[[2]string]EdgeKind // (source, target) -> kind
	edges int
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{
		nodes: make(map[string]ExonNode),
		succ:  make(map[string][]string),
		kinds: make(map[[2]string]EdgeKind),
	}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// AddNode stores a node keyed by its id.
func (m *MemStore) AddNode(_ context.Context, node ExonNode) error {
	if err := validateNode(node); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.nodes[node.ID]; ok {
		return fmt.Errorf("%s: %w", node.ID, ErrDuplicateNode)
	}
	m.nodes[node.ID] = node
	m.order = append(m.order, node.ID)
	return nil
}

// AddEdge records an edge and its kind. Both endpoints must already be
// stored. A second edge between the same pair is a no-op whatever its kind,
// matching KuzuStore.
func (m *MemStore) AddEdge(_ context.Context, edge Edge) error {
	kind, err := edgeKind(edge)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range []string{edge.SourceID, edge.TargetID} {
		if _, ok := m.nodes[id]; !ok {
			return fmt.Errorf("edge %s->%s: %s: %w", edge.SourceID, edge.TargetID, id, ErrNodeNotFound)
		}
	}
	if slices.Contains(m.succ[edge.SourceID], edge.TargetID) {
		return nil
	}
	m.succ[edge.SourceID] = append(m.succ[edge.SourceID], edge.TargetID)
	m.kinds[[2]string{edge.SourceID, edge.TargetID}] = kind
	m.edges++
	return nil
}

// GetNode returns the node for the given id, or nil if not found.
func (m *MemStore) GetNode(_ context.Context, id string) (*ExonNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n, ok := m.nodes[id]
	if !ok {
		return nil, nil
	}
	return &n, nil
}

// Nodes returns all nodes in insertion order.
func (m *MemStore) Nodes(_ context.Context) ([]ExonNode, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ExonNode, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.nodes[id])
	}
	return out, nil
}

// Successors returns the ids of nodes reachable from id in one edge of any kind.
func (m *MemStore) Successors(_ context.Context, id string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.succ[id]), nil
}

// EdgeKind returns the kind of the edge from -> to, if one is stored.
func (m *MemStore) EdgeKind(from, to string) (EdgeKind, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	kind, ok := m.kinds[[2]string{from, to}]
	return kind, ok
}

// Stats returns node, edge and contig counts.
func (m *MemStore) Stats(_ context.Context) (*GraphStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	contigs := make(map[string]bool)
	for _, n := range m.nodes {
		contigs[n.Contig] = true
	}
	return &GraphStats{
		NodeCount:   len(m.nodes),
		EdgeCount:   m.edges,
		ContigCount: len(contigs),
	}, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}
