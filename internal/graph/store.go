package graph

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Store is the interface for the splice graph backend.
// Implementations: KuzuStore (persistent), MemStore (in-process).
type Store interface {
	io.Closer

	// Schema setup. Called once before any data is inserted.
	InitSchema(ctx context.Context) error

	// Write operations.
	AddNode(ctx context.Context, node ExonNode) error
	AddEdge(ctx context.Context, edge Edge) error

	// Read operations. GetNode returns nil, nil for an unknown id.
	GetNode(ctx context.Context, id string) (*ExonNode, error)
	Nodes(ctx context.Context) ([]ExonNode, error)
	Successors(ctx context.Context, id string) ([]string, error)

	// Stats.
	Stats(ctx context.Context) (*GraphStats, error)
}

// Backend names a Store implementation.
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendKuzu   Backend = "kuzu"
)

var (
	// ErrDuplicateNode is returned when a node id is registered twice.
	ErrDuplicateNode = errors.New("graph: duplicate node")

	// ErrNodeNotFound is returned when an edge or path names an unknown node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrMissingEdge is returned when two consecutive path nodes are not joined.
	ErrMissingEdge = errors.New("graph: no edge between consecutive nodes")

	// ErrInvalidCoords is returned for a node whose lend exceeds its rend.
	ErrInvalidCoords = errors.New("graph: invalid node coordinates")

	// ErrUnknownEdgeKind is returned for an edge kind other than SPLICE or ADJACENT.
	ErrUnknownEdgeKind = errors.New("graph: unknown edge kind")
)

// Open returns a Store for the named backend. dbPath is only used by the
// kuzu backend; an empty path opens an in-memory database.
func Open(backend Backend, dbPath string) (Store, error) {
	switch backend {
	case "", BackendMemory:
		return NewMemStore(), nil
	case BackendKuzu:
		return openKuzuBackend(dbPath)
	default:
		return nil, fmt.Errorf("graph: unknown store backend %q", backend)
	}
}

// validateNode checks coordinates before insertion.
func validateNode(node ExonNode) error {
	if node.ID == "" {
		return errors.New("graph: node id is empty")
	}
	if node.Lend > node.Rend {
		return fmt.Errorf("node %s %d>%d: %w", node.ID, node.Lend, node.Rend, ErrInvalidCoords)
	}
	return nil
}

// edgeKind returns the kind of edge, SPLICE when unset.
func edgeKind(edge Edge) (EdgeKind, error) {
	switch edge.Kind {
	case "":
		return EdgeKindSplice, nil
	case EdgeKindSplice, EdgeKindAdjacent:
		return edge.Kind, nil
	default:
		return "", fmt.Errorf("edge %s->%s: %q: %w", edge.SourceID, edge.TargetID, edge.Kind, ErrUnknownEdgeKind)
	}
}
