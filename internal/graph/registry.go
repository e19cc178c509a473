package graph

import (
	"context"
	"fmt"
	"slices"

	"github.com/dusk-indust/splicepath/internal/simplepath"
)

// Lookup returns a simplepath.CoordLookup that reads node coordinates from
// store. Unknown ids yield an error wrapping simplepath.ErrUnknownIdentifier.
// The returned lookup is bound to ctx.
func Lookup(ctx context.Context, store Store) simplepath.LookupFunc {
	return func(id simplepath.NodeID) (simplepath.Span, error) {
		n, err := store.GetNode(ctx, string(id))
		if err != nil {
			return simplepath.Span{}, fmt.Errorf("graph: lookup %s: %w", id, err)
		}
		if n == nil {
			return simplepath.Span{}, fmt.Errorf("graph: %q: %w", id, simplepath.ErrUnknownIdentifier)
		}
		return simplepath.Span{Left: n.Lend, Right: n.Rend}, nil
	}
}

// Snapshot copies every node's coordinates out of store into an in-memory
// lookup, so repeated merges do not go back to the backend.
func Snapshot(ctx context.Context, store Store) (simplepath.Spans, error) {
	nodes, err := store.Nodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("graph: snapshot: %w", err)
	}
	spans := make(simplepath.Spans, len(nodes))
	for _, n := range nodes {
		spans[simplepath.NodeID(n.ID)] = simplepath.Span{Left: n.Lend, Right: n.Rend}
	}
	return spans, nil
}

// ValidatePath checks that every concrete node of p is stored and that each
// pair of consecutive nodes is joined by an edge. A spacer breaks adjacency,
// so the nodes on either side of it need no edge.
func ValidatePath(ctx context.Context, store Store, p simplepath.Path) error {
	var prev string
	for _, e := range p {
		if e.IsSpacer() {
			prev = ""
			continue
		}
		id := string(e.ID())
		n, err := store.GetNode(ctx, id)
		if err != nil {
			return err
		}
		if n == nil {
			return fmt.Errorf("path %s: %s: %w", p, id, ErrNodeNotFound)
		}
		if prev != "" {
			succ, err := store.Successors(ctx, prev)
			if err != nil {
				return err
			}
			if !slices.Contains(succ, id) {
				return fmt.Errorf("path %s: %s->%s: %w", p, prev, id, ErrMissingEdge)
			}
		}
		prev = id
	}
	return nil
}
