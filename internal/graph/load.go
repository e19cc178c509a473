package graph

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Description is the on-disk form of a splice graph. YAML and JSON are both
// accepted.
type Description struct {
	Nodes []ExonNode `yaml:"nodes"`
	Edges []Edge     `yaml:"edges"`
}

// Load decodes a graph description from r and inserts it into store.
// InitSchema is called first. Edges default to SPLICE.
func Load(ctx context.Context, store Store, r io.Reader) (*GraphStats, error) {
	var desc Description
	if err := yaml.NewDecoder(r).Decode(&desc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("graph: decode description: %w", err)
	}
	if err := store.InitSchema(ctx); err != nil {
		return nil, fmt.Errorf("init schema: %w", err)
	}
	for _, n := range desc.Nodes {
		if n.Strand == "" {
			n.Strand = StrandUnknown
		}
		if err := store.AddNode(ctx, n); err != nil {
			return nil, fmt.Errorf("add node %s: %w", n.ID, err)
		}
	}
	for _, e := range desc.Edges {
		if e.Kind == "" {
			e.Kind = EdgeKindSplice
		}
		if err := store.AddEdge(ctx, e); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", e.SourceID, e.TargetID, err)
		}
	}
	return store.Stats(ctx)
}

// LoadFile is Load for a file path.
func LoadFile(ctx context.Context, store Store, path string) (*GraphStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graph: %w", err)
	}
	defer f.Close()
	return Load(ctx, store, f)
}
