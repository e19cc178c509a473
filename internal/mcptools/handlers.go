package mcptools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dusk-indust/splicepath/internal/graph"
	"github.com/dusk-indust/splicepath/internal/simplepath"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PathService holds the splice graph used by MCP tool handlers.
type PathService struct {
	store  graph.Store
	logger *slog.Logger
}

// NewPathService creates a PathService over store. A nil logger means
// slog.Default().
func NewPathService(store graph.Store, logger *slog.Logger) *PathService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PathService{store: store, logger: logger}
}

// ContainsPath reports whether path b is a contiguous run of path a.
func (s *PathService) ContainsPath(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PathPairInput,
) (*mcp.CallToolResult, ContainsOutput, error) {
	a, b := simplepath.FromNullable(input.A), simplepath.FromNullable(input.B)
	return nil, ContainsOutput{Contained: simplepath.Contains(a, b)}, nil
}

// OverlapCompatible reports whether the two paths share a gap-free overlap.
func (s *PathService) OverlapCompatible(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PathPairInput,
) (*mcp.CallToolResult, OverlapOutput, error) {
	a, b := simplepath.FromNullable(input.A), simplepath.FromNullable(input.B)
	return nil, OverlapOutput{Compatible: simplepath.OverlapCompatible(a, b)}, nil
}

// MergePaths merges two overlap-compatible paths.
func (s *PathService) MergePaths(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input PathPairInput,
) (*mcp.CallToolResult, MergeOutput, error) {
	a, b := simplepath.FromNullable(input.A), simplepath.FromNullable(input.B)
	merged, err := simplepath.Merge(a, b)
	if err != nil {
		s.logger.Debug("merge_paths rejected", "a", a, "b", b, "err", err)
		return nil, MergeOutput{}, err
	}
	return nil, MergeOutput{Path: merged.Nullable()}, nil
}

// MergeSpacerPaths merges two paths that may contain spacers, resolving
// coordinates through the graph store.
func (s *PathService) MergeSpacerPaths(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathPairInput,
) (*mcp.CallToolResult, MergeSpacersOutput, error) {
	a, b := simplepath.FromNullable(input.A), simplepath.FromNullable(input.B)
	entries, err := simplepath.MergeWithSpacers(graph.Lookup(ctx, s.store), a, b)
	if err != nil {
		return nil, MergeSpacersOutput{}, err
	}

	out := MergeSpacersOutput{Entries: make([]AnnotatedEntry, len(entries))}
	for i, e := range entries {
		out.Entries[i] = AnnotatedEntry{Left: e.Left, Right: e.Right}
		if !e.Entry.IsSpacer() {
			id := string(e.Entry.ID())
			out.Entries[i].ID = &id
		}
	}
	return nil, out, nil
}

// MergeIntervals joins adjacent [start, end] intervals.
func (s *PathService) MergeIntervals(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input MergeIntervalsInput,
) (*mcp.CallToolResult, MergeIntervalsOutput, error) {
	in := make([]simplepath.Interval, len(input.Intervals))
	for i, pair := range input.Intervals {
		if len(pair) != 2 {
			return nil, MergeIntervalsOutput{}, fmt.Errorf("interval %d: want [start, end], got %v", i, pair)
		}
		in[i] = simplepath.Interval{Start: pair[0], End: pair[1]}
	}

	merged, err := simplepath.MergeIntervals(in)
	if err != nil {
		return nil, MergeIntervalsOutput{}, err
	}

	out := MergeIntervalsOutput{Intervals: make([][]int, len(merged))}
	for i, iv := range merged {
		out.Intervals[i] = []int{iv.Start, iv.End}
	}
	return nil, out, nil
}

// RemoveContained drops every path contained in another member of the set.
func (s *PathService) RemoveContained(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input RemoveContainedInput,
) (*mcp.CallToolResult, RemoveContainedOutput, error) {
	paths := make([]simplepath.Path, len(input.Paths))
	for i, raw := range input.Paths {
		paths[i] = simplepath.FromNullable(raw)
	}

	kept := simplepath.RemoveContained(paths)
	out := RemoveContainedOutput{Paths: make([][]*string, len(kept))}
	for i, p := range kept {
		out.Paths[i] = p.Nullable()
	}
	return nil, out, nil
}

// ValidatePath checks that a path follows edges of the splice graph.
func (s *PathService) ValidatePath(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ValidatePathInput,
) (*mcp.CallToolResult, ValidatePathOutput, error) {
	if len(input.Path) == 0 {
		return nil, ValidatePathOutput{}, fmt.Errorf("path is required")
	}
	if err := graph.ValidatePath(ctx, s.store, simplepath.FromNullable(input.Path)); err != nil {
		return nil, ValidatePathOutput{Valid: false, Reason: err.Error()}, nil
	}
	return nil, ValidatePathOutput{Valid: true}, nil
}

// GraphStats returns node, edge and contig counts of the loaded graph.
func (s *PathService) GraphStats(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ GraphStatsInput,
) (*mcp.CallToolResult, GraphStatsOutput, error) {
	stats, err := s.store.Stats(ctx)
	if err != nil {
		return nil, GraphStatsOutput{}, fmt.Errorf("stats: %w", err)
	}
	return nil, GraphStatsOutput{Stats: *stats}, nil
}
