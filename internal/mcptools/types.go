package mcptools

import "github.com/dusk-indust/splicepath/internal/graph"

// --- MCP Tool Input Types ---
// These structs define the JSON schema for each MCP tool's input.
// The MCP Go SDK auto-generates JSON schemas from struct tags.
// Paths are lists of node ids; null marks a spacer.

// PathPairInput is the input for every two-path tool.
type PathPairInput struct {
	A []*string `json:"a" jsonschema:"first path: node ids in order, null for a spacer"`
	B []*string `json:"b" jsonschema:"second path: node ids in order, null for a spacer"`
}

// ContainsOutput is the result of the contains_path MCP tool.
type ContainsOutput struct {
	Contained bool `json:"contained"`
}

// OverlapOutput is the result of the overlap_compatible MCP tool.
type OverlapOutput struct {
	Compatible bool `json:"compatible"`
}

// MergeOutput is the result of the merge_paths MCP tool.
type MergeOutput struct {
	Path []*string `json:"path"`
}

// AnnotatedEntry is one coordinate-resolved entry of a spacer-aware merge.
type AnnotatedEntry struct {
	ID    *string `json:"id" jsonschema:"node id, null for a spacer"`
	Left  int     `json:"left"`
	Right int     `json:"right"`
}

// MergeSpacersOutput is the result of the merge_spacer_paths MCP tool.
type MergeSpacersOutput struct {
	Entries []AnnotatedEntry `json:"entries"`
}

// MergeIntervalsInput is the input for the merge_intervals MCP tool.
type MergeIntervalsInput struct {
	Intervals [][]int `json:"intervals" jsonschema:"list of [start, end] pairs"`
}

// MergeIntervalsOutput is the result of the merge_intervals MCP tool.
type MergeIntervalsOutput struct {
	Intervals [][]int `json:"intervals"`
}

// RemoveContainedInput is the input for the remove_contained MCP tool.
type RemoveContainedInput struct {
	Paths [][]*string `json:"paths" jsonschema:"paths of node ids, null for a spacer"`
}

// RemoveContainedOutput is the result of the remove_contained MCP tool.
type RemoveContainedOutput struct {
	Paths [][]*string `json:"paths"`
}

// ValidatePathInput is the input for the validate_path MCP tool.
type ValidatePathInput struct {
	Path []*string `json:"path" jsonschema:"node ids in order, null for a spacer"`
}

// ValidatePathOutput is the result of the validate_path MCP tool.
type ValidatePathOutput struct {
	Valid  bool   `json:"valid"`
	Reason string `json:"reason,omitempty"`
}

// GraphStatsInput is the input for the graph_stats MCP tool.
type GraphStatsInput struct{}

// GraphStatsOutput is the result of the graph_stats MCP tool.
type GraphStatsOutput struct {
	Stats graph.GraphStats `json:"stats"`
}
